package crypto

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
)

// randReader is the random source used for key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// Keypair represents a secp256k1 keypair used for ECDH key agreement
// and digest signing.
type Keypair struct {
	// Priv is the private key scalar. It is never serialized into any
	// envelope or log output.
	Priv *btcec.PrivateKey
	// Pub is the public point, safe to share.
	Pub *btcec.PublicKey
	// PublicKeyHex is the compressed public point encoded as hex.
	PublicKeyHex string
}

// GenerateKeypair creates a new random secp256k1 keypair. Hybrid
// encryption generates one of these per message (the ephemeral key);
// identity keys are generated the same way but managed by the caller.
func GenerateKeypair() (*Keypair, error) {
	var (
		priv *btcec.PrivateKey
		err  error
	)

	if randReader == nil {
		priv, err = btcec.NewPrivateKey()
		if err != nil {
			return nil, fmt.Errorf("generate private key: %w", err)
		}
	} else {
		// Test path: derive the scalar from the injected reader so key
		// generation is reproducible.
		buf := make([]byte, PrivateKeySize)
		if _, err := io.ReadFull(randReader, buf); err != nil {
			return nil, fmt.Errorf("generate private key: %w", err)
		}

		var scalar btcec.ModNScalar
		if overflow := scalar.SetByteSlice(buf); overflow || scalar.IsZero() {
			return nil, ErrInvalidPrivateKey
		}
		priv = btcec.PrivKeyFromScalar(&scalar)
	}

	return NewKeypair(priv), nil
}

// NewKeypair wraps an existing private key into a Keypair.
func NewKeypair(priv *btcec.PrivateKey) *Keypair {
	pub := priv.PubKey()
	return &Keypair{
		Priv:         priv,
		Pub:          pub,
		PublicKeyHex: ToHex(pub.SerializeCompressed()),
	}
}

// ParsePrivateKey decodes a hex-encoded secp256k1 private key. The key
// must decode to exactly 32 bytes and to a scalar in [1, N-1]; values
// at or above the group order are rejected rather than reduced, since a
// reduced scalar would be a different key than the caller supplied.
func ParsePrivateKey(privateKeyHex string) (*btcec.PrivateKey, error) {
	raw, err := FromHex(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	if len(raw) != PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(raw), PrivateKeySize)
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow {
		return nil, fmt.Errorf("%w: scalar exceeds group order", ErrInvalidPrivateKey)
	}

	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}

	return btcec.PrivKeyFromScalar(&scalar), nil
}

// ParsePublicKey decodes a hex-encoded secp256k1 public key. Both
// compressed (33-byte) and uncompressed (65-byte) encodings are
// accepted. The decoded point is validated to be on the curve.
func ParsePublicKey(publicKeyHex string) (*btcec.PublicKey, error) {
	raw, err := FromHex(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	if len(raw) != CompressedPublicKeySize && len(raw) != UncompressedPublicKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d or %d",
			ErrInvalidPublicKey, len(raw), CompressedPublicKeySize, UncompressedPublicKeySize)
	}

	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	return pub, nil
}
