package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Sign produces a deterministic (RFC 6979) ECDSA signature over a
// 32-byte digest, DER-serialized. Producers sign content digests, not
// raw payloads, so the signature stays a fixed-size commitment no
// matter how large the record is.
func Sign(priv *btcec.PrivateKey, digest []byte) []byte {
	return ecdsa.Sign(priv, digest).Serialize()
}

// VerifySignature checks a DER-encoded ECDSA signature over a digest.
func VerifySignature(pub *btcec.PublicKey, digest, signature []byte) error {
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if !sig.Verify(digest, pub) {
		return ErrSignatureVerificationFailed
	}

	return nil
}
