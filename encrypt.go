package recordcrypt

import (
	"crypto/rand"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/healthledger/recordcrypt-go/internal/crypto"
)

// EncryptForRecipient encrypts a plaintext so that only the holder of
// the private key matching recipientPublicKeyHex can read it.
//
// A fresh ephemeral secp256k1 keypair is generated per call; its public
// half is recorded in the envelope and its private half is wiped before
// returning. Encrypting the same plaintext twice therefore yields
// envelopes with different ephemeral keys, IVs, and ciphertexts.
func EncryptForRecipient(plaintext []byte, recipientPublicKeyHex string, opts ...Option) (*Envelope, error) {
	recipientPub, err := crypto.ParsePublicKey(recipientPublicKeyHex)
	if err != nil {
		return nil, wrapKeyError(err)
	}

	ephemeral, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral keypair: %w", err)
	}
	defer ephemeral.Priv.Zero()

	env, err := seal(plaintext, ephemeral.Priv, recipientPub, newSchemeConfig(opts))
	if err != nil {
		return nil, err
	}

	env.EphemeralPublicKey = ephemeral.PublicKeyHex
	return env, nil
}

// EncryptFromSender encrypts a plaintext for a recipient using the
// sender's long-term private key for the key agreement instead of a
// fresh ephemeral key. The resulting envelope carries no
// ephemeralPublicKey field; the reader must know the sender's public
// key and use DecryptFromSender.
//
// This variant matches envelopes the original platform produced from
// its registered producer identities. It trades the per-message key of
// EncryptForRecipient for a stable sender identity, so every message
// between the same two parties shares one symmetric key; prefer
// EncryptForRecipient for new data.
func EncryptFromSender(plaintext []byte, senderPrivateKeyHex, recipientPublicKeyHex string, opts ...Option) (*Envelope, error) {
	senderPriv, err := crypto.ParsePrivateKey(senderPrivateKeyHex)
	if err != nil {
		return nil, wrapKeyError(err)
	}

	recipientPub, err := crypto.ParsePublicKey(recipientPublicKeyHex)
	if err != nil {
		return nil, wrapKeyError(err)
	}

	return seal(plaintext, senderPriv, recipientPub, newSchemeConfig(opts))
}

// seal runs the shared encrypt path: ECDH, key derivation, AES-256-GCM,
// envelope assembly. The ephemeral/static distinction is the caller's.
func seal(plaintext []byte, localPriv *btcec.PrivateKey, remotePub *btcec.PublicKey, cfg *schemeConfig) (*Envelope, error) {
	secret := crypto.SharedSecret(localPriv, remotePub)
	defer crypto.Zeroize(secret[:])

	key, err := symmetricKey(secret, cfg)
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(key)

	iv := make([]byte, crypto.AESNonceSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, tag, err := crypto.EncryptAESGCM(key, plaintext, iv)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return &Envelope{
		IV:        crypto.ToHex(iv),
		AuthTag:   crypto.ToHex(tag),
		Encrypted: crypto.ToHex(ciphertext),
	}, nil
}

// symmetricKey turns an ECDH shared secret into the AES-256 key,
// honoring the legacy raw-secret mode.
func symmetricKey(secret [crypto.SharedSecretSize]byte, cfg *schemeConfig) ([]byte, error) {
	if cfg.rawSharedSecret {
		key := make([]byte, crypto.AESKeySize)
		copy(key, secret[:])
		return key, nil
	}

	key, err := crypto.DeriveEncryptionKey(secret[:])
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}
