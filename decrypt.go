package recordcrypt

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/healthledger/recordcrypt-go/internal/crypto"
)

// DecryptEnvelope decrypts an envelope produced by EncryptForRecipient
// using the recipient's private key.
//
// The envelope is validated before any cryptographic work. On tag
// mismatch — tampering, or a private key that does not match the public
// key the sender encrypted to — it returns ErrAuthenticationFailed and
// no plaintext.
func DecryptEnvelope(env *Envelope, recipientPrivateKeyHex string, opts ...Option) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidEnvelopeFormat)
	}

	if env.EphemeralPublicKey == "" {
		return nil, fmt.Errorf("%w: missing ephemeralPublicKey (sender-keyed envelopes need DecryptFromSender)",
			ErrInvalidEnvelopeFormat)
	}

	parts, err := env.decode()
	if err != nil {
		return nil, err
	}

	recipientPriv, err := crypto.ParsePrivateKey(recipientPrivateKeyHex)
	if err != nil {
		return nil, wrapKeyError(err)
	}

	ephemeralPub, err := crypto.ParsePublicKey(env.EphemeralPublicKey)
	if err != nil {
		return nil, wrapKeyError(err)
	}

	return open(parts, recipientPriv, ephemeralPub, newSchemeConfig(opts))
}

// DecryptFromSender decrypts an envelope produced by EncryptFromSender.
// The envelope carries no ephemeral key, so the sender's long-term
// public key is supplied out of band.
func DecryptFromSender(env *Envelope, recipientPrivateKeyHex, senderPublicKeyHex string, opts ...Option) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidEnvelopeFormat)
	}

	parts, err := env.decode()
	if err != nil {
		return nil, err
	}

	recipientPriv, err := crypto.ParsePrivateKey(recipientPrivateKeyHex)
	if err != nil {
		return nil, wrapKeyError(err)
	}

	senderPub, err := crypto.ParsePublicKey(senderPublicKeyHex)
	if err != nil {
		return nil, wrapKeyError(err)
	}

	return open(parts, recipientPriv, senderPub, newSchemeConfig(opts))
}

// open runs the shared decrypt path: ECDH, key derivation, AES-256-GCM
// with tag verification. Fail-closed: any tag mismatch surfaces as
// ErrAuthenticationFailed with no partial output.
func open(parts *envelopeParts, localPriv *btcec.PrivateKey, remotePub *btcec.PublicKey, cfg *schemeConfig) ([]byte, error) {
	secret := crypto.SharedSecret(localPriv, remotePub)
	defer crypto.Zeroize(secret[:])

	key, err := symmetricKey(secret, cfg)
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(key)

	plaintext, err := crypto.DecryptAESGCM(key, parts.iv, parts.ciphertext, parts.tag)
	if err != nil {
		if errors.Is(err, crypto.ErrDecryptionFailed) {
			return nil, fmt.Errorf("%w: %s", ErrAuthenticationFailed, err)
		}
		return nil, err
	}

	return plaintext, nil
}
