package recordcrypt

import (
	"errors"
	"fmt"

	"github.com/healthledger/recordcrypt-go/internal/crypto"
)

// SignDigest signs a content digest with a producer's secp256k1 private
// key and returns the DER-encoded ECDSA signature as hex. Signatures are
// deterministic (RFC 6979), so re-signing the same digest with the same
// key reproduces the same bytes.
//
// Producers sign digests, not raw payloads: the digest is computed over
// the canonical plaintext before encryption and verified by consumers
// after decryption, without trusting the storage layer in between.
func SignDigest(digest [DigestSize]byte, producerPrivateKeyHex string) (string, error) {
	priv, err := crypto.ParsePrivateKey(producerPrivateKeyHex)
	if err != nil {
		return "", wrapKeyError(err)
	}
	defer priv.Zero()

	return crypto.ToHex(crypto.Sign(priv, digest[:])), nil
}

// VerifyDigest checks a hex-encoded DER signature over a content digest
// against the producer's public key. It returns ErrSignatureInvalid if
// the signature does not verify, and ErrInvalidSignatureFormat if the
// signature cannot be decoded at all.
func VerifyDigest(digest [DigestSize]byte, signatureHex, producerPublicKeyHex string) error {
	pub, err := crypto.ParsePublicKey(producerPublicKeyHex)
	if err != nil {
		return wrapKeyError(err)
	}

	sig, err := crypto.FromHex(signatureHex)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignatureFormat, err)
	}

	if err := crypto.VerifySignature(pub, digest[:], sig); err != nil {
		if errors.Is(err, crypto.ErrInvalidSignature) {
			return fmt.Errorf("%w: %s", ErrInvalidSignatureFormat, err)
		}
		return fmt.Errorf("%w: %s", ErrSignatureInvalid, err)
	}

	return nil
}
