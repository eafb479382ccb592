package recordcrypt

import (
	"errors"
	"fmt"

	"github.com/healthledger/recordcrypt-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKeyFormat is returned for malformed, wrong-length, or
	// off-curve public/private key input.
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrAuthenticationFailed is returned when the AEAD tag does not
	// verify on decrypt. It signals tampering or a wrong key; no
	// plaintext is ever returned alongside it.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidEnvelopeFormat is returned for malformed envelope JSON
	// or a missing/wrong-length envelope field. Envelopes are rejected
	// before any cryptographic operation is attempted.
	ErrInvalidEnvelopeFormat = errors.New("invalid envelope format")

	// ErrInvalidDigestFormat is returned when a hex-encoded digest does
	// not decode to exactly 32 bytes.
	ErrInvalidDigestFormat = errors.New("invalid digest format")

	// ErrSignatureInvalid is returned when a digest signature does not
	// verify against the producer's public key.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrInvalidSignatureFormat is returned when a signature cannot be
	// decoded or parsed.
	ErrInvalidSignatureFormat = errors.New("invalid signature format")
)

// wrapKeyError converts internal key-parsing errors to the public
// sentinel so that errors.Is() checks work correctly.
func wrapKeyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, crypto.ErrInvalidPrivateKey) || errors.Is(err, crypto.ErrInvalidPublicKey) {
		return fmt.Errorf("%w: %s", ErrInvalidKeyFormat, err)
	}

	return err
}
