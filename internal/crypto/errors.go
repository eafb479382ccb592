package crypto

import "errors"

var (
	// ErrInvalidPrivateKey is returned when a private key is malformed,
	// the wrong length, or a zero scalar.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned when a public key is malformed or
	// the encoded point is not on the secp256k1 curve.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrDecryptionFailed is returned when AEAD decryption fails, which
	// means the authentication tag did not verify.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce/IV size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidTagSize is returned when the authentication tag size is invalid.
	ErrInvalidTagSize = errors.New("invalid auth tag size")

	// ErrInvalidHex is returned when a hex-encoded field cannot be decoded.
	ErrInvalidHex = errors.New("invalid hex encoding")

	// ErrSignatureVerificationFailed is returned when an ECDSA signature
	// does not verify against the digest and public key.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrInvalidSignature is returned when a signature cannot be parsed.
	ErrInvalidSignature = errors.New("invalid signature encoding")
)
