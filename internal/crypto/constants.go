package crypto

const (
	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "recordcrypt:record:v1"

	// PrivateKeySize is the size of a secp256k1 private key scalar in bytes.
	PrivateKeySize = 32
	// CompressedPublicKeySize is the size of a compressed secp256k1 point in bytes.
	CompressedPublicKeySize = 33
	// UncompressedPublicKeySize is the size of an uncompressed secp256k1 point in bytes.
	UncompressedPublicKeySize = 65
	// SharedSecretSize is the size of an ECDH shared secret (the affine
	// x-coordinate of the shared point) in bytes.
	SharedSecretSize = 32

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce/IV in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "ECDH-secp256k1:ECDSA-secp256k1:AES-256-GCM:HKDF-SHA-256"
