// Package crypto provides the cryptographic primitives behind the
// recordcrypt envelope format: secp256k1 key agreement, AES-256-GCM
// authenticated encryption, HKDF key derivation, and ECDSA digest
// signing.
//
// # Algorithm Suite
//
//   - ECDH over secp256k1: key agreement between an ephemeral (or
//     long-term sender) key and the recipient's public key. secp256k1 is
//     the curve used because record producers and consumers already hold
//     Ethereum-compatible identity keys; the same material doubles as a
//     blockchain identity and an encryption identity.
//
//   - AES-256-GCM: authenticated encryption with associated data (AEAD)
//     for record payloads. Provides confidentiality and integrity; a
//     failed tag check means tampering or a wrong key, and decryption
//     fails closed.
//
//   - HKDF-SHA-256 (RFC 5869): stretches the raw ECDH x-coordinate into
//     the AES key with domain separation. A legacy mode that feeds the
//     raw x-coordinate straight into the cipher exists for compatibility
//     with envelopes produced by the original system.
//
//   - ECDSA over secp256k1 (RFC 6979 deterministic nonces): signatures
//     over 32-byte content digests, DER-serialized.
//
// # Security Notes
//
// AES-GCM IVs MUST be unique for each encryption with the same key.
// IV reuse completely breaks the security of AES-GCM, allowing
// attackers to recover the authentication key and forge messages. The
// hybrid layer above this package sidesteps the problem by generating a
// fresh ephemeral key (and therefore a fresh AES key) per message, but
// the rule still binds anyone calling EncryptAESGCM directly.
//
// Shared secrets and derived keys are transient key material. They are
// wiped after use where possible; they must never be logged, returned
// to callers, or written to storage.
//
// # Encoding
//
// All boundary values (keys, IVs, tags, ciphertexts, digests,
// signatures) travel as lowercase hex strings. Parsing tolerates an
// optional 0x prefix; output never carries one.
package crypto
