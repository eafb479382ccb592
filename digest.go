package recordcrypt

import (
	"crypto/sha256"
	"fmt"

	"github.com/healthledger/recordcrypt-go/internal/crypto"
)

// DigestSize is the size of a content digest in bytes.
const DigestSize = sha256.Size

// Digest computes the SHA-256 digest of exactly the supplied bytes.
// Canonicalization is the caller's responsibility; identical byte
// sequences always produce identical digests, which is what lets a
// verifier recompute the digest after decryption and compare it
// byte-for-byte against the pinned value.
func Digest(b []byte) [DigestSize]byte {
	return sha256.Sum256(b)
}

// DigestJSON computes the digest of a value's canonical JSON form (see
// CanonicalJSON). Logically equal objects digest identically regardless
// of construction order, and the digest matches what the original
// platform recorded for the same record. Strings should be digested
// directly with Digest, not wrapped in JSON.
func DigestJSON(v any) ([DigestSize]byte, error) {
	canonical, err := CanonicalJSON(v)
	if err != nil {
		return [DigestSize]byte{}, err
	}
	return Digest(canonical), nil
}

// DigestHex computes the digest of b and returns it hex-encoded.
func DigestHex(b []byte) string {
	d := Digest(b)
	return crypto.ToHex(d[:])
}

// DigestFromHex decodes a hex-encoded digest. The input must decode to
// exactly 32 bytes; an optional 0x prefix is accepted.
func DigestFromHex(s string) ([DigestSize]byte, error) {
	var digest [DigestSize]byte

	raw, err := crypto.FromHex(s)
	if err != nil {
		return digest, fmt.Errorf("%w: %s", ErrInvalidDigestFormat, err)
	}

	if len(raw) != DigestSize {
		return digest, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidDigestFormat, len(raw), DigestSize)
	}

	copy(digest[:], raw)
	return digest, nil
}
