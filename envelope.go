package recordcrypt

import (
	"encoding/json"
	"fmt"

	"github.com/healthledger/recordcrypt-go/internal/crypto"
)

// Envelope is the wire and storage representation of one hybrid-encrypted
// record. All fields are lowercase hex strings; the JSON shape (field
// names and encoding) matches the envelopes pinned by the original
// platform and must not change.
type Envelope struct {
	// EphemeralPublicKey is the sender's one-time public key used for
	// this message's key agreement. It is absent when the envelope was
	// keyed with the sender's long-term key (see EncryptFromSender).
	EphemeralPublicKey string `json:"ephemeralPublicKey,omitempty"`
	// IV is the 12-byte AES-GCM initialization vector, unique per
	// encryption.
	IV string `json:"iv"`
	// AuthTag is the 16-byte AEAD authentication tag.
	AuthTag string `json:"authTag"`
	// Encrypted is the ciphertext.
	Encrypted string `json:"encrypted"`
}

// envelopeParts holds the decoded binary fields of a validated envelope.
type envelopeParts struct {
	iv         []byte
	tag        []byte
	ciphertext []byte
}

// ParseEnvelope decodes and validates a JSON envelope. Malformed JSON,
// missing fields, bad hex, or wrong-length iv/authTag are rejected with
// ErrInvalidEnvelopeFormat before any cryptographic work happens.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEnvelopeFormat, err)
	}

	if _, err := env.decode(); err != nil {
		return nil, err
	}

	return &env, nil
}

// decode validates the envelope fields and returns their binary form.
func (e *Envelope) decode() (*envelopeParts, error) {
	iv, err := crypto.FromHex(e.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: iv: %s", ErrInvalidEnvelopeFormat, err)
	}
	if len(iv) != crypto.AESNonceSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d",
			ErrInvalidEnvelopeFormat, crypto.AESNonceSize, len(iv))
	}

	tag, err := crypto.FromHex(e.AuthTag)
	if err != nil {
		return nil, fmt.Errorf("%w: authTag: %s", ErrInvalidEnvelopeFormat, err)
	}
	if len(tag) != crypto.AESTagSize {
		return nil, fmt.Errorf("%w: authTag must be %d bytes, got %d",
			ErrInvalidEnvelopeFormat, crypto.AESTagSize, len(tag))
	}

	ciphertext, err := crypto.FromHex(e.Encrypted)
	if err != nil {
		return nil, fmt.Errorf("%w: encrypted: %s", ErrInvalidEnvelopeFormat, err)
	}

	return &envelopeParts{iv: iv, tag: tag, ciphertext: ciphertext}, nil
}

// Bytes serializes the envelope to its canonical JSON form.
func (e *Envelope) Bytes() ([]byte, error) {
	return json.Marshal(e)
}

// String returns the JSON form, or an empty string if marshaling fails.
func (e *Envelope) String() string {
	b, err := e.Bytes()
	if err != nil {
		return ""
	}
	return string(b)
}
