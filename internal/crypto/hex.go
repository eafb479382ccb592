package crypto

import (
	"encoding/hex"
	"fmt"
)

// ToHex encodes bytes as lowercase hex without a 0x prefix. All envelope
// fields and digests are emitted in this form.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hex string to bytes. An optional 0x/0X prefix is
// accepted, since key material in the wider system is frequently carried
// in Ethereum-style prefixed form.
func FromHex(s string) ([]byte, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return data, nil
}
