package recordcrypt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"
)

// CanonicalJSON renders a value in the stable JSON form the original
// platform hashed before pinning: object keys sorted, ", " and ": "
// separators, and non-ASCII characters escaped as \uXXXX sequences
// (astral code points as surrogate pairs). The output is byte-for-byte
// what Python's json.dumps(v, sort_keys=True) emits, so digests of the
// canonical form match digests recorded by the original system.
func CanonicalJSON(v any) ([]byte, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}

	// Round-trip through a generic decode with UseNumber so numbers keep
	// their literal form instead of collapsing to float64.
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}

	var b strings.Builder
	writeCanonical(&b, generic)
	return []byte(b.String()), nil
}

func writeCanonical(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case json.Number:
		b.WriteString(t.String())
	case string:
		writeCanonicalString(b, t)
	case []any:
		b.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeCanonical(b, elem)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			writeCanonicalString(b, k)
			b.WriteString(": ")
			writeCanonical(b, t[k])
		}
		b.WriteByte('}')
	}
}

// writeCanonicalString escapes s the way the original platform did:
// backslash escapes for the usual control characters, \uXXXX for
// everything outside printable ASCII, and no HTML escaping of <, >, &.
func writeCanonicalString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				b.WriteRune(r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, hi, lo)
			default:
				fmt.Fprintf(b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
}
