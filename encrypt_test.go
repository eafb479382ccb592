package recordcrypt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/healthledger/recordcrypt-go/internal/crypto"
)

// expandPublicKey re-encodes a compressed public key in uncompressed form.
func expandPublicKey(compressedHex string) (string, error) {
	pub, err := crypto.ParsePublicKey(compressedHex)
	if err != nil {
		return "", err
	}
	return crypto.ToHex(pub.SerializeUncompressed()), nil
}

func mustKeyPair(t *testing.T) *KeyPair {
	t.Helper()

	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	return kp
}

func TestEncryptForRecipient_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello world")},
		{"record json", []byte(`{"patientId": "p-123", "observations": ["a1c", "ldl"]}`)},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 50000)},
	}

	kp := mustKeyPair(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := EncryptForRecipient(tt.plaintext, kp.PublicKeyHex)
			if err != nil {
				t.Fatalf("EncryptForRecipient() error = %v", err)
			}

			if env.EphemeralPublicKey == "" {
				t.Error("envelope missing ephemeralPublicKey")
			}

			decrypted, err := DecryptEnvelope(env, kp.PrivateKeyHex)
			if err != nil {
				t.Fatalf("DecryptEnvelope() error = %v", err)
			}

			if !bytes.Equal(decrypted, tt.plaintext) {
				t.Errorf("decrypted = %v, want %v", decrypted, tt.plaintext)
			}
		})
	}
}

func TestEncryptForRecipient_UncompressedRecipientKey(t *testing.T) {
	kp := mustKeyPair(t)

	uncompressed, err := expandPublicKey(kp.PublicKeyHex)
	if err != nil {
		t.Fatal(err)
	}

	env, err := EncryptForRecipient([]byte("payload"), uncompressed)
	if err != nil {
		t.Fatalf("EncryptForRecipient() error = %v", err)
	}

	decrypted, err := DecryptEnvelope(env, kp.PrivateKeyHex)
	if err != nil {
		t.Fatalf("DecryptEnvelope() error = %v", err)
	}

	if string(decrypted) != "payload" {
		t.Errorf("decrypted = %q, want %q", decrypted, "payload")
	}
}

func TestEncryptForRecipient_FreshMaterialPerCall(t *testing.T) {
	kp := mustKeyPair(t)
	plaintext := []byte("same plaintext twice")

	env1, err := EncryptForRecipient(plaintext, kp.PublicKeyHex)
	if err != nil {
		t.Fatal(err)
	}

	env2, err := EncryptForRecipient(plaintext, kp.PublicKeyHex)
	if err != nil {
		t.Fatal(err)
	}

	if env1.IV == env2.IV {
		t.Error("two encryptions reused an IV")
	}
	if env1.EphemeralPublicKey == env2.EphemeralPublicKey {
		t.Error("two encryptions reused an ephemeral key")
	}
	if env1.Encrypted == env2.Encrypted {
		t.Error("two encryptions produced identical ciphertext")
	}
}

func TestEncryptForRecipient_InvalidRecipientKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not hex", strings.Repeat("zz", 33)},
		{"truncated", strings.Repeat("02", 20)},
		{"not on curve", "02" + strings.Repeat("ff", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncryptForRecipient([]byte("test"), tt.key)
			if !errors.Is(err, ErrInvalidKeyFormat) {
				t.Errorf("EncryptForRecipient() error = %v, want ErrInvalidKeyFormat", err)
			}
		})
	}
}

func TestEncryptFromSender_RoundTrip(t *testing.T) {
	sender := mustKeyPair(t)
	recipient := mustKeyPair(t)
	plaintext := []byte("sender-keyed record")

	env, err := EncryptFromSender(plaintext, sender.PrivateKeyHex, recipient.PublicKeyHex)
	if err != nil {
		t.Fatalf("EncryptFromSender() error = %v", err)
	}

	if env.EphemeralPublicKey != "" {
		t.Errorf("sender-keyed envelope carries ephemeralPublicKey %q", env.EphemeralPublicKey)
	}

	decrypted, err := DecryptFromSender(env, recipient.PrivateKeyHex, sender.PublicKeyHex)
	if err != nil {
		t.Fatalf("DecryptFromSender() error = %v", err)
	}

	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestEncryptRawSharedSecretMode_RoundTrip(t *testing.T) {
	kp := mustKeyPair(t)
	plaintext := []byte("legacy envelope payload")

	env, err := EncryptForRecipient(plaintext, kp.PublicKeyHex, WithRawSharedSecret())
	if err != nil {
		t.Fatal(err)
	}

	decrypted, err := DecryptEnvelope(env, kp.PrivateKeyHex, WithRawSharedSecret())
	if err != nil {
		t.Fatalf("DecryptEnvelope() error = %v", err)
	}

	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestEncrypt_CrossModeFails(t *testing.T) {
	kp := mustKeyPair(t)

	env, err := EncryptForRecipient([]byte("payload"), kp.PublicKeyHex, WithRawSharedSecret())
	if err != nil {
		t.Fatal(err)
	}

	// HKDF decrypt of a raw-keyed envelope derives a different AES key,
	// so the tag check fails.
	if _, err := DecryptEnvelope(env, kp.PrivateKeyHex); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("DecryptEnvelope() error = %v, want ErrAuthenticationFailed", err)
	}
}

// TestHealthRecordScenario pins the end-to-end behavior for the fixed
// producer identity used across the platform's test fixtures.
func TestHealthRecordScenario(t *testing.T) {
	const fixedPrivateKey = "0101010101010101010101010101010101010101010101010101010101010101"
	plaintext := []byte("health-record-payload")

	publicKey, err := PublicKeyFromPrivate(fixedPrivateKey)
	if err != nil {
		t.Fatalf("PublicKeyFromPrivate() error = %v", err)
	}

	env, err := EncryptForRecipient(plaintext, publicKey)
	if err != nil {
		t.Fatalf("EncryptForRecipient() error = %v", err)
	}

	decrypted, err := DecryptEnvelope(env, fixedPrivateKey)
	if err != nil {
		t.Fatalf("DecryptEnvelope() error = %v", err)
	}

	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}

	unrelated := mustKeyPair(t)
	if _, err := DecryptEnvelope(env, unrelated.PrivateKeyHex); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("unrelated key: error = %v, want ErrAuthenticationFailed", err)
	}
}
