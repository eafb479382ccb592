package crypto

import (
	"crypto/sha256"
	"errors"
	"testing"
)

func TestSign_VerifySignature_RoundTrip(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	digest := sha256.Sum256([]byte("record content"))
	sig := Sign(kp.Priv, digest[:])

	if err := VerifySignature(kp.Pub, digest[:], sig); err != nil {
		t.Errorf("VerifySignature() error = %v", err)
	}
}

func TestSign_Deterministic(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	digest := sha256.Sum256([]byte("record content"))

	sig1 := Sign(kp.Priv, digest[:])
	sig2 := Sign(kp.Priv, digest[:])

	// RFC 6979 nonces make signatures reproducible.
	if string(sig1) != string(sig2) {
		t.Error("two signatures over the same digest differ")
	}
}

func TestVerifySignature_WrongKey(t *testing.T) {
	signer, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	other, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	digest := sha256.Sum256([]byte("record content"))
	sig := Sign(signer.Priv, digest[:])

	if err := VerifySignature(other.Pub, digest[:], sig); !errors.Is(err, ErrSignatureVerificationFailed) {
		t.Errorf("VerifySignature() error = %v, want ErrSignatureVerificationFailed", err)
	}
}

func TestVerifySignature_TamperedDigest(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	digest := sha256.Sum256([]byte("record content"))
	sig := Sign(kp.Priv, digest[:])

	tampered := digest
	tampered[0] ^= 0x01

	if err := VerifySignature(kp.Pub, tampered[:], sig); !errors.Is(err, ErrSignatureVerificationFailed) {
		t.Errorf("VerifySignature() error = %v, want ErrSignatureVerificationFailed", err)
	}
}

func TestVerifySignature_MalformedSignature(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	digest := sha256.Sum256([]byte("record content"))

	if err := VerifySignature(kp.Pub, digest[:], []byte{0x01, 0x02}); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("VerifySignature() error = %v, want ErrInvalidSignature", err)
	}
}
