package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptAESGCM encrypts plaintext using AES-256-GCM under the given key
// and IV. The ciphertext and the 16-byte authentication tag are returned
// separately because the envelope format stores them as separate fields.
//
// The IV must be 12 bytes, generated from a cryptographically secure
// random source, and must never repeat for the same key.
func EncryptAESGCM(key, plaintext, iv []byte) (ciphertext, tag []byte, err error) {
	if len(key) != AESKeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if len(iv) != AESNonceSize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(iv), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	sealed := gcm.Seal(nil, iv, plaintext, nil)

	// Seal appends the tag to the ciphertext; split it back out.
	split := len(sealed) - AESTagSize
	return sealed[:split], sealed[split:], nil
}

// DecryptAESGCM decrypts ciphertext using AES-256-GCM and verifies the
// authentication tag. All length checks run before any cipher work. On
// tag mismatch it returns ErrDecryptionFailed and no plaintext.
func DecryptAESGCM(key, iv, ciphertext, tag []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if len(iv) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(iv), AESNonceSize)
	}

	if len(tag) != AESTagSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidTagSize, len(tag), AESTagSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
