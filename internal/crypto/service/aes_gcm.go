package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// This implementation is parameterized for the sealed-envelope format:
//   - 256-bit key (32 bytes)
//   - 16-byte nonce, randomly generated per encryption call
//   - 16-byte authentication tag, returned appended to the ciphertext
//
// The 16-byte nonce differs from Go's 12-byte GCM default because the
// envelope format fixes the IV field at 16 bytes; the cipher is constructed
// with a matching nonce size rather than truncating or padding.
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from
//	multiple goroutines. Each encryption operation generates a unique nonce
//	independently from crypto/rand, which is the only cross-call invariant
//	that must hold under concurrency.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance with a 16-byte nonce size.
//
// The key must be exactly 32 bytes (256 bits). Keys should be generated using
// a cryptographically secure random source.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.MasterKeySize {
		return nil, fmt.Errorf("%w, got %d", cryptoDomain.ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM with optional additional
// authenticated data.
//
// A unique 16-byte nonce is randomly generated for each call using
// crypto/rand; two calls with identical inputs never produce the same nonce
// (probabilistically, by construction). The nonce must be stored alongside
// the ciphertext for later decryption and must never be reused with the
// same key.
//
// The returned ciphertext includes the 16-byte authentication tag appended
// to the end. The only side effect is consuming entropy from the secure
// random source.
func (a *AESGCMCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt decrypts ciphertext using AES-256-GCM with the provided nonce and AAD.
//
// Decryption and integrity verification happen in one pass. If the
// authentication tag does not verify, no plaintext is returned; the error
// covers tampering, corruption, and use of the wrong key without
// distinguishing between them.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
