package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"
)

func TestXChaCha20Poly1305RoundTrip(t *testing.T) {
	cipher, err := NewXChaCha20Poly1305(testKey(t))
	require.NoError(t, err)

	plaintext := []byte("full journal export blob")

	ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
	require.NoError(t, err)
	assert.Len(t, nonce, chacha20poly1305.NonceSizeX)

	decrypted, err := cipher.Decrypt(ciphertext, nonce, nil)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestXChaCha20Poly1305InvalidKey(t *testing.T) {
	_, err := NewXChaCha20Poly1305(make([]byte, 16))
	assert.Error(t, err)
}

func TestXChaCha20Poly1305TamperDetection(t *testing.T) {
	cipher, err := NewXChaCha20Poly1305(testKey(t))
	require.NoError(t, err)

	ciphertext, nonce, err := cipher.Encrypt([]byte("export"), nil)
	require.NoError(t, err)

	ciphertext[0] ^= 0x01

	_, err = cipher.Decrypt(ciphertext, nonce, nil)
	assert.Error(t, err)
}
