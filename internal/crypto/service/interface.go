// Package service implements the encryption module: AEAD ciphers and the
// sealed-envelope transform applied to every payload before persistence.
package service

import (
	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// Sealer converts arbitrary JSON-serializable values into sealed envelopes
// and reverses the transformation.
//
// Both operations are stateless, single-shot transformations with no
// intermediate states. Implementations are safe for concurrent use: each
// Seal call generates its own nonce and no shared state is mutated, so
// callers processing a batch may parallelize freely across independent
// records. There is no retry logic anywhere; retrying a deterministic
// cryptographic failure with identical inputs cannot succeed.
type Sealer interface {
	// Seal serializes value to canonical JSON and encrypts it into a
	// sealed envelope under the master key.
	Seal(value any) (*cryptoDomain.SealedEnvelope, error)

	// Unseal decrypts and verifies the envelope in one pass, then
	// deserializes the plaintext into out (a pointer, as for json.Unmarshal).
	// Fails with ErrAuthenticationFailed on tag mismatch and
	// ErrDeserializationFailed if the plaintext is not valid JSON.
	Unseal(envelope *cryptoDomain.SealedEnvelope, out any) error

	// UnsealRaw decrypts and verifies the envelope and returns the plaintext
	// bytes, for callers that manage their own serialization.
	UnsealRaw(envelope *cryptoDomain.SealedEnvelope) ([]byte, error)
}
