// Package service provides device secret generation and verification.
package service

// SecretService defines operations for generating and verifying device secrets.
type SecretService interface {
	// GenerateSecret creates a cryptographically secure random secret and
	// returns both the plain text and its Argon2id hash. Only the hash is
	// safe to persist.
	GenerateSecret() (plainSecret string, hashedSecret string, err error)

	// HashSecret hashes a plain text secret using Argon2id.
	HashSecret(plainSecret string) (hashedSecret string, err error)

	// CompareSecret performs a constant-time comparison between a plain
	// secret and its hash. Returns true only when they match.
	CompareSecret(plainSecret string, hashedSecret string) bool
}
