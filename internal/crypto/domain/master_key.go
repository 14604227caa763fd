package domain

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
)

// MasterKey is the single symmetric secret used to seal and unseal every
// stored payload.
//
// The key is created once outside the application (operator-generated),
// read from the environment at process start, held in memory only, and never
// rotated within a running process. Every sealed envelope the service has
// ever written is bound to exactly this key; there is no per-record key
// derivation or key versioning.
//
// Construct it explicitly and pass it by dependency injection rather than
// reading the environment at call sites. This keeps validation in one place
// so every caller gets identical fail-fast behavior, and makes the provider
// trivially testable with fabricated keys.
type MasterKey struct {
	key []byte
}

// NewMasterKey creates a MasterKey from raw key material.
//
// The key must be exactly 32 bytes (256 bits). The bytes are copied, so the
// caller may zero its own slice after construction.
func NewMasterKey(key []byte) (*MasterKey, error) {
	if len(key) != MasterKeySize {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidKeySize, len(key))
	}

	k := make([]byte, MasterKeySize)
	copy(k, key)
	return &MasterKey{key: k}, nil
}

// Bytes returns the raw 32-byte key material.
//
// The returned slice is the internal buffer; callers must not modify it and
// must never log or persist it.
func (m *MasterKey) Bytes() []byte {
	return m.key
}

// Close zeroes the key material. The MasterKey is unusable afterwards.
func (m *MasterKey) Close() {
	Zero(m.key)
	m.key = nil
}

// LoadMasterKeyFromEnv loads and validates the master key from the
// LIFELOG_MASTER_KEY environment variable.
//
// The variable must hold the key as a 64-character hexadecimal string
// (32 random bytes, hex-encoded by any secure random-bytes utility). Both
// lowercase and uppercase hex digits are accepted.
//
// Each failure mode returns a distinct error so the operator can diagnose
// the misconfiguration from the log line alone:
//   - ErrMasterKeyNotSet if the variable is absent or empty
//   - ErrInvalidMasterKeyLength if the value is not exactly 64 characters
//     (the error message carries the actual length)
//   - ErrInvalidMasterKeyEncoding if any character is not a hex digit
//
// Validation is pure: no caching, no side effects beyond reading the
// environment. A silent fallback here would allow unencrypted or
// weakly-encrypted storage, so misconfiguration always fails loudly.
func LoadMasterKeyFromEnv() (*MasterKey, error) {
	raw := os.Getenv(MasterKeyEnvVar)
	if raw == "" {
		return nil, ErrMasterKeyNotSet
	}

	if len(raw) != MasterKeyHexLength {
		return nil, fmt.Errorf("%w, got %d characters", ErrInvalidMasterKeyLength, len(raw))
	}

	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, ErrInvalidMasterKeyEncoding
	}

	masterKey, err := NewMasterKey(key)
	Zero(key)
	if err != nil {
		return nil, err
	}

	return masterKey, nil
}

// ValidateMasterKeyOnStartup checks that a usable master key is configured
// and reports the result as a boolean so the host process can decide whether
// to continue starting or abort.
//
// The specific validation error is logged (never the key itself); the real
// contract is LoadMasterKeyFromEnv.
func ValidateMasterKeyOnStartup(logger *slog.Logger) bool {
	masterKey, err := LoadMasterKeyFromEnv()
	if err != nil {
		logger.Error("master key validation failed", slog.Any("error", err))
		return false
	}
	masterKey.Close()

	logger.Info("master key validated")
	return true
}
