package domain

import (
	"github.com/lifelog-app/lifelog/internal/errors"
)

// Cryptographic operation error definitions.
//
// Key provider errors are distinguishable by message so an operator can tell
// a missing variable from a malformed one without the service ever printing
// the key itself. All errors wrap the standard domain errors from
// internal/errors so handlers can map them to HTTP status codes.
var (
	// ErrMasterKeyNotSet indicates the master key environment variable is absent.
	//
	// The service cannot safely handle encrypted data without a key, so
	// callers should treat this as fatal for the requesting operation.
	ErrMasterKeyNotSet = errors.New("master key is not set: LIFELOG_MASTER_KEY is required")

	// ErrInvalidMasterKeyLength indicates the master key is not exactly
	// 64 hexadecimal characters (32 bytes).
	ErrInvalidMasterKeyLength = errors.New("master key must be exactly 64 hex characters")

	// ErrInvalidMasterKeyEncoding indicates the master key contains
	// characters outside the hexadecimal alphabet.
	ErrInvalidMasterKeyEncoding = errors.New("master key must contain only hex characters")

	// ErrInvalidKeySize indicates a raw key is not exactly 32 bytes.
	//
	// Any deviation is a caller bug and fails fast rather than silently
	// truncating or padding the key.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "key must be exactly 32 bytes")

	// ErrAuthenticationFailed indicates ciphertext or tag verification failed
	// during unseal. This covers tampering, corruption, and use of the wrong
	// key; the cipher cannot distinguish between them and neither do we.
	// The affected record should be treated as unreadable.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "envelope authentication failed")

	// ErrDeserializationFailed indicates the decrypted bytes did not parse as
	// the expected serialized structure. Callers should treat this the same
	// as ErrAuthenticationFailed: the record is unreadable.
	ErrDeserializationFailed = errors.Wrap(errors.ErrInvalidInput, "decrypted payload is not valid")

	// ErrInvalidEnvelope indicates the stored envelope fields are malformed
	// (not hex, or wrong nonce/tag length) before any decryption is attempted.
	ErrInvalidEnvelope = errors.Wrap(errors.ErrInvalidInput, "invalid sealed envelope")
)
