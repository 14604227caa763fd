package domain

// Fixed sizes for the sealed envelope format. Stored envelopes are only
// readable if these never change, so they are constants rather than
// configuration.
const (
	// MasterKeySize is the required master key length in bytes (AES-256).
	MasterKeySize = 32

	// MasterKeyHexLength is the length of the hex-encoded master key as it
	// appears in the environment (32 bytes * 2 hex digits per byte).
	MasterKeyHexLength = 64

	// NonceSize is the length in bytes of the per-seal random nonce (IV).
	NonceSize = 16

	// TagSize is the length in bytes of the GCM authentication tag.
	TagSize = 16
)

// MasterKeyEnvVar is the environment variable holding the master key.
const MasterKeyEnvVar = "LIFELOG_MASTER_KEY"
