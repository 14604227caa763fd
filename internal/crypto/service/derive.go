package service

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
)

// ExportKeyInfo is the HKDF info label for the export encryption key.
// Versioned so a future layout change can derive a fresh key.
const ExportKeyInfo = "lifelog-export-key-v1"

// DeriveKey derives a 32-byte subkey from the master key using HKDF-SHA256
// with the given info label. Separates storage-envelope key usage from other
// key usages such as export encryption; the master key itself is only ever
// fed to the sealer.
//
// The caller owns the returned slice and should zero it when done.
func DeriveKey(masterKey *cryptoDomain.MasterKey, info string) ([]byte, error) {
	reader := hkdf.New(sha256.New, masterKey.Bytes(), nil, []byte(info))

	subkey := make([]byte, cryptoDomain.MasterKeySize)
	if _, err := io.ReadFull(reader, subkey); err != nil {
		return nil, fmt.Errorf("failed to derive subkey: %w", err)
	}

	return subkey, nil
}
