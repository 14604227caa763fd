package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"

	// Register KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSKeeper is the subset of *secrets.Keeper the key provider needs.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers for KMS-backed master key wrapping.
type KMSService interface {
	// OpenKeeper opens a secrets.Keeper for the configured KMS provider.
	// Returns an error if the key URI is invalid or the connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for the key URI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// LoadMasterKeyFromKMS loads a KMS-wrapped master key from the environment.
//
// In this mode LIFELOG_MASTER_KEY holds the base64-encoded KMS ciphertext of
// the 32-byte key rather than the hex-encoded key itself. The ciphertext is
// unwrapped once at startup; the decrypted key material is copied into the
// MasterKey and zeroed locally.
func LoadMasterKeyFromKMS(ctx context.Context, kms KMSService, keyURI string) (*cryptoDomain.MasterKey, error) {
	raw := os.Getenv(cryptoDomain.MasterKeyEnvVar)
	if raw == "" {
		return nil, cryptoDomain.ErrMasterKeyNotSet
	}

	ciphertext, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: expected base64 KMS ciphertext", cryptoDomain.ErrInvalidMasterKeyEncoding)
	}

	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, err
	}
	defer func() { _ = keeper.Close() }()

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap master key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	return cryptoDomain.NewMasterKey(key)
}
