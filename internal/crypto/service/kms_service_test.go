package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
)

// localKeeperURI builds a localsecrets URI from a raw 32-byte key.
// The localsecrets driver needs no external KMS, which keeps these tests hermetic.
func localKeeperURI(key []byte) string {
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestKMSServiceOpenKeeper(t *testing.T) {
	kms := NewKMSService()

	t.Run("valid local keeper", func(t *testing.T) {
		keeper, err := kms.OpenKeeper(context.Background(), localKeeperURI(make([]byte, 32)))
		require.NoError(t, err)
		defer func() { _ = keeper.Close() }()

		assert.NotNil(t, keeper)
	})

	t.Run("invalid uri", func(t *testing.T) {
		_, err := kms.OpenKeeper(context.Background(), "not-a-kms://nope")
		assert.Error(t, err)
	})
}

func TestLoadMasterKeyFromKMS(t *testing.T) {
	ctx := context.Background()
	kms := NewKMSService()

	wrappingKey := make([]byte, 32)
	for i := range wrappingKey {
		wrappingKey[i] = byte(i + 1)
	}
	keyURI := localKeeperURI(wrappingKey)

	// Wrap a known master key with the local keeper.
	keeper, err := kms.OpenKeeper(ctx, keyURI)
	require.NoError(t, err)
	defer func() { _ = keeper.Close() }()

	masterKeyBytes := make([]byte, 32)
	for i := range masterKeyBytes {
		masterKeyBytes[i] = byte(0xf0 - i)
	}

	ciphertext, err := keeper.Encrypt(ctx, masterKeyBytes)
	require.NoError(t, err)

	t.Run("unwraps master key", func(t *testing.T) {
		t.Setenv(cryptoDomain.MasterKeyEnvVar, base64.StdEncoding.EncodeToString(ciphertext))

		masterKey, err := LoadMasterKeyFromKMS(ctx, kms, keyURI)
		require.NoError(t, err)
		defer masterKey.Close()

		assert.Equal(t, masterKeyBytes, masterKey.Bytes())
	})

	t.Run("missing env var", func(t *testing.T) {
		t.Setenv(cryptoDomain.MasterKeyEnvVar, "")

		_, err := LoadMasterKeyFromKMS(ctx, kms, keyURI)
		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyNotSet)
	})

	t.Run("not base64", func(t *testing.T) {
		t.Setenv(cryptoDomain.MasterKeyEnvVar, "!!!not-base64!!!")

		_, err := LoadMasterKeyFromKMS(ctx, kms, keyURI)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidMasterKeyEncoding)
	})

	t.Run("wrong wrapping key", func(t *testing.T) {
		t.Setenv(cryptoDomain.MasterKeyEnvVar, base64.StdEncoding.EncodeToString(ciphertext))

		otherKey := make([]byte, 32)
		_, err := LoadMasterKeyFromKMS(ctx, kms, localKeeperURI(otherKey))
		assert.Error(t, err)
	})
}
