package domain

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMasterKeyFromEnv(t *testing.T) {
	validKey := strings.Repeat("0123456789abcdef", 4) // 64 hex chars

	t.Run("valid lowercase hex key", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, validKey)

		masterKey, err := LoadMasterKeyFromEnv()
		require.NoError(t, err)
		defer masterKey.Close()

		assert.Len(t, masterKey.Bytes(), MasterKeySize)
	})

	t.Run("valid uppercase hex key", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, strings.ToUpper(validKey))

		masterKey, err := LoadMasterKeyFromEnv()
		require.NoError(t, err)
		defer masterKey.Close()

		assert.Len(t, masterKey.Bytes(), MasterKeySize)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, "")

		_, err := LoadMasterKeyFromEnv()
		assert.ErrorIs(t, err, ErrMasterKeyNotSet)
	})

	t.Run("63 characters", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, validKey[:63])

		_, err := LoadMasterKeyFromEnv()
		require.ErrorIs(t, err, ErrInvalidMasterKeyLength)
		assert.Contains(t, err.Error(), "63")
	})

	t.Run("65 characters", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, validKey+"0")

		_, err := LoadMasterKeyFromEnv()
		require.ErrorIs(t, err, ErrInvalidMasterKeyLength)
		assert.Contains(t, err.Error(), "65")
	})

	t.Run("non-hex character", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, validKey[:63]+"g")

		_, err := LoadMasterKeyFromEnv()
		assert.ErrorIs(t, err, ErrInvalidMasterKeyEncoding)
	})

	t.Run("error never contains the key", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, validKey[:63])

		_, err := LoadMasterKeyFromEnv()
		require.Error(t, err)
		assert.NotContains(t, err.Error(), validKey[:16])
	})
}

func TestNewMasterKey(t *testing.T) {
	t.Run("accepts 32 bytes and copies them", func(t *testing.T) {
		raw := make([]byte, MasterKeySize)
		for i := range raw {
			raw[i] = byte(i)
		}

		masterKey, err := NewMasterKey(raw)
		require.NoError(t, err)
		defer masterKey.Close()

		// Caller zeroing its slice must not affect the master key.
		Zero(raw)
		assert.Equal(t, byte(1), masterKey.Bytes()[1])
	})

	t.Run("rejects wrong sizes", func(t *testing.T) {
		for _, size := range []int{0, 16, 31, 33, 64} {
			_, err := NewMasterKey(make([]byte, size))
			assert.ErrorIs(t, err, ErrInvalidKeySize, "size %d", size)
		}
	})
}

func TestMasterKeyClose(t *testing.T) {
	masterKey, err := NewMasterKey([]byte(strings.Repeat("k", 32)))
	require.NoError(t, err)

	masterKey.Close()

	assert.Nil(t, masterKey.Bytes())
}

func TestValidateMasterKeyOnStartup(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, strings.Repeat("ab", 32))

		assert.True(t, ValidateMasterKeyOnStartup(logger))
	})

	t.Run("failure", func(t *testing.T) {
		t.Setenv(MasterKeyEnvVar, "too-short")

		assert.False(t, ValidateMasterKeyOnStartup(logger))
	})
}
