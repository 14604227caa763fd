package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
)

func newTestSealer(t *testing.T, keyByte byte) Sealer {
	t.Helper()

	raw := make([]byte, cryptoDomain.MasterKeySize)
	for i := range raw {
		raw[i] = keyByte
	}

	masterKey, err := cryptoDomain.NewMasterKey(raw)
	require.NoError(t, err)
	t.Cleanup(masterKey.Close)

	sealer, err := NewSealer(masterKey)
	require.NoError(t, err)
	return sealer
}

func TestSealerRoundTrip(t *testing.T) {
	sealer := newTestSealer(t, 0x42)

	tests := []struct {
		name  string
		value any
	}{
		{"string", "a quiet day at the lake"},
		{"map", map[string]any{"mood": "calm", "score": float64(7)}},
		{"slice", []string{"walk", "coffee", "reading"}},
		{"nested", map[string]any{"entry": map[string]any{"text": "nested", "tags": []any{"a", "b"}}}},
		{"empty object", map[string]any{}},
		{"unicode", "café ☕ 日記"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := sealer.Seal(tt.value)
			require.NoError(t, err)

			var got any
			require.NoError(t, sealer.Unseal(envelope, &got))
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSealerConcreteScenario(t *testing.T) {
	// Key of 64 zero-hex chars, value {"message":"test"}.
	t.Setenv(cryptoDomain.MasterKeyEnvVar, strings.Repeat("0", 64))

	masterKey, err := cryptoDomain.LoadMasterKeyFromEnv()
	require.NoError(t, err)
	defer masterKey.Close()

	sealer, err := NewSealer(masterKey)
	require.NoError(t, err)

	value := map[string]string{"message": "test"}

	envelope, err := sealer.Seal(value)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, sealer.Unseal(envelope, &got))
	assert.Equal(t, map[string]string{"message": "test"}, got)

	// Flipping one hex character of authTag must yield an authentication
	// error, never the original value or garbage.
	corrupted := *envelope
	corrupted.AuthTag = flipHexChar(corrupted.AuthTag, 0)

	var corruptedOut map[string]string
	err = sealer.Unseal(&corrupted, &corruptedOut)
	assert.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
	assert.Empty(t, corruptedOut)
}

func TestSealerNonceUniqueness(t *testing.T) {
	sealer := newTestSealer(t, 0x01)

	const n = 10000
	seen := make(map[string]struct{}, n)

	for range n {
		envelope, err := sealer.Seal("same value every time")
		require.NoError(t, err)

		_, dup := seen[envelope.IV]
		require.False(t, dup, "duplicate nonce after %d seals", len(seen))
		seen[envelope.IV] = struct{}{}
	}
}

func TestSealerTamperDetection(t *testing.T) {
	sealer := newTestSealer(t, 0x07)

	envelope, err := sealer.Seal(map[string]string{"message": "test"})
	require.NoError(t, err)

	t.Run("single bit flip in ciphertext", func(t *testing.T) {
		for i := range len(envelope.EncryptedData) {
			corrupted := *envelope
			corrupted.EncryptedData = flipHexChar(corrupted.EncryptedData, i)

			var out any
			assert.ErrorIs(t, sealer.Unseal(&corrupted, &out), cryptoDomain.ErrAuthenticationFailed)
		}
	})

	t.Run("single bit flip in auth tag", func(t *testing.T) {
		for i := range len(envelope.AuthTag) {
			corrupted := *envelope
			corrupted.AuthTag = flipHexChar(corrupted.AuthTag, i)

			var out any
			assert.ErrorIs(t, sealer.Unseal(&corrupted, &out), cryptoDomain.ErrAuthenticationFailed)
		}
	})

	t.Run("different nonce", func(t *testing.T) {
		corrupted := *envelope
		corrupted.IV = flipHexChar(corrupted.IV, 3)

		var out any
		assert.ErrorIs(t, sealer.Unseal(&corrupted, &out), cryptoDomain.ErrAuthenticationFailed)
	})
}

func TestSealerWrongKeyRejection(t *testing.T) {
	sealer1 := newTestSealer(t, 0xaa)
	sealer2 := newTestSealer(t, 0xbb)

	envelope, err := sealer1.Seal("private thought")
	require.NoError(t, err)

	var out any
	assert.ErrorIs(t, sealer2.Unseal(envelope, &out), cryptoDomain.ErrAuthenticationFailed)
}

func TestSealerUnsealIdempotence(t *testing.T) {
	sealer := newTestSealer(t, 0x33)

	envelope, err := sealer.Seal(map[string]any{"message": "test", "count": float64(3)})
	require.NoError(t, err)

	var first, second any
	require.NoError(t, sealer.Unseal(envelope, &first))
	require.NoError(t, sealer.Unseal(envelope, &second))

	assert.Equal(t, first, second)
}

func TestSealerEnvelopeFormat(t *testing.T) {
	sealer := newTestSealer(t, 0x10)

	envelope, err := sealer.Seal("check the format")
	require.NoError(t, err)

	// Hex-encoded 16-byte nonce and 16-byte tag.
	assert.Len(t, envelope.IV, cryptoDomain.NonceSize*2)
	assert.Len(t, envelope.AuthTag, cryptoDomain.TagSize*2)
	assert.NotEmpty(t, envelope.EncryptedData)
}

func TestSealerRejectsMalformedEnvelope(t *testing.T) {
	sealer := newTestSealer(t, 0x11)

	envelope := &cryptoDomain.SealedEnvelope{
		EncryptedData: "00",
		IV:            "00", // 1 byte, not 16
		AuthTag:       strings.Repeat("0", 32),
	}

	var out any
	assert.ErrorIs(t, sealer.Unseal(envelope, &out), cryptoDomain.ErrInvalidEnvelope)
}

func TestSealerRejectsUnserializableValue(t *testing.T) {
	sealer := newTestSealer(t, 0x12)

	_, err := sealer.Seal(make(chan int))
	assert.Error(t, err)
}

// flipHexChar flips the low bit of the hex digit at index i, keeping the
// string valid hex so the failure comes from authentication, not decoding.
func flipHexChar(s string, i int) string {
	b := []byte(s)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return string(b)
}
