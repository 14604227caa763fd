package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/lifelog-app/lifelog/internal/errors"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		err := apperrors.Wrap(apperrors.ErrNotFound, "entry lookup failed")

		assert.Error(t, err)
		assert.Equal(t, "entry lookup failed: not found", err.Error())
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.NoError(t, apperrors.Wrap(nil, "context"))
	})

	t.Run("preserves chain through multiple wraps", func(t *testing.T) {
		err := apperrors.Wrap(apperrors.ErrInvalidInput, "inner")
		err = apperrors.Wrap(err, "outer")

		assert.Equal(t, "outer: inner: invalid input", err.Error())
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("request failed: %w", apperrors.ErrUnauthorized)

	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	assert.False(t, apperrors.Is(err, apperrors.ErrForbidden))
}

func TestNew(t *testing.T) {
	err := apperrors.New("something went wrong")

	assert.Error(t, err)
	assert.Equal(t, "something went wrong", err.Error())
}
