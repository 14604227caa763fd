package domain

import (
	"github.com/lifelog-app/lifelog/internal/errors"
)

var (
	// ErrEntryNotFound indicates the requested journal entry does not exist
	// or has been soft-deleted.
	ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "entry not found")
)
