// Package domain defines the change feed entities used for device sync.
// Every write to a synced record appends a change row in the same
// transaction; devices pull changes ordered by sequence number.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecordType identifies which kind of record a change refers to.
type RecordType string

const (
	RecordTypeEntry   RecordType = "entry"
	RecordTypeMessage RecordType = "message"
)

// Op is the kind of mutation a change represents.
type Op string

const (
	OpUpsert Op = "upsert"
	OpDelete Op = "delete"
)

// Change is one row of the change feed. Seq is a monotonically increasing
// database sequence; devices use it as their sync cursor.
type Change struct {
	Seq        int64
	RecordID   uuid.UUID
	RecordType RecordType
	Op         Op
	CreatedAt  time.Time
}

// NewChange builds an unsaved change row for a record mutation.
// Seq is assigned by the database on insert.
func NewChange(recordID uuid.UUID, recordType RecordType, op Op) *Change {
	return &Change{
		RecordID:   recordID,
		RecordType: recordType,
		Op:         op,
		CreatedAt:  time.Now().UTC(),
	}
}
