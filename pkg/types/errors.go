package types

import (
	"errors"
	"fmt"
)

// Container lifecycle errors.
var (
	ErrContainerClosed   = errors.New("state container is closed")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data dir must not be empty")
)

// ValidationError reports a record that would violate a collection's
// shape or uniqueness invariants. Replace rejects the whole collection;
// the caller decides how to surface the message.
type ValidationError struct {
	Collection string // collection name; filled by ValidateCollection
	RecordID   int64  // offending record id (0 when the id itself is missing)
	Field      string // offending field
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("invalid record %d: %s %s", e.RecordID, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: invalid record %d: %s %s", e.Collection, e.RecordID, e.Field, e.Reason)
}

// StorageError reports a failed slot write. The in-memory state is
// already committed when this is returned; the next successful save
// reconciles by writing the then-current full collection.
type StorageError struct {
	Slot string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("slot %s: %v", e.Slot, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
