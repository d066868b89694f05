package pass

import (
	"errors"
	"fmt"
)

var (
	// ErrEntryNotFound matches any *EntryNotFoundError via errors.Is.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrFieldNotFound matches any *FieldNotFoundError via errors.Is.
	ErrFieldNotFound = errors.New("field not found")
)

// EntryNotFoundError is returned when the store tool fails for an entry.
// Missing entries, a missing binary and permission problems all surface
// as this error; Err holds the underlying cause when there is one.
type EntryNotFoundError struct {
	Entry string
	Err   error
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("entry %q not found", e.Entry)
}

func (e *EntryNotFoundError) Is(target error) bool { return target == ErrEntryNotFound }

func (e *EntryNotFoundError) Unwrap() error { return e.Err }

// FieldNotFoundError is returned when an entry exists but has no line
// starting with the requested field prefix.
type FieldNotFoundError struct {
	Entry string
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found in entry %q", e.Field, e.Entry)
}

func (e *FieldNotFoundError) Is(target error) bool { return target == ErrFieldNotFound }
