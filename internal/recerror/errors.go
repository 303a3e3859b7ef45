// Package recerror defines the typed errors used across the record pipeline.
package recerror

import "fmt"

// FormatError represents a field value that does not match its format contract.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format for %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// MissingFieldError represents a required field that is empty after trimming.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %s is empty", e.Field)
}

// StoreReadError represents a backing worksheet that exists but could not be
// read, or that lacks the expected sheet. It is always recoverable: the
// caller falls back to an empty table.
type StoreReadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *StoreReadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("worksheet %s: sheet '%s' unreadable: %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("worksheet %s unreadable: %v", e.Path, e.Err)
}

func (e *StoreReadError) Unwrap() error {
	return e.Err
}

// AdvisoryError represents a failed call to the advisory endpoint. It is never
// returned to callers directly; the advisor converts it to a fallback reply.
type AdvisoryError struct {
	Endpoint string
	Stage    string
	Err      error
}

func (e *AdvisoryError) Error() string {
	return fmt.Sprintf("advisory call to %s failed during %s: %v", e.Endpoint, e.Stage, e.Err)
}

func (e *AdvisoryError) Unwrap() error {
	return e.Err
}
