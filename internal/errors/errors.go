package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrIndexOutOfRange    = errors.New("panel index out of range")
	ErrSchemaMismatch     = errors.New("snapshot schema mismatch")
	ErrMalformedSnapshot  = errors.New("malformed snapshot")
	ErrBusy               = errors.New("accordion busy")
	ErrNotInitialized     = errors.New("accordion not initialized")
	ErrAlreadyInitialized = errors.New("accordion already initialized")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// IndexError reports a panel index outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("panel index %d outside [0, %d)", e.Index, e.Count)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// SchemaError reports a snapshot whose panel count disagrees with the live configuration.
type SchemaError struct {
	Want int
	Got  int
}

func (e SchemaError) Error() string {
	return fmt.Sprintf("snapshot has %d panels, want %d", e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrSchemaMismatch.
func (e SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}
