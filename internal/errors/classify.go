package errors

import (
	"errors"
)

// ErrorSeverity indicates how serious an error is for the calling layer.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // Expected, nothing to do
	SeverityWarning                      // Degraded, recovered automatically
	SeverityError                        // Operation failed
	SeverityFatal                        // Programmer error, must not happen in development
)

// Recovery describes what the controller does after an error.
type Recovery int

const (
	RecoverNone    Recovery = iota // Propagate to the caller
	RecoverDefault                 // Discard stored state, use fresh defaults
	RecoverIgnore                  // Log and carry on with the state unchanged
)

// StateError wraps an error with its severity and recovery disposition.
type StateError struct {
	Err      error
	Severity ErrorSeverity
	Recovery Recovery
	Title    string
}

func (e StateError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e StateError) Unwrap() error {
	return e.Err
}

// ClassifyError converts an error into a StateError. strict selects the
// development behavior where index errors are fatal instead of ignored.
func ClassifyError(err error, strict bool) *StateError {
	if err == nil {
		return nil
	}

	var stateErr *StateError
	if errors.As(err, &stateErr) {
		return stateErr
	}

	switch {
	case errors.Is(err, ErrSchemaMismatch):
		return &StateError{
			Err:      err,
			Severity: SeverityWarning,
			Recovery: RecoverDefault,
			Title:    "Stale Snapshot",
		}

	case errors.Is(err, ErrMalformedSnapshot):
		return &StateError{
			Err:      err,
			Severity: SeverityWarning,
			Recovery: RecoverDefault,
			Title:    "Malformed Snapshot",
		}

	case errors.Is(err, ErrIndexOutOfRange):
		if strict {
			return &StateError{
				Err:      err,
				Severity: SeverityFatal,
				Recovery: RecoverNone,
				Title:    "Index Out Of Range",
			}
		}
		return &StateError{
			Err:      err,
			Severity: SeverityError,
			Recovery: RecoverIgnore,
			Title:    "Index Out Of Range",
		}

	case errors.As(err, new(ValidationError)):
		return &StateError{
			Err:      err,
			Severity: SeverityError,
			Recovery: RecoverNone,
			Title:    "Validation Error",
		}

	case errors.Is(err, ErrAlreadyInitialized):
		return &StateError{
			Err:      err,
			Severity: SeverityError,
			Recovery: RecoverIgnore,
			Title:    "Already Initialized",
		}

	case errors.Is(err, ErrBusy):
		return &StateError{
			Err:      err,
			Severity: SeverityInfo,
			Recovery: RecoverIgnore,
			Title:    "Busy",
		}
	}

	return &StateError{
		Err:      err,
		Severity: SeverityError,
		Recovery: RecoverNone,
		Title:    "Unexpected Error",
	}
}
