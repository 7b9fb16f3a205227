package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed client-library error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for the failure modes the library can surface itself.
// HTTP-level failures are never modelled as errors; they travel in-band on
// the response wrapper.
var (
	ErrMissingBaseURL    = New("MISSING_BASE_URL", "base URL must be provided")
	ErrConflictingConfig = New("CONFLICTING_CONFIG", "conflicting request configuration")
	ErrUnknownGenEd      = New("UNKNOWN_GEN_ED", "unknown gen-ed code")
	ErrMalformedMeeting  = New("MALFORMED_MEETING", "malformed meeting string")
	ErrInternal          = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
