package errors

import (
	"errors"
	"fmt"
)

// Store misuse errors. Recoverable; they indicate a caller bug or a stale
// reference, never a corrupted store.
var (
	ErrRequestNotFound    = errors.New("request not found")
	ErrDuplicateRequestID = errors.New("request id already exists")
)

// ValidationError reports a missing or invalid input field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidStateError reports a lifecycle transition attempted from the wrong
// state. The request is left unchanged; callers should re-fetch current state.
type InvalidStateError struct {
	RequestID string
	Current   string
	Attempted string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("request %s: cannot %s from state %s", e.RequestID, e.Attempted, e.Current)
}

// NewInvalidStateError creates an InvalidStateError for the given transition
func NewInvalidStateError(requestID, current, attempted string) *InvalidStateError {
	return &InvalidStateError{RequestID: requestID, Current: current, Attempted: attempted}
}

// VerificationError reports a wrong or malformed verification code. The
// request state is unchanged and verification may be retried.
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed: %s", e.Reason)
}

// NewVerificationError creates a VerificationError
func NewVerificationError(reason string) *VerificationError {
	return &VerificationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidState reports whether err is an InvalidStateError
func IsInvalidState(err error) bool {
	var se *InvalidStateError
	return errors.As(err, &se)
}

// IsVerification reports whether err is a VerificationError
func IsVerification(err error) bool {
	var ve *VerificationError
	return errors.As(err, &ve)
}
