package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid participant status transition")
	ErrMissingCredential = errors.New("missing bearer credential")
	ErrCredentialExpired = errors.New("bearer credential expired")
)

// ValidationError is a locally produced form/input error. It is resolved
// entirely client-side and must block the corresponding network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// CapacityConflict is raised when a capacity-lowering update would drop the
// attendee limit below the current accepted-participant count. Distinguished
// from a plain ValidationError because it depends on live participant data,
// not just form shape.
type CapacityConflict struct {
	AttendeeLimit int
	AcceptedCount int
}

func (e *CapacityConflict) Error() string {
	return fmt.Sprintf("attendee limit %d is below the current accepted participant count of %d", e.AttendeeLimit, e.AcceptedCount)
}

// ValidationMessage returns the human-readable message for any error produced
// by local validation (ValidationError or CapacityConflict) and reports
// whether err is such an error.
func ValidationMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	var cc *CapacityConflict
	if errors.As(err, &cc) {
		return cc.Error(), true
	}
	return "", false
}

// NetworkFailure is a transport-level failure: the remote organizer service
// produced no response at all.
type NetworkFailure struct {
	Op  string
	Err error
}

func (e *NetworkFailure) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkFailure) Unwrap() error { return e.Err }

// ServerRejection is a non-2xx response from the remote organizer service.
// Message holds the backend-supplied message when one was present.
type ServerRejection struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ServerRejection) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.StatusCode)
}
