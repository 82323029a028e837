package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrDatabaseError       = errors.New("database error")
)

// FieldError is a validation failure on a single request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidInput
}

func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// DatabaseError wraps a storage failure so callers can match ErrDatabaseError
// while the cause stays available for logging.
func DatabaseError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrDatabaseError, err)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrProposalNotFound) ||
		errors.Is(err, ErrGuestNotFound) ||
		errors.Is(err, ErrMemberNotFound)
}
