package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTOTPRequired       = errors.New("two-factor code required")
	ErrInvalidTOTP        = errors.New("invalid two-factor code")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidSecret      = errors.New("invalid seed secret")
	ErrNotConfigured      = errors.New("not configured")
	ErrNoData             = errors.New("no data to export")
)

// NotFoundError reports a missing row, either the one addressed by the
// request or one referenced through a foreign key.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// ValidationError carries a client-facing message and matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
