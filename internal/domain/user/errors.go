package user

import (
	"github.com/chamados/servicedesk/internal/shared/errors"
)

// DomainError is a user validation failure surfaced as 400
type DomainError struct {
	*errors.AppError
}

func NewDomainError(message string, details ...string) *DomainError {
	return &DomainError{AppError: errors.NewValidationError(message, details...)}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.AppError.Error()
}

// Unwrap lets errors.GetAppError see the wrapped AppError
func (e *DomainError) Unwrap() error {
	return e.AppError
}

func ErrUserNotFound() *errors.AppError {
	return errors.NewNotFoundError("user not found")
}

func ErrLoginTaken(login string) *errors.AppError {
	return errors.NewConflictError("login already in use", login)
}
