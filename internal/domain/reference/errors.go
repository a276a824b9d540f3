package reference

import (
	"github.com/chamados/servicedesk/internal/shared/errors"
)

// DomainError is a reference data validation failure surfaced as 400
type DomainError struct {
	*errors.AppError
}

func NewDomainError(message string, details ...string) *DomainError {
	return &DomainError{AppError: errors.NewValidationError(message, details...)}
}

func (e *DomainError) Error() string {
	return e.AppError.Error()
}

func (e *DomainError) Unwrap() error {
	return e.AppError
}

// ErrNotFound is returned for a reference record lookup miss. kind is client, category or group.
func ErrNotFound(kind, id string) *errors.AppError {
	return errors.NewNotFoundError(kind+" not found", id)
}

func ErrDuplicate(kind, key string) *errors.AppError {
	return errors.NewConflictError(kind+" already exists", key)
}
