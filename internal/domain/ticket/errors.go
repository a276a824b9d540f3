package ticket

import (
	"github.com/chamados/servicedesk/internal/shared/errors"
)

// DomainError is a ticket validation failure surfaced as 400
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

func ErrTicketNotFound(id string) *errors.AppError {
	return errors.NewNotFoundError("ticket not found", id)
}

func ErrAttachmentNotFound(storedName string) *errors.AppError {
	return errors.NewNotFoundError("attachment not found", storedName)
}
