package ticket

import "context"

type Repository interface {
	// List returns every ticket, newest first
	List(ctx context.Context) ([]*Ticket, error)

	// GetByID returns ErrTicketNotFound when absent
	GetByID(ctx context.Context, id string) (*Ticket, error)

	// Create assigns a time-based id greater than any existing one
	Create(ctx context.Context, t *Ticket) error

	// Update loads the ticket, applies fn and saves, holding the store for the whole cycle.
	// Nothing is written when fn fails.
	Update(ctx context.Context, id string, fn func(*Ticket) error) (*Ticket, error)

	// Delete removes the ticket and returns it
	Delete(ctx context.Context, id string) (*Ticket, error)
}
