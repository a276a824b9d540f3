package user

import "context"

// Repository is the credential store.
type Repository interface {
	// List returns every user in storage order
	List(ctx context.Context) ([]*User, error)

	// GetByID returns ErrUserNotFound when absent
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByLogin matches case-insensitively and returns nil, nil when absent
	GetByLogin(ctx context.Context, login string) (*User, error)

	// Create assigns the id and rejects a login that is already taken
	Create(ctx context.Context, user *User) error

	// Update loads the user, applies fn and saves, holding the store for the whole cycle
	Update(ctx context.Context, id int64, fn func(*User) error) (*User, error)

	// Delete removes the user and returns what was removed
	Delete(ctx context.Context, id int64) (*User, error)
}
