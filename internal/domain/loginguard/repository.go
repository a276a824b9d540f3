package loginguard

import "context"

// LedgerRepository stores throttle entries keyed by Key(login).
type LedgerRepository interface {
	// Update runs fn on the current entry (zero value when absent) and stores the result.
	// A clear result removes the entry. The store is held for the whole cycle.
	Update(ctx context.Context, login string, fn func(Entry) (Entry, error)) error

	List(ctx context.Context) ([]Entry, error)

	// Delete removes an entry; deleting an absent entry is not an error
	Delete(ctx context.Context, login string) error
}

// AuditRepository is the bounded login audit log.
type AuditRepository interface {
	// Append adds the event and drops the oldest ones beyond the retention limit
	Append(ctx context.Context, event AuditEvent) error

	// Recent returns up to limit events, newest first
	Recent(ctx context.Context, limit int) ([]AuditEvent, error)
}
