package repository

import (
	"context"

	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/mappers"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/constants"
)

// LoginAttemptRepository is the throttle ledger. Only non-clear entries are stored.
type LoginAttemptRepository struct {
	entries *collection[models.LoginAttemptModel]
}

func NewLoginAttemptRepository(backend storage.Backend) loginguard.LedgerRepository {
	return &LoginAttemptRepository{
		entries: newCollection[models.LoginAttemptModel](backend, constants.StoreLoginAttempts),
	}
}

func (r *LoginAttemptRepository) Update(ctx context.Context, login string, fn func(loginguard.Entry) (loginguard.Entry, error)) error {
	key := loginguard.Key(login)
	return r.entries.modify(ctx, func(items []models.LoginAttemptModel) ([]models.LoginAttemptModel, error) {
		i := indexOfEntry(items, key)
		current := loginguard.Entry{Login: key}
		if i >= 0 {
			current = mappers.LoginAttemptToDomain(items[i])
		}

		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		next.Login = key

		switch {
		case next.IsClear() && i < 0:
			return nil, errUnchanged
		case next.IsClear():
			return append(items[:i], items[i+1:]...), nil
		case i < 0:
			return append(items, mappers.LoginAttemptToModel(next)), nil
		default:
			items[i] = mappers.LoginAttemptToModel(next)
			return items, nil
		}
	})
}

func (r *LoginAttemptRepository) List(ctx context.Context) ([]loginguard.Entry, error) {
	items, err := r.entries.read(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]loginguard.Entry, 0, len(items))
	for _, m := range items {
		result = append(result, mappers.LoginAttemptToDomain(m))
	}
	return result, nil
}

func (r *LoginAttemptRepository) Delete(ctx context.Context, login string) error {
	key := loginguard.Key(login)
	return r.entries.modify(ctx, func(items []models.LoginAttemptModel) ([]models.LoginAttemptModel, error) {
		i := indexOfEntry(items, key)
		if i < 0 {
			return nil, errUnchanged
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

func indexOfEntry(items []models.LoginAttemptModel, key string) int {
	for i, m := range items {
		if loginguard.Key(m.Login) == key {
			return i
		}
	}
	return -1
}
