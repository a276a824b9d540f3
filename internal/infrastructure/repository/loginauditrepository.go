package repository

import (
	"context"

	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/mappers"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/constants"
)

// LoginAuditRepository keeps the newest maxEntries audit events in append order.
type LoginAuditRepository struct {
	events     *collection[models.LoginAuditModel]
	maxEntries int
}

func NewLoginAuditRepository(backend storage.Backend, maxEntries int) loginguard.AuditRepository {
	if maxEntries <= 0 {
		maxEntries = constants.MaxAuditLimit
	}
	return &LoginAuditRepository{
		events:     newCollection[models.LoginAuditModel](backend, constants.StoreLoginAudit),
		maxEntries: maxEntries,
	}
}

func (r *LoginAuditRepository) Append(ctx context.Context, event loginguard.AuditEvent) error {
	return r.events.modify(ctx, func(items []models.LoginAuditModel) ([]models.LoginAuditModel, error) {
		items = append(items, mappers.LoginAuditToModel(event))
		if over := len(items) - r.maxEntries; over > 0 {
			items = items[over:]
		}
		return items, nil
	})
}

// Recent returns the newest events first. A non-positive limit returns everything.
func (r *LoginAuditRepository) Recent(ctx context.Context, limit int) ([]loginguard.AuditEvent, error) {
	items, err := r.events.read(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	result := make([]loginguard.AuditEvent, 0, limit)
	for i := len(items) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, mappers.LoginAuditToDomain(items[i]))
	}
	return result, nil
}
