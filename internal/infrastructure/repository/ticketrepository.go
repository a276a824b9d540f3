package repository

import (
	"context"
	"sort"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/mappers"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/constants"
	"github.com/chamados/servicedesk/internal/shared/id"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type TicketRepository struct {
	tickets *collection[models.TicketModel]
	mapper  mappers.TicketMapper
	clock   clock.Clock
	logger  logger.Interface
}

func NewTicketRepository(backend storage.Backend, clk clock.Clock, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		tickets: newCollection[models.TicketModel](backend, constants.StoreTickets),
		mapper:  mappers.NewTicketMapper(),
		clock:   clk,
		logger:  logger,
	}
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	items, err := r.tickets.read(ctx)
	if err != nil {
		r.logger.Errorw("failed to read tickets", "error", err)
		return nil, err
	}

	result := make([]*ticket.Ticket, 0, len(items))
	for _, m := range items {
		t, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return id.Less(result[j].ID(), result[i].ID())
	})
	return result, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	items, err := r.tickets.read(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfTicket(items, ticketID)
	if i < 0 {
		return nil, ticket.ErrTicketNotFound(ticketID)
	}
	return r.mapper.ToDomain(items[i])
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	err := r.tickets.modify(ctx, func(items []models.TicketModel) ([]models.TicketModel, error) {
		ids := make([]string, len(items))
		for i, m := range items {
			ids[i] = m.ID
		}
		if err := t.SetID(id.Next(r.clock.Now(), ids)); err != nil {
			return nil, err
		}
		return append(items, r.mapper.ToModel(t)), nil
	})
	if err != nil {
		r.logger.Errorw("failed to create ticket", "error", err)
		return err
	}

	r.logger.Infow("ticket created", "id", t.ID(), "created_by", t.CreatedBy())
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, ticketID string, fn func(*ticket.Ticket) error) (*ticket.Ticket, error) {
	var updated *ticket.Ticket
	err := r.tickets.modify(ctx, func(items []models.TicketModel) ([]models.TicketModel, error) {
		i := indexOfTicket(items, ticketID)
		if i < 0 {
			return nil, ticket.ErrTicketNotFound(ticketID)
		}
		t, err := r.mapper.ToDomain(items[i])
		if err != nil {
			return nil, err
		}
		if err := fn(t); err != nil {
			return nil, err
		}
		items[i] = r.mapper.ToModel(t)
		updated = t
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	var removed *ticket.Ticket
	err := r.tickets.modify(ctx, func(items []models.TicketModel) ([]models.TicketModel, error) {
		i := indexOfTicket(items, ticketID)
		if i < 0 {
			return nil, ticket.ErrTicketNotFound(ticketID)
		}
		t, err := r.mapper.ToDomain(items[i])
		if err != nil {
			return nil, err
		}
		removed = t
		return append(items[:i], items[i+1:]...), nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Infow("ticket deleted", "id", ticketID)
	return removed, nil
}

func indexOfTicket(items []models.TicketModel, ticketID string) int {
	for i, m := range items {
		if m.ID == ticketID {
			return i
		}
	}
	return -1
}
