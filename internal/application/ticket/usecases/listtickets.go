package usecases

import (
	"context"
	"fmt"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type ListScope int

const (
	// ScopeQueue is every ticket
	ScopeQueue ListScope = iota
	// ScopeMine is what the caller opened
	ScopeMine
)

type ListTicketsQuery struct {
	Actor authorization.Actor
	Scope ListScope
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns tickets newest first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	if query.Scope != ScopeMine {
		return dto.ToTicketDTOList(tickets), nil
	}

	mine := make([]*ticket.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.CreatedByActor(query.Actor) {
			mine = append(mine, t)
		}
	}
	return dto.ToTicketDTOList(mine), nil
}
