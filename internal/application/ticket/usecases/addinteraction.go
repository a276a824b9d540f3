package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type AddInteractionCommand struct {
	TicketID string
	Message  string
	Actor    authorization.Actor
}

type AddInteractionUseCase struct {
	ticketRepo ticket.Repository
	clock      clock.Clock
	logger     logger.Interface
}

func NewAddInteractionUseCase(ticketRepo ticket.Repository, clk clock.Clock, logger logger.Interface) *AddInteractionUseCase {
	return &AddInteractionUseCase{
		ticketRepo: ticketRepo,
		clock:      clk,
		logger:     logger,
	}
}

func (uc *AddInteractionUseCase) Execute(ctx context.Context, cmd AddInteractionCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing add interaction use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.Update(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		_, err := t.AddInteraction(cmd.Actor, cmd.Message, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
