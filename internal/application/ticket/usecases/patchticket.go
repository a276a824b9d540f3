package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type PatchTicketCommand struct {
	TicketID string
	Fields   ticket.PatchFields
	Actor    authorization.Actor
}

type PatchTicketUseCase struct {
	ticketRepo ticket.Repository
	clock      clock.Clock
	logger     logger.Interface
}

func NewPatchTicketUseCase(ticketRepo ticket.Repository, clk clock.Clock, logger logger.Interface) *PatchTicketUseCase {
	return &PatchTicketUseCase{
		ticketRepo: ticketRepo,
		clock:      clk,
		logger:     logger,
	}
}

// Execute narrows the request to the caller's role before merging it.
func (uc *PatchTicketUseCase) Execute(ctx context.Context, cmd PatchTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing patch ticket use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.Actor.ID,
		"role", cmd.Actor.Role,
	)

	patch := ticket.PatchFor(cmd.Actor.Role, cmd.Fields)
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.Update(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		return t.Apply(patch, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket patched", "ticket_id", t.ID(), "status", t.Status())
	return dto.ToTicketDTO(t), nil
}
