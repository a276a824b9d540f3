package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID string
	Actor    authorization.Actor
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	files      AttachmentStore
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, files AttachmentStore, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		files:      files,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	removed, err := uc.ticketRepo.Delete(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	uc.files.RemoveAll(removed.Attachments())

	uc.logger.Infow("ticket deleted", "ticket_id", removed.ID(), "attachments", len(removed.Attachments()))
	return nil
}
