package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type RemoveAttachmentCommand struct {
	TicketID   string
	StoredName string
	Actor      authorization.Actor
}

type RemoveAttachmentUseCase struct {
	ticketRepo ticket.Repository
	files      AttachmentStore
	clock      clock.Clock
	logger     logger.Interface
}

func NewRemoveAttachmentUseCase(
	ticketRepo ticket.Repository,
	files AttachmentStore,
	clk clock.Clock,
	logger logger.Interface,
) *RemoveAttachmentUseCase {
	return &RemoveAttachmentUseCase{
		ticketRepo: ticketRepo,
		files:      files,
		clock:      clk,
		logger:     logger,
	}
}

// Execute saves the ticket without the attachment first, then deletes the file.
// An unknown stored name fails with not found and leaves the disk alone.
func (uc *RemoveAttachmentUseCase) Execute(ctx context.Context, cmd RemoveAttachmentCommand) error {
	uc.logger.Infow("executing remove attachment use case",
		"ticket_id", cmd.TicketID,
		"stored_name", cmd.StoredName,
		"actor_id", cmd.Actor.ID,
	)

	var removed ticket.Attachment
	_, err := uc.ticketRepo.Update(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		var err error
		removed, err = t.RemoveAttachment(cmd.StoredName, uc.clock.Now())
		return err
	})
	if err != nil {
		return err
	}

	if err := uc.files.Remove(removed.StoredName); err != nil {
		// metadata is already gone; the orphaned file is harmless
		uc.logger.Warnw("failed to delete attachment file", "stored_name", removed.StoredName, "error", err)
	}
	return nil
}
