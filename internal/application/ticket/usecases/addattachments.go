package usecases

import (
	"context"
	"fmt"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/infrastructure/upload"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type AddAttachmentsCommand struct {
	TicketID string
	Files    []upload.File
	Actor    authorization.Actor
}

type AddAttachmentsUseCase struct {
	ticketRepo ticket.Repository
	files      AttachmentStore
	clock      clock.Clock
	logger     logger.Interface
}

func NewAddAttachmentsUseCase(
	ticketRepo ticket.Repository,
	files AttachmentStore,
	clk clock.Clock,
	logger logger.Interface,
) *AddAttachmentsUseCase {
	return &AddAttachmentsUseCase{
		ticketRepo: ticketRepo,
		files:      files,
		clock:      clk,
		logger:     logger,
	}
}

// Execute returns the full attachment list of the ticket after the upload.
func (uc *AddAttachmentsUseCase) Execute(ctx context.Context, cmd AddAttachmentsCommand) ([]dto.AttachmentDTO, error) {
	uc.logger.Infow("executing add attachments use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.Actor.ID,
		"files", len(cmd.Files),
	)

	if len(cmd.Files) == 0 {
		return nil, errors.NewValidationError("no files were sent")
	}

	// fail before writing files for a ticket that does not exist
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	attachments, err := uc.files.Save(ctx, cmd.Files, cmd.Actor.Name)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.Update(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		t.AddAttachments(attachments, uc.clock.Now())
		return nil
	})
	if err != nil {
		uc.files.RemoveAll(attachments)
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to attach files", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to attach files: %w", err)
	}

	return dto.ToAttachmentDTOList(t.Attachments()), nil
}
