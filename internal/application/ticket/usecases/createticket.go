package usecases

import (
	"context"
	"fmt"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/infrastructure/upload"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Client      string
	Category    string
	Description string
	Priority    string
	Requester   string
	Files       []upload.File
	Actor       authorization.Actor
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	files      AttachmentStore
	clock      clock.Clock
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	files AttachmentStore,
	clk clock.Clock,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		files:      files,
		clock:      clk,
		logger:     logger,
	}
}

// Execute validates the form before any file is written and removes the files again if the ticket
// cannot be stored.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"actor_id", cmd.Actor.ID,
		"title", cmd.Title,
		"files", len(cmd.Files),
	)

	t, err := ticket.NewTicket(ticket.NewTicketParams{
		Title:       cmd.Title,
		Client:      cmd.Client,
		Category:    cmd.Category,
		Description: cmd.Description,
		Priority:    cmd.Priority,
		Requester:   cmd.Requester,
	}, cmd.Actor, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	attachments, err := uc.files.Save(ctx, cmd.Files, cmd.Actor.Name)
	if err != nil {
		return nil, err
	}
	t.AddAttachments(attachments, uc.clock.Now())

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.files.RemoveAll(attachments)
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "attachments", len(attachments))
	return dto.ToTicketDTO(t), nil
}
