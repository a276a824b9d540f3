package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/infrastructure/upload"
)

// AttachmentStore keeps the files behind ticket attachments.
type AttachmentStore interface {
	Save(ctx context.Context, files []upload.File, uploader string) ([]ticket.Attachment, error)
	Remove(storedName string) error
	RemoveAll(attachments []ticket.Attachment)
}

// MessageRenderer turns an interaction message into safe HTML.
type MessageRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type PatchTicketExecutor interface {
	Execute(ctx context.Context, cmd PatchTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AddAttachmentsExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentsCommand) ([]dto.AttachmentDTO, error)
}

type RemoveAttachmentExecutor interface {
	Execute(ctx context.Context, cmd RemoveAttachmentCommand) error
}

type AddInteractionExecutor interface {
	Execute(ctx context.Context, cmd AddInteractionCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}
