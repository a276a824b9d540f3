package dto

import (
	"github.com/chamados/servicedesk/internal/application/ticket/usecases"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/infrastructure/upload"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// CreateTicketRequest is bound from a multipart form; files travel separately under "attachments".
type CreateTicketRequest struct {
	Title       string `form:"title" binding:"required"`
	Client      string `form:"client" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Description string `form:"description" binding:"required"`
	Priority    string `form:"priority" binding:"required,ticketpriority"`
	Requester   string `form:"requester" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(files []upload.File, actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Client:      r.Client,
		Category:    r.Category,
		Description: r.Description,
		Priority:    r.Priority,
		Requester:   r.Requester,
		Files:       files,
		Actor:       actor,
	}
}

// PatchTicketRequest carries every patchable field. Which of them apply depends on the caller's role.
type PatchTicketRequest struct {
	Title           *string `json:"title"`
	Client          *string `json:"client"`
	Category        *string `json:"category"`
	Description     *string `json:"description"`
	Priority        *string `json:"priority" binding:"omitempty,ticketpriority"`
	Requester       *string `json:"requester"`
	Status          *string `json:"status" binding:"omitempty,ticketstatus"`
	AssignedAnalyst *string `json:"assignedAnalyst"`
}

func (r *PatchTicketRequest) ToCommand(ticketID string, actor authorization.Actor) usecases.PatchTicketCommand {
	return usecases.PatchTicketCommand{
		TicketID: ticketID,
		Fields: ticket.PatchFields{
			Title:           r.Title,
			Client:          r.Client,
			Category:        r.Category,
			Description:     r.Description,
			Priority:        r.Priority,
			Requester:       r.Requester,
			Status:          r.Status,
			AssignedAnalyst: r.AssignedAnalyst,
		},
		Actor: actor,
	}
}

type InteractionRequest struct {
	Message string `json:"message" binding:"required"`
}

// AssignRequest: an empty login assigns the caller.
type AssignRequest struct {
	Login string `json:"login"`
}
