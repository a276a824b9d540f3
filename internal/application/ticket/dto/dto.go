package dto

import (
	"time"

	"github.com/chamados/servicedesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Client          string           `json:"client"`
	Category        string           `json:"category"`
	Description     string           `json:"description"`
	Priority        string           `json:"priority"`
	Requester       string           `json:"requester"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	CreatedBy       string           `json:"createdBy"`
	CreatedByID     int64            `json:"createdById,omitempty"`
	AssignedAnalyst string           `json:"assignedAnalyst"`
	Interactions    []InteractionDTO `json:"interactions"`
	Attachments     []AttachmentDTO  `json:"attachments"`
}

type InteractionDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	// MessageHTML is only filled when the caller asks for rendered messages
	MessageHTML string `json:"messageHtml,omitempty"`
}

type AttachmentDTO struct {
	OriginalName string    `json:"originalName"`
	StoredName   string    `json:"storedName"`
	Path         string    `json:"path"`
	UploadedAt   time.Time `json:"uploadedAt"`
	UploadedBy   string    `json:"uploadedBy"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	interactions := make([]InteractionDTO, 0, len(t.Interactions()))
	for _, in := range t.Interactions() {
		interactions = append(interactions, InteractionDTO{
			Timestamp: in.Timestamp,
			Author:    in.Author,
			Role:      in.Role.String(),
			Message:   in.Message,
		})
	}

	return &TicketDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Client:          t.Client(),
		Category:        t.Category(),
		Description:     t.Description(),
		Priority:        t.Priority().String(),
		Requester:       t.Requester(),
		Status:          t.Status().String(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		CreatedBy:       t.CreatedBy(),
		CreatedByID:     t.CreatedByID(),
		AssignedAnalyst: t.AssignedAnalyst(),
		Interactions:    interactions,
		Attachments:     ToAttachmentDTOList(t.Attachments()),
	}
}

func ToTicketDTOList(tickets []*ticket.Ticket) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, ToTicketDTO(t))
	}
	return result
}

func ToAttachmentDTOList(atts []ticket.Attachment) []AttachmentDTO {
	result := make([]AttachmentDTO, 0, len(atts))
	for _, a := range atts {
		result = append(result, AttachmentDTO(a))
	}
	return result
}
