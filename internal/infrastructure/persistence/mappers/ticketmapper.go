package mappers

import (
	"fmt"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	vo "github.com/chamados/servicedesk/internal/domain/ticket/valueobjects"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// TicketMapper handles the conversion between Ticket aggregates and stored records.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) models.TicketModel
	ToDomain(m models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) models.TicketModel {
	rec := models.TicketModel{
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
		Interactions:    []models.InteractionModel{},
		Attachments:     []models.AttachmentModel{},
	}
	for _, in := range t.Interactions() {
		rec.Interactions = append(rec.Interactions, models.InteractionModel{
			Timestamp: in.Timestamp,
			Author:    in.Author,
			Role:      in.Role.String(),
			Message:   in.Message,
		})
	}
	for _, a := range t.Attachments() {
		rec.Attachments = append(rec.Attachments, models.AttachmentModel(a))
	}
	return rec
}

func (m *TicketMapperImpl) ToDomain(rec models.TicketModel) (*ticket.Ticket, error) {
	interactions := make([]ticket.Interaction, 0, len(rec.Interactions))
	for _, in := range rec.Interactions {
		interactions = append(interactions, ticket.Interaction{
			Timestamp: in.Timestamp,
			Author:    in.Author,
			Role:      authorization.UserRole(in.Role),
			Message:   in.Message,
		})
	}
	attachments := make([]ticket.Attachment, 0, len(rec.Attachments))
	for _, a := range rec.Attachments {
		attachments = append(attachments, ticket.Attachment(a))
	}

	t, err := ticket.ReconstructTicket(ticket.ReconstructParams{
		ID:              rec.ID,
		Title:           rec.Title,
		Client:          rec.Client,
		Category:        rec.Category,
		Description:     rec.Description,
		Priority:        vo.Priority(rec.Priority),
		Requester:       rec.Requester,
		Status:          vo.TicketStatus(rec.Status),
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
		CreatedBy:       rec.CreatedBy,
		CreatedByID:     rec.CreatedByID,
		AssignedAnalyst: rec.AssignedAnalyst,
		Interactions:    interactions,
		Attachments:     attachments,
	})
	if err != nil {
		return nil, fmt.Errorf("map ticket %q: %w", rec.ID, err)
	}
	return t, nil
}
