package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
	// RenderHTML adds messageHtml to every interaction
	RenderHTML bool
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   MessageRenderer
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, renderer MessageRenderer, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	result := dto.ToTicketDTO(t)
	if query.RenderHTML {
		for i := range result.Interactions {
			html, err := uc.renderer.ToHTMLSanitized(result.Interactions[i].Message)
			if err != nil {
				// the plain message is still there
				uc.logger.Warnw("failed to render interaction", "ticket_id", t.ID(), "index", i, "error", err)
				continue
			}
			result.Interactions[i].MessageHTML = html
		}
	}
	return result, nil
}
