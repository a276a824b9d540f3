package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID string
	// Login of the analyst to assign; empty means the caller
	Login string
	Actor authorization.Actor
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	clock      clock.Clock
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	clk clock.Clock,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		clock:      clk,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"login", cmd.Login,
		"actor_id", cmd.Actor.ID,
	)

	assignee, err := uc.resolveAssignee(ctx, cmd)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.Update(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		t.AssignTo(assignee.Name(), uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "assignee_id", assignee.ID())
	return dto.ToTicketDTO(t), nil
}

// resolveAssignee returns the stored user whose canonical name gets written. Only admins may name
// someone other than themselves.
func (uc *AssignTicketUseCase) resolveAssignee(ctx context.Context, cmd AssignTicketCommand) (*user.User, error) {
	if strings.TrimSpace(cmd.Login) == "" {
		return uc.userRepo.GetByID(ctx, cmd.Actor.ID)
	}

	u, err := uc.userRepo.GetByLogin(ctx, cmd.Login)
	if err != nil {
		return nil, fmt.Errorf("failed to look up assignee: %w", err)
	}

	if !cmd.Actor.IsAdmin() {
		if u == nil || u.ID() != cmd.Actor.ID {
			return nil, errors.NewForbiddenError("analysts can only assign tickets to themselves")
		}
		return u, nil
	}

	if u == nil {
		return nil, errors.NewNotFoundError("user not found", cmd.Login)
	}
	return u, nil
}
