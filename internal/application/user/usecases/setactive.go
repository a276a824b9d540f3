package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/user/dto"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type SetActiveCommand struct {
	UserID int64
	Active bool
	Actor  authorization.Actor
}

type SetActiveUseCase struct {
	userRepo user.Repository
	clock    clock.Clock
	logger   logger.Interface
}

func NewSetActiveUseCase(userRepo user.Repository, clk clock.Clock, logger logger.Interface) *SetActiveUseCase {
	return &SetActiveUseCase{
		userRepo: userRepo,
		clock:    clk,
		logger:   logger,
	}
}

// Execute refuses to deactivate the caller. Activating oneself is accepted and changes nothing.
func (uc *SetActiveUseCase) Execute(ctx context.Context, cmd SetActiveCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing set active use case", "user_id", cmd.UserID, "active", cmd.Active, "actor_id", cmd.Actor.ID)

	if cmd.UserID == cmd.Actor.ID {
		if !cmd.Active {
			return nil, errors.NewForbiddenError("you cannot deactivate your own account")
		}
		u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
		if err != nil {
			return nil, err
		}
		return dto.ToUserDTO(u), nil
	}

	u, err := uc.userRepo.Update(ctx, cmd.UserID, func(u *user.User) error {
		u.SetActive(cmd.Active, uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user active flag changed", "user_id", u.ID(), "active", u.IsActive())
	return dto.ToUserDTO(u), nil
}
