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

type ChangeRoleCommand struct {
	UserID int64
	Role   string
	Actor  authorization.Actor
}

type ChangeRoleUseCase struct {
	userRepo user.Repository
	clock    clock.Clock
	logger   logger.Interface
}

func NewChangeRoleUseCase(userRepo user.Repository, clk clock.Clock, logger logger.Interface) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo: userRepo,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing change role use case", "user_id", cmd.UserID, "role", cmd.Role, "actor_id", cmd.Actor.ID)

	role, ok := authorization.ParseUserRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role", "role must be admin or analyst")
	}
	if cmd.UserID == cmd.Actor.ID {
		return nil, errors.NewForbiddenError("you cannot change your own role")
	}

	u, err := uc.userRepo.Update(ctx, cmd.UserID, func(u *user.User) error {
		return u.ChangeRole(role, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user role changed", "user_id", u.ID(), "role", u.Role())
	return dto.ToUserDTO(u), nil
}
