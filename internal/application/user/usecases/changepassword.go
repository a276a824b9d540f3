package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID   int64
	Password string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	clock    clock.Clock
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, clk clock.Clock, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.UserID)

	_, err := uc.userRepo.Update(ctx, cmd.UserID, func(u *user.User) error {
		return u.ChangePassword(cmd.Password, uc.clock.Now())
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
