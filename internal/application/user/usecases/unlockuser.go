package usecases

import (
	"context"

	authUsecases "github.com/chamados/servicedesk/internal/application/auth/usecases"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type UnlockUserCommand struct {
	UserID    int64
	Actor     authorization.Actor
	SourceIP  string
	UserAgent string
}

type UnlockUserUseCase struct {
	userRepo user.Repository
	unlock   authUsecases.UnlockLoginExecutor
	logger   logger.Interface
}

func NewUnlockUserUseCase(userRepo user.Repository, unlock authUsecases.UnlockLoginExecutor, logger logger.Interface) *UnlockUserUseCase {
	return &UnlockUserUseCase{
		userRepo: userRepo,
		unlock:   unlock,
		logger:   logger,
	}
}

// Execute resolves the user's login and runs the regular login unlock on it.
func (uc *UnlockUserUseCase) Execute(ctx context.Context, cmd UnlockUserCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	return uc.unlock.Execute(ctx, authUsecases.UnlockLoginCommand{
		Login:     u.Login(),
		Actor:     cmd.Actor,
		SourceIP:  cmd.SourceIP,
		UserAgent: cmd.UserAgent,
	})
}
