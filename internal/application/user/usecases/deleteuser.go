package usecases

import (
	"context"
	"fmt"

	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID int64
	Actor  authorization.Actor
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	ledger   loginguard.LedgerRepository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, ledger loginguard.LedgerRepository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		ledger:   ledger,
		logger:   logger,
	}
}

// Execute removes the user and the throttle entry of its login, so a later user with the same
// login starts clean.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID, "actor_id", cmd.Actor.ID)

	if cmd.UserID == cmd.Actor.ID {
		return errors.NewForbiddenError("you cannot delete your own account")
	}

	removed, err := uc.userRepo.Delete(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := uc.ledger.Delete(ctx, removed.Login()); err != nil {
		uc.logger.Errorw("failed to purge login attempts of deleted user",
			"user_id", removed.ID(),
			"login", removed.Login(),
			"error", err,
		)
		return fmt.Errorf("failed to purge login attempts: %w", err)
	}

	uc.logger.Infow("user deleted", "user_id", removed.ID(), "login", removed.Login())
	return nil
}
