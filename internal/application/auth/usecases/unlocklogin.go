package usecases

import (
	"context"
	"fmt"

	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type UnlockLoginCommand struct {
	Login     string
	Actor     authorization.Actor
	SourceIP  string
	UserAgent string
}

type UnlockLoginUseCase struct {
	ledger      loginguard.LedgerRepository
	securityLog *SecurityLog
	logger      logger.Interface
}

func NewUnlockLoginUseCase(
	ledger loginguard.LedgerRepository,
	securityLog *SecurityLog,
	logger logger.Interface,
) *UnlockLoginUseCase {
	return &UnlockLoginUseCase{
		ledger:      ledger,
		securityLog: securityLog,
		logger:      logger,
	}
}

// Execute clears the ledger entry whether or not one exists, and always leaves an audit line.
func (uc *UnlockLoginUseCase) Execute(ctx context.Context, cmd UnlockLoginCommand) error {
	key := loginguard.Key(cmd.Login)
	if key == "" {
		return errors.NewValidationError("login is required")
	}

	uc.logger.Infow("executing unlock login use case", "login", key, "actor", cmd.Actor.Name)

	if err := uc.ledger.Delete(ctx, key); err != nil {
		uc.logger.Errorw("failed to unlock login", "login", key, "error", err)
		return fmt.Errorf("failed to unlock login: %w", err)
	}

	origin := loginguard.Origin{SourceIP: cmd.SourceIP, UserAgent: cmd.UserAgent}
	uc.securityLog.Record(ctx, key, loginguard.OutcomeManualUnlock, loginguard.DetailUnlockedBy+cmd.Actor.Name, origin, nil)
	uc.securityLog.unlock()

	return nil
}
