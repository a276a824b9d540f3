package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/chamados/servicedesk/internal/application/auth/dto"
	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type ListLockoutsUseCase struct {
	ledger loginguard.LedgerRepository
	clock  clock.Clock
	logger logger.Interface
}

func NewListLockoutsUseCase(ledger loginguard.LedgerRepository, clk clock.Clock, logger logger.Interface) *ListLockoutsUseCase {
	return &ListLockoutsUseCase{
		ledger: ledger,
		clock:  clk,
		logger: logger,
	}
}

// Execute lists logins that are locked right now, the lock ending last first.
func (uc *ListLockoutsUseCase) Execute(ctx context.Context) ([]dto.LockoutDTO, error) {
	entries, err := uc.ledger.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list login attempts", "error", err)
		return nil, fmt.Errorf("failed to list login attempts: %w", err)
	}

	now := uc.clock.Now()
	result := make([]dto.LockoutDTO, 0)
	for _, e := range entries {
		if !e.LockedAt(now) {
			continue
		}
		result = append(result, dto.LockoutDTO{
			Login:            e.Login,
			FailCount:        e.FailCount,
			BlockedUntil:     *e.BlockedUntil,
			RemainingMinutes: e.RemainingMinutes(now),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].BlockedUntil.After(result[j].BlockedUntil)
	})
	return result, nil
}
