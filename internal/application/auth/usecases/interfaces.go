package usecases

import (
	"context"
	"time"

	"github.com/chamados/servicedesk/internal/application/auth/dto"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// TokenIssuer signs session tokens for an authenticated user.
type TokenIssuer interface {
	Issue(actor authorization.Actor) (string, error)
}

// LoginMetrics receives login outcomes. Implementations must tolerate concurrent calls.
type LoginMetrics interface {
	RecordOutcome(outcome string)
	RecordLockout()
	RecordUnlock()
}

// LockoutNotifier alerts administrators that a login was locked.
type LockoutNotifier interface {
	NotifyLockout(ctx context.Context, login string, blockedUntil time.Time, sourceIP string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type UnlockLoginExecutor interface {
	Execute(ctx context.Context, cmd UnlockLoginCommand) error
}

type ListLoginEventsExecutor interface {
	Execute(ctx context.Context, query ListLoginEventsQuery) ([]dto.LoginEventDTO, error)
}

type ListLockoutsExecutor interface {
	Execute(ctx context.Context) ([]dto.LockoutDTO, error)
}
