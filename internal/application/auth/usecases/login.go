package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/goroutine"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

const lockoutAlertTimeout = 30 * time.Second

type LoginCommand struct {
	Login     string
	Password  string
	SourceIP  string
	UserAgent string
}

type LoginResult struct {
	Token string
	User  *user.User
}

type LoginUseCase struct {
	userRepo    user.Repository
	ledger      loginguard.LedgerRepository
	securityLog *SecurityLog
	tokens      TokenIssuer
	notifier    LockoutNotifier
	policy      loginguard.Policy
	clock       clock.Clock
	logger      logger.Interface
}

// NewLoginUseCase accepts a nil notifier when lockout alerts are disabled.
func NewLoginUseCase(
	userRepo user.Repository,
	ledger loginguard.LedgerRepository,
	securityLog *SecurityLog,
	tokens TokenIssuer,
	notifier LockoutNotifier,
	policy loginguard.Policy,
	clk clock.Clock,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		ledger:      ledger,
		securityLog: securityLog,
		tokens:      tokens,
		notifier:    notifier,
		policy:      policy,
		clock:       clk,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	key := loginguard.Key(cmd.Login)
	origin := loginguard.Origin{SourceIP: cmd.SourceIP, UserAgent: cmd.UserAgent}

	uc.logger.Debugw("executing login use case", "login", key, "ip", cmd.SourceIP)

	// no ledger key exists for an empty login
	if key == "" {
		uc.securityLog.Record(ctx, cmd.Login, loginguard.OutcomeInvalidInput, loginguard.DetailMissingFields, origin, nil)
		return nil, errors.NewValidationError("login and password are required")
	}

	gate, err := uc.admit(ctx, key)
	if err != nil {
		return nil, err
	}
	if gate.Locked {
		uc.securityLog.Record(ctx, cmd.Login, loginguard.OutcomeLockedByAttempts, loginguard.DetailBlocked, origin, nil)
		return nil, errors.NewAccountLockedError(gate.RemainingMinutes)
	}
	if gate.Released {
		uc.logger.Infow("expired login lock released", "login", key)
	}

	if cmd.Password == "" {
		uc.securityLog.Record(ctx, cmd.Login, loginguard.OutcomeInvalidInput, loginguard.DetailMissingFields, origin, nil)
		if locked, err := uc.recordFailure(ctx, cmd, origin); err != nil || locked != nil {
			return nil, firstErr(err, locked)
		}
		return nil, errors.NewValidationError("login and password are required")
	}

	u, err := uc.userRepo.GetByLogin(ctx, key)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "login", key, "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if u == nil || !u.PasswordMatches(cmd.Password) {
		detail := loginguard.DetailWrongPassword
		if u == nil {
			detail = loginguard.DetailUserNotFound
		}
		uc.securityLog.Record(ctx, cmd.Login, loginguard.OutcomeInvalidCredentials, detail, origin, subjectOf(u))
		if locked, err := uc.recordFailure(ctx, cmd, origin); err != nil || locked != nil {
			return nil, firstErr(err, locked)
		}
		return nil, errors.NewInvalidCredentialsError()
	}

	if !u.IsActive() {
		uc.securityLog.Record(ctx, cmd.Login, loginguard.OutcomeInactiveUser, "", origin, subjectOf(u))
		uc.logger.Warnw("login attempt on inactive account", "user_id", u.ID())
		return nil, errors.NewAccountInactiveError()
	}

	if err := uc.ledger.Delete(ctx, key); err != nil {
		uc.logger.Errorw("failed to clear login attempts", "login", key, "error", err)
		return nil, fmt.Errorf("failed to clear login attempts: %w", err)
	}

	token, err := uc.tokens.Issue(u.Actor())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.securityLog.Record(ctx, cmd.Login, loginguard.OutcomeSuccess, "", origin, subjectOf(u))
	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())

	return &LoginResult{Token: token, User: u}, nil
}

// admit checks the ledger before credentials are looked at. An expired lock is cleared here.
func (uc *LoginUseCase) admit(ctx context.Context, key string) (loginguard.Gate, error) {
	var gate loginguard.Gate
	err := uc.ledger.Update(ctx, key, func(e loginguard.Entry) (loginguard.Entry, error) {
		var next loginguard.Entry
		next, gate = uc.policy.Admit(uc.clock.Now(), e)
		return next, nil
	})
	if err != nil {
		uc.logger.Errorw("failed to read login attempts", "login", key, "error", err)
		return loginguard.Gate{}, fmt.Errorf("failed to read login attempts: %w", err)
	}
	return gate, nil
}

// recordFailure counts a failed attempt and returns the lockout error when this attempt locked the login.
func (uc *LoginUseCase) recordFailure(ctx context.Context, cmd LoginCommand, origin loginguard.Origin) (*errors.AuthError, error) {
	key := loginguard.Key(cmd.Login)

	var (
		verdict loginguard.Verdict
		entry   loginguard.Entry
	)
	err := uc.ledger.Update(ctx, key, func(e loginguard.Entry) (loginguard.Entry, error) {
		entry, verdict = uc.policy.RecordFailure(uc.clock.Now(), e)
		return entry, nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record login failure", "login", key, "error", err)
		return nil, fmt.Errorf("failed to record login failure: %w", err)
	}

	if verdict != loginguard.VerdictLockout {
		return nil, nil
	}

	uc.securityLog.Record(ctx, cmd.Login, loginguard.OutcomeLockedByAttempts, loginguard.DetailLockTriggered, origin, nil)
	uc.securityLog.lockout()
	uc.logger.Warnw("login locked after repeated failures",
		"login", key,
		"fail_count", entry.FailCount,
		"blocked_until", entry.BlockedUntil,
		"ip", cmd.SourceIP,
	)
	uc.alert(key, *entry.BlockedUntil, cmd.SourceIP)

	return errors.NewAccountLockedError(entry.RemainingMinutes(uc.clock.Now())), nil
}

func (uc *LoginUseCase) alert(login string, blockedUntil time.Time, sourceIP string) {
	if uc.notifier == nil {
		return
	}
	goroutine.SafeGo(uc.logger, "lockout-alert", func() {
		ctx, cancel := context.WithTimeout(context.Background(), lockoutAlertTimeout)
		defer cancel()
		if err := uc.notifier.NotifyLockout(ctx, login, blockedUntil, sourceIP); err != nil {
			uc.logger.Warnw("failed to send lockout alert", "login", login, "error", err)
		}
	})
}

func firstErr(err error, locked *errors.AuthError) error {
	if err != nil {
		return err
	}
	return locked
}
