package usecases

import (
	"context"
	"strings"

	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/id"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

// SecurityLog writes login audit events and feeds the login counters.
// A failed audit write is logged and never changes the answer given to the caller.
type SecurityLog struct {
	audit   loginguard.AuditRepository
	metrics LoginMetrics
	clock   clock.Clock
	logger  logger.Interface
}

// NewSecurityLog accepts a nil metrics sink.
func NewSecurityLog(audit loginguard.AuditRepository, metrics LoginMetrics, clk clock.Clock, logger logger.Interface) *SecurityLog {
	return &SecurityLog{
		audit:   audit,
		metrics: metrics,
		clock:   clk,
		logger:  logger,
	}
}

func (s *SecurityLog) Record(ctx context.Context, login string, outcome loginguard.Outcome, detail string, origin loginguard.Origin, subject *loginguard.Subject) {
	event := loginguard.NewAuditEvent(id.NewEventID(), s.clock.Now(), strings.TrimSpace(login), outcome, detail, origin, subject)
	if err := s.audit.Append(ctx, event); err != nil {
		s.logger.Errorw("failed to append login audit event",
			"login", event.LoginAttempted,
			"outcome", outcome,
			"error", err,
		)
	}
	if s.metrics != nil {
		s.metrics.RecordOutcome(string(outcome))
	}
}

func (s *SecurityLog) lockout() {
	if s.metrics != nil {
		s.metrics.RecordLockout()
	}
}

func (s *SecurityLog) unlock() {
	if s.metrics != nil {
		s.metrics.RecordUnlock()
	}
}

func subjectOf(u *user.User) *loginguard.Subject {
	if u == nil {
		return nil
	}
	return &loginguard.Subject{ID: u.ID(), Role: u.Role(), Active: u.IsActive()}
}
