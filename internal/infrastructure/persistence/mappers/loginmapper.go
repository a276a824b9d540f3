package mappers

import (
	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

func LoginAttemptToModel(e loginguard.Entry) models.LoginAttemptModel {
	return models.LoginAttemptModel(e)
}

func LoginAttemptToDomain(m models.LoginAttemptModel) loginguard.Entry {
	e := loginguard.Entry(m)
	e.Login = loginguard.Key(e.Login)
	return e
}

func LoginAuditToModel(ev loginguard.AuditEvent) models.LoginAuditModel {
	rec := models.LoginAuditModel{
		ID:             ev.ID,
		Timestamp:      ev.Timestamp,
		LoginAttempted: ev.LoginAttempted,
		Outcome:        string(ev.Outcome),
		Detail:         ev.Detail,
		SourceIP:       ev.SourceIP,
		UserAgent:      ev.UserAgent,
		UserID:         ev.UserID,
		Active:         ev.Active,
	}
	if ev.Role != nil {
		role := ev.Role.String()
		rec.Role = &role
	}
	return rec
}

func LoginAuditToDomain(m models.LoginAuditModel) loginguard.AuditEvent {
	ev := loginguard.AuditEvent{
		ID:             m.ID,
		Timestamp:      m.Timestamp,
		LoginAttempted: m.LoginAttempted,
		Outcome:        loginguard.Outcome(m.Outcome),
		Detail:         m.Detail,
		SourceIP:       m.SourceIP,
		UserAgent:      m.UserAgent,
		UserID:         m.UserID,
		Active:         m.Active,
	}
	if m.Role != nil {
		role := authorization.UserRole(*m.Role)
		ev.Role = &role
	}
	return ev
}
