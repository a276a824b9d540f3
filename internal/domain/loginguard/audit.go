package loginguard

import (
	"time"

	"github.com/chamados/servicedesk/internal/shared/authorization"
)

type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeInvalidCredentials Outcome = "invalid_credentials"
	OutcomeLockedByAttempts   Outcome = "locked_by_attempts"
	OutcomeInactiveUser       Outcome = "inactive_user"
	OutcomeInvalidInput       Outcome = "invalid_input"
	OutcomeManualUnlock       Outcome = "manual_unlock"
)

const (
	DetailUserNotFound  = "user_not_found"
	DetailWrongPassword = "wrong_password"
	DetailMissingFields = "missing_fields"
	DetailBlocked       = "blocked"
	DetailLockTriggered = "lock_triggered"
	DetailUnlockedBy    = "unlocked_by:"
)

// AuditEvent is one immutable line of the login audit log.
type AuditEvent struct {
	ID             string
	Timestamp      time.Time
	LoginAttempted string
	Outcome        Outcome
	Detail         string
	SourceIP       string
	UserAgent      string
	UserID         *int64
	Role           *authorization.UserRole
	Active         *bool
}

// Origin describes where an attempt came from.
type Origin struct {
	SourceIP  string
	UserAgent string
}

// Subject is the matched user, when there is one.
type Subject struct {
	ID     int64
	Role   authorization.UserRole
	Active bool
}

func NewAuditEvent(id string, now time.Time, login string, outcome Outcome, detail string, origin Origin, subject *Subject) AuditEvent {
	ev := AuditEvent{
		ID:             id,
		Timestamp:      now,
		LoginAttempted: login,
		Outcome:        outcome,
		Detail:         detail,
		SourceIP:       origin.SourceIP,
		UserAgent:      origin.UserAgent,
	}
	if subject != nil {
		uid, role, active := subject.ID, subject.Role, subject.Active
		ev.UserID = &uid
		ev.Role = &role
		ev.Active = &active
	}
	return ev
}
