package dto

import (
	"time"

	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// SessionUserDTO is the identity returned by login and session checks.
type SessionUserDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

type LoginEventDTO struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	LoginAttempted string    `json:"loginAttempted"`
	Outcome        string    `json:"outcome"`
	Detail         string    `json:"detail"`
	SourceIP       string    `json:"sourceIp"`
	UserAgent      string    `json:"userAgent"`
	UserID         *int64    `json:"userId"`
	Role           *string   `json:"role"`
	Active         *bool     `json:"active"`
}

type LockoutDTO struct {
	Login            string    `json:"login"`
	FailCount        int       `json:"failCount"`
	BlockedUntil     time.Time `json:"blockedUntil"`
	RemainingMinutes int       `json:"remainingMinutes"`
}

func ToSessionUserDTO(u *user.User) SessionUserDTO {
	return SessionUserDTO{
		ID:     u.ID(),
		Name:   u.Name(),
		Role:   u.Role().String(),
		Active: u.IsActive(),
	}
}

// ActorToSessionUserDTO describes a caller known only from its token. A valid token implies an
// account that was active when it was issued.
func ActorToSessionUserDTO(a authorization.Actor) SessionUserDTO {
	return SessionUserDTO{
		ID:     a.ID,
		Name:   a.Name,
		Role:   a.Role.String(),
		Active: true,
	}
}

func ToLoginEventDTO(ev loginguard.AuditEvent) LoginEventDTO {
	d := LoginEventDTO{
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
		d.Role = &role
	}
	return d
}

func ToLoginEventDTOList(events []loginguard.AuditEvent) []LoginEventDTO {
	result := make([]LoginEventDTO, 0, len(events))
	for _, ev := range events {
		result = append(result, ToLoginEventDTO(ev))
	}
	return result
}
