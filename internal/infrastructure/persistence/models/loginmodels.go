package models

import "time"

// LoginAttemptModel is one throttle ledger entry, keyed by the lowercased login.
type LoginAttemptModel struct {
	Login        string     `json:"login"`
	FailCount    int        `json:"failCount"`
	FirstFailAt  *time.Time `json:"firstFailAt"`
	LastFailAt   *time.Time `json:"lastFailAt"`
	BlockedUntil *time.Time `json:"blockedUntil"`
}

type LoginAuditModel struct {
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
