package loginguard

import (
	"math"
	"strings"
	"time"
)

// Entry is the throttle ledger record of one login name. The zero value is the clear state.
type Entry struct {
	Login        string
	FailCount    int
	FirstFailAt  *time.Time
	LastFailAt   *time.Time
	BlockedUntil *time.Time
}

// Key normalizes a login name into its ledger key.
func Key(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}

func (e Entry) IsClear() bool {
	return e.FailCount == 0 && e.FirstFailAt == nil && e.BlockedUntil == nil
}

// LockedAt reports whether the lock is still in force at now.
func (e Entry) LockedAt(now time.Time) bool {
	return e.BlockedUntil != nil && now.Before(*e.BlockedUntil)
}

// RemainingMinutes rounds the time left on the lock up to whole minutes, never below 1 while locked.
func (e Entry) RemainingMinutes(now time.Time) int {
	if !e.LockedAt(now) {
		return 0
	}
	m := int(math.Ceil(e.BlockedUntil.Sub(now).Minutes()))
	if m < 1 {
		m = 1
	}
	return m
}

// Clear returns the reset state for the same login.
func (e Entry) Clear() Entry {
	return Entry{Login: e.Login}
}
