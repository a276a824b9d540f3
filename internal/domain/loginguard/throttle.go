package loginguard

import "time"

// Gate is the outcome of checking an entry before credentials are looked at.
type Gate struct {
	Locked           bool
	RemainingMinutes int
	// Released is set when an expired lock was cleared by this check
	Released bool
}

// Verdict is the outcome of recording a failed attempt.
type Verdict int

const (
	VerdictFailed Verdict = iota
	VerdictLockout
)

// Admit decides whether an attempt may proceed to credential checking.
// An expired lock is cleared and the attempt proceeds.
func (p Policy) Admit(now time.Time, e Entry) (Entry, Gate) {
	if e.BlockedUntil == nil {
		return e, Gate{}
	}
	if e.LockedAt(now) {
		return e, Gate{Locked: true, RemainingMinutes: e.RemainingMinutes(now)}
	}
	return e.Clear(), Gate{Released: true}
}

// RecordFailure counts one failed attempt. A failure outside the window restarts it at 1.
// Reaching MaxAttempts locks the login until now+Lockout.
func (p Policy) RecordFailure(now time.Time, e Entry) (Entry, Verdict) {
	t := now
	if e.FirstFailAt == nil || now.Sub(*e.FirstFailAt) > p.Window {
		e.FailCount = 1
		e.FirstFailAt = &t
	} else {
		e.FailCount++
	}
	e.LastFailAt = &t

	if e.FailCount >= p.MaxAttempts {
		until := now.Add(p.Lockout)
		e.BlockedUntil = &until
		return e, VerdictLockout
	}
	return e, VerdictFailed
}
