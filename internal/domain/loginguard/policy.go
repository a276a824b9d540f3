package loginguard

import "time"

// Policy bounds credential guessing per login name.
type Policy struct {
	MaxAttempts int
	Window      time.Duration
	Lockout     time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 5,
		Window:      15 * time.Minute,
		Lockout:     15 * time.Minute,
	}
}
