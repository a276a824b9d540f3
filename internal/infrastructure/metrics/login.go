// Package metrics holds the prometheus collectors of the login flow.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "servicedesk"

// LoginMetrics counts login outcomes and lockouts.
type LoginMetrics struct {
	Attempts *prometheus.CounterVec
	Lockouts prometheus.Counter
	Unlocks  prometheus.Counter
}

// NewLoginMetrics registers the collectors with reg, or the default registerer when reg is nil.
// Registering twice reuses the existing collectors.
func NewLoginMetrics(reg prometheus.Registerer) (*LoginMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "login_attempts_total",
		Help:      "Login attempts partitioned by audit outcome.",
	}, []string{"outcome"})
	if err := register(reg, &attempts); err != nil {
		return nil, err
	}

	lockouts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "lockouts_total",
		Help:      "Logins locked after too many failed attempts.",
	})
	if err := register(reg, &lockouts); err != nil {
		return nil, err
	}

	unlocks := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "manual_unlocks_total",
		Help:      "Locks lifted by an administrator.",
	})
	if err := register(reg, &unlocks); err != nil {
		return nil, err
	}

	return &LoginMetrics{Attempts: attempts, Lockouts: lockouts, Unlocks: unlocks}, nil
}

// register swaps *c for the already registered collector of the same description.
func register[C prometheus.Collector](reg prometheus.Registerer, c *C) error {
	err := reg.Register(*c)
	if err == nil {
		return nil
	}
	already, ok := err.(prometheus.AlreadyRegisteredError)
	if !ok {
		return fmt.Errorf("register collector: %w", err)
	}
	existing, ok := already.ExistingCollector.(C)
	if !ok {
		return fmt.Errorf("existing collector has unexpected type %T", already.ExistingCollector)
	}
	*c = existing
	return nil
}

func (m *LoginMetrics) RecordOutcome(outcome string) {
	if m == nil {
		return
	}
	m.Attempts.WithLabelValues(outcome).Inc()
}

func (m *LoginMetrics) RecordLockout() {
	if m == nil {
		return
	}
	m.Lockouts.Inc()
}

func (m *LoginMetrics) RecordUnlock() {
	if m == nil {
		return
	}
	m.Unlocks.Inc()
}
