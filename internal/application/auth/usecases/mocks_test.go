package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

type mockTokenIssuer struct {
	IssueFunc func(actor authorization.Actor) (string, error)
}

func (m *mockTokenIssuer) Issue(actor authorization.Actor) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(actor)
	}
	return "token-" + actor.Name, nil
}

type mockLoginMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
	lockouts int
	unlocks  int
}

func newMockLoginMetrics() *mockLoginMetrics {
	return &mockLoginMetrics{outcomes: map[string]int{}}
}

func (m *mockLoginMetrics) RecordOutcome(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *mockLoginMetrics) RecordLockout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockouts++
}

func (m *mockLoginMetrics) RecordUnlock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unlocks++
}

type lockoutAlert struct {
	login        string
	blockedUntil time.Time
	sourceIP     string
}

type mockLockoutNotifier struct {
	alerts chan lockoutAlert
}

func (m *mockLockoutNotifier) NotifyLockout(_ context.Context, login string, blockedUntil time.Time, sourceIP string) error {
	m.alerts <- lockoutAlert{login: login, blockedUntil: blockedUntil, sourceIP: sourceIP}
	return nil
}

// countingUserRepository counts credential lookups on top of a real repository.
type countingUserRepository struct {
	user.Repository
	mu      sync.Mutex
	lookups int
}

func (r *countingUserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	r.mu.Lock()
	r.lookups++
	r.mu.Unlock()
	return r.Repository.GetByLogin(ctx, login)
}

func (r *countingUserRepository) Lookups() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookups
}
