package user

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/infrastructure/config"
	"github.com/chamados/servicedesk/internal/infrastructure/repository"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/clock"
	sharedConfig "github.com/chamados/servicedesk/internal/shared/config"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type fixture struct {
	app    *app
	ledger loginguard.LedgerRepository
	clock  *clock.Fake
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := storage.NewMemoryBackend()
	clk := clock.NewFake(time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	cfg := &config.Config{
		Auth:      sharedConfig.AuthConfig{AuditMaxEntries: 100},
		Bootstrap: sharedConfig.BootstrapConfig{AdminName: "Root", AdminLogin: "root", AdminPassword: "pw"},
	}
	return &fixture{
		app:    newApp(backend, cfg, clk, logger.NewNopLogger()),
		ledger: repository.NewLoginAttemptRepository(backend),
		clock:  clk,
	}
}

func (f *fixture) lock(t *testing.T, login string) {
	t.Helper()
	now := f.clock.Now()
	until := now.Add(15 * time.Minute)
	err := f.ledger.Update(context.Background(), login, func(e loginguard.Entry) (loginguard.Entry, error) {
		e.FailCount = 5
		e.FirstFailAt = &now
		e.LastFailAt = &now
		e.BlockedUntil = &until
		return e, nil
	})
	require.NoError(t, err)
}

func TestList_ShowsSeededAdministrator(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer

	require.NoError(t, f.app.list(context.Background(), &out))

	assert.Contains(t, out.String(), "LOGIN")
	assert.Contains(t, out.String(), "root")
	assert.Contains(t, out.String(), "admin")
}

func TestLockouts_EmptyAndLocked(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer

	require.NoError(t, f.app.lockouts(context.Background(), &out))
	assert.Equal(t, "no locked logins\n", out.String())

	f.lock(t, "maria")
	out.Reset()
	require.NoError(t, f.app.lockouts(context.Background(), &out))
	assert.Contains(t, out.String(), "maria")
	assert.Contains(t, out.String(), "15")
}

func TestUnlock_ClearsLedgerEntry(t *testing.T) {
	f := newFixture(t)
	f.lock(t, "maria")
	var out bytes.Buffer

	require.NoError(t, f.app.unlock(context.Background(), &out, "Maria"))
	assert.Contains(t, out.String(), "unlocked")

	out.Reset()
	require.NoError(t, f.app.lockouts(context.Background(), &out))
	assert.Equal(t, "no locked logins\n", out.String())
}

func TestUnlock_RejectsEmptyLogin(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer

	assert.Error(t, f.app.unlock(context.Background(), &out, "  "))
	assert.Empty(t, out.String())
}
