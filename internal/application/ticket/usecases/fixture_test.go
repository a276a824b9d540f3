package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/infrastructure/repository"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/config"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

var testStart = time.Date(2024, 8, 12, 14, 0, 0, 0, time.UTC)

type ticketFixture struct {
	tickets ticket.Repository
	users   user.Repository
	files   *mockAttachmentStore
	clock   *clock.Fake
	log     logger.Interface

	admin   authorization.Actor
	analyst authorization.Actor
	other   authorization.Actor
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	backend := storage.NewMemoryBackend()
	clk := clock.NewFake(testStart)
	log := logger.NewNopLogger()
	bootstrap := config.BootstrapConfig{AdminName: "Administrator", AdminLogin: "admin", AdminPassword: "admin"}

	f := &ticketFixture{
		tickets: repository.NewTicketRepository(backend, clk, log),
		users:   repository.NewUserRepository(backend, bootstrap, clk, log),
		files:   &mockAttachmentStore{},
		clock:   clk,
		log:     log,
		admin:   authorization.Actor{ID: 1, Name: "Administrator", Role: authorization.RoleAdmin},
	}
	f.analyst = f.addUser(t, "Bia Souza", "bia", authorization.RoleAnalyst)
	f.other = f.addUser(t, "Caio Lima", "caio", authorization.RoleAnalyst)
	return f
}

func (f *ticketFixture) addUser(t *testing.T, name, login string, role authorization.UserRole) authorization.Actor {
	t.Helper()
	f.clock.Advance(time.Millisecond)
	u, err := user.NewUser(name, login, "pw", role, f.clock.Now())
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), u))
	return u.Actor()
}

func (f *ticketFixture) open(t *testing.T, creator authorization.Actor, title string) *ticket.Ticket {
	t.Helper()
	f.clock.Advance(time.Millisecond)
	tk, err := ticket.NewTicket(ticket.NewTicketParams{
		Title:       title,
		Client:      "Acme",
		Category:    "Rede",
		Description: "Sem acesso",
		Priority:    "High",
		Requester:   "Joana",
	}, creator, f.clock.Now())
	require.NoError(t, err)
	require.NoError(t, f.tickets.Create(context.Background(), tk))
	return tk
}

func (f *ticketFixture) assign(t *testing.T, id, name string) {
	t.Helper()
	_, err := f.tickets.Update(context.Background(), id, func(tk *ticket.Ticket) error {
		tk.AssignTo(name, f.clock.Now())
		return nil
	})
	require.NoError(t, err)
}

func (f *ticketFixture) get(t *testing.T, id string) *ticket.Ticket {
	t.Helper()
	tk, err := f.tickets.GetByID(context.Background(), id)
	require.NoError(t, err)
	return tk
}

func requireErrType(t *testing.T, err error, want errors.ErrorType, code int) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, want, appErr.Type)
	assert.Equal(t, code, appErr.Code)
}

func strPtr(s string) *string { return &s }

func patchStatus(status string) ticket.PatchFields {
	return ticket.PatchFields{Status: &status}
}
