package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

func titles(items []*dto.TicketDTO) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestListTickets_QueueIsSharedAndMineFiltersByCreator(t *testing.T) {
	f := newTicketFixture(t)
	f.open(t, f.admin, "unassigned")
	mine := f.open(t, f.admin, "assigned to bia")
	f.assign(t, mine.ID(), "bia souza")
	theirs := f.open(t, f.admin, "assigned to caio")
	f.assign(t, theirs.ID(), "Caio Lima")
	opened := f.open(t, f.analyst, "opened by bia")
	f.assign(t, opened.ID(), "Caio Lima")

	uc := NewListTicketsUseCase(f.tickets, f.log)
	ctx := context.Background()

	all, err := uc.Execute(ctx, ListTicketsQuery{Actor: f.admin})
	require.NoError(t, err)
	assert.Equal(t, []string{"opened by bia", "assigned to caio", "assigned to bia", "unassigned"}, titles(all))

	queue, err := uc.Execute(ctx, ListTicketsQuery{Actor: f.analyst})
	require.NoError(t, err)
	assert.Equal(t, titles(all), titles(queue), "analysts see the same queue as admins")

	own, err := uc.Execute(ctx, ListTicketsQuery{Actor: f.analyst, Scope: ScopeMine})
	require.NoError(t, err)
	assert.Equal(t, []string{"opened by bia"}, titles(own))
}

func TestListTickets_MineFallsBackToNameForLegacyTickets(t *testing.T) {
	f := newTicketFixture(t)
	require.NoError(t, f.tickets.Create(context.Background(), legacyTicket(t, f, "BIA SOUZA")))
	require.NoError(t, f.tickets.Create(context.Background(), legacyTicket(t, f, "Bia")))

	own, err := NewListTicketsUseCase(f.tickets, f.log).Execute(context.Background(), ListTicketsQuery{Actor: f.analyst, Scope: ScopeMine})

	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "BIA SOUZA", own[0].CreatedBy)
}

// legacyTicket has no creator id, as older records were written.
func legacyTicket(t *testing.T, f *ticketFixture, createdBy string) *ticket.Ticket {
	t.Helper()
	f.clock.Advance(time.Millisecond)
	tk, err := ticket.NewTicket(ticket.NewTicketParams{
		Title:       "legacy",
		Client:      "Acme",
		Category:    "Rede",
		Description: "d",
		Priority:    "Low",
		Requester:   "r",
	}, authorization.Actor{Name: createdBy, Role: authorization.RoleAnalyst}, f.clock.Now())
	require.NoError(t, err)
	return tk
}
