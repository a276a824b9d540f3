package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	vo "github.com/chamados/servicedesk/internal/domain/ticket/valueobjects"
	"github.com/chamados/servicedesk/internal/shared/errors"
)

func TestPatchTicket_AnalystKeepsOnlyStatusAndPriority(t *testing.T) {
	f := newTicketFixture(t)
	tk := f.open(t, f.admin, "original")
	uc := NewPatchTicketUseCase(f.tickets, f.clock, f.log)

	updated, err := uc.Execute(context.Background(), PatchTicketCommand{
		TicketID: tk.ID(),
		Actor:    f.analyst,
		Fields: ticket.PatchFields{
			Title:           strPtr("hijacked"),
			Requester:       strPtr("someone else"),
			AssignedAnalyst: strPtr("Bia Souza"),
			Status:          strPtr("waiting"),
			Priority:        strPtr("Urgent"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "original", updated.Title)
	assert.Equal(t, "Joana", updated.Requester)
	assert.Empty(t, updated.AssignedAnalyst)
	assert.Equal(t, "Waiting", updated.Status)
	assert.Equal(t, "Urgent", updated.Priority)
}

func TestPatchTicket_AdminRewritesScalars(t *testing.T) {
	f := newTicketFixture(t)
	tk := f.open(t, f.analyst, "original")

	updated, err := NewPatchTicketUseCase(f.tickets, f.clock, f.log).Execute(context.Background(), PatchTicketCommand{
		TicketID: tk.ID(),
		Actor:    f.admin,
		Fields: ticket.PatchFields{
			Title:           strPtr(" renamed "),
			AssignedAnalyst: strPtr("Caio Lima"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "Caio Lima", updated.AssignedAnalyst)
	assert.Equal(t, "Bia Souza", updated.CreatedBy)
	assert.Equal(t, tk.ID(), updated.ID)
}

func TestPatchTicket_InvalidValuesChangeNothing(t *testing.T) {
	f := newTicketFixture(t)
	tk := f.open(t, f.admin, "original")
	uc := NewPatchTicketUseCase(f.tickets, f.clock, f.log)
	ctx := context.Background()

	_, err := uc.Execute(ctx, PatchTicketCommand{
		TicketID: tk.ID(),
		Actor:    f.admin,
		Fields:   ticket.PatchFields{Title: strPtr("renamed"), Status: strPtr("Reopened")},
	})
	requireErrType(t, err, errors.ErrorTypeValidation, 400)

	_, err = uc.Execute(ctx, PatchTicketCommand{
		TicketID: tk.ID(),
		Actor:    f.analyst,
		Fields:   ticket.PatchFields{Priority: strPtr("Critical")},
	})
	requireErrType(t, err, errors.ErrorTypeValidation, 400)

	stored := f.get(t, tk.ID())
	assert.Equal(t, "original", stored.Title())
	assert.Equal(t, vo.StatusOpen, stored.Status())
	assert.Equal(t, vo.PriorityHigh, stored.Priority())
}

func TestPatchTicket_NotFound(t *testing.T) {
	f := newTicketFixture(t)

	_, err := NewPatchTicketUseCase(f.tickets, f.clock, f.log).Execute(context.Background(), PatchTicketCommand{
		TicketID: "42",
		Actor:    f.admin,
		Fields:   ticket.PatchFields{Status: strPtr("Closed")},
	})

	requireErrType(t, err, errors.ErrorTypeNotFound, 404)
}
