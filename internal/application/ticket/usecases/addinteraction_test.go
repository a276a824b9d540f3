package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/shared/errors"
)

func TestAddInteraction_FirstReplyStartsWork(t *testing.T) {
	f := newTicketFixture(t)
	tk := f.open(t, f.admin, "printer")
	uc := NewAddInteractionUseCase(f.tickets, f.clock, f.log)
	ctx := context.Background()

	first, err := uc.Execute(ctx, AddInteractionCommand{TicketID: tk.ID(), Message: "  olhando  ", Actor: f.analyst})
	require.NoError(t, err)
	assert.Equal(t, "In Progress", first.Status)
	require.Len(t, first.Interactions, 1)
	assert.Equal(t, "olhando", first.Interactions[0].Message)
	assert.Equal(t, "Bia Souza", first.Interactions[0].Author)
	assert.Equal(t, "analyst", first.Interactions[0].Role)

	_, err = NewPatchTicketUseCase(f.tickets, f.clock, f.log).Execute(ctx, PatchTicketCommand{
		TicketID: tk.ID(),
		Actor:    f.admin,
		Fields:   patchStatus("Waiting"),
	})
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	second, err := uc.Execute(ctx, AddInteractionCommand{TicketID: tk.ID(), Message: "retorno", Actor: f.admin})
	require.NoError(t, err)
	assert.Equal(t, "Waiting", second.Status)
	assert.Len(t, second.Interactions, 2)
}

func TestAddInteraction_SecondReplyKeepsInProgress(t *testing.T) {
	f := newTicketFixture(t)
	tk := f.open(t, f.admin, "printer")
	uc := NewAddInteractionUseCase(f.tickets, f.clock, f.log)
	ctx := context.Background()

	_, err := uc.Execute(ctx, AddInteractionCommand{TicketID: tk.ID(), Message: "um", Actor: f.analyst})
	require.NoError(t, err)
	second, err := uc.Execute(ctx, AddInteractionCommand{TicketID: tk.ID(), Message: "dois", Actor: f.analyst})

	require.NoError(t, err)
	assert.Equal(t, "In Progress", second.Status)
}

func TestAddInteraction_Validation(t *testing.T) {
	f := newTicketFixture(t)
	tk := f.open(t, f.admin, "printer")
	uc := NewAddInteractionUseCase(f.tickets, f.clock, f.log)

	_, err := uc.Execute(context.Background(), AddInteractionCommand{TicketID: tk.ID(), Message: "   ", Actor: f.analyst})
	requireErrType(t, err, errors.ErrorTypeValidation, 400)
	assert.Empty(t, f.get(t, tk.ID()).Interactions())

	_, err = uc.Execute(context.Background(), AddInteractionCommand{TicketID: "missing", Message: "oi", Actor: f.analyst})
	requireErrType(t, err, errors.ErrorTypeNotFound, 404)
}
