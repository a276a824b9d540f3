package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/shared/errors"
)

func TestAssignTicket(t *testing.T) {
	f := newTicketFixture(t)
	tk := f.open(t, f.admin, "printer")
	uc := NewAssignTicketUseCase(f.tickets, f.users, f.clock, f.log)
	ctx := context.Background()

	t.Run("analyst claims without a login", func(t *testing.T) {
		got, err := uc.Execute(ctx, AssignTicketCommand{TicketID: tk.ID(), Actor: f.analyst})
		require.NoError(t, err)
		assert.Equal(t, "Bia Souza", got.AssignedAnalyst)
	})

	t.Run("analyst names own login in another case", func(t *testing.T) {
		got, err := uc.Execute(ctx, AssignTicketCommand{TicketID: tk.ID(), Login: " BIA ", Actor: f.analyst})
		require.NoError(t, err)
		assert.Equal(t, "Bia Souza", got.AssignedAnalyst)
	})

	t.Run("analyst cannot assign someone else", func(t *testing.T) {
		_, err := uc.Execute(ctx, AssignTicketCommand{TicketID: tk.ID(), Login: "caio", Actor: f.analyst})
		requireErrType(t, err, errors.ErrorTypeForbidden, 403)

		_, err = uc.Execute(ctx, AssignTicketCommand{TicketID: tk.ID(), Login: "ghost", Actor: f.analyst})
		requireErrType(t, err, errors.ErrorTypeForbidden, 403)
	})

	t.Run("admin writes the canonical name", func(t *testing.T) {
		got, err := uc.Execute(ctx, AssignTicketCommand{TicketID: tk.ID(), Login: "CAIO", Actor: f.admin})
		require.NoError(t, err)
		assert.Equal(t, "Caio Lima", got.AssignedAnalyst)
	})

	t.Run("admin naming an unknown login", func(t *testing.T) {
		_, err := uc.Execute(ctx, AssignTicketCommand{TicketID: tk.ID(), Login: "ghost", Actor: f.admin})
		requireErrType(t, err, errors.ErrorTypeNotFound, 404)
		assert.Equal(t, "Caio Lima", f.get(t, tk.ID()).AssignedAnalyst())
	})

	t.Run("missing ticket", func(t *testing.T) {
		_, err := uc.Execute(ctx, AssignTicketCommand{TicketID: "1", Actor: f.admin})
		requireErrType(t, err, errors.ErrorTypeNotFound, 404)
	})
}
