package usecases

import (
	"context"

	authUsecases "github.com/chamados/servicedesk/internal/application/auth/usecases"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

type mockUnlockLogin struct {
	ExecuteFunc func(ctx context.Context, cmd authUsecases.UnlockLoginCommand) error
}

func (m *mockUnlockLogin) Execute(ctx context.Context, cmd authUsecases.UnlockLoginCommand) error {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) Issue(actor authorization.Actor) (string, error) {
	return "token-" + actor.Name, nil
}
