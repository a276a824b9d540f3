package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/reference/dto"
	"github.com/chamados/servicedesk/internal/domain/reference"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type CreateClientCommand struct {
	Name string
	CNPJ string
}

type CreateClientUseCase struct {
	repo   reference.ClientRepository
	clock  clock.Clock
	logger logger.Interface
}

func NewCreateClientUseCase(repo reference.ClientRepository, clk clock.Clock, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{repo: repo, clock: clk, logger: logger}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing create client use case", "name", cmd.Name)

	c, err := reference.NewClient(cmd.Name, cmd.CNPJ, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	result := dto.ToClientDTO(c)
	return &result, nil
}

type UpdateClientCommand struct {
	ID      string
	Changes reference.ClientChanges
}

type UpdateClientUseCase struct {
	repo   reference.ClientRepository
	clock  clock.Clock
	logger logger.Interface
}

func NewUpdateClientUseCase(repo reference.ClientRepository, clk clock.Clock, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{repo: repo, clock: clk, logger: logger}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing update client use case", "id", cmd.ID)

	c, err := uc.repo.Update(ctx, cmd.ID, func(c *reference.Client) error {
		return c.Apply(cmd.Changes, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	result := dto.ToClientDTO(c)
	return &result, nil
}
