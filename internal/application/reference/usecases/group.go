package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/reference/dto"
	"github.com/chamados/servicedesk/internal/domain/reference"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type CreateGroupCommand struct {
	Name string
}

type CreateGroupUseCase struct {
	repo   reference.GroupRepository
	clock  clock.Clock
	logger logger.Interface
}

func NewCreateGroupUseCase(repo reference.GroupRepository, clk clock.Clock, logger logger.Interface) *CreateGroupUseCase {
	return &CreateGroupUseCase{repo: repo, clock: clk, logger: logger}
}

func (uc *CreateGroupUseCase) Execute(ctx context.Context, cmd CreateGroupCommand) (*dto.GroupDTO, error) {
	uc.logger.Infow("executing create group use case", "name", cmd.Name)

	g, err := reference.NewGroup(cmd.Name, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	result := dto.ToGroupDTO(g)
	return &result, nil
}

type UpdateGroupCommand struct {
	ID      string
	Changes reference.GroupChanges
}

type UpdateGroupUseCase struct {
	repo   reference.GroupRepository
	clock  clock.Clock
	logger logger.Interface
}

func NewUpdateGroupUseCase(repo reference.GroupRepository, clk clock.Clock, logger logger.Interface) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{repo: repo, clock: clk, logger: logger}
}

func (uc *UpdateGroupUseCase) Execute(ctx context.Context, cmd UpdateGroupCommand) (*dto.GroupDTO, error) {
	uc.logger.Infow("executing update group use case", "id", cmd.ID)

	g, err := uc.repo.Update(ctx, cmd.ID, func(g *reference.Group) error {
		return g.Apply(cmd.Changes, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	result := dto.ToGroupDTO(g)
	return &result, nil
}
