package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/reference/dto"
	"github.com/chamados/servicedesk/internal/domain/reference"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Group string
	Name  string
}

type CreateCategoryUseCase struct {
	repo   reference.CategoryRepository
	clock  clock.Clock
	logger logger.Interface
}

func NewCreateCategoryUseCase(repo reference.CategoryRepository, clk clock.Clock, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{repo: repo, clock: clk, logger: logger}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing create category use case", "group", cmd.Group, "name", cmd.Name)

	c, err := reference.NewCategory(cmd.Group, cmd.Name, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	result := dto.ToCategoryDTO(c)
	return &result, nil
}

type UpdateCategoryCommand struct {
	ID      string
	Changes reference.CategoryChanges
}

type UpdateCategoryUseCase struct {
	repo   reference.CategoryRepository
	clock  clock.Clock
	logger logger.Interface
}

func NewUpdateCategoryUseCase(repo reference.CategoryRepository, clk clock.Clock, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{repo: repo, clock: clk, logger: logger}
}

// Execute recomputes the key when the group or name changes; the store rejects a collision.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing update category use case", "id", cmd.ID)

	c, err := uc.repo.Update(ctx, cmd.ID, func(c *reference.Category) error {
		return c.Apply(cmd.Changes, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	result := dto.ToCategoryDTO(c)
	return &result, nil
}
