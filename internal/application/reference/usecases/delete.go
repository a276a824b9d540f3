package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/domain/reference"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type DeleteCommand struct {
	ID string
}

// DeleteUseCase removes a reference record for good.
type DeleteUseCase[T reference.Record] struct {
	repo   reference.Repository[T]
	kind   string
	logger logger.Interface
}

func NewDeleteClientUseCase(repo reference.ClientRepository, logger logger.Interface) *DeleteUseCase[*reference.Client] {
	return &DeleteUseCase[*reference.Client]{repo: repo, kind: "client", logger: logger}
}

func NewDeleteCategoryUseCase(repo reference.CategoryRepository, logger logger.Interface) *DeleteUseCase[*reference.Category] {
	return &DeleteUseCase[*reference.Category]{repo: repo, kind: "category", logger: logger}
}

func NewDeleteGroupUseCase(repo reference.GroupRepository, logger logger.Interface) *DeleteUseCase[*reference.Group] {
	return &DeleteUseCase[*reference.Group]{repo: repo, kind: "group", logger: logger}
}

func (uc *DeleteUseCase[T]) Execute(ctx context.Context, cmd DeleteCommand) error {
	uc.logger.Infow("executing delete reference use case", "kind", uc.kind, "id", cmd.ID)

	return uc.repo.Delete(ctx, cmd.ID)
}
