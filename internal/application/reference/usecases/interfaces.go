package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/reference/dto"
)

type ListExecutor[D any] interface {
	Execute(ctx context.Context, query ListQuery) ([]D, error)
}

type DeleteExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommand) error
}

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error)
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error)
}

type CreateGroupExecutor interface {
	Execute(ctx context.Context, cmd CreateGroupCommand) (*dto.GroupDTO, error)
}

type UpdateGroupExecutor interface {
	Execute(ctx context.Context, cmd UpdateGroupCommand) (*dto.GroupDTO, error)
}
