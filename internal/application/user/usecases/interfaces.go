package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/application/user/dto"
)

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type ChangeRoleExecutor interface {
	Execute(ctx context.Context, cmd ChangeRoleCommand) (*dto.UserDTO, error)
}

type SetActiveExecutor interface {
	Execute(ctx context.Context, cmd SetActiveCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type UnlockUserExecutor interface {
	Execute(ctx context.Context, cmd UnlockUserCommand) error
}
