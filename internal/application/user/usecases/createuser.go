package usecases

import (
	"context"
	"fmt"

	"github.com/chamados/servicedesk/internal/application/user/dto"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Name     string
	Login    string
	Password string
	Role     string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	clock    clock.Clock
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, clk clock.Clock, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "login", cmd.Login, "role", cmd.Role)

	role, ok := authorization.ParseUserRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role", "role must be admin or analyst")
	}

	u, err := user.NewUser(cmd.Name, cmd.Login, cmd.Password, role, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "login", cmd.Login, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return dto.ToUserDTO(u), nil
}
