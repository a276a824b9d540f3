package dto

import (
	"github.com/chamados/servicedesk/internal/application/user/usecases"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// CreateUserRequest represents HTTP request to create a user
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,role"`
}

func (r *CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Name:     r.Name,
		Login:    r.Login,
		Password: r.Password,
		Role:     r.Role,
	}
}

type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}

func (r *ChangeRoleRequest) ToCommand(userID int64, actor authorization.Actor) usecases.ChangeRoleCommand {
	return usecases.ChangeRoleCommand{UserID: userID, Role: r.Role, Actor: actor}
}

// SetActiveRequest uses a pointer so that an explicit false passes the required check.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (r *SetActiveRequest) ToCommand(userID int64, actor authorization.Actor) usecases.SetActiveCommand {
	return usecases.SetActiveCommand{UserID: userID, Active: *r.Active, Actor: actor}
}
