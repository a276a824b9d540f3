package dto

import (
	"github.com/chamados/servicedesk/internal/application/reference/usecases"
	"github.com/chamados/servicedesk/internal/domain/reference"
)

// Field rules for reference data live in the domain; binding only checks presence.

type CreateClientRequest struct {
	Name string `json:"name" binding:"required"`
	CNPJ string `json:"cnpj" binding:"required"`
}

func (r *CreateClientRequest) ToCommand() usecases.CreateClientCommand {
	return usecases.CreateClientCommand{Name: r.Name, CNPJ: r.CNPJ}
}

// UpdateClientRequest: all fields are optional
type UpdateClientRequest struct {
	Name   *string `json:"name"`
	CNPJ   *string `json:"cnpj"`
	Active *bool   `json:"active"`
}

func (r *UpdateClientRequest) ToCommand(id string) usecases.UpdateClientCommand {
	return usecases.UpdateClientCommand{
		ID:      id,
		Changes: reference.ClientChanges{Name: r.Name, CNPJ: r.CNPJ, Active: r.Active},
	}
}

type CreateCategoryRequest struct {
	Group string `json:"group" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

func (r *CreateCategoryRequest) ToCommand() usecases.CreateCategoryCommand {
	return usecases.CreateCategoryCommand{Group: r.Group, Name: r.Name}
}

type UpdateCategoryRequest struct {
	Group  *string `json:"group"`
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

func (r *UpdateCategoryRequest) ToCommand(id string) usecases.UpdateCategoryCommand {
	return usecases.UpdateCategoryCommand{
		ID:      id,
		Changes: reference.CategoryChanges{Group: r.Group, Name: r.Name, Active: r.Active},
	}
}

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r *CreateGroupRequest) ToCommand() usecases.CreateGroupCommand {
	return usecases.CreateGroupCommand{Name: r.Name}
}

type UpdateGroupRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

func (r *UpdateGroupRequest) ToCommand(id string) usecases.UpdateGroupCommand {
	return usecases.UpdateGroupCommand{
		ID:      id,
		Changes: reference.GroupChanges{Name: r.Name, Active: r.Active},
	}
}
