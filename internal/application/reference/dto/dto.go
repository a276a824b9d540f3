package dto

import (
	"time"

	"github.com/chamados/servicedesk/internal/domain/reference"
)

type ClientDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CNPJ       string    `json:"cnpj"`
	CNPJDigits string    `json:"cnpjDigits"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CategoryDTO struct {
	ID        string    `json:"id"`
	Group     string    `json:"group"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type GroupDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToClientDTO(c *reference.Client) ClientDTO {
	return ClientDTO(*c)
}

func ToCategoryDTO(c *reference.Category) CategoryDTO {
	return CategoryDTO(*c)
}

func ToGroupDTO(g *reference.Group) GroupDTO {
	return GroupDTO(*g)
}
