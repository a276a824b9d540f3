package mappers

import (
	"github.com/chamados/servicedesk/internal/domain/reference"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
)

func ClientToModel(c *reference.Client) models.ClientModel {
	return models.ClientModel(*c)
}

func ClientToDomain(m models.ClientModel) *reference.Client {
	c := reference.Client(m)
	return &c
}

func CategoryToModel(c *reference.Category) models.CategoryModel {
	return models.CategoryModel(*c)
}

// CategoryToDomain recomputes the key so records renamed by hand still collide correctly.
func CategoryToDomain(m models.CategoryModel) *reference.Category {
	c := reference.Category(m)
	c.Key = reference.CategoryKey(c.Group, c.Name)
	return &c
}

func GroupToModel(g *reference.Group) models.GroupModel {
	return models.GroupModel(*g)
}

func GroupToDomain(m models.GroupModel) *reference.Group {
	g := reference.Group(m)
	return &g
}
