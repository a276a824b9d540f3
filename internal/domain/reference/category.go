package reference

import (
	"strings"
	"time"

	"github.com/chamados/servicedesk/internal/shared/slug"
)

// Category is a ticket category inside a group, unique by slug(group)::slug(name).
type Category struct {
	ID        string
	Group     string
	Name      string
	Key       string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryChanges struct {
	Group  *string
	Name   *string
	Active *bool
}

func CategoryKey(group, name string) string {
	return slug.Join(group, name)
}

func NewCategory(group, name string, now time.Time) (*Category, error) {
	c := &Category{Active: true, CreatedAt: now, UpdatedAt: now}
	if err := c.rename(group, name); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Apply(ch CategoryChanges, now time.Time) error {
	group, name := c.Group, c.Name
	if ch.Group != nil {
		group = *ch.Group
	}
	if ch.Name != nil {
		name = *ch.Name
	}
	if err := c.rename(group, name); err != nil {
		return err
	}
	if ch.Active != nil {
		c.Active = *ch.Active
	}
	c.UpdatedAt = now
	return nil
}

func (c *Category) rename(group, name string) error {
	group, name = strings.TrimSpace(group), strings.TrimSpace(name)
	if group == "" || name == "" {
		return NewDomainError("category group and name are required")
	}
	if slug.Make(group) == "" || slug.Make(name) == "" {
		return NewDomainError("category group and name must contain letters or digits")
	}
	c.Group, c.Name = group, name
	c.Key = CategoryKey(group, name)
	return nil
}

func (c *Category) RecordID() string      { return c.ID }
func (c *Category) SetRecordID(id string) { c.ID = id }
func (c *Category) UniqueKey() string     { return c.Key }
func (c *Category) IsActive() bool        { return c.Active }
