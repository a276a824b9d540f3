package reference

import (
	"strings"
	"time"

	"github.com/chamados/servicedesk/internal/shared/slug"
)

// Group is a support group, unique by slug(name).
type Group struct {
	ID        string
	Name      string
	Key       string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GroupChanges struct {
	Name   *string
	Active *bool
}

func NewGroup(name string, now time.Time) (*Group, error) {
	g := &Group{Active: true, CreatedAt: now, UpdatedAt: now}
	if err := g.rename(name); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Group) Apply(ch GroupChanges, now time.Time) error {
	if ch.Name != nil {
		if err := g.rename(*ch.Name); err != nil {
			return err
		}
	}
	if ch.Active != nil {
		g.Active = *ch.Active
	}
	g.UpdatedAt = now
	return nil
}

func (g *Group) rename(name string) error {
	name = strings.TrimSpace(name)
	key := slug.Make(name)
	if key == "" {
		return NewDomainError("group name is required")
	}
	g.Name, g.Key = name, key
	return nil
}

func (g *Group) RecordID() string      { return g.ID }
func (g *Group) SetRecordID(id string) { g.ID = id }
func (g *Group) UniqueKey() string     { return g.Key }
func (g *Group) IsActive() bool        { return g.Active }
