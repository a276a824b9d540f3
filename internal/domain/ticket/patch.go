package ticket

import (
	"strings"
	"time"

	vo "github.com/chamados/servicedesk/internal/domain/ticket/valueobjects"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// Patch is a role-scoped partial update. The only implementations are AnalystPatch and AdminPatch.
type Patch interface {
	Validate() error
	applyTo(t *Ticket)
}

// PatchFields is the raw body of a patch request. Nil means "leave as is".
type PatchFields struct {
	Title           *string
	Client          *string
	Category        *string
	Description     *string
	Priority        *string
	Requester       *string
	Status          *string
	AssignedAnalyst *string
}

// AnalystPatch can only move status and priority.
type AnalystPatch struct {
	Status   *string
	Priority *string
}

// AdminPatch can rewrite every scalar field of a ticket.
type AdminPatch struct {
	PatchFields
}

// PatchFor builds the schema the role is entitled to. Fields outside an analyst's schema are dropped.
func PatchFor(role authorization.UserRole, f PatchFields) Patch {
	if role.IsAdmin() {
		return AdminPatch{PatchFields: f}
	}
	return AnalystPatch{Status: f.Status, Priority: f.Priority}
}

func (p AnalystPatch) Validate() error {
	return validateStatusPriority(p.Status, p.Priority)
}

func (p AnalystPatch) applyTo(t *Ticket) {
	applyStatusPriority(t, p.Status, p.Priority)
}

func (p AdminPatch) Validate() error {
	if err := validateStatusPriority(p.Status, p.Priority); err != nil {
		return err
	}
	for name, v := range map[string]*string{
		"title":     p.Title,
		"client":    p.Client,
		"category":  p.Category,
		"requester": p.Requester,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return NewDomainError(name + " cannot be empty")
		}
	}
	return nil
}

func (p AdminPatch) applyTo(t *Ticket) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&t.title, p.Title)
	set(&t.client, p.Client)
	set(&t.category, p.Category)
	set(&t.description, p.Description)
	set(&t.requester, p.Requester)
	set(&t.assignedAnalyst, p.AssignedAnalyst)
	applyStatusPriority(t, p.Status, p.Priority)
}

func validateStatusPriority(status, priority *string) error {
	if status != nil {
		if _, err := vo.ParseStatus(*status); err != nil {
			return NewDomainError("invalid status", err.Error())
		}
	}
	if priority != nil {
		if _, err := vo.ParsePriority(*priority); err != nil {
			return NewDomainError("invalid priority", err.Error())
		}
	}
	return nil
}

func applyStatusPriority(t *Ticket, status, priority *string) {
	if status != nil {
		t.status, _ = vo.ParseStatus(*status)
	}
	if priority != nil {
		t.priority, _ = vo.ParsePriority(*priority)
	}
}

// Apply validates the patch and merges it. Nothing changes when validation fails.
func (t *Ticket) Apply(p Patch, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.applyTo(t)
	t.updatedAt = now
	return nil
}
