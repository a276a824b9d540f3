package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/chamados/servicedesk/internal/domain/ticket/valueobjects"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

type Ticket struct {
	id              string
	title           string
	client          string
	category        string
	description     string
	priority        vo.Priority
	requester       string
	status          vo.TicketStatus
	createdAt       time.Time
	updatedAt       time.Time
	createdBy       string
	createdByID     int64
	assignedAnalyst string
	interactions    []Interaction
	attachments     []Attachment
}

// NewTicketParams carries the fields of a ticket submission.
type NewTicketParams struct {
	Title       string
	Client      string
	Category    string
	Description string
	Priority    string
	Requester   string
}

// NewTicket opens a ticket on behalf of creator. The id is assigned by the repository.
func NewTicket(p NewTicketParams, creator authorization.Actor, now time.Time) (*Ticket, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Client = strings.TrimSpace(p.Client)
	p.Category = strings.TrimSpace(p.Category)
	p.Description = strings.TrimSpace(p.Description)
	p.Requester = strings.TrimSpace(p.Requester)

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", p.Title},
		{"client", p.Client},
		{"category", p.Category},
		{"description", p.Description},
		{"priority", p.Priority},
		{"requester", p.Requester},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, NewDomainError("required fields are missing", strings.Join(missing, ", "))
	}

	priority, err := vo.ParsePriority(p.Priority)
	if err != nil {
		return nil, NewDomainError("invalid priority", err.Error())
	}

	return &Ticket{
		title:        p.Title,
		client:       p.Client,
		category:     p.Category,
		description:  p.Description,
		priority:     priority,
		requester:    p.Requester,
		status:       vo.StatusOpen,
		createdAt:    now,
		updatedAt:    now,
		createdBy:    creator.Name,
		createdByID:  creator.ID,
		interactions: []Interaction{},
		attachments:  []Attachment{},
	}, nil
}

// ReconstructParams is a stored ticket as read back from persistence.
type ReconstructParams struct {
	ID              string
	Title           string
	Client          string
	Category        string
	Description     string
	Priority        vo.Priority
	Requester       string
	Status          vo.TicketStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       string
	CreatedByID     int64
	AssignedAnalyst string
	Interactions    []Interaction
	Attachments     []Attachment
}

// ReconstructTicket trusts stored values; statuses and priorities written by older versions are kept verbatim.
func ReconstructTicket(p ReconstructParams) (*Ticket, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if p.Interactions == nil {
		p.Interactions = []Interaction{}
	}
	if p.Attachments == nil {
		p.Attachments = []Attachment{}
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = p.CreatedAt
	}

	return &Ticket{
		id:              p.ID,
		title:           p.Title,
		client:          p.Client,
		category:        p.Category,
		description:     p.Description,
		priority:        p.Priority,
		requester:       p.Requester,
		status:          p.Status,
		createdAt:       p.CreatedAt,
		updatedAt:       updatedAt,
		createdBy:       p.CreatedBy,
		createdByID:     p.CreatedByID,
		assignedAnalyst: p.AssignedAnalyst,
		interactions:    p.Interactions,
		attachments:     p.Attachments,
	}, nil
}

func (t *Ticket) ID() string              { return t.id }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Client() string          { return t.client }
func (t *Ticket) Category() string        { return t.category }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Requester() string       { return t.requester }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) CreatedBy() string       { return t.createdBy }
func (t *Ticket) CreatedByID() int64      { return t.createdByID }
func (t *Ticket) AssignedAnalyst() string { return t.assignedAnalyst }

func (t *Ticket) Interactions() []Interaction {
	out := make([]Interaction, len(t.interactions))
	copy(out, t.interactions)
	return out
}

func (t *Ticket) Attachments() []Attachment {
	out := make([]Attachment, len(t.attachments))
	copy(out, t.attachments)
	return out
}

// SetID is called once by the repository when the ticket is first stored.
func (t *Ticket) SetID(id string) error {
	if t.id != "" {
		return fmt.Errorf("ticket ID is already set")
	}
	t.id = id
	return nil
}

// AddInteraction appends a message. The first reply to an Open ticket puts it In Progress.
func (t *Ticket) AddInteraction(author authorization.Actor, message string, now time.Time) (Interaction, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Interaction{}, NewDomainError("message is required")
	}

	in := Interaction{
		Timestamp: now,
		Author:    author.Name,
		Role:      author.Role,
		Message:   message,
	}
	t.interactions = append(t.interactions, in)
	if t.status == vo.StatusOpen {
		t.status = vo.StatusInProgress
	}
	t.updatedAt = now
	return in, nil
}

func (t *Ticket) AddAttachments(atts []Attachment, now time.Time) {
	if len(atts) == 0 {
		return
	}
	t.attachments = append(t.attachments, atts...)
	t.updatedAt = now
}

// RemoveAttachment drops the attachment metadata and returns it so the caller can delete the file.
func (t *Ticket) RemoveAttachment(storedName string, now time.Time) (Attachment, error) {
	for i, a := range t.attachments {
		if a.StoredName == storedName {
			t.attachments = append(t.attachments[:i:i], t.attachments[i+1:]...)
			t.updatedAt = now
			return a, nil
		}
	}
	return Attachment{}, ErrAttachmentNotFound(storedName)
}

// AssignTo sets the analyst by display name.
func (t *Ticket) AssignTo(analystName string, now time.Time) {
	t.assignedAnalyst = analystName
	t.updatedAt = now
}

// CreatedByActor prefers the stored creator id and falls back to the display name for
// tickets written before ids were recorded.
func (t *Ticket) CreatedByActor(a authorization.Actor) bool {
	if t.createdByID != 0 {
		return t.createdByID == a.ID
	}
	return a.SameName(t.createdBy)
}
