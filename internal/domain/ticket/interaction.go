package ticket

import (
	"time"

	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// Interaction is a message appended to a ticket's history.
type Interaction struct {
	Timestamp time.Time
	Author    string
	Role      authorization.UserRole
	Message   string
}
