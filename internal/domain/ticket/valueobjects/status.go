package valueobjects

import (
	"fmt"
	"strings"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusWaiting    TicketStatus = "Waiting"
	StatusResolved   TicketStatus = "Resolved"
	StatusClosed     TicketStatus = "Closed"
)

var allStatuses = []TicketStatus{
	StatusOpen,
	StatusInProgress,
	StatusWaiting,
	StatusResolved,
	StatusClosed,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	for _, s := range allStatuses {
		if s == ts {
			return true
		}
	}
	return false
}

// ParseStatus accepts any casing and surrounding spaces and returns the canonical value.
func ParseStatus(s string) (TicketStatus, error) {
	for _, st := range allStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", s)
}
