package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. There is no
// enforced transition graph; an admin may set any status at any time.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Valid reports whether the status is a known member of the enum.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

// Valid reports whether the priority is a known member of the enum.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// MaxTitleLength bounds ticket titles.
const MaxTitleLength = 200

// Ticket is the aggregate for support requests. CreatedByID is immutable
// after creation; AssigneeID, when set, must reference an ADMIN user.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	CreatedByID string
	AssigneeID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TicketDetail is the read model: a ticket joined with the display names of
// its creator and, when assigned, its assignee.
type TicketDetail struct {
	Ticket
	CreatedByName string
	AssigneeName  *string
}

// StatusCount is one row of the grouped ticket statistics.
type StatusCount struct {
	Status TicketStatus
	Count  int64
}
