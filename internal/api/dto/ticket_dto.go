package dto

import (
	"time"

	"github.com/offline-ticketing/ticketing-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTicketRequest payload; omitted fields are left untouched.
type UpdateTicketRequest struct {
	Status           *domain.TicketStatus `json:"status"`
	AssignedToUserID *string              `json:"assigned_to_user_id"`
}

// TicketView is the response shape for ticket reads, with the creator's
// and assignee's display names joined in.
type TicketView struct {
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	Status              domain.TicketStatus   `json:"status"`
	Priority            domain.TicketPriority `json:"priority"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
	CreatedByUserName   string                `json:"created_by_user_name"`
	AssignedToAdminName *string               `json:"assigned_to_admin_name,omitempty"`
}

// TicketStatsEntry is one row of GET /tickets/stats.
type TicketStatsEntry struct {
	Status domain.TicketStatus `json:"status"`
	Count  int64               `json:"count"`
}

// NewTicketView maps the read model to the response shape.
func NewTicketView(detail *domain.TicketDetail) TicketView {
	return TicketView{
		ID:                  detail.ID,
		Title:               detail.Title,
		Description:         detail.Description,
		Status:              detail.Status,
		Priority:            detail.Priority,
		CreatedAt:           detail.CreatedAt,
		UpdatedAt:           detail.UpdatedAt,
		CreatedByUserName:   detail.CreatedByName,
		AssignedToAdminName: detail.AssigneeName,
	}
}
