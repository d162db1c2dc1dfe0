package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/offline-ticketing/ticketing-service/internal/domain"
	"github.com/offline-ticketing/ticketing-service/internal/events"
	"github.com/offline-ticketing/ticketing-service/internal/repository"
	apperrors "github.com/offline-ticketing/ticketing-service/pkg/util"
)

// TicketService applies the business rules for ticket workflows on top of
// the repositories. Role checks happen in the HTTP guards before these
// methods run; the service enforces the per-record rules (visibility,
// assignee role).
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles requirements for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
}

// TicketUpdateInput describes the admin update payload. Nil fields are
// left untouched.
type TicketUpdateInput struct {
	Status     *domain.TicketStatus
	AssigneeID *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket files a new ticket for the calling employee. Status and
// priority always start at OPEN/LOW.
func (s *TicketService) CreateTicket(ctx context.Context, creator *domain.User, input TicketCreateInput) (*domain.TicketDetail, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description are required", nil)
	}
	if len(title) > domain.MaxTitleLength {
		return nil, apperrors.NewValidationError("title exceeds maximum length", map[string]any{"max_length": domain.MaxTitleLength})
	}

	ticket := &domain.Ticket{
		Title:       title,
		Description: description,
		Status:      domain.TicketStatusOpen,
		Priority:    domain.TicketPriorityLow,
		CreatedByID: creator.ID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    events.Actor{UserID: creator.ID, Role: creator.Role},
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Priority: ticket.Priority,
		},
	})

	return &domain.TicketDetail{Ticket: *ticket, CreatedByName: creator.FullName}, nil
}

// ListMyTickets returns every ticket created by the caller.
func (s *TicketService) ListMyTickets(ctx context.Context, userID string) ([]domain.TicketDetail, error) {
	details, err := s.tickets.ListDetailsByCreator(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return details, nil
}

// ListAllTickets returns every ticket regardless of creator or assignee.
func (s *TicketService) ListAllTickets(ctx context.Context) ([]domain.TicketDetail, error) {
	details, err := s.tickets.ListAllDetails(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return details, nil
}

// GetTicket fetches one ticket, enforcing the visibility rule: admins see
// everything, other callers only tickets they created or are assigned to.
func (s *TicketService) GetTicket(ctx context.Context, actor *domain.User, ticketID string) (*domain.TicketDetail, error) {
	detail, err := s.tickets.GetDetailByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	if actor.Role != domain.RoleAdmin &&
		detail.CreatedByID != actor.ID &&
		(detail.AssigneeID == nil || *detail.AssigneeID != actor.ID) {
		return nil, apperrors.NewForbidden("not a participant of this ticket")
	}
	return detail, nil
}

// UpdateTicket mutates status and/or assignment of a ticket. An assignee,
// when provided, must reference an existing ADMIN user. updated_at is
// bumped on every successful mutation; concurrent updates are
// last-write-wins.
func (s *TicketService) UpdateTicket(ctx context.Context, actor *domain.User, ticketID string, input TicketUpdateInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	oldStatus := ticket.Status
	oldAssignee := ticket.AssigneeID

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperrors.NewValidationError("unknown ticket status", map[string]any{"status": *input.Status})
		}
		ticket.Status = *input.Status
	}
	if input.AssigneeID != nil {
		assignee, err := s.users.GetByID(ctx, *input.AssigneeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("assigned user must be a valid admin", nil)
			}
			return nil, apperrors.MapError(err)
		}
		if assignee.Role != domain.RoleAdmin {
			return nil, apperrors.NewValidationError("assigned user must be a valid admin", nil)
		}
		ticket.AssigneeID = input.AssigneeID
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	actorRef := events.Actor{UserID: actor.ID, Role: actor.Role}
	if input.Status != nil && ticket.Status != oldStatus {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			Actor:    actorRef,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	}
	if input.AssigneeID != nil && (oldAssignee == nil || *oldAssignee != *ticket.AssigneeID) {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketAssigned,
			TicketID: ticket.ID,
			Actor:    actorRef,
			Payload: events.TicketAssignedPayload{
				OldAssigneeID: oldAssignee,
				NewAssigneeID: ticket.AssigneeID,
			},
		})
	}

	return ticket, nil
}

// TicketStats returns ticket counts grouped by status.
func (s *TicketService) TicketStats(ctx context.Context) ([]domain.StatusCount, error) {
	counts, err := s.tickets.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return counts, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
