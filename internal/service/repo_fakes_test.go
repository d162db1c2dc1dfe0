package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/offline-ticketing/ticketing-service/internal/domain"
)

// In-memory repository fakes backing the service tests.

type memUserRepo struct {
	users map[string]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	repo := &memUserRepo{users: map[string]*domain.User{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memTicketRepo struct {
	users   *memUserRepo
	tickets map[string]*domain.Ticket
	nextID  int
}

func newMemTicketRepo(users *memUserRepo) *memTicketRepo {
	return &memTicketRepo{users: users, tickets: map[string]*domain.Ticket{}}
}

func (r *memTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.nextID++
	ticket.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.nextID)
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	copied := *ticket
	r.tickets[ticket.ID] = &copied
	return nil
}

func (r *memTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	stored, ok := r.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Status = ticket.Status
	stored.Priority = ticket.Priority
	stored.AssigneeID = ticket.AssigneeID
	stored.UpdatedAt = stored.UpdatedAt.Add(time.Millisecond)
	ticket.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	if ticket, ok := r.tickets[id]; ok {
		copied := *ticket
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memTicketRepo) GetDetailByID(ctx context.Context, id string) (*domain.TicketDetail, error) {
	ticket, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toDetail(ticket), nil
}

func (r *memTicketRepo) ListDetailsByCreator(_ context.Context, creatorID string) ([]domain.TicketDetail, error) {
	var details []domain.TicketDetail
	for _, ticket := range r.tickets {
		if ticket.CreatedByID == creatorID {
			details = append(details, *r.toDetail(ticket))
		}
	}
	return details, nil
}

func (r *memTicketRepo) ListAllDetails(_ context.Context) ([]domain.TicketDetail, error) {
	var details []domain.TicketDetail
	for _, ticket := range r.tickets {
		details = append(details, *r.toDetail(ticket))
	}
	return details, nil
}

func (r *memTicketRepo) CountByStatus(_ context.Context) ([]domain.StatusCount, error) {
	grouped := map[domain.TicketStatus]int64{}
	for _, ticket := range r.tickets {
		grouped[ticket.Status]++
	}
	var counts []domain.StatusCount
	for status, count := range grouped {
		counts = append(counts, domain.StatusCount{Status: status, Count: count})
	}
	return counts, nil
}

func (r *memTicketRepo) toDetail(ticket *domain.Ticket) *domain.TicketDetail {
	detail := &domain.TicketDetail{Ticket: *ticket}
	if creator, ok := r.users.users[ticket.CreatedByID]; ok {
		detail.CreatedByName = creator.FullName
	}
	if ticket.AssigneeID != nil {
		if assignee, ok := r.users.users[*ticket.AssigneeID]; ok {
			name := assignee.FullName
			detail.AssigneeName = &name
		}
	}
	return detail
}
