package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/offline-ticketing/ticketing-service/internal/domain"
)

// TicketRepository encapsulates ticket persistence. Detail reads join the
// creator's and assignee's display names in a single query; there is no
// lazy relationship loading.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetDetailByID(ctx context.Context, id string) (*domain.TicketDetail, error)
	ListDetailsByCreator(ctx context.Context, creatorID string) ([]domain.TicketDetail, error)
	ListAllDetails(ctx context.Context) ([]domain.TicketDetail, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const detailSelect = `
    SELECT t.id, t.title, t.description, t.status, t.priority,
           t.created_by_user_id, t.assigned_to_user_id, t.created_at, t.updated_at,
           c.full_name AS created_by_name, a.full_name AS assignee_name
    FROM tickets t
    JOIN users c ON c.id = t.created_by_user_id
    LEFT JOIN users a ON a.id = t.assigned_to_user_id`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (title, description, status, priority, created_by_user_id, assigned_to_user_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.CreatedByID,
		ticket.AssigneeID,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET status=$1, priority=$2, assigned_to_user_id=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`
	if err := r.pool.QueryRow(ctx, query,
		ticket.Status,
		ticket.Priority,
		ticket.AssigneeID,
		ticket.ID,
	).Scan(&ticket.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, title, description, status, priority,
               created_by_user_id, assigned_to_user_id, created_at, updated_at
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.CreatedByID,
		&ticket.AssigneeID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) GetDetailByID(ctx context.Context, id string) (*domain.TicketDetail, error) {
	query := detailSelect + ` WHERE t.id=$1`
	var detail domain.TicketDetail
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Description,
		&detail.Status,
		&detail.Priority,
		&detail.CreatedByID,
		&detail.AssigneeID,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.CreatedByName,
		&detail.AssigneeName,
	); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *ticketRepository) ListDetailsByCreator(ctx context.Context, creatorID string) ([]domain.TicketDetail, error) {
	query := detailSelect + ` WHERE t.created_by_user_id=$1 ORDER BY t.created_at DESC`
	rows, err := r.pool.Query(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows)
}

func (r *ticketRepository) ListAllDetails(ctx context.Context) ([]domain.TicketDetail, error) {
	query := detailSelect + ` ORDER BY t.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows)
}

func (r *ticketRepository) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	const query = `SELECT status, COUNT(*) FROM tickets GROUP BY status ORDER BY status`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.StatusCount
	for rows.Next() {
		var entry domain.StatusCount
		if err := rows.Scan(&entry.Status, &entry.Count); err != nil {
			return nil, err
		}
		counts = append(counts, entry)
	}
	return counts, rows.Err()
}

func scanDetails(rows pgx.Rows) ([]domain.TicketDetail, error) {
	var result []domain.TicketDetail
	for rows.Next() {
		var detail domain.TicketDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.Title,
			&detail.Description,
			&detail.Status,
			&detail.Priority,
			&detail.CreatedByID,
			&detail.AssigneeID,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.CreatedByName,
			&detail.AssigneeName,
		); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}
