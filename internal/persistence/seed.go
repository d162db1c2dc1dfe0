package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/offline-ticketing/ticketing-service/internal/auth"
	"github.com/offline-ticketing/ticketing-service/internal/domain"
)

// Fixed identifiers for the seed accounts so fresh deployments are
// reproducible and the seed tickets can reference them.
const (
	SeedAdminID    = "eeba8aae-f6b8-46c9-99cc-05446790868f"
	SeedEmployeeID = "2f6f2733-0745-4fe7-9291-91d6c3bc8e39"

	seedPassword = "P@s$w0rd123"
)

// RunSeed provisions the initial accounts and example tickets on a fresh
// database: one admin, one employee, and two tickets filed by the
// employee. It is a no-op once any user exists.
func RunSeed(ctx context.Context, pool *pgxpool.Pool, bcryptCost int, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping seed")
		return nil
	}

	var userCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount > 0 {
		logger.Debug("users present; skipping seed")
		return nil
	}

	adminHash, err := auth.HashPassword(seedPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	employeeHash, err := auth.HashPassword(seedPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash employee password: %w", err)
	}

	const insertUser = `
        INSERT INTO users (id, full_name, email, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)`

	if _, err := pool.Exec(ctx, insertUser,
		SeedAdminID, "Admin User", "admin@test.com", adminHash, domain.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if _, err := pool.Exec(ctx, insertUser,
		SeedEmployeeID, "Employee User", "employee@test.com", employeeHash, domain.RoleEmployee); err != nil {
		return fmt.Errorf("seed employee: %w", err)
	}

	if _, err := pool.Exec(ctx, `
        INSERT INTO tickets (title, description, status, priority, created_by_user_id)
        VALUES ($1, $2, $3, $4, $5)`,
		"Fix database connection issue",
		"The application is unable to connect to the production database.",
		domain.TicketStatusOpen,
		domain.TicketPriorityHigh,
		SeedEmployeeID,
	); err != nil {
		return fmt.Errorf("seed ticket: %w", err)
	}
	if _, err := pool.Exec(ctx, `
        INSERT INTO tickets (title, description, status, priority, created_by_user_id, assigned_to_user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW() - INTERVAL '1 hour')`,
		"Add new feature request",
		"A new feature is required for the user dashboard.",
		domain.TicketStatusInProgress,
		domain.TicketPriorityMedium,
		SeedEmployeeID,
		SeedAdminID,
	); err != nil {
		return fmt.Errorf("seed ticket: %w", err)
	}

	logger.Info("seed data applied", zap.Int("users", 2), zap.Int("tickets", 2))
	return nil
}
