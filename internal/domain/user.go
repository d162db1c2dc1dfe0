package domain

import "time"

// Role is the closed set of access tiers. Anything outside it presented in
// a token claim or as an assignment target is rejected at the boundary.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether the role is a known member of the enum.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is the domain model for anyone who can log in. Users are created by
// seeding only; no exposed operation mutates or deletes them.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
