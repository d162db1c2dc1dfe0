package dto

import (
	"time"

	"github.com/offline-ticketing/ticketing-service/internal/domain"
)

// LoginRequest payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the caller's role.
type LoginResponse struct {
	Token     string      `json:"token"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}
