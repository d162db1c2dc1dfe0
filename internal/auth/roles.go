package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offline-ticketing/ticketing-service/internal/domain"
	apperrors "github.com/offline-ticketing/ticketing-service/pkg/util"
)

// RequireRole ensures the principal holds one of the allowed roles. The
// check runs before the handler body, so a caller with the wrong role gets
// 403 without leaking whether the requested resource exists.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal is present without constraining
// its role.
func RequireAuthenticated() fiber.Handler {
	return RequireRole()
}
