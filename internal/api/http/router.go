package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offline-ticketing/ticketing-service/internal/api/http/handlers"
	"github.com/offline-ticketing/ticketing-service/internal/auth"
	"github.com/offline-ticketing/ticketing-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	AdminTickets   *handlers.AdminTicketsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Login and the health probes are the
// only public endpoints; every ticket route runs the bearer middleware and
// its role guard before the handler. Literal paths (/my, /stats) are
// registered ahead of /:id so they are not swallowed by the param route.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Get("/my", auth.RequireRole(domain.RoleEmployee), cfg.Tickets.ListMyTickets)
	tickets.Get("/stats", auth.RequireRole(domain.RoleAdmin), cfg.AdminTickets.TicketStats)
	tickets.Post("/", auth.RequireRole(domain.RoleEmployee), cfg.Tickets.CreateTicket)
	tickets.Get("/", auth.RequireRole(domain.RoleAdmin), cfg.AdminTickets.ListAllTickets)
	tickets.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.AdminTickets.UpdateTicket)
	tickets.Get("/:id", auth.RequireAuthenticated(), cfg.Tickets.GetTicket)
}
