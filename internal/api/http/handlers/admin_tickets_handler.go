package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/offline-ticketing/ticketing-service/internal/api/dto"
	"github.com/offline-ticketing/ticketing-service/internal/auth"
	"github.com/offline-ticketing/ticketing-service/internal/service"
	apperrors "github.com/offline-ticketing/ticketing-service/pkg/util"
)

// AdminTicketsHandler manages the admin-only triage endpoints.
type AdminTicketsHandler struct {
	service *service.TicketService
}

// NewAdminTicketsHandler constructs handler.
func NewAdminTicketsHandler(ticketService *service.TicketService) *AdminTicketsHandler {
	return &AdminTicketsHandler{service: ticketService}
}

// ListAllTickets GET /tickets.
func (h *AdminTicketsHandler) ListAllTickets(c *fiber.Ctx) error {
	details, err := h.service.ListAllTickets(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(ticketViews(details))
}

// UpdateTicket PUT /tickets/:id.
func (h *AdminTicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.service.UpdateTicket(c.Context(), principal.User, ticketID, service.TicketUpdateInput{
		Status:     req.Status,
		AssigneeID: req.AssignedToUserID,
	}); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// TicketStats GET /tickets/stats.
func (h *AdminTicketsHandler) TicketStats(c *fiber.Ctx) error {
	counts, err := h.service.TicketStats(c.Context())
	if err != nil {
		return err
	}
	stats := make([]dto.TicketStatsEntry, 0, len(counts))
	for _, entry := range counts {
		stats = append(stats, dto.TicketStatsEntry{Status: entry.Status, Count: entry.Count})
	}
	return c.JSON(stats)
}
