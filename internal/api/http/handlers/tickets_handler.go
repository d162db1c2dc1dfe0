package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/offline-ticketing/ticketing-service/internal/api/dto"
	"github.com/offline-ticketing/ticketing-service/internal/auth"
	"github.com/offline-ticketing/ticketing-service/internal/domain"
	"github.com/offline-ticketing/ticketing-service/internal/service"
	apperrors "github.com/offline-ticketing/ticketing-service/pkg/util"
)

// TicketsHandler manages employee ticket endpoints plus the shared
// single-ticket read.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	detail, err := h.service.CreateTicket(c.Context(), principal.User, service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	c.Set("Location", "/tickets/"+detail.ID)
	return c.Status(http.StatusCreated).JSON(dto.NewTicketView(detail))
}

// ListMyTickets GET /tickets/my.
func (h *TicketsHandler) ListMyTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	details, err := h.service.ListMyTickets(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(ticketViews(details))
}

// GetTicket GET /tickets/:id. Reachable by any authenticated caller; the
// service enforces the creator/assignee/admin visibility rule.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	detail, err := h.service.GetTicket(c.Context(), principal.User, ticketID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketView(detail))
}

func ticketViews(details []domain.TicketDetail) []dto.TicketView {
	views := make([]dto.TicketView, 0, len(details))
	for i := range details {
		views = append(views, dto.NewTicketView(&details[i]))
	}
	return views
}

func parseTicketID(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperrors.NewValidationError("malformed ticket id", map[string]any{"id": raw})
	}
	return raw, nil
}
