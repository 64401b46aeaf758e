package handlers

import (
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin summary.
type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleGetSummary)
}

func (h *DashboardHandler) HandleGetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, codeInternal, "Failed to fetch dashboard data", err)
	}
	return c.JSON(summary)
}
