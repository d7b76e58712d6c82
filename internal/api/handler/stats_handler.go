package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// StatsHandler serves the admin dashboards.
type StatsHandler struct {
	service ports.PaymentService
}

func NewStatsHandler(service ports.PaymentService) *StatsHandler {
	return &StatsHandler{service: service}
}

// AdminStats handles GET /admin-stats — counts plus total revenue.
//
// @Summary      Dashboard summary
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AdminStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin-stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.service.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// OrderStats handles GET /order-stats — per-category order counts and
// revenue from the payments/menus aggregation.
func (h *StatsHandler) OrderStats(c echo.Context) error {
	stats, err := h.service.OrderStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
