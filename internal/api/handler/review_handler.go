package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// ReviewHandler serves the read-only reviews collection.
type ReviewHandler struct {
	service ports.CatalogService
}

func NewReviewHandler(service ports.CatalogService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET /reviews — public.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.ListReviews(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
