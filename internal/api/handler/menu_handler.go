package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	service ports.CatalogService
}

func NewMenuHandler(service ports.CatalogService) *MenuHandler {
	return &MenuHandler{service: service}
}

type createMenuItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
}

// List handles GET /menu — public.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Success      200  {array}  domain.MenuItem
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.ListMenu(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /menu — admin only.
//
// @Summary      Create a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMenuItemRequest  true  "Menu item"
// @Success      201   {object}  domain.MenuItem
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.service.CreateMenuItem(c.Request().Context(), ports.CreateMenuItemInput{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Delete handles DELETE /menu/:id — admin only.
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteMenuItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "menu item deleted"})
}
