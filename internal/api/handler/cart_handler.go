package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartItemRequest struct {
	MenuItemID string  `json:"menu_item_id" validate:"required"`
	Name       string  `json:"name"         validate:"required"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"        validate:"required,gt=0"`
	Email      string  `json:"email"        validate:"required,email"`
}

// Add handles POST /carts — public.
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.service.Add(c.Request().Context(), ports.AddCartItemInput{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		Email:      req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// List handles GET /carts?email= — the caller may only list their own cart.
// The email claim in the verified token is compared against the requested
// owner; a mismatch is forbidden no matter what the cart contains.
//
// @Summary      List the caller's cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Cart owner email (must match the caller)"
// @Success      200    {array}   domain.CartItem
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	claimed, err := claimedEmail(c)
	if err != nil {
		return err
	}

	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []struct{}{})
	}
	if email != claimed {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	items, err := h.service.ListByOwner(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /carts/:id — the caller may only delete items from
// their own cart. Ownership is checked against the stored item.
func (h *CartHandler) Delete(c echo.Context) error {
	claimed, err := claimedEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), claimed); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "cart item deleted"})
}
