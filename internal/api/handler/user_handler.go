package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// UserHandler handles HTTP requests for identity management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type adminCheckResponse struct {
	Admin bool `json:"admin"`
}

// Create handles POST /users — registers a user unless the email is taken.
// Duplicate registration returns an already-exists marker with no insert.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  messageResponse    "email already registered"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	if result.AlreadyExisted {
		return c.JSON(http.StatusOK, messageResponse{Message: "user already exists"})
	}

	return c.JSON(http.StatusCreated, result.User)
}

// List handles GET /users — admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Promote handles PATCH /users/admin/:id — admin only.
func (h *UserHandler) Promote(c echo.Context) error {
	if err := h.service.PromoteToAdmin(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user promoted to admin"})
}

// Delete handles DELETE /users/admin/:id — admin only.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

// AdminCheck handles GET /users/admin/:email — self-only role probe. The
// caller may only ask about their own email; asking about anyone else is
// forbidden regardless of the answer.
//
// @Summary      Check whether the caller is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller's own email"
// @Success      200    {object}  adminCheckResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminCheck(c echo.Context) error {
	email, err := claimedEmail(c)
	if err != nil {
		return err
	}
	if email != c.Param("email") {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	isAdmin, err := h.service.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminCheckResponse{Admin: isAdmin})
}
