package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// TokenHandler issues access credentials.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt — signs the posted identity payload into a
// time-limited bearer token. The payload is taken on trust; this endpoint
// only binds it to a signature and an expiry.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Identity payload"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.tokens.Issue(ports.IdentityClaims{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
