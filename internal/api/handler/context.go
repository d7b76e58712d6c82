package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/middleware"
)

// claimedEmail extracts the email claim injected by the Auth middleware.
// An empty claim means the gate did not run or the token carried no email;
// either way the request cannot be attributed to an identity, so reject 401.
func claimedEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
