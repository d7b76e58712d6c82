package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// AdminOnly is the role gate. It runs after Auth and re-reads the caller's
// user record by the email claim: only the role stored right now grants
// access. The role baked into the token at issuance may be stale; an old
// token must not keep admin powers after a demotion.
func AdminOnly(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextKeyEmail).(string)
			if email == "" {
				metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil || !user.IsAdmin() {
				metrics.AuthFailuresTotal.WithLabelValues("not_admin").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}
