package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trademindiq/trading-account/internal/api/metrics"
	"github.com/trademindiq/trading-account/internal/core/ports"
)

// UserContextKey is where Auth stores the resolved account profile.
const UserContextKey = "user"

// Auth validates the bearer token and injects the resolved account into the
// request context. Resolution re-reads the store on every request, so a
// deleted account is rejected even while its token is still signed and
// unexpired.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenResolutionsTotal.WithLabelValues("failure").Inc()
				return err
			}
			metrics.TokenResolutionsTotal.WithLabelValues("success").Inc()

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
