package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trademindiq/trading-account/internal/core/domain"
)

// ctxUser extracts the account profile injected by the Auth middleware and
// performs a fast-fail check before any repository call: a zero ID means the
// middleware did not run (or ran against a malformed claim set), so the
// request is rejected rather than queried with an empty key.
func ctxUser(c echo.Context) (domain.Profile, error) {
	user, ok := c.Get("user").(domain.Profile)
	if !ok || user.ID == 0 {
		return domain.Profile{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
