package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authdash/dashboard-api/internal/api/middleware"
	"github.com/authdash/dashboard-api/internal/core/domain"
)

// CurrentUser extracts the user injected by the Auth middleware and performs
// a fast-fail check before any handler logic: a protected route reached
// without a resolved user means the middleware chain is miswired, so reject
// with 401 rather than proceed unauthenticated.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
