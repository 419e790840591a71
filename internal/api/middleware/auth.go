package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/authdash/dashboard-api/internal/api/metrics"
	"github.com/authdash/dashboard-api/internal/core/domain"
	"github.com/authdash/dashboard-api/internal/core/ports"
	"github.com/authdash/dashboard-api/internal/pkg/token"
)

// ContextUserKey is the echo.Context key under which Auth stores the
// resolved *domain.User for the duration of one request.
const ContextUserKey = "current_user"

// Auth validates the bearer token, resolves its subject to a stored user,
// and injects the user into the request context. Every rejection is a 401
// with a generic message and a Bearer challenge; the precise cause is only
// reflected in metrics.
func Auth(tokens *token.Service, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return challenge(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return challenge(c, "invalid authorization header")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, token.ErrExpired):
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				default:
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return challenge(c, "invalid or expired token")
			}

			// A token can outlive its user; the staleness window is bounded
			// by the token TTL.
			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenVerificationsTotal.WithLabelValues("stale_user").Inc()
					return challenge(c, "invalid or expired token")
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextUserKey, user)

			return next(c)
		}
	}
}

func challenge(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
