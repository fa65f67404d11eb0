package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tvpalette/palette-api/internal/api/metrics"
	"github.com/tvpalette/palette-api/internal/core/domain"
	"github.com/tvpalette/palette-api/internal/core/ports"
)

// Context keys set on the echo.Context of an authenticated request.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// Auth verifies the bearer token and attaches the identity to both the echo
// context and the request context. Any rejection halts the chain with
// domain.ErrUnauthenticated.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return reject("missing_header", "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return reject("bad_scheme", "invalid authorization header")
			}

			result := tokens.Verify(strings.TrimSpace(parts[1]))
			if !result.OK() {
				return reject(result.Status.String(), "invalid request: "+result.Status.String()+" token")
			}

			id := result.Identity
			c.Set(ContextUserID, id.UserID)
			c.Set(ContextUserEmail, id.Email)

			req := c.Request()
			c.SetRequest(req.WithContext(domain.ContextWithIdentity(req.Context(), id)))

			return next(c)
		}
	}
}

func reject(reason, detail string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	return fmt.Errorf("%w: %s", domain.ErrUnauthenticated, detail)
}
