package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/tvpalette/palette-api/internal/api/middleware"
	"github.com/tvpalette/palette-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. An
// empty user id means the middleware did not run; the request is rejected
// before any service call.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	if id, ok := domain.IdentityFromContext(c.Request().Context()); ok {
		return id, nil
	}

	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing authentication claims", domain.ErrUnauthenticated)
	}
	email, _ := c.Get(middleware.ContextUserEmail).(string)
	return domain.Identity{UserID: userID, Email: email}, nil
}
