package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/welcomehome/inventory/internal/repository"
	"github.com/welcomehome/inventory/internal/service"
)

// currentSession resolves the live session for the request using the
// session ID claim injected by the JWT middleware. A valid token whose
// session is gone (logout or server restart) yields nil.
func currentSession(c echo.Context, app *service.App) *service.Session {
	sid, ok := c.Get("session_id").(string)
	if !ok || sid == "" {
		return nil
	}
	return app.Session(sid)
}

// respondErr translates service and repository sentinel errors into
// HTTP responses. Unclassified errors are reported as a plain 500; the
// detail stays server-side.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	case errors.Is(err, service.ErrAuthenticationFailed):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotAuthorized):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, service.ErrNoActiveOrder):
		return c.JSON(http.StatusConflict, echo.Map{"error": "no active order"})
	case errors.Is(err, service.ErrItemUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "item not available"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicateUser):
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
	case errors.Is(err, repository.ErrDuplicateDonor):
		return c.JSON(http.StatusConflict, echo.Map{"error": "donor already exists"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
