package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/api/middleware"
	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// currentUser extracts the user resolved by the auth middleware. Its
// absence means the route was registered without the middleware —
// fail closed rather than proceed anonymously.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}

// optionalUser extracts the user when OptionalAuth resolved one.
func optionalUser(c echo.Context) *domain.User {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	return user
}
