package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// AuthCookieName is the cookie carrying the opaque session token.
const AuthCookieName = "auth-token"

// Context keys the middleware populates for downstream handlers.
const (
	UserContextKey  = "user"
	TokenContextKey = "token"
)

// Token extracts the session token from the auth cookie; empty when
// the cookie is absent.
func Token(c echo.Context) string {
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

// RequireAuth resolves the cookie token through the guard and stores
// the user and token in the request context. Guard failures propagate
// to the central error handler.
func RequireAuth(guard ports.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := guard.AuthenticateRequest(c.Request().Context(), Token(c))
			if err != nil {
				return err
			}
			c.Set(UserContextKey, user)
			c.Set(TokenContextKey, Token(c))
			return next(c)
		}
	}
}

// OptionalAuth populates the user context when the token resolves, and
// proceeds anonymously otherwise. Used by endpoints that never fail on
// auth, like GET /auth/me.
func OptionalAuth(guard ports.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, err := guard.AuthenticateRequest(c.Request().Context(), Token(c)); err == nil {
				c.Set(UserContextKey, user)
				c.Set(TokenContextKey, Token(c))
			}
			return next(c)
		}
	}
}

// RequireAdmin resolves the token and enforces the admin flag.
func RequireAdmin(guard ports.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := guard.RequireAdmin(c.Request().Context(), Token(c))
			if err != nil {
				return err
			}
			c.Set(UserContextKey, user)
			c.Set(TokenContextKey, Token(c))
			return next(c)
		}
	}
}
