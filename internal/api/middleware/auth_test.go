package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

type stubGuard struct {
	authenticateFn func(ctx context.Context, token string) (*domain.User, error)
	requireAdminFn func(ctx context.Context, token string) (*domain.User, error)
}

func (g *stubGuard) AuthenticateRequest(ctx context.Context, token string) (*domain.User, error) {
	return g.authenticateFn(ctx, token)
}

func (g *stubGuard) RequireAdmin(ctx context.Context, token string) (*domain.User, error) {
	return g.requireAdminFn(ctx, token)
}

func (g *stubGuard) RequireOwnershipOrAdmin(ctx context.Context, token, ownerID string) (*domain.User, error) {
	return nil, errors.New("not used")
}

func requestWithCookie(token string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	}
	return req, httptest.NewRecorder()
}

func TestToken(t *testing.T) {
	e := echo.New()

	req, rec := requestWithCookie("abc123")
	c := e.NewContext(req, rec)
	if got := Token(c); got != "abc123" {
		t.Fatalf("expected cookie value, got %q", got)
	}

	req, rec = requestWithCookie("")
	c = e.NewContext(req, rec)
	if got := Token(c); got != "" {
		t.Fatalf("expected empty token without cookie, got %q", got)
	}
}

func TestRequireAuth_Success(t *testing.T) {
	e := echo.New()
	guard := &stubGuard{
		authenticateFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "tok" {
				t.Fatalf("unexpected token: %q", token)
			}
			return &domain.User{ID: "user-1"}, nil
		},
	}

	req, rec := requestWithCookie("tok")
	c := e.NewContext(req, rec)

	called := false
	handler := RequireAuth(guard)(func(c echo.Context) error {
		called = true
		user, _ := c.Get(UserContextKey).(*domain.User)
		if user == nil || user.ID != "user-1" {
			t.Fatalf("user not stored in context: %+v", user)
		}
		if c.Get(TokenContextKey) != "tok" {
			t.Fatalf("token not stored in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireAuth_Failure(t *testing.T) {
	e := echo.New()
	guard := &stubGuard{
		authenticateFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrInvalidSession
		},
	}

	req, rec := requestWithCookie("stale")
	c := e.NewContext(req, rec)

	handler := RequireAuth(guard)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession to propagate, got %v", err)
	}
}

func TestOptionalAuth_AnonymousProceeds(t *testing.T) {
	e := echo.New()
	guard := &stubGuard{
		authenticateFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	req, rec := requestWithCookie("")
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalAuth(guard)(func(c echo.Context) error {
		called = true
		if c.Get(UserContextKey) != nil {
			t.Fatalf("expected no user in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireAdmin_Failure(t *testing.T) {
	e := echo.New()
	guard := &stubGuard{
		requireAdminFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrAdminRequired
		},
	}

	req, rec := requestWithCookie("tok")
	c := e.NewContext(req, rec)

	handler := RequireAdmin(guard)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired to propagate, got %v", err)
	}
}
