package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bloghub/bloghub-api/internal/api/metrics"
	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// Guard is the access guard invoked at the top of every privileged
// operation. It holds no state of its own beyond what it reads from
// the session manager and the credential store.
type Guard struct {
	sessions ports.SessionManager
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewGuard(sessions ports.SessionManager, users ports.UserRepository, logger zerolog.Logger) *Guard {
	return &Guard{sessions: sessions, users: users, logger: logger}
}

// AuthenticateRequest resolves a cookie token to its owning user.
//
// Failure order: missing token → ErrUnauthorized; unknown or expired
// session → ErrInvalidSession (expired sessions are deleted); deleted
// user → ErrUserNotFound, and the orphaned session is removed.
func (g *Guard) AuthenticateRequest(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		metrics.AuthFailuresTotal.WithLabelValues("unauthorized").Inc()
		return nil, domain.ErrUnauthorized
	}

	if !g.sessions.ValidateToken(ctx, token) {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_session").Inc()
		return nil, domain.ErrInvalidSession
	}

	session, err := g.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("invalid_session").Inc()
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}

	user, err := g.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Orphaned session: its user record is gone.
			if _, delErr := g.sessions.DeleteSession(ctx, token); delErr != nil {
				g.logger.Error().Err(delErr).Msg("failed to delete orphaned session")
			} else {
				metrics.SessionsDeletedTotal.WithLabelValues("orphaned").Inc()
			}
			metrics.AuthFailuresTotal.WithLabelValues("user_not_found").Inc()
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// RequireAdmin authenticates and enforces the admin flag.
func (g *Guard) RequireAdmin(ctx context.Context, token string) (*domain.User, error) {
	user, err := g.AuthenticateRequest(ctx, token)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		metrics.AuthFailuresTotal.WithLabelValues("admin_required").Inc()
		return nil, domain.ErrAdminRequired
	}
	return user, nil
}

// RequireOwnershipOrAdmin authenticates and enforces that the caller
// owns the resource or is an admin.
func (g *Guard) RequireOwnershipOrAdmin(ctx context.Context, token, ownerID string) (*domain.User, error) {
	user, err := g.AuthenticateRequest(ctx, token)
	if err != nil {
		return nil, err
	}
	if user.ID != ownerID && !user.IsAdmin {
		metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
		return nil, domain.ErrForbidden
	}
	return user, nil
}
