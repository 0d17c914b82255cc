package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// SessionManager is the sole authority on whether a token represents a
// live session.
type SessionManager interface {
	CreateSession(ctx context.Context, userID string) (*domain.Session, error)
	// GetSession returns the stored session without enforcing expiry.
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	// DeleteSession is idempotent and reports whether a record was
	// actually removed.
	DeleteSession(ctx context.Context, token string) (bool, error)
	DeleteUserSessions(ctx context.Context, userID string) (int64, error)
	// ValidateToken is the authoritative expiry check: an over-age
	// session is deleted and reported invalid.
	ValidateToken(ctx context.Context, token string) bool
}
