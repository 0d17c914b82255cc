package ports

import (
	"context"
	"time"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// SessionRepository persists token → user-id mappings. Implementations
// must treat the token as the primary key.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	// Delete removes the session with the given token and reports
	// whether a record was actually removed. Deleting an absent token
	// is not an error.
	Delete(ctx context.Context, token string) (bool, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Session, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	// DeleteExpired removes every session created before cutoff and
	// returns the number removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
