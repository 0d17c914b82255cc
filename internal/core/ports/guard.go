package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// Guard resolves "who is calling, and are they allowed to do this" at
// the top of every privileged operation.
type Guard interface {
	// AuthenticateRequest resolves the cookie token to its owning
	// user. Expired sessions are deleted and reported invalid;
	// orphaned sessions (user gone) are deleted as a side effect.
	AuthenticateRequest(ctx context.Context, token string) (*domain.User, error)
	// RequireAdmin authenticates and then fails with ErrAdminRequired
	// unless the resolved user is an admin.
	RequireAdmin(ctx context.Context, token string) (*domain.User, error)
	// RequireOwnershipOrAdmin authenticates and then fails with
	// ErrForbidden unless the caller owns the resource or is an admin.
	RequireOwnershipOrAdmin(ctx context.Context, token, ownerID string) (*domain.User, error)
}
