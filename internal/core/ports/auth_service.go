package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// SignupInput carries a validated sign-up request.
type SignupInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Gender      string
	Password    string
}

type AuthService interface {
	// Signup creates the account and an initial session.
	Signup(ctx context.Context, in SignupInput) (*domain.User, *domain.Session, error)
	// Login resolves the identifier (email when it contains '@',
	// username otherwise), verifies the password and opens a session.
	Login(ctx context.Context, emailOrUsername, password string) (*domain.User, *domain.Session, error)
	// Logout deletes the session; an absent token is a no-op.
	Logout(ctx context.Context, token string) error
	// DeleteAccount verifies the password and cascades deletion of
	// the caller's posts, sessions and record. Admins are refused.
	// Returns the number of posts removed.
	DeleteAccount(ctx context.Context, user *domain.User, password string) (int64, error)
	// UpdateProfile applies a self-service partial update and returns
	// the refreshed user.
	UpdateProfile(ctx context.Context, userID string, upd domain.UserUpdate) (*domain.User, error)
}
