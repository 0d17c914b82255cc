package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// ListUsersInput selects a page of users for the admin back office.
// Search matches username or email, case-insensitively.
type ListUsersInput struct {
	Page   int
	Limit  int
	Search string
}

// UserRepository is the credential store. Username and email lookups
// are case-insensitive.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	List(ctx context.Context, in ListUsersInput) ([]domain.User, int64, error)
	Update(ctx context.Context, id string, upd domain.UserUpdate) error
	Delete(ctx context.Context, id string) (bool, error)
}
