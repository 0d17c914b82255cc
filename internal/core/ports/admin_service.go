package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []domain.User
	Total      int64
	Page       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// CreateUserInput mirrors SignupInput with the admin-only IsAdmin flag.
type CreateUserInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Gender      string
	Password    string
	IsAdmin     bool
}

// AdminService implements the user-management back office. Every
// method takes the acting admin resolved by the guard.
type AdminService interface {
	ListUsers(ctx context.Context, in ListUsersInput) (*UserPage, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, upd domain.UserUpdate) (*domain.User, error)
	// DeleteUser cascades posts → sessions → user. The acting admin's
	// own account and any admin account are refused.
	DeleteUser(ctx context.Context, acting *domain.User, userID string) error
	// ToggleAdmin flips the target's admin flag; self-modification is
	// refused.
	ToggleAdmin(ctx context.Context, acting *domain.User, userID string) (*domain.User, error)

	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	UpdatePost(ctx context.Context, postID string, upd domain.PostUpdate) error
	DeletePost(ctx context.Context, postID string) error
}
