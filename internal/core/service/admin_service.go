package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghub/bloghub-api/internal/api/metrics"
	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// AdminService implements the user-management and content-moderation
// back office. Callers are resolved by the guard middleware before any
// method here runs.
type AdminService struct {
	users      ports.UserRepository
	posts      ports.PostRepository
	sessions   ports.SessionManager
	bcryptCost int
	logger     zerolog.Logger
}

func NewAdminService(users ports.UserRepository, posts ports.PostRepository, sessions ports.SessionManager, bcryptCost int, logger zerolog.Logger) *AdminService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &AdminService{users: users, posts: posts, sessions: sessions, bcryptCost: bcryptCost, logger: logger}
}

// ListUsers returns one page of users matching the search term.
func (s *AdminService) ListUsers(ctx context.Context, in ports.ListUsersInput) (*ports.UserPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 10
	}

	users, total, err := s.users.List(ctx, in)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(in.Limit) - 1) / int64(in.Limit))
	return &ports.UserPage{
		Users:      users,
		Total:      total,
		Page:       in.Page,
		TotalPages: totalPages,
		HasNext:    int64(in.Page*in.Limit) < total,
		HasPrev:    in.Page > 1,
	}, nil
}

// CreateUser provisions an account from the back office.
func (s *AdminService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidGender(in.Gender) {
		return nil, domain.NewFieldErrors("Validation failed", map[string]string{"gender": "Gender must be male, female or other"})
	}
	if err := checkIdentityAvailable(ctx, s.users, in.Username, in.Email, in.PhoneNumber, ""); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Gender:       in.Gender,
		PasswordHash: string(hash),
		IsAdmin:      in.IsAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Bool("is_admin", user.IsAdmin).Msg("user created by admin")
	return user, nil
}

// UpdateUser applies a partial update. Immutable fields (id, password
// hash, creation time) are not part of UserUpdate by construction.
func (s *AdminService) UpdateUser(ctx context.Context, userID string, upd domain.UserUpdate) (*domain.User, error) {
	if upd.Empty() {
		return nil, domain.NewFieldErrors("Validation failed", map[string]string{"updates": "At least one field is required"})
	}
	if upd.Gender != nil && !domain.ValidGender(*upd.Gender) {
		return nil, domain.NewFieldErrors("Validation failed", map[string]string{"gender": "Gender must be male, female or other"})
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	username, email, phone := "", "", ""
	if upd.Username != nil {
		username = *upd.Username
	}
	if upd.Email != nil {
		email = *upd.Email
	}
	if upd.PhoneNumber != nil {
		phone = *upd.PhoneNumber
	}
	if err := checkIdentityAvailable(ctx, s.users, username, email, phone, userID); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, userID, upd); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

// DeleteUser cascades posts → sessions → user. Admin accounts cannot
// be deleted, the acting admin's own account included.
func (s *AdminService) DeleteUser(ctx context.Context, acting *domain.User, userID string) error {
	if userID == acting.ID {
		return domain.ErrForbidden
	}

	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if target.IsAdmin {
		return domain.ErrForbidden
	}

	if _, err := s.posts.DeleteByAuthor(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("cascade: post deletion failed")
	}
	if _, err := s.sessions.DeleteUserSessions(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("cascade: session deletion failed")
	}

	deleted, err := s.users.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}

	metrics.AccountsDeletedTotal.WithLabelValues("admin").Inc()
	s.logger.Info().Str("user_id", userID).Str("deleted_by", acting.ID).Msg("user deleted by admin")
	return nil
}

// ToggleAdmin flips the target's admin flag. Admins cannot modify
// their own flag.
func (s *AdminService) ToggleAdmin(ctx context.Context, acting *domain.User, userID string) (*domain.User, error) {
	if userID == acting.ID {
		return nil, domain.ErrForbidden
	}

	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	flipped := !target.IsAdmin
	if err := s.users.Update(ctx, userID, domain.UserUpdate{IsAdmin: &flipped}); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Bool("is_admin", flipped).Str("changed_by", acting.ID).Msg("admin flag toggled")
	return s.users.FindByID(ctx, userID)
}

// ListPosts returns every post for the moderation view.
func (s *AdminService) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.FindAll(ctx)
}

// UpdatePost edits any post, bypassing ownership.
func (s *AdminService) UpdatePost(ctx context.Context, postID string, upd domain.PostUpdate) error {
	if upd.Empty() {
		return domain.NewFieldErrors("Validation failed", map[string]string{"updates": "At least one field is required"})
	}
	updated, err := s.posts.Update(ctx, postID, upd)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrPostNotFound
	}
	return nil
}

// DeletePost removes any post, bypassing ownership.
func (s *AdminService) DeletePost(ctx context.Context, postID string) error {
	deleted, err := s.posts.Delete(ctx, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrPostNotFound
	}
	return nil
}
