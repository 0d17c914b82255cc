package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghub/bloghub-api/internal/api/metrics"
	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

const defaultBcryptCost = 12

// AuthService implements sign-up, login, logout, profile updates, and
// self-service account deletion.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionManager
	posts      ports.PostRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionManager, posts ports.PostRepository, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &AuthService{users: users, sessions: sessions, posts: posts, bcryptCost: bcryptCost, logger: logger}
}

// Signup creates the account and opens its first session.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, *domain.Session, error) {
	if !domain.ValidGender(in.Gender) {
		return nil, nil, domain.NewFieldErrors("Validation failed", map[string]string{"gender": "Gender must be male, female or other"})
	}

	if err := checkIdentityAvailable(ctx, s.users, in.Username, in.Email, in.PhoneNumber, ""); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Gender:       in.Gender,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("account created")
	return user, session, nil
}

// Login resolves the identifier and verifies the password. The
// identifier is treated as an email when it contains '@', otherwise as
// a username. Failures carry field-level detail.
func (s *AuthService) Login(ctx context.Context, emailOrUsername, password string) (*domain.User, *domain.Session, error) {
	identifier := strings.TrimSpace(emailOrUsername)

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.FindByEmail(ctx, identifier)
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("bad_identifier").Inc()
			return nil, nil, domain.NewCredentialErrors(map[string]string{"emailOrUsername": "No account found with this email"})
		}
	} else {
		user, err = s.users.FindByUsername(ctx, identifier)
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("bad_identifier").Inc()
			return nil, nil, domain.NewCredentialErrors(map[string]string{"emailOrUsername": "No account found with this username"})
		}
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, nil, domain.NewCredentialErrors(map[string]string{"password": "Incorrect password"})
	}

	session, err := s.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("login successful")
	return user, session, nil
}

// Logout deletes the session; unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	_, err := s.sessions.DeleteSession(ctx, token)
	return err
}

// DeleteAccount cascades deletion of the caller's posts, sessions and
// record, in that order. The cascade is best-effort, not a
// transaction: a failed early step is logged and the rest proceeds.
func (s *AuthService) DeleteAccount(ctx context.Context, user *domain.User, password string) (int64, error) {
	if user.IsAdmin {
		return 0, domain.ErrForbidden
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return 0, domain.NewFieldErrors("The password you entered is incorrect", map[string]string{"password": "The password you entered is incorrect"})
	}

	postsDeleted, err := s.posts.DeleteByAuthor(ctx, user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("cascade: post deletion failed")
	}
	if _, err := s.sessions.DeleteUserSessions(ctx, user.ID); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("cascade: session deletion failed")
	}

	deleted, err := s.users.Delete(ctx, user.ID)
	if err != nil {
		return postsDeleted, err
	}
	if !deleted {
		return postsDeleted, domain.ErrUserNotFound
	}

	metrics.AccountsDeletedTotal.WithLabelValues("self").Inc()
	s.logger.Info().Str("user_id", user.ID).Int64("posts_deleted", postsDeleted).Msg("account deleted")
	return postsDeleted, nil
}

// UpdateProfile applies a self-service partial update.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, upd domain.UserUpdate) (*domain.User, error) {
	if upd.Empty() {
		return nil, domain.NewFieldErrors("Validation failed", map[string]string{"updates": "At least one field is required"})
	}
	if upd.Gender != nil && !domain.ValidGender(*upd.Gender) {
		return nil, domain.NewFieldErrors("Validation failed", map[string]string{"gender": "Gender must be male, female or other"})
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

	// Admin flag is never self-service.
	upd.IsAdmin = nil

	if err := s.users.Update(ctx, userID, upd); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

