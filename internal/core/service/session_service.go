package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/bloghub-api/internal/api/metrics"
	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// SessionService is the session lifecycle manager: it creates,
// retrieves, validates, and invalidates session tokens, and is the
// sole authority on whether a token represents a live session.
//
// One TTL governs both session validity and the auth cookie Max-Age.
type SessionService struct {
	repo   ports.SessionRepository
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

func NewSessionService(repo ports.SessionRepository, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{repo: repo, ttl: ttl, logger: logger, now: time.Now}
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// CreateSession opens a session for userID under a fresh opaque token.
func (s *SessionService) CreateSession(ctx context.Context, userID string) (*domain.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &domain.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	metrics.SessionsCreatedTotal.Inc()
	return session, nil
}

// GetSession returns the stored session, or ErrSessionNotFound. It
// does not enforce expiry; ValidateToken and the access guard do.
func (s *SessionService) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	return s.repo.FindByToken(ctx, token)
}

// DeleteSession removes the session. Idempotent: deleting an unknown
// token reports false without error.
func (s *SessionService) DeleteSession(ctx context.Context, token string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, token)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.SessionsDeletedTotal.WithLabelValues("logout").Inc()
	}
	return deleted, nil
}

// DeleteUserSessions invalidates every concurrent login of a user.
func (s *SessionService) DeleteUserSessions(ctx context.Context, userID string) (int64, error) {
	n, err := s.repo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.SessionsDeletedTotal.WithLabelValues("cascade").Add(float64(n))
	}
	return n, nil
}

// ValidateToken is the authoritative expiry check: an over-age session
// is deleted and reported invalid.
func (s *SessionService) ValidateToken(ctx context.Context, token string) bool {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Error().Err(err).Msg("session lookup failed")
		}
		return false
	}

	if session.Expired(s.now(), s.ttl) {
		if _, err := s.repo.Delete(ctx, token); err != nil {
			s.logger.Error().Err(err).Msg("failed to delete expired session")
		} else {
			metrics.SessionsDeletedTotal.WithLabelValues("expired").Inc()
		}
		return false
	}
	return true
}

// generateToken returns 32 bytes of entropy as a 64-char hex string.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
