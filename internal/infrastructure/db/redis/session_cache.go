package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// CachedSessionRepository is a read-through cache in front of the
// durable session store. Mongo remains the source of truth; every
// delete path also drops the cache entry so a revoked token cannot be
// served from cache. Key format: session:<token>
type CachedSessionRepository struct {
	inner  ports.SessionRepository
	client *redis.Client
	logger zerolog.Logger
}

func NewCachedSessionRepository(inner ports.SessionRepository, client *redis.Client, logger zerolog.Logger) *CachedSessionRepository {
	return &CachedSessionRepository{inner: inner, client: client, logger: logger}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *CachedSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	if err := r.inner.Create(ctx, s); err != nil {
		return err
	}
	r.cache(ctx, s)
	return nil
}

func (r *CachedSessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if err == nil {
		var s domain.Session
		if err := json.Unmarshal(raw, &s); err == nil {
			return &s, nil
		}
		// Corrupt entry: fall through to the durable store.
		r.client.Del(ctx, sessionKey(token))
	} else if err != redis.Nil {
		r.logger.Warn().Err(err).Msg("session cache read failed")
	}

	s, err := r.inner.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	r.cache(ctx, s)
	return s, nil
}

func (r *CachedSessionRepository) Delete(ctx context.Context, token string) (bool, error) {
	deleted, err := r.inner.Delete(ctx, token)
	if err != nil {
		return false, err
	}
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		r.logger.Warn().Err(err).Msg("session cache invalidation failed")
	}
	return deleted, nil
}

func (r *CachedSessionRepository) FindByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	return r.inner.FindByUser(ctx, userID)
}

func (r *CachedSessionRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	// Collect tokens first so the cache entries can be dropped along
	// with the durable records.
	sessions, err := r.inner.FindByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	n, err := r.inner.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(sessions))
	for _, s := range sessions {
		keys = append(keys, sessionKey(s.Token))
	}
	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			r.logger.Warn().Err(err).Msg("session cache invalidation failed")
		}
	}
	return n, nil
}

func (r *CachedSessionRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	// Cache entries expire on their own TTL, well inside any session
	// TTL, so no cache sweep is needed here.
	return r.inner.DeleteExpired(ctx, cutoff)
}

func (r *CachedSessionRepository) cache(ctx context.Context, s *domain.Session) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, sessionKey(s.Token), raw, cacheTTL).Err(); err != nil {
		r.logger.Warn().Err(err).Msg("session cache write failed")
	}
}
