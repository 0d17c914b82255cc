package sweep

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

type stubSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	err      error
}

func (r *stubSessionRepo) has(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[token]
	return ok
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.sessions[s.Token] = s
	return nil
}

func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	if s, ok := r.sessions[token]; ok {
		return s, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (r *stubSessionRepo) Delete(_ context.Context, token string) (bool, error) {
	if _, ok := r.sessions[token]; !ok {
		return false, nil
	}
	delete(r.sessions, token)
	return true, nil
}

func (r *stubSessionRepo) FindByUser(_ context.Context, _ string) ([]domain.Session, error) {
	return nil, nil
}

func (r *stubSessionRepo) DeleteByUser(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (r *stubSessionRepo) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for token, s := range r.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(r.sessions, token)
			n++
		}
	}
	return n, nil
}

func TestSweeper_Sweep(t *testing.T) {
	repo := &stubSessionRepo{sessions: map[string]*domain.Session{
		"old":   {Token: "old", UserID: "u1", CreatedAt: time.Now().Add(-2 * time.Hour)},
		"fresh": {Token: "fresh", UserID: "u1", CreatedAt: time.Now()},
	}}
	s := NewSweeper(repo, time.Hour, time.Minute, zerolog.Nop())

	if n := s.Sweep(context.Background()); n != 1 {
		t.Fatalf("expected 1 session swept, got %d", n)
	}
	if _, ok := repo.sessions["old"]; ok {
		t.Fatalf("expected the over-age session to be removed")
	}
	if _, ok := repo.sessions["fresh"]; !ok {
		t.Fatalf("fresh session must survive the sweep")
	}

	if n := s.Sweep(context.Background()); n != 0 {
		t.Fatalf("expected nothing left to sweep, got %d", n)
	}
}

func TestSweeper_SweepErrorReportsZero(t *testing.T) {
	repo := &stubSessionRepo{sessions: map[string]*domain.Session{}, err: context.DeadlineExceeded}
	s := NewSweeper(repo, time.Hour, time.Minute, zerolog.Nop())

	if n := s.Sweep(context.Background()); n != 0 {
		t.Fatalf("expected 0 on repository error, got %d", n)
	}
}

func TestSweeper_StartStopsOnCancel(t *testing.T) {
	repo := &stubSessionRepo{sessions: map[string]*domain.Session{
		"old": {Token: "old", UserID: "u1", CreatedAt: time.Now().Add(-2 * time.Hour)},
	}}
	s := NewSweeper(repo, time.Hour, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	deadline := time.After(time.Second)
	for {
		if !repo.has("old") {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("sweeper never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
}
