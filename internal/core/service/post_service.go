package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bloghub/bloghub-api/internal/api/metrics"
	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// PostService implements the blog CRUD plus likes and comments. Every
// mutation resolves the caller through the access guard; ownership
// checks run against the stored post, never the request body.
type PostService struct {
	repo   ports.PostRepository
	guard  ports.Guard
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, guard ports.Guard, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, guard: guard, logger: logger}
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a single post.
func (s *PostService) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.FindByID(ctx, id)
}

// Create publishes a post authored by the resolved caller.
func (s *PostService) Create(ctx context.Context, token string, in ports.CreatePostInput) (*domain.BlogPost, error) {
	user, err := s.guard.AuthenticateRequest(ctx, token)
	if err != nil {
		return nil, err
	}

	post := &domain.BlogPost{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Description: strings.TrimSpace(in.Description),
		Content:     strings.TrimSpace(in.Content),
		AuthorID:    user.ID,
		AuthorName:  user.Username,
		CreatedAt:   time.Now().UTC(),
		Likes:       []string{},
		Comments:    []domain.Comment{},
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post_id", post.ID).Str("author_id", user.ID).Msg("post created")
	return post, nil
}

// Update edits a post; only its author or an admin may do so.
func (s *PostService) Update(ctx context.Context, token, id string, upd domain.PostUpdate) error {
	if upd.Empty() {
		return domain.NewFieldErrors("Validation failed", map[string]string{"updates": "At least one field is required for update"})
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.guard.RequireOwnershipOrAdmin(ctx, token, post.AuthorID); err != nil {
		return err
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrPostNotFound
	}
	return nil
}

// Delete removes a post; only its author or an admin may do so.
func (s *PostService) Delete(ctx context.Context, token, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	caller, err := s.guard.RequireOwnershipOrAdmin(ctx, token, post.AuthorID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrPostNotFound
	}

	s.logger.Info().Str("post_id", id).Str("deleted_by", caller.ID).Msg("post deleted")
	return nil
}

// Like records the caller as a liker. Liking twice is a no-op.
func (s *PostService) Like(ctx context.Context, token, id string) error {
	user, err := s.guard.AuthenticateRequest(ctx, token)
	if err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	_, err = s.repo.AddLike(ctx, id, user.ID)
	return err
}

// Unlike removes the caller from the like list.
func (s *PostService) Unlike(ctx context.Context, token, id string) error {
	user, err := s.guard.AuthenticateRequest(ctx, token)
	if err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	_, err = s.repo.RemoveLike(ctx, id, user.ID)
	return err
}

// AddComment appends a comment authored by the caller.
func (s *PostService) AddComment(ctx context.Context, token, id, text string) (*domain.Comment, error) {
	user, err := s.guard.AuthenticateRequest(ctx, token)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewFieldErrors("Validation failed", map[string]string{"text": "Comment text is required"})
	}

	comment := domain.Comment{
		ID:         uuid.NewString(),
		Text:       text,
		AuthorID:   user.ID,
		AuthorName: user.Username,
		CreatedAt:  time.Now().UTC(),
	}
	added, err := s.repo.AddComment(ctx, id, comment)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, domain.ErrPostNotFound
	}
	return &comment, nil
}

// DeleteComment removes a comment; only its author or an admin may.
func (s *PostService) DeleteComment(ctx context.Context, token, postID, commentID string) error {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return domain.ErrCommentNotFound
	}

	if _, err := s.guard.RequireOwnershipOrAdmin(ctx, token, comment.AuthorID); err != nil {
		return err
	}

	removed, err := s.repo.RemoveComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrCommentNotFound
	}
	return nil
}
