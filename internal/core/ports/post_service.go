package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// CreatePostInput carries a validated post creation request. Author
// identity always comes from the resolved session, never the body.
type CreatePostInput struct {
	Title       string
	ImageURL    string
	Description string
	Content     string
}

type PostService interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
	Create(ctx context.Context, token string, in CreatePostInput) (*domain.BlogPost, error)
	// Update and Delete require the caller to own the post or be an
	// admin.
	Update(ctx context.Context, token, id string, upd domain.PostUpdate) error
	Delete(ctx context.Context, token, id string) error
	Like(ctx context.Context, token, id string) error
	Unlike(ctx context.Context, token, id string) error
	AddComment(ctx context.Context, token, id, text string) (*domain.Comment, error)
	// DeleteComment requires the caller to be the comment author or
	// an admin.
	DeleteComment(ctx context.Context, token, postID, commentID string) error
}
