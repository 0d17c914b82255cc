package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// PostRepository persists blog posts with their embedded comments and
// like lists. Single-document operations only; no transactions.
type PostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	FindByID(ctx context.Context, id string) (*domain.BlogPost, error)
	FindAll(ctx context.Context) ([]domain.BlogPost, error)
	Update(ctx context.Context, id string, upd domain.PostUpdate) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
	AddComment(ctx context.Context, postID string, c domain.Comment) (bool, error)
	RemoveComment(ctx context.Context, postID, commentID string) (bool, error)
	// AddLike records userID as a liker unless already present;
	// reports whether the like list changed.
	AddLike(ctx context.Context, postID, userID string) (bool, error)
	RemoveLike(ctx context.Context, postID, userID string) (bool, error)
}
