package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

const postsCollection = "posts"

// PostRepository persists posts with embedded comments and like lists.
// Likes and comments are mutated in place with atomic single-document
// updates ($push/$pull with guards).
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var post domain.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []domain.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]domain.BlogPost, error) {
	return r.find(ctx, bson.M{})
}

func (r *PostRepository) Update(ctx context.Context, id string, upd domain.PostUpdate) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if len(set) == 0 {
		return false, nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("update post: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *PostRepository) DeleteByAuthor(ctx context.Context, authorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, fmt.Errorf("delete author posts: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *PostRepository) AddComment(ctx context.Context, postID string, c domain.Comment) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": postID}, bson.M{"$push": bson.M{"comments": c}})
	if err != nil {
		return false, fmt.Errorf("add comment: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *PostRepository) RemoveComment(ctx context.Context, postID, commentID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": postID}, bson.M{"$pull": bson.M{"comments": bson.M{"id": commentID}}})
	if err != nil {
		return false, fmt.Errorf("remove comment: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// AddLike is idempotent: the $ne guard makes a second like from the
// same user match nothing.
func (r *PostRepository) AddLike(ctx context.Context, postID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"id": postID, "likes": bson.M{"$ne": userID}}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"likes": userID}})
	if err != nil {
		return false, fmt.Errorf("add like: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": postID}, bson.M{"$pull": bson.M{"likes": userID}})
	if err != nil {
		return false, fmt.Errorf("remove like: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// EnsureIndexes creates the id and author indexes.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
