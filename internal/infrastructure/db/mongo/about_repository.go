package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

const (
	aboutCollection       = "about_content"
	teamMembersCollection = "team_members"
)

// AboutRepository persists the About-page singleton document and the
// team member list.
type AboutRepository struct {
	content *mongo.Collection
	members *mongo.Collection
}

func NewAboutRepository(db *mongo.Database) *AboutRepository {
	return &AboutRepository{
		content: db.Collection(aboutCollection),
		members: db.Collection(teamMembersCollection),
	}
}

type aboutDoc struct {
	ID        string              `bson:"id"`
	Content   domain.AboutContent `bson:"content"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

// GetContent returns the saved singleton, seeding it with defaults on
// first read. A read failure after the seed still yields the defaults
// so the public page never blanks out.
func (r *AboutRepository) GetContent(ctx context.Context) (*domain.AboutContent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc aboutDoc
	err := r.content.FindOne(ctx, bson.M{}).Decode(&doc)
	if err == nil {
		return &doc.Content, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find about content: %w", err)
	}

	defaults := domain.DefaultAboutContent()
	now := time.Now().UTC()
	seed := aboutDoc{ID: "about_page", Content: defaults, CreatedAt: now, UpdatedAt: now}
	if _, err := r.content.InsertOne(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed about content: %w", err)
	}
	return &defaults, nil
}

// UpdateSection replaces one named section of the singleton content,
// upserting the document when it does not exist yet.
func (r *AboutRepository) UpdateSection(ctx context.Context, section string, content any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"content." + section: content,
		"updated_at":         time.Now().UTC(),
	}}
	if _, err := r.content.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("update about section: %w", err)
	}
	return nil
}

func (r *AboutRepository) CreateTeamMember(ctx context.Context, m *domain.TeamMember) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.members.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

func (r *AboutRepository) ListTeamMembers(ctx context.Context, includeInactive bool) ([]domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if !includeInactive {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.members.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []domain.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("decode team members: %w", err)
	}
	return members, nil
}

func (r *AboutRepository) UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.SocialLinks != nil {
		set["social_links"] = *upd.SocialLinks
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}

	res, err := r.members.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("update team member: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *AboutRepository) DeleteTeamMember(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.members.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete team member: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// ReorderTeamMembers rewrites Order = index in one bulk write.
func (r *AboutRepository) ReorderTeamMembers(ctx context.Context, orderedIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	models := make([]mongo.WriteModel, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": i, "updated_at": now}}))
	}

	if _, err := r.members.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("reorder team members: %w", err)
	}
	return nil
}

// EnsureIndexes creates the member id and ordering indexes.
func (r *AboutRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}
	_, err := r.members.Indexes().CreateMany(ctx, indexes)
	return err
}
