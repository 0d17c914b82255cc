package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

const usersCollection = "users"

// UserRepository is the MongoDB credential store. Usernames and emails
// are stored alongside lower-cased shadow keys so case-insensitive
// uniqueness holds under the unique indexes rather than query-time
// regex matching.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID             string    `bson:"id"`
	Username       string    `bson:"username"`
	UsernameLower  string    `bson:"username_lower"`
	Email          string    `bson:"email"`
	EmailLower     string    `bson:"email_lower"`
	PhoneNumber    string    `bson:"phone_number"`
	Gender         string    `bson:"gender"`
	PasswordHash   string    `bson:"password_hash"`
	IsAdmin        bool      `bson:"is_admin"`
	ProfilePicture string    `bson:"profile_picture,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:             u.ID,
		Username:       u.Username,
		UsernameLower:  strings.ToLower(u.Username),
		Email:          u.Email,
		EmailLower:     strings.ToLower(u.Email),
		PhoneNumber:    u.PhoneNumber,
		Gender:         u.Gender,
		PasswordHash:   u.PasswordHash,
		IsAdmin:        u.IsAdmin,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:             d.ID,
		Username:       d.Username,
		Email:          d.Email,
		PhoneNumber:    d.PhoneNumber,
		Gender:         d.Gender,
		PasswordHash:   d.PasswordHash,
		IsAdmin:        d.IsAdmin,
		ProfilePicture: d.ProfilePicture,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return conflictFromDuplicate(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// conflictFromDuplicate maps a duplicate-key error to the identity
// field whose unique index rejected the write.
func conflictFromDuplicate(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "username_lower"):
		return domain.ErrUsernameTaken
	case strings.Contains(msg, "email_lower"):
		return domain.ErrEmailTaken
	case strings.Contains(msg, "phone_number"):
		return domain.ErrPhoneTaken
	default:
		return domain.ErrUsernameTaken
	}
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user := doc.toDomain()
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username_lower": strings.ToLower(username)})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email_lower": strings.ToLower(email)})
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"phone_number": phone})
}

func (r *UserRepository) List(ctx context.Context, in ports.ListUsersInput) ([]domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if in.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"username": bson.M{"$regex": in.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": in.Search, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	opts := options.Find().
		SetSkip(int64((in.Page - 1) * in.Limit)).
		SetLimit(int64(in.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, upd domain.UserUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if upd.Username != nil {
		set["username"] = *upd.Username
		set["username_lower"] = strings.ToLower(*upd.Username)
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
		set["email_lower"] = strings.ToLower(*upd.Email)
	}
	if upd.PhoneNumber != nil {
		set["phone_number"] = *upd.PhoneNumber
	}
	if upd.Gender != nil {
		set["gender"] = *upd.Gender
	}
	if upd.IsAdmin != nil {
		set["is_admin"] = *upd.IsAdmin
	}
	if upd.ProfilePicture != nil {
		set["profile_picture"] = *upd.ProfilePicture
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return conflictFromDuplicate(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// EnsureIndexes creates the unique identity indexes.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username_lower", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email_lower", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
