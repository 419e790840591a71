package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/authdash/dashboard-api/internal/core/domain"
)

const (
	userCollection    = "users"
	counterCollection = "counters"
	userCounterID     = "user_id"
)

// UserRepository is the MongoDB-backed credential store. User IDs are
// sequential integers drawn from a counters document, not ObjectIDs.
type UserRepository struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:    db.Collection(userCollection),
		counters: db.Collection(counterCollection),
	}
}

type mongoUser struct {
	ID           int64  `bson:"_id"`
	Email        string `bson:"email"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`
}

// EnsureIndexes creates the unique email index. Call once at startup; the
// index is what makes duplicate registration a store-level Conflict rather
// than a best-effort pre-check.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure email index: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoUser{
		ID:           id,
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.Unix(),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:           mu.ID,
		Email:        mu.Email,
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		CreatedAt:    unixToTime(mu.CreatedAt),
	}, nil
}

// nextID atomically increments and returns the user sequence.
func (r *UserRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": userCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next user id: %w", err)
	}

	return counter.Seq, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
