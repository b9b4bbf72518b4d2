package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teamforge/teamforge/internal/domain"
)

// UserRepository handles user collection operations.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// Create inserts a new user. A duplicate userName or emailId surfaces
// as a duplicate key error (check with IsDuplicateKey).
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if IsDuplicateKey(err) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// GetByUserName retrieves a user by their unique userName.
// Returns ErrNotFound when no such user exists.
func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"userName": userName}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by document id (hex-encoded ObjectID).
// Returns ErrNotFound for a malformed id or a missing document.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user domain.User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetMemberInfo returns the {userName, emailId} projection for every
// registered user whose userName is in names. Unknown names are skipped.
func (r *UserRepository) GetMemberInfo(ctx context.Context, names []string) ([]domain.MemberInfo, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"userName": bson.M{"$in": names}},
		options.Find().SetProjection(bson.M{"userName": 1, "emailId": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer cur.Close(ctx)

	members := make([]domain.MemberInfo, 0, len(names))
	if err := cur.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode members: %w", err)
	}
	return members, nil
}
