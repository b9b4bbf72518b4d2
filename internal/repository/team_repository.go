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

// TeamRepository handles team collection operations.
type TeamRepository struct {
	coll *mongo.Collection
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(teamsCollection)}
}

// Create inserts a new team.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	res, err := r.coll.InsertOne(ctx, team)
	if err != nil {
		if IsDuplicateKey(err) {
			return err
		}
		return fmt.Errorf("failed to create team: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		team.ID = id
	}
	return nil
}

// GetByName retrieves a team by its unique name.
// Returns ErrNotFound when no such team exists.
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	var team domain.Team
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

// ListNames returns the names of all teams.
func (r *TeamRepository) ListNames(ctx context.Context) ([]domain.TeamName, error) {
	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer cur.Close(ctx)

	names := make([]domain.TeamName, 0)
	if err := cur.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %w", err)
	}
	return names, nil
}

// Save replaces the stored team document with the given one.
// This is a plain read-modify-write: concurrent saves to the same
// team are last-write-wins.
func (r *TeamRepository) Save(ctx context.Context, team *domain.Team) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": team.ID}, team)
	if err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}
	return nil
}
