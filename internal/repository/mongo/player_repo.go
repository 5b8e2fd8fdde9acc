package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
)

const playerCollectionName = "players"

// mongoPlayerRepository implements repository.PlayerRepository.
type mongoPlayerRepository struct {
	collection *mongo.Collection
}

func NewMongoPlayerRepository(db *mongo.Database) repository.PlayerRepository {
	return &mongoPlayerRepository{collection: db.Collection(playerCollectionName)}
}

// Create inserts a new player into their academy.
func (r *mongoPlayerRepository) Create(ctx context.Context, player *domain.Player) (primitive.ObjectID, error) {
	if player.Name == "" || player.AcademyID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("player requires name and academyId")
	}
	if player.Status == "" {
		player.Status = domain.PlayerActive
	}

	player.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	player.CreatedAt = now
	player.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, player)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted player ID")
	}
	return insertedID, nil
}

func (r *mongoPlayerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Player, error) {
	var player domain.Player
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &player, nil
}

// GetByAcademyID lists all of an academy's players, active and archived,
// sorted by name for list display.
func (r *mongoPlayerRepository) GetByAcademyID(ctx context.Context, academyID primitive.ObjectID) ([]domain.Player, error) {
	var players []domain.Player
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"academyId": academyID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err = cursor.All(ctx, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Update rewrites the player's mutable fields (name, status, profile).
// AcademyID never changes after creation.
func (r *mongoPlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	if player.ID == primitive.NilObjectID {
		return errors.New("player ID is required for update")
	}
	update := bson.M{
		"$set": bson.M{
			"name":      player.Name,
			"status":    player.Status,
			"profile":   player.Profile,
			"updatedAt": time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": player.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePlayerIndexes creates the indexes for the players collection.
func EnsurePlayerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "academyId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
