package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/repository"
)

const objectiveCollectionName = "objectives"

// mongoObjectiveRepository implements repository.ObjectiveRepository.
type mongoObjectiveRepository struct {
	collection *mongo.Collection
}

func NewMongoObjectiveRepository(db *mongo.Database) repository.ObjectiveRepository {
	return &mongoObjectiveRepository{collection: db.Collection(objectiveCollectionName)}
}

func (r *mongoObjectiveRepository) Create(ctx context.Context, objective *domain.Objective) (primitive.ObjectID, error) {
	if objective.Text == "" || objective.PlayerID == primitive.NilObjectID || objective.AcademyID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("objective requires text, playerId, and academyId")
	}

	objective.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, objective)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted objective ID")
	}
	return insertedID, nil
}

func (r *mongoObjectiveRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Objective, error) {
	var objective domain.Objective
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&objective)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &objective, nil
}

func (r *mongoObjectiveRepository) GetByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]domain.Objective, error) {
	var objectives []domain.Objective
	cursor, err := r.collection.Find(ctx, bson.M{"playerId": playerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err = cursor.All(ctx, &objectives); err != nil {
		return nil, err
	}
	return objectives, nil
}

// CountByPlayerAndStatus counts a player's objectives in the given status,
// used to enforce the in-progress cap.
func (r *mongoObjectiveRepository) CountByPlayerAndStatus(ctx context.Context, playerID primitive.ObjectID, status domain.ObjectiveStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"playerId": playerID, "status": status})
}

func (r *mongoObjectiveRepository) Update(ctx context.Context, objective *domain.Objective) error {
	if objective.ID == primitive.NilObjectID {
		return errors.New("objective ID is required for update")
	}
	update := bson.M{
		"$set": bson.M{
			"text":   objective.Text,
			"body":   objective.Body,
			"status": objective.Status,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objective.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoObjectiveRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureObjectiveIndexes creates the indexes for the objectives collection.
func EnsureObjectiveIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "playerId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "academyId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
