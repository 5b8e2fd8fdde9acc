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

const sessionCollectionName = "sessions"

// mongoSessionRepository implements repository.SessionRepository.
type mongoSessionRepository struct {
	collection *mongo.Collection
}

func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{collection: db.Collection(sessionCollectionName)}
}

// Create inserts one finalized session. The exercise log is written with
// the document and never updated afterwards.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	if session.PlayerID == primitive.NilObjectID || session.AcademyID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("session requires playerId and academyId")
	}
	session.ID = primitive.NewObjectID()
	if session.Date.IsZero() {
		session.Date = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// CreateMany inserts the per-player sessions produced when a live session
// is finalized.
func (r *mongoSessionRepository) CreateMany(ctx context.Context, sessions []domain.TrainingSession) ([]primitive.ObjectID, error) {
	if len(sessions) == 0 {
		return nil, nil
	}
	docs := make([]interface{}, len(sessions))
	for i := range sessions {
		if sessions[i].PlayerID == primitive.NilObjectID || sessions[i].AcademyID == primitive.NilObjectID {
			return nil, errors.New("session requires playerId and academyId")
		}
		sessions[i].ID = primitive.NewObjectID()
		if sessions[i].Date.IsZero() {
			sessions[i].Date = time.Now().UTC()
		}
		docs[i] = sessions[i]
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(result.InsertedIDs))
	for _, raw := range result.InsertedIDs {
		id, ok := raw.(primitive.ObjectID)
		if !ok {
			return nil, errors.New("failed to convert inserted session ID")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error) {
	var session domain.TrainingSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetByAcademyID lists every session in the academy, most recent first.
func (r *mongoSessionRepository) GetByAcademyID(ctx context.Context, academyID primitive.ObjectID) ([]domain.TrainingSession, error) {
	return r.find(ctx, bson.M{"academyId": academyID})
}

// GetByPlayerID lists one player's sessions, most recent first.
func (r *mongoSessionRepository) GetByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]domain.TrainingSession, error) {
	return r.find(ctx, bson.M{"playerId": playerID})
}

func (r *mongoSessionRepository) find(ctx context.Context, filter bson.M) ([]domain.TrainingSession, error) {
	var sessions []domain.TrainingSession
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateNotes changes the only mutable field of a session.
func (r *mongoSessionRepository) UpdateNotes(ctx context.Context, id primitive.ObjectID, notes string) error {
	update := bson.M{"$set": bson.M{"notes": notes}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSessionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSessionIndexes creates the indexes for the sessions collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "academyId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "playerId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
