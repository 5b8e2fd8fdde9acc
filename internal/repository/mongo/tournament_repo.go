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

const tournamentCollectionName = "tournaments"

// mongoTournamentRepository implements repository.TournamentRepository.
type mongoTournamentRepository struct {
	collection *mongo.Collection
}

func NewMongoTournamentRepository(db *mongo.Database) repository.TournamentRepository {
	return &mongoTournamentRepository{collection: db.Collection(tournamentCollectionName)}
}

func (r *mongoTournamentRepository) Create(ctx context.Context, tournament *domain.Tournament) (primitive.ObjectID, error) {
	if tournament.Name == "" || tournament.PlayerID == primitive.NilObjectID || tournament.AcademyID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("tournament requires name, playerId, and academyId")
	}

	tournament.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, tournament)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted tournament ID")
	}
	return insertedID, nil
}

func (r *mongoTournamentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tournament, error) {
	var tournament domain.Tournament
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tournament)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

// GetByPlayerID lists a player's tournaments in calendar order.
func (r *mongoTournamentRepository) GetByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]domain.Tournament, error) {
	var tournaments []domain.Tournament
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"playerId": playerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err = cursor.All(ctx, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *mongoTournamentRepository) Update(ctx context.Context, tournament *domain.Tournament) error {
	if tournament.ID == primitive.NilObjectID {
		return errors.New("tournament ID is required for update")
	}
	update := bson.M{
		"$set": bson.M{
			"name":       tournament.Name,
			"importance": tournament.Importance,
			"startDate":  tournament.StartDate,
			"endDate":    tournament.EndDate,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": tournament.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoTournamentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTournamentIndexes creates the indexes for the tournaments collection.
func EnsureTournamentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "playerId", Value: 1}, {Key: "startDate", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "academyId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
