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

const academyCollectionName = "academies"

// mongoAcademyRepository implements repository.AcademyRepository.
type mongoAcademyRepository struct {
	collection *mongo.Collection
}

func NewMongoAcademyRepository(db *mongo.Database) repository.AcademyRepository {
	return &mongoAcademyRepository{collection: db.Collection(academyCollectionName)}
}

// Create inserts a new academy with its creator as the first member.
func (r *mongoAcademyRepository) Create(ctx context.Context, academy *domain.Academy) (primitive.ObjectID, error) {
	if academy.Name == "" || academy.ShareCode == "" || academy.OwnerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("academy requires name, shareCode, and ownerId")
	}

	academy.ID = primitive.NewObjectID()
	academy.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, academy)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted academy ID")
	}
	return insertedID, nil
}

func (r *mongoAcademyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Academy, error) {
	var academy domain.Academy
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&academy)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &academy, nil
}

// GetByShareCode looks an academy up by its join code.
func (r *mongoAcademyRepository) GetByShareCode(ctx context.Context, code string) (*domain.Academy, error) {
	var academy domain.Academy
	err := r.collection.FindOne(ctx, bson.M{"shareCode": code}).Decode(&academy)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &academy, nil
}

// GetByMemberID lists every academy the coach belongs to.
func (r *mongoAcademyRepository) GetByMemberID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Academy, error) {
	var academies []domain.Academy
	cursor, err := r.collection.Find(ctx, bson.M{"memberIds": coachID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err = cursor.All(ctx, &academies); err != nil {
		return nil, err
	}
	return academies, nil
}

// AddMember adds a coach to the academy's member list. Adding an existing
// member is a no-op.
func (r *mongoAcademyRepository) AddMember(ctx context.Context, academyID, coachID primitive.ObjectID) error {
	update := bson.M{"$addToSet": bson.M{"memberIds": coachID}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": academyID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAcademyIndexes creates the indexes for the academies collection.
func EnsureAcademyIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "shareCode", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "memberIds", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
