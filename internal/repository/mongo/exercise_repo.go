package mongo

import (
	"context"
	"errors"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository.
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewExerciseRepository creates an exercise store backed by MongoDB.
func NewExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{collection: db.Collection(exerciseCollectionName)}
}

func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, exercise)
	return err
}

func (r *mongoExerciseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *mongoExerciseRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *mongoExerciseRepository) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Exercise, error) {
	filter := bson.M{"ownerId": ownerID, "name": name}
	findOptions := options.FindOne().SetCollation(caseInsensitiveCollation)

	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *mongoExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	exercise.UpdatedAt = time.Now().UTC()

	// Owner is part of the filter so one account can never overwrite
	// another account's catalog entry.
	filter := bson.M{"_id": exercise.ID, "ownerId": exercise.OwnerID}
	result, err := r.collection.ReplaceOne(ctx, filter, exercise)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoExerciseRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureExerciseIndexes creates the indexes the exercise queries rely on.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().
				SetName("exercise_owner_name").
				SetCollation(caseInsensitiveCollation),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
