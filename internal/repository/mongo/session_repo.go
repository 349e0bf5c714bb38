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

const sessionCollectionName = "workout_sessions"

// mongoSessionRepository implements repository.SessionRepository.
//
// Session exercises and their completed sets are embedded in the session
// document, so deleting a session removes the whole owned subtree in one
// atomic operation and can never leave orphaned sets behind.
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewSessionRepository creates a session store backed by MongoDB.
func NewSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{collection: db.Collection(sessionCollectionName)}
}

func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) error {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *mongoSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *mongoSessionRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutSession, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []domain.WorkoutSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *mongoSessionRepository) Update(ctx context.Context, session *domain.WorkoutSession) error {
	session.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": session.ID, "ownerId": session.OwnerID}
	result, err := r.collection.ReplaceOne(ctx, filter, session)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSessionRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSessionIndexes creates the indexes the session queries rely on.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("session_owner_date"),
		},
		{
			Keys:    bson.D{{Key: "planId", Value: 1}},
			Options: options.Index().SetName("session_plan"),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
