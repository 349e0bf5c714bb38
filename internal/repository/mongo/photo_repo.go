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

const photoCollectionName = "progress_photos"

// mongoPhotoRepository implements repository.PhotoRepository.
type mongoPhotoRepository struct {
	collection *mongo.Collection
}

// NewPhotoRepository creates a progress photo store backed by MongoDB.
func NewPhotoRepository(db *mongo.Database) repository.PhotoRepository {
	return &mongoPhotoRepository{collection: db.Collection(photoCollectionName)}
}

func (r *mongoPhotoRepository) Create(ctx context.Context, photo *domain.ProgressPhoto) error {
	photo.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, photo)
	return err
}

func (r *mongoPhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProgressPhoto, error) {
	var photo domain.ProgressPhoto
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *mongoPhotoRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.ProgressPhoto, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var photos []domain.ProgressPhoto
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *mongoPhotoRepository) Update(ctx context.Context, photo *domain.ProgressPhoto) error {
	filter := bson.M{"_id": photo.ID, "ownerId": photo.OwnerID}
	result, err := r.collection.ReplaceOne(ctx, filter, photo)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoPhotoRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePhotoIndexes creates the indexes the photo queries rely on.
func EnsurePhotoIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("photo_owner_date"),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
