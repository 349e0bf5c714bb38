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

const templateCollectionName = "workout_templates"

// mongoTemplateRepository implements repository.TemplateRepository.
//
// A template document embeds its days and their planned exercises, so every
// write replaces the whole aggregate and every delete removes the whole
// owned subtree in one atomic document operation.
type mongoTemplateRepository struct {
	collection *mongo.Collection
}

// NewTemplateRepository creates a template store backed by MongoDB.
func NewTemplateRepository(db *mongo.Database) repository.TemplateRepository {
	return &mongoTemplateRepository{collection: db.Collection(templateCollectionName)}
}

func (r *mongoTemplateRepository) Create(ctx context.Context, template *domain.WorkoutTemplate) error {
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, template)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *mongoTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutTemplate, error) {
	var template domain.WorkoutTemplate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&template)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *mongoTemplateRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutTemplate, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []domain.WorkoutTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *mongoTemplateRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	filter := bson.M{
		"ownerId": ownerID,
		"name":    domain.NormalizeTemplateName(name),
		"_id":     bson.M{"$ne": excludeID},
	}
	countOptions := options.Count().SetCollation(caseInsensitiveCollation).SetLimit(1)

	count, err := r.collection.CountDocuments(ctx, filter, countOptions)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoTemplateRepository) Update(ctx context.Context, template *domain.WorkoutTemplate) error {
	template.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": template.ID, "ownerId": template.OwnerID}
	result, err := r.collection.ReplaceOne(ctx, filter, template)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoTemplateRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTemplateIndexes creates the indexes the template queries rely on.
// The owner+name index is unique under a case-insensitive collation, backing
// the duplicate-name validation against concurrent writers.
func EnsureTemplateIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().
				SetName("template_owner_name_unique").
				SetUnique(true).
				SetCollation(caseInsensitiveCollation),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
