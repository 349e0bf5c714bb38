// Package memory provides map-backed implementations of the store
// interfaces. It backs the service tests and the storage-free run mode.
// Every read and write deep-copies the aggregate, so callers never alias
// stored state.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
)

type memoryExerciseRepository struct {
	mu        sync.RWMutex
	exercises map[uuid.UUID]*domain.Exercise
}

// NewExerciseRepository creates an empty in-memory exercise store.
func NewExerciseRepository() repository.ExerciseRepository {
	return &memoryExerciseRepository{exercises: make(map[uuid.UUID]*domain.Exercise)}
}

func (r *memoryExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now
	r.exercises[exercise.ID] = exercise.Clone()
	return nil
}

func (r *memoryExerciseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercise, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return exercise.Clone(), nil
}

func (r *memoryExerciseRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Exercise
	for _, exercise := range r.exercises {
		if exercise.OwnerID == ownerID {
			result = append(result, *exercise.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (r *memoryExerciseRepository) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, exercise := range r.exercises {
		if exercise.OwnerID == ownerID && strings.EqualFold(exercise.Name, name) {
			return exercise.Clone(), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.exercises[exercise.ID]
	if !ok || stored.OwnerID != exercise.OwnerID {
		return repository.ErrNotFound
	}
	exercise.UpdatedAt = time.Now().UTC()
	exercise.CreatedAt = stored.CreatedAt
	r.exercises[exercise.ID] = exercise.Clone()
	return nil
}

func (r *memoryExerciseRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.exercises[id]
	if !ok || stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}
