package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
)

type memoryPhotoRepository struct {
	mu     sync.RWMutex
	photos map[uuid.UUID]*domain.ProgressPhoto
}

// NewPhotoRepository creates an empty in-memory progress photo store.
func NewPhotoRepository() repository.PhotoRepository {
	return &memoryPhotoRepository{photos: make(map[uuid.UUID]*domain.ProgressPhoto)}
}

func clonePhoto(photo *domain.ProgressPhoto) *domain.ProgressPhoto {
	c := *photo
	if photo.WeightSampleID != nil {
		s := *photo.WeightSampleID
		c.WeightSampleID = &s
	}
	if photo.ManualWeight != nil {
		w := *photo.ManualWeight
		c.ManualWeight = &w
	}
	return &c
}

func (r *memoryPhotoRepository) Create(ctx context.Context, photo *domain.ProgressPhoto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	photo.CreatedAt = time.Now().UTC()
	r.photos[photo.ID] = clonePhoto(photo)
	return nil
}

func (r *memoryPhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProgressPhoto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	photo, ok := r.photos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clonePhoto(photo), nil
}

func (r *memoryPhotoRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.ProgressPhoto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.ProgressPhoto
	for _, photo := range r.photos {
		if photo.OwnerID == ownerID {
			result = append(result, *clonePhoto(photo))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *memoryPhotoRepository) Update(ctx context.Context, photo *domain.ProgressPhoto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.photos[photo.ID]
	if !ok || stored.OwnerID != photo.OwnerID {
		return repository.ErrNotFound
	}
	photo.CreatedAt = stored.CreatedAt
	r.photos[photo.ID] = clonePhoto(photo)
	return nil
}

func (r *memoryPhotoRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.photos[id]
	if !ok || stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.photos, id)
	return nil
}
