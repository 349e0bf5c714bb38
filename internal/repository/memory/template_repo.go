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

type memoryTemplateRepository struct {
	mu        sync.RWMutex
	templates map[uuid.UUID]*domain.WorkoutTemplate
}

// NewTemplateRepository creates an empty in-memory template store.
func NewTemplateRepository() repository.TemplateRepository {
	return &memoryTemplateRepository{templates: make(map[uuid.UUID]*domain.WorkoutTemplate)}
}

func (r *memoryTemplateRepository) Create(ctx context.Context, template *domain.WorkoutTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now
	r.templates[template.ID] = template.Clone()
	return nil
}

func (r *memoryTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.templates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return template.Clone(), nil
}

func (r *memoryTemplateRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.WorkoutTemplate
	for _, template := range r.templates {
		if template.OwnerID == ownerID {
			result = append(result, *template.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memoryTemplateRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, template := range r.templates {
		if template.ID == excludeID || template.OwnerID != ownerID {
			continue
		}
		if strings.EqualFold(template.Name, strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryTemplateRepository) Update(ctx context.Context, template *domain.WorkoutTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.templates[template.ID]
	if !ok || stored.OwnerID != template.OwnerID {
		return repository.ErrNotFound
	}
	template.UpdatedAt = time.Now().UTC()
	template.CreatedAt = stored.CreatedAt
	r.templates[template.ID] = template.Clone()
	return nil
}

func (r *memoryTemplateRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.templates[id]
	if !ok || stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	// The days and planned exercises live inside the template value, so
	// removing the root removes the whole owned subtree at once.
	delete(r.templates, id)
	return nil
}
