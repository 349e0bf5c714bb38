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

type memoryPlanRepository struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]*domain.WorkoutPlan
}

// NewPlanRepository creates an empty in-memory plan store.
func NewPlanRepository() repository.PlanRepository {
	return &memoryPlanRepository{plans: make(map[uuid.UUID]*domain.WorkoutPlan)}
}

func clonePlan(plan *domain.WorkoutPlan) *domain.WorkoutPlan {
	c := *plan
	if plan.EndDate != nil {
		end := *plan.EndDate
		c.EndDate = &end
	}
	return &c
}

func (r *memoryPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	r.plans[plan.ID] = clonePlan(plan)
	return nil
}

func (r *memoryPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clonePlan(plan), nil
}

func (r *memoryPlanRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.WorkoutPlan
	for _, plan := range r.plans {
		if plan.OwnerID == ownerID {
			result = append(result, *clonePlan(plan))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.After(result[j].StartDate)
	})
	return result, nil
}

func (r *memoryPlanRepository) Update(ctx context.Context, plan *domain.WorkoutPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.plans[plan.ID]
	if !ok || stored.OwnerID != plan.OwnerID {
		return repository.ErrNotFound
	}
	plan.UpdatedAt = time.Now().UTC()
	plan.CreatedAt = stored.CreatedAt
	r.plans[plan.ID] = clonePlan(plan)
	return nil
}

func (r *memoryPlanRepository) DeactivateAllExcept(ctx context.Context, ownerID, keepID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, plan := range r.plans {
		if plan.OwnerID == ownerID && plan.ID != keepID && plan.IsActive {
			plan.IsActive = false
			plan.UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (r *memoryPlanRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.plans[id]
	if !ok || stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}
