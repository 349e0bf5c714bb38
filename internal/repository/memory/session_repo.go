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

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.WorkoutSession
}

// NewSessionRepository creates an empty in-memory session store.
func NewSessionRepository() repository.SessionRepository {
	return &memorySessionRepository{sessions: make(map[uuid.UUID]*domain.WorkoutSession)}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *memorySessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return session.Clone(), nil
}

func (r *memorySessionRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.WorkoutSession
	for _, session := range r.sessions {
		if session.OwnerID == ownerID {
			result = append(result, *session.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *memorySessionRepository) Update(ctx context.Context, session *domain.WorkoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[session.ID]
	if !ok || stored.OwnerID != session.OwnerID {
		return repository.ErrNotFound
	}
	session.UpdatedAt = time.Now().UTC()
	session.CreatedAt = stored.CreatedAt
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[id]
	if !ok || stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	// Session exercises and completed sets live inside the session value:
	// one delete, zero orphans.
	delete(r.sessions, id)
	return nil
}
