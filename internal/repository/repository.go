package repository

import (
	"context"

	"liftlog/workout-app/internal/domain"

	"github.com/google/uuid"
)

// Error kinds shared by all store implementations.
var (
	ErrNotFound     = StoreError("not found")
	ErrDuplicate    = StoreError("already exists")
	ErrUpdateFailed = StoreError("update failed")
	ErrDeleteFailed = StoreError("delete failed")
)

// StoreError distinguishes store-layer errors from domain validation errors.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// ExerciseRepository persists catalog exercises. Catalog entries are
// independent of their usage history: nothing in the workout graph ever
// cascades into this collection.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Exercise, error)
	// GetByName resolves a catalog entry by exact name for an owner, used
	// by bulk import to reuse existing entries.
	GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// TemplateRepository persists workout templates. Days and their planned
// exercises are part of the template aggregate, so a delete removes the
// whole owned subtree atomically.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.WorkoutTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutTemplate, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutTemplate, error)
	// ExistsByName reports whether another template of the owner already
	// uses the name under case-insensitive comparison. The template with
	// excludeID is ignored so renames don't collide with themselves.
	ExistsByName(ctx context.Context, ownerID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, template *domain.WorkoutTemplate) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// PlanRepository persists workout plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutPlan, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
	// DeactivateAllExcept clears the active flag on every plan of the
	// owner other than keepID. Used by activation to uphold the at most
	// one active plan invariant on the write path.
	DeactivateAllExcept(ctx context.Context, ownerID, keepID uuid.UUID) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// SessionRepository persists workout sessions. Session exercises and their
// completed sets are part of the session aggregate, so a delete removes the
// whole owned subtree atomically.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutSession, error)
	Update(ctx context.Context, session *domain.WorkoutSession) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// PhotoRepository persists progress photo records (not the image bytes).
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProgressPhoto, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.ProgressPhoto, error)
	Update(ctx context.Context, photo *domain.ProgressPhoto) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
