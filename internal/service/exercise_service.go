package service

import (
	"context"
	"errors"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ExerciseService manages the exercise catalog. Catalog entries are
// independent of the workout graph; only completed sessions touch their
// last-used snapshot, and nothing ever cascade-deletes them.
type ExerciseService interface {
	CreateExercise(ctx context.Context, ownerID uuid.UUID, name string, category domain.ExerciseCategory, instructions string) (*domain.Exercise, error)
	GetExercise(ctx context.Context, ownerID, exerciseID uuid.UUID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, ownerID uuid.UUID) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, ownerID, exerciseID uuid.UUID, name string, category domain.ExerciseCategory, instructions string) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, ownerID, exerciseID uuid.UUID) error

	// SuggestedStartingValues is the cache read surface: the last-used
	// snapshot of the exercise, for seeding new session exercises.
	SuggestedStartingValues(ctx context.Context, ownerID, exerciseID uuid.UUID) (domain.StartingValues, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new exercise catalog service.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) CreateExercise(ctx context.Context, ownerID uuid.UUID, name string, category domain.ExerciseCategory, instructions string) (*domain.Exercise, error) {
	if name == "" {
		return nil, domain.NewCustomValidationError("exercise name is required")
	}
	if category == "" {
		category = domain.CategoryOther
	}

	exercise := domain.NewExercise(ownerID, name, category, instructions)
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) GetExercise(ctx context.Context, ownerID, exerciseID uuid.UUID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if exercise.OwnerID != ownerID {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

func (s *exerciseService) ListExercises(ctx context.Context, ownerID uuid.UUID) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetByOwnerID(ctx, ownerID)
}

// UpdateExercise changes the descriptive fields only. The last-used
// snapshot is owned by the session completion flow and is deliberately not
// writable here.
func (s *exerciseService) UpdateExercise(ctx context.Context, ownerID, exerciseID uuid.UUID, name string, category domain.ExerciseCategory, instructions string) (*domain.Exercise, error) {
	if name == "" {
		return nil, domain.NewCustomValidationError("exercise name is required")
	}

	exercise, err := s.GetExercise(ctx, ownerID, exerciseID)
	if err != nil {
		return nil, err
	}

	exercise.Name = name
	if category != "" {
		exercise.Category = category
	}
	exercise.Instructions = instructions

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) DeleteExercise(ctx context.Context, ownerID, exerciseID uuid.UUID) error {
	err := s.exerciseRepo.Delete(ctx, exerciseID, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExerciseNotFound
	}
	return err
}

func (s *exerciseService) SuggestedStartingValues(ctx context.Context, ownerID, exerciseID uuid.UUID) (domain.StartingValues, error) {
	exercise, err := s.GetExercise(ctx, ownerID, exerciseID)
	if err != nil {
		return domain.StartingValues{}, err
	}
	return exercise.SuggestedStartingValues(), nil
}
