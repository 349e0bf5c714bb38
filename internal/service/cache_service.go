package service

import (
	"context"
	"errors"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// SessionExerciseInput carries the caller-supplied values for a new session
// exercise. Nil numeric fields are unspecified and filled from the
// exercise's last-used snapshot unless auto-population is disabled.
type SessionExerciseInput struct {
	ExerciseID          uuid.UUID
	Sets                *int
	Reps                *int
	Weight              *float64
	Position            float64
	SupersetGroupID     *uuid.UUID
	DisableAutoPopulate bool
}

// CacheService maintains the last-used snapshot on catalog exercises and
// seeds new session exercises from it.
type CacheService interface {
	// SeedSessionExercise builds a session exercise from caller input and
	// the catalog entry's snapshot. Explicit values win over the snapshot;
	// the previous-volume/previous-date display fields come from the
	// snapshot either way.
	SeedSessionExercise(ctx context.Context, ownerID uuid.UUID, input SessionExerciseInput) (domain.SessionExercise, error)

	// RefreshOnCompletion updates the catalog entry's snapshot from a
	// completed session exercise. It is a no-op (returning false) unless
	// the exercise is flagged completed with at least one recorded set,
	// or when the stored snapshot is already newer than the session date.
	RefreshOnCompletion(ctx context.Context, session *domain.WorkoutSession, sessionExerciseID uuid.UUID) (bool, error)
}

type cacheService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewCacheService creates a new last-used snapshot service.
func NewCacheService(exerciseRepo repository.ExerciseRepository) CacheService {
	return &cacheService{exerciseRepo: exerciseRepo}
}

func (s *cacheService) SeedSessionExercise(ctx context.Context, ownerID uuid.UUID, input SessionExerciseInput) (domain.SessionExercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, input.ExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.SessionExercise{}, ErrExerciseNotFound
		}
		return domain.SessionExercise{}, err
	}
	if exercise.OwnerID != ownerID {
		return domain.SessionExercise{}, ErrExerciseNotFound
	}

	return domain.SeedSessionExercise(exercise, domain.SessionExerciseSeed{
		Sets:                input.Sets,
		Reps:                input.Reps,
		Weight:              input.Weight,
		Position:            input.Position,
		SupersetGroupID:     input.SupersetGroupID,
		DisableAutoPopulate: input.DisableAutoPopulate,
	}), nil
}

func (s *cacheService) RefreshOnCompletion(ctx context.Context, session *domain.WorkoutSession, sessionExerciseID uuid.UUID) (bool, error) {
	se := session.Exercise(sessionExerciseID)
	if se == nil {
		return false, ErrSessionExerciseNotFound
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, se.ExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrExerciseNotFound
		}
		return false, err
	}

	if !exercise.RefreshLastUsed(se, session.Date) {
		return false, nil
	}
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return false, err
	}

	log.WithFields(log.Fields{
		"exercise": exercise.ID,
		"session":  session.ID,
		"volume":   *exercise.LastTotalVolume,
	}).Debug("exercise last-used snapshot refreshed")
	return true, nil
}
