package service

import (
	"context"
	"errors"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound         = errors.New("workout session not found")
	ErrSessionExerciseNotFound = errors.New("session exercise not found")
	ErrCompletedSetNotFound    = errors.New("completed set not found")
	ErrDayNotInTemplate        = errors.New("template has no day for that weekday")
)

// CompletedSetInput carries the caller-supplied values for one executed set.
type CompletedSetInput struct {
	Reps        int
	Weight      float64
	Position    float64
	IsCompleted bool
}

// SessionService manages workout sessions and their owned session exercises
// and completed sets. Deleting a session cascades through the whole owned
// subtree atomically; the referenced catalog exercises and plan are never
// touched.
type SessionService interface {
	CreateSession(ctx context.Context, ownerID uuid.UUID, title string, date time.Time, planID *uuid.UUID) (*domain.WorkoutSession, error)
	// StartFromPlan instantiates the template day matching the given
	// weekday as a new session, seeding each exercise through the
	// auto-population service.
	StartFromPlan(ctx context.Context, ownerID, planID uuid.UUID, weekday domain.Weekday, date time.Time) (*domain.WorkoutSession, error)
	GetSession(ctx context.Context, ownerID, sessionID uuid.UUID) (*domain.WorkoutSession, error)
	ListSessions(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutSession, error)
	DeleteSession(ctx context.Context, ownerID, sessionID uuid.UUID) error

	AddSessionExercise(ctx context.Context, ownerID, sessionID uuid.UUID, input SessionExerciseInput) (*domain.SessionExercise, error)
	UpdateSessionExercise(ctx context.Context, ownerID, sessionID, sessionExerciseID uuid.UUID, plannedSets, plannedReps int, plannedWeight *float64) (*domain.SessionExercise, error)
	RemoveSessionExercise(ctx context.Context, ownerID, sessionID, sessionExerciseID uuid.UUID) error

	AddCompletedSet(ctx context.Context, ownerID, sessionID, sessionExerciseID uuid.UUID, input CompletedSetInput) (*domain.CompletedSet, error)
	RemoveCompletedSet(ctx context.Context, ownerID, sessionID, sessionExerciseID, setID uuid.UUID) error

	// CompleteSessionExercise flags the exercise done and refreshes the
	// catalog entry's last-used snapshot through the cache service.
	CompleteSessionExercise(ctx context.Context, ownerID, sessionID, sessionExerciseID uuid.UUID) (*domain.SessionExercise, error)

	// SessionVolume computes the session total bottom-up at read time.
	SessionVolume(ctx context.Context, ownerID, sessionID uuid.UUID) (float64, error)
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	planRepo     repository.PlanRepository
	templateRepo repository.TemplateRepository
	cache        CacheService
}

// NewSessionService creates a new session service.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	planRepo repository.PlanRepository,
	templateRepo repository.TemplateRepository,
	cache CacheService,
) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		planRepo:     planRepo,
		templateRepo: templateRepo,
		cache:        cache,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, ownerID uuid.UUID, title string, date time.Time, planID *uuid.UUID) (*domain.WorkoutSession, error) {
	if title == "" {
		return nil, domain.NewCustomValidationError("session title is required")
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	if planID != nil {
		plan, err := s.planRepo.GetByID(ctx, *planID)
		if err != nil || plan.OwnerID != ownerID {
			return nil, ErrPlanNotFound
		}
	}

	session := domain.NewWorkoutSession(ownerID, title, date, planID)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) StartFromPlan(ctx context.Context, ownerID, planID uuid.UUID, weekday domain.Weekday, date time.Time) (*domain.WorkoutSession, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil || plan.OwnerID != ownerID {
		return nil, ErrPlanNotFound
	}
	template, err := s.templateRepo.GetByID(ctx, plan.TemplateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	var day *domain.DayTemplate
	for i := range template.Days {
		if template.Days[i].Weekday == weekday {
			day = &template.Days[i]
			break
		}
	}
	if day == nil {
		return nil, ErrDayNotInTemplate
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}
	title := plan.Name + " - " + weekday.String()
	session := domain.NewWorkoutSession(ownerID, title, date, &planID)

	// The template's planned values are explicit, so they win over the
	// snapshot; auto-population still fills in whatever they leave open
	// and carries the previous-performance display fields.
	for _, et := range day.Exercises {
		sets, reps := et.SetCount, et.Reps
		se, err := s.cache.SeedSessionExercise(ctx, ownerID, SessionExerciseInput{
			ExerciseID:      et.ExerciseID,
			Sets:            &sets,
			Reps:            &reps,
			Weight:          et.Weight,
			Position:        et.Position,
			SupersetGroupID: et.SupersetGroupID,
		})
		if err != nil {
			return nil, err
		}
		session.AddExercise(se)
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"session": session.ID, "plan": planID, "weekday": weekday.String()}).Info("session started from plan")
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, ownerID, sessionID uuid.UUID) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutSession, error) {
	return s.sessionRepo.GetByOwnerID(ctx, ownerID)
}

// DeleteSession removes the session and every owned session exercise and
// completed set with it. The catalog entries they reference stay untouched.
func (s *sessionService) DeleteSession(ctx context.Context, ownerID, sessionID uuid.UUID) error {
	err := s.sessionRepo.Delete(ctx, sessionID, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}

func (s *sessionService) AddSessionExercise(ctx context.Context, ownerID, sessionID uuid.UUID, input SessionExerciseInput) (*domain.SessionExercise, error) {
	session, err := s.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if input.Position == 0 {
		input.Position = float64(len(session.Exercises) + 1)
	}
	if !domain.IsValidPosition(input.Position) {
		return nil, domain.NewInvalidPositionError()
	}

	seeded, err := s.cache.SeedSessionExercise(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}

	updated := session.Clone()
	se := updated.AddExercise(seeded)
	if err := s.sessionRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return se, nil
}

// UpdateSessionExercise validates the prospective planned values before
// persisting; on failure the stored exercise keeps its previous values.
func (s *sessionService) UpdateSessionExercise(ctx context.Context, ownerID, sessionID, sessionExerciseID uuid.UUID, plannedSets, plannedReps int, plannedWeight *float64) (*domain.SessionExercise, error) {
	session, err := s.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	updated := session.Clone()
	se := updated.Exercise(sessionExerciseID)
	if se == nil {
		return nil, ErrSessionExerciseNotFound
	}

	se.PlannedSets = plannedSets
	se.PlannedReps = plannedReps
	se.PlannedWeight = plannedWeight

	check := domain.ValidateExerciseParameters(se.PlannedSets, se.PlannedReps, se.PlannedWeight, se.Position)
	if !check.IsValid {
		return nil, check.Errors[0]
	}

	if err := s.sessionRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return se, nil
}

func (s *sessionService) RemoveSessionExercise(ctx context.Context, ownerID, sessionID, sessionExerciseID uuid.UUID) error {
	session, err := s.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return err
	}

	updated := session.Clone()
	if !updated.RemoveExercise(sessionExerciseID) {
		return ErrSessionExerciseNotFound
	}
	return s.sessionRepo.Update(ctx, updated)
}

func (s *sessionService) AddCompletedSet(ctx context.Context, ownerID, sessionID, sessionExerciseID uuid.UUID, input CompletedSetInput) (*domain.CompletedSet, error) {
	session, err := s.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	updated := session.Clone()
	se := updated.Exercise(sessionExerciseID)
	if se == nil {
		return nil, ErrSessionExerciseNotFound
	}
	if input.Position == 0 {
		input.Position = float64(len(se.Sets) + 1)
	}

	if vErr := domain.ValidateCompletedSet(input.Reps, input.Weight, input.Position); vErr != nil {
		return nil, vErr
	}

	set := se.AddSet(domain.CompletedSet{
		Reps:        input.Reps,
		Weight:      input.Weight,
		Position:    input.Position,
		IsCompleted: input.IsCompleted,
	})
	if err := s.sessionRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *sessionService) RemoveCompletedSet(ctx context.Context, ownerID, sessionID, sessionExerciseID, setID uuid.UUID) error {
	session, err := s.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return err
	}

	updated := session.Clone()
	se := updated.Exercise(sessionExerciseID)
	if se == nil {
		return ErrSessionExerciseNotFound
	}
	if !se.RemoveSet(setID) {
		return ErrCompletedSetNotFound
	}
	return s.sessionRepo.Update(ctx, updated)
}

func (s *sessionService) CompleteSessionExercise(ctx context.Context, ownerID, sessionID, sessionExerciseID uuid.UUID) (*domain.SessionExercise, error) {
	session, err := s.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	updated := session.Clone()
	se := updated.Exercise(sessionExerciseID)
	if se == nil {
		return nil, ErrSessionExerciseNotFound
	}
	se.IsCompleted = true
	if err := s.sessionRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	// Snapshot refresh happens after the completion is durable; it is a
	// gated no-op when the exercise has no recorded sets.
	if _, err := s.cache.RefreshOnCompletion(ctx, updated, sessionExerciseID); err != nil {
		return nil, err
	}
	return se, nil
}

func (s *sessionService) SessionVolume(ctx context.Context, ownerID, sessionID uuid.UUID) (float64, error) {
	session, err := s.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return 0, err
	}
	return session.TotalVolume(), nil
}
