package service

import (
	"context"
	"testing"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
	"liftlog/workout-app/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	owner        uuid.UUID
	exerciseRepo repository.ExerciseRepository
	templateRepo repository.TemplateRepository
	planRepo     repository.PlanRepository
	sessions     SessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	exerciseRepo := memory.NewExerciseRepository()
	templateRepo := memory.NewTemplateRepository()
	planRepo := memory.NewPlanRepository()
	sessionRepo := memory.NewSessionRepository()
	cache := NewCacheService(exerciseRepo)
	return &sessionFixture{
		owner:        uuid.New(),
		exerciseRepo: exerciseRepo,
		templateRepo: templateRepo,
		planRepo:     planRepo,
		sessions:     NewSessionService(sessionRepo, planRepo, templateRepo, cache),
	}
}

func (f *sessionFixture) createExercise(t *testing.T, name string) *domain.Exercise {
	t.Helper()
	exercise := domain.NewExercise(f.owner, name, domain.CategoryStrength, "")
	require.NoError(t, f.exerciseRepo.Create(context.Background(), exercise))
	return exercise
}

func (f *sessionFixture) createSession(t *testing.T, title string) *domain.WorkoutSession {
	t.Helper()
	session, err := f.sessions.CreateSession(context.Background(), f.owner, title, time.Now().UTC(), nil)
	require.NoError(t, err)
	return session
}

func TestDeleteSessionCascadesButSparesCatalog(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exercise := f.createExercise(t, "Bench Press")
	session := f.createSession(t, "Chest Day")

	se, err := f.sessions.AddSessionExercise(ctx, f.owner, session.ID, SessionExerciseInput{
		ExerciseID: exercise.ID,
	})
	require.NoError(t, err)
	_, err = f.sessions.AddCompletedSet(ctx, f.owner, session.ID, se.ID, CompletedSetInput{Reps: 8, Weight: 80})
	require.NoError(t, err)

	require.NoError(t, f.sessions.DeleteSession(ctx, f.owner, session.ID))
	_, err = f.sessions.GetSession(ctx, f.owner, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	stored, err := f.exerciseRepo.GetByID(ctx, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", stored.Name, "catalog entries are referenced, never owned")
}

func (f *sessionFixture) exerciseWithSnapshot(t *testing.T, name string, weight float64, reps int, volume float64) *domain.Exercise {
	t.Helper()
	exercise := f.createExercise(t, name)
	usedAt := time.Now().UTC().Add(-48 * time.Hour)
	exercise.LastUsedWeight = &weight
	exercise.LastUsedReps = &reps
	exercise.LastTotalVolume = &volume
	exercise.LastUsedAt = &usedAt
	require.NoError(t, f.exerciseRepo.Update(context.Background(), exercise))
	return exercise
}

func TestAddSessionExerciseAutoPopulatesByDefault(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exercise := f.exerciseWithSnapshot(t, "Overhead Press", 135.0, 8, 3240.0)

	// No planned values and no flags: the snapshot fills in reps and weight.
	session := f.createSession(t, "Shoulders")
	se, err := f.sessions.AddSessionExercise(ctx, f.owner, session.ID, SessionExerciseInput{
		ExerciseID: exercise.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, se.PlannedReps)
	require.NotNil(t, se.PlannedWeight)
	assert.Equal(t, 135.0, *se.PlannedWeight)
	require.NotNil(t, se.PreviousTotalVolume)
	assert.Equal(t, 3240.0, *se.PreviousTotalVolume)
	assert.Equal(t, 1.0, se.Position, "first exercise defaults to position 1")
}

func TestAddSessionExerciseWithAutoPopulateDisabled(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exercise := f.exerciseWithSnapshot(t, "Incline Press", 135.0, 8, 3240.0)

	session := f.createSession(t, "Chest")
	se, err := f.sessions.AddSessionExercise(ctx, f.owner, session.ID, SessionExerciseInput{
		ExerciseID:          exercise.ID,
		DisableAutoPopulate: true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPlannedSets, se.PlannedSets)
	assert.Equal(t, domain.DefaultPlannedReps, se.PlannedReps)
	assert.Nil(t, se.PlannedWeight, "opting out leaves the snapshot untouched")
	require.NotNil(t, se.PreviousTotalVolume, "display fields are carried either way")
}

func TestCompleteSessionExerciseRefreshesSnapshot(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exercise := f.createExercise(t, "Squat")
	session := f.createSession(t, "Leg Day")
	se, err := f.sessions.AddSessionExercise(ctx, f.owner, session.ID, SessionExerciseInput{ExerciseID: exercise.ID})
	require.NoError(t, err)

	for _, set := range []CompletedSetInput{
		{Reps: 10, Weight: 155},
		{Reps: 8, Weight: 155},
		{Reps: 6, Weight: 155},
	} {
		_, err = f.sessions.AddCompletedSet(ctx, f.owner, session.ID, se.ID, set)
		require.NoError(t, err)
	}

	completed, err := f.sessions.CompleteSessionExercise(ctx, f.owner, session.ID, se.ID)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)

	stored, err := f.exerciseRepo.GetByID(ctx, exercise.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastUsedWeight)
	assert.Equal(t, 155.0, *stored.LastUsedWeight)
	require.NotNil(t, stored.LastUsedReps)
	assert.Equal(t, 6, *stored.LastUsedReps, "snapshot reps come from the final set")
	require.NotNil(t, stored.LastTotalVolume)
	assert.Equal(t, 3720.0, *stored.LastTotalVolume)
}

func TestCompleteSessionExerciseWithoutSetsLeavesSnapshotAlone(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exercise := f.createExercise(t, "Row")
	session := f.createSession(t, "Back Day")
	se, err := f.sessions.AddSessionExercise(ctx, f.owner, session.ID, SessionExerciseInput{ExerciseID: exercise.ID})
	require.NoError(t, err)

	_, err = f.sessions.CompleteSessionExercise(ctx, f.owner, session.ID, se.ID)
	require.NoError(t, err)

	stored, err := f.exerciseRepo.GetByID(ctx, exercise.ID)
	require.NoError(t, err)
	assert.False(t, stored.HasLastUsedSnapshot())
}

func TestSessionVolume(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exercise := f.createExercise(t, "Curl")
	session := f.createSession(t, "Arms")
	se, err := f.sessions.AddSessionExercise(ctx, f.owner, session.ID, SessionExerciseInput{ExerciseID: exercise.ID})
	require.NoError(t, err)
	_, err = f.sessions.AddCompletedSet(ctx, f.owner, session.ID, se.ID, CompletedSetInput{Reps: 5, Weight: 2.5})
	require.NoError(t, err)
	_, err = f.sessions.AddCompletedSet(ctx, f.owner, session.ID, se.ID, CompletedSetInput{Reps: 10, Weight: 20})
	require.NoError(t, err)

	volume, err := f.sessions.SessionVolume(ctx, f.owner, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 212.5, volume)
}

func TestAddCompletedSetValidation(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exercise := f.createExercise(t, "Dip")
	session := f.createSession(t, "Push")
	se, err := f.sessions.AddSessionExercise(ctx, f.owner, session.ID, SessionExerciseInput{ExerciseID: exercise.ID})
	require.NoError(t, err)

	// Each violation carries its field-specific kind, not the generic one.
	var vErr *domain.ValidationError
	_, err = f.sessions.AddCompletedSet(ctx, f.owner, session.ID, se.ID, CompletedSetInput{Reps: 0, Weight: 50})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.ErrKindZeroReps, vErr.Kind)
	_, err = f.sessions.AddCompletedSet(ctx, f.owner, session.ID, se.ID, CompletedSetInput{Reps: 5, Weight: -1})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.ErrKindNegativeWeight, vErr.Kind)
	_, err = f.sessions.AddCompletedSet(ctx, f.owner, session.ID, se.ID, CompletedSetInput{Reps: 5, Weight: 50, Position: -2})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.ErrKindInvalidPosition, vErr.Kind)

	// Bodyweight work at weight zero is fine.
	_, err = f.sessions.AddCompletedSet(ctx, f.owner, session.ID, se.ID, CompletedSetInput{Reps: 12, Weight: 0})
	assert.NoError(t, err)
}

func TestUpdateSessionExerciseRollsBackOnInvalidValues(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exercise := f.createExercise(t, "Lunge")
	session := f.createSession(t, "Legs")
	se, err := f.sessions.AddSessionExercise(ctx, f.owner, session.ID, SessionExerciseInput{ExerciseID: exercise.ID})
	require.NoError(t, err)

	_, err = f.sessions.UpdateSessionExercise(ctx, f.owner, session.ID, se.ID, -2, 10, nil)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	stored, err := f.sessions.GetSession(ctx, f.owner, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPlannedSets, stored.Exercises[0].PlannedSets)
}

func TestStartFromPlanSeedsTemplateDay(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	squat := f.createExercise(t, "Squat")
	press := f.createExercise(t, "Leg Press")

	weight := 120.0
	template := domain.NewWorkoutTemplate(f.owner, "Lower", "")
	day := template.AddDay(domain.DayTemplate{Weekday: domain.Monday})
	day.AddExercise(domain.ExerciseTemplate{ExerciseID: squat.ID, SetCount: 5, Reps: 5, Weight: &weight, Position: 1})
	day.AddExercise(domain.ExerciseTemplate{ExerciseID: press.ID, SetCount: 3, Reps: 12, Position: 2})
	require.NoError(t, f.templateRepo.Create(ctx, template))

	plan := domain.NewWorkoutPlan(f.owner, template.ID, "Strength Block", 8, time.Now().UTC())
	require.NoError(t, f.planRepo.Create(ctx, plan))

	session, err := f.sessions.StartFromPlan(ctx, f.owner, plan.ID, domain.Monday, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, "Strength Block - Monday", session.Title)
	require.NotNil(t, session.PlanID)
	assert.Equal(t, plan.ID, *session.PlanID)
	require.Len(t, session.Exercises, 2)
	assert.Equal(t, 5, session.Exercises[0].PlannedSets, "template values win over defaults")
	assert.Equal(t, 5, session.Exercises[0].PlannedReps)
	require.NotNil(t, session.Exercises[0].PlannedWeight)
	assert.Equal(t, 120.0, *session.Exercises[0].PlannedWeight)
	assert.Equal(t, 3, session.Exercises[1].PlannedSets)

	_, err = f.sessions.StartFromPlan(ctx, f.owner, plan.ID, domain.Friday, time.Now().UTC())
	assert.ErrorIs(t, err, ErrDayNotInTemplate)
}
