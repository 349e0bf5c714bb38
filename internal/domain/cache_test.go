package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExercise() *Exercise {
	return NewExercise(uuid.New(), "Bench Press", CategoryStrength, "")
}

func exerciseWithSnapshot(weight float64, reps int, volume float64, usedAt time.Time) *Exercise {
	e := newTestExercise()
	e.LastUsedWeight = &weight
	e.LastUsedReps = &reps
	e.LastTotalVolume = &volume
	e.LastUsedAt = &usedAt
	return e
}

func TestSeedSessionExerciseDefaultsWithoutSnapshot(t *testing.T) {
	e := newTestExercise()
	se := SeedSessionExercise(e, SessionExerciseSeed{Position: 1})

	assert.Equal(t, DefaultPlannedSets, se.PlannedSets)
	assert.Equal(t, DefaultPlannedReps, se.PlannedReps)
	assert.Nil(t, se.PlannedWeight, "no snapshot means no suggested weight")
	assert.Nil(t, se.PreviousTotalVolume)
	assert.Nil(t, se.PreviousSessionDate)
	assert.False(t, se.IsCompleted)
	assert.Empty(t, se.Sets)
}

func TestSeedSessionExerciseAutoPopulatesFromSnapshot(t *testing.T) {
	usedAt := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)
	e := exerciseWithSnapshot(155, 6, 3720, usedAt)

	se := SeedSessionExercise(e, SessionExerciseSeed{Position: 1})

	require.NotNil(t, se.PlannedWeight)
	assert.Equal(t, 155.0, *se.PlannedWeight)
	assert.Equal(t, 6, se.PlannedReps)
	require.NotNil(t, se.PreviousTotalVolume)
	assert.Equal(t, 3720.0, *se.PreviousTotalVolume)
	require.NotNil(t, se.PreviousSessionDate)
	assert.Equal(t, usedAt, *se.PreviousSessionDate)
}

func TestSeedSessionExerciseExplicitValuesWinOverSnapshot(t *testing.T) {
	e := exerciseWithSnapshot(155, 6, 3720, time.Now().UTC())

	sets, reps, weight := 5, 8, 100.0
	se := SeedSessionExercise(e, SessionExerciseSeed{
		Sets:     &sets,
		Reps:     &reps,
		Weight:   &weight,
		Position: 1,
	})

	assert.Equal(t, 5, se.PlannedSets)
	assert.Equal(t, 8, se.PlannedReps)
	require.NotNil(t, se.PlannedWeight)
	assert.Equal(t, 100.0, *se.PlannedWeight)
	// The display fields still carry the previous performance.
	require.NotNil(t, se.PreviousTotalVolume)
	assert.Equal(t, 3720.0, *se.PreviousTotalVolume)
}

func TestSeedSessionExerciseWithAutoPopulateDisabled(t *testing.T) {
	e := exerciseWithSnapshot(155, 6, 3720, time.Now().UTC())

	se := SeedSessionExercise(e, SessionExerciseSeed{Position: 1, DisableAutoPopulate: true})

	assert.Nil(t, se.PlannedWeight, "snapshot values must not leak when auto-population is off")
	assert.Equal(t, DefaultPlannedReps, se.PlannedReps)
	require.NotNil(t, se.PreviousTotalVolume, "display fields are carried either way")
}

func completedExercise(exerciseID uuid.UUID) *SessionExercise {
	return &SessionExercise{
		ID:          uuid.New(),
		ExerciseID:  exerciseID,
		IsCompleted: true,
		Sets: []CompletedSet{
			{ID: uuid.New(), Reps: 10, Weight: 155, Position: 1},
			{ID: uuid.New(), Reps: 8, Weight: 155, Position: 2},
			{ID: uuid.New(), Reps: 6, Weight: 155, Position: 3},
		},
	}
}

func TestRefreshLastUsedTakesLastSetAndSumsVolume(t *testing.T) {
	e := newTestExercise()
	se := completedExercise(e.ID)
	date := time.Date(2026, 8, 25, 7, 30, 0, 0, time.UTC)

	require.True(t, e.RefreshLastUsed(se, date))

	require.NotNil(t, e.LastUsedWeight)
	assert.Equal(t, 155.0, *e.LastUsedWeight)
	require.NotNil(t, e.LastUsedReps)
	assert.Equal(t, 6, *e.LastUsedReps, "reps come from the final set, not the heaviest or first")
	require.NotNil(t, e.LastTotalVolume)
	assert.Equal(t, 3720.0, *e.LastTotalVolume)
	require.NotNil(t, e.LastUsedAt)
	assert.Equal(t, date, *e.LastUsedAt)
}

func TestRefreshLastUsedSkipsIncompleteExercise(t *testing.T) {
	e := newTestExercise()
	se := completedExercise(e.ID)
	se.IsCompleted = false

	assert.False(t, e.RefreshLastUsed(se, time.Now().UTC()))
	assert.False(t, e.HasLastUsedSnapshot())
}

func TestRefreshLastUsedSkipsExerciseWithoutSets(t *testing.T) {
	e := newTestExercise()
	se := &SessionExercise{ID: uuid.New(), ExerciseID: e.ID, IsCompleted: true}

	assert.False(t, e.RefreshLastUsed(se, time.Now().UTC()))
	assert.False(t, e.HasLastUsedSnapshot())
}

func TestRefreshLastUsedIsCommutative(t *testing.T) {
	older := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)

	olderSE := &SessionExercise{
		ID: uuid.New(), IsCompleted: true,
		Sets: []CompletedSet{{ID: uuid.New(), Reps: 5, Weight: 100, Position: 1}},
	}
	newerSE := &SessionExercise{
		ID: uuid.New(), IsCompleted: true,
		Sets: []CompletedSet{{ID: uuid.New(), Reps: 5, Weight: 120, Position: 1}},
	}

	// Chronological order.
	forward := newTestExercise()
	require.True(t, forward.RefreshLastUsed(olderSE, older))
	require.True(t, forward.RefreshLastUsed(newerSE, newer))

	// Reverse order: the stale refresh must be skipped.
	backward := newTestExercise()
	require.True(t, backward.RefreshLastUsed(newerSE, newer))
	require.False(t, backward.RefreshLastUsed(olderSE, older))

	assert.Equal(t, *forward.LastUsedWeight, *backward.LastUsedWeight)
	assert.Equal(t, *forward.LastUsedAt, *backward.LastUsedAt)
	assert.Equal(t, 120.0, *backward.LastUsedWeight)
}

func TestRefreshLastUsedIsIdempotent(t *testing.T) {
	e := newTestExercise()
	se := completedExercise(e.ID)
	date := time.Date(2026, 8, 25, 7, 30, 0, 0, time.UTC)

	require.True(t, e.RefreshLastUsed(se, date))
	first := e.Clone()

	// Replaying the same completion writes the same snapshot.
	require.True(t, e.RefreshLastUsed(se, date))
	assert.Equal(t, *first.LastUsedWeight, *e.LastUsedWeight)
	assert.Equal(t, *first.LastUsedReps, *e.LastUsedReps)
	assert.Equal(t, *first.LastTotalVolume, *e.LastTotalVolume)
	assert.Equal(t, *first.LastUsedAt, *e.LastUsedAt)
}

func TestSuggestedStartingValues(t *testing.T) {
	e := newTestExercise()
	assert.Equal(t, StartingValues{}, e.SuggestedStartingValues(), "never-performed exercise suggests nothing")

	usedAt := time.Now().UTC()
	e = exerciseWithSnapshot(80, 12, 2880, usedAt)
	values := e.SuggestedStartingValues()
	require.NotNil(t, values.Weight)
	assert.Equal(t, 80.0, *values.Weight)
	require.NotNil(t, values.Reps)
	assert.Equal(t, 12, *values.Reps)
	require.NotNil(t, values.TotalVolume)
	assert.Equal(t, 2880.0, *values.TotalVolume)
}
