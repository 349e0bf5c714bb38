package domain

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupersetOrdinalsAreStableAndDense(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	ordinals := supersetOrdinals([]uuid.UUID{a, b, a, c, b})
	require.Len(t, ordinals, 3)

	// Ordinals follow the UUID string order, not insertion order.
	ids := []uuid.UUID{a, b, c}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	assert.Equal(t, 1, ordinals[ids[0]])
	assert.Equal(t, 2, ordinals[ids[1]])
	assert.Equal(t, 3, ordinals[ids[2]])
}

func TestSupersetOrdinalsDeterministicAcrossCalls(t *testing.T) {
	groups := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	first := supersetOrdinals(groups)

	shuffled := []uuid.UUID{groups[2], groups[0], groups[3], groups[1]}
	second := supersetOrdinals(shuffled)

	assert.Equal(t, first, second, "display ordinals must not depend on iteration order")
}

func TestDayTemplateSupersetNumber(t *testing.T) {
	groupA := uuid.New()
	groupB := uuid.New()
	day := DayTemplate{Exercises: []ExerciseTemplate{
		{ID: uuid.New(), SupersetGroupID: &groupA},
		{ID: uuid.New(), SupersetGroupID: &groupB},
		{ID: uuid.New(), SupersetGroupID: &groupA},
		{ID: uuid.New()},
	}}

	numbers := map[int]bool{
		day.SupersetNumber(groupA): true,
		day.SupersetNumber(groupB): true,
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, numbers)
	assert.Equal(t, 0, day.SupersetNumber(uuid.New()), "unknown group has no ordinal")
}

func TestWorkoutSessionSupersetNumber(t *testing.T) {
	group := uuid.New()
	session := WorkoutSession{Exercises: []SessionExercise{
		{ID: uuid.New(), SupersetGroupID: &group},
		{ID: uuid.New()},
	}}

	assert.Equal(t, 1, session.SupersetNumber(group))
	assert.Equal(t, 0, session.SupersetNumber(uuid.New()))
}
