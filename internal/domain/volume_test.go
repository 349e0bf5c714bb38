package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletedSetVolume(t *testing.T) {
	assert.Equal(t, 1550.0, CompletedSet{Reps: 10, Weight: 155}.Volume())
	assert.Equal(t, 12.5, CompletedSet{Reps: 5, Weight: 2.5}.Volume(), "decimal weights must not be truncated")
	assert.Equal(t, 0.0, CompletedSet{Reps: 12, Weight: 0}.Volume(), "bodyweight sets contribute zero")
}

func TestSessionExerciseTotalVolume(t *testing.T) {
	se := SessionExercise{Sets: []CompletedSet{
		{Reps: 10, Weight: 155, Position: 1},
		{Reps: 8, Weight: 155, Position: 2},
		{Reps: 6, Weight: 155, Position: 3},
	}}
	assert.Equal(t, 3720.0, se.TotalVolume())
}

func TestSessionExerciseTotalVolumeEmpty(t *testing.T) {
	se := SessionExercise{}
	assert.Equal(t, 0.0, se.TotalVolume())
}

func TestWorkoutSessionTotalVolume(t *testing.T) {
	session := WorkoutSession{Exercises: []SessionExercise{
		{Sets: []CompletedSet{{Reps: 5, Weight: 100}, {Reps: 5, Weight: 100}}},
		{Sets: []CompletedSet{{Reps: 10, Weight: 20.5}}},
		{Sets: []CompletedSet{}},
	}}
	assert.Equal(t, 1205.0, session.TotalVolume())
}
