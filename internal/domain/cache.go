package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a session exercise is created for a catalog entry
// with no last-used snapshot and no explicit values.
const (
	DefaultPlannedReps = 10
	DefaultPlannedSets = 3
)

// StartingValues is the read surface the auto-population collaborator uses
// to seed UI forms: the last-used snapshot of an exercise, every field
// absent when never performed.
type StartingValues struct {
	Weight      *float64 `json:"weight,omitempty"`
	Reps        *int     `json:"reps,omitempty"`
	TotalVolume *float64 `json:"totalVolume,omitempty"`
}

// SuggestedStartingValues returns the last-used snapshot as starting values
// for a new session exercise.
func (e *Exercise) SuggestedStartingValues() StartingValues {
	return StartingValues{
		Weight:      cloneFloat(e.LastUsedWeight),
		Reps:        cloneInt(e.LastUsedReps),
		TotalVolume: cloneFloat(e.LastTotalVolume),
	}
}

// SessionExerciseSeed carries the caller-supplied values for a new session
// exercise. Explicit values always win over the snapshot, even with
// auto-population enabled.
type SessionExerciseSeed struct {
	Sets            *int
	Reps            *int
	Weight          *float64
	Position        float64
	SupersetGroupID *uuid.UUID
	// DisableAutoPopulate suppresses seeding unspecified planned values
	// from the exercise's last-used snapshot. Auto-population is on by
	// default; only callers that want a blank slate turn it off.
	DisableAutoPopulate bool
}

// SeedSessionExercise builds a session exercise for the given catalog entry.
//
// Unless auto-population is disabled, unspecified planned reps/weight come
// from the last-used snapshot (default reps when there is none, absent
// weight). The previous-volume and previous-date display fields are carried
// from the snapshot in every case, including when explicit values were
// supplied.
func SeedSessionExercise(exercise *Exercise, seed SessionExerciseSeed) SessionExercise {
	se := SessionExercise{
		ID:              uuid.New(),
		ExerciseID:      exercise.ID,
		PlannedSets:     DefaultPlannedSets,
		PlannedReps:     DefaultPlannedReps,
		Position:        seed.Position,
		SupersetGroupID: cloneUUID(seed.SupersetGroupID),
		Sets:            []CompletedSet{},
	}

	if !seed.DisableAutoPopulate {
		if exercise.LastUsedReps != nil {
			se.PlannedReps = *exercise.LastUsedReps
		}
		se.PlannedWeight = cloneFloat(exercise.LastUsedWeight)
	}
	se.PreviousTotalVolume = cloneFloat(exercise.LastTotalVolume)
	se.PreviousSessionDate = cloneTime(exercise.LastUsedAt)

	if seed.Sets != nil {
		se.PlannedSets = *seed.Sets
	}
	if seed.Reps != nil {
		se.PlannedReps = *seed.Reps
	}
	if seed.Weight != nil {
		se.PlannedWeight = cloneFloat(seed.Weight)
	}

	return se
}

// RefreshLastUsed updates the exercise's last-used snapshot from a completed
// session exercise and reports whether anything was written.
//
// The refresh is a no-op unless the session exercise is flagged completed
// and has at least one recorded set: no partial or speculative snapshot
// writes. It is also a no-op when the candidate session date is older than
// the stored one, so invocations commute and replays of the same session
// are idempotent.
//
// When applicable, weight and reps come from the last set in position
// order, the total volume is the sum over all recorded sets, and the date
// is the session's date (falling back to the current time when unset).
func (e *Exercise) RefreshLastUsed(se *SessionExercise, sessionDate time.Time) bool {
	if !se.IsCompleted || len(se.Sets) == 0 {
		return false
	}
	if sessionDate.IsZero() {
		sessionDate = time.Now().UTC()
	}
	if e.LastUsedAt != nil && sessionDate.Before(*e.LastUsedAt) {
		return false
	}

	last := se.LastSet()
	weight := last.Weight
	reps := last.Reps
	volume := se.TotalVolume()

	e.LastUsedWeight = &weight
	e.LastUsedReps = &reps
	e.LastTotalVolume = &volume
	e.LastUsedAt = &sessionDate
	return true
}
