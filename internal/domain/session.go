package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// WorkoutSession is one concrete, dated performance of a workout. Its
// session exercises (and their completed sets) are embedded: the session
// owns them exclusively and deleting the session removes the whole subtree
// in one operation. The plan link is a plain reference and never cascades.
type WorkoutSession struct {
	ID        uuid.UUID         `bson:"_id" json:"id"`
	OwnerID   uuid.UUID         `bson:"ownerId" json:"ownerId"`
	Date      time.Time         `bson:"date" json:"date"`
	Title     string            `bson:"title" json:"title"`
	PlanID    *uuid.UUID        `bson:"planId,omitempty" json:"planId,omitempty"`
	Exercises []SessionExercise `bson:"exercises" json:"exercises"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// SessionExercise is an exercise instance within a session. Planned values
// may be seeded from the catalog exercise's last-used snapshot (see
// SeedSessionExercise); the Previous* fields carry the snapshot forward for
// display regardless of how the planned values were chosen.
type SessionExercise struct {
	ID              uuid.UUID      `bson:"id" json:"id"`
	ExerciseID      uuid.UUID      `bson:"exerciseId" json:"exerciseId"`
	PlannedSets     int            `bson:"plannedSets" json:"plannedSets"`
	PlannedReps     int            `bson:"plannedReps" json:"plannedReps"`
	PlannedWeight   *float64       `bson:"plannedWeight,omitempty" json:"plannedWeight,omitempty"`
	Position        float64        `bson:"position" json:"position"`
	SupersetGroupID *uuid.UUID     `bson:"supersetGroupId,omitempty" json:"supersetGroupId,omitempty"`
	IsCompleted     bool           `bson:"isCompleted" json:"isCompleted"`
	Sets            []CompletedSet `bson:"sets" json:"sets"`

	PreviousTotalVolume *float64   `bson:"previousTotalVolume,omitempty" json:"previousTotalVolume,omitempty"`
	PreviousSessionDate *time.Time `bson:"previousSessionDate,omitempty" json:"previousSessionDate,omitempty"`
}

// CompletedSet is one executed set. Weight 0 is allowed for bodyweight work.
type CompletedSet struct {
	ID          uuid.UUID `bson:"id" json:"id"`
	Reps        int       `bson:"reps" json:"reps"`
	Weight      float64   `bson:"weight" json:"weight"`
	Position    float64   `bson:"position" json:"position"`
	IsCompleted bool      `bson:"isCompleted" json:"isCompleted"`
}

// NewWorkoutSession creates an empty session for the given date.
func NewWorkoutSession(ownerID uuid.UUID, title string, date time.Time, planID *uuid.UUID) *WorkoutSession {
	return &WorkoutSession{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Date:      date,
		Title:     title,
		PlanID:    cloneUUID(planID),
		Exercises: []SessionExercise{},
	}
}

// AddExercise inserts a session exercise keeping the session ordered by
// position, and returns a pointer to the stored copy.
func (w *WorkoutSession) AddExercise(se SessionExercise) *SessionExercise {
	if se.ID == uuid.Nil {
		se.ID = uuid.New()
	}
	if se.Sets == nil {
		se.Sets = []CompletedSet{}
	}
	w.Exercises = append(w.Exercises, se)
	sort.SliceStable(w.Exercises, func(i, j int) bool {
		return w.Exercises[i].Position < w.Exercises[j].Position
	})
	for i := range w.Exercises {
		if w.Exercises[i].ID == se.ID {
			return &w.Exercises[i]
		}
	}
	return nil
}

// Exercise returns the stored session exercise with the given ID, or nil.
func (w *WorkoutSession) Exercise(id uuid.UUID) *SessionExercise {
	for i := range w.Exercises {
		if w.Exercises[i].ID == id {
			return &w.Exercises[i]
		}
	}
	return nil
}

// RemoveExercise deletes a session exercise together with all its sets.
func (w *WorkoutSession) RemoveExercise(id uuid.UUID) bool {
	for i := range w.Exercises {
		if w.Exercises[i].ID == id {
			w.Exercises = append(w.Exercises[:i], w.Exercises[i+1:]...)
			return true
		}
	}
	return false
}

// AddSet records an executed set, keeping sets ordered by position.
func (se *SessionExercise) AddSet(set CompletedSet) *CompletedSet {
	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}
	se.Sets = append(se.Sets, set)
	sort.SliceStable(se.Sets, func(i, j int) bool {
		return se.Sets[i].Position < se.Sets[j].Position
	})
	for i := range se.Sets {
		if se.Sets[i].ID == set.ID {
			return &se.Sets[i]
		}
	}
	return nil
}

// RemoveSet deletes a recorded set.
func (se *SessionExercise) RemoveSet(id uuid.UUID) bool {
	for i := range se.Sets {
		if se.Sets[i].ID == id {
			se.Sets = append(se.Sets[:i], se.Sets[i+1:]...)
			return true
		}
	}
	return false
}

// LastSet returns the set with the highest position, or nil when no set has
// been recorded. Sets are kept ordered by position, so this is the final
// set of the exercise as performed.
func (se *SessionExercise) LastSet() *CompletedSet {
	if len(se.Sets) == 0 {
		return nil
	}
	return &se.Sets[len(se.Sets)-1]
}

// Clone returns a deep copy of the session.
func (w *WorkoutSession) Clone() *WorkoutSession {
	c := *w
	c.PlanID = cloneUUID(w.PlanID)
	c.Exercises = make([]SessionExercise, len(w.Exercises))
	for i, se := range w.Exercises {
		ce := se
		ce.PlannedWeight = cloneFloat(se.PlannedWeight)
		ce.SupersetGroupID = cloneUUID(se.SupersetGroupID)
		ce.PreviousTotalVolume = cloneFloat(se.PreviousTotalVolume)
		ce.PreviousSessionDate = cloneTime(se.PreviousSessionDate)
		ce.Sets = make([]CompletedSet, len(se.Sets))
		copy(ce.Sets, se.Sets)
		c.Exercises[i] = ce
	}
	return &c
}
