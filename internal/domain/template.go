package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// WorkoutTemplate is a named, reusable workout definition. Its days (and
// their planned exercises) live inside the template document: the template
// owns them exclusively, so deleting the template deletes everything below
// it in one operation.
type WorkoutTemplate struct {
	ID        uuid.UUID     `bson:"_id" json:"id"`
	OwnerID   uuid.UUID     `bson:"ownerId" json:"ownerId"`
	Name      string        `bson:"name" json:"name"`
	Summary   string        `bson:"summary,omitempty" json:"summary,omitempty"`
	Days      []DayTemplate `bson:"days" json:"days"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// DayTemplate is one weekday's plan within a template.
type DayTemplate struct {
	ID        uuid.UUID          `bson:"id" json:"id"`
	Weekday   Weekday            `bson:"weekday" json:"weekday"`
	IsRestDay bool               `bson:"isRestDay" json:"isRestDay"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Exercises []ExerciseTemplate `bson:"exercises" json:"exercises"`
}

// ExerciseTemplate is a planned exercise within a day. It references a
// catalog Exercise by ID; the catalog entry is never owned by the template.
type ExerciseTemplate struct {
	ID         uuid.UUID `bson:"id" json:"id"`
	ExerciseID uuid.UUID `bson:"exerciseId" json:"exerciseId"`
	SetCount   int       `bson:"setCount" json:"setCount"`
	Reps       int       `bson:"reps" json:"reps"`
	// Weight is absent for bodyweight movements.
	Weight   *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Position float64  `bson:"position" json:"position"`
	// SupersetGroupID is shared by all exercises of the same superset
	// within a day.
	SupersetGroupID *uuid.UUID `bson:"supersetGroupId,omitempty" json:"supersetGroupId,omitempty"`
}

// NewWorkoutTemplate creates an empty template. The name is expected to be
// validated (format and uniqueness) before the template is persisted.
func NewWorkoutTemplate(ownerID uuid.UUID, name, summary string) *WorkoutTemplate {
	return &WorkoutTemplate{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    NormalizeTemplateName(name),
		Summary: summary,
		Days:    []DayTemplate{},
	}
}

// AddDay appends a day and returns a pointer to the stored copy. Going
// through the parent is the only way a day enters a template, which keeps
// the owned edge consistent by construction.
func (t *WorkoutTemplate) AddDay(day DayTemplate) *DayTemplate {
	if day.ID == uuid.Nil {
		day.ID = uuid.New()
	}
	if day.Exercises == nil {
		day.Exercises = []ExerciseTemplate{}
	}
	t.Days = append(t.Days, day)
	return &t.Days[len(t.Days)-1]
}

// Day returns the stored day with the given ID, or nil.
func (t *WorkoutTemplate) Day(id uuid.UUID) *DayTemplate {
	for i := range t.Days {
		if t.Days[i].ID == id {
			return &t.Days[i]
		}
	}
	return nil
}

// RemoveDay deletes a day together with all its planned exercises.
func (t *WorkoutTemplate) RemoveDay(id uuid.UUID) bool {
	for i := range t.Days {
		if t.Days[i].ID == id {
			t.Days = append(t.Days[:i], t.Days[i+1:]...)
			return true
		}
	}
	return false
}

// AddExercise inserts a planned exercise keeping the day ordered by
// position. Parameters are expected to be validated beforehand.
func (d *DayTemplate) AddExercise(et ExerciseTemplate) *ExerciseTemplate {
	if et.ID == uuid.Nil {
		et.ID = uuid.New()
	}
	d.Exercises = append(d.Exercises, et)
	sort.SliceStable(d.Exercises, func(i, j int) bool {
		return d.Exercises[i].Position < d.Exercises[j].Position
	})
	for i := range d.Exercises {
		if d.Exercises[i].ID == et.ID {
			return &d.Exercises[i]
		}
	}
	return nil
}

// Exercise returns the stored planned exercise with the given ID, or nil.
func (d *DayTemplate) Exercise(id uuid.UUID) *ExerciseTemplate {
	for i := range d.Exercises {
		if d.Exercises[i].ID == id {
			return &d.Exercises[i]
		}
	}
	return nil
}

// RemoveExercise deletes a planned exercise from the day.
func (d *DayTemplate) RemoveExercise(id uuid.UUID) bool {
	for i := range d.Exercises {
		if d.Exercises[i].ID == id {
			d.Exercises = append(d.Exercises[:i], d.Exercises[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the template. Services mutate a clone, run
// validation against the prospective state and persist only on success, so
// a failed update never leaves a partially-applied template behind.
func (t *WorkoutTemplate) Clone() *WorkoutTemplate {
	c := *t
	c.Days = make([]DayTemplate, len(t.Days))
	for i, day := range t.Days {
		cd := day
		cd.Exercises = make([]ExerciseTemplate, len(day.Exercises))
		for j, et := range day.Exercises {
			ce := et
			ce.Weight = cloneFloat(et.Weight)
			ce.SupersetGroupID = cloneUUID(et.SupersetGroupID)
			cd.Exercises[j] = ce
		}
		c.Days[i] = cd
	}
	return &c
}
