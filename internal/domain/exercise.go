package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseCategory classifies a catalog exercise.
type ExerciseCategory string

const (
	CategoryStrength ExerciseCategory = "strength"
	CategoryCardio   ExerciseCategory = "cardio"
	CategoryMobility ExerciseCategory = "mobility"
	CategoryBalance  ExerciseCategory = "balance"
	CategoryOther    ExerciseCategory = "other"
)

// Exercise is a catalog entry. It is independent of any template, plan or
// session that references it: deleting usage history never deletes the
// catalog entry.
//
// The LastUsed* fields form the "last used" snapshot: a denormalized summary
// of the most recent completed performance, used to seed new session
// exercises. They are mutated only by RefreshLastUsed.
type Exercise struct {
	ID           uuid.UUID        `bson:"_id" json:"id"`
	OwnerID      uuid.UUID        `bson:"ownerId" json:"ownerId"`
	Name         string           `bson:"name" json:"name"`
	Category     ExerciseCategory `bson:"category" json:"category"`
	Instructions string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	// MediaAssetKey is an optional object-storage key for a demo image/video.
	MediaAssetKey string `bson:"mediaAssetKey,omitempty" json:"mediaAssetKey,omitempty"`

	LastUsedWeight  *float64   `bson:"lastUsedWeight,omitempty" json:"lastUsedWeight,omitempty"`
	LastUsedReps    *int       `bson:"lastUsedReps,omitempty" json:"lastUsedReps,omitempty"`
	LastTotalVolume *float64   `bson:"lastTotalVolume,omitempty" json:"lastTotalVolume,omitempty"`
	LastUsedAt      *time.Time `bson:"lastUsedAt,omitempty" json:"lastUsedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewExercise creates a catalog entry with a fresh identity and no snapshot.
func NewExercise(ownerID uuid.UUID, name string, category ExerciseCategory, instructions string) *Exercise {
	return &Exercise{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         name,
		Category:     category,
		Instructions: instructions,
	}
}

// HasLastUsedSnapshot reports whether any completed performance has been
// recorded for this exercise yet.
func (e *Exercise) HasLastUsedSnapshot() bool {
	return e.LastUsedAt != nil || e.LastUsedWeight != nil || e.LastUsedReps != nil
}

// Clone returns an independent copy of the exercise, including copies of the
// snapshot pointer fields.
func (e *Exercise) Clone() *Exercise {
	c := *e
	c.LastUsedWeight = cloneFloat(e.LastUsedWeight)
	c.LastUsedReps = cloneInt(e.LastUsedReps)
	c.LastTotalVolume = cloneFloat(e.LastTotalVolume)
	c.LastUsedAt = cloneTime(e.LastUsedAt)
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneUUID(v *uuid.UUID) *uuid.UUID {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
