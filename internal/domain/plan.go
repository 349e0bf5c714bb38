package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutPlan is a scheduled, dated instantiation of a template. The
// template link is a plain reference: deleting the plan never touches the
// template, and vice versa.
//
// At most one of an owner's plans is active; the plan service enforces this
// on the write path by deactivating siblings when a plan is activated.
type WorkoutPlan struct {
	ID            uuid.UUID  `bson:"_id" json:"id"`
	OwnerID       uuid.UUID  `bson:"ownerId" json:"ownerId"`
	Name          string     `bson:"name" json:"name"`
	TemplateID    uuid.UUID  `bson:"templateId" json:"templateId"`
	DurationWeeks int        `bson:"durationWeeks" json:"durationWeeks"`
	StartDate     time.Time  `bson:"startDate" json:"startDate"`
	EndDate       *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	IsActive      bool       `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// NewWorkoutPlan schedules a template starting at the given date. The end
// date is derived from the duration when positive.
func NewWorkoutPlan(ownerID, templateID uuid.UUID, name string, durationWeeks int, startDate time.Time) *WorkoutPlan {
	plan := &WorkoutPlan{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		TemplateID:    templateID,
		DurationWeeks: durationWeeks,
		StartDate:     startDate,
	}
	if durationWeeks > 0 {
		end := startDate.AddDate(0, 0, durationWeeks*7)
		plan.EndDate = &end
	}
	return plan
}
