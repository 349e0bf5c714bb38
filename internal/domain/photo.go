package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhotoAngle is the perspective a progress photo was taken from.
type PhotoAngle string

const (
	AngleFront PhotoAngle = "front"
	AngleSide  PhotoAngle = "side"
	AngleBack  PhotoAngle = "back"
)

// ProgressPhoto records a body progress picture. The actual image bytes live
// in object storage under AssetKey; the photo has its own lifecycle and is
// not part of the workout graph.
type ProgressPhoto struct {
	ID      uuid.UUID  `bson:"_id" json:"id"`
	OwnerID uuid.UUID  `bson:"ownerId" json:"ownerId"`
	Date    time.Time  `bson:"date" json:"date"`
	Angle   PhotoAngle `bson:"angle" json:"angle"`
	// AssetKey is the object-storage key of the image.
	AssetKey string `bson:"assetKey" json:"assetKey"`
	// WeightSampleID optionally links the photo to an external body-weight
	// sample recorded around the same time.
	WeightSampleID *string  `bson:"weightSampleId,omitempty" json:"weightSampleId,omitempty"`
	Notes          string   `bson:"notes,omitempty" json:"notes,omitempty"`
	ManualWeight   *float64 `bson:"manualWeight,omitempty" json:"manualWeight,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// NewProgressPhoto creates a photo record for an already-chosen asset key.
func NewProgressPhoto(ownerID uuid.UUID, date time.Time, angle PhotoAngle, assetKey string) *ProgressPhoto {
	return &ProgressPhoto{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Date:     date,
		Angle:    angle,
		AssetKey: assetKey,
	}
}
