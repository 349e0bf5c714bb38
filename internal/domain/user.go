package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account owning a workout graph. Every root aggregate carries
// the owner's ID and all reads and writes are scoped to it.
type User struct {
	ID           uuid.UUID `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"` // unique
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
