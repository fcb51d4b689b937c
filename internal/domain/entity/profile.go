package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a named user identity under which measurement
// history accumulates. Profiles are never mutated or deleted.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Measurements []MeasurementRecord `gorm:"foreignKey:ProfileID" json:"measurements,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}
