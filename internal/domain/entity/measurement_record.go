package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeasurementRecord is one timestamped submission for a profile plus the
// derived BMI and composed plan text. Records are append-only: created once
// per submission, immutable thereafter, never deleted.
//
// The autoincrement ID doubles as the insertion-order tiebreaker so history
// stays totally ordered even when two submissions share a timestamp.
type MeasurementRecord struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID          uuid.UUID `gorm:"type:uuid;not null;index" json:"profile_id"`
	WeightLbs          float64   `gorm:"not null" json:"weight_lbs"`
	HeightFt           int       `gorm:"not null" json:"height_ft"`
	HeightIn           int       `gorm:"not null" json:"height_in"`
	Goals              string    `gorm:"type:text" json:"goals,omitempty"`
	BMI                float64   `gorm:"not null" json:"bmi"`
	Plan               string    `gorm:"type:text;not null" json:"plan"`
	ActivityLevel      string    `gorm:"type:varchar(50)" json:"activity_level,omitempty"`
	DietaryPreferences string    `gorm:"type:varchar(50)" json:"dietary_preferences,omitempty"`
	Allergies          string    `gorm:"type:varchar(50)" json:"allergies,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Profile *Profile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}

func (MeasurementRecord) TableName() string {
	return "measurement_records"
}

// HistoryPoint is one (timestamp, bmi) pair from a profile's ordered history,
// consumed by the progress chart renderer.
type HistoryPoint struct {
	Timestamp time.Time `json:"timestamp"`
	BMI       float64   `json:"bmi"`
}
