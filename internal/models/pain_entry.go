package models

import (
	"time"

	"gorm.io/gorm"
)

// Pain levels are ordinal buckets, 1 (mild) through 4 (severe).
const (
	MinPainLevel = 1
	MaxPainLevel = 4
)

type PainEntry struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID          uint           `gorm:"index" json:"user_id" example:"1"`
	User            User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PainLevel       int            `json:"pain_level" example:"2"`
	Notes           *string        `json:"notes" example:"lower back, worse in the morning"`
	Timestamp       time.Time      `json:"timestamp" example:"2023-01-01T08:30:00Z"`
	SentToPhysician bool           `gorm:"default:false" json:"sent_to_physician" example:"false"`
}

func ValidPainLevel(level int) bool {
	return level >= MinPainLevel && level <= MaxPainLevel
}
