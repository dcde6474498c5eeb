package models

import (
	"time"

	"gorm.io/gorm"
)

// Wellness ratings run 1 (very poor) through 5 (excellent).
const (
	MinWellnessLevel = 1
	MaxWellnessLevel = 5
)

type WellnessEntry struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID          uint           `gorm:"index" json:"user_id" example:"1"`
	User            User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	WellnessLevel   int            `json:"wellness_level" example:"4"`
	Notes           *string        `json:"notes" example:"slept well, low stress"`
	Timestamp       time.Time      `json:"timestamp" example:"2023-01-01T21:00:00Z"`
	SentToPhysician bool           `gorm:"default:false" json:"sent_to_physician" example:"false"`
}

func ValidWellnessLevel(level int) bool {
	return level >= MinWellnessLevel && level <= MaxWellnessLevel
}
