package models

import (
	"time"

	"gorm.io/gorm"
)

// PhysicianInfo holds the single physician contact a user can register.
// Creating a new one replaces any previous record for the same user.
type PhysicianInfo struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID         uint           `gorm:"index" json:"user_id" example:"1"`
	User           User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PhysicianName  string         `json:"physician_name" example:"Dr. Amanda Reyes"`
	PhysicianEmail string         `json:"physician_email" example:"a.reyes@clinic.example.com"`
	PhysicianPhone *string        `json:"physician_phone" example:"+15559876543"`
}
