package models

import (
	"time"

	"gorm.io/gorm"
)

type DiaryEntry struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID          uint           `gorm:"index" json:"user_id" example:"1"`
	User            User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content         string         `json:"content" example:"Felt much better after the afternoon walk."`
	Timestamp       time.Time      `json:"timestamp" example:"2023-01-01T19:45:00Z"`
	SentToPhysician bool           `gorm:"default:false" json:"sent_to_physician" example:"false"`
}
