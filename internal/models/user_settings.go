package models

import (
	"time"

	"gorm.io/gorm"
)

// Reminder frequency tokens for UserSettings.ReminderFrequency.
const (
	ReminderDaily   = "daily"
	ReminderWeekly  = "weekly"
	ReminderMonthly = "monthly"
	ReminderNone    = "none"
)

// Health app tokens for UserSettings.HealthAppType.
const (
	HealthAppApple   = "apple"
	HealthAppGoogle  = "google"
	HealthAppSamsung = "samsung"
	HealthAppNone    = "none"
)

type UserSettings struct {
	ID                  uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt           time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt           time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID              uint           `gorm:"uniqueIndex" json:"user_id" example:"1"`
	User                User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	DarkMode            bool           `gorm:"default:false" json:"dark_mode" example:"false"`
	Language            string         `gorm:"default:en" json:"language" example:"en"`
	NotificationEnabled bool           `gorm:"default:true" json:"notification_enabled" example:"true"`
	ReminderFrequency   string         `gorm:"default:daily" json:"reminder_frequency" example:"daily"`
	DataSharing         bool           `gorm:"default:false" json:"data_sharing" example:"false"`
	HealthAppSync       bool           `gorm:"default:false" json:"health_app_sync" example:"false"`
	HealthAppType       string         `gorm:"default:none" json:"health_app_type" example:"none"`
	CommunityEnabled    bool           `gorm:"default:false" json:"community_enabled" example:"false"`
	CommunityUsername   *string        `json:"community_username" example:"painwarrior42"`
}

func ValidReminderFrequency(value string) bool {
	switch value {
	case ReminderDaily, ReminderWeekly, ReminderMonthly, ReminderNone:
		return true
	}
	return false
}

func ValidHealthAppType(value string) bool {
	switch value {
	case HealthAppApple, HealthAppGoogle, HealthAppSamsung, HealthAppNone:
		return true
	}
	return false
}
