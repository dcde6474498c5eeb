package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification preference tokens for UserProfile.NotificationPreference.
const (
	NotifyPrefEmail = "email"
	NotifyPrefSMS   = "sms"
	NotifyPrefBoth  = "both"
	NotifyPrefNone  = "none"
)

type UserProfile struct {
	ID                           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt                    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt                    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt                    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID                       uint           `gorm:"uniqueIndex" json:"user_id" example:"1"`
	User                         User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	DateOfBirth                  *time.Time     `json:"date_of_birth" example:"1990-05-20T00:00:00Z"`
	PhoneNumber                  *string        `json:"phone_number" example:"+15551234567"`
	NotificationPreference       string         `gorm:"default:email" json:"notification_preference" example:"email"`
	Medications                  *string        `json:"medications" example:"ibuprofen 400mg"`
	ChronicIllnesses             *string        `json:"chronic_illnesses" example:"fibromyalgia"`
	EmergencyContactName         *string        `json:"emergency_contact_name" example:"John Doe"`
	EmergencyContactPhone        *string        `json:"emergency_contact_phone" example:"+15557654321"`
	EmergencyContactRelationship *string        `json:"emergency_contact_relationship" example:"spouse"`
}

func ValidNotificationPreference(value string) bool {
	switch value {
	case NotifyPrefEmail, NotifyPrefSMS, NotifyPrefBoth, NotifyPrefNone:
		return true
	}
	return false
}
