package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification type tokens.
const (
	NotificationMedication  = "medication"
	NotificationAppointment = "appointment"
	NotificationDataEntry   = "data_entry"
)

// Notification is a stored reminder schedule. Delivery is out of scope; the
// record only captures what the client should schedule locally.
type Notification struct {
	ID               uint                        `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time                   `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt        time.Time                   `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt        gorm.DeletedAt              `gorm:"index" json:"-" swaggerignore:"true"`
	UserID           uint                        `gorm:"index" json:"user_id" example:"1"`
	User             User                        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	NotificationType string                      `json:"notification_type" example:"medication"`
	Title            string                      `json:"title" example:"Morning medication"`
	Message          string                      `json:"message" example:"Take 400mg ibuprofen with food"`
	Time             string                      `json:"time" example:"08:00"`
	IsActive         bool                        `json:"is_active" example:"true"`
	Days             datatypes.JSONSlice[string] `json:"days" swaggertype:"array,string" example:"monday,wednesday,friday"`
}

func ValidNotificationType(value string) bool {
	switch value {
	case NotificationMedication, NotificationAppointment, NotificationDataEntry:
		return true
	}
	return false
}

var weekdayTokens = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

func ValidWeekdays(days []string) bool {
	for _, d := range days {
		if !weekdayTokens[d] {
			return false
		}
	}
	return true
}
