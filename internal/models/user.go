package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Username  string         `gorm:"uniqueIndex" json:"username" example:"janedoe"`
	Email     string         `gorm:"uniqueIndex" json:"email" example:"jane@example.com"`
	Password  string         `json:"-"`
	FirstName string         `json:"first_name" example:"Jane"`
	LastName  string         `json:"last_name" example:"Doe"`
}

// DisplayName is what the home screen greets the user with.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
