package repository

import (
	"symptomtracker/internal/models"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	FindByUserID(userID uint) (*models.UserProfile, error)
	Patch(userID uint, data map[string]interface{}) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db}
}

func (r *userProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Patch(userID uint, data map[string]interface{}) error {
	var profile models.UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return err
	}
	return r.db.Model(&profile).Updates(data).Error
}
