package repository

import (
	"symptomtracker/internal/models"

	"gorm.io/gorm"
)

type UserSettingsRepository interface {
	FindByUserID(userID uint) (*models.UserSettings, error)
	Patch(userID uint, data map[string]interface{}) error
	PatchWithUsername(userID uint, data map[string]interface{}, username *string) error
}

type userSettingsRepository struct {
	db *gorm.DB
}

func NewUserSettingsRepository(db *gorm.DB) UserSettingsRepository {
	return &userSettingsRepository{db}
}

func (r *userSettingsRepository) FindByUserID(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *userSettingsRepository) Patch(userID uint, data map[string]interface{}) error {
	return r.PatchWithUsername(userID, data, nil)
}

// PatchWithUsername applies a settings patch and an optional username change
// atomically. The uniqueness check runs before anything is written, so a
// username collision leaves both the settings row and the user row untouched.
func (r *userSettingsRepository) PatchWithUsername(userID uint, data map[string]interface{}, username *string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var settings models.UserSettings
		if err := tx.Where("user_id = ?", userID).First(&settings).Error; err != nil {
			return err
		}

		if username != nil {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("username = ? AND id <> ?", *username, userID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrUsernameTaken
			}
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("username", *username).Error; err != nil {
				return err
			}
		}

		if len(data) == 0 {
			return nil
		}
		return tx.Model(&settings).Updates(data).Error
	})
}
