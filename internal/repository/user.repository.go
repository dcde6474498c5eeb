package repository

import (
	"errors"
	"time"

	"symptomtracker/internal/models"

	"gorm.io/gorm"
)

// ErrUsernameTaken is returned when a username change or registration
// collides with another account.
var ErrUsernameTaken = errors.New("username already taken")

// ErrEmailTaken is returned when a registration collides with an existing
// email address.
var ErrEmailTaken = errors.New("email already taken")

type UserRepository interface {
	CreateUser(user *models.User, dateOfBirth *time.Time) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	PatchUser(id uint, data map[string]interface{}) error
	UpdatePassword(id uint, passwordHash string) error
	DeleteUser(id uint) error
	IsUsernameTaken(username string, excludeID uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// CreateUser persists a new user together with its companion profile and
// settings records. Everything happens in one transaction: a user must never
// exist without both companions.
func (r *userRepository) CreateUser(user *models.User, dateOfBirth *time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile := models.UserProfile{
			UserID:                 user.ID,
			DateOfBirth:            dateOfBirth,
			NotificationPreference: models.NotifyPrefEmail,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		settings := models.UserSettings{
			UserID:              user.ID,
			Language:            "en",
			NotificationEnabled: true,
			ReminderFrequency:   models.ReminderDaily,
			HealthAppType:       models.HealthAppNone,
		}
		return tx.Create(&settings).Error
	})
}

func (r *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PatchUser applies a partial update to the user row and re-saves the
// companion records in the same transaction, so their updated_at tracks the
// owning account.
func (r *userRepository) PatchUser(id uint, data map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Updates(data).Error; err != nil {
			return err
		}
		now := time.Now()
		if err := tx.Model(&models.UserProfile{}).Where("user_id = ?", id).
			Update("updated_at", now).Error; err != nil {
			return err
		}
		return tx.Model(&models.UserSettings{}).Where("user_id = ?", id).
			Update("updated_at", now).Error
	})
}

func (r *userRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password", passwordHash).Error
}

// DeleteUser hard-deletes the account; the ON DELETE CASCADE constraints take
// the profile, settings, entries, physician info and notifications with it.
func (r *userRepository) DeleteUser(id uint) error {
	result := r.db.Unscoped().Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) IsUsernameTaken(username string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}
