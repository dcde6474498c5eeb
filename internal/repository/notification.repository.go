package repository

import (
	"symptomtracker/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindAllByUserID(userID uint) ([]models.Notification, error)
	FindByIDAndUserID(id, userID uint) (*models.Notification, error)
	Patch(id, userID uint, data map[string]interface{}) error
	DeleteByIDAndUserID(id, userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) FindAllByUserID(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) FindByIDAndUserID(id, userID uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) Patch(id, userID uint, data map[string]interface{}) error {
	var notification models.Notification
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		return err
	}
	return r.db.Model(&notification).Updates(data).Error
}

func (r *notificationRepository) DeleteByIDAndUserID(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
