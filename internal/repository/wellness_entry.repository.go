package repository

import (
	"time"

	"symptomtracker/internal/models"

	"gorm.io/gorm"
)

type WellnessEntryRepository interface {
	Create(entry *models.WellnessEntry) error
	FindAllByUserID(userID uint) ([]models.WellnessEntry, error)
	FindRecentByUserID(userID uint, limit int) ([]models.WellnessEntry, error)
	FindByIDAndUserID(id, userID uint) (*models.WellnessEntry, error)
	FindByUserIDSince(userID uint, since time.Time) ([]models.WellnessEntry, error)
	Patch(id, userID uint, data map[string]interface{}) error
	DeleteByIDAndUserID(id, userID uint) error
	MarkSentToPhysician(id, userID uint) error
}

type wellnessEntryRepository struct {
	db *gorm.DB
}

func NewWellnessEntryRepository(db *gorm.DB) WellnessEntryRepository {
	return &wellnessEntryRepository{db}
}

func (r *wellnessEntryRepository) Create(entry *models.WellnessEntry) error {
	return r.db.Create(entry).Error
}

func (r *wellnessEntryRepository) FindAllByUserID(userID uint) ([]models.WellnessEntry, error) {
	var entries []models.WellnessEntry
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func (r *wellnessEntryRepository) FindRecentByUserID(userID uint, limit int) ([]models.WellnessEntry, error) {
	var entries []models.WellnessEntry
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *wellnessEntryRepository) FindByIDAndUserID(id, userID uint) (*models.WellnessEntry, error) {
	var entry models.WellnessEntry
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wellnessEntryRepository) FindByUserIDSince(userID uint, since time.Time) ([]models.WellnessEntry, error) {
	var entries []models.WellnessEntry
	err := r.db.Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("timestamp ASC").
		Find(&entries).Error
	return entries, err
}

func (r *wellnessEntryRepository) Patch(id, userID uint, data map[string]interface{}) error {
	var entry models.WellnessEntry
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return err
	}
	return r.db.Model(&entry).Updates(data).Error
}

func (r *wellnessEntryRepository) DeleteByIDAndUserID(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.WellnessEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *wellnessEntryRepository) MarkSentToPhysician(id, userID uint) error {
	var entry models.WellnessEntry
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return err
	}
	return r.db.Model(&entry).Update("sent_to_physician", true).Error
}
