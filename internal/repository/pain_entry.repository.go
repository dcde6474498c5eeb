package repository

import (
	"time"

	"symptomtracker/internal/models"

	"gorm.io/gorm"
)

type PainEntryRepository interface {
	Create(entry *models.PainEntry) error
	FindAllByUserID(userID uint) ([]models.PainEntry, error)
	FindRecentByUserID(userID uint, limit int) ([]models.PainEntry, error)
	FindByIDAndUserID(id, userID uint) (*models.PainEntry, error)
	FindByUserIDSince(userID uint, since time.Time) ([]models.PainEntry, error)
	Patch(id, userID uint, data map[string]interface{}) error
	DeleteByIDAndUserID(id, userID uint) error
	MarkSentToPhysician(id, userID uint) error
}

type painEntryRepository struct {
	db *gorm.DB
}

func NewPainEntryRepository(db *gorm.DB) PainEntryRepository {
	return &painEntryRepository{db}
}

func (r *painEntryRepository) Create(entry *models.PainEntry) error {
	return r.db.Create(entry).Error
}

func (r *painEntryRepository) FindAllByUserID(userID uint) ([]models.PainEntry, error) {
	var entries []models.PainEntry
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func (r *painEntryRepository) FindRecentByUserID(userID uint, limit int) ([]models.PainEntry, error) {
	var entries []models.PainEntry
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// FindByIDAndUserID scopes the lookup by owner: a record belonging to another
// user is reported as not found, never as someone else's data.
func (r *painEntryRepository) FindByIDAndUserID(id, userID uint) (*models.PainEntry, error) {
	var entry models.PainEntry
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *painEntryRepository) FindByUserIDSince(userID uint, since time.Time) ([]models.PainEntry, error) {
	var entries []models.PainEntry
	err := r.db.Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("timestamp ASC").
		Find(&entries).Error
	return entries, err
}

func (r *painEntryRepository) Patch(id, userID uint, data map[string]interface{}) error {
	var entry models.PainEntry
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return err
	}
	return r.db.Model(&entry).Updates(data).Error
}

func (r *painEntryRepository) DeleteByIDAndUserID(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.PainEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkSentToPhysician is one-way and idempotent: the flag only moves to true.
func (r *painEntryRepository) MarkSentToPhysician(id, userID uint) error {
	var entry models.PainEntry
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return err
	}
	return r.db.Model(&entry).Update("sent_to_physician", true).Error
}
