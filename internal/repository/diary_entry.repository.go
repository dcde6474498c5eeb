package repository

import (
	"symptomtracker/internal/models"

	"gorm.io/gorm"
)

type DiaryEntryRepository interface {
	Create(entry *models.DiaryEntry) error
	FindAllByUserID(userID uint) ([]models.DiaryEntry, error)
	FindRecentByUserID(userID uint, limit int) ([]models.DiaryEntry, error)
	FindByIDAndUserID(id, userID uint) (*models.DiaryEntry, error)
	Patch(id, userID uint, data map[string]interface{}) error
	DeleteByIDAndUserID(id, userID uint) error
	MarkSentToPhysician(id, userID uint) error
}

type diaryEntryRepository struct {
	db *gorm.DB
}

func NewDiaryEntryRepository(db *gorm.DB) DiaryEntryRepository {
	return &diaryEntryRepository{db}
}

func (r *diaryEntryRepository) Create(entry *models.DiaryEntry) error {
	return r.db.Create(entry).Error
}

func (r *diaryEntryRepository) FindAllByUserID(userID uint) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func (r *diaryEntryRepository) FindRecentByUserID(userID uint, limit int) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *diaryEntryRepository) FindByIDAndUserID(id, userID uint) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *diaryEntryRepository) Patch(id, userID uint, data map[string]interface{}) error {
	var entry models.DiaryEntry
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return err
	}
	return r.db.Model(&entry).Updates(data).Error
}

func (r *diaryEntryRepository) DeleteByIDAndUserID(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.DiaryEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *diaryEntryRepository) MarkSentToPhysician(id, userID uint) error {
	var entry models.DiaryEntry
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return err
	}
	return r.db.Model(&entry).Update("sent_to_physician", true).Error
}
