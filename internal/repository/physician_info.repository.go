package repository

import (
	"symptomtracker/internal/models"

	"gorm.io/gorm"
)

type PhysicianInfoRepository interface {
	FindByUserID(userID uint) (*models.PhysicianInfo, error)
	Replace(info *models.PhysicianInfo) error
	Patch(userID uint, data map[string]interface{}) error
	DeleteByUserID(userID uint) error
}

type physicianInfoRepository struct {
	db *gorm.DB
}

func NewPhysicianInfoRepository(db *gorm.DB) PhysicianInfoRepository {
	return &physicianInfoRepository{db}
}

func (r *physicianInfoRepository) FindByUserID(userID uint) (*models.PhysicianInfo, error) {
	var info models.PhysicianInfo
	err := r.db.Where("user_id = ?", userID).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Replace enforces the at-most-one invariant: any existing record for the
// owner is removed before the new one is inserted, inside one transaction so
// a failure cannot leave the owner with no record at all.
func (r *physicianInfoRepository) Replace(info *models.PhysicianInfo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", info.UserID).
			Delete(&models.PhysicianInfo{}).Error; err != nil {
			return err
		}
		return tx.Create(info).Error
	})
}

func (r *physicianInfoRepository) Patch(userID uint, data map[string]interface{}) error {
	var info models.PhysicianInfo
	if err := r.db.Where("user_id = ?", userID).First(&info).Error; err != nil {
		return err
	}
	return r.db.Model(&info).Updates(data).Error
}

func (r *physicianInfoRepository) DeleteByUserID(userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.PhysicianInfo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
