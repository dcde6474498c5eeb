package services

import (
	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"
)

type SettingsService interface {
	Get(userID uint) (*models.UserSettings, error)
	Update(userID uint, patch map[string]interface{}) (*models.UserSettings, error)
}

type settingsService struct {
	settingsRepo repository.UserSettingsRepository
}

func NewSettingsService(settingsRepo repository.UserSettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(userID uint) (*models.UserSettings, error) {
	return s.settingsRepo.FindByUserID(userID)
}

// Update validates the recognized keys of the patch, ignores unknown ones,
// and applies the settings fields together with an optional embedded
// username change in a single transaction. A username collision surfaces as
// repository.ErrUsernameTaken with nothing persisted.
func (s *settingsService) Update(userID uint, patch map[string]interface{}) (*models.UserSettings, error) {
	verr := newValidationError()
	data := make(map[string]interface{})
	var username *string

	for key, raw := range patch {
		switch key {
		case "dark_mode", "notification_enabled", "data_sharing", "health_app_sync", "community_enabled":
			value, ok := raw.(bool)
			if !ok {
				verr.Fields[key] = "Must be a boolean."
				continue
			}
			data[key] = value
		case "language":
			value, ok := raw.(string)
			if !ok || value == "" {
				verr.Fields[key] = "Must be a non-empty string."
				continue
			}
			data[key] = value
		case "reminder_frequency":
			value, ok := raw.(string)
			if !ok || !models.ValidReminderFrequency(value) {
				verr.Fields[key] = "Must be one of: daily, weekly, monthly, none."
				continue
			}
			data[key] = value
		case "health_app_type":
			value, ok := raw.(string)
			if !ok || !models.ValidHealthAppType(value) {
				verr.Fields[key] = "Must be one of: apple, google, samsung, none."
				continue
			}
			data[key] = value
		case "community_username":
			if raw == nil {
				data[key] = nil
				continue
			}
			value, ok := raw.(string)
			if !ok {
				verr.Fields[key] = "Must be a string or null."
				continue
			}
			data[key] = value
		case "username":
			value, ok := raw.(string)
			if !ok || value == "" {
				verr.Fields[key] = "Must be a non-empty string."
				continue
			}
			username = &value
		}
		// Unrecognized keys are ignored.
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	if err := s.settingsRepo.PatchWithUsername(userID, data, username); err != nil {
		return nil, err
	}
	return s.settingsRepo.FindByUserID(userID)
}
