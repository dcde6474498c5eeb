package services

import (
	"strings"
	"time"

	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"
)

// ProfileView is the combined account representation the profile endpoint
// returns: user fields plus both companion records.
type ProfileView struct {
	ID        uint                 `json:"id"`
	Username  string               `json:"username"`
	Email     string               `json:"email"`
	FirstName string               `json:"first_name"`
	LastName  string               `json:"last_name"`
	Profile   *models.UserProfile  `json:"profile"`
	Settings  *models.UserSettings `json:"settings"`
}

type ProfileService interface {
	Get(userID uint) (*ProfileView, error)
	Update(userID uint, patch map[string]interface{}) (*ProfileView, error)
}

type profileService struct {
	userRepo     repository.UserRepository
	profileRepo  repository.UserProfileRepository
	settingsRepo repository.UserSettingsRepository
}

func NewProfileService(userRepo repository.UserRepository, profileRepo repository.UserProfileRepository, settingsRepo repository.UserSettingsRepository) ProfileService {
	return &profileService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *profileService) Get(userID uint) (*ProfileView, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return &ProfileView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Profile:   profile,
		Settings:  settings,
	}, nil
}

// Update accepts user fields (first_name, last_name, email) at the top level
// and profile fields under a nested "profile" key, mirroring the combined
// account document the client edits. Unknown keys are ignored.
func (s *profileService) Update(userID uint, patch map[string]interface{}) (*ProfileView, error) {
	verr := newValidationError()
	userData := make(map[string]interface{})

	for _, key := range []string{"first_name", "last_name", "email"} {
		raw, present := patch[key]
		if !present {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			verr.Fields[key] = "Must be a string."
			continue
		}
		if key == "email" && !strings.Contains(value, "@") {
			verr.Fields[key] = "Enter a valid email address."
			continue
		}
		userData[key] = value
	}

	profileData := make(map[string]interface{})
	if rawProfile, present := patch["profile"]; present {
		nested, ok := rawProfile.(map[string]interface{})
		if !ok {
			verr.Fields["profile"] = "Must be an object."
		} else {
			profileData = validateProfilePatch(nested, verr)
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	if len(userData) > 0 {
		if err := s.userRepo.PatchUser(userID, userData); err != nil {
			return nil, err
		}
	}
	if len(profileData) > 0 {
		if err := s.profileRepo.Patch(userID, profileData); err != nil {
			return nil, err
		}
	}

	return s.Get(userID)
}

func validateProfilePatch(patch map[string]interface{}, verr *ValidationError) map[string]interface{} {
	data := make(map[string]interface{})

	for key, raw := range patch {
		switch key {
		case "date_of_birth":
			if raw == nil {
				data[key] = nil
				continue
			}
			value, ok := raw.(string)
			if !ok {
				verr.Fields[key] = "Date must be in YYYY-MM-DD format."
				continue
			}
			parsed, err := time.Parse("2006-01-02", value)
			if err != nil {
				verr.Fields[key] = "Date must be in YYYY-MM-DD format."
				continue
			}
			data[key] = parsed
		case "notification_preference":
			value, ok := raw.(string)
			if !ok || !models.ValidNotificationPreference(value) {
				verr.Fields[key] = "Must be one of: email, sms, both, none."
				continue
			}
			data[key] = value
		case "phone_number", "medications", "chronic_illnesses",
			"emergency_contact_name", "emergency_contact_phone", "emergency_contact_relationship":
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
		}
	}

	return data
}
