package services_test

import (
	"testing"
	"time"

	"symptomtracker/internal/mocks"
	"symptomtracker/internal/models"
	"symptomtracker/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupProfileService() (services.ProfileService, *mocks.MockUserRepository, *mocks.MockUserProfileRepository, *mocks.MockUserSettingsRepository) {
	userRepo := new(mocks.MockUserRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	settingsRepo := new(mocks.MockUserSettingsRepository)
	service := services.NewProfileService(userRepo, profileRepo, settingsRepo)
	return service, userRepo, profileRepo, settingsRepo
}

func stubProfileGet(userRepo *mocks.MockUserRepository, profileRepo *mocks.MockUserProfileRepository, settingsRepo *mocks.MockUserSettingsRepository) {
	userRepo.On("GetUserByID", uint(1)).Return(&models.User{ID: 1, Username: "sam", Email: "sam@example.com"}, nil)
	profileRepo.On("FindByUserID", uint(1)).Return(&models.UserProfile{ID: 1, UserID: 1}, nil)
	settingsRepo.On("FindByUserID", uint(1)).Return(&models.UserSettings{ID: 1, UserID: 1}, nil)
}

func TestProfileGetComposesAllThreeRecords(t *testing.T) {
	service, userRepo, profileRepo, settingsRepo := setupProfileService()
	stubProfileGet(userRepo, profileRepo, settingsRepo)

	view, err := service.Get(1)

	assert.NoError(t, err)
	assert.Equal(t, "sam", view.Username)
	assert.NotNil(t, view.Profile)
	assert.NotNil(t, view.Settings)
}

func TestProfileUpdateSplitsUserAndProfileFields(t *testing.T) {
	service, userRepo, profileRepo, settingsRepo := setupProfileService()
	stubProfileGet(userRepo, profileRepo, settingsRepo)

	dob, _ := time.Parse("2006-01-02", "1990-04-12")
	userRepo.On("PatchUser", uint(1), map[string]interface{}{"first_name": "Sam"}).Return(nil)
	profileRepo.On("Patch", uint(1), map[string]interface{}{
		"date_of_birth": dob,
		"medications":   "ibuprofen",
	}).Return(nil)

	_, err := service.Update(1, map[string]interface{}{
		"first_name": "Sam",
		"profile": map[string]interface{}{
			"date_of_birth": "1990-04-12",
			"medications":   "ibuprofen",
		},
	})

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestProfileUpdateValidation(t *testing.T) {
	tests := []struct {
		name      string
		patch     map[string]interface{}
		wantField string
	}{
		{
			name:      "bad email",
			patch:     map[string]interface{}{"email": "nope"},
			wantField: "email",
		},
		{
			name: "bad date of birth",
			patch: map[string]interface{}{
				"profile": map[string]interface{}{"date_of_birth": "April 12"},
			},
			wantField: "date_of_birth",
		},
		{
			name: "bad notification preference",
			patch: map[string]interface{}{
				"profile": map[string]interface{}{"notification_preference": "pigeon"},
			},
			wantField: "notification_preference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, profileRepo, _ := setupProfileService()

			_, err := service.Update(1, tt.patch)

			verr, ok := services.AsValidationError(err)
			assert.True(t, ok)
			assert.Contains(t, verr.Fields, tt.wantField)
			userRepo.AssertNotCalled(t, "PatchUser", mock.Anything, mock.Anything)
			profileRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything)
		})
	}
}

func TestProfileUpdateIgnoresUnknownKeys(t *testing.T) {
	service, userRepo, profileRepo, settingsRepo := setupProfileService()
	stubProfileGet(userRepo, profileRepo, settingsRepo)

	_, err := service.Update(1, map[string]interface{}{
		"role":     "admin",
		"password": "sneaky",
	})

	assert.NoError(t, err)
	userRepo.AssertNotCalled(t, "PatchUser", mock.Anything, mock.Anything)
	profileRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything)
}
