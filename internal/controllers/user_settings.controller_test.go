package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"symptomtracker/internal/controllers"
	"symptomtracker/internal/mocks"
	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"
	"symptomtracker/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSettingsController() (*controllers.UserSettingsController, *mocks.MockUserSettingsRepository) {
	mockRepo := new(mocks.MockUserSettingsRepository)
	service := services.NewSettingsService(mockRepo)
	controller := controllers.NewUserSettingsController(service)
	return controller, mockRepo
}

func TestGetSettings(t *testing.T) {
	controller, mockRepo := setupSettingsController()
	settings := &models.UserSettings{ID: 1, UserID: 1, Language: "en", ReminderFrequency: models.ReminderDaily}
	mockRepo.On("FindByUserID", uint(1)).Return(settings, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/settings", controller.GetSettings)

	req := httptest.NewRequest("GET", "/settings", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateSettings(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserSettingsRepository)
		expectedStatus int
	}{
		{
			name:        "valid patch",
			requestBody: map[string]interface{}{"dark_mode": true, "reminder_frequency": "weekly"},
			setupMock: func(m *mocks.MockUserSettingsRepository) {
				m.On("PatchWithUsername", uint(1), map[string]interface{}{
					"dark_mode":          true,
					"reminder_frequency": "weekly",
				}, (*string)(nil)).Return(nil)
				m.On("FindByUserID", uint(1)).Return(&models.UserSettings{ID: 1, UserID: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown health app rejected before any write",
			requestBody:    map[string]interface{}{"health_app_type": "fitbit"},
			setupMock:      func(m *mocks.MockUserSettingsRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrong type for boolean field",
			requestBody:    map[string]interface{}{"dark_mode": "yes"},
			setupMock:      func(m *mocks.MockUserSettingsRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "username conflict leaves settings untouched",
			requestBody: map[string]interface{}{"dark_mode": true, "username": "taken"},
			setupMock: func(m *mocks.MockUserSettingsRepository) {
				m.On("PatchWithUsername", uint(1), mock.Anything, mock.AnythingOfType("*string")).
					Return(repository.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupSettingsController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.PATCH("/settings", controller.UpdateSettings)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PATCH", "/settings", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
			if tt.expectedStatus == http.StatusBadRequest {
				mockRepo.AssertNotCalled(t, "PatchWithUsername", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUpdateNotificationSettingsIgnoresOtherKeys(t *testing.T) {
	controller, mockRepo := setupSettingsController()
	// Only the notification keys may reach the repository from this view.
	mockRepo.On("PatchWithUsername", uint(1), map[string]interface{}{
		"notification_enabled": false,
	}, (*string)(nil)).Return(nil)
	mockRepo.On("FindByUserID", uint(1)).Return(&models.UserSettings{ID: 1, UserID: 1}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/settings/notifications", controller.UpdateNotificationSettings)

	body, _ := json.Marshal(map[string]interface{}{
		"notification_enabled": false,
		"dark_mode":            true,
		"username":             "sneaky",
	})
	req := httptest.NewRequest("PATCH", "/settings/notifications", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
