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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupNotificationController() (*controllers.NotificationController, *mocks.MockNotificationRepository) {
	mockRepo := new(mocks.MockNotificationRepository)
	controller := controllers.NewNotificationController(mockRepo)
	return controller, mockRepo
}

func TestCreateNotification(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockNotificationRepository)
		expectedStatus int
		wantField      string
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"notification_type": "medication",
				"title":             "Morning medication",
				"time":              "08:00",
				"days":              []string{"monday", "wednesday", "friday"},
			},
			setupMock: func(m *mocks.MockNotificationRepository) {
				m.On("Create", mock.AnythingOfType("*models.Notification")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown notification type",
			requestBody: map[string]interface{}{
				"notification_type": "exercise",
				"title":             "Stretch",
				"time":              "08:00",
			},
			setupMock:      func(m *mocks.MockNotificationRepository) {},
			expectedStatus: http.StatusBadRequest,
			wantField:      "notification_type",
		},
		{
			name: "bad time format",
			requestBody: map[string]interface{}{
				"notification_type": "medication",
				"title":             "Morning medication",
				"time":              "8 o'clock",
			},
			setupMock:      func(m *mocks.MockNotificationRepository) {},
			expectedStatus: http.StatusBadRequest,
			wantField:      "time",
		},
		{
			name: "bad weekday token",
			requestBody: map[string]interface{}{
				"notification_type": "medication",
				"title":             "Morning medication",
				"time":              "08:00",
				"days":              []string{"Monday"},
			},
			setupMock:      func(m *mocks.MockNotificationRepository) {},
			expectedStatus: http.StatusBadRequest,
			wantField:      "days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupNotificationController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/notifications", controller.CreateNotification)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/notifications", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.wantField != "" {
				var response map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				fieldErrors := response["errors"].(map[string]interface{})
				assert.Contains(t, fieldErrors, tt.wantField)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateNotificationIsActive(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		wantActive bool
	}{
		{
			name: "defaults to active when omitted",
			body: map[string]interface{}{
				"notification_type": "medication",
				"title":             "Morning medication",
				"time":              "08:00",
			},
			wantActive: true,
		},
		{
			name: "explicit false is kept",
			body: map[string]interface{}{
				"notification_type": "medication",
				"title":             "Morning medication",
				"time":              "08:00",
				"is_active":         false,
			},
			wantActive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupNotificationController()
			mockRepo.On("Create", mock.MatchedBy(func(n *models.Notification) bool {
				return n.IsActive == tt.wantActive
			})).Return(nil)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/notifications", controller.CreateNotification)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/notifications", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusCreated, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateNotificationDays(t *testing.T) {
	controller, mockRepo := setupNotificationController()
	mockRepo.On("Patch", uint(4), uint(1), map[string]interface{}{
		"days": datatypes.JSONSlice[string]{"saturday", "sunday"},
	}).Return(nil)
	mockRepo.On("FindByIDAndUserID", uint(4), uint(1)).Return(&models.Notification{ID: 4, UserID: 1}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/notifications/:id", controller.UpdateNotification)

	body, _ := json.Marshal(map[string]interface{}{"days": []string{"saturday", "sunday"}})
	req := httptest.NewRequest("PATCH", "/notifications/4", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateNotificationNotFound(t *testing.T) {
	controller, mockRepo := setupNotificationController()
	mockRepo.On("Patch", uint(4), uint(1), mock.Anything).Return(gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/notifications/:id", controller.UpdateNotification)

	body, _ := json.Marshal(map[string]interface{}{"is_active": false})
	req := httptest.NewRequest("PATCH", "/notifications/4", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeleteNotification(t *testing.T) {
	controller, mockRepo := setupNotificationController()
	mockRepo.On("DeleteByIDAndUserID", uint(4), uint(1)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/notifications/:id", controller.DeleteNotification)

	req := httptest.NewRequest("DELETE", "/notifications/4", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
