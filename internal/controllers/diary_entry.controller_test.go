package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"symptomtracker/internal/controllers"
	"symptomtracker/internal/mocks"
	"symptomtracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDiaryController() (*controllers.DiaryEntryController, *mocks.MockDiaryEntryRepository, *mocks.MockPublisher) {
	mockRepo := new(mocks.MockDiaryEntryRepository)
	mockPublisher := new(mocks.MockPublisher)
	controller := controllers.NewDiaryEntryController(mockRepo, mockPublisher)
	return controller, mockRepo, mockPublisher
}

func TestCreateDiaryEntry(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockDiaryEntryRepository)
		expectedStatus int
	}{
		{
			name:        "successful creation",
			requestBody: map[string]interface{}{"content": "Slept badly, pain woke me twice."},
			setupMock: func(m *mocks.MockDiaryEntryRepository) {
				m.On("Create", mock.AnythingOfType("*models.DiaryEntry")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "blank content rejected",
			requestBody:    map[string]interface{}{"content": "   "},
			setupMock:      func(m *mocks.MockDiaryEntryRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing content rejected",
			requestBody:    map[string]interface{}{},
			setupMock:      func(m *mocks.MockDiaryEntryRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, _ := setupDiaryController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/diary", controller.CreateDiaryEntry)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/diary", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateDiaryEntryDefaultsTimestamp(t *testing.T) {
	controller, mockRepo, _ := setupDiaryController()
	before := time.Now()
	mockRepo.On("Create", mock.MatchedBy(func(entry *models.DiaryEntry) bool {
		return !entry.Timestamp.Before(before)
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/diary", controller.CreateDiaryEntry)

	body, _ := json.Marshal(map[string]interface{}{"content": "note"})
	req := httptest.NewRequest("POST", "/diary", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestSendDiaryEntryIsIdempotent(t *testing.T) {
	controller, mockRepo, mockPublisher := setupDiaryController()
	sent := &models.DiaryEntry{ID: 9, UserID: 1, Content: "note", SentToPhysician: true}
	// Marking twice succeeds both times and keeps the flag set.
	mockRepo.On("MarkSentToPhysician", uint(9), uint(1)).Return(nil).Twice()
	mockRepo.On("FindByIDAndUserID", uint(9), uint(1)).Return(sent, nil).Twice()
	mockPublisher.On("PublishEntryForwarded", uint(1), "diary", uint(9)).Return(nil).Twice()

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/diary/:id/send", controller.SendDiaryEntryToPhysician)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/diary/9/send", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	mockRepo.AssertExpectations(t)
}
