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
	"gorm.io/gorm"
)

func setupPhysicianController() (*controllers.PhysicianInfoController, *mocks.MockPhysicianInfoRepository) {
	mockRepo := new(mocks.MockPhysicianInfoRepository)
	controller := controllers.NewPhysicianInfoController(mockRepo)
	return controller, mockRepo
}

func TestGetPhysicianInfoNotRegistered(t *testing.T) {
	controller, mockRepo := setupPhysicianController()
	mockRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/physician", controller.GetPhysicianInfo)

	req := httptest.NewRequest("GET", "/physician", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreatePhysicianInfoReplacesExisting(t *testing.T) {
	controller, mockRepo := setupPhysicianController()
	mockRepo.On("Replace", mock.MatchedBy(func(info *models.PhysicianInfo) bool {
		return info.UserID == 1 && info.PhysicianName == "Dr. Amanda Reyes"
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/physician", controller.CreatePhysicianInfo)

	body, _ := json.Marshal(map[string]interface{}{
		"physician_name":  "Dr. Amanda Reyes",
		"physician_email": "a.reyes@clinic.example.com",
	})
	req := httptest.NewRequest("POST", "/physician", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreatePhysicianInfoValidation(t *testing.T) {
	tests := []struct {
		name        string
		requestBody map[string]interface{}
		wantField   string
	}{
		{
			name:        "blank name",
			requestBody: map[string]interface{}{"physician_name": "  ", "physician_email": "a@b.example"},
			wantField:   "physician_name",
		},
		{
			name:        "bad email",
			requestBody: map[string]interface{}{"physician_name": "Dr. X", "physician_email": "not-an-email"},
			wantField:   "physician_email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupPhysicianController()

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/physician", controller.CreatePhysicianInfo)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/physician", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			fieldErrors := response["errors"].(map[string]interface{})
			assert.Contains(t, fieldErrors, tt.wantField)

			mockRepo.AssertNotCalled(t, "Replace", mock.Anything)
		})
	}
}

func TestUpdatePhysicianInfoMissing(t *testing.T) {
	controller, mockRepo := setupPhysicianController()
	mockRepo.On("Patch", uint(1), mock.Anything).Return(gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/physician", controller.UpdatePhysicianInfo)

	body, _ := json.Marshal(map[string]interface{}{"physician_name": "Dr. Y"})
	req := httptest.NewRequest("PATCH", "/physician", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeletePhysicianInfo(t *testing.T) {
	controller, mockRepo := setupPhysicianController()
	mockRepo.On("DeleteByUserID", uint(1)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/physician", controller.DeletePhysicianInfo)

	req := httptest.NewRequest("DELETE", "/physician", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
