package mocks

import (
	"time"

	"symptomtracker/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User, dateOfBirth *time.Time) error {
	args := m.Called(user, dateOfBirth)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) PatchUser(id uint, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(id uint, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) IsUsernameTaken(username string, excludeID uint) (bool, error) {
	args := m.Called(username, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockPainEntryRepository is a mock implementation of repository.PainEntryRepository
type MockPainEntryRepository struct {
	mock.Mock
}

func (m *MockPainEntryRepository) Create(entry *models.PainEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockPainEntryRepository) FindAllByUserID(userID uint) ([]models.PainEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PainEntry), args.Error(1)
}

func (m *MockPainEntryRepository) FindRecentByUserID(userID uint, limit int) ([]models.PainEntry, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PainEntry), args.Error(1)
}

func (m *MockPainEntryRepository) FindByIDAndUserID(id, userID uint) (*models.PainEntry, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PainEntry), args.Error(1)
}

func (m *MockPainEntryRepository) FindByUserIDSince(userID uint, since time.Time) ([]models.PainEntry, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PainEntry), args.Error(1)
}

func (m *MockPainEntryRepository) Patch(id, userID uint, data map[string]interface{}) error {
	args := m.Called(id, userID, data)
	return args.Error(0)
}

func (m *MockPainEntryRepository) DeleteByIDAndUserID(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockPainEntryRepository) MarkSentToPhysician(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockWellnessEntryRepository is a mock implementation of repository.WellnessEntryRepository
type MockWellnessEntryRepository struct {
	mock.Mock
}

func (m *MockWellnessEntryRepository) Create(entry *models.WellnessEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWellnessEntryRepository) FindAllByUserID(userID uint) ([]models.WellnessEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WellnessEntry), args.Error(1)
}

func (m *MockWellnessEntryRepository) FindRecentByUserID(userID uint, limit int) ([]models.WellnessEntry, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WellnessEntry), args.Error(1)
}

func (m *MockWellnessEntryRepository) FindByIDAndUserID(id, userID uint) (*models.WellnessEntry, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WellnessEntry), args.Error(1)
}

func (m *MockWellnessEntryRepository) FindByUserIDSince(userID uint, since time.Time) ([]models.WellnessEntry, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WellnessEntry), args.Error(1)
}

func (m *MockWellnessEntryRepository) Patch(id, userID uint, data map[string]interface{}) error {
	args := m.Called(id, userID, data)
	return args.Error(0)
}

func (m *MockWellnessEntryRepository) DeleteByIDAndUserID(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockWellnessEntryRepository) MarkSentToPhysician(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockDiaryEntryRepository is a mock implementation of repository.DiaryEntryRepository
type MockDiaryEntryRepository struct {
	mock.Mock
}

func (m *MockDiaryEntryRepository) Create(entry *models.DiaryEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockDiaryEntryRepository) FindAllByUserID(userID uint) ([]models.DiaryEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DiaryEntry), args.Error(1)
}

func (m *MockDiaryEntryRepository) FindRecentByUserID(userID uint, limit int) ([]models.DiaryEntry, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DiaryEntry), args.Error(1)
}

func (m *MockDiaryEntryRepository) FindByIDAndUserID(id, userID uint) (*models.DiaryEntry, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DiaryEntry), args.Error(1)
}

func (m *MockDiaryEntryRepository) Patch(id, userID uint, data map[string]interface{}) error {
	args := m.Called(id, userID, data)
	return args.Error(0)
}

func (m *MockDiaryEntryRepository) DeleteByIDAndUserID(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockDiaryEntryRepository) MarkSentToPhysician(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockPhysicianInfoRepository is a mock implementation of repository.PhysicianInfoRepository
type MockPhysicianInfoRepository struct {
	mock.Mock
}

func (m *MockPhysicianInfoRepository) FindByUserID(userID uint) (*models.PhysicianInfo, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhysicianInfo), args.Error(1)
}

func (m *MockPhysicianInfoRepository) Replace(info *models.PhysicianInfo) error {
	args := m.Called(info)
	return args.Error(0)
}

func (m *MockPhysicianInfoRepository) Patch(userID uint, data map[string]interface{}) error {
	args := m.Called(userID, data)
	return args.Error(0)
}

func (m *MockPhysicianInfoRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of repository.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindAllByUserID(userID uint) ([]models.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByIDAndUserID(id, userID uint) (*models.Notification, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Patch(id, userID uint, data map[string]interface{}) error {
	args := m.Called(id, userID, data)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteByIDAndUserID(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockUserProfileRepository is a mock implementation of repository.UserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Patch(userID uint, data map[string]interface{}) error {
	args := m.Called(userID, data)
	return args.Error(0)
}

// MockUserSettingsRepository is a mock implementation of repository.UserSettingsRepository
type MockUserSettingsRepository struct {
	mock.Mock
}

func (m *MockUserSettingsRepository) FindByUserID(userID uint) (*models.UserSettings, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockUserSettingsRepository) Patch(userID uint, data map[string]interface{}) error {
	args := m.Called(userID, data)
	return args.Error(0)
}

func (m *MockUserSettingsRepository) PatchWithUsername(userID uint, data map[string]interface{}, username *string) error {
	args := m.Called(userID, data, username)
	return args.Error(0)
}
