package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTokenBlacklist is a mock implementation of services.TokenBlacklist
type MockTokenBlacklist struct {
	mock.Mock
}

func (m *MockTokenBlacklist) BlacklistToken(jti string, ttl time.Duration) error {
	args := m.Called(jti, ttl)
	return args.Error(0)
}

func (m *MockTokenBlacklist) IsTokenBlacklisted(jti string) (bool, error) {
	args := m.Called(jti)
	return args.Bool(0), args.Error(1)
}

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEntryForwarded(userID uint, entryType string, entryID uint) error {
	args := m.Called(userID, entryType, entryID)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
