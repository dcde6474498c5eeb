package services_test

import (
	"testing"
	"time"

	"symptomtracker/internal/mocks"
	"symptomtracker/internal/models"
	"symptomtracker/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func setupAuthService() (services.AuthService, *mocks.MockUserRepository, *mocks.MockTokenBlacklist) {
	userRepo := new(mocks.MockUserRepository)
	blacklist := new(mocks.MockTokenBlacklist)
	service := services.NewAuthService(userRepo, blacklist, testJWTSecret, 30*time.Minute, 24*time.Hour)
	return service, userRepo, blacklist
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func validRegisterInput() services.RegisterInput {
	return services.RegisterInput{
		Username:    "sam",
		Email:       "sam@example.com",
		Password:    "correct-horse",
		Password2:   "correct-horse",
		FirstName:   "Sam",
		LastName:    "Rivera",
		DateOfBirth: "1990-04-12",
	}
}

func TestRegisterCreatesUserWithTokens(t *testing.T) {
	service, userRepo, _ := setupAuthService()
	userRepo.On("CreateUser", mock.AnythingOfType("*models.User"), mock.AnythingOfType("*time.Time")).Return(nil)

	user, tokens, err := service.Register(validRegisterInput())

	assert.NoError(t, err)
	assert.Equal(t, "sam", user.Username)
	assert.NotEqual(t, "correct-horse", user.Password)
	assert.NotEmpty(t, tokens.Access)
	assert.NotEmpty(t, tokens.Refresh)
	userRepo.AssertExpectations(t)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*services.RegisterInput)
		wantField string
	}{
		{
			name:      "password mismatch",
			mutate:    func(in *services.RegisterInput) { in.Password2 = "different-pass" },
			wantField: "password",
		},
		{
			name: "short password",
			mutate: func(in *services.RegisterInput) {
				in.Password = "short"
				in.Password2 = "short"
			},
			wantField: "password",
		},
		{
			name:      "bad email",
			mutate:    func(in *services.RegisterInput) { in.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "bad date of birth",
			mutate:    func(in *services.RegisterInput) { in.DateOfBirth = "12/04/1990" },
			wantField: "date_of_birth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _ := setupAuthService()
			input := validRegisterInput()
			tt.mutate(&input)

			_, _, err := service.Register(input)

			verr, ok := services.AsValidationError(err)
			assert.True(t, ok)
			assert.Contains(t, verr.Fields, tt.wantField)
			userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		})
	}
}

func TestLogin(t *testing.T) {
	service, userRepo, _ := setupAuthService()
	user := &models.User{ID: 1, Username: "sam", Password: hashPassword(t, "correct-horse")}
	userRepo.On("GetUserByUsername", "sam").Return(user, nil)

	loggedIn, tokens, err := service.Login("sam", "correct-horse")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), loggedIn.ID)
	assert.NotEmpty(t, tokens.Access)
	assert.NotEmpty(t, tokens.Refresh)
}

func TestLoginWrongPassword(t *testing.T) {
	service, userRepo, _ := setupAuthService()
	user := &models.User{ID: 1, Username: "sam", Password: hashPassword(t, "correct-horse")}
	userRepo.On("GetUserByUsername", "sam").Return(user, nil)

	_, _, err := service.Login("sam", "wrong-horse")

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	service, userRepo, _ := setupAuthService()
	userRepo.On("GetUserByUsername", "ghost").Return(nil, assert.AnError)

	_, _, err := service.Login("ghost", "whatever")

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestRefreshRotatesTokenPair(t *testing.T) {
	service, userRepo, blacklist := setupAuthService()
	user := &models.User{ID: 1, Username: "sam", Password: hashPassword(t, "correct-horse")}
	userRepo.On("GetUserByUsername", "sam").Return(user, nil)
	userRepo.On("GetUserByID", uint(1)).Return(user, nil)
	blacklist.On("IsTokenBlacklisted", mock.AnythingOfType("string")).Return(false, nil)
	blacklist.On("BlacklistToken", mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(nil)

	_, pair, err := service.Login("sam", "correct-horse")
	assert.NoError(t, err)

	rotated, err := service.Refresh(pair.Refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.Access)
	assert.NotEqual(t, pair.Refresh, rotated.Refresh)
	blacklist.AssertExpectations(t)
}

func TestRefreshRejectsBlacklistedToken(t *testing.T) {
	service, userRepo, blacklist := setupAuthService()
	user := &models.User{ID: 1, Username: "sam", Password: hashPassword(t, "correct-horse")}
	userRepo.On("GetUserByUsername", "sam").Return(user, nil)
	blacklist.On("IsTokenBlacklisted", mock.AnythingOfType("string")).Return(true, nil)

	_, pair, err := service.Login("sam", "correct-horse")
	assert.NoError(t, err)

	_, err = service.Refresh(pair.Refresh)

	assert.ErrorIs(t, err, services.ErrInvalidToken)
	blacklist.AssertNotCalled(t, "BlacklistToken", mock.Anything, mock.Anything)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	service, userRepo, _ := setupAuthService()
	user := &models.User{ID: 1, Username: "sam", Password: hashPassword(t, "correct-horse")}
	userRepo.On("GetUserByUsername", "sam").Return(user, nil)

	_, pair, err := service.Login("sam", "correct-horse")
	assert.NoError(t, err)

	_, err = service.Refresh(pair.Access)

	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	service, _, _ := setupAuthService()

	_, err := service.Refresh("not.a.token")

	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestLogoutBlacklistsRefreshToken(t *testing.T) {
	service, userRepo, blacklist := setupAuthService()
	user := &models.User{ID: 1, Username: "sam", Password: hashPassword(t, "correct-horse")}
	userRepo.On("GetUserByUsername", "sam").Return(user, nil)
	blacklist.On("BlacklistToken", mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(nil)

	_, pair, err := service.Login("sam", "correct-horse")
	assert.NoError(t, err)

	assert.NoError(t, service.Logout(pair.Refresh))
	blacklist.AssertExpectations(t)
}

func TestChangePassword(t *testing.T) {
	service, userRepo, _ := setupAuthService()
	user := &models.User{ID: 1, Username: "sam", Password: hashPassword(t, "correct-horse")}
	userRepo.On("GetUserByID", uint(1)).Return(user, nil)
	userRepo.On("UpdatePassword", uint(1), mock.AnythingOfType("string")).Return(nil)

	err := service.ChangePassword(1, "correct-horse", "new-password-1", "new-password-1")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	service, userRepo, _ := setupAuthService()
	user := &models.User{ID: 1, Username: "sam", Password: hashPassword(t, "correct-horse")}
	userRepo.On("GetUserByID", uint(1)).Return(user, nil)

	err := service.ChangePassword(1, "wrong-horse", "new-password-1", "new-password-1")

	verr, ok := services.AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "old_password")
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}
