package services

import (
	"fmt"
	"strings"
	"time"

	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenBlacklist stores revoked refresh-token IDs until they would have
// expired anyway. Implemented by the Redis cache.
type TokenBlacklist interface {
	BlacklistToken(jti string, ttl time.Duration) error
	IsTokenBlacklisted(jti string) (bool, error)
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RegisterInput struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Password2   string `json:"password2" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
}

type AuthService interface {
	Register(input RegisterInput) (*models.User, *TokenPair, error)
	Login(username, password string) (*models.User, *TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	Logout(refreshToken string) error
	ChangePassword(userID uint, oldPassword, newPassword, confirmPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	blacklist  TokenBlacklist
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, blacklist TokenBlacklist, jwtSecret string, accessTTL, refreshTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		blacklist:  blacklist,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *authService) Register(input RegisterInput) (*models.User, *TokenPair, error) {
	verr := newValidationError()

	if input.Password != input.Password2 {
		verr.Fields["password"] = "Password fields didn't match."
	}
	if len(input.Password) < 8 {
		verr.Fields["password"] = "Password must be at least 8 characters."
	}
	if !strings.Contains(input.Email, "@") {
		verr.Fields["email"] = "Enter a valid email address."
	}

	var dob *time.Time
	if input.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			verr.Fields["date_of_birth"] = "Date must be in YYYY-MM-DD format."
		} else {
			dob = &parsed
		}
	}

	if len(verr.Fields) > 0 {
		return nil, nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hash),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	if err := s.userRepo.CreateUser(user, dob); err != nil {
		return nil, nil, err
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) Login(username, password string) (*models.User, *TokenPair, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates the token pair: the presented refresh token is blacklisted
// for its remaining lifetime and a fresh pair is issued.
func (s *authService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil, ErrInvalidToken
	}
	revoked, err := s.blacklist.IsTokenBlacklisted(jti)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.GetUserByID(uint(userIDFloat))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if err := s.blacklist.BlacklistToken(jti, remainingTTL(claims)); err != nil {
		return nil, err
	}

	return s.generateTokenPair(user)
}

func (s *authService) Logout(refreshToken string) error {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return ErrInvalidToken
	}
	return s.blacklist.BlacklistToken(jti, remainingTTL(claims))
}

func (s *authService) ChangePassword(userID uint, oldPassword, newPassword, confirmPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}

	verr := newValidationError()
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		verr.Fields["old_password"] = "Wrong password."
	}
	if newPassword != confirmPassword {
		verr.Fields["confirm_password"] = "Password fields didn't match."
	}
	if len(newPassword) < 8 {
		verr.Fields["new_password"] = "Password must be at least 8 characters."
	}
	if len(verr.Fields) > 0 {
		return verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(userID, string(hash))
}

func (s *authService) generateTokenPair(user *models.User) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"type":     "access",
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.MapClaims{
		"user_id": user.ID,
		"type":    "refresh",
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *authService) parseRefreshToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func remainingTTL(claims jwt.MapClaims) time.Duration {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl < 0 {
		return 0
	}
	return ttl
}
