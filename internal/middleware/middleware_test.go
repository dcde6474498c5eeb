package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware())
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	now := time.Now()

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name: "valid access token",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id":  float64(1),
				"username": "sam",
				"type":     "access",
				"iat":      now.Unix(),
				"exp":      now.Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "refresh token rejected",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id": float64(1),
				"type":    "refresh",
				"jti":     "abc",
				"iat":     now.Unix(),
				"exp":     now.Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "access token missing user_id claim",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"username": "sam",
				"type":     "access",
				"iat":      now.Unix(),
				"exp":      now.Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "access token missing username claim",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id": float64(1),
				"type":    "access",
				"iat":     now.Unix(),
				"exp":     now.Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id":  float64(1),
				"username": "sam",
				"type":     "access",
				"iat":      now.Add(-2 * time.Hour).Unix(),
				"exp":      now.Add(-time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupProtectedRouter()

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
