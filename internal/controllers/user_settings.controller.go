package controllers

import (
	"errors"
	"net/http"

	"symptomtracker/internal/repository"
	"symptomtracker/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserSettingsController struct {
	service services.SettingsService
}

func NewUserSettingsController(service services.SettingsService) *UserSettingsController {
	return &UserSettingsController{service: service}
}

// GetSettings godoc
// @Summary Get settings
// @Description Retrieve the authenticated user's settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Settings retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Settings not found"
// @Router /settings [get]
func (sc *UserSettingsController) GetSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	settings, err := sc.service.Get(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Settings not found",
			"error":   "No settings exist for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings retrieved successfully",
		"data":    settings,
	})
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Patch settings fields; an embedded "username" key changes the account username atomically with the patch
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body map[string]interface{} true "Settings fields to update"
// @Success 200 {object} map[string]interface{} "Settings updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Username already taken"
// @Router /settings [patch]
func (sc *UserSettingsController) UpdateSettings(c *gin.Context) {
	sc.update(c, nil)
}

// UpdateNotificationSettings handles the narrower notification preferences view.
func (sc *UserSettingsController) UpdateNotificationSettings(c *gin.Context) {
	sc.update(c, []string{"notification_enabled", "reminder_frequency"})
}

// UpdateHealthAppSettings handles the health app sync preferences view.
func (sc *UserSettingsController) UpdateHealthAppSettings(c *gin.Context) {
	sc.update(c, []string{"health_app_sync", "health_app_type"})
}

// UpdateCommunitySettings handles the community preferences view.
func (sc *UserSettingsController) UpdateCommunitySettings(c *gin.Context) {
	sc.update(c, []string{"community_enabled", "community_username"})
}

func (sc *UserSettingsController) update(c *gin.Context, allowedKeys []string) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if allowedKeys != nil {
		patch = filterKeys(patch, allowedKeys...)
	}

	settings, err := sc.service.Update(userID.(uint), patch)
	if err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"errors":  verr.Fields,
			})
			return
		}
		if errors.Is(err, repository.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "This username is already taken",
				"error":   "Choose a different username",
			})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Settings not found",
				"error":   "No settings exist for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings updated successfully",
		"data":    settings,
	})
}
