package controllers

import (
	"errors"
	"net/http"

	"symptomtracker/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserProfileController struct {
	service services.ProfileService
}

func NewUserProfileController(service services.ProfileService) *UserProfileController {
	return &UserProfileController{service: service}
}

// GetProfile godoc
// @Summary Get the combined profile
// @Description Retrieve the authenticated user's account fields, profile and settings
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *UserProfileController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	view, err := pc.service.Get(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    view,
	})
}

// UpdateProfile godoc
// @Summary Update the combined profile
// @Description Apply user fields at the top level and profile fields under "profile"; unspecified fields keep their values
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /profile [put]
func (pc *UserProfileController) UpdateProfile(c *gin.Context) {
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

	view, err := pc.service.Update(userID.(uint), patch)
	if err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"errors":  verr.Fields,
			})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Profile not found",
				"error":   "No profile exists for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    view,
	})
}

// UpdateEmergencyContact godoc
// @Summary Update the emergency contact
// @Description Patch the emergency contact fields of the profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contact body map[string]interface{} true "Emergency contact fields"
// @Success 200 {object} map[string]interface{} "Emergency contact updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /profile/emergency-contact [patch]
func (pc *UserProfileController) UpdateEmergencyContact(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	patch := map[string]interface{}{
		"profile": filterKeys(body,
			"emergency_contact_name",
			"emergency_contact_phone",
			"emergency_contact_relationship",
		),
	}

	view, err := pc.service.Update(userID.(uint), patch)
	if err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"errors":  verr.Fields,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update emergency contact",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Emergency contact updated successfully",
		"data":    view.Profile,
	})
}

// filterKeys keeps only the listed keys of a patch body.
func filterKeys(body map[string]interface{}, keys ...string) map[string]interface{} {
	filtered := make(map[string]interface{})
	for _, key := range keys {
		if value, ok := body[key]; ok {
			filtered[key] = value
		}
	}
	return filtered
}
