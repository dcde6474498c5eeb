package controllers

import (
	"errors"
	"net/http"
	"strings"

	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PhysicianInfoController struct {
	repo repository.PhysicianInfoRepository
}

func NewPhysicianInfoController(repo repository.PhysicianInfoRepository) *PhysicianInfoController {
	return &PhysicianInfoController{repo: repo}
}

// GetPhysicianInfo godoc
// @Summary Get the physician contact
// @Description Retrieve the authenticated user's physician contact record
// @Tags physician
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Physician info retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Physician info not found"
// @Router /physician [get]
func (pc *PhysicianInfoController) GetPhysicianInfo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	info, err := pc.repo.FindByUserID(userID.(uint))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Physician info not found",
				"error":   "No physician contact has been registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve physician info",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Physician info retrieved successfully",
		"data":    info,
	})
}

// CreatePhysicianInfo godoc
// @Summary Register the physician contact
// @Description Store the physician contact, replacing any previous record for this user
// @Tags physician
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param physician body models.PhysicianInfo true "Physician contact data"
// @Success 201 {object} map[string]interface{} "Physician info saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /physician [post]
func (pc *PhysicianInfoController) CreatePhysicianInfo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	var info models.PhysicianInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(info.PhysicianName) == "" {
		fieldErrors["physician_name"] = "This field may not be blank."
	}
	if strings.TrimSpace(info.PhysicianEmail) == "" {
		fieldErrors["physician_email"] = "This field may not be blank."
	} else if !strings.Contains(info.PhysicianEmail, "@") {
		fieldErrors["physician_email"] = "Enter a valid email address."
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  fieldErrors,
		})
		return
	}

	info.ID = 0
	info.UserID = userID.(uint)

	if err := pc.repo.Replace(&info); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save physician info",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Physician info saved successfully",
		"data":    info,
	})
}

// UpdatePhysicianInfo godoc
// @Summary Update the physician contact
// @Description Merge the given fields into the existing physician contact
// @Tags physician
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param physician body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Physician info updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Physician info not found"
// @Router /physician [patch]
func (pc *PhysicianInfoController) UpdatePhysicianInfo(c *gin.Context) {
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

	data := make(map[string]interface{})
	fieldErrors := make(map[string]string)

	if raw, ok := body["physician_name"]; ok {
		value, isString := raw.(string)
		if !isString || strings.TrimSpace(value) == "" {
			fieldErrors["physician_name"] = "This field may not be blank."
		} else {
			data["physician_name"] = value
		}
	}
	if raw, ok := body["physician_email"]; ok {
		value, isString := raw.(string)
		if !isString || !strings.Contains(value, "@") {
			fieldErrors["physician_email"] = "Enter a valid email address."
		} else {
			data["physician_email"] = value
		}
	}
	if raw, ok := body["physician_phone"]; ok {
		if raw == nil {
			data["physician_phone"] = nil
		} else if value, isString := raw.(string); isString {
			data["physician_phone"] = value
		} else {
			fieldErrors["physician_phone"] = "Must be a string or null."
		}
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  fieldErrors,
		})
		return
	}

	if err := pc.repo.Patch(userID.(uint), data); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Physician info not found",
				"error":   "No physician contact has been registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update physician info",
			"error":   err.Error(),
		})
		return
	}

	info, err := pc.repo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve updated physician info",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Physician info updated successfully",
		"data":    info,
	})
}

// DeletePhysicianInfo godoc
// @Summary Delete the physician contact
// @Description Remove the authenticated user's physician contact record
// @Tags physician
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Physician info deleted successfully"
// @Failure 404 {object} map[string]interface{} "Physician info not found"
// @Router /physician [delete]
func (pc *PhysicianInfoController) DeletePhysicianInfo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	if err := pc.repo.DeleteByUserID(userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Physician info not found",
				"error":   "No physician contact has been registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete physician info",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Physician info deleted successfully",
		"data":    nil,
	})
}
