package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationController struct {
	repo repository.NotificationRepository
}

func NewNotificationController(repo repository.NotificationRepository) *NotificationController {
	return &NotificationController{repo: repo}
}

func validClockTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

// createNotificationRequest keeps is_active tri-state: an absent field means
// active, an explicit false is stored as false.
type createNotificationRequest struct {
	NotificationType string   `json:"notification_type"`
	Title            string   `json:"title"`
	Message          string   `json:"message"`
	Time             string   `json:"time"`
	IsActive         *bool    `json:"is_active"`
	Days             []string `json:"days"`
}

// CreateNotification godoc
// @Summary Create a notification schedule
// @Description Store a reminder schedule for the authenticated user
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param notification body createNotificationRequest true "Notification data"
// @Success 201 {object} map[string]interface{} "Notification created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /notifications [post]
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	fieldErrors := make(map[string]string)
	if !models.ValidNotificationType(req.NotificationType) {
		fieldErrors["notification_type"] = "Must be one of: medication, appointment, data_entry."
	}
	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = "This field may not be blank."
	}
	if !validClockTime(req.Time) {
		fieldErrors["time"] = "Must be a 24-hour HH:MM time."
	}
	if !models.ValidWeekdays(req.Days) {
		fieldErrors["days"] = "Must contain only lowercase weekday names."
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  fieldErrors,
		})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	notification := models.Notification{
		UserID:           userID.(uint),
		NotificationType: req.NotificationType,
		Title:            req.Title,
		Message:          req.Message,
		Time:             req.Time,
		IsActive:         isActive,
		Days:             datatypes.JSONSlice[string](req.Days),
	}

	if err := nc.repo.Create(&notification); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create notification",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Notification created successfully",
		"data":    notification,
	})
}

// GetNotifications godoc
// @Summary List notification schedules
// @Description Retrieve all of the authenticated user's notification schedules
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Notifications retrieved successfully"
// @Router /notifications [get]
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	notifications, err := nc.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve notifications",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notifications retrieved successfully",
		"data":    notifications,
	})
}

// GetNotificationByID godoc
// @Summary Get a notification schedule
// @Description Retrieve one of the authenticated user's notification schedules by ID
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]interface{} "Notification retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Router /notifications/{id} [get]
func (nc *NotificationController) GetNotificationByID(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid notification ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	notification, err := nc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Notification not found",
			"error":   "No notification exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notification retrieved successfully",
		"data":    notification,
	})
}

// UpdateNotification godoc
// @Summary Update a notification schedule
// @Description Merge the given fields into the schedule; unspecified fields keep their values
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Param notification body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Notification updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Router /notifications/{id} [patch]
func (nc *NotificationController) UpdateNotification(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid notification ID",
			"error":   "ID must be a valid positive integer",
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

	if raw, ok := body["notification_type"]; ok {
		value, isString := raw.(string)
		if !isString || !models.ValidNotificationType(value) {
			fieldErrors["notification_type"] = "Must be one of: medication, appointment, data_entry."
		} else {
			data["notification_type"] = value
		}
	}
	if raw, ok := body["title"]; ok {
		value, isString := raw.(string)
		if !isString || strings.TrimSpace(value) == "" {
			fieldErrors["title"] = "This field may not be blank."
		} else {
			data["title"] = value
		}
	}
	if raw, ok := body["message"]; ok {
		value, isString := raw.(string)
		if !isString {
			fieldErrors["message"] = "Must be a string."
		} else {
			data["message"] = value
		}
	}
	if raw, ok := body["time"]; ok {
		value, isString := raw.(string)
		if !isString || !validClockTime(value) {
			fieldErrors["time"] = "Must be a 24-hour HH:MM time."
		} else {
			data["time"] = value
		}
	}
	if raw, ok := body["is_active"]; ok {
		value, isBool := raw.(bool)
		if !isBool {
			fieldErrors["is_active"] = "Must be a boolean."
		} else {
			data["is_active"] = value
		}
	}
	if raw, ok := body["days"]; ok {
		list, isList := raw.([]interface{})
		if !isList {
			fieldErrors["days"] = "Must be an array of weekday names."
		} else {
			days := make([]string, 0, len(list))
			valid := true
			for _, item := range list {
				day, isString := item.(string)
				if !isString {
					valid = false
					break
				}
				days = append(days, day)
			}
			if !valid || !models.ValidWeekdays(days) {
				fieldErrors["days"] = "Must contain only lowercase weekday names."
			} else {
				data["days"] = datatypes.JSONSlice[string](days)
			}
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

	if err := nc.repo.Patch(uint(id), userID.(uint), data); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Notification not found",
				"error":   "No notification exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update notification",
			"error":   err.Error(),
		})
		return
	}

	notification, err := nc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve updated notification",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notification updated successfully",
		"data":    notification,
	})
}

// DeleteNotification godoc
// @Summary Delete a notification schedule
// @Description Remove one of the authenticated user's notification schedules
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]interface{} "Notification deleted successfully"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Router /notifications/{id} [delete]
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid notification ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := nc.repo.DeleteByIDAndUserID(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Notification not found",
				"error":   "No notification exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete notification",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notification deleted successfully",
		"data":    nil,
	})
}
