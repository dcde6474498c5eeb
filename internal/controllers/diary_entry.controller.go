package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"symptomtracker/internal/events"
	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiaryEntryController struct {
	repo      repository.DiaryEntryRepository
	publisher events.Publisher
}

func NewDiaryEntryController(repo repository.DiaryEntryRepository, publisher events.Publisher) *DiaryEntryController {
	return &DiaryEntryController{repo: repo, publisher: publisher}
}

// CreateDiaryEntry godoc
// @Summary Create a diary entry
// @Description Record a free-text diary entry; timestamp defaults to now
// @Tags diary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body models.DiaryEntry true "Diary entry data"
// @Success 201 {object} map[string]interface{} "Diary entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /diary [post]
func (dc *DiaryEntryController) CreateDiaryEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	var entry models.DiaryEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if strings.TrimSpace(entry.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  gin.H{"content": "This field may not be blank."},
		})
		return
	}

	entry.ID = 0
	entry.UserID = userID.(uint)
	entry.SentToPhysician = false
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := dc.repo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create diary entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Diary entry created successfully",
		"data":    entry,
	})
}

// GetDiaryEntries godoc
// @Summary List diary entries
// @Description Retrieve the authenticated user's diary entries, newest first
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Diary entries retrieved successfully"
// @Router /diary [get]
func (dc *DiaryEntryController) GetDiaryEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	entries, err := dc.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve diary entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diary entries retrieved successfully",
		"data":    entries,
	})
}

// GetRecentDiaryEntries godoc
// @Summary List recent diary entries
// @Description Retrieve the five most recent diary entries
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Diary entries retrieved successfully"
// @Router /diary/recent [get]
func (dc *DiaryEntryController) GetRecentDiaryEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	entries, err := dc.repo.FindRecentByUserID(userID.(uint), recentEntryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve diary entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diary entries retrieved successfully",
		"data":    entries,
	})
}

// GetDiaryEntryByID godoc
// @Summary Get a diary entry
// @Description Retrieve one of the authenticated user's diary entries by ID
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Diary entry retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Diary entry not found"
// @Router /diary/{id} [get]
func (dc *DiaryEntryController) GetDiaryEntryByID(c *gin.Context) {
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
			"message": "Invalid entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	entry, err := dc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Diary entry not found",
			"error":   "No diary entry exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diary entry retrieved successfully",
		"data":    entry,
	})
}

// UpdateDiaryEntry godoc
// @Summary Update a diary entry
// @Description Merge the given fields into the entry; unspecified fields keep their values
// @Tags diary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param entry body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Diary entry updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Diary entry not found"
// @Router /diary/{id} [patch]
func (dc *DiaryEntryController) UpdateDiaryEntry(c *gin.Context) {
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
			"message": "Invalid entry ID",
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

	if raw, ok := body["content"]; ok {
		value, isString := raw.(string)
		if !isString || strings.TrimSpace(value) == "" {
			fieldErrors["content"] = "This field may not be blank."
		} else {
			data["content"] = value
		}
	}
	if raw, ok := body["timestamp"]; ok {
		value, isString := raw.(string)
		if !isString {
			fieldErrors["timestamp"] = "Must be an RFC 3339 timestamp."
		} else if parsed, parseErr := time.Parse(time.RFC3339, value); parseErr != nil {
			fieldErrors["timestamp"] = "Must be an RFC 3339 timestamp."
		} else {
			data["timestamp"] = parsed
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

	if err := dc.repo.Patch(uint(id), userID.(uint), data); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Diary entry not found",
				"error":   "No diary entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update diary entry",
			"error":   err.Error(),
		})
		return
	}

	entry, err := dc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve updated diary entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diary entry updated successfully",
		"data":    entry,
	})
}

// DeleteDiaryEntry godoc
// @Summary Delete a diary entry
// @Description Remove one of the authenticated user's diary entries
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Diary entry deleted successfully"
// @Failure 404 {object} map[string]interface{} "Diary entry not found"
// @Router /diary/{id} [delete]
func (dc *DiaryEntryController) DeleteDiaryEntry(c *gin.Context) {
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
			"message": "Invalid entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := dc.repo.DeleteByIDAndUserID(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Diary entry not found",
				"error":   "No diary entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete diary entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diary entry deleted successfully",
		"data":    nil,
	})
}

// SendDiaryEntryToPhysician godoc
// @Summary Forward a diary entry to the physician
// @Description Mark the entry as sent; calling it again is a no-op success
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Diary entry sent to physician"
// @Failure 404 {object} map[string]interface{} "Diary entry not found"
// @Router /diary/{id}/send [post]
func (dc *DiaryEntryController) SendDiaryEntryToPhysician(c *gin.Context) {
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
			"message": "Invalid entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := dc.repo.MarkSentToPhysician(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Diary entry not found",
				"error":   "No diary entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send diary entry",
			"error":   err.Error(),
		})
		return
	}

	if dc.publisher != nil {
		if err := dc.publisher.PublishEntryForwarded(userID.(uint), "diary", uint(id)); err != nil {
			log.Printf("Failed to publish diary entry forwarded event: %v", err)
		}
	}

	entry, err := dc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve diary entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diary entry sent to physician",
		"data":    entry,
	})
}
