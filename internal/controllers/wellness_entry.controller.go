package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"symptomtracker/internal/events"
	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WellnessEntryController struct {
	repo      repository.WellnessEntryRepository
	publisher events.Publisher
}

func NewWellnessEntryController(repo repository.WellnessEntryRepository, publisher events.Publisher) *WellnessEntryController {
	return &WellnessEntryController{repo: repo, publisher: publisher}
}

// CreateWellnessEntry godoc
// @Summary Create a wellness entry
// @Description Record a mental wellness rating with optional notes; timestamp defaults to now
// @Tags wellness
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body models.WellnessEntry true "Wellness entry data"
// @Success 201 {object} map[string]interface{} "Wellness entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /wellness [post]
func (wc *WellnessEntryController) CreateWellnessEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	var entry models.WellnessEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !models.ValidWellnessLevel(entry.WellnessLevel) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  gin.H{"wellness_level": "Must be between 1 and 5."},
		})
		return
	}

	entry.ID = 0
	entry.UserID = userID.(uint)
	entry.SentToPhysician = false
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := wc.repo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create wellness entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Wellness entry created successfully",
		"data":    entry,
	})
}

// GetWellnessEntries godoc
// @Summary List wellness entries
// @Description Retrieve the authenticated user's wellness entries, newest first
// @Tags wellness
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Wellness entries retrieved successfully"
// @Router /wellness [get]
func (wc *WellnessEntryController) GetWellnessEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	entries, err := wc.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve wellness entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wellness entries retrieved successfully",
		"data":    entries,
	})
}

// GetRecentWellnessEntries godoc
// @Summary List recent wellness entries
// @Description Retrieve the five most recent wellness entries
// @Tags wellness
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Wellness entries retrieved successfully"
// @Router /wellness/recent [get]
func (wc *WellnessEntryController) GetRecentWellnessEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	entries, err := wc.repo.FindRecentByUserID(userID.(uint), recentEntryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve wellness entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wellness entries retrieved successfully",
		"data":    entries,
	})
}

// GetWellnessEntryByID godoc
// @Summary Get a wellness entry
// @Description Retrieve one of the authenticated user's wellness entries by ID
// @Tags wellness
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Wellness entry retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Wellness entry not found"
// @Router /wellness/{id} [get]
func (wc *WellnessEntryController) GetWellnessEntryByID(c *gin.Context) {
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

	entry, err := wc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Wellness entry not found",
			"error":   "No wellness entry exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wellness entry retrieved successfully",
		"data":    entry,
	})
}

// UpdateWellnessEntry godoc
// @Summary Update a wellness entry
// @Description Merge the given fields into the entry; unspecified fields keep their values
// @Tags wellness
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param entry body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Wellness entry updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Wellness entry not found"
// @Router /wellness/{id} [patch]
func (wc *WellnessEntryController) UpdateWellnessEntry(c *gin.Context) {
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

	if raw, ok := body["wellness_level"]; ok {
		level, isNumber := raw.(float64)
		if !isNumber || !models.ValidWellnessLevel(int(level)) {
			fieldErrors["wellness_level"] = "Must be between 1 and 5."
		} else {
			data["wellness_level"] = int(level)
		}
	}
	if raw, ok := body["notes"]; ok {
		if raw == nil {
			data["notes"] = nil
		} else if value, isString := raw.(string); isString {
			data["notes"] = value
		} else {
			fieldErrors["notes"] = "Must be a string or null."
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

	if err := wc.repo.Patch(uint(id), userID.(uint), data); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Wellness entry not found",
				"error":   "No wellness entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update wellness entry",
			"error":   err.Error(),
		})
		return
	}

	entry, err := wc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve updated wellness entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wellness entry updated successfully",
		"data":    entry,
	})
}

// DeleteWellnessEntry godoc
// @Summary Delete a wellness entry
// @Description Remove one of the authenticated user's wellness entries
// @Tags wellness
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Wellness entry deleted successfully"
// @Failure 404 {object} map[string]interface{} "Wellness entry not found"
// @Router /wellness/{id} [delete]
func (wc *WellnessEntryController) DeleteWellnessEntry(c *gin.Context) {
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

	if err := wc.repo.DeleteByIDAndUserID(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Wellness entry not found",
				"error":   "No wellness entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete wellness entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wellness entry deleted successfully",
		"data":    nil,
	})
}

// SendWellnessEntryToPhysician godoc
// @Summary Forward a wellness entry to the physician
// @Description Mark the entry as sent; calling it again is a no-op success
// @Tags wellness
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Wellness entry sent to physician"
// @Failure 404 {object} map[string]interface{} "Wellness entry not found"
// @Router /wellness/{id}/send [post]
func (wc *WellnessEntryController) SendWellnessEntryToPhysician(c *gin.Context) {
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

	if err := wc.repo.MarkSentToPhysician(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Wellness entry not found",
				"error":   "No wellness entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send wellness entry",
			"error":   err.Error(),
		})
		return
	}

	if wc.publisher != nil {
		if err := wc.publisher.PublishEntryForwarded(userID.(uint), "wellness", uint(id)); err != nil {
			log.Printf("Failed to publish wellness entry forwarded event: %v", err)
		}
	}

	entry, err := wc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve wellness entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wellness entry sent to physician",
		"data":    entry,
	})
}
