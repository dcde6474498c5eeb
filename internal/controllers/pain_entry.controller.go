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

const recentEntryLimit = 5

type PainEntryController struct {
	repo      repository.PainEntryRepository
	publisher events.Publisher
}

func NewPainEntryController(repo repository.PainEntryRepository, publisher events.Publisher) *PainEntryController {
	return &PainEntryController{repo: repo, publisher: publisher}
}

// CreatePainEntry godoc
// @Summary Create a pain entry
// @Description Record a pain level with optional notes; timestamp defaults to now
// @Tags pain
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body models.PainEntry true "Pain entry data"
// @Success 201 {object} map[string]interface{} "Pain entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /pain [post]
func (pc *PainEntryController) CreatePainEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	var entry models.PainEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !models.ValidPainLevel(entry.PainLevel) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  gin.H{"pain_level": "Must be between 1 and 4."},
		})
		return
	}

	// Owner always comes from the token, never the payload.
	entry.ID = 0
	entry.UserID = userID.(uint)
	entry.SentToPhysician = false
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := pc.repo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create pain entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Pain entry created successfully",
		"data":    entry,
	})
}

// GetPainEntries godoc
// @Summary List pain entries
// @Description Retrieve the authenticated user's pain entries, newest first
// @Tags pain
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Pain entries retrieved successfully"
// @Router /pain [get]
func (pc *PainEntryController) GetPainEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	entries, err := pc.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve pain entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Pain entries retrieved successfully",
		"data":    entries,
	})
}

// GetRecentPainEntries godoc
// @Summary List recent pain entries
// @Description Retrieve the five most recent pain entries
// @Tags pain
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Pain entries retrieved successfully"
// @Router /pain/recent [get]
func (pc *PainEntryController) GetRecentPainEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	entries, err := pc.repo.FindRecentByUserID(userID.(uint), recentEntryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve pain entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Pain entries retrieved successfully",
		"data":    entries,
	})
}

// GetPainEntryByID godoc
// @Summary Get a pain entry
// @Description Retrieve one of the authenticated user's pain entries by ID
// @Tags pain
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Pain entry retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Pain entry not found"
// @Router /pain/{id} [get]
func (pc *PainEntryController) GetPainEntryByID(c *gin.Context) {
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

	entry, err := pc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Pain entry not found",
			"error":   "No pain entry exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Pain entry retrieved successfully",
		"data":    entry,
	})
}

// UpdatePainEntry godoc
// @Summary Update a pain entry
// @Description Merge the given fields into the entry; unspecified fields keep their values
// @Tags pain
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param entry body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Pain entry updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Pain entry not found"
// @Router /pain/{id} [patch]
func (pc *PainEntryController) UpdatePainEntry(c *gin.Context) {
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

	if raw, ok := body["pain_level"]; ok {
		level, isNumber := raw.(float64)
		if !isNumber || !models.ValidPainLevel(int(level)) {
			fieldErrors["pain_level"] = "Must be between 1 and 4."
		} else {
			data["pain_level"] = int(level)
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

	if err := pc.repo.Patch(uint(id), userID.(uint), data); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Pain entry not found",
				"error":   "No pain entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update pain entry",
			"error":   err.Error(),
		})
		return
	}

	entry, err := pc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve updated pain entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Pain entry updated successfully",
		"data":    entry,
	})
}

// DeletePainEntry godoc
// @Summary Delete a pain entry
// @Description Remove one of the authenticated user's pain entries
// @Tags pain
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Pain entry deleted successfully"
// @Failure 404 {object} map[string]interface{} "Pain entry not found"
// @Router /pain/{id} [delete]
func (pc *PainEntryController) DeletePainEntry(c *gin.Context) {
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

	if err := pc.repo.DeleteByIDAndUserID(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Pain entry not found",
				"error":   "No pain entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete pain entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Pain entry deleted successfully",
		"data":    nil,
	})
}

// SendPainEntryToPhysician godoc
// @Summary Forward a pain entry to the physician
// @Description Mark the entry as sent; calling it again is a no-op success
// @Tags pain
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Pain entry sent to physician"
// @Failure 404 {object} map[string]interface{} "Pain entry not found"
// @Router /pain/{id}/send [post]
func (pc *PainEntryController) SendPainEntryToPhysician(c *gin.Context) {
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

	if err := pc.repo.MarkSentToPhysician(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Pain entry not found",
				"error":   "No pain entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send pain entry",
			"error":   err.Error(),
		})
		return
	}

	if pc.publisher != nil {
		if err := pc.publisher.PublishEntryForwarded(userID.(uint), "pain", uint(id)); err != nil {
			log.Printf("Failed to publish pain entry forwarded event: %v", err)
		}
	}

	entry, err := pc.repo.FindByIDAndUserID(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve pain entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Pain entry sent to physician",
		"data":    entry,
	})
}
