package controllers

import (
	"net/http"
	"strconv"
	"time"

	"symptomtracker/internal/services"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	service services.InsightsService
}

func NewInsightsController(service services.InsightsService) *InsightsController {
	return &InsightsController{service: service}
}

// GetHomeSummary godoc
// @Summary Get the home screen summary
// @Description Report today's logging status and the latest pain and wellness entries
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Home summary retrieved successfully"
// @Router /home [get]
func (ic *InsightsController) GetHomeSummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	summary, err := ic.service.HomeSummary(userID.(uint), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build home summary",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Home summary retrieved successfully",
		"data":    summary,
	})
}

// GetPainTrend godoc
// @Summary Get the pain trend
// @Description Return one chart point per pain entry within the window, oldest first
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window size in days" default(30)
// @Success 200 {object} map[string]interface{} "Pain trend retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /trends/pain [get]
func (ic *InsightsController) GetPainTrend(c *gin.Context) {
	ic.trend(c, ic.service.PainTrend, "Pain trend retrieved successfully")
}

// GetWellnessTrend godoc
// @Summary Get the wellness trend
// @Description Return one chart point per wellness entry within the window, oldest first
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window size in days" default(30)
// @Success 200 {object} map[string]interface{} "Wellness trend retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /trends/wellness [get]
func (ic *InsightsController) GetWellnessTrend(c *gin.Context) {
	ic.trend(c, ic.service.WellnessTrend, "Wellness trend retrieved successfully")
}

func (ic *InsightsController) trend(c *gin.Context, fetch func(uint, int, time.Time) ([]services.TrendPoint, error), okMessage string) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
			"error":   "User ID not found in token",
		})
		return
	}

	windowDays := services.DefaultTrendWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"errors":  gin.H{"days": "Must be a positive integer."},
			})
			return
		}
		windowDays = parsed
	}

	points, err := fetch(userID.(uint), windowDays, time.Now())
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
			"message": "Failed to retrieve trend",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": okMessage,
		"data":    points,
	})
}
