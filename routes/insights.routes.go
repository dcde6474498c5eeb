package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterInsightsRoutes(router *gin.Engine, insightsController *controllers.InsightsController) {
	insightsRoutes := router.Group("/")
	insightsRoutes.Use(middleware.AuthMiddleware())
	{
		insightsRoutes.GET("/home", insightsController.GetHomeSummary)
		insightsRoutes.GET("/trends/pain", insightsController.GetPainTrend)
		insightsRoutes.GET("/trends/wellness", insightsController.GetWellnessTrend)
	}
}
