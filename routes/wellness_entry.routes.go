package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWellnessEntryRoutes(router *gin.Engine, wellnessEntryController *controllers.WellnessEntryController) {
	wellnessRoutes := router.Group("/wellness")
	wellnessRoutes.Use(middleware.AuthMiddleware())
	{
		wellnessRoutes.POST("/", wellnessEntryController.CreateWellnessEntry)
		wellnessRoutes.GET("/", wellnessEntryController.GetWellnessEntries)
		wellnessRoutes.GET("/recent", wellnessEntryController.GetRecentWellnessEntries)
		wellnessRoutes.GET("/:id", wellnessEntryController.GetWellnessEntryByID)
		wellnessRoutes.PATCH("/:id", wellnessEntryController.UpdateWellnessEntry)
		wellnessRoutes.DELETE("/:id", wellnessEntryController.DeleteWellnessEntry)
		wellnessRoutes.POST("/:id/send", wellnessEntryController.SendWellnessEntryToPhysician)
	}
}
