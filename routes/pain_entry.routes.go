package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPainEntryRoutes(router *gin.Engine, painEntryController *controllers.PainEntryController) {
	painRoutes := router.Group("/pain")
	painRoutes.Use(middleware.AuthMiddleware())
	{
		painRoutes.POST("/", painEntryController.CreatePainEntry)
		painRoutes.GET("/", painEntryController.GetPainEntries)
		painRoutes.GET("/recent", painEntryController.GetRecentPainEntries)
		painRoutes.GET("/:id", painEntryController.GetPainEntryByID)
		painRoutes.PATCH("/:id", painEntryController.UpdatePainEntry)
		painRoutes.DELETE("/:id", painEntryController.DeletePainEntry)
		painRoutes.POST("/:id/send", painEntryController.SendPainEntryToPhysician)
	}
}
