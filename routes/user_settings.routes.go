package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserSettingsRoutes(router *gin.Engine, userSettingsController *controllers.UserSettingsController) {
	settingsRoutes := router.Group("/settings")
	settingsRoutes.Use(middleware.AuthMiddleware())
	{
		settingsRoutes.GET("/", userSettingsController.GetSettings)
		settingsRoutes.PATCH("/", userSettingsController.UpdateSettings)
		settingsRoutes.PATCH("/notifications", userSettingsController.UpdateNotificationSettings)
		settingsRoutes.PATCH("/health-app", userSettingsController.UpdateHealthAppSettings)
		settingsRoutes.PATCH("/community", userSettingsController.UpdateCommunitySettings)
	}
}
