package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, userProfileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("/", userProfileController.GetProfile)
		profileRoutes.PUT("/", userProfileController.UpdateProfile)
		profileRoutes.PATCH("/emergency-contact", userProfileController.UpdateEmergencyContact)
	}
}
