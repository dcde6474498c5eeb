package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutesPublic := router.Group("/auth")
	{
		authRoutesPublic.POST("/register", authController.Register)
		authRoutesPublic.POST("/login", authController.Login)
		authRoutesPublic.POST("/refresh", authController.RefreshToken)
	}
	authRoutesPrivate := router.Group("/auth")
	authRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		authRoutesPrivate.POST("/logout", authController.Logout)
		authRoutesPrivate.PUT("/change-password", authController.ChangePassword)
		authRoutesPrivate.DELETE("/account", authController.DeleteAccount)
	}
}
