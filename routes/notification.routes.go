package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(router *gin.Engine, notificationController *controllers.NotificationController) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware())
	{
		notificationRoutes.POST("/", notificationController.CreateNotification)
		notificationRoutes.GET("/", notificationController.GetNotifications)
		notificationRoutes.GET("/:id", notificationController.GetNotificationByID)
		notificationRoutes.PATCH("/:id", notificationController.UpdateNotification)
		notificationRoutes.DELETE("/:id", notificationController.DeleteNotification)
	}
}
