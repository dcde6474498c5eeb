package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPhysicianInfoRoutes(router *gin.Engine, physicianInfoController *controllers.PhysicianInfoController) {
	physicianRoutes := router.Group("/physician")
	physicianRoutes.Use(middleware.AuthMiddleware())
	{
		physicianRoutes.GET("/", physicianInfoController.GetPhysicianInfo)
		physicianRoutes.POST("/", physicianInfoController.CreatePhysicianInfo)
		physicianRoutes.PATCH("/", physicianInfoController.UpdatePhysicianInfo)
		physicianRoutes.DELETE("/", physicianInfoController.DeletePhysicianInfo)
	}
}
