package routes

import (
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDiaryEntryRoutes(router *gin.Engine, diaryEntryController *controllers.DiaryEntryController) {
	diaryRoutes := router.Group("/diary")
	diaryRoutes.Use(middleware.AuthMiddleware())
	{
		diaryRoutes.POST("/", diaryEntryController.CreateDiaryEntry)
		diaryRoutes.GET("/", diaryEntryController.GetDiaryEntries)
		diaryRoutes.GET("/recent", diaryEntryController.GetRecentDiaryEntries)
		diaryRoutes.GET("/:id", diaryEntryController.GetDiaryEntryByID)
		diaryRoutes.PATCH("/:id", diaryEntryController.UpdateDiaryEntry)
		diaryRoutes.DELETE("/:id", diaryEntryController.DeleteDiaryEntry)
		diaryRoutes.POST("/:id/send", diaryEntryController.SendDiaryEntryToPhysician)
	}
}
