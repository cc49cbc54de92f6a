package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/itai/estagios/internal/app/controllers"
	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	processController *controllers.SelectionProcessController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/login", authController.Login)

	// --- Student routes ---
	students := router.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	{
		// Self-lookup, any authenticated role
		students.GET("/profile", studentController.GetProfile)
		students.GET("/token", studentController.GetByToken)
		students.PUT("/", studentController.UpdateProfile)

		// Bulk listing is admin only
		studentsAdmin := students.Group("")
		studentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			studentsAdmin.GET("/", studentController.ListStudents)
		}
	}

	// --- Selection process routes ---
	processes := router.Group("/selection-processes")
	processes.Use(authMiddleware.JWTAuth())
	{
		processes.GET("/", processController.List)
		processes.GET("/:id", processController.GetByID)

		processesAdmin := processes.Group("")
		processesAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			processesAdmin.POST("/", processController.Create)
			processesAdmin.PUT("/:id/status", processController.UpdateStatus)
			processesAdmin.POST("/:id/students", processController.EnrollStudent)
		}
	}

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, dto.SuccessResponse{Message: "pong"})
	})
}
