// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rohansachinpatil/TEC-ECellMET/config"
	"github.com/rohansachinpatil/TEC-ECellMET/controllers"
	"github.com/rohansachinpatil/TEC-ECellMET/middlewares"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// 提交的 PDF 走静态路径下发
	r.Static("/uploads", config.C.UploadDir)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register-leader", controllers.RegisterLeader)
			authRoutes.POST("/register-member", controllers.RegisterMember)
			authRoutes.POST("/login", controllers.Login)
			authRoutes.GET("/me", middlewares.JWTAuthMiddleware(), controllers.GetMe)
		}

		taskRoutes := api.Group("/tasks")
		taskRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			taskRoutes.GET("", controllers.ListTasks)
			taskRoutes.GET("/:id", controllers.GetTask)
		}

		submissionRoutes := api.Group("/submissions")
		submissionRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			// 参赛方接口
			participant := middlewares.RoleAuthMiddleware(models.RoleLeader, models.RoleMember)
			submissionRoutes.POST("/:taskId", participant, controllers.SubmitTask)
			submissionRoutes.GET("", participant, controllers.GetAllMySubmissions)
			submissionRoutes.GET("/:taskId/me", participant, controllers.GetMySubmission)

			// 评审/管理员接口
			evaluator := middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleSuperAdmin, models.RoleEvaluator)
			submissionRoutes.GET("/task/:taskId", evaluator, controllers.GetSubmissionsByTask)
			submissionRoutes.PUT("/:id/grade", evaluator, controllers.GradeSubmission)
		}

		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/stats", controllers.GetStats)
			adminRoutes.GET("/teams", controllers.GetAllTeams)

			adminRoutes.POST("/phases", controllers.CreatePhase)
			adminRoutes.GET("/phases", controllers.GetPhases)
			adminRoutes.PUT("/phases/:id/activate", controllers.ActivatePhase)

			adminRoutes.POST("/tasks", controllers.CreateTask)
			adminRoutes.GET("/tasks", controllers.GetAllTasks)
		}

		api.GET("/leaderboard", controllers.GetLeaderboard)
	}

	return r
}
