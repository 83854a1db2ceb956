package app

import (
	"naira_backend/docs"
	"naira_backend/internal/config"
	"naira_backend/internal/middleware"
	"naira_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"

	// Swagger文档
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus指标
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共接口
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/motivation", c.motivation.GetMotivation)
		// 关键词快捷问答，无需登录
		public.POST("/chat/send", c.chat.Send)
	}

	// 需要认证的接口
	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		auth.GET("/profile", c.auth.GetProfile)
		auth.PUT("/user/profile", c.user.UpdateProfile)
		auth.POST("/user/avatar/upload", c.user.UploadAvatar)

		auth.POST("/chat/message", c.chat.ProcessMessage)
		auth.GET("/chat/conversations", c.chat.GetConversations)
		auth.GET("/chat/history/:conversationId", c.chat.GetHistory)

		auth.GET("/tasks", c.task.ListTasks)
		auth.POST("/tasks", c.task.CreateTask)
		auth.PUT("/tasks/:id", c.task.UpdateTask)
		auth.DELETE("/tasks/:id", c.task.DeleteTask)
		auth.POST("/tasks/:id/toggle", c.task.ToggleTask)

		auth.GET("/schedules", c.schedule.ListSchedules)
		auth.POST("/schedules", c.schedule.CreateSchedule)
		auth.DELETE("/schedules/:id", c.schedule.DeleteSchedule)

		auth.GET("/study-sessions", c.studySession.ListSessions)
		auth.POST("/study-sessions", c.studySession.StartSession)
		auth.POST("/study-sessions/:id/end", c.studySession.EndSession)

		auth.GET("/dashboard", c.dashboard.GetOverview)

		lms := auth.Group("/lms/:platform")
		{
			lms.POST("/authenticate", c.lms.Authenticate)
			lms.GET("/courses", c.lms.GetCourses)
			lms.GET("/assignments", c.lms.GetAssignments)
		}
	}
}
