package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tonygradient/tony-board/internal/adapter/http/handlers"
	"github.com/tonygradient/tony-board/internal/adapter/http/middleware"
	"github.com/tonygradient/tony-board/internal/config"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Task     *handlers.TaskHandler
	Comment  *handlers.CommentHandler
	Seen     *handlers.SeenHandler
	Activity *handlers.ActivityHandler
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())

	api.GET("/health", h.Health.CheckHealth)
	api.GET("/health/report", h.Health.CheckHealthReport)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/tasks", h.Task.ListTasks)
		protected.POST("/tasks", h.Task.CreateTask)
		protected.GET("/tasks/calendar", h.Task.TasksByDateRange)
		protected.GET("/tasks/:id", h.Task.GetTask)
		protected.PATCH("/tasks/:id", h.Task.UpdateTask)
		protected.DELETE("/tasks/:id", h.Task.DeleteTask)
		protected.GET("/tasks/:id/comments", h.Comment.ListComments)
		protected.POST("/tasks/:id/comments", h.Comment.CreateComment)
		protected.POST("/tasks/:id/seen", h.Seen.MarkSeen)
		protected.GET("/unread", h.Seen.UnreadCount)
		protected.GET("/activities", h.Activity.ListActivities)
		protected.POST("/activities", h.Activity.RecordActivity)
		protected.GET("/activities/stats", h.Activity.ActivityStats)
		protected.GET("/search", h.Task.SearchTasks)
	}
}
