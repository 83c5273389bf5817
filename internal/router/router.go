package router

import (
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	categoryHandler := handlers.NewCategoryHandler()
	userHandler := handlers.NewUserHandler()
	reportHandler := handlers.NewReportHandler()
	adminHandler := handlers.NewAdminHandler()

	api := r.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/posts", postHandler.List)
	api.GET("/posts/:postId", postHandler.Get)
	api.GET("/posts/:postId/comments", commentHandler.List)
	api.GET("/comments/:id/replies", commentHandler.Replies)
	api.GET("/categories", categoryHandler.List)

	// Protected routes
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/auth/me", authHandler.Me)
		authorized.POST("/auth/logout", authHandler.Logout)

		authorized.POST("/posts", postHandler.Create)
		authorized.PUT("/posts/:postId", postHandler.Update)
		authorized.DELETE("/posts/:postId", postHandler.Delete)
		authorized.POST("/posts/:postId/comments", commentHandler.Create)

		authorized.PUT("/comments/:id", commentHandler.Update)
		authorized.DELETE("/comments/:id", commentHandler.Delete)
		authorized.PUT("/comments/:id/like", commentHandler.ToggleLike)
		authorized.POST("/comments/:id/report", commentHandler.Report)

		// Ownership checked in the handler: users may edit themselves.
		authorized.PUT("/users/:id", userHandler.Update)
		authorized.DELETE("/users/:id", userHandler.Delete)
	}

	// Admin routes
	admin := api.Group("/")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.GET("/users", userHandler.List)
		admin.POST("/users", userHandler.Create)

		admin.GET("/reports", reportHandler.List)
		admin.GET("/reports/status/:status", reportHandler.ListByStatus)
		admin.PUT("/reports/:id", reportHandler.Update)
		admin.DELETE("/reports/:id", reportHandler.Delete)

		admin.GET("/admin/dashboard", adminHandler.Dashboard)
		admin.GET("/admin/comments/reported", adminHandler.ReportedComments)
		admin.POST("/admin/comments/:id/handle", adminHandler.HandleReportedComment)
	}
}
