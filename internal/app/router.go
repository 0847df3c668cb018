package app

import (
	"pathfinder_backend/docs"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/middleware"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/login", c.auth.Login)
			auth.POST("/verify-otp", c.auth.VerifyOTP)
		}

		assessments := public.Group("/assessments")
		{
			assessments.GET("", c.assessment.List)
			assessments.GET("/featured", c.assessment.ListFeatured)
			assessments.GET("/category/:category", c.assessment.ListByCategory)
			assessments.GET("/:id", c.assessment.Get)
			assessments.POST("/:id/calculate", c.assessment.Calculate)
			assessments.POST("/:id/sessions", c.session.Start)
		}

		sessions := public.Group("/sessions")
		{
			sessions.GET("/:sessionId", c.session.Get)
			sessions.POST("/:sessionId/answers", c.session.SaveAnswers)
			sessions.POST("/:sessionId/submit", c.session.Submit)
			sessions.POST("/:sessionId/abandon", c.session.Abandon)
		}

		blog := public.Group("/blog")
		{
			blog.GET("", c.blog.List)
			blog.GET("/featured", c.blog.ListFeatured)
			blog.GET("/categories", c.blog.Categories)
			blog.GET("/category/:category", c.blog.ListByCategory)
			blog.GET("/search", c.blog.Search)
			blog.GET("/:slug", c.blog.Get)
		}

		subscribers := public.Group("/subscribers")
		{
			subscribers.POST("", c.subscriber.Subscribe)
			subscribers.POST("/subscribe", c.subscriber.Subscribe)
			subscribers.POST("/unsubscribe", c.subscriber.Unsubscribe)
		}

		public.POST("/contact", c.contact.Submit)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin, model.Editor))
	{
		admin.GET("/profile", c.auth.GetProfile)

		assessments := admin.Group("/assessments")
		{
			assessments.GET("", c.adminAssessment.List)
			assessments.POST("", c.adminAssessment.Create)
			assessments.PUT("/:id", c.adminAssessment.Update)
			assessments.DELETE("/:id", c.adminAssessment.Delete)
			assessments.PUT("/:id/sections", c.adminAssessment.UpsertSection)
			assessments.DELETE("/:id/sections/:sectionId", c.adminAssessment.DeleteSection)
			assessments.POST("/:id/test-scoring", c.adminAssessment.TestScoring)
		}

		blog := admin.Group("/blog")
		{
			blog.GET("", c.blog.AdminList)
			blog.POST("", c.blog.Create)
			blog.PUT("/:id", c.blog.Update)
			blog.DELETE("/:id", c.blog.Delete)
			blog.POST("/attachments", c.blog.UploadAttachment)
		}

		admin.GET("/subscribers", c.subscriber.List)
		admin.GET("/contact", c.contact.List)
		admin.POST("/contact/:id/read", c.contact.MarkRead)
	}
}
