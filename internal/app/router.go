package app

import (
	"pathfinder_backend/docs"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/middleware"
	"pathfinder_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// Catalog is readable without an account.
		public.GET("/tech-fields", c.catalog.ListFields)
		public.GET("/tech-fields/:field_id/simulations", c.catalog.ListSimulationsByField)
		public.GET("/simulations", c.catalog.ListSimulations)
		public.GET("/simulations/:simulation_id", c.catalog.GetSimulation)
		public.GET("/simulations/:simulation_id/file", c.catalog.GetSimulationFile)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.POST("/simulations/submit", c.submission.Submit)
		authGroup.GET("/submissions", c.submission.History)
	}

	admin := router.Group("/api/admin")
	{
		admin.POST("/init-tech-fields", c.admin.InitFields)
		admin.POST("/init-simulations", c.admin.InitSimulations)
		admin.POST("/merge-simulation-questions", c.admin.MergeQuestions)
	}
}
