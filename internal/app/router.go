package app

import (
	"kettolingo_backend/docs"
	"kettolingo_backend/internal/config"
	"kettolingo_backend/internal/middleware"
	"kettolingo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
	}

	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(cfg, repos.token))
	{
		auth.POST("/logout", c.auth.Logout)
		auth.GET("/protected", c.auth.Protected)

		auth.GET("/profile", c.user.GetProfile)
		auth.PUT("/profile", c.user.UpdateProfile)
		auth.POST("/user/avatar/upload", c.user.UploadAvatar)

		auth.GET("/languages", c.vocabulary.GetLanguages)
		auth.GET("/categories", c.vocabulary.GetCategories)
		auth.GET("/categories/:categoryId/words", c.vocabulary.GetWords)

		auth.GET("/quiz/:nativeId/:foreignId/:categoryId", c.quiz.Generate)
		auth.POST("/quiz/results", c.quiz.RecordResult)

		auth.GET("/progress", c.progress.GetProgress)
		auth.GET("/progress/summary", c.progress.GetSummary)
	}
}
