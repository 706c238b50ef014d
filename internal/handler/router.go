package handler

import (
	"net/http"

	"WeightLossDataGenerator/internal/config"
	"WeightLossDataGenerator/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires every route of the API onto a new gin engine.
func SetupRouter(cfg config.Config, datasets *DatasetHandler) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Invite-Code")
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Dataset-Seed", "X-Dataset-Rows", "X-Generation-ID"}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/signup", middleware.InviteCodeMiddleware(cfg.SignupInviteCode), Signup)
	router.POST("/login", Login)

	limiter := middleware.RateLimitMiddleware(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	datasetsGroup := router.Group("/api/datasets")
	{
		datasetsGroup.GET("/schema", datasets.Schema)
		datasetsGroup.GET("/preview", limiter, datasets.PreviewDataset)
		datasetsGroup.GET("/download", limiter, middleware.OptionalAuthMiddleware(), datasets.DownloadDataset)
		datasetsGroup.POST("", limiter, middleware.OptionalAuthMiddleware(), datasets.CreateDataset)
	}

	protected := router.Group("/api").Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", Profile)
		protected.GET("/history", GetHistory)
		protected.GET("/history/:id/download", DownloadGeneration)
	}

	router.GET("/ws/generate", limiter, datasets.HandleGenerate)
	return router
}
