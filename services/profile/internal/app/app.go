package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialhub/pkg/config"
	"socialhub/pkg/jwt"
	"socialhub/pkg/logger"
	"socialhub/pkg/middleware"
	"socialhub/pkg/s3"
	profileHTTP "socialhub/services/profile/internal/controller/http"
	"socialhub/services/profile/internal/entity"
	"socialhub/services/profile/internal/repo/persistent"
	"socialhub/services/profile/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "socialhub/services/profile/docs" // Swagger docs
)

const usernameCacheSize = 10000

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	profileRepo := persistent.NewProfileRepository(db)

	// Initialize use cases
	usernameCache := usecase.NewUsernameCache(usernameCacheSize, cfg.UsernameCacheTTL)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, usernameCache, s3Client, cfg.AvatarsBucket, log)

	// Initialize HTTP handlers
	profileHandler := profileHTTP.NewProfileHandler(profileUseCase, log)

	// Setup router
	r := gin.Default()
	r.MaxMultipartMemory = entity.MaxAvatarSize + 1<<20

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))

	// Public routes
	{
		api.GET("/profiles/id/:id", profileHandler.GetByID)
		api.GET("/profiles/:username", profileHandler.GetByUsername)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/profiles/me", profileHandler.GetMe)
		protected.GET("/profiles/me/username", profileHandler.GetMyUsername)
		protected.PUT("/profiles/me", profileHandler.UpdateMe)
		protected.POST("/profiles/me/avatar", profileHandler.UploadAvatar)
		protected.DELETE("/profiles/me/avatar", profileHandler.DeleteAvatar)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Profile service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down profile service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	log.Info("Profile service exited")
}
