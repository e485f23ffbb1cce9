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
	"socialhub/pkg/queue"
	interactionHTTP "socialhub/services/interaction/internal/controller/http"
	"socialhub/services/interaction/internal/repo/persistent"
	"socialhub/services/interaction/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "socialhub/services/interaction/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	likeRepo := persistent.NewLikeRepository(db)
	followRepo := persistent.NewFollowRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	profileRepo := persistent.NewProfileRepository(db)

	var publisher usecase.NotificationPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	// Initialize use cases
	interactionUseCase := usecase.NewInteractionUseCase(likeRepo, followRepo, postRepo, commentRepo, profileRepo, publisher, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, profileRepo, publisher, log)

	// Initialize HTTP handlers
	interactionHandler := interactionHTTP.NewInteractionHandler(interactionUseCase, log)
	commentHandler := interactionHTTP.NewCommentHandler(commentUseCase, log)

	// Setup router
	r := gin.Default()

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
		api.GET("/interactions/posts/:post_id/comments", commentHandler.ListComments)
		api.GET("/interactions/posts/:post_id/comments/count", commentHandler.CountComments)
		api.GET("/interactions/users/:user_id/followers", interactionHandler.GetFollowers)
		api.GET("/interactions/users/:user_id/following", interactionHandler.GetFollowing)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.POST("/interactions/posts/:post_id/like", interactionHandler.LikePost)
		protected.GET("/interactions/posts/:post_id/like", interactionHandler.GetPostLike)
		protected.POST("/interactions/comments/:comment_id/like", interactionHandler.LikeComment)
		protected.GET("/interactions/comments/:comment_id/like", interactionHandler.GetCommentLike)
		protected.POST("/interactions/users/:user_id/follow", interactionHandler.Follow)
		protected.GET("/interactions/users/:user_id/follow", interactionHandler.GetFollow)
		protected.POST("/interactions/posts/:post_id/comments", commentHandler.CreateComment)
		protected.DELETE("/interactions/comments/:comment_id", commentHandler.DeleteComment)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Interaction service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down interaction service...")

	// The context is used to inform the server it has 5 seconds to finish
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

	// Close Redis connection if it was initialized
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection if it was initialized
	if queueClient != nil {
		queueClient.Close()
	}

	log.Info("Interaction service exited")
}
