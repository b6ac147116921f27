package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"transaction_system/internal/api"        // Custom package for API handlers
	"transaction_system/internal/config"     // Custom package for configuration
	"transaction_system/internal/domain"     // Operation contexts
	"transaction_system/internal/middleware" // Custom package for middleware
	"transaction_system/internal/service"    // Transaction lifecycle service
	"transaction_system/internal/store"      // Transaction store
	"transaction_system/internal/utils"      // Redis-backed view cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire the lifecycle service over the store and the view cache
	svc := service.NewTransactionService(
		store.NewGormStore(db),
		utils.NewTransactionCache(redisClient),
	)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(db))            // Registration endpoint
	r.GET("/user", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Transaction routes (protected by JWT)
	txGroup := r.Group("/transaction")
	txGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	txGroup.POST("/create", api.CreateTransactionHandler(svc))                              // Create endpoint
	txGroup.PUT("/update", api.UpdateTransactionHandler(svc))                               // Basic-info update endpoint
	txGroup.POST("/approve", api.HandleTransactionHandler(svc, domain.ContextApprove))      // Approve endpoint
	txGroup.POST("/reject", api.HandleTransactionHandler(svc, domain.ContextReject))        // Reject endpoint
	txGroup.POST("/cancel", api.HandleTransactionHandler(svc, domain.ContextCancel))        // Cancel endpoint
	txGroup.GET("/:id", api.GetTransactionHandler(svc))                                     // Lookup endpoint
	txGroup.DELETE("/:id", middleware.AdminOnlyMiddleware(db), api.DeleteTransactionHandler(svc)) // Delete endpoint, admin only
	txGroup.POST("/search", api.SearchTransactionHandler(svc))                              // Search endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
