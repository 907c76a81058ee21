package main

import (
	"context"
	"net/http"
	"os"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/repository"
	"food-ordering-api/routes"
	"food-ordering-api/seed"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		sugar.Fatalw("failed to load config", "error", err)
	}

	db, err := config.InitDB(cfg.Database.Path)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	sugar.Infow("database connected and migrated", "path", cfg.Database.Path)

	if cfg.Seed {
		if err := seed.Run(context.Background(), db); err != nil {
			sugar.Fatalw("failed to seed database", "error", err)
		}
		sugar.Info("seed data loaded")
	}

	cache := config.InitRedis(cfg.Redis)
	if cache != nil {
		sugar.Infow("catalog cache enabled", "addr", cfg.Redis.Addr)
	}

	repos := repository.New(db)
	auth := services.NewAuthService(repos.Users, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	catalog := services.NewCatalogService(repos.Users, repos.Restaurants, cache)
	orders := services.NewOrderService(repos.Users, repos.Restaurants, repos.Orders)
	payments := services.NewPaymentService(repos.Users, repos.PaymentMethods)
	h := handlers.New(auth, catalog, orders, payments, repos.Users)

	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, h)

	sugar.Infow("server starting", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
