package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bookhive/database"
	"bookhive/internal/api/handler"
	"bookhive/internal/api/middleware"
	"bookhive/internal/api/repository"
	"bookhive/internal/api/service"
	"bookhive/internal/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	denylist := repository.NewTokenDenylist(cfg.RedisURL, cfg.RedisPassword)

	// Services
	authService := service.NewAuthService(userRepo, denylist, cfg)
	bookService := service.NewBookService(bookRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	bookHandler := handler.NewBookHandler(bookService, logger)
	reviewHandler := handler.NewReviewHandler(reviewService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend running, all good!")
	})

	authRequired := middleware.AuthMiddleware(authService)
	rateLimit := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	api := r.Group("/api")
	authHandler.RegisterRoutes(api, rateLimit, authRequired)
	bookHandler.RegisterRoutes(api, authRequired)
	reviewHandler.RegisterRoutes(api, authRequired)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Server running", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
