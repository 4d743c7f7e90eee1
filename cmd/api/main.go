package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/lingoread/backend/docs"
	"github.com/lingoread/backend/internal/auth"
	"github.com/lingoread/backend/internal/cache"
	"github.com/lingoread/backend/internal/config"
	"github.com/lingoread/backend/internal/database"
	"github.com/lingoread/backend/internal/handlers"
	"github.com/lingoread/backend/internal/logger"
	"github.com/lingoread/backend/internal/middleware"
	"github.com/lingoread/backend/internal/repositories"
	"github.com/lingoread/backend/internal/review"
	"github.com/lingoread/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title LingoRead Vocabulary API
// @version 1.0
// @description API for saved vocabulary, spaced-repetition review and learning progress
// @termsOfService http://swagger.io/terms/

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting LingoRead API")

	// Connect to database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.Migrate(db, database.MigrationsPath(os.Getenv("MIGRATIONS_DIR"))); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	vocabularyRepo := repositories.NewVocabularyRepository(db, logger.Logger)
	activityRepo := repositories.NewActivityRepository(db, logger.Logger)
	progressRepo := repositories.NewProgressRepository(db, logger.Logger)
	settingsRepo := repositories.NewSettingsRepository(db, logger.Logger)
	progressCache := cache.NewProgressCache(rdb, cfg.Progress.CacheTTL, logger.Logger)

	// Initialize services
	activityService := services.NewActivityService(activityRepo, progressRepo, settingsRepo, progressCache, logger.Logger)
	vocabularyService := services.NewVocabularyService(vocabularyRepo, settingsRepo, activityService, progressCache, logger.Logger)
	reviewService := services.NewReviewService(vocabularyRepo, settingsRepo, review.NewScheduler(nil), activityService, progressCache, logger.Logger)
	progressService := services.NewProgressService(vocabularyRepo, activityRepo, progressRepo, settingsRepo, progressCache, logger.Logger)
	settingsService := services.NewSettingsService(settingsRepo, activityService, logger.Logger)

	// Initialize handlers
	languagesHandler := handlers.NewLanguagesHandler(logger.Logger)
	vocabularyHandler := handlers.NewVocabularyHandler(vocabularyService, logger.Logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	activityHandler := handlers.NewActivityHandler(activityService, logger.Logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger.Logger)

	// Initialize auth middleware
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := middleware.AuthMiddleware(tokenGenerator)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		languagesHandler.RegisterRoutes(r)

		// Learner endpoints (JWT protected)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			vocabularyHandler.RegisterRoutes(r)
			reviewHandler.RegisterRoutes(r)
			progressHandler.RegisterRoutes(r)
			activityHandler.RegisterRoutes(r)
			settingsHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
