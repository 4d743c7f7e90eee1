package main

import (
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/lingoread/backend/internal/auth"
	"github.com/lingoread/backend/internal/cache"
	"github.com/lingoread/backend/internal/cli"
	"github.com/lingoread/backend/internal/config"
	"github.com/lingoread/backend/internal/database"
	"github.com/lingoread/backend/internal/logger"
	"github.com/lingoread/backend/internal/repositories"
	"github.com/lingoread/backend/internal/review"
	"github.com/lingoread/backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vocabctl: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "vocabctl: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "vocabctl: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Imports invalidate the summaries cached by the API
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	vocabularyRepo := repositories.NewVocabularyRepository(db, logger.Logger)
	settingsRepo := repositories.NewSettingsRepository(db, logger.Logger)
	progressCache := cache.NewProgressCache(rdb, cfg.Progress.CacheTTL, logger.Logger)

	app := &cli.App{
		Vocabulary: services.NewVocabularyService(vocabularyRepo, settingsRepo, nil, progressCache, logger.Logger),
		Review:     services.NewReviewService(vocabularyRepo, settingsRepo, review.NewScheduler(nil), nil, nil, logger.Logger),
		Tokens:     auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		Migrate: func(dir string) error {
			return database.Migrate(db, database.MigrationsPath(dir))
		},
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}
