package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingodeck/internal/api"
	"lingodeck/internal/config"
	"lingodeck/internal/handler"
	"lingodeck/internal/migration"
	"lingodeck/internal/repository/postgres"
	"lingodeck/internal/service"
	"lingodeck/internal/translator"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting lingodeck")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Schema and migrations dir are shared with cmd/migrate
	migrationCfg, err := config.LoadMigration("")
	if err != nil {
		logger.Fatal("Failed to load migration config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully", zap.String("schema", migrationCfg.Schema))

	dsn, err := migrationCfg.DSN()
	if err != nil {
		logger.Fatal("Invalid database configuration", zap.Error(err))
	}

	// Connect to database with retries
	db, err := postgres.Connect(dsn, postgres.DefaultConnectOptions, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, migrationCfg, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	deckRepo := postgres.NewDeckRepo(db)
	cardRepo := postgres.NewFlashcardRepo(db)
	translationRepo := postgres.NewTranslationRepo(db)

	// Initialize translator
	provider := translator.NewHuggingFace(cfg.Translator.URL, cfg.Translator.Token, logger)
	cached := translator.NewCached(provider, translationRepo, logger)

	// Initialize services
	translationService := service.NewTranslationService(cached, logger)
	flashcardService := service.NewFlashcardService(cardRepo, logger)
	deckService := service.NewDeckService(deckRepo, userRepo, logger)
	statsService := service.NewStatsService(translationRepo, cfg.CacheRetentionDays, logger)

	// HTTP API
	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: api.NewServer(translationService, flashcardService, deckService, db, logger).
			Handler(cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Telegram bot is optional
	var bot *tele.Bot
	if cfg.BotEnabled() {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		authService := service.NewAuthService(userRepo, cfg.BotPassword)
		h := handler.NewHandler(bot, authService, translationService, flashcardService, deckService, logger)
		h.RegisterHandlers()

		logger.Info("Telegram bot initialized")
	}

	// Start cleanup job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runCleanupJob(ctx, statsService, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	if bot != nil {
		go func() {
			logger.Info("Bot started successfully")
			bot.Start()
		}()
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, stopping...")
	case err := <-serverErr:
		logger.Error("HTTP server failed", zap.Error(err))
	}

	// Graceful shutdown
	cancel()
	if bot != nil {
		bot.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	err = multierr.Combine(
		srv.Shutdown(shutdownCtx),
		db.Close(),
	)
	if err != nil {
		logger.Error("Shutdown finished with errors", zap.Error(err))
		return
	}

	logger.Info("Stopped gracefully")
}

// runMigrations applies pending migrations in the configured schema
func runMigrations(db *sql.DB, cfg *config.MigrationConfig, logger *zap.Logger) error {
	m, err := migration.New(db, migration.Options{
		Dir:     cfg.Out,
		Schema:  cfg.Schema,
		Verbose: cfg.Verbose,
	}, logger)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		return err
	}
	// Closing the migrator would also close the shared pool, so it stays open
	return nil
}

// runCleanupJob runs periodic cleanup of old data
func runCleanupJob(ctx context.Context, statsService *service.StatsService, logger *zap.Logger) {
	// Run cleanup once at startup
	if err := statsService.CleanupOldData(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	// Then run every 24 hours
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := statsService.CleanupOldData(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
