package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mailtriage/internal/classifier"
	"mailtriage/internal/notify"
	"mailtriage/internal/server"
	"mailtriage/internal/storage"
	"mailtriage/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env file if exists (for local development)
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize feedback storage
	var store storage.FeedbackStore
	switch cfg.Storage.Backend {
	case "postgres":
		logger.Info("Using PostgreSQL feedback storage")
		store, err = storage.NewPostgresStore(storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	case "memory":
		logger.Info("Using in-memory feedback storage")
		store = storage.NewMemoryStore()
	default:
		logger.Info("Using file feedback storage", zap.String("path", cfg.Storage.FeedbackFile))
		store = storage.NewFileStore(cfg.Storage.FeedbackFile)
	}
	defer store.Close()

	// Initialize the model gateway
	gateway, err := classifier.NewOpenAIGateway(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to initialize model gateway", zap.Error(err))
	}

	clf := classifier.NewService(gateway, logger)

	// Review notifications are optional
	var notifier notify.Notifier = notify.Noop{}
	if cfg.Telegram.Token != "" {
		tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID, logger)
		if err != nil {
			logger.Fatal("Failed to initialize telegram notifier", zap.Error(err))
		}
		notifier = tg
		logger.Info("Telegram review notifications enabled")
	}

	srv := server.New(clf, store, notifier, cfg.Server.Version, logger)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server")
		if err := srv.Shutdown(); err != nil {
			logger.Error("Error shutting down", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Server.Port
	logger.Info("Starting server", zap.String("addr", addr))
	if err := srv.Listen(addr); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
