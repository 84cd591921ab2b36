package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/application/service"
	"github.com/oia-portal/docflow/internal/config"
	"github.com/oia-portal/docflow/internal/domain/doctype"
	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
	"github.com/oia-portal/docflow/internal/infrastructure/persistence/repository"
	"github.com/oia-portal/docflow/internal/infrastructure/persistence/sqlite"
	httpadapter "github.com/oia-portal/docflow/internal/interfaces/http"
	"github.com/oia-portal/docflow/pkg/database"
	"github.com/oia-portal/docflow/pkg/utils"
)

func main() {
	// Local overrides; absence is fine
	_ = gotenv.Load()

	configPath := os.Getenv("DOCFLOW_CONFIG")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting cooperation document portal",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Domain tables: built once, immutable afterwards
	registry := workflow.NewRegistry()
	doctype.RegisterAll(registry)
	resolver := rbac.NewResolver()

	// Persistence
	txManager := sqlite.NewDB(db.DB, logger)
	documentRepo := repository.NewDocumentRepository(db.DB, logger)
	historyRepo := repository.NewHistoryRepository(db.DB, logger)
	notificationRepo := repository.NewNotificationRepository(db.DB, logger)
	directory := repository.NewDirectoryRepository(db.DB, logger)

	// Application services
	serviceLogger := utils.NewSugarAdapter(logger)

	var notifier port.Notifier
	if cfg.Notification.Enabled {
		notifier = service.NewNotificationService(notificationRepo, serviceLogger)
	}

	transitionService := service.NewTransitionService(
		registry,
		resolver,
		documentRepo,
		historyRepo,
		directory,
		notifier,
		txManager,
		serviceLogger,
	)
	documentService := service.NewDocumentService(registry, documentRepo, serviceLogger)
	historyService := service.NewHistoryService(documentRepo, historyRepo, serviceLogger)

	server := httpadapter.NewServer(
		httpadapter.ServerConfig{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		transitionService,
		documentService,
		historyService,
		serviceLogger,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
