package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"todoserver/internal/config"
	"todoserver/internal/platform/logger"
	"todoserver/internal/platform/postgres"
	"todoserver/internal/service"
	"todoserver/internal/service/auth"
)

// application holds the long-lived dependencies of the server process:
// configuration, the logger, the database handle, and the wired services.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	jwtService  auth.JWTService
	authService service.AuthService
	taskService service.TaskService
}

// newApplication loads configuration, sets up logging, connects to the
// database, runs migrations, and wires the service graph.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Auth.UsesDefaultSecret() {
		log.Warn("no JWT secret configured, using the built-in development secret; " +
			"set TODO_AUTH_JWT_SECRET before deploying")
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		closeQuietly(db, log)
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeQuietly(db, log)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	accountStore := postgres.NewAccountStore(db, log)
	taskStore := postgres.NewTaskStore(db, log)

	return &application{
		config:      cfg,
		logger:      log,
		db:          db,
		jwtService:  jwtService,
		authService: service.NewAuthService(accountStore, hasher, jwtService, log),
		taskService: service.NewTaskService(taskStore, log),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeQuietly(app.db, app.logger)
}

func closeQuietly(db *sql.DB, log *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Error("failed to close database", "error", err)
	}
}
