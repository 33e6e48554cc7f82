// @title           Kanban Board API
// @version         1.0
// @description     Boards, ordered columns and ordered cards with drag-and-drop persistence

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "kanban-board-api/docs" // Swagger docs import

	"kanban-board-api/internal/config"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/job"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/router"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Kanban Board API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStartup()

	db, err := database.Connect(startupCtx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, 10, 5*time.Second, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	if cfg.Database.AutoMigrate {
		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	stopDBStats := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer stopDBStats()

	businessCollector := metrics.NewBusinessMetricsCollector(db, m, logger, 60*time.Second)
	businessCollector.Start()
	defer businessCollector.Stop()
	logger.Info("Metrics initialized")

	// Realtime broker: Redis fans events out across replicas, memory serves a single process
	redisClient, err := database.NewRedis(startupCtx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	var broker realtime.Broker = realtime.NewMemoryBroker(logger)
	if redisClient != nil {
		defer redisClient.Close()
		broker = realtime.NewRedisBroker(redisClient, m, logger)
		logger.Info("Realtime events published through Redis")
	}

	// Position consistency audit
	scheduler := job.NewScheduler(logger)
	if cfg.Jobs.ConsistencySchedule != "" {
		consistencyJob := job.NewConsistencyJob(repository.NewPositionAuditRepository(db), m, logger, cfg.Jobs.RepairTies)
		if err := scheduler.Add("position-consistency", cfg.Jobs.ConsistencySchedule, consistencyJob); err != nil {
			logger.Fatal("Invalid consistency schedule", zap.Error(err))
		}
	}
	scheduler.Start()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Logger:         logger,
		JWTSecret:      cfg.JWT.Secret,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        m,
		Redis:          redisClient,
		Broker:         broker,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Kanban Board API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	scheduler.Stop(ctx)

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
