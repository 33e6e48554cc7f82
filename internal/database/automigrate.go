package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// boardModels lists parents before children so foreign keys resolve
func boardModels() []modelInfo {
	return []modelInfo{
		{&domain.Board{}, "boards"},
		{&domain.Column{}, "board_columns"},
		{&domain.Card{}, "cards"},
	}
}

// AutoMigrate creates or updates the board, column and card tables with their
// (parent, position) indexes
func AutoMigrate(db *gorm.DB) error {
	var models []interface{}
	for _, m := range boardModels() {
		models = append(models, m.model)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate migrates one table at a time and logs whether it existed
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	models := boardModels()

	logger.Info("Starting safe auto-migration",
		zap.Int("total_models", len(models)),
	)

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if tableExists {
			logger.Info("Table exists, updating schema only",
				zap.String("table", m.tableName),
			)
		} else {
			logger.Info("Table does not exist, creating new table",
				zap.String("table", m.tableName),
			)
		}

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Successfully migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed successfully",
		zap.Int("tables_migrated", len(models)),
	)

	return nil
}

// SafeAutoMigrateWithRetry runs SafeAutoMigrate up to maxRetries times with a linear backoff
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	logger.Info("Starting auto-migration with retry logic",
		zap.Int("max_retries", maxRetries),
	)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		logger.Info("Migration attempt",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
		)

		err = SafeAutoMigrate(db, logger)
		if err == nil {
			logger.Info("Migration completed successfully",
				zap.Int("attempt", attempt),
			)
			return nil
		}

		if attempt < maxRetries {
			backoffDuration := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying...",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoffDuration),
				zap.Error(err),
			)
			time.Sleep(backoffDuration)
		} else {
			logger.Error("Migration failed after all retry attempts",
				zap.Int("total_attempts", maxRetries),
				zap.Error(err),
			)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
