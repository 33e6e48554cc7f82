package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan struct{}
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger, interval time.Duration) *BusinessMetricsCollector {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(interval),
		done:    make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		// collect once right away
		c.collect()

		// then on every tick
		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	close(c.done)
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Count boards
	var boardCount int64
	if err := c.db.WithContext(ctx).Table("boards").Count(&boardCount).Error; err != nil {
		c.logger.Error("Failed to count boards", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(boardCount)
	}

	var columnCount int64
	if err := c.db.WithContext(ctx).Table("board_columns").Count(&columnCount).Error; err != nil {
		c.logger.Error("Failed to count columns", zap.Error(err))
	} else {
		c.metrics.SetColumnsTotal(columnCount)
	}

	var cardCount int64
	if err := c.db.WithContext(ctx).Table("cards").Count(&cardCount).Error; err != nil {
		c.logger.Error("Failed to count cards", zap.Error(err))
	} else {
		c.metrics.SetCardsTotal(cardCount)
	}
}
