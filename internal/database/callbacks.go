package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

const queryStartKey = "metrics:query_start"

func markStart(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func recordAfter(recorder MetricsRecorder, operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		startTime, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
	}
}

// RegisterMetricsCallbacks times every GORM operation. Raw statements, which
// carry the scope row locks, are reported as "row" (Raw+Scan) and "exec".
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()
	return errors.Join(
		cb.Query().Before("gorm:query").Register("metrics:query_before", markStart),
		cb.Query().After("gorm:query").Register("metrics:query_after", recordAfter(recorder, "select")),
		cb.Create().Before("gorm:create").Register("metrics:create_before", markStart),
		cb.Create().After("gorm:create").Register("metrics:create_after", recordAfter(recorder, "insert")),
		cb.Update().Before("gorm:update").Register("metrics:update_before", markStart),
		cb.Update().After("gorm:update").Register("metrics:update_after", recordAfter(recorder, "update")),
		cb.Delete().Before("gorm:delete").Register("metrics:delete_before", markStart),
		cb.Delete().After("gorm:delete").Register("metrics:delete_after", recordAfter(recorder, "delete")),
		cb.Row().Before("gorm:row").Register("metrics:row_before", markStart),
		cb.Row().After("gorm:row").Register("metrics:row_after", recordAfter(recorder, "row")),
		cb.Raw().Before("gorm:raw").Register("metrics:raw_before", markStart),
		cb.Raw().After("gorm:raw").Register("metrics:raw_after", recordAfter(recorder, "exec")),
	)
}

// StartDBStatsCollector publishes connection pool stats every interval until stop is called
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) (stop func()) {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}
