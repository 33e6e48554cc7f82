package database

import (
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// mockMetricsRecorder is a mock implementation of MetricsRecorder for testing
type mockMetricsRecorder struct {
	mu        sync.Mutex
	queries   []queryRecord
	dbStats   []sql.DBStats
	statsCall int
}

type queryRecord struct {
	operation string
	table     string
	duration  time.Duration
	err       error
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, queryRecord{
		operation: operation,
		table:     table,
		duration:  duration,
		err:       err,
	})
}

func (m *mockMetricsRecorder) UpdateDBStats(stats interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if dbStats, ok := stats.(sql.DBStats); ok {
		m.dbStats = append(m.dbStats, dbStats)
		m.statsCall++
	}
}

func (m *mockMetricsRecorder) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = nil
}

func (m *mockMetricsRecorder) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsCall
}

// setupTestDB creates a migrated in-memory SQLite database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := New(Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, AutoMigrate(db), "Failed to migrate test database")
	return db
}

func seedBoard(t *testing.T, db *gorm.DB) *domain.Board {
	t.Helper()
	board := &domain.Board{Name: "Sprint"}
	require.NoError(t, db.Create(board).Error)
	return board
}

func TestRegisterMetricsCallbacks_Operations(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		run       func(t *testing.T, db *gorm.DB, board *domain.Board) error
	}{
		{
			name:      "success: select is recorded",
			operation: "select",
			table:     "boards",
			run: func(t *testing.T, db *gorm.DB, board *domain.Board) error {
				var found domain.Board
				return db.First(&found, "id = ?", board.ID).Error
			},
		},
		{
			name:      "success: insert is recorded",
			operation: "insert",
			table:     "board_columns",
			run: func(t *testing.T, db *gorm.DB, board *domain.Board) error {
				return db.Create(&domain.Column{BoardID: board.ID, Name: "Todo"}).Error
			},
		},
		{
			name:      "success: update is recorded",
			operation: "update",
			table:     "boards",
			run: func(t *testing.T, db *gorm.DB, board *domain.Board) error {
				return db.Model(board).Update("name", "Renamed").Error
			},
		},
		{
			name:      "success: delete is recorded",
			operation: "delete",
			table:     "boards",
			run: func(t *testing.T, db *gorm.DB, board *domain.Board) error {
				return db.Delete(board).Error
			},
		},
		{
			name:      "success: raw scan is recorded as row",
			operation: "row",
			table:     "unknown",
			run: func(t *testing.T, db *gorm.DB, board *domain.Board) error {
				var ids []string
				return db.Raw("SELECT id FROM boards WHERE id = ?", board.ID).Scan(&ids).Error
			},
		},
		{
			name:      "success: exec is recorded",
			operation: "exec",
			table:     "unknown",
			run: func(t *testing.T, db *gorm.DB, board *domain.Board) error {
				return db.Exec("UPDATE boards SET name = ? WHERE id = ?", "Exec", board.ID).Error
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			db := setupTestDB(t)
			recorder := &mockMetricsRecorder{}
			require.NoError(t, RegisterMetricsCallbacks(db, recorder))
			board := seedBoard(t, db)
			recorder.reset()

			// When
			require.NoError(t, tt.run(t, db, board))

			// Then
			require.NotEmpty(t, recorder.queries)
			query := recorder.queries[0]
			assert.Equal(t, tt.operation, query.operation)
			assert.Equal(t, tt.table, query.table)
			assert.Greater(t, query.duration, time.Duration(0))
			assert.NoError(t, query.err)
		})
	}
}

func TestRegisterMetricsCallbacks_QueryError(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	var card domain.Card
	err := db.First(&card, "id = ?", uuid.New()).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "select", recorder.queries[0].operation)
	assert.Equal(t, "cards", recorder.queries[0].table)
	assert.Error(t, recorder.queries[0].err)
}

func TestRegisterMetricsCallbacks_TransactionRollback(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&domain.Board{Name: "rolled back"}).Error; err != nil {
			return err
		}
		return errors.New("forced rollback")
	})
	require.Error(t, err)

	require.NotEmpty(t, recorder.queries, "statements inside a rolled back transaction are still timed")
	assert.Equal(t, "insert", recorder.queries[0].operation)

	var count int64
	require.NoError(t, db.Model(&domain.Board{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStartDBStatsCollector(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	stop := StartDBStatsCollector(db, recorder, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return recorder.calls() > 0 }, time.Second, 5*time.Millisecond)

	stop()
	after := recorder.calls()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, recorder.calls(), after+1, "collector stops after stop is called")

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.GreaterOrEqual(t, recorder.dbStats[0].OpenConnections, 0)
}
