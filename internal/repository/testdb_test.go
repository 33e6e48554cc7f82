package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kanban-board-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every connection to :memory: opens a new database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&domain.Board{}, &domain.Column{}, &domain.Card{}))
	return db
}

func seedBoard(t *testing.T, db *gorm.DB, columnNames ...string) (*domain.Board, []*domain.Column) {
	t.Helper()
	ctx := context.Background()

	board := &domain.Board{Name: "Board"}
	require.NoError(t, NewBoardRepository(db).Create(ctx, board))

	columnRepo := NewColumnRepository(db)
	columns := make([]*domain.Column, 0, len(columnNames))
	for _, name := range columnNames {
		column := &domain.Column{BoardID: board.ID, Name: name}
		require.NoError(t, columnRepo.CreateAtEnd(ctx, column))
		columns = append(columns, column)
	}
	return board, columns
}

// seedCards inserts cards at the top one by one, so the last title ends up first
func seedCards(t *testing.T, db *gorm.DB, columnID uuid.UUID, titles ...string) []*domain.Card {
	t.Helper()
	ctx := context.Background()

	cardRepo := NewCardRepository(db)
	cards := make([]*domain.Card, 0, len(titles))
	for _, title := range titles {
		card := &domain.Card{ColumnID: columnID, Title: title}
		require.NoError(t, cardRepo.CreateAtTop(ctx, card))
		cards = append(cards, card)
	}
	return cards
}

func cardIDs(cards []*domain.Card) []uuid.UUID {
	ids := make([]uuid.UUID, len(cards))
	for i, card := range cards {
		ids[i] = card.ID
	}
	return ids
}

func titles(cards []*domain.Card) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = card.Title
	}
	return out
}
