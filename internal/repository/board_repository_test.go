package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

func TestBoardRepository_FindWithContents_CanonicalOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()
	board, columns := seedBoard(t, db, "A", "B")
	seedCards(t, db, columns[0].ID, "c3", "c2", "c1")
	require.NoError(t, NewColumnRepository(db).Reorder(ctx, board.ID, []uuid.UUID{columns[1].ID, columns[0].ID}))

	found, err := repo.FindWithContents(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, found.Columns, 2)
	assert.Equal(t, "B", found.Columns[0].Name)
	assert.Equal(t, "A", found.Columns[1].Name)

	cards := found.Columns[1].Cards
	require.Len(t, cards, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{cards[0].Title, cards[1].Title, cards[2].Title})
	assert.Empty(t, found.Columns[0].Cards)
}

func TestBoardRepository_FindWithContents_TiesAreDeterministic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()
	board, columns := seedBoard(t, db, "A")
	seedCards(t, db, columns[0].ID, "c2", "c1")
	require.NoError(t, db.Model(&domain.Card{}).Where("column_id = ?", columns[0].ID).Update("position", 4).Error)

	first, err := repo.FindWithContents(ctx, board.ID)
	require.NoError(t, err)
	second, err := repo.FindWithContents(ctx, board.ID)
	require.NoError(t, err)

	require.Len(t, first.Columns[0].Cards, 2)
	assert.Equal(t, first.Columns[0].Cards[0].ID, second.Columns[0].Cards[0].ID)
}

func TestBoardRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()
	board, columns := seedBoard(t, db, "A", "B")
	seedCards(t, db, columns[0].ID, "c1")
	keep, keepColumns := seedBoard(t, db, "Keep")
	seedCards(t, db, keepColumns[0].ID, "k1")

	require.NoError(t, repo.Delete(ctx, board.ID))

	_, err := repo.FindByID(ctx, board.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var columnCount, cardCount int64
	require.NoError(t, db.Model(&domain.Column{}).Count(&columnCount).Error)
	require.NoError(t, db.Model(&domain.Card{}).Count(&cardCount).Error)
	assert.Equal(t, int64(1), columnCount)
	assert.Equal(t, int64(1), cardCount)

	found, err := repo.FindWithContents(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, found.Columns, 1)

	assert.ErrorIs(t, repo.Delete(ctx, board.ID), gorm.ErrRecordNotFound)
}

func TestBoardRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	seedBoard(t, db)
	seedBoard(t, db)

	boards, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, boards, 2)
}
