package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/ordering"
)

// ColumnRepository defines the interface for column data access.
// Columns are ordered within their board.
type ColumnRepository interface {
	CreateAtEnd(ctx context.Context, column *domain.Column) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	Reorder(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error
	UpdateWipLimit(ctx context.Context, id uuid.UUID, limit *int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// columnRepositoryImpl is the GORM implementation of ColumnRepository
type columnRepositoryImpl struct {
	db *gorm.DB
}

// NewColumnRepository creates a new instance of ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepositoryImpl{db: db}
}

// CreateAtEnd appends a column after every existing column of its board
func (r *columnRepositoryImpl) CreateAtEnd(ctx context.Context, column *domain.Column) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockScopes(tx, columnScope.parentTable, column.BoardID); err != nil {
			return err
		}

		rows, err := columnScope.positions(tx, column.BoardID)
		if err != nil {
			return err
		}
		positions := make([]int, len(rows))
		for i, row := range rows {
			positions[i] = row.Position
		}

		column.Position = ordering.EndPosition(positions)
		return tx.Create(column).Error
	})
}

// FindByID finds a column by ID
func (r *columnRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	var column domain.Column
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&column).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// FindByBoardID finds all columns of a board ordered by position
func (r *columnRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error) {
	var columns []*domain.Column
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order(canonicalOrder).
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// Reorder writes position = index for every column of the board
func (r *columnRepositoryImpl) Reorder(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error {
	return columnScope.reorder(r.db.WithContext(ctx), boardID, orderedIDs)
}

// UpdateWipLimit sets or clears the advisory WIP limit of a column
func (r *columnRepositoryImpl) UpdateWipLimit(ctx context.Context, id uuid.UUID, limit *int) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Column{}).
		Where("id = ?", id).
		Update("wip_limit", limit)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a column and its cards. Sibling positions are left untouched.
func (r *columnRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("column_id = ?", id).Delete(&domain.Card{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Column{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
