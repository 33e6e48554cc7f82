package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindWithContents(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindAll(ctx context.Context) ([]*domain.Board, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID finds a board by ID without its columns
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindWithContents loads a board with its columns and their cards, each in canonical order
func (r *boardRepositoryImpl) FindWithContents(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	ordered := func(db *gorm.DB) *gorm.DB {
		return db.Order(canonicalOrder)
	}

	var board domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Columns", ordered).
		Preload("Columns.Cards", ordered).
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindAll lists boards, newest first
func (r *boardRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Delete removes a board together with its columns and cards
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		columnIDs := tx.Model(&domain.Column{}).Select("id").Where("board_id = ?", id)
		if err := tx.Where("column_id IN (?)", columnIDs).Delete(&domain.Card{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.Column{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Board{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
