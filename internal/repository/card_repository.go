package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/ordering"
)

// MoveInput carries a cross-column move with the full resulting orders.
// A nil SourceOrder leaves the source column untouched.
type MoveInput struct {
	CardID              uuid.UUID
	DestinationColumnID uuid.UUID
	DestinationOrder    []uuid.UUID
	SourceOrder         []uuid.UUID
}

// MoveOutcome reports which scopes a reassignment or move touched
type MoveOutcome struct {
	CardID              uuid.UUID
	BoardID             uuid.UUID
	SourceColumnID      uuid.UUID
	DestinationColumnID uuid.UUID
}

// CardRepository defines the interface for card data access.
// Cards are ordered within their column.
type CardRepository interface {
	CreateAtTop(ctx context.Context, card *domain.Card) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	FindByColumnID(ctx context.Context, columnID uuid.UUID) ([]*domain.Card, error)
	CountByColumnIDs(ctx context.Context, columnIDs []uuid.UUID) (map[uuid.UUID]int, error)
	Reorder(ctx context.Context, columnID uuid.UUID, orderedIDs []uuid.UUID) error
	Reassign(ctx context.Context, cardID, newColumnID uuid.UUID, position int) (*MoveOutcome, error)
	Move(ctx context.Context, input MoveInput) (*MoveOutcome, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error)
}

// cardRepositoryImpl is the GORM implementation of CardRepository
type cardRepositoryImpl struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepositoryImpl{db: db}
}

// CreateAtTop inserts the card at position 0 after shifting every sibling down.
// Siblings are rewritten highest position first so no intermediate state
// holds two cards at the same position.
func (r *cardRepositoryImpl) CreateAtTop(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockScopes(tx, cardScope.parentTable, card.ColumnID); err != nil {
			return err
		}

		rows, err := cardScope.positions(tx, card.ColumnID)
		if err != nil {
			return err
		}
		positions := make([]int, len(rows))
		for i, row := range rows {
			positions[i] = row.Position
		}

		shift := ordering.TopShift(positions)
		for i := len(rows) - 1; i >= 0; i-- {
			if err := cardScope.setPosition(tx, card.ColumnID, rows[i].ID, rows[i].Position+shift); err != nil {
				return err
			}
		}

		card.Position = ordering.TopPosition
		return tx.Create(card).Error
	})
}

// FindByID finds a card by ID
func (r *cardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var card domain.Card
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByColumnID finds all cards of a column ordered by position
func (r *cardRepositoryImpl) FindByColumnID(ctx context.Context, columnID uuid.UUID) ([]*domain.Card, error) {
	var cards []*domain.Card
	if err := r.db.WithContext(ctx).
		Where("column_id = ?", columnID).
		Order(canonicalOrder).
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

type columnCount struct {
	ColumnID uuid.UUID
	Count    int
}

// CountByColumnIDs counts the cards of each column. Columns without cards are reported as 0.
func (r *cardRepositoryImpl) CountByColumnIDs(ctx context.Context, columnIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(columnIDs))
	if len(columnIDs) == 0 {
		return counts, nil
	}
	for _, id := range columnIDs {
		counts[id] = 0
	}

	var rows []columnCount
	if err := r.db.WithContext(ctx).
		Model(&domain.Card{}).
		Select("column_id, COUNT(*) AS count").
		Where("column_id IN ?", columnIDs).
		Group("column_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ColumnID] = row.Count
	}
	return counts, nil
}

// Reorder writes position = index for every card of the column
func (r *cardRepositoryImpl) Reorder(ctx context.Context, columnID uuid.UUID, orderedIDs []uuid.UUID) error {
	return cardScope.reorder(r.db.WithContext(ctx), columnID, orderedIDs)
}

// Reassign moves a card into another column of the same board with a single
// write of column_id and position. Neither column is renumbered.
func (r *cardRepositoryImpl) Reassign(ctx context.Context, cardID, newColumnID uuid.UUID, position int) (*MoveOutcome, error) {
	var outcome *MoveOutcome
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		outcome, err = prepareMove(tx, cardID, newColumnID)
		if err != nil {
			return err
		}
		return setParent(tx, cardID, outcome.SourceColumnID, newColumnID, position)
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Move reassigns the card and rewrites the destination and source orders in one
// transaction, so either all three writes land or none does.
func (r *cardRepositoryImpl) Move(ctx context.Context, input MoveInput) (*MoveOutcome, error) {
	if err := ordering.ValidateOrder(input.DestinationOrder); err != nil {
		return nil, err
	}
	if input.SourceOrder != nil {
		if err := ordering.ValidateOrder(input.SourceOrder); err != nil {
			return nil, err
		}
	}
	index := ordering.IndexOf(input.DestinationOrder, input.CardID)
	if index < 0 {
		return nil, ErrScopeMismatch
	}

	var outcome *MoveOutcome
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		outcome, err = prepareMove(tx, input.CardID, input.DestinationColumnID)
		if err != nil {
			return err
		}

		if outcome.SourceColumnID != input.DestinationColumnID {
			if err := setParent(tx, input.CardID, outcome.SourceColumnID, input.DestinationColumnID, index); err != nil {
				return err
			}
		}
		if err := cardScope.writePositions(tx, input.DestinationColumnID, input.DestinationOrder); err != nil {
			return err
		}
		if input.SourceOrder != nil && outcome.SourceColumnID != input.DestinationColumnID {
			return cardScope.writePositions(tx, outcome.SourceColumnID, input.SourceOrder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Delete removes a card and returns it. Sibling positions are left untouched.
func (r *cardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var card domain.Card
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&card).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Card{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// prepareMove checks that the destination is on the card's board and locks
// both columns. The card is re-read under the locks so a concurrent move of
// the same card is detected instead of silently overwritten.
func prepareMove(tx *gorm.DB, cardID, destinationColumnID uuid.UUID) (*MoveOutcome, error) {
	var card domain.Card
	if err := tx.Where("id = ?", cardID).First(&card).Error; err != nil {
		return nil, err
	}

	var source, destination domain.Column
	if err := tx.Where("id = ?", card.ColumnID).First(&source).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("id = ?", destinationColumnID).First(&destination).Error; err != nil {
		return nil, err
	}
	if source.BoardID != destination.BoardID {
		return nil, ErrCrossBoardMove
	}

	if err := lockScopes(tx, cardScope.parentTable, source.ID, destination.ID); err != nil {
		return nil, err
	}

	var current domain.Card
	if err := tx.Select("id", "column_id").Where("id = ?", cardID).First(&current).Error; err != nil {
		return nil, err
	}
	if current.ColumnID != card.ColumnID {
		return nil, ErrConcurrentMove
	}

	return &MoveOutcome{
		CardID:              cardID,
		BoardID:             source.BoardID,
		SourceColumnID:      source.ID,
		DestinationColumnID: destination.ID,
	}, nil
}

func setParent(tx *gorm.DB, cardID, sourceColumnID, destinationColumnID uuid.UUID, position int) error {
	result := tx.Model(&domain.Card{}).
		Where("id = ? AND column_id = ?", cardID, sourceColumnID).
		Updates(map[string]interface{}{
			"column_id":  destinationColumnID,
			"position":   position,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ErrConcurrentMove
	}
	return nil
}
