package repository

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/ordering"
)

var (
	// ErrScopeMismatch means the ids supplied for a scope are not exactly its members
	ErrScopeMismatch = errors.New("ordered ids do not match the members of the scope")
	// ErrCrossBoardMove means a card was sent to a column of another board
	ErrCrossBoardMove = errors.New("destination column belongs to a different board")
	// ErrConcurrentMove means the card changed column while the move was being prepared
	ErrConcurrentMove = errors.New("card was moved by another request")
)

// canonicalOrder is the read order of every scope. Ties only appear when
// positions were written outside this service; they resolve deterministically.
const canonicalOrder = "position ASC, created_at ASC, id ASC"

// scopeTable describes where the members of one scope kind live
type scopeTable struct {
	table        string
	parentColumn string
	parentTable  string
}

var (
	columnScope = scopeTable{table: "board_columns", parentColumn: "board_id", parentTable: "boards"}
	cardScope   = scopeTable{table: "cards", parentColumn: "column_id", parentTable: "board_columns"}
)

func scopeTableFor(kind ordering.ScopeKind) (scopeTable, bool) {
	switch kind {
	case ordering.ScopeKindBoard:
		return columnScope, true
	case ordering.ScopeKindColumn:
		return cardScope, true
	default:
		return scopeTable{}, false
	}
}

type idRow struct {
	ID uuid.UUID
}

type positionRow struct {
	ID       uuid.UUID
	Position int
}

// lockScopes takes a row lock on each scope row so writers to the same scope
// serialize. Rows are locked in id order to keep lock acquisition deadlock free.
// SQLite has no row locks and serializes writers on its own.
func lockScopes(tx *gorm.DB, parentTable string, ids ...uuid.UUID) error {
	sorted := append([]uuid.UUID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})

	query := "SELECT id FROM " + parentTable + " WHERE id = ?"
	if tx.Dialector.Name() == "postgres" {
		query += " FOR UPDATE"
	}

	var last uuid.UUID
	for i, id := range sorted {
		if i > 0 && id == last {
			continue
		}
		last = id

		var found []idRow
		if err := tx.Raw(query, id).Scan(&found).Error; err != nil {
			return err
		}
		if len(found) == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (s scopeTable) memberIDs(tx *gorm.DB, parentID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.positions(tx, parentID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}

func (s scopeTable) positions(tx *gorm.DB, parentID uuid.UUID) ([]positionRow, error) {
	var rows []positionRow
	if err := tx.Table(s.table).
		Select("id, position").
		Where(s.parentColumn+" = ?", parentID).
		Order(canonicalOrder).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s scopeTable) setPosition(tx *gorm.DB, parentID, id uuid.UUID, position int) error {
	result := tx.Table(s.table).
		Where("id = ? AND "+s.parentColumn+" = ?", id, parentID).
		Updates(map[string]interface{}{
			"position":   position,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ErrScopeMismatch
	}
	return nil
}

// writePositions persists position = index for each id. The ids must be exactly
// the current members of the scope. Callers run it inside a transaction.
func (s scopeTable) writePositions(tx *gorm.DB, parentID uuid.UUID, ids []uuid.UUID) error {
	members, err := s.memberIDs(tx, parentID)
	if err != nil {
		return err
	}
	if !ordering.SameMembers(ids, members) {
		return ErrScopeMismatch
	}

	for i, id := range ids {
		if err := s.setPosition(tx, parentID, id, i); err != nil {
			return err
		}
	}
	return nil
}

// reorder validates ids and rewrites the scope in one transaction
func (s scopeTable) reorder(db *gorm.DB, parentID uuid.UUID, ids []uuid.UUID) error {
	if err := ordering.ValidateOrder(ids); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := lockScopes(tx, s.parentTable, parentID); err != nil {
			return err
		}
		return s.writePositions(tx, parentID, ids)
	})
}
