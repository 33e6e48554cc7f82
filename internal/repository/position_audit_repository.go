package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/ordering"
)

// PositionConflict is a scope in which several members share one position
type PositionConflict struct {
	Scope    ordering.Scope
	Position int
	Count    int
}

// PositionAuditRepository finds and repairs scopes whose members are not totally ordered
type PositionAuditRepository interface {
	FindConflicts(ctx context.Context) ([]PositionConflict, error)
	Renumber(ctx context.Context, scope ordering.Scope) error
}

type positionAuditRepositoryImpl struct {
	db *gorm.DB
}

// NewPositionAuditRepository creates a new instance of PositionAuditRepository
func NewPositionAuditRepository(db *gorm.DB) PositionAuditRepository {
	return &positionAuditRepositoryImpl{db: db}
}

type conflictRow struct {
	ParentID uuid.UUID
	Position int
	Count    int
}

// FindConflicts reports every (scope, position) pair held by more than one item
func (r *positionAuditRepositoryImpl) FindConflicts(ctx context.Context) ([]PositionConflict, error) {
	var conflicts []PositionConflict
	for _, kind := range []ordering.ScopeKind{ordering.ScopeKindBoard, ordering.ScopeKindColumn} {
		table, _ := scopeTableFor(kind)

		var rows []conflictRow
		if err := r.db.WithContext(ctx).
			Table(table.table).
			Select(table.parentColumn + " AS parent_id, position, COUNT(*) AS count").
			Group(table.parentColumn + ", position").
			Having("COUNT(*) > 1").
			Order(table.parentColumn + ", position").
			Scan(&rows).Error; err != nil {
			return nil, err
		}

		for _, row := range rows {
			conflicts = append(conflicts, PositionConflict{
				Scope:    ordering.Scope{Kind: kind, ID: row.ParentID},
				Position: row.Position,
				Count:    row.Count,
			})
		}
	}
	return conflicts, nil
}

// Renumber rewrites a scope to positions 0..n-1 following the canonical read order
func (r *positionAuditRepositoryImpl) Renumber(ctx context.Context, scope ordering.Scope) error {
	table, ok := scopeTableFor(scope.Kind)
	if !ok {
		return fmt.Errorf("unknown scope kind %q", scope.Kind)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockScopes(tx, table.parentTable, scope.ID); err != nil {
			return err
		}
		ids, err := table.memberIDs(tx, scope.ID)
		if err != nil {
			return err
		}
		return table.writePositions(tx, scope.ID, ids)
	})
}
