// Package coordinator turns finalize events from the drag engine into persistence calls.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/dnd"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/ordering"
)

// ErrUnsupportedMove is returned for cross-scope column drops; columns never change boards
var ErrUnsupportedMove = errors.New("coordinator: columns cannot move between boards")

// ScopeWriter is the persistence surface the coordinator drives
type ScopeWriter interface {
	ReorderColumns(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error
	ReorderCards(ctx context.Context, columnID uuid.UUID, orderedIDs []uuid.UUID) error
	ReassignCard(ctx context.Context, cardID, columnID uuid.UUID, position int) error
	MoveCard(ctx context.Context, cardID uuid.UUID, req dto.MoveCardRequest) error
}

// Strategy selects how a cross-column card drop is persisted
type Strategy string

const (
	// StrategyAtomic sends one move request; the server applies the reassignment
	// and both column orders in one transaction.
	StrategyAtomic Strategy = "atomic"
	// StrategySequential sends reassign, destination reorder and source reorder as
	// three independent requests. A failure leaves the earlier writes in place.
	StrategySequential Strategy = "sequential"
)

// ParseStrategy parses a configured strategy name
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAtomic, StrategySequential:
		return Strategy(s), nil
	case "":
		return StrategyAtomic, nil
	}
	return "", fmt.Errorf("unknown move strategy %q", s)
}

// Coordinator persists finalized drags
type Coordinator struct {
	writer   ScopeWriter
	strategy Strategy
	logger   *zap.Logger
}

// New creates a Coordinator. An empty strategy means StrategyAtomic.
func New(writer ScopeWriter, strategy Strategy, logger *zap.Logger) *Coordinator {
	if strategy == "" {
		strategy = StrategyAtomic
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		writer:   writer,
		strategy: strategy,
		logger:   logger,
	}
}

// Handle persists one finalize event. It matches dnd.HandlerFunc.
func (c *Coordinator) Handle(ctx context.Context, event dnd.FinalizeEvent) error {
	destinationOrder, ok := event.Orders[event.DestinationScope]
	if !ok {
		return fmt.Errorf("finalize event for %s has no destination order", event.ItemID)
	}

	if !event.CrossesScopes() {
		c.logger.Debug("Persisting reorder",
			zap.String("scope", event.DestinationScope.String()),
			zap.Int("items", len(destinationOrder)),
		)
		return c.reorder(ctx, event.DestinationScope, destinationOrder)
	}

	if event.ItemKind == dnd.ItemKindColumn || event.DestinationScope.Kind == ordering.ScopeKindBoard {
		return ErrUnsupportedMove
	}

	c.logger.Debug("Persisting cross-column move",
		zap.String("card_id", event.ItemID.String()),
		zap.String("source_column_id", event.SourceScope.ID.String()),
		zap.String("destination_column_id", event.DestinationScope.ID.String()),
		zap.String("strategy", string(c.strategy)),
	)

	if c.strategy == StrategySequential {
		return c.moveSequential(ctx, event)
	}
	return c.writer.MoveCard(ctx, event.ItemID, dto.MoveCardRequest{
		DestinationColumnID: event.DestinationScope.ID,
		DestinationOrder:    destinationOrder,
		SourceOrder:         sourceOrder(event),
	})
}

// moveSequential attempts all three writes and joins their failures.
// Nothing is compensated or retried.
func (c *Coordinator) moveSequential(ctx context.Context, event dnd.FinalizeEvent) error {
	destination := event.DestinationScope
	index := event.DestinationIndex()
	if index < 0 {
		return fmt.Errorf("card %s is missing from the destination order", event.ItemID)
	}

	var errs []error
	if err := c.writer.ReassignCard(ctx, event.ItemID, destination.ID, index); err != nil {
		errs = append(errs, fmt.Errorf("reassign card: %w", err))
	}
	if err := c.writer.ReorderCards(ctx, destination.ID, event.Orders[destination]); err != nil {
		errs = append(errs, fmt.Errorf("reorder destination column: %w", err))
	}
	if order := sourceOrder(event); order != nil {
		if err := c.writer.ReorderCards(ctx, event.SourceScope.ID, order); err != nil {
			errs = append(errs, fmt.Errorf("reorder source column: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		c.logger.Warn("Cross-column move partially failed",
			zap.String("card_id", event.ItemID.String()),
			zap.Int("failed_calls", len(errs)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (c *Coordinator) reorder(ctx context.Context, scope ordering.Scope, order []uuid.UUID) error {
	if scope.Kind == ordering.ScopeKindBoard {
		return c.writer.ReorderColumns(ctx, scope.ID, order)
	}
	return c.writer.ReorderCards(ctx, scope.ID, order)
}

// sourceOrder returns the source column's order, or nil when the event carries none.
// An emptied source column yields a non-nil empty slice.
func sourceOrder(event dnd.FinalizeEvent) []uuid.UUID {
	order, ok := event.Orders[event.SourceScope]
	if !ok {
		return nil
	}
	if order == nil {
		return []uuid.UUID{}
	}
	return order
}
