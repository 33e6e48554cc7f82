package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/coordinator"
	"kanban-board-api/internal/dnd"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/ordering"
)

// boardLists converts a board snapshot into engine lists: one list of columns for
// the board and one list of cards per column
func boardLists(board *dto.BoardDetailResponse) dnd.Lists {
	lists := dnd.Lists{}
	columns := make([]dnd.Item, 0, len(board.Columns))
	for _, column := range board.Columns {
		columns = append(columns, dnd.Item{ID: column.ID, Title: column.Name})
		cards := make([]dnd.Item, 0, len(column.Cards))
		for _, card := range column.Cards {
			cards = append(cards, dnd.Item{ID: card.ID, Title: card.Title})
		}
		lists[ordering.ColumnScope(column.ID)] = cards
	}
	lists[ordering.BoardScope(board.ID)] = columns
	return lists
}

// dropAt returns the candidate lists for placing itemID at index in target.
// The index is clamped to the target list.
func dropAt(lists dnd.Lists, itemID uuid.UUID, target ordering.Scope, index int) (dnd.Lists, error) {
	source, ok := lists.Locate(itemID)
	if !ok {
		return nil, fmt.Errorf("%s is not on this board", itemID)
	}
	targetItems, ok := lists[target]
	if !ok {
		return nil, fmt.Errorf("%s is not on this board", target)
	}

	var moved dnd.Item
	remaining := make([]dnd.Item, 0, len(lists[source]))
	for _, item := range lists[source] {
		if item.ID == itemID {
			moved = item
			continue
		}
		remaining = append(remaining, item)
	}

	candidates := dnd.Lists{source: remaining}
	if target == source {
		targetItems = remaining
	}
	if index < 0 {
		index = 0
	}
	if index > len(targetItems) {
		index = len(targetItems)
	}
	placed := make([]dnd.Item, 0, len(targetItems)+1)
	placed = append(placed, targetItems[:index]...)
	placed = append(placed, moved)
	placed = append(placed, targetItems[index:]...)
	candidates[target] = placed
	return candidates, nil
}

// runGesture replays one drag against the board: a consider step followed by a
// finalize, persisted through the coordinator. It waits for the write to finish.
func runGesture(
	ctx context.Context,
	writer coordinator.ScopeWriter,
	board *dto.BoardDetailResponse,
	itemID uuid.UUID,
	target ordering.Scope,
	index int,
	strategy coordinator.Strategy,
	log *zap.Logger,
) (dnd.State, error) {
	var (
		mu   sync.Mutex
		errs []error
	)
	dispatcher := dnd.NewQueueDispatcher(
		coordinator.New(writer, strategy, log).Handle,
		log,
		dnd.WithErrorHandler(func(event dnd.FinalizeEvent, err error) {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err)
		}),
	)
	engine := dnd.NewEngine(boardLists(board), dispatcher, log)

	candidates, err := dropAt(engine.State().Lists, itemID, target, index)
	if err != nil {
		_ = dispatcher.Close(ctx)
		return dnd.State{}, err
	}
	if err := engine.Apply(dnd.Consider{ItemID: itemID, Candidates: candidates}); err != nil {
		_ = dispatcher.Close(ctx)
		return dnd.State{}, err
	}
	if err := engine.Apply(dnd.Finalize{
		ItemID:     itemID,
		Candidates: candidates,
		Source:     dnd.SourceKeyboard,
	}); err != nil {
		_ = dispatcher.Close(ctx)
		return dnd.State{}, err
	}

	if err := dispatcher.Close(ctx); err != nil {
		return engine.State(), err
	}
	mu.Lock()
	defer mu.Unlock()
	return engine.State(), errors.Join(errs...)
}
