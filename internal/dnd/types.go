// Package dnd keeps client-local ordered lists in step with an interactive
// drag gesture and hands finalized orders to a Dispatcher.
package dnd

import (
	"errors"

	"github.com/google/uuid"

	"kanban-board-api/internal/ordering"
)

var (
	ErrNoItem            = errors.New("dnd: command has no item id")
	ErrUnknownItem       = errors.New("dnd: item is not in any local list")
	ErrUnknownScope      = errors.New("dnd: candidate scope is not tracked")
	ErrGestureInProgress = errors.New("dnd: another item is being dragged")
	ErrItemLost          = errors.New("dnd: finalized lists do not contain the item")
	ErrAmbiguousDrop     = errors.New("dnd: item is a candidate in more than one foreign scope")
)

// Item is the summary the engine keeps for one list entry
type Item struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// ItemKind is what the dragged item is; it follows from the scope kind
type ItemKind string

const (
	ItemKindCard   ItemKind = "card"
	ItemKindColumn ItemKind = "column"
)

func itemKindOf(scope ordering.Scope) ItemKind {
	if scope.Kind == ordering.ScopeKindBoard {
		return ItemKindColumn
	}
	return ItemKindCard
}

// Trigger classifies where a gesture ended
type Trigger string

const (
	TriggerDroppedIntoZone    Trigger = "dropped_into_zone"
	TriggerDroppedIntoAnother Trigger = "dropped_into_another"
	TriggerDroppedOutside     Trigger = "dropped_outside"
)

// Source classifies the input that drove a gesture
type Source string

const (
	SourcePointer  Source = "pointer"
	SourceKeyboard Source = "keyboard"
)

// Lists maps each scope to its ordered items
type Lists map[ordering.Scope][]Item

// Clone returns a deep copy
func (l Lists) Clone() Lists {
	out := make(Lists, len(l))
	for scope, items := range l {
		out[scope] = append([]Item(nil), items...)
	}
	return out
}

// IDs returns the ordered ids of one scope
func (l Lists) IDs(scope ordering.Scope) []uuid.UUID {
	items := l[scope]
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// Locate returns the first scope whose list holds id
func (l Lists) Locate(id uuid.UUID) (ordering.Scope, bool) {
	for scope, items := range l {
		if indexOf(items, id) >= 0 {
			return scope, true
		}
	}
	return ordering.Scope{}, false
}

func indexOf(items []Item, id uuid.UUID) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func without(items []Item, id uuid.UUID) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// Command is one engine input: Consider, Finalize or Cancel
type Command interface {
	command()
}

// Consider replaces the local list of every candidate scope while the item is dragged.
// Nothing is persisted.
type Consider struct {
	ItemID     uuid.UUID
	Candidates Lists
}

// Finalize ends the gesture and makes the candidate lists authoritative
type Finalize struct {
	ItemID     uuid.UUID
	Candidates Lists
	Trigger    Trigger
	Source     Source
}

// Cancel ends the gesture and restores the last persisted lists
type Cancel struct{}

func (Consider) command() {}
func (Finalize) command() {}
func (Cancel) command()   {}

// FinalizeEvent describes a completed gesture. Orders holds the final id order of the
// destination scope and, for a cross-scope drop, of the source scope as well.
type FinalizeEvent struct {
	ItemID           uuid.UUID
	ItemKind         ItemKind
	SourceScope      ordering.Scope
	DestinationScope ordering.Scope
	Orders           map[ordering.Scope][]uuid.UUID
	Trigger          Trigger
	Source           Source
}

// CrossesScopes reports whether the item landed in a scope it did not start in
func (e FinalizeEvent) CrossesScopes() bool {
	return e.Trigger == TriggerDroppedIntoAnother && e.SourceScope != e.DestinationScope
}

// DestinationIndex returns the moved item's index in the destination order
func (e FinalizeEvent) DestinationIndex() int {
	return ordering.IndexOf(e.Orders[e.DestinationScope], e.ItemID)
}

// Gesture is the drag currently in progress
type Gesture struct {
	ItemID uuid.UUID
	Origin ordering.Scope
}

// State is a copy of the engine state handed to callers and listeners
type State struct {
	Lists    Lists
	Snapshot Lists
	Gesture  *Gesture
}

// Dispatcher receives finalize events. Dispatch must not block on persistence.
type Dispatcher interface {
	Dispatch(event FinalizeEvent)
}

// DispatcherFunc adapts a function to Dispatcher
type DispatcherFunc func(event FinalizeEvent)

func (f DispatcherFunc) Dispatch(event FinalizeEvent) { f(event) }
