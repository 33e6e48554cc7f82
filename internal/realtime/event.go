// Package realtime tells connected clients that persisted order changed so they
// can resync their local lists.
package realtime

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/ordering"
)

// EventType names what happened to the scopes of an event
type EventType string

const (
	EventScopeReordered EventType = "SCOPE_REORDERED"
	EventCardMoved      EventType = "CARD_MOVED"
	EventItemCreated    EventType = "ITEM_CREATED"
	EventItemDeleted    EventType = "ITEM_DELETED"
)

// ScopeChangedEvent lists the scopes of a board whose persisted order changed.
// Payloads carry no positions; receivers refetch the board.
type ScopeChangedEvent struct {
	Type       EventType        `json:"type"`
	BoardID    uuid.UUID        `json:"boardId"`
	Scopes     []ordering.Scope `json:"scopes"`
	ItemID     *uuid.UUID       `json:"itemId,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// NewScopeChangedEvent stamps an event with the current time
func NewScopeChangedEvent(eventType EventType, boardID uuid.UUID, itemID *uuid.UUID, scopes ...ordering.Scope) ScopeChangedEvent {
	return ScopeChangedEvent{
		Type:       eventType,
		BoardID:    boardID,
		Scopes:     scopes,
		ItemID:     itemID,
		OccurredAt: time.Now().UTC(),
	}
}

// Channel is the pub/sub channel carrying events of one board
func Channel(boardID uuid.UUID) string {
	return "board:" + boardID.String()
}

// Publisher sends scope change events
type Publisher interface {
	Publish(ctx context.Context, event ScopeChangedEvent) error
}

// Subscriber streams raw event payloads of one board until ctx is done.
// The returned channel is closed when the subscription ends.
type Subscriber interface {
	Subscribe(ctx context.Context, boardID uuid.UUID) (<-chan []byte, error)
}

// Broker both publishes and subscribes
type Broker interface {
	Publisher
	Subscriber
}
