package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemoryBroker delivers events inside one process. It backs single-instance
// deployments without Redis.
type MemoryBroker struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[chan []byte]struct{}
	logger      *zap.Logger
}

// NewMemoryBroker creates an empty in-process broker
func NewMemoryBroker(logger *zap.Logger) *MemoryBroker {
	return &MemoryBroker{
		subscribers: make(map[uuid.UUID]map[chan []byte]struct{}),
		logger:      logger,
	}
}

// Publish hands the event to every current subscriber of the board.
// A full subscriber buffer drops the event for that subscriber only.
func (b *MemoryBroker) Publish(ctx context.Context, event ScopeChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers[event.BoardID] {
		select {
		case ch <- payload:
		default:
			b.logger.Warn("Dropping realtime event for slow subscriber",
				zap.String("board_id", event.BoardID.String()))
		}
	}
	return nil
}

// Subscribe registers a subscriber until ctx is done
func (b *MemoryBroker) Subscribe(ctx context.Context, boardID uuid.UUID) (<-chan []byte, error) {
	ch := make(chan []byte, subscriberBuffer)

	b.mu.Lock()
	if b.subscribers[boardID] == nil {
		b.subscribers[boardID] = make(map[chan []byte]struct{})
	}
	b.subscribers[boardID][ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subscribers[boardID], ch)
		if len(b.subscribers[boardID]) == 0 {
			delete(b.subscribers, boardID)
		}
		b.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

// SubscriberCount reports the live subscriptions of a board
func (b *MemoryBroker) SubscriberCount(boardID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[boardID])
}

// NoOpPublisher discards events
type NoOpPublisher struct{}

// Publish does nothing
func (NoOpPublisher) Publish(context.Context, ScopeChangedEvent) error { return nil }
