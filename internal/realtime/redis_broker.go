package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/metrics"
)

const subscriberBuffer = 64

// RedisBroker fans events out through Redis pub/sub so every API replica
// reaches the clients connected to it
type RedisBroker struct {
	client  *redis.Client
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewRedisBroker creates a broker on top of an existing client
func NewRedisBroker(client *redis.Client, m *metrics.Metrics, logger *zap.Logger) *RedisBroker {
	return &RedisBroker{client: client, metrics: m, logger: logger}
}

// Publish serializes the event onto the board channel
func (b *RedisBroker) Publish(ctx context.Context, event ScopeChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = b.client.Publish(ctx, Channel(event.BoardID), payload).Err()
	if b.metrics != nil {
		b.metrics.RecordRealtimeEvent(err)
	}
	return err
}

// Subscribe waits for Redis to confirm the subscription before returning, so
// events published afterwards are never missed
func (b *RedisBroker) Subscribe(ctx context.Context, boardID uuid.UUID) (<-chan []byte, error) {
	pubsub := b.client.Subscribe(ctx, Channel(boardID))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	out := make(chan []byte, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
					b.logger.Warn("Dropping realtime event for slow subscriber",
						zap.String("board_id", boardID.String()))
				}
			}
		}
	}()
	return out, nil
}
