package service

import (
	"context"

	"go.uber.org/zap"

	"kanban-board-api/internal/realtime"
)

// notifier publishes scope changes after a successful write. Publishing never
// fails the request; clients that miss an event resync on their next reload.
type notifier struct {
	publisher realtime.Publisher
	logger    *zap.Logger
}

func (n notifier) notify(ctx context.Context, event realtime.ScopeChangedEvent) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.Warn("Failed to publish scope change",
			zap.String("board_id", event.BoardID.String()),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}
