package dnd

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrDispatcherClosed is returned by Close when called twice
var ErrDispatcherClosed = errors.New("dnd: dispatcher closed")

// HandlerFunc persists one finalize event
type HandlerFunc func(ctx context.Context, event FinalizeEvent) error

// QueueDispatcher runs finalize events on a single worker in submission order.
// Dispatch never blocks. Failures are logged and passed to the error callback;
// nothing is retried and the optimistic lists are left as they are.
type QueueDispatcher struct {
	handler HandlerFunc
	logger  *zap.Logger
	onError func(event FinalizeEvent, err error)
	timeout time.Duration

	mu      sync.Mutex
	pending []FinalizeEvent
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

// QueueOption configures a QueueDispatcher
type QueueOption func(*QueueDispatcher)

// WithErrorHandler sets a callback for failed events
func WithErrorHandler(fn func(event FinalizeEvent, err error)) QueueOption {
	return func(d *QueueDispatcher) {
		d.onError = fn
	}
}

// WithCallTimeout bounds each handler call
func WithCallTimeout(timeout time.Duration) QueueOption {
	return func(d *QueueDispatcher) {
		d.timeout = timeout
	}
}

// NewQueueDispatcher starts the worker goroutine
func NewQueueDispatcher(handler HandlerFunc, logger *zap.Logger, opts ...QueueOption) *QueueDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &QueueDispatcher{
		handler: handler,
		logger:  logger,
		timeout: 30 * time.Second,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	go d.run()
	return d
}

// Dispatch queues event. Events dispatched after Close are dropped.
func (d *QueueDispatcher) Dispatch(event FinalizeEvent) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("Finalize event dropped, dispatcher closed",
			zap.String("item_id", event.ItemID.String()),
		)
		return
	}
	d.pending = append(d.pending, event)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Close stops accepting events and waits for queued ones until ctx is done
func (d *QueueDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	d.closed = true
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *QueueDispatcher) next() (FinalizeEvent, bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pending) == 0 {
		return FinalizeEvent{}, false, d.closed
	}
	event := d.pending[0]
	d.pending = d.pending[1:]
	return event, true, false
}

func (d *QueueDispatcher) run() {
	defer close(d.done)

	for {
		event, ok, closed := d.next()
		if closed {
			return
		}
		if !ok {
			<-d.wake
			continue
		}
		d.handle(event)
	}
}

func (d *QueueDispatcher) handle(event FinalizeEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	start := time.Now()
	err := d.handler(ctx, event)
	if err == nil {
		d.logger.Debug("Finalize event persisted",
			zap.String("item_id", event.ItemID.String()),
			zap.String("trigger", string(event.Trigger)),
			zap.Duration("duration", time.Since(start)),
		)
		return
	}

	d.logger.Error("Failed to persist finalize event",
		zap.String("item_id", event.ItemID.String()),
		zap.String("source_scope", event.SourceScope.String()),
		zap.String("destination_scope", event.DestinationScope.String()),
		zap.String("trigger", string(event.Trigger)),
		zap.Error(err),
	)
	if d.onError != nil {
		d.onError(event, err)
	}
}
