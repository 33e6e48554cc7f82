package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kanban-board-api/internal/realtime"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// EventsHandler streams scope change events of a board over a websocket.
// Clients treat every message as a hint to refetch the board snapshot.
type EventsHandler struct {
	subscriber realtime.Subscriber
	logger     *zap.Logger
}

func NewEventsHandler(subscriber realtime.Subscriber, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		subscriber: subscriber,
		logger:     logger,
	}
}

// StreamBoardEvents godoc
// @Summary      Board change stream
// @Description  Upgrades to a websocket that receives a message whenever a scope of the board changes order
// @Tags         boards
// @Param        boardId path string true "Board ID (UUID)"
// @Success      101 {object} realtime.ScopeChangedEvent
// @Failure      400 {object} response.ErrorResponse
// @Router       /boards/{boardId}/events [get]
func (h *EventsHandler) StreamBoardEvents(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId", "board")
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	events, err := h.subscriber.Subscribe(ctx, boardID)
	if err != nil {
		cancel()
		h.logger.Error("Failed to subscribe to board events",
			zap.String("board_id", boardID.String()),
			zap.Error(err))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscription failed"),
			time.Now().Add(writeWait))
		conn.Close()
		return
	}

	h.logger.Info("Board event stream opened", zap.String("board_id", boardID.String()))

	go h.writePump(conn, events, cancel)
	go h.readPump(conn, cancel)
}

// readPump only services control frames; the stream is one-way
func (h *EventsHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("WebSocket error", zap.Error(err))
			}
			return
		}
	}
}

func (h *EventsHandler) writePump(conn *websocket.Conn, events <-chan []byte, cancel context.CancelFunc) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cancel()
		conn.Close()
	}()

	for {
		select {
		case payload, ok := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
