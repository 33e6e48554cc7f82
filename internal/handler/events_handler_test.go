package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanban-board-api/internal/ordering"
	"kanban-board-api/internal/realtime"
)

func TestEventsHandler_StreamBoardEvents(t *testing.T) {
	// Given
	broker := realtime.NewMemoryBroker(zap.NewNop())
	handler := NewEventsHandler(broker, zap.NewNop())

	router := setupTestRouter()
	router.GET("/boards/:boardId/events", handler.StreamBoardEvents)
	server := httptest.NewServer(router)
	defer server.Close()

	boardID := uuid.New()
	columnID := uuid.New()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/boards/" + boardID.String() + "/events"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return broker.SubscriberCount(boardID) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// When
	event := realtime.NewScopeChangedEvent(realtime.EventScopeReordered, boardID, nil, ordering.ColumnScope(columnID))
	require.NoError(t, broker.Publish(context.Background(), event))

	// Then
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var received realtime.ScopeChangedEvent
	require.NoError(t, json.Unmarshal(payload, &received))
	assert.Equal(t, realtime.EventScopeReordered, received.Type)
	assert.Equal(t, boardID, received.BoardID)
	require.Len(t, received.Scopes, 1)
	assert.Equal(t, columnID, received.Scopes[0].ID)

	// closing the socket releases the subscription
	conn.Close()
	assert.Eventually(t, func() bool {
		return broker.SubscriberCount(boardID) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEventsHandler_InvalidBoardID(t *testing.T) {
	handler := NewEventsHandler(realtime.NewMemoryBroker(zap.NewNop()), zap.NewNop())
	router := setupTestRouter()
	router.GET("/boards/:boardId/events", handler.StreamBoardEvents)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boards/nope/events", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
