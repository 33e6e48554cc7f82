package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanban-board-api/internal/coordinator"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/dnd"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/ordering"
	"kanban-board-api/internal/router"
)

// startAPI serves the full router over an in-memory sqlite database
func startAPI(t *testing.T) BoardAPIClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	server := httptest.NewServer(router.Setup(router.Config{
		DB:       db,
		Logger:   zap.NewNop(),
		BasePath: "/api/boards",
	}))
	t.Cleanup(server.Close)

	return NewBoardAPIClient(server.URL+"/api/boards", "", 5*time.Second, zap.NewNop(), nil)
}

func listsOf(board *dto.BoardDetailResponse) dnd.Lists {
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

func cardTitles(column dto.ColumnDetailResponse) []string {
	out := make([]string, len(column.Cards))
	for i, card := range column.Cards {
		out[i] = card.Title
	}
	return out
}

func cardPositions(column dto.ColumnDetailResponse) []int {
	out := make([]int, len(column.Cards))
	for i, card := range column.Cards {
		out[i] = card.Position
	}
	return out
}

// seedScenario creates column A [c1,c2,c3] and column B [c4]
func seedScenario(t *testing.T, api BoardAPIClient) (boardID uuid.UUID, cards map[string]dnd.Item) {
	t.Helper()
	ctx := context.Background()

	board, err := api.CreateBoard(ctx, dto.CreateBoardRequest{Name: "Scenario"})
	require.NoError(t, err)
	colA, err := api.CreateColumn(ctx, board.ID, dto.CreateColumnRequest{Name: "A"})
	require.NoError(t, err)
	colB, err := api.CreateColumn(ctx, board.ID, dto.CreateColumnRequest{Name: "B"})
	require.NoError(t, err)

	cards = make(map[string]dnd.Item)
	// cards are inserted at the top, so create them last to first
	for _, title := range []string{"c3", "c2", "c1"} {
		card, err := api.CreateCard(ctx, colA.ID, dto.CreateCardRequest{Title: title})
		require.NoError(t, err)
		cards[title] = dnd.Item{ID: card.ID, Title: title}
	}
	card, err := api.CreateCard(ctx, colB.ID, dto.CreateCardRequest{Title: "c4"})
	require.NoError(t, err)
	cards["c4"] = dnd.Item{ID: card.ID, Title: "c4"}

	return board.ID, cards
}

func TestScenario_DragCardToTopOfAnotherColumn(t *testing.T) {
	for _, strategy := range []coordinator.Strategy{coordinator.StrategyAtomic, coordinator.StrategySequential} {
		t.Run(string(strategy), func(t *testing.T) {
			// Given
			ctx := context.Background()
			api := startAPI(t)
			boardID, cards := seedScenario(t, api)

			board, err := api.FetchBoard(ctx, boardID)
			require.NoError(t, err)
			require.Len(t, board.Columns, 2)
			require.Equal(t, []string{"c1", "c2", "c3"}, cardTitles(board.Columns[0]))
			require.Equal(t, []int{0, 1, 2}, cardPositions(board.Columns[0]))

			colA := ordering.ColumnScope(board.Columns[0].ID)
			colB := ordering.ColumnScope(board.Columns[1].ID)

			var failures []error
			dispatcher := dnd.NewQueueDispatcher(
				coordinator.New(api, strategy, zap.NewNop()).Handle,
				zap.NewNop(),
				dnd.WithErrorHandler(func(event dnd.FinalizeEvent, err error) { failures = append(failures, err) }),
			)
			engine := dnd.NewEngine(listsOf(board), dispatcher, zap.NewNop())

			c1, c2, c3, c4 := cards["c1"], cards["c2"], cards["c3"], cards["c4"]

			// When: c2 is dragged over B and dropped at its top
			require.NoError(t, engine.Apply(dnd.Consider{ItemID: c2.ID, Candidates: dnd.Lists{colA: {c1, c3}}}))
			require.NoError(t, engine.Apply(dnd.Consider{ItemID: c2.ID, Candidates: dnd.Lists{colB: {c4, c2}}}))
			require.NoError(t, engine.Apply(dnd.Finalize{
				ItemID:     c2.ID,
				Candidates: dnd.Lists{colA: {c1, c3}, colB: {c2, c4}},
				Trigger:    dnd.TriggerDroppedIntoAnother,
				Source:     dnd.SourcePointer,
			}))

			closeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			require.NoError(t, dispatcher.Close(closeCtx))
			require.Empty(t, failures)

			// Then
			board, err = api.FetchBoard(ctx, boardID)
			require.NoError(t, err)
			assert.Equal(t, []string{"c1", "c3"}, cardTitles(board.Columns[0]))
			assert.Equal(t, []int{0, 1}, cardPositions(board.Columns[0]))
			assert.Equal(t, []string{"c2", "c4"}, cardTitles(board.Columns[1]))
			assert.Equal(t, []int{0, 1}, cardPositions(board.Columns[1]))
			assert.Equal(t, colB.ID, board.Columns[1].Cards[0].ColumnID)

			// the engine's optimistic lists match what was persisted
			assert.Equal(t, listsOf(board), engine.State().Lists)
		})
	}
}

func TestScenario_CancelledDragWritesNothing(t *testing.T) {
	ctx := context.Background()
	api := startAPI(t)
	boardID, cards := seedScenario(t, api)

	before, err := api.FetchBoard(ctx, boardID)
	require.NoError(t, err)
	colB := ordering.ColumnScope(before.Columns[1].ID)

	writes := 0
	dispatcher := dnd.DispatcherFunc(func(event dnd.FinalizeEvent) { writes++ })
	engine := dnd.NewEngine(listsOf(before), dispatcher, nil)

	require.NoError(t, engine.Apply(dnd.Consider{ItemID: cards["c1"].ID, Candidates: dnd.Lists{colB: {cards["c1"], cards["c4"]}}}))
	require.NoError(t, engine.Apply(dnd.Cancel{}))

	after, err := api.FetchBoard(ctx, boardID)
	require.NoError(t, err)
	assert.Equal(t, 0, writes)
	assert.Equal(t, listsOf(before), listsOf(after))
	assert.Equal(t, cardPositions(before.Columns[0]), cardPositions(after.Columns[0]))
	assert.Equal(t, listsOf(before), engine.State().Lists)
}

func TestScenario_ColumnReorder(t *testing.T) {
	ctx := context.Background()
	api := startAPI(t)
	boardID, _ := seedScenario(t, api)

	board, err := api.FetchBoard(ctx, boardID)
	require.NoError(t, err)
	scope := ordering.BoardScope(boardID)
	a := dnd.Item{ID: board.Columns[0].ID, Title: "A"}
	b := dnd.Item{ID: board.Columns[1].ID, Title: "B"}

	handle := coordinator.New(api, coordinator.StrategyAtomic, nil).Handle
	var handleErr error
	engine := dnd.NewEngine(listsOf(board), dnd.DispatcherFunc(func(event dnd.FinalizeEvent) {
		handleErr = handle(ctx, event)
	}), nil)

	require.NoError(t, engine.Apply(dnd.Finalize{ItemID: b.ID, Candidates: dnd.Lists{scope: {b, a}}, Source: dnd.SourceKeyboard}))
	require.NoError(t, handleErr)

	board, err = api.FetchBoard(ctx, boardID)
	require.NoError(t, err)
	assert.Equal(t, "B", board.Columns[0].Name)
	assert.Equal(t, "A", board.Columns[1].Name)
}
