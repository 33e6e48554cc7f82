package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// decodeData unmarshals the data field of a success envelope into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var resp response.SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success envelope, got %s", w.Body.String())
	}

	dataBytes, _ := json.Marshal(resp.Data)
	if err := json.Unmarshal(dataBytes, out); err != nil {
		t.Fatalf("Failed to unmarshal data: %v", err)
	}
}

// decodeErrorCode returns the error code of a failure envelope
func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Success bool               `json:"success"`
		Error   response.ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Success {
		t.Fatalf("Expected failure envelope, got %s", w.Body.String())
	}
	return resp.Error.Code
}

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	CreateBoardFunc func(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardFunc    func(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	ListBoardsFunc  func(ctx context.Context) ([]*dto.BoardResponse, error)
	DeleteBoardFunc func(ctx context.Context, boardID uuid.UUID) error
}

func (m *MockBoardService) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) ListBoards(ctx context.Context) ([]*dto.BoardResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, boardID)
	}
	return nil
}

// MockColumnService is a mock implementation of ColumnService
type MockColumnService struct {
	CreateColumnFunc   func(ctx context.Context, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	GetColumnFunc      func(ctx context.Context, columnID uuid.UUID) (*dto.ColumnDetailResponse, error)
	ReorderColumnsFunc func(ctx context.Context, boardID uuid.UUID, req *dto.ReorderRequest) error
	UpdateWipLimitFunc func(ctx context.Context, columnID uuid.UUID, req *dto.UpdateWipLimitRequest) (*dto.ColumnResponse, error)
	DeleteColumnFunc   func(ctx context.Context, columnID uuid.UUID) error
}

func (m *MockColumnService) CreateColumn(ctx context.Context, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	if m.CreateColumnFunc != nil {
		return m.CreateColumnFunc(ctx, boardID, req)
	}
	return nil, nil
}

func (m *MockColumnService) GetColumn(ctx context.Context, columnID uuid.UUID) (*dto.ColumnDetailResponse, error) {
	if m.GetColumnFunc != nil {
		return m.GetColumnFunc(ctx, columnID)
	}
	return nil, nil
}

func (m *MockColumnService) ReorderColumns(ctx context.Context, boardID uuid.UUID, req *dto.ReorderRequest) error {
	if m.ReorderColumnsFunc != nil {
		return m.ReorderColumnsFunc(ctx, boardID, req)
	}
	return nil
}

func (m *MockColumnService) UpdateWipLimit(ctx context.Context, columnID uuid.UUID, req *dto.UpdateWipLimitRequest) (*dto.ColumnResponse, error) {
	if m.UpdateWipLimitFunc != nil {
		return m.UpdateWipLimitFunc(ctx, columnID, req)
	}
	return nil, nil
}

func (m *MockColumnService) DeleteColumn(ctx context.Context, columnID uuid.UUID) error {
	if m.DeleteColumnFunc != nil {
		return m.DeleteColumnFunc(ctx, columnID)
	}
	return nil
}

// MockCardService is a mock implementation of CardService
type MockCardService struct {
	CreateCardFunc   func(ctx context.Context, columnID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	GetCardFunc      func(ctx context.Context, cardID uuid.UUID) (*dto.CardResponse, error)
	ReorderCardsFunc func(ctx context.Context, columnID uuid.UUID, req *dto.ReorderRequest) error
	ReassignCardFunc func(ctx context.Context, cardID uuid.UUID, req *dto.ReassignCardRequest) (*dto.MoveCardResponse, error)
	MoveCardFunc     func(ctx context.Context, cardID uuid.UUID, req *dto.MoveCardRequest) (*dto.MoveCardResponse, error)
	DeleteCardFunc   func(ctx context.Context, cardID uuid.UUID) error
}

func (m *MockCardService) CreateCard(ctx context.Context, columnID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	if m.CreateCardFunc != nil {
		return m.CreateCardFunc(ctx, columnID, req)
	}
	return nil, nil
}

func (m *MockCardService) GetCard(ctx context.Context, cardID uuid.UUID) (*dto.CardResponse, error) {
	if m.GetCardFunc != nil {
		return m.GetCardFunc(ctx, cardID)
	}
	return nil, nil
}

func (m *MockCardService) ReorderCards(ctx context.Context, columnID uuid.UUID, req *dto.ReorderRequest) error {
	if m.ReorderCardsFunc != nil {
		return m.ReorderCardsFunc(ctx, columnID, req)
	}
	return nil
}

func (m *MockCardService) ReassignCard(ctx context.Context, cardID uuid.UUID, req *dto.ReassignCardRequest) (*dto.MoveCardResponse, error) {
	if m.ReassignCardFunc != nil {
		return m.ReassignCardFunc(ctx, cardID, req)
	}
	return nil, nil
}

func (m *MockCardService) MoveCard(ctx context.Context, cardID uuid.UUID, req *dto.MoveCardRequest) (*dto.MoveCardResponse, error) {
	if m.MoveCardFunc != nil {
		return m.MoveCardFunc(ctx, cardID, req)
	}
	return nil, nil
}

func (m *MockCardService) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if m.DeleteCardFunc != nil {
		return m.DeleteCardFunc(ctx, cardID)
	}
	return nil
}
