package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/response"
)

// APIError is a non-2xx answer from the board API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("board api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("board api returned status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// BoardAPIClient defines the interface for board API communication
type BoardAPIClient interface {
	// FetchBoard reads the persisted snapshot of a board
	FetchBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	CreateBoard(ctx context.Context, req dto.CreateBoardRequest) (*dto.BoardResponse, error)
	CreateColumn(ctx context.Context, boardID uuid.UUID, req dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	CreateCard(ctx context.Context, columnID uuid.UUID, req dto.CreateCardRequest) (*dto.CardResponse, error)

	ReorderColumns(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error
	ReorderCards(ctx context.Context, columnID uuid.UUID, orderedIDs []uuid.UUID) error
	ReassignCard(ctx context.Context, cardID, columnID uuid.UUID, position int) error
	MoveCard(ctx context.Context, cardID uuid.UUID, req dto.MoveCardRequest) error
}

// boardAPIClient implements BoardAPIClient over HTTP
type boardAPIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewBoardAPIClient creates a new board API client. baseURL includes the API base
// path, e.g. http://localhost:8000/api/boards. token may be empty.
func NewBoardAPIClient(baseURL, token string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) BoardAPIClient {
	return &boardAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

func (c *boardAPIClient) FetchBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	var board dto.BoardDetailResponse
	if err := c.do(ctx, http.MethodGet, "/boards/"+boardID.String(), nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *boardAPIClient) CreateBoard(ctx context.Context, req dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	var board dto.BoardResponse
	if err := c.do(ctx, http.MethodPost, "/boards", req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *boardAPIClient) CreateColumn(ctx context.Context, boardID uuid.UUID, req dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	var column dto.ColumnResponse
	if err := c.do(ctx, http.MethodPost, "/boards/"+boardID.String()+"/columns", req, &column); err != nil {
		return nil, err
	}
	return &column, nil
}

func (c *boardAPIClient) CreateCard(ctx context.Context, columnID uuid.UUID, req dto.CreateCardRequest) (*dto.CardResponse, error) {
	var card dto.CardResponse
	if err := c.do(ctx, http.MethodPost, "/columns/"+columnID.String()+"/cards", req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *boardAPIClient) ReorderColumns(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error {
	req := dto.ReorderRequest{ScopeID: &boardID, OrderedItemIDs: nonNil(orderedIDs)}
	return c.do(ctx, http.MethodPut, "/boards/"+boardID.String()+"/columns/order", req, nil)
}

func (c *boardAPIClient) ReorderCards(ctx context.Context, columnID uuid.UUID, orderedIDs []uuid.UUID) error {
	req := dto.ReorderRequest{ScopeID: &columnID, OrderedItemIDs: nonNil(orderedIDs)}
	return c.do(ctx, http.MethodPut, "/columns/"+columnID.String()+"/cards/order", req, nil)
}

func (c *boardAPIClient) ReassignCard(ctx context.Context, cardID, columnID uuid.UUID, position int) error {
	req := dto.ReassignCardRequest{ItemID: &cardID, NewParentScopeID: columnID, Position: &position}
	return c.do(ctx, http.MethodPatch, "/cards/"+cardID.String()+"/parent", req, nil)
}

func (c *boardAPIClient) MoveCard(ctx context.Context, cardID uuid.UUID, req dto.MoveCardRequest) error {
	return c.do(ctx, http.MethodPost, "/cards/"+cardID.String()+"/move", req, nil)
}

// do sends one request and decodes the success envelope's data into out
func (c *boardAPIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	c.metrics.RecordExternalAPICall(url, method, statusCode, duration, err)

	if err != nil {
		c.logger.Error("Board API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error response.ErrorBody `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		c.logger.Warn("Board API returned non-success status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("code", apiErr.Code),
			zap.Duration("duration", duration),
		)
		return apiErr
	}

	c.logger.Debug("Board API request succeeded",
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("duration", duration),
	)
	if out == nil {
		return nil
	}

	envelope := struct {
		Data interface{} `json:"data"`
	}{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
