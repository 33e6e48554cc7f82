package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/ordering"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// ColumnService defines the interface for column business logic.
// Columns are ordered within a board.
type ColumnService interface {
	CreateColumn(ctx context.Context, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	GetColumn(ctx context.Context, columnID uuid.UUID) (*dto.ColumnDetailResponse, error)
	ReorderColumns(ctx context.Context, boardID uuid.UUID, req *dto.ReorderRequest) error
	UpdateWipLimit(ctx context.Context, columnID uuid.UUID, req *dto.UpdateWipLimitRequest) (*dto.ColumnResponse, error)
	DeleteColumn(ctx context.Context, columnID uuid.UUID) error
}

// columnServiceImpl is the implementation of ColumnService
type columnServiceImpl struct {
	columnRepo repository.ColumnRepository
	cardRepo   repository.CardRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
	notifier
}

// NewColumnService creates a new instance of ColumnService
func NewColumnService(
	columnRepo repository.ColumnRepository,
	cardRepo repository.CardRepository,
	publisher realtime.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) ColumnService {
	return &columnServiceImpl{
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		metrics:    m,
		logger:     logger,
		notifier:   notifier{publisher: publisher, logger: logger},
	}
}

// CreateColumn appends a column after every existing column of the board
func (s *columnServiceImpl) CreateColumn(ctx context.Context, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	column := &domain.Column{
		BoardID:  boardID,
		Name:     req.Name,
		WipLimit: req.WipLimit,
	}

	if err := s.columnRepo.CreateAtEnd(ctx, column); err != nil {
		return nil, toAppError(err, "Board not found", "Failed to create column")
	}

	if s.metrics != nil {
		s.metrics.IncrementColumnCreated()
	}
	s.logger.Info("Column appended",
		zap.String("board_id", boardID.String()),
		zap.String("column_id", column.ID.String()),
		zap.Int("position", column.Position))
	s.notify(ctx, realtime.NewScopeChangedEvent(realtime.EventItemCreated, boardID, &column.ID, ordering.BoardScope(boardID)))

	resp := toColumnResponse(column, 0)
	return &resp, nil
}

// GetColumn returns a column with its cards in canonical order
func (s *columnServiceImpl) GetColumn(ctx context.Context, columnID uuid.UUID) (*dto.ColumnDetailResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, toAppError(err, "Column not found", "Failed to fetch column")
	}

	cards, err := s.cardRepo.FindByColumnID(ctx, columnID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cards", err.Error())
	}

	values := make([]domain.Card, len(cards))
	for i, card := range cards {
		values[i] = *card
	}
	detail := toColumnDetailResponse(column, values)
	return &detail, nil
}

// ReorderColumns persists position = index for every column of the board
func (s *columnServiceImpl) ReorderColumns(ctx context.Context, boardID uuid.UUID, req *dto.ReorderRequest) error {
	if req.ScopeID != nil && *req.ScopeID != boardID {
		return response.NewAppError(response.ErrCodeValidation, "scopeId does not match the board in the path", "")
	}

	err := s.columnRepo.Reorder(ctx, boardID, req.OrderedItemIDs)
	if s.metrics != nil {
		s.metrics.RecordReorder(string(ordering.ScopeKindBoard), len(req.OrderedItemIDs), err)
	}
	if err != nil {
		s.logger.Warn("Column reorder rejected",
			zap.String("board_id", boardID.String()),
			zap.Int("size", len(req.OrderedItemIDs)),
			zap.Error(err))
		return toAppError(err, "Board not found", "Failed to reorder columns")
	}

	s.notify(ctx, realtime.NewScopeChangedEvent(realtime.EventScopeReordered, boardID, nil, ordering.BoardScope(boardID)))
	return nil
}

// UpdateWipLimit sets or clears the advisory WIP limit of a column
func (s *columnServiceImpl) UpdateWipLimit(ctx context.Context, columnID uuid.UUID, req *dto.UpdateWipLimitRequest) (*dto.ColumnResponse, error) {
	if err := s.columnRepo.UpdateWipLimit(ctx, columnID, req.WipLimit); err != nil {
		return nil, toAppError(err, "Column not found", "Failed to update WIP limit")
	}

	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, toAppError(err, "Column not found", "Failed to fetch column")
	}
	counts, err := s.cardRepo.CountByColumnIDs(ctx, []uuid.UUID{columnID})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count cards", err.Error())
	}

	resp := toColumnResponse(column, counts[columnID])
	return &resp, nil
}

// DeleteColumn removes a column and its cards. Remaining columns keep their positions.
func (s *columnServiceImpl) DeleteColumn(ctx context.Context, columnID uuid.UUID) error {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return toAppError(err, "Column not found", "Failed to fetch column")
	}

	if err := s.columnRepo.Delete(ctx, columnID); err != nil {
		return toAppError(err, "Column not found", "Failed to delete column")
	}

	s.notify(ctx, realtime.NewScopeChangedEvent(realtime.EventItemDeleted, column.BoardID, &columnID, ordering.BoardScope(column.BoardID)))
	return nil
}
