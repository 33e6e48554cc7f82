package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	ListBoards(ctx context.Context) ([]*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
	notifier
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	publisher realtime.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		metrics:   m,
		logger:    logger,
		notifier:  notifier{publisher: publisher, logger: logger},
	}
}

// CreateBoard creates a new empty board
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	board := &domain.Board{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board created", zap.String("board_id", board.ID.String()))

	return toBoardResponse(board), nil
}

// GetBoard returns the persisted snapshot of a board: columns and cards in
// canonical order, with the WIP status of every column
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, err := s.boardRepo.FindWithContents(ctx, boardID)
	if err != nil {
		return nil, toAppError(err, "Board not found", "Failed to fetch board")
	}

	detail := &dto.BoardDetailResponse{
		BoardResponse: *toBoardResponse(board),
		Columns:       make([]dto.ColumnDetailResponse, len(board.Columns)),
	}
	for i := range board.Columns {
		column := &board.Columns[i]
		detail.Columns[i] = toColumnDetailResponse(column, column.Cards)
	}
	return detail, nil
}

// ListBoards lists boards without their contents
func (s *boardServiceImpl) ListBoards(ctx context.Context) ([]*dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, len(boards))
	for i, board := range boards {
		responses[i] = toBoardResponse(board)
	}
	return responses, nil
}

// DeleteBoard removes a board with all of its columns and cards
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return toAppError(err, "Board not found", "Failed to delete board")
	}

	s.logger.Info("Board deleted", zap.String("board_id", boardID.String()))
	s.notify(ctx, realtime.NewScopeChangedEvent(realtime.EventItemDeleted, boardID, &boardID))
	return nil
}
