package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/ordering"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

const (
	moveModeReassign = "reassign"
	moveModeAtomic   = "move"
)

// CardService defines the interface for card business logic.
// Cards are ordered within a column and may move between columns of one board.
type CardService interface {
	CreateCard(ctx context.Context, columnID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*dto.CardResponse, error)
	ReorderCards(ctx context.Context, columnID uuid.UUID, req *dto.ReorderRequest) error
	ReassignCard(ctx context.Context, cardID uuid.UUID, req *dto.ReassignCardRequest) (*dto.MoveCardResponse, error)
	MoveCard(ctx context.Context, cardID uuid.UUID, req *dto.MoveCardRequest) (*dto.MoveCardResponse, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}

// cardServiceImpl is the implementation of CardService
type cardServiceImpl struct {
	columnRepo repository.ColumnRepository
	cardRepo   repository.CardRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
	notifier
}

// NewCardService creates a new instance of CardService
func NewCardService(
	columnRepo repository.ColumnRepository,
	cardRepo repository.CardRepository,
	publisher realtime.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) CardService {
	return &cardServiceImpl{
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		metrics:    m,
		logger:     logger,
		notifier:   notifier{publisher: publisher, logger: logger},
	}
}

// CreateCard inserts a card at the top of the column
func (s *cardServiceImpl) CreateCard(ctx context.Context, columnID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, toAppError(err, "Column not found", "Failed to fetch column")
	}

	card := &domain.Card{
		ColumnID:    columnID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	}
	if len(req.Labels) > 0 {
		if !json.Valid(req.Labels) {
			return nil, response.NewAppError(response.ErrCodeValidation, "labels must be valid JSON", "")
		}
		card.Labels = datatypes.JSON(req.Labels)
	}

	if err := s.cardRepo.CreateAtTop(ctx, card); err != nil {
		return nil, toAppError(err, "Column not found", "Failed to create card")
	}

	if s.metrics != nil {
		s.metrics.IncrementCardCreated()
	}
	s.logger.Info("Card inserted at top",
		zap.String("column_id", columnID.String()),
		zap.String("card_id", card.ID.String()))
	s.notify(ctx, realtime.NewScopeChangedEvent(realtime.EventItemCreated, column.BoardID, &card.ID, ordering.ColumnScope(columnID)))

	return toCardResponse(card), nil
}

// GetCard retrieves a card by ID
func (s *cardServiceImpl) GetCard(ctx context.Context, cardID uuid.UUID) (*dto.CardResponse, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, toAppError(err, "Card not found", "Failed to fetch card")
	}
	return toCardResponse(card), nil
}

// ReorderCards persists position = index for every card of the column
func (s *cardServiceImpl) ReorderCards(ctx context.Context, columnID uuid.UUID, req *dto.ReorderRequest) error {
	if req.ScopeID != nil && *req.ScopeID != columnID {
		return response.NewAppError(response.ErrCodeValidation, "scopeId does not match the column in the path", "")
	}

	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return toAppError(err, "Column not found", "Failed to fetch column")
	}

	err = s.cardRepo.Reorder(ctx, columnID, req.OrderedItemIDs)
	if s.metrics != nil {
		s.metrics.RecordReorder(string(ordering.ScopeKindColumn), len(req.OrderedItemIDs), err)
	}
	if err != nil {
		s.logger.Warn("Card reorder rejected",
			zap.String("column_id", columnID.String()),
			zap.Int("size", len(req.OrderedItemIDs)),
			zap.Error(err))
		return toAppError(err, "Column not found", "Failed to reorder cards")
	}

	s.notify(ctx, realtime.NewScopeChangedEvent(realtime.EventScopeReordered, column.BoardID, nil, ordering.ColumnScope(columnID)))
	return nil
}

// ReassignCard changes the column of a card and its position with one write.
// Sibling positions in either column are not touched.
func (s *cardServiceImpl) ReassignCard(ctx context.Context, cardID uuid.UUID, req *dto.ReassignCardRequest) (*dto.MoveCardResponse, error) {
	if req.ItemID != nil && *req.ItemID != cardID {
		return nil, response.NewAppError(response.ErrCodeValidation, "itemId does not match the card in the path", "")
	}
	if req.Position == nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "position is required", "")
	}

	outcome, err := s.cardRepo.Reassign(ctx, cardID, req.NewParentScopeID, *req.Position)
	if s.metrics != nil {
		s.metrics.RecordCardMove(moveModeReassign, err)
	}
	if err != nil {
		s.logger.Warn("Card reassignment failed",
			zap.String("card_id", cardID.String()),
			zap.String("destination_column_id", req.NewParentScopeID.String()),
			zap.Error(err))
		return nil, toAppError(err, "Card or column not found", "Failed to reassign card")
	}

	s.notifyMove(ctx, outcome)
	return toMoveCardResponse(outcome), nil
}

// MoveCard reassigns a card and rewrites the destination and source orders in
// one transaction
func (s *cardServiceImpl) MoveCard(ctx context.Context, cardID uuid.UUID, req *dto.MoveCardRequest) (*dto.MoveCardResponse, error) {
	outcome, err := s.cardRepo.Move(ctx, repository.MoveInput{
		CardID:              cardID,
		DestinationColumnID: req.DestinationColumnID,
		DestinationOrder:    req.DestinationOrder,
		SourceOrder:         req.SourceOrder,
	})
	if s.metrics != nil {
		s.metrics.RecordCardMove(moveModeAtomic, err)
	}
	if err != nil {
		s.logger.Warn("Card move failed",
			zap.String("card_id", cardID.String()),
			zap.String("destination_column_id", req.DestinationColumnID.String()),
			zap.Error(err))
		return nil, toAppError(err, "Card or column not found", "Failed to move card")
	}

	s.logger.Info("Card moved",
		zap.String("card_id", cardID.String()),
		zap.String("source_column_id", outcome.SourceColumnID.String()),
		zap.String("destination_column_id", outcome.DestinationColumnID.String()))
	s.notifyMove(ctx, outcome)
	return toMoveCardResponse(outcome), nil
}

// DeleteCard removes a card. Remaining cards keep their positions.
func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	card, err := s.cardRepo.Delete(ctx, cardID)
	if err != nil {
		return toAppError(err, "Card not found", "Failed to delete card")
	}

	column, err := s.columnRepo.FindByID(ctx, card.ColumnID)
	if err != nil {
		s.logger.Warn("Card deleted but its column could not be loaded for notification",
			zap.String("card_id", cardID.String()),
			zap.Error(err))
		return nil
	}
	s.notify(ctx, realtime.NewScopeChangedEvent(realtime.EventItemDeleted, column.BoardID, &cardID, ordering.ColumnScope(card.ColumnID)))
	return nil
}

func (s *cardServiceImpl) notifyMove(ctx context.Context, outcome *repository.MoveOutcome) {
	scopes := []ordering.Scope{ordering.ColumnScope(outcome.DestinationColumnID)}
	if outcome.SourceColumnID != outcome.DestinationColumnID {
		scopes = append(scopes, ordering.ColumnScope(outcome.SourceColumnID))
	}
	s.notify(ctx, realtime.NewScopeChangedEvent(realtime.EventCardMoved, outcome.BoardID, &outcome.CardID, scopes...))
}
