package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/ordering"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

func TestColumnService_CreateColumn(t *testing.T) {
	boardID := uuid.New()
	limit := 3

	tests := []struct {
		name        string
		createErr   error
		wantErrCode string
	}{
		{name: "success: column appended"},
		{name: "failure: board does not exist", createErr: gorm.ErrRecordNotFound, wantErrCode: response.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			publisher := &MockPublisher{}
			columnRepo := &MockColumnRepository{
				CreateAtEndFunc: func(ctx context.Context, column *domain.Column) error {
					column.ID = uuid.New()
					column.Position = 6
					return tt.createErr
				},
			}
			service := NewColumnService(columnRepo, &MockCardRepository{}, publisher, testMetrics(), zap.NewNop())

			// When
			got, err := service.CreateColumn(context.Background(), boardID, &dto.CreateColumnRequest{Name: "Doing", WipLimit: &limit})

			// Then
			if tt.wantErrCode != "" {
				assertAppErrorCode(t, err, tt.wantErrCode)
				assert.Empty(t, publisher.Events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 6, got.Position)
			assert.Equal(t, boardID, got.BoardID)
			assert.Equal(t, 0, got.Wip.Count)
			assert.False(t, got.Wip.AtLimit)
			require.Len(t, publisher.Events, 1)
			assert.Equal(t, []ordering.Scope{ordering.BoardScope(boardID)}, publisher.Events[0].Scopes)
		})
	}
}

func TestColumnService_ReorderColumns(t *testing.T) {
	boardID := uuid.New()
	otherID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	tests := []struct {
		name        string
		req         *dto.ReorderRequest
		reorderErr  error
		wantErrCode string
		wantCalls   int
	}{
		{
			name:      "success: scope reordered",
			req:       &dto.ReorderRequest{OrderedItemIDs: ids},
			wantCalls: 1,
		},
		{
			name:      "success: matching scope id in body",
			req:       &dto.ReorderRequest{ScopeID: &boardID, OrderedItemIDs: ids},
			wantCalls: 1,
		},
		{
			name:        "failure: scope id differs from path",
			req:         &dto.ReorderRequest{ScopeID: &otherID, OrderedItemIDs: ids},
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "failure: ids are not the members",
			req:         &dto.ReorderRequest{OrderedItemIDs: ids},
			reorderErr:  repository.ErrScopeMismatch,
			wantErrCode: response.ErrCodeValidation,
			wantCalls:   1,
		},
		{
			name:        "failure: duplicate ids",
			req:         &dto.ReorderRequest{OrderedItemIDs: []uuid.UUID{ids[0], ids[0]}},
			reorderErr:  fmt.Errorf("%w: %s", ordering.ErrDuplicateID, ids[0]),
			wantErrCode: response.ErrCodeValidation,
			wantCalls:   1,
		},
		{
			name:        "failure: board does not exist",
			req:         &dto.ReorderRequest{OrderedItemIDs: ids},
			reorderErr:  gorm.ErrRecordNotFound,
			wantErrCode: response.ErrCodeNotFound,
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			calls := 0
			publisher := &MockPublisher{}
			columnRepo := &MockColumnRepository{
				ReorderFunc: func(ctx context.Context, id uuid.UUID, orderedIDs []uuid.UUID) error {
					calls++
					assert.Equal(t, boardID, id)
					assert.Equal(t, tt.req.OrderedItemIDs, orderedIDs)
					return tt.reorderErr
				},
			}
			service := NewColumnService(columnRepo, &MockCardRepository{}, publisher, testMetrics(), zap.NewNop())

			// When
			err := service.ReorderColumns(context.Background(), boardID, tt.req)

			// Then
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErrCode != "" {
				assertAppErrorCode(t, err, tt.wantErrCode)
				assert.Empty(t, publisher.Events)
				return
			}
			require.NoError(t, err)
			require.Len(t, publisher.Events, 1)
			assert.Equal(t, realtime.EventScopeReordered, publisher.Events[0].Type)
		})
	}
}

func TestColumnService_UpdateWipLimit(t *testing.T) {
	columnID := uuid.New()
	limit := 2
	var stored *int

	columnRepo := &MockColumnRepository{
		UpdateWipLimitFunc: func(ctx context.Context, id uuid.UUID, l *int) error {
			stored = l
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
			return &domain.Column{BaseModel: domain.BaseModel{ID: id}, WipLimit: stored}, nil
		},
	}
	cardRepo := &MockCardRepository{
		CountByColumnIDsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
			return map[uuid.UUID]int{columnID: 2}, nil
		},
	}
	service := NewColumnService(columnRepo, cardRepo, nil, nil, zap.NewNop())

	got, err := service.UpdateWipLimit(context.Background(), columnID, &dto.UpdateWipLimitRequest{WipLimit: &limit})
	require.NoError(t, err)
	assert.True(t, got.Wip.AtLimit)
	assert.False(t, got.Wip.OverLimit)

	got, err = service.UpdateWipLimit(context.Background(), columnID, &dto.UpdateWipLimitRequest{})
	require.NoError(t, err)
	assert.Nil(t, got.WipLimit)
	assert.False(t, got.Wip.AtLimit)

	columnRepo.UpdateWipLimitFunc = func(ctx context.Context, id uuid.UUID, l *int) error {
		return gorm.ErrRecordNotFound
	}
	_, err = service.UpdateWipLimit(context.Background(), columnID, &dto.UpdateWipLimitRequest{WipLimit: &limit})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestColumnService_DeleteColumn(t *testing.T) {
	boardID := uuid.New()
	columnID := uuid.New()
	publisher := &MockPublisher{}
	deleted := false

	columnRepo := &MockColumnRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
			if id != columnID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Column{BaseModel: domain.BaseModel{ID: id}, BoardID: boardID}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	service := NewColumnService(columnRepo, &MockCardRepository{}, publisher, nil, zap.NewNop())

	require.NoError(t, service.DeleteColumn(context.Background(), columnID))
	assert.True(t, deleted)
	require.Len(t, publisher.Events, 1)
	assert.Equal(t, boardID, publisher.Events[0].BoardID)

	err := service.DeleteColumn(context.Background(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestColumnService_GetColumn(t *testing.T) {
	columnID := uuid.New()
	columnRepo := &MockColumnRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
			return &domain.Column{BaseModel: domain.BaseModel{ID: id}, Name: "Todo"}, nil
		},
	}
	cardRepo := &MockCardRepository{
		FindByColumnIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Card, error) {
			return []*domain.Card{{Title: "a", Position: 0}, {Title: "b", Position: 1}}, nil
		},
	}
	service := NewColumnService(columnRepo, cardRepo, nil, nil, zap.NewNop())

	got, err := service.GetColumn(context.Background(), columnID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Wip.Count)
	require.Len(t, got.Cards, 2)
	assert.Equal(t, "b", got.Cards[1].Title)
}
