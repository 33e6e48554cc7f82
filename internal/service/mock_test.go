package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository"
)

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc           func(ctx context.Context, board *domain.Board) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindWithContentsFunc func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindAllFunc          func(ctx context.Context) ([]*domain.Board, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindWithContents(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindWithContentsFunc != nil {
		return m.FindWithContentsFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindAll(ctx context.Context) ([]*domain.Board, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockColumnRepository is a mock implementation of ColumnRepository
type MockColumnRepository struct {
	CreateAtEndFunc    func(ctx context.Context, column *domain.Column) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	FindByBoardIDFunc  func(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	ReorderFunc        func(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error
	UpdateWipLimitFunc func(ctx context.Context, id uuid.UUID, limit *int) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
}

func (m *MockColumnRepository) CreateAtEnd(ctx context.Context, column *domain.Column) error {
	if m.CreateAtEndFunc != nil {
		return m.CreateAtEndFunc(ctx, column)
	}
	return nil
}

func (m *MockColumnRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockColumnRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockColumnRepository) Reorder(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error {
	if m.ReorderFunc != nil {
		return m.ReorderFunc(ctx, boardID, orderedIDs)
	}
	return nil
}

func (m *MockColumnRepository) UpdateWipLimit(ctx context.Context, id uuid.UUID, limit *int) error {
	if m.UpdateWipLimitFunc != nil {
		return m.UpdateWipLimitFunc(ctx, id, limit)
	}
	return nil
}

func (m *MockColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	CreateAtTopFunc      func(ctx context.Context, card *domain.Card) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	FindByColumnIDFunc   func(ctx context.Context, columnID uuid.UUID) ([]*domain.Card, error)
	CountByColumnIDsFunc func(ctx context.Context, columnIDs []uuid.UUID) (map[uuid.UUID]int, error)
	ReorderFunc          func(ctx context.Context, columnID uuid.UUID, orderedIDs []uuid.UUID) error
	ReassignFunc         func(ctx context.Context, cardID, newColumnID uuid.UUID, position int) (*repository.MoveOutcome, error)
	MoveFunc             func(ctx context.Context, input repository.MoveInput) (*repository.MoveOutcome, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
}

func (m *MockCardRepository) CreateAtTop(ctx context.Context, card *domain.Card) error {
	if m.CreateAtTopFunc != nil {
		return m.CreateAtTopFunc(ctx, card)
	}
	return nil
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCardRepository) FindByColumnID(ctx context.Context, columnID uuid.UUID) ([]*domain.Card, error) {
	if m.FindByColumnIDFunc != nil {
		return m.FindByColumnIDFunc(ctx, columnID)
	}
	return nil, nil
}

func (m *MockCardRepository) CountByColumnIDs(ctx context.Context, columnIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if m.CountByColumnIDsFunc != nil {
		return m.CountByColumnIDsFunc(ctx, columnIDs)
	}
	return map[uuid.UUID]int{}, nil
}

func (m *MockCardRepository) Reorder(ctx context.Context, columnID uuid.UUID, orderedIDs []uuid.UUID) error {
	if m.ReorderFunc != nil {
		return m.ReorderFunc(ctx, columnID, orderedIDs)
	}
	return nil
}

func (m *MockCardRepository) Reassign(ctx context.Context, cardID, newColumnID uuid.UUID, position int) (*repository.MoveOutcome, error) {
	if m.ReassignFunc != nil {
		return m.ReassignFunc(ctx, cardID, newColumnID, position)
	}
	return nil, nil
}

func (m *MockCardRepository) Move(ctx context.Context, input repository.MoveInput) (*repository.MoveOutcome, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, nil
}

// MockPublisher records published events
type MockPublisher struct {
	mu     sync.Mutex
	Err    error
	Events []realtime.ScopeChangedEvent
}

func (m *MockPublisher) Publish(ctx context.Context, event realtime.ScopeChangedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return m.Err
}
