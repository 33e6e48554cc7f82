package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/wip"
)

// CreateColumnRequest represents the request to append a column to a board
type CreateColumnRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255" example:"In Progress"`
	WipLimit *int   `json:"wipLimit,omitempty" binding:"omitempty,min=0" example:"3"`
}

// UpdateWipLimitRequest sets or clears the advisory WIP limit of a column
// @Description wipLimit null removes the limit
type UpdateWipLimitRequest struct {
	WipLimit *int `json:"wipLimit" binding:"omitempty,min=0" example:"3"`
}

// ColumnResponse represents a column with its advisory WIP status
type ColumnResponse struct {
	ID        uuid.UUID  `json:"columnId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	BoardID   uuid.UUID  `json:"boardId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Name      string     `json:"name" example:"In Progress"`
	Position  int        `json:"position" example:"0"`
	WipLimit  *int       `json:"wipLimit" example:"3"`
	Wip       wip.Status `json:"wip"`
	CreatedAt time.Time  `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time  `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// ColumnDetailResponse is a column together with its ordered cards
type ColumnDetailResponse struct {
	ColumnResponse
	Cards []CardResponse `json:"cards"`
}
