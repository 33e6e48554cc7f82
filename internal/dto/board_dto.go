package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest represents the request to create a new board
type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255" example:"Sprint 42"`
	Description string `json:"description" binding:"max=2000" example:"Work planned for the sprint"`
}

// BoardResponse represents a board without its columns
type BoardResponse struct {
	ID          uuid.UUID `json:"boardId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Name        string    `json:"name" example:"Sprint 42"`
	Description string    `json:"description" example:"Work planned for the sprint"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// BoardDetailResponse is the persisted snapshot of a board
// @Description Columns ascending by position, each with its cards ascending by position.
// @Description Clients resync their local lists from this response.
type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnDetailResponse `json:"columns"`
}
