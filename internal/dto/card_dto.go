package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CreateCardRequest represents the request to insert a card at the top of a column
type CreateCardRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=255" example:"Write release notes"`
	Description string          `json:"description" example:"Cover the ordering fixes"`
	AssigneeID  *uuid.UUID      `json:"assigneeId,omitempty" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	DueDate     *time.Time      `json:"dueDate,omitempty" example:"2024-03-31T23:59:59Z"`
	Labels      json.RawMessage `json:"labels,omitempty" swaggertype:"array,string" example:"bug,urgent"`
}

// CardResponse represents a card
type CardResponse struct {
	ID          uuid.UUID       `json:"cardId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	ColumnID    uuid.UUID       `json:"columnId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Title       string          `json:"title" example:"Write release notes"`
	Description string          `json:"description" example:"Cover the ordering fixes"`
	Position    int             `json:"position" example:"0"`
	AssigneeID  *uuid.UUID      `json:"assigneeId,omitempty" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	DueDate     *time.Time      `json:"dueDate,omitempty" example:"2024-03-31T23:59:59Z"`
	Labels      json.RawMessage `json:"labels,omitempty" swaggertype:"array,string"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time       `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}
