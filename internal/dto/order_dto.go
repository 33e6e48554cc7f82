package dto

import "github.com/google/uuid"

// ReorderRequest persists position = index for every member of a scope
// @Description orderedItemIds must list exactly the current members of the scope, each once.
// @Description scopeId is optional and must equal the scope in the path when given.
type ReorderRequest struct {
	ScopeID        *uuid.UUID  `json:"scopeId,omitempty" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	OrderedItemIDs []uuid.UUID `json:"orderedItemIds" binding:"required" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
}

// ReassignCardRequest moves a card to another column with a single field-level write
// @Description itemId is optional and must equal the card in the path when given.
type ReassignCardRequest struct {
	ItemID           *uuid.UUID `json:"itemId,omitempty" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	NewParentScopeID uuid.UUID  `json:"newParentScopeId" binding:"required" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Position         *int       `json:"position" binding:"required" example:"0"`
}

// MoveCardRequest reassigns a card and rewrites both column orders atomically
// @Description sourceOrder may be omitted to leave the source column untouched;
// @Description an empty array means the source column is now empty.
type MoveCardRequest struct {
	DestinationColumnID uuid.UUID   `json:"destinationColumnId" binding:"required" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	DestinationOrder    []uuid.UUID `json:"destinationOrder" binding:"required"`
	SourceOrder         []uuid.UUID `json:"sourceOrder"`
}

// MoveCardResponse reports the scopes a move touched
type MoveCardResponse struct {
	CardID              uuid.UUID `json:"cardId"`
	BoardID             uuid.UUID `json:"boardId"`
	SourceColumnID      uuid.UUID `json:"sourceColumnId"`
	DestinationColumnID uuid.UUID `json:"destinationColumnId"`
}
