package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type CardHandler struct {
	cardService service.CardService
}

func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// CreateCard godoc
// @Summary      Insert card at top
// @Description  Inserts a card at the top of the column. Existing cards shift down by one in the same transaction.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.CreateCardRequest true "Card"
// @Success      201 {object} response.SuccessResponse{data=dto.CardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId}/cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// ReorderCards godoc
// @Summary      Reorder cards
// @Description  Persists position = index for every card of the column in one transaction.
// @Description  orderedItemIds must list exactly the column's cards, each once.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.ReorderRequest true "Ordered card IDs"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId}/cards/order [put]
func (h *CardHandler) ReorderCards(c *gin.Context) {
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.cardService.ReorderCards(c.Request.Context(), columnID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Cards reordered successfully"})
}

// GetCard godoc
// @Summary      Get card
// @Tags         cards
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /cards/{cardId} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	cardID, ok := parseUUIDParam(c, "cardId", "card")
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(c.Request.Context(), cardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// ReassignCard godoc
// @Summary      Reassign card
// @Description  Moves the card to another column of the same board with a single write of its column and position.
// @Description  Sibling positions in either column are left untouched.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.ReassignCardRequest true "New parent"
// @Success      200 {object} response.SuccessResponse{data=dto.MoveCardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /cards/{cardId}/parent [patch]
func (h *CardHandler) ReassignCard(c *gin.Context) {
	cardID, ok := parseUUIDParam(c, "cardId", "card")
	if !ok {
		return
	}

	var req dto.ReassignCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	moved, err := h.cardService.ReassignCard(c.Request.Context(), cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, moved)
}

// MoveCard godoc
// @Summary      Move card across columns
// @Description  Reassigns the card and rewrites the destination and source orders in one transaction.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.MoveCardRequest true "Move"
// @Success      200 {object} response.SuccessResponse{data=dto.MoveCardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /cards/{cardId}/move [post]
func (h *CardHandler) MoveCard(c *gin.Context) {
	cardID, ok := parseUUIDParam(c, "cardId", "card")
	if !ok {
		return
	}

	var req dto.MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	moved, err := h.cardService.MoveCard(c.Request.Context(), cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, moved)
}

// DeleteCard godoc
// @Summary      Delete card
// @Description  Deletes the card. Remaining cards keep their positions.
// @Tags         cards
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /cards/{cardId} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	cardID, ok := parseUUIDParam(c, "cardId", "card")
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), cardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Card deleted successfully"})
}
