package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type ColumnHandler struct {
	columnService service.ColumnService
}

func NewColumnHandler(columnService service.ColumnService) *ColumnHandler {
	return &ColumnHandler{
		columnService: columnService,
	}
}

// CreateColumn godoc
// @Summary      Append column
// @Description  Appends a column after every existing column of the board
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateColumnRequest true "Column"
// @Success      201 {object} response.SuccessResponse{data=dto.ColumnResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns [post]
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId", "board")
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.CreateColumn(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, column)
}

// ReorderColumns godoc
// @Summary      Reorder columns
// @Description  Persists position = index for every column of the board in one transaction.
// @Description  orderedItemIds must list exactly the board's columns, each once.
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.ReorderRequest true "Ordered column IDs"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns/order [put]
func (h *ColumnHandler) ReorderColumns(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId", "board")
	if !ok {
		return
	}

	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.columnService.ReorderColumns(c.Request.Context(), boardID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Columns reordered successfully"})
}

// GetColumn godoc
// @Summary      Get column
// @Tags         columns
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ColumnDetailResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId} [get]
func (h *ColumnHandler) GetColumn(c *gin.Context) {
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	column, err := h.columnService.GetColumn(c.Request.Context(), columnID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}

// UpdateWipLimit godoc
// @Summary      Set WIP limit
// @Description  Sets or clears the advisory WIP limit. Limits are never enforced.
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.UpdateWipLimitRequest true "WIP limit"
// @Success      200 {object} response.SuccessResponse{data=dto.ColumnResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId}/wip-limit [patch]
func (h *ColumnHandler) UpdateWipLimit(c *gin.Context) {
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	var req dto.UpdateWipLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.UpdateWipLimit(c.Request.Context(), columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}

// DeleteColumn godoc
// @Summary      Delete column
// @Description  Deletes the column and its cards. Remaining columns keep their positions.
// @Tags         columns
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId} [delete]
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	if err := h.columnService.DeleteColumn(c.Request.Context(), columnID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Column deleted successfully"})
}
