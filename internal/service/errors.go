package service

import (
	"errors"

	"gorm.io/gorm"

	"kanban-board-api/internal/ordering"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// toAppError classifies a repository error. Malformed orders are the caller's
// fault and never reach the database.
func toAppError(err error, notFoundMessage, failureMessage string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return response.NewAppError(response.ErrCodeNotFound, notFoundMessage, "")
	case errors.Is(err, ordering.ErrDuplicateID),
		errors.Is(err, ordering.ErrEmptyID):
		return response.NewAppError(response.ErrCodeValidation, "Ordered ids are malformed", err.Error())
	case errors.Is(err, repository.ErrScopeMismatch):
		return response.NewAppError(response.ErrCodeValidation, "Ordered ids must be exactly the current members of the scope", err.Error())
	case errors.Is(err, repository.ErrCrossBoardMove):
		return response.NewAppError(response.ErrCodeValidation, "Cards cannot move to another board", err.Error())
	case errors.Is(err, repository.ErrConcurrentMove):
		return response.NewAppError(response.ErrCodeConflict, "Card was moved concurrently, reload the board", err.Error())
	default:
		return response.NewAppError(response.ErrCodeInternal, failureMessage, err.Error())
	}
}
