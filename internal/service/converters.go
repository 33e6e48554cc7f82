package service

import (
	"encoding/json"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/wip"
)

func toBoardResponse(board *domain.Board) *dto.BoardResponse {
	return &dto.BoardResponse{
		ID:          board.ID,
		Name:        board.Name,
		Description: board.Description,
		CreatedAt:   board.CreatedAt,
		UpdatedAt:   board.UpdatedAt,
	}
}

func toColumnResponse(column *domain.Column, cardCount int) dto.ColumnResponse {
	return dto.ColumnResponse{
		ID:        column.ID,
		BoardID:   column.BoardID,
		Name:      column.Name,
		Position:  column.Position,
		WipLimit:  column.WipLimit,
		Wip:       wip.Evaluate(cardCount, column.WipLimit),
		CreatedAt: column.CreatedAt,
		UpdatedAt: column.UpdatedAt,
	}
}

func toColumnDetailResponse(column *domain.Column, cards []domain.Card) dto.ColumnDetailResponse {
	detail := dto.ColumnDetailResponse{
		ColumnResponse: toColumnResponse(column, len(cards)),
		Cards:          make([]dto.CardResponse, len(cards)),
	}
	for i := range cards {
		detail.Cards[i] = *toCardResponse(&cards[i])
	}
	return detail
}

func toCardResponse(card *domain.Card) *dto.CardResponse {
	resp := &dto.CardResponse{
		ID:          card.ID,
		ColumnID:    card.ColumnID,
		Title:       card.Title,
		Description: card.Description,
		Position:    card.Position,
		AssigneeID:  card.AssigneeID,
		DueDate:     card.DueDate,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
	if len(card.Labels) > 0 {
		resp.Labels = json.RawMessage(card.Labels)
	}
	return resp
}

func toMoveCardResponse(outcome *repository.MoveOutcome) *dto.MoveCardResponse {
	return &dto.MoveCardResponse{
		CardID:              outcome.CardID,
		BoardID:             outcome.BoardID,
		SourceColumnID:      outcome.SourceColumnID,
		DestinationColumnID: outcome.DestinationColumnID,
	}
}
