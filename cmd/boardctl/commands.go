package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"kanban-board-api/internal/coordinator"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/ordering"
)

var showCmd = &cobra.Command{
	Use:   "show <boardId>",
	Short: "Print a board with its columns and cards in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boardID, err := parseID(args[0], "board")
		if err != nil {
			return err
		}
		board, err := api.FetchBoard(cmd.Context(), boardID)
		if err != nil {
			return err
		}
		printBoard(cmd.OutOrStdout(), board)
		return nil
	},
}

var createBoardCmd = &cobra.Command{
	Use:   "create-board <name>",
	Short: "Create an empty board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := api.CreateBoard(cmd.Context(), dto.CreateBoardRequest{Name: args[0]})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), board.ID)
		return nil
	},
}

var addColumnCmd = &cobra.Command{
	Use:   "add-column <boardId> <name>",
	Short: "Append a column to a board",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		boardID, err := parseID(args[0], "board")
		if err != nil {
			return err
		}
		req := dto.CreateColumnRequest{Name: args[1]}
		if cmd.Flags().Changed("wip") {
			limit, _ := cmd.Flags().GetInt("wip")
			req.WipLimit = &limit
		}
		column, err := api.CreateColumn(cmd.Context(), boardID, req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), column.ID)
		return nil
	},
}

var addCardCmd = &cobra.Command{
	Use:   "add-card <columnId> <title>",
	Short: "Add a card at the top of a column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		columnID, err := parseID(args[0], "column")
		if err != nil {
			return err
		}
		card, err := api.CreateCard(cmd.Context(), columnID, dto.CreateCardRequest{Title: args[1]})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), card.ID)
		return nil
	},
}

var moveCardCmd = &cobra.Command{
	Use:   "move-card <boardId> <cardId> <columnId> <index>",
	Short: "Move a card to index in a column of the same board",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return move(cmd, args, func(id uuid.UUID) ordering.Scope { return ordering.ColumnScope(id) })
	},
}

var moveColumnCmd = &cobra.Command{
	Use:   "move-column <boardId> <columnId> <index>",
	Short: "Move a column to index on its board",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		// the target scope of a column is its own board
		args = []string{args[0], args[1], args[0], args[2]}
		return move(cmd, args, func(id uuid.UUID) ordering.Scope { return ordering.BoardScope(id) })
	},
}

func init() {
	addColumnCmd.Flags().Int("wip", 0, "advisory WIP limit")
}

// move replays a drag of args[1] to index args[3] of the scope built from args[2]
func move(cmd *cobra.Command, args []string, scopeOf func(uuid.UUID) ordering.Scope) error {
	boardID, err := parseID(args[0], "board")
	if err != nil {
		return err
	}
	itemID, err := parseID(args[1], "item")
	if err != nil {
		return err
	}
	targetID, err := parseID(args[2], "target")
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[3])
	}
	strategy, err := coordinator.ParseStrategy(cfg.GetString(cfgKeyStrategy))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	board, err := api.FetchBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if _, err := runGesture(ctx, api, board, itemID, scopeOf(targetID), index, strategy, logger); err != nil {
		return err
	}

	// reread persisted state so the output shows what the server holds
	board, err = api.FetchBoard(ctx, boardID)
	if err != nil {
		return err
	}
	printBoard(cmd.OutOrStdout(), board)
	return nil
}

func parseID(s, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q", label, s)
	}
	return id, nil
}

func printBoard(w io.Writer, board *dto.BoardDetailResponse) {
	fmt.Fprintf(w, "%s  %s\n", board.Name, board.ID)
	for _, column := range board.Columns {
		limit := "-"
		if column.WipLimit != nil {
			limit = strconv.Itoa(*column.WipLimit)
		}
		marker := ""
		switch {
		case column.Wip.OverLimit:
			marker = "  OVER LIMIT"
		case column.Wip.AtLimit:
			marker = "  at limit"
		}
		fmt.Fprintf(w, "\n[%d] %s (%d/%s)%s  %s\n", column.Position, column.Name, len(column.Cards), limit, marker, column.ID)
		for _, card := range column.Cards {
			fmt.Fprintf(w, "    %3d  %s  %s\n", card.Position, card.Title, card.ID)
		}
	}
}
