package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/ticboard-backend/internal/boardops"
	"github.com/rocketscienceinc/ticboard-backend/internal/entity"
	"github.com/rocketscienceinc/ticboard-backend/internal/pkg"
)

type boardRepo interface {
	CreateOrUpdate(ctx context.Context, id string, board *entity.Board) error
	GetByID(ctx context.Context, id string) (*entity.Board, error)
	DeleteByID(ctx context.Context, id string) error
}

// BoardState - a stored board together with its derived turn values.
type BoardState struct {
	ID            string                   `json:"id"`
	Cells         [entity.BoardSize]string `json:"cells"`
	TurnCount     int                      `json:"turn_count"`
	CurrentPlayer string                   `json:"current_player"`
}

type BoardManager struct {
	logger    *slog.Logger
	boardRepo boardRepo
}

func NewBoardManager(logger *slog.Logger, boardRepo boardRepo) *BoardManager {
	return &BoardManager{
		logger:    logger.With("component", "board_manager"),
		boardRepo: boardRepo,
	}
}

// CreateBoard - stores a new board. A nil cells argument means the default
// all-empty board; supplied cells are validated before they are accepted.
func (that *BoardManager) CreateBoard(ctx context.Context, cells *[entity.BoardSize]string) (*BoardState, error) {
	var board *entity.Board

	if cells == nil {
		board = entity.NewBoard()
	} else {
		if err := boardops.Validate(*cells); err != nil {
			return nil, fmt.Errorf("rejected supplied board: %w", err)
		}
		board = entity.NewBoardWith(*cells)
	}

	id := pkg.GenerateNewBoardID()
	if err := that.boardRepo.CreateOrUpdate(ctx, id, board); err != nil {
		return nil, fmt.Errorf("could not store board: %w", err)
	}

	that.logger.Info("created board", "id", id, "turns", board.TurnCount())

	return newBoardState(id, board), nil
}

// UpdateBoard - replaces the cells of an existing board with an externally
// mutated snapshot.
func (that *BoardManager) UpdateBoard(ctx context.Context, id string, cells [entity.BoardSize]string) (*BoardState, error) {
	if err := boardops.Validate(cells); err != nil {
		return nil, fmt.Errorf("rejected supplied board: %w", err)
	}

	if _, err := that.boardRepo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("could not get board: %w", err)
	}

	board := entity.NewBoardWith(cells)
	if err := that.boardRepo.CreateOrUpdate(ctx, id, board); err != nil {
		return nil, fmt.Errorf("could not store board: %w", err)
	}

	return newBoardState(id, board), nil
}

// GetBoard - fetches a stored board with its derived turn values.
func (that *BoardManager) GetBoard(ctx context.Context, id string) (*BoardState, error) {
	board, err := that.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get board: %w", err)
	}

	return newBoardState(id, board), nil
}

// RenderBoard - fetches a stored board and renders it as a text grid.
func (that *BoardManager) RenderBoard(ctx context.Context, id string) (string, error) {
	board, err := that.boardRepo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("could not get board: %w", err)
	}

	return boardops.Render(board.Cells()), nil
}

// DeleteBoard - removes a stored board.
func (that *BoardManager) DeleteBoard(ctx context.Context, id string) error {
	if err := that.boardRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("could not delete board: %w", err)
	}

	that.logger.Info("deleted board", "id", id)

	return nil
}

func newBoardState(id string, board *entity.Board) *BoardState {
	return &BoardState{
		ID:            id,
		Cells:         board.Cells(),
		TurnCount:     board.TurnCount(),
		CurrentPlayer: board.CurrentPlayer(),
	}
}
