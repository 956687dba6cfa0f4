package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ticboard-backend/internal/entity"
)

var ErrBoardNotFound = errors.New("board not found")

type BoardRepository interface {
	CreateOrUpdate(ctx context.Context, id string, board *entity.Board) error
	GetByID(ctx context.Context, id string) (*entity.Board, error)
	DeleteByID(ctx context.Context, id string) error
}

// dbBoard - redis-backed board snapshots, one JSON value per board.
type dbBoard struct {
	client *redis.Client
}

type boardSnapshot struct {
	ID    string                   `json:"id"`
	Cells [entity.BoardSize]string `json:"cells"`
}

func NewBoardRepository(client *redis.Client) BoardRepository {
	return &dbBoard{
		client: client,
	}
}

func (that *dbBoard) CreateOrUpdate(ctx context.Context, id string, board *entity.Board) error {
	snapshot := boardSnapshot{
		ID:    id,
		Cells: board.Cells(),
	}

	boardJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	boardKey := "board:" + id
	if err = that.client.Set(ctx, boardKey, boardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set board: %w", err)
	}

	return nil
}

func (that *dbBoard) GetByID(ctx context.Context, id string) (*entity.Board, error) {
	boardKey := "board:" + id

	response, err := that.client.Get(ctx, boardKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrBoardNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get board by ID: %w", err)
	}

	var snapshot boardSnapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return entity.NewBoardWith(snapshot.Cells), nil
}

func (that *dbBoard) DeleteByID(ctx context.Context, id string) error {
	boardKey := "board:" + id

	if err := that.client.Del(ctx, boardKey).Err(); err != nil {
		return fmt.Errorf("failed to delete board by ID: %w", err)
	}

	return nil
}
