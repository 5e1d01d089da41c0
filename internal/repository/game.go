package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ledgergames/battleship/internal/apperror"
	"github.com/ledgergames/battleship/internal/entity"
)

// GameRepository is the ledger-owned key-value view of game records.
type GameRepository interface {
	Get(ctx context.Context, name string) (*entity.Game, error)
	Put(ctx context.Context, name string, game *entity.Game) error
	Contains(ctx context.Context, name string) (bool, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) Get(ctx context.Context, name string) (*entity.Game, error) {
	gameKey := "game:" + name

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by name: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *dbGame) Put(ctx context.Context, name string, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := "game:" + name
	if err = that.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) Contains(ctx context.Context, name string) (bool, error) {
	gameKey := "game:" + name

	count, err := that.client.Exists(ctx, gameKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check game existence: %w", err)
	}

	return count > 0, nil
}
