package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgergames/battleship/internal/apperror"
	"github.com/ledgergames/battleship/internal/entity"
)

// MemoryRepository keeps game records in an in-process map. Records are
// stored as JSON so that, exactly like the redis repository, Get hands out
// a private copy and no caller ever aliases stored state.
type MemoryRepository struct {
	games map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		games: make(map[string][]byte),
	}
}

func (that *MemoryRepository) Get(_ context.Context, name string) (*entity.Game, error) {
	gameJSON, ok := that.games[name]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	var game entity.Game
	if err := json.Unmarshal(gameJSON, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *MemoryRepository) Put(_ context.Context, name string, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.games[name] = gameJSON

	return nil
}

func (that *MemoryRepository) Contains(_ context.Context, name string) (bool, error) {
	_, ok := that.games[name]
	return ok, nil
}
