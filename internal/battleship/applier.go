package battleship

import (
	"context"
	"fmt"

	"github.com/ledgergames/battleship/internal/apperror"
	"github.com/ledgergames/battleship/internal/entity"
)

// Apply executes a previously validated transaction against the store,
// committing a full replacement record. It must only be called after
// Validate has accepted the same transaction on the same store snapshot;
// all rule preconditions are guaranteed to hold here.
func Apply(ctx context.Context, txn *Transaction, store GameStore) error {
	switch txn.Action {
	case ActionCreate:
		return applyCreate(ctx, txn, store)
	case ActionJoin:
		return applyJoin(ctx, txn, store)
	case ActionFire:
		return applyFire(ctx, txn, store)
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownAction, txn.Action)
	}
}

func applyCreate(ctx context.Context, txn *Transaction, store GameStore) error {
	game := entity.NewGame(txn.Name)

	if err := store.Put(ctx, txn.Name, game); err != nil {
		return fmt.Errorf("failed to store new game: %w", err)
	}

	return nil
}

func applyJoin(ctx context.Context, txn *Transaction, store GameStore) error {
	game, err := store.Get(ctx, txn.Name)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	if game.Player1 == "" {
		game.Player1 = txn.Signer
		game.Board1 = txn.Board
	} else {
		game.Player2 = txn.Signer
		game.Board2 = txn.Board
	}

	// The game starts once both boards have been entered.
	if game.Player1 != "" && game.Player2 != "" {
		game.State = entity.StateP1Next
	}

	if err = store.Put(ctx, txn.Name, game); err != nil {
		return fmt.Errorf("failed to store joined game: %w", err)
	}

	return nil
}

func applyFire(ctx context.Context, txn *Transaction, store GameStore) error {
	game, err := store.Get(ctx, txn.Name)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	column, err := entity.ParseColumn(txn.Column)
	if err != nil {
		return err
	}

	row, err := entity.ParseRow(txn.Row)
	if err != nil {
		return err
	}

	defender := game.Board2
	target := game.TargetBoard1
	winState := entity.StateP1Win
	nextState := entity.StateP2Next
	if game.State == entity.StateP2Next {
		defender = game.Board1
		target = game.TargetBoard2
		winState = entity.StateP2Win
		nextState = entity.StateP1Next
	}

	mark := byte(entity.CellMiss)
	if defender.At(column, row) != entity.EmptyCell {
		mark = entity.CellHit
	}
	target = target.WithCell(column, row, mark)

	if game.State == entity.StateP2Next {
		game.TargetBoard2 = target
	} else {
		game.TargetBoard1 = target
	}

	game.LastFireColumn = txn.Column
	game.LastFireRow = txn.Row

	// Win detection is resolved within the same fire, never deferred.
	if entity.AllShipsHit(defender, target) {
		game.State = winState
	} else {
		game.State = nextState
	}

	if err = store.Put(ctx, txn.Name, game); err != nil {
		return fmt.Errorf("failed to store fired game: %w", err)
	}

	return nil
}
