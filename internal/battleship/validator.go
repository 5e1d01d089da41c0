package battleship

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/ledgergames/battleship/internal/apperror"
	"github.com/ledgergames/battleship/internal/entity"
)

var nameRegexp = regexp.MustCompile(`^[a-zA-Z0-9]*$`)

// Validate decides whether the transaction is legal against the current
// store state. It never mutates the store, and checks run in a fixed
// order with the first violation reported. Rejections carry a sentinel
// from apperror so the host ledger gets a stable reason code.
func Validate(ctx context.Context, txn *Transaction, store GameStore) error {
	if txn.Name == "" {
		return apperror.ErrNameNotSet
	}

	if txn.Action == "" {
		return apperror.ErrActionNotSet
	}

	if !nameRegexp.MatchString(txn.Name) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidName, txn.Name)
	}

	switch txn.Action {
	case ActionCreate:
		return validateCreate(ctx, txn, store)
	case ActionJoin:
		return validateJoin(ctx, txn, store)
	case ActionFire:
		return validateFire(ctx, txn, store)
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownAction, txn.Action)
	}
}

func validateCreate(ctx context.Context, txn *Transaction, store GameStore) error {
	exists, err := store.Contains(ctx, txn.Name)
	if err != nil {
		return fmt.Errorf("failed to check game existence: %w", err)
	}

	if exists {
		return fmt.Errorf("%w: %s", apperror.ErrNameTaken, txn.Name)
	}

	return nil
}

func validateJoin(ctx context.Context, txn *Transaction, store GameStore) error {
	game, err := store.Get(ctx, txn.Name)
	if err != nil {
		return err
	}

	if game.IsFinished() {
		return apperror.ErrGameComplete
	}

	if game.IsStarted() {
		return apperror.ErrGameStarted
	}

	if txn.Board == nil {
		return fmt.Errorf("%w: board is not set", apperror.ErrInvalidBoard)
	}

	if err = txn.Board.Validate(); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidBoard, err)
	}

	if game.HasPlayer(txn.Signer) {
		return apperror.ErrAlreadyJoined
	}

	return nil
}

func validateFire(ctx context.Context, txn *Transaction, store GameStore) error {
	game, err := store.Get(ctx, txn.Name)
	if err != nil {
		return err
	}

	if game.IsFinished() {
		return apperror.ErrGameComplete
	}

	if !game.IsStarted() {
		return apperror.ErrGameNotStarted
	}

	if game.PlayerOnTurn() != txn.Signer {
		return apperror.ErrNotYourTurn
	}

	column, err := entity.ParseColumn(txn.Column)
	if err != nil {
		return err
	}

	row, err := entity.ParseRow(txn.Row)
	if err != nil {
		return err
	}

	target := game.TargetBoard1
	if game.State == entity.StateP2Next {
		target = game.TargetBoard2
	}

	if target.At(column, row) != entity.CellUnknown {
		return fmt.Errorf("%w: %s%d", apperror.ErrCellAlreadyFired, txn.Column, txn.Row)
	}

	return nil
}

// IsStructural reports whether a rejection came from the shape of the
// record rather than the game rules.
func IsStructural(err error) bool {
	return errors.Is(err, apperror.ErrNameNotSet) ||
		errors.Is(err, apperror.ErrActionNotSet) ||
		errors.Is(err, apperror.ErrInvalidName) ||
		errors.Is(err, apperror.ErrUnknownAction)
}
