package battleship

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgergames/battleship/internal/entity"
	"github.com/ledgergames/battleship/internal/repository"
)

const (
	playerAlice = "alice"
	playerBob   = "bob"
)

// boardAlpha places the fleet against the left edge of the grid.
func boardAlpha() entity.Board {
	return entity.Board{
		"AAAAA-----",
		"BBBB------",
		"CCC-------",
		"SSS-------",
		"DD--------",
		"----------",
		"----------",
		"----------",
		"----------",
		"----------",
	}
}

// boardBravo places the fleet against the right edge, leaving column B empty.
func boardBravo() entity.Board {
	return entity.Board{
		"-----AAAAA",
		"-----BBBB-",
		"-----CCC--",
		"-----SSS--",
		"-----DD---",
		"----------",
		"----------",
		"----------",
		"----------",
		"----------",
	}
}

// mustExecute validates and applies a transaction, failing the test on
// either step.
func mustExecute(t *testing.T, store GameStore, txn *Transaction) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, Validate(ctx, txn, store))
	require.NoError(t, Apply(ctx, txn, store))
}

// newJoinedGame creates a game with both players seated: alice on board
// alpha, bob on board bravo, alice to fire first.
func newJoinedGame(t *testing.T, name string) *repository.MemoryRepository {
	t.Helper()

	store := repository.NewMemoryRepository()
	mustExecute(t, store, &Transaction{Name: name, Action: ActionCreate, Signer: playerAlice})
	mustExecute(t, store, &Transaction{Name: name, Action: ActionJoin, Board: boardAlpha(), Signer: playerAlice})
	mustExecute(t, store, &Transaction{Name: name, Action: ActionJoin, Board: boardBravo(), Signer: playerBob})

	return store
}

// sinkFleet plays alice through every ship cell on bob's board, with bob
// returning harmless shots in between, until alice wins the game.
func sinkFleet(t *testing.T, store GameStore, name string) {
	t.Helper()

	var shipCells []*Transaction
	bravo := boardBravo()
	for row := 0; row < entity.BoardSize; row++ {
		for column := 0; column < entity.BoardSize; column++ {
			if bravo.At(column, row) != entity.EmptyCell {
				shipCells = append(shipCells, fire(name, playerAlice, string(rune('A'+column)), row+1))
			}
		}
	}

	// Columns I and J on alice's board hold no ships, so bob always misses.
	var missCells []*Transaction
	for _, column := range []string{"J", "I"} {
		for row := 1; row <= entity.BoardSize; row++ {
			missCells = append(missCells, fire(name, playerBob, column, row))
		}
	}

	for i, shot := range shipCells {
		mustExecute(t, store, shot)
		if i < len(shipCells)-1 {
			mustExecute(t, store, missCells[i])
		}
	}
}

// fire builds a FIRE transaction for the given signer and coordinates.
func fire(name, signer, column string, row int) *Transaction {
	return &Transaction{
		Name:   name,
		Action: ActionFire,
		Column: column,
		Row:    row,
		Signer: signer,
	}
}
