package battleship

import (
	"context"

	"github.com/ledgergames/battleship/internal/entity"
)

// Actions accepted by the battleship transaction family.
const (
	ActionCreate = "CREATE"
	ActionJoin   = "JOIN"
	ActionFire   = "FIRE"
)

// Transaction is the wire record of a single submitted action. Board is
// present only for JOIN, Column and Row only for FIRE. Signer is the
// authenticated identity attached by the transport layer, never part of
// the payload itself.
type Transaction struct {
	Name   string       `json:"Name"`
	Action string       `json:"Action"`
	Board  entity.Board `json:"Board,omitempty"`
	Column string       `json:"Column,omitempty"`
	Row    int          `json:"Row,omitempty"`

	Signer string `json:"-"`
}

// GameStore is the key-value view of the ledger state this family runs
// against. The host ledger owns the records; Get returns a private copy
// and Put commits a full replacement.
type GameStore interface {
	Get(ctx context.Context, name string) (*entity.Game, error)
	Put(ctx context.Context, name string, game *entity.Game) error
	Contains(ctx context.Context, name string) (bool, error)
}
