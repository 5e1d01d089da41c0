package apperror

import "errors"

// Structural errors: the transaction record itself is malformed or
// incomplete, detected before any game-state check.
var (
	ErrNameNotSet    = errors.New("game name is not set")
	ErrActionNotSet  = errors.New("action is not set")
	ErrInvalidName   = errors.New("only letters a-z A-Z and numbers 0-9 are allowed in the game name")
	ErrUnknownAction = errors.New("unknown action")
)

// Rule violations: the record is well-formed but illegal against the
// current game state. Each sentinel is a stable reason code for the host
// ledger.
var (
	ErrNameTaken        = errors.New("game already exists")
	ErrGameNotFound     = errors.New("game not found")
	ErrGameStarted      = errors.New("game can no longer be joined")
	ErrGameNotStarted   = errors.New("game is not started")
	ErrGameComplete     = errors.New("game is already complete")
	ErrInvalidBoard     = errors.New("invalid board")
	ErrAlreadyJoined    = errors.New("player has already joined this game")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellAlreadyFired = errors.New("cell has already been fired upon")
)
