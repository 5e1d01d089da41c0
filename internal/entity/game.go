package entity

// Game states as they appear on the ledger. P1-WIN and P2-WIN are absorbing.
const (
	StateNew    = "NEW"
	StateP1Next = "P1-NEXT"
	StateP2Next = "P2-NEXT"
	StateP1Win  = "P1-WIN"
	StateP2Win  = "P2-WIN"
)

// Game is the full record stored on the ledger under the game name.
// Board1/Board2 hold each player's ship placements, TargetBoard1/TargetBoard2
// record the shots that player has fired at the opponent.
type Game struct {
	Name           string `json:"name"`
	State          string `json:"state"`
	Player1        string `json:"player_1,omitempty"`
	Player2        string `json:"player_2,omitempty"`
	Board1         Board  `json:"board_1,omitempty"`
	Board2         Board  `json:"board_2,omitempty"`
	TargetBoard1   Board  `json:"target_board_1"`
	TargetBoard2   Board  `json:"target_board_2"`
	LastFireColumn string `json:"last_fire_column,omitempty"`
	LastFireRow    int    `json:"last_fire_row,omitempty"`
}

func NewGame(name string) *Game {
	return &Game{
		Name:         name,
		State:        StateNew,
		TargetBoard1: NewTargetBoard(),
		TargetBoard2: NewTargetBoard(),
	}
}

func (that *Game) IsFinished() bool {
	return that.State == StateP1Win || that.State == StateP2Win
}

func (that *Game) IsStarted() bool {
	return that.State != StateNew
}

// PlayerOnTurn returns the identity allowed to fire in the current state,
// or an empty string if nobody is on turn.
func (that *Game) PlayerOnTurn() string {
	switch that.State {
	case StateP1Next:
		return that.Player1
	case StateP2Next:
		return that.Player2
	default:
		return ""
	}
}

func (that *Game) HasPlayer(id string) bool {
	if that.Player1 != "" && that.Player1 == id {
		return true
	}
	if that.Player2 != "" && that.Player2 == id {
		return true
	}
	return false
}
