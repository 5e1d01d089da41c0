package entity

import (
	"errors"
	"fmt"
)

const BoardSize = 10

// Cell markers. Ship boards use EmptyCell plus the fleet letters below;
// target boards use CellUnknown, CellHit and CellMiss.
const (
	EmptyCell   = '-'
	CellUnknown = '?'
	CellHit     = 'H'
	CellMiss    = 'M'
)

var (
	ErrInvalidColumn = errors.New("column must be a letter from A to J")
	ErrInvalidRow    = errors.New("row must be a number from 1 to 10")
)

// Ship is one vessel of the fixed fleet: a letter marking its cells on
// the ship board and the number of cells it occupies.
type Ship struct {
	Letter byte
	Size   int
}

// Fleet is the fixed ship set every submitted board must place exactly once:
// carrier, battleship, cruiser, submarine, destroyer.
var Fleet = []Ship{
	{Letter: 'A', Size: 5},
	{Letter: 'B', Size: 4},
	{Letter: 'C', Size: 3},
	{Letter: 'S', Size: 3},
	{Letter: 'D', Size: 2},
}

// Board is a 10x10 grid encoded as ten row strings of ten cells each.
// Row 1 is the first element, column A the first character of a row.
type Board []string

// NewTargetBoard returns a board with every cell unknown.
func NewTargetBoard() Board {
	rows := make(Board, BoardSize)
	for i := range rows {
		rows[i] = "??????????"
	}
	return rows
}

// At returns the cell at the zero-based column and row indices.
func (that Board) At(column, row int) byte {
	return that[row][column]
}

// WithCell returns a copy of the board with the cell at the zero-based
// column and row indices replaced by mark. The receiver is not modified.
func (that Board) WithCell(column, row int, mark byte) Board {
	rows := make(Board, len(that))
	copy(rows, that)

	cells := []byte(rows[row])
	cells[column] = mark
	rows[row] = string(cells)

	return rows
}

// Validate checks that the board is a well-formed ship placement: a 10x10
// grid containing exactly the fixed fleet, each ship a straight contiguous
// run of its full size, every other cell empty.
func (that Board) Validate() error {
	if len(that) != BoardSize {
		return fmt.Errorf("board must have %d rows, got %d", BoardSize, len(that))
	}

	allowed := map[byte]bool{EmptyCell: true}
	for _, ship := range Fleet {
		allowed[ship.Letter] = true
	}

	cells := make(map[byte][][2]int)
	for row, line := range that {
		if len(line) != BoardSize {
			return fmt.Errorf("row %d must have %d cells, got %d", row+1, BoardSize, len(line))
		}

		for column := 0; column < BoardSize; column++ {
			mark := line[column]
			if !allowed[mark] {
				return fmt.Errorf("row %d contains unknown cell %q", row+1, string(mark))
			}
			if mark != EmptyCell {
				cells[mark] = append(cells[mark], [2]int{column, row})
			}
		}
	}

	for _, ship := range Fleet {
		if err := validateShip(ship, cells[ship.Letter]); err != nil {
			return err
		}
	}

	return nil
}

// validateShip checks that the occupied cells form a straight contiguous
// run of exactly the ship's size. Cells arrive in row-major order, so a
// horizontal run has ascending columns and a vertical run ascending rows.
func validateShip(ship Ship, occupied [][2]int) error {
	if len(occupied) != ship.Size {
		return fmt.Errorf("ship %q must occupy %d cells, got %d", string(ship.Letter), ship.Size, len(occupied))
	}

	first := occupied[0]
	horizontal, vertical := true, true
	for i, cell := range occupied {
		if cell[0] != first[0]+i || cell[1] != first[1] {
			horizontal = false
		}
		if cell[0] != first[0] || cell[1] != first[1]+i {
			vertical = false
		}
	}

	if !horizontal && !vertical {
		return fmt.Errorf("ship %q must be placed in a straight contiguous line", string(ship.Letter))
	}

	return nil
}

// AllShipsHit reports whether every ship cell on the defender's board has
// been marked as a hit on the attacker's target board.
func AllShipsHit(ships, target Board) bool {
	for row := 0; row < BoardSize; row++ {
		for column := 0; column < BoardSize; column++ {
			if ships.At(column, row) != EmptyCell && target.At(column, row) != CellHit {
				return false
			}
		}
	}
	return true
}

// ParseColumn converts a column letter A-J into a zero-based index.
func ParseColumn(column string) (int, error) {
	if len(column) != 1 || column[0] < 'A' || column[0] > 'J' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}
	return int(column[0] - 'A'), nil
}

// ParseRow converts a row number 1-10 into a zero-based index.
func ParseRow(row int) (int, error) {
	if row < 1 || row > BoardSize {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return row - 1, nil
}
