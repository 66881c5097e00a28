package game

// Mark represents the state of a single cell: empty, the human player's X or the opponent's O.
type Mark string

// Status is the derived state of a game.
type Status string

const (
	// Cell marks
	Empty    Mark = ""
	Player   Mark = "X"
	Opponent Mark = "O"

	// Game statuses
	InProgress  Status = "in_progress"
	PlayerWon   Status = "player_won"
	OpponentWon Status = "opponent_won"
	Draw        Status = "draw"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2
	Size      = BorderMax - BorderMin + 1
)

// Terminal reports whether no further moves are accepted in this status.
func (s Status) Terminal() bool {
	return s == PlayerWon || s == OpponentWon || s == Draw
}

// Position addresses a cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a 3x3 grid of marks. The zero value is an empty board.
type Board [Size][Size]Mark

// InBounds reports whether row and col address a cell of the board.
func InBounds(row, col int) bool {
	return row >= BorderMin && row <= BorderMax && col >= BorderMin && col <= BorderMax
}

// IsEmpty reports whether the cell holds no mark. Callers must bounds-check first.
func (b *Board) IsEmpty(row, col int) bool {
	return b[row][col] == Empty
}

// At returns the mark at the given cell. Callers must bounds-check first.
func (b *Board) At(row, col int) Mark {
	return b[row][col]
}

// Set writes mark unconditionally. It is used for real moves and for look-ahead.
func (b *Board) Set(row, col int, mark Mark) {
	b[row][col] = mark
}

// HasLine reports whether any row, column or diagonal is entirely mark.
func (b *Board) HasLine(mark Mark) bool {
	if mark == Empty {
		return false
	}
	for _, line := range lines {
		if b[line[0].Row][line[0].Col] == mark &&
			b[line[1].Row][line[1].Col] == mark &&
			b[line[2].Row][line[2].Col] == mark {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for r := range [Size]int{} {
		for c := range [Size]int{} {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Count returns the number of marks on the board.
func (b *Board) Count() int {
	n := 0
	for r := range [Size]int{} {
		for c := range [Size]int{} {
			if b[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// Reset clears every cell.
func (b *Board) Reset() {
	*b = Board{}
}
