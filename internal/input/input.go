// Package input maps keyboard and pointer events from the presentation shells onto a session.
package input

import (
	"ctchen222/tictactoe-solo/internal/game"
	"ctchen222/tictactoe-solo/internal/session"
)

// Action is a shell-independent user intent.
type Action int

const (
	None Action = iota
	Up
	Down
	Left
	Right
	Submit
	Reset
	Quit
)

var directions = map[Action]session.Direction{
	Up:    session.Up,
	Down:  session.Down,
	Left:  session.Left,
	Right: session.Right,
}

// Dispatch applies a to s. Cursor movement and reset work in every game status;
// a submitted move goes through the session's own legality checks.
func Dispatch(s *session.Session, a Action) (ex session.Exchange, quit bool) {
	if d, ok := directions[a]; ok {
		s.MoveCursor(d)
		return ex, false
	}

	switch a {
	case Submit:
		return s.Submit(), false
	case Reset:
		s.Reset()
	case Quit:
		return ex, true
	}
	return ex, false
}

// PointToCell maps a pointer position in pixels to a board cell, with cellSize pixels per cell.
func PointToCell(x, y, cellSize int) (row, col int, ok bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/cellSize, x/cellSize
	if !game.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// Click plays the cell under the pointer. Clicks outside the board are ignored.
func Click(s *session.Session, x, y, cellSize int) session.Exchange {
	row, col, ok := PointToCell(x, y, cellSize)
	if !ok {
		return session.Exchange{Status: s.Status()}
	}
	return s.ApplyPlayerMove(row, col)
}
