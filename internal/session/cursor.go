package session

import (
	"ctchen222/tictactoe-solo/internal/game"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDirection = errors.New("unknown direction")

// Direction is a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "up", "down", "left" or "right", ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MoveCursor moves the selection one cell, wrapping around the edges.
// It is allowed in any game status.
func (s *Session) MoveCursor(d Direction) {
	switch d {
	case Up:
		s.cursor.Row = wrap(s.cursor.Row - 1)
	case Down:
		s.cursor.Row = wrap(s.cursor.Row + 1)
	case Left:
		s.cursor.Col = wrap(s.cursor.Col - 1)
	case Right:
		s.cursor.Col = wrap(s.cursor.Col + 1)
	}
}

// Cursor returns the selected cell.
func (s *Session) Cursor() game.Position {
	return s.cursor
}

func wrap(i int) int {
	return (i + game.Size) % game.Size
}
