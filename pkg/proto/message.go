package proto

import (
	"ctchen222/tictactoe-solo/internal/game"
)

// Client message types.
const (
	TypeMove   = "move"
	TypeSubmit = "submit"
	TypeCursor = "cursor"
	TypeReset  = "reset"
)

// Server message types.
const (
	TypeState = "state"
	TypeError = "error"
)

// ClientToServerMessage represents a message from the client to the server.
// Position is [row, col] for move; Direction is up, down, left or right for cursor.
type ClientToServerMessage struct {
	Type      string `json:"type" validate:"required,oneof=move submit cursor reset"`
	Position  []int  `json:"position,omitempty" validate:"omitempty,len=2"`
	Direction string `json:"direction,omitempty" validate:"omitempty,direction"`
}

// OpponentMove is the cell the computer marked and the rule that chose it.
type OpponentMove struct {
	Position game.Position `json:"position"`
	Rule     string        `json:"rule"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type      string         `json:"type" validate:"required,oneof=state error"`
	Reason    string         `json:"reason,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	Board     [][]game.Mark  `json:"board,omitempty"`
	Status    game.Status    `json:"status,omitempty"`
	Cursor    *game.Position `json:"cursor,omitempty"`
	Accepted  bool           `json:"accepted"`
	Opponent  *OpponentMove  `json:"opponent,omitempty"`
}
