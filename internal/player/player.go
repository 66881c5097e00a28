package player

import (
	"ctchen222/tictactoe-solo/internal/session"
)

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Player is a human connected over one websocket, playing their own session
// against the computer. Only the connection's read loop touches Session.
type Player struct {
	ID      string
	Conn    Connection
	Session *session.Session
}

func NewPlayer(id string, conn Connection, s *session.Session) *Player {
	return &Player{
		ID:      id,
		Conn:    conn,
		Session: s,
	}
}
