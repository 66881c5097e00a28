package session

import (
	"ctchen222/tictactoe-solo/internal/bot"
	"ctchen222/tictactoe-solo/internal/game"
	"log/slog"
	"math/rand/v2"
)

// Exchange reports the outcome of one ApplyPlayerMove call. A rejected move has
// Accepted false and leaves the session untouched.
type Exchange struct {
	Accepted bool
	Player   game.Position
	Opponent *bot.Decision // nil when the opponent did not reply
	Status   game.Status
}

// Session is one game of a human against the computer opponent: the board, the derived
// status and the keyboard cursor. It is not safe for concurrent use; the owner
// serializes all calls.
type Session struct {
	board    game.Board
	status   game.Status
	cursor   game.Position
	opponent *bot.Opponent
	logger   *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRand makes the opponent draw its opening variation from rng.
func WithRand(rng bot.Rand) Option {
	return func(s *Session) {
		s.opponent = bot.NewOpponent(rng)
	}
}

// WithSeed makes the opponent's opening variation reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(bot.NewSeededRand(seed))
}

// WithLogger sets the logger used for move tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session with an empty board and the cursor on the center cell.
func New(opts ...Option) *Session {
	s := &Session{
		status: game.InProgress,
		cursor: game.Position{Row: 1, Col: 1},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.opponent == nil {
		s.opponent = bot.NewOpponent(bot.NewSeededRand(rand.Uint64()))
	}
	return s
}

// ApplyPlayerMove marks (row, col) for the player and, if the game goes on, lets the
// opponent reply. Moves after the game ended, outside the board or onto an occupied
// cell are ignored.
func (s *Session) ApplyPlayerMove(row, col int) Exchange {
	ex := Exchange{Player: game.Position{Row: row, Col: col}, Status: s.status}

	if s.status != game.InProgress || !game.InBounds(row, col) || !s.board.IsEmpty(row, col) {
		s.logger.Debug("Move rejected", "row", row, "col", col, "status", s.status)
		return ex
	}
	ex.Accepted = true

	s.board.Set(row, col, game.Player)

	// A line is checked before fullness, so a move that does both is a win.
	if s.board.HasLine(game.Player) {
		s.status = game.PlayerWon
		ex.Status = s.status
		return ex
	}
	if s.board.IsFull() {
		s.status = game.Draw
		ex.Status = s.status
		return ex
	}

	decision := s.opponent.Play(&s.board)
	ex.Opponent = &decision
	s.logger.Debug("Opponent replied",
		"player.row", row, "player.col", col,
		"opponent.row", decision.Position.Row, "opponent.col", decision.Position.Col,
		"rule", decision.Rule.String())

	switch {
	case s.board.HasLine(game.Opponent):
		s.status = game.OpponentWon
	case s.board.IsFull():
		s.status = game.Draw
	}
	ex.Status = s.status
	return ex
}

// Submit plays the cell under the cursor.
func (s *Session) Submit() Exchange {
	return s.ApplyPlayerMove(s.cursor.Row, s.cursor.Col)
}

// Reset starts a new game. The cursor stays where it is.
func (s *Session) Reset() {
	s.board.Reset()
	s.status = game.InProgress
}

// CellAt returns the mark at (row, col), or game.Empty outside the board.
func (s *Session) CellAt(row, col int) game.Mark {
	if !game.InBounds(row, col) {
		return game.Empty
	}
	return s.board.At(row, col)
}

// Status returns the current game status.
func (s *Session) Status() game.Status {
	return s.status
}

// Board returns a copy of the board.
func (s *Session) Board() game.Board {
	return s.board
}
