// Package window is the graphical shell: an ebiten window showing one session.
package window

import (
	"context"
	"ctchen222/tictactoe-solo/internal/config"
	"ctchen222/tictactoe-solo/internal/game"
	"ctchen222/tictactoe-solo/internal/input"
	"ctchen222/tictactoe-solo/internal/session"
	"ctchen222/tictactoe-solo/internal/telemetry"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keymap = map[ebiten.Key]input.Action{
	ebiten.KeyArrowUp:    input.Up,
	ebiten.KeyArrowDown:  input.Down,
	ebiten.KeyArrowLeft:  input.Left,
	ebiten.KeyArrowRight: input.Right,
	ebiten.KeySpace:      input.Submit,
	ebiten.KeyEnter:      input.Submit,
	ebiten.KeyR:          input.Reset,
	ebiten.KeyEscape:     input.Quit,
}

// Game implements ebiten.Game for a single session.
type Game struct {
	session  *session.Session
	metrics  *telemetry.GameMetrics
	cellSize int
	keys     []ebiten.Key
}

func NewGame(s *session.Session, cellSize int, metrics *telemetry.GameMetrics) *Game {
	return &Game{
		session:  s,
		metrics:  metrics,
		cellSize: cellSize,
	}
}

// Update handles this tick's input. It returns ebiten.Termination once the player quits.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if g.press(k) {
			return ebiten.Termination
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(x, y)
	}
	return nil
}

// press applies the action bound to k and reports whether the player quit.
func (g *Game) press(k ebiten.Key) bool {
	a, ok := keymap[k]
	if !ok {
		return false
	}

	ex, quit := input.Dispatch(g.session, a)
	if a == input.Submit {
		g.report(ex)
	}
	return quit
}

func (g *Game) click(x, y int) {
	if _, _, ok := input.PointToCell(x, y, g.cellSize); !ok {
		return
	}
	g.report(input.Click(g.session, x, y, g.cellSize))
}

func (g *Game) report(ex session.Exchange) {
	g.metrics.Record(context.Background(), ex)
	if ex.Accepted && ex.Status.Terminal() {
		slog.Info("Game over", "status", ex.Status)
	}
}

// Layout keeps the logical screen at exactly three cells square.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.side()
	return side, side
}

func (g *Game) side() int {
	return game.Size * g.cellSize
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(cfg config.Window, s *session.Session, metrics *telemetry.GameMetrics) error {
	g := NewGame(s, cfg.CellSize, metrics)

	ebiten.SetWindowSize(g.side(), g.side())
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
