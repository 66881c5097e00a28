package terminal

import (
	"ctchen222/tictactoe-solo/internal/game"
	"ctchen222/tictactoe-solo/internal/input"
	"ctchen222/tictactoe-solo/internal/session"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T) (*UI, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 12)

	return New(screen, session.New(session.WithSeed(5)), nil), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// rowText returns the runes on screen row y, with trailing blanks trimmed.
func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := range w {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func markAt(screen tcell.SimulationScreen, row, col int) rune {
	r, _, _, _ := screen.GetContent(originX+col*cellWidth+1, originY+row*cellHeight)
	return r
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Action
	}{
		{name: "up", ev: key(tcell.KeyUp), want: input.Up},
		{name: "down", ev: key(tcell.KeyDown), want: input.Down},
		{name: "left", ev: key(tcell.KeyLeft), want: input.Left},
		{name: "right", ev: key(tcell.KeyRight), want: input.Right},
		{name: "enter", ev: key(tcell.KeyEnter), want: input.Submit},
		{name: "space", ev: runeKey(' '), want: input.Submit},
		{name: "r", ev: runeKey('r'), want: input.Reset},
		{name: "R", ev: runeKey('R'), want: input.Reset},
		{name: "escape", ev: key(tcell.KeyEscape), want: input.Quit},
		{name: "ctrl-c", ev: key(tcell.KeyCtrlC), want: input.Quit},
		{name: "other rune", ev: runeKey('x'), want: input.None},
		{name: "other key", ev: key(tcell.KeyTab), want: input.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionFor(tt.ev); got != tt.want {
				t.Errorf("actionFor() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		wantRow int
		wantCol int
		wantOK  bool
	}{
		{name: "top-left cell", x: originX, y: originY, wantOK: true},
		{name: "middle of center cell", x: originX + cellWidth + 1, y: originY + cellHeight, wantRow: 1, wantCol: 1, wantOK: true},
		{name: "bottom-right cell", x: originX + 2*cellWidth + 2, y: originY + 2*cellHeight, wantRow: 2, wantCol: 2, wantOK: true},
		{name: "vertical grid line", x: originX + cellWidth - 1, y: originY},
		{name: "horizontal grid line", x: originX, y: originY + 1},
		{name: "left margin", x: 0, y: originY},
		{name: "below the board", x: originX, y: originY + 3*cellHeight},
		{name: "right of the board", x: originX + 3*cellWidth, y: originY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := cellAt(tt.x, tt.y)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantRow, row)
				assert.Equal(t, tt.wantCol, col)
			}
		})
	}
}

func TestHandleEvent_KeyboardGame(t *testing.T) {
	// Given
	ui, screen := newTestUI(t)

	// When
	assert.False(t, ui.HandleEvent(key(tcell.KeyDown)))
	assert.False(t, ui.HandleEvent(key(tcell.KeyRight)))
	assert.False(t, ui.HandleEvent(runeKey(' ')))
	ui.Draw()

	// Then
	assert.Equal(t, game.Player, ui.session.CellAt(2, 2))
	assert.Equal(t, 'X', markAt(screen, 2, 2))
	board := ui.session.Board()
	assert.Equal(t, 2, board.Count())

	_, _, style, _ := screen.GetContent(originX+2*cellWidth+1, originY+2*cellHeight)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse, "cursor cell is highlighted")

	assert.Equal(t, "Your move (you are X)", rowText(screen, originY+3*cellHeight))
}

func TestHandleEvent_Reset(t *testing.T) {
	ui, screen := newTestUI(t)

	ui.HandleEvent(key(tcell.KeyEnter))
	ui.HandleEvent(runeKey('R'))
	ui.Draw()

	assert.Equal(t, game.Board{}, ui.session.Board())
	assert.Equal(t, ' ', markAt(screen, 1, 1))
}

func TestHandleEvent_Mouse(t *testing.T) {
	ui, _ := newTestUI(t)
	x, y := originX+1, originY+cellHeight

	ui.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	assert.Equal(t, game.Player, ui.session.CellAt(1, 0))
	board := ui.session.Board()
	require.Equal(t, 2, board.Count())

	// Holding the button down does not click again.
	ui.HandleEvent(tcell.NewEventMouse(originX+1, originY, tcell.Button1, tcell.ModNone))
	board = ui.session.Board()
	assert.Equal(t, 2, board.Count())

	ui.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	ui.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	board = ui.session.Board()
	assert.Equal(t, 2, board.Count(), "clicks off the board are ignored")
}

func TestHandleEvent_Quit(t *testing.T) {
	ui, _ := newTestUI(t)

	assert.True(t, ui.HandleEvent(key(tcell.KeyEscape)))
}

func TestDraw_GameOver(t *testing.T) {
	ui, screen := newTestUI(t)
	s := ui.session

	// Take the first empty cell until the game ends.
	for !s.Status().Terminal() {
		b := s.Board()
		for i := range game.Size * game.Size {
			if r, c := i/game.Size, i%game.Size; b.IsEmpty(r, c) {
				s.ApplyPlayerMove(r, c)
				break
			}
		}
	}
	ui.Draw()

	assert.Contains(t, rowText(screen, originY+3*cellHeight), "PRESS R TO RESTART")
}

func TestRun(t *testing.T) {
	ui, screen := newTestUI(t)
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	require.NoError(t, ui.Run())
	assert.Equal(t, game.Position{Row: 1, Col: 2}, ui.session.Cursor())
}
