// Package terminal is the text shell: the session drawn with tcell in a terminal.
package terminal

import (
	"context"
	"ctchen222/tictactoe-solo/internal/game"
	"ctchen222/tictactoe-solo/internal/input"
	"ctchen222/tictactoe-solo/internal/session"
	"ctchen222/tictactoe-solo/internal/telemetry"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// Board geometry in screen cells. Each board cell is three columns wide plus a
// separator column, and one row tall plus a separator row.
const (
	originX    = 2
	originY    = 1
	cellWidth  = 4
	cellHeight = 2
)

var (
	defaultStyle  = tcell.StyleDefault
	gridStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	opponentStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
)

type UI struct {
	screen  tcell.Screen
	session *session.Session
	metrics *telemetry.GameMetrics
	buttons tcell.ButtonMask
}

// New wraps an initialized screen. The caller owns Init and Fini.
func New(screen tcell.Screen, s *session.Session, metrics *telemetry.GameMetrics) *UI {
	return &UI{
		screen:  screen,
		session: s,
		metrics: metrics,
	}
}

// Run draws the session and handles events until the player quits or the screen is finalized.
func (u *UI) Run() error {
	u.screen.EnableMouse()
	u.Draw()

	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if u.HandleEvent(ev) {
			return nil
		}
		u.Draw()
	}
}

// HandleEvent applies one terminal event to the session and reports whether the player quit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		a := actionFor(ev)
		ex, quit := input.Dispatch(u.session, a)
		if a == input.Submit {
			u.report(ex)
		}
		return quit
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && u.buttons&tcell.Button1 == 0
		u.buttons = buttons
		if !pressed {
			return false
		}
		if row, col, ok := cellAt(ev.Position()); ok {
			u.report(u.session.ApplyPlayerMove(row, col))
		}
	}
	return false
}

func (u *UI) report(ex session.Exchange) {
	u.metrics.Record(context.Background(), ex)
	if ex.Accepted && ex.Status.Terminal() {
		slog.Info("Game over", "status", ex.Status)
	}
}

func actionFor(ev *tcell.EventKey) input.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyEnter:
		return input.Submit
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.Submit
		case 'r', 'R':
			return input.Reset
		}
	}
	return input.None
}

// cellAt maps a screen position to a board cell. Grid lines map to nothing.
func cellAt(x, y int) (row, col int, ok bool) {
	dx, dy := x-originX, y-originY
	if dx < 0 || dy < 0 || dx%cellWidth == cellWidth-1 || dy%cellHeight == cellHeight-1 {
		return 0, 0, false
	}
	row, col = dy/cellHeight, dx/cellWidth
	if !game.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// Draw repaints the whole screen from the session.
func (u *UI) Draw() {
	u.screen.Clear()

	cursor := u.session.Cursor()
	for r := range [game.Size]int{} {
		y := originY + r*cellHeight
		for c := range [game.Size]int{} {
			x := originX + c*cellWidth
			style := defaultStyle
			mark := ' '
			switch u.session.CellAt(r, c) {
			case game.Player:
				style, mark = playerStyle, 'X'
			case game.Opponent:
				style, mark = opponentStyle, 'O'
			}
			if cursor.Row == r && cursor.Col == c {
				style = style.Reverse(true)
			}
			u.drawText(x, y, style, " "+string(mark)+" ")
			if c < game.Size-1 {
				u.screen.SetContent(x+cellWidth-1, y, '│', nil, gridStyle)
			}
		}
		if r < game.Size-1 {
			u.drawText(originX, y+1, gridStyle, "───┼───┼───")
		}
	}

	statusY := originY + game.Size*cellHeight
	u.drawText(0, statusY, defaultStyle, statusLine(u.session.Status()))
	u.drawText(0, statusY+1, gridStyle, "arrows move, space/enter play, r restart, esc quit")

	u.screen.Show()
}

func (u *UI) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		u.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func statusLine(status game.Status) string {
	switch status {
	case game.PlayerWon:
		return "YOU WIN! VICTORY. PRESS R TO RESTART"
	case game.OpponentWon:
		return "YOU LOSE. DEFEAT. PRESS R TO RESTART"
	case game.Draw:
		return "DRAW. TIE GAME. PRESS R TO RESTART"
	default:
		return "Your move (you are X)"
	}
}
