package window

import (
	"ctchen222/tictactoe-solo/internal/game"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	gridColor       = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	cursorColor     = color.RGBA{R: 0xff, G: 0xe0, B: 0x80, A: 0xff}
	playerColor     = color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
	opponentColor   = color.RGBA{R: 0x20, G: 0x40, B: 0xd0, A: 0xff}
	overlayColor    = color.RGBA{A: 0xb0}
)

const (
	gridWidth = 4
	markWidth = 8
	// Marks are inset from the cell edge by this fraction of the cell size.
	markInset = 0.2
	// Glyph size of ebitenutil's debug font.
	glyphWidth  = 6
	glyphHeight = 16
)

// Draw renders the board, the cursor and, once the game is over, the result overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cs := float32(g.cellSize)
	cursor := g.session.Cursor()
	vector.DrawFilledRect(screen, float32(cursor.Col)*cs, float32(cursor.Row)*cs, cs, cs, cursorColor, false)

	side := float32(g.side())
	for i := 1; i < game.Size; i++ {
		offset := float32(i) * cs
		vector.StrokeLine(screen, offset, 0, offset, side, gridWidth, gridColor, true)
		vector.StrokeLine(screen, 0, offset, side, offset, gridWidth, gridColor, true)
	}

	for r := range [game.Size]int{} {
		for c := range [game.Size]int{} {
			switch g.session.CellAt(r, c) {
			case game.Player:
				g.drawX(screen, r, c)
			case game.Opponent:
				g.drawO(screen, r, c)
			}
		}
	}

	if status := g.session.Status(); status.Terminal() {
		g.drawOverlay(screen, status)
	}
}

func (g *Game) drawX(screen *ebiten.Image, row, col int) {
	cs := float32(g.cellSize)
	inset := cs * markInset
	x0, y0 := float32(col)*cs+inset, float32(row)*cs+inset
	x1, y1 := float32(col+1)*cs-inset, float32(row+1)*cs-inset

	vector.StrokeLine(screen, x0, y0, x1, y1, markWidth, playerColor, true)
	vector.StrokeLine(screen, x1, y0, x0, y1, markWidth, playerColor, true)
}

func (g *Game) drawO(screen *ebiten.Image, row, col int) {
	cs := float32(g.cellSize)
	cx, cy := float32(col)*cs+cs/2, float32(row)*cs+cs/2
	vector.StrokeCircle(screen, cx, cy, cs/2-cs*markInset, markWidth, opponentColor, true)
}

func (g *Game) drawOverlay(screen *ebiten.Image, status game.Status) {
	side := g.side()
	vector.DrawFilledRect(screen, 0, 0, float32(side), float32(side), overlayColor, false)

	title, subtitle := overlayText(status)
	lines := []string{title, subtitle, "", "PRESS R TO RESTART"}
	top := side/2 - len(lines)*glyphHeight/2
	for i, line := range lines {
		x := (side - len(line)*glyphWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*glyphHeight)
	}
}

// overlayText is the headline and subtitle shown for a finished game.
func overlayText(status game.Status) (title, subtitle string) {
	switch status {
	case game.PlayerWon:
		return "YOU WIN", "VICTORY"
	case game.OpponentWon:
		return "YOU LOSE", "DEFEAT"
	case game.Draw:
		return "DRAW", "TIE GAME"
	default:
		return "", ""
	}
}
