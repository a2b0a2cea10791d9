package tusmo

import (
	"fmt"

	"github.com/vovakirdan/arcade-gym/internal/core"
)

const (
	gridX, gridY = 2, 3
	cellW        = 4
	keyW         = 4
	keyRowStep   = 2
	emptyCell    = '·'
)

var markColors = map[Mark]core.Color{
	MarkHit:     core.ColorBrightGreen,
	MarkPresent: core.ColorBrightYellow,
	MarkMiss:    core.ColorGray,
}

// Render draws the grid on the left and the keyboard on the right.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(0, "T U S M O")
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start: "+g.err.Error())
		return
	}
	dst.DrawTextCentered(1, g.message)

	g.renderGrid(dst)
	g.renderKeyboard(dst, max(gridX+g.board.Len()*cellW+4, dst.Width()-len(Layout[0])*keyW-2))

	dst.DrawText(1, dst.Height()-1, "type or arrows+space · enter submit · backspace delete")

	switch {
	case g.board.Over():
		title := "GAME OVER"
		if g.board.Won() {
			title = "YOU WIN!"
		}
		drawCenteredBox(dst, title, fmt.Sprintf("%s  |  Press R to restart", g.board.Secret()))
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderGrid(dst *core.Screen) {
	rows := g.board.Rows()
	for i := range g.board.MaxAttempts() {
		y := gridY + i
		for j := range g.board.Len() {
			x := gridX + j*cellW
			switch {
			case i < len(rows):
				drawCell(dst, x, y, rune(rows[i].Word[j]), markColors[rows[i].Marks[j]])
			case i == len(rows) && !g.board.Over():
				c := g.board.Draft()[j]
				switch {
				case c == 0:
					drawCell(dst, x, y, emptyCell, core.ColorGray)
				case g.board.Locked(j):
					drawCell(dst, x, y, rune(c), core.ColorGreen)
				default:
					drawCell(dst, x, y, rune(c), core.ColorBrightWhite)
				}
			default:
				drawCell(dst, x, y, emptyCell, core.ColorGray)
			}
		}
	}
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColored(x, y, '[', c)
	dst.SetColored(x+1, y, r, c)
	dst.SetColored(x+2, y, ']', c)
}

func (g *Game) renderKeyboard(dst *core.Screen, x0 int) {
	cr, cc := g.keyboard.Cursor()
	for i, row := range Layout {
		for j, k := range row {
			color := core.ColorWhite
			switch {
			case g.hovering && g.hoverRow == i && g.hoverCol == j && g.pinched:
				color = core.ColorBrightRed
			case g.hovering && g.hoverRow == i && g.hoverCol == j:
				color = core.ColorBrightMagenta
			case cr == i && cc == j:
				color = core.ColorOrange
			}
			drawCell(dst, x0+j*keyW, gridY+i*keyRowStep, []rune(k.Label())[0], color)
		}
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-5)/2, boxW, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
