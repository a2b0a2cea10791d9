package arena

import (
	"fmt"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// Glyphs.
const (
	BallChar   = '●'
	PaddleChar = '█'
	BlockChar  = '▆'
	NetChar    = '│'
	RuleChar   = '─'
)

// field maps world pixels onto the screen rows below the HUD.
type field struct {
	x0, y0, w, h int
	worldW       int
	worldH       int
}

func newField(dst *core.Screen, s *sim.Snapshot) field {
	return field{x0: 0, y0: 2, w: dst.Width(), h: dst.Height() - 2, worldW: s.Width, worldH: s.Height}
}

func (f field) col(x int) int {
	return f.x0 + core.Clamp(core.Scale(x, f.worldW, f.w), 0, f.w-1)
}

func (f field) row(y int) int {
	return f.y0 + core.Clamp(core.Scale(y, f.worldH, f.h), 0, f.h-1)
}

// Render draws the last snapshot, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start "+g.title)
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	s := &g.snap
	f := newField(dst, s)
	g.renderHUD(dst, s)

	switch s.Mode {
	case sim.ModeBreakout:
		renderBlocks(dst, f, s, g.setup.Sim)
	case sim.ModePong:
		for y := f.y0; y < f.y0+f.h; y += 2 {
			dst.SetColored(f.x0+f.w/2, y, NetChar, core.ColorGray)
		}
	}
	if s.HasPlayer {
		renderPaddle(dst, f, s.Player, core.ColorBrightCyan)
	}
	if s.HasOpponent {
		renderPaddle(dst, f, s.Opponent, core.ColorBrightRed)
	}
	dst.SetColored(f.col(s.Ball.X), f.row(s.Ball.Y), BallChar, core.ColorBrightYellow)

	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen, s *sim.Snapshot) {
	switch s.Mode {
	case sim.ModeBreakout:
		dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.PlayerScore))
		dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", s.Lives))
		blocks := fmt.Sprintf("Blocks: %d/%d", len(s.Blocks), s.BlocksTotal)
		dst.DrawText(dst.Width()-len(blocks)-1, 0, blocks)
	case sim.ModePong:
		dst.DrawText(1, 0, "YOU")
		if s.HasOpponent {
			dst.DrawText(dst.Width()-4, 0, "CPU")
		}
		dst.DrawTextCentered(0, fmt.Sprintf("%d : %d", s.PlayerScore, s.OpponentScore))
	}
	dst.DrawHLine(0, 1, dst.Width(), RuleChar)
}

// renderBlocks gives every grid row its own text row so rows never merge
// on short terminals.
func renderBlocks(dst *core.Screen, f field, s *sim.Snapshot, cfg sim.Config) {
	for _, b := range s.Blocks {
		row := f.y0
		if cfg.BlockPitchY > 0 {
			row += (b.Y - cfg.BlockOriginY) / cfg.BlockPitchY
		}
		x0 := f.col(b.X)
		x1 := max(f.col(b.X+b.W)-1, x0)
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, row, BlockChar, core.LifeColor(b.Life))
		}
	}
}

func renderPaddle(dst *core.Screen, f field, p sim.Paddle, c core.Color) {
	r := p.Rect()
	x0, x1 := f.col(r.X), f.col(r.Right())
	y0, y1 := f.row(r.Y), f.row(r.Bottom())
	if p.Axis == core.AxisHorizontal {
		// One text row tall regardless of pixel height.
		y1 = y0
	} else {
		x1 = x0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, PaddleChar, c)
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.over:
		title := "GAME OVER"
		if g.setup.Sim.Mode == sim.ModePong {
			title = "CPU WINS!"
			if g.snap.PlayerScore >= g.setup.WinScore {
				title = "YOU WIN!"
			}
		}
		drawCenteredBox(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", g.finalScore))
	case g.driver != nil && g.State().Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
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
