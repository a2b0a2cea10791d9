package sim

import "github.com/vovakirdan/arcade-gym/internal/core"

// Ball is a square-bounded ball. X, Y is the centre.
type Ball struct {
	X, Y   int
	DX, DY int
	Radius int
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() { b.DX = -b.DX }

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() { b.DY = -b.DY }

// Touches reports whether the ball's bounding square touches r.
func (b Ball) Touches(r core.Rect) bool {
	return core.BallTouches(b.X, b.Y, b.Radius, r)
}

// Paddle slides along one axis. X, Y is the top-left corner.
type Paddle struct {
	X, Y  int
	W, H  int
	Speed int
	Axis  core.Axis
}

// Rect returns the paddle rectangle.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Center returns the paddle midpoint on its axis of travel.
func (p Paddle) Center() int {
	x, y := p.Rect().Center()
	if p.Axis == core.AxisVertical {
		return y
	}
	return x
}

// Apply moves the paddle one step for c and clamps it to [0, extent-size]
// on its axis, where extent is the playfield size along that axis.
func (p *Paddle) Apply(c core.Control, extent int) {
	step := c.Delta() * p.Speed
	if p.Axis == core.AxisVertical {
		p.Y = core.Clamp(p.Y+step, 0, extent-p.H)
		return
	}
	p.X = core.Clamp(p.X+step, 0, extent-p.W)
}

// Block is a breakable brick.
type Block struct {
	X, Y int
	W, H int
	Life int
}

// Rect returns the block rectangle.
func (b Block) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// BlockGrid is the ordered set of live blocks. Order is row-major insertion
// order and decides which block wins when the ball touches several.
type BlockGrid struct {
	blocks []Block
	total  int
}

// NewBlockGrid lays out cfg.BlockRows rows of cfg.Columns() blocks,
// left to right, top to bottom.
func NewBlockGrid(cfg Config) *BlockGrid {
	cols := max(cfg.Columns(), 0)
	g := &BlockGrid{blocks: make([]Block, 0, cols*cfg.BlockRows)}
	for row := range cfg.BlockRows {
		for col := range cols {
			g.blocks = append(g.blocks, Block{
				X:    cfg.BlockOriginX + col*cfg.BlockPitchX,
				Y:    cfg.BlockOriginY + row*cfg.BlockPitchY,
				W:    cfg.BlockW,
				H:    cfg.BlockH,
				Life: cfg.BlockLife,
			})
		}
	}
	g.total = len(g.blocks)
	return g
}

// Len returns the number of live blocks.
func (g *BlockGrid) Len() int { return len(g.blocks) }

// Total returns how many blocks the grid started with.
func (g *BlockGrid) Total() int { return g.total }

// At returns the i-th live block.
func (g *BlockGrid) At(i int) Block { return g.blocks[i] }

// FirstTouched returns the index of the first live block the ball touches,
// or -1 when it touches none.
func (g *BlockGrid) FirstTouched(b Ball) int {
	for i := range g.blocks {
		if b.Touches(g.blocks[i].Rect()) {
			return i
		}
	}
	return -1
}

// Hit takes one life from block i and removes it once life reaches zero.
// It reports whether the block was destroyed.
func (g *BlockGrid) Hit(i int) bool {
	g.blocks[i].Life--
	if g.blocks[i].Life > 0 {
		return false
	}
	g.blocks = append(g.blocks[:i], g.blocks[i+1:]...)
	return true
}

// AppendTo appends copies of the live blocks to dst.
func (g *BlockGrid) AppendTo(dst []Block) []Block {
	return append(dst, g.blocks...)
}
