package render

import (
	"image/color"

	"cgol/internal/core"
)

// Surface is a drawing target that accepts filled rectangles and presents
// whole frames.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	Present()
}

// Board is the read side of a cell grid.
type Board interface {
	Size() core.Size
	Cells() []uint8
}

// Painter rasterizes a board onto a surface using a cell palette.
type Painter struct {
	palette []color.RGBA
}

// NewPainter returns a Painter using the standard cell palette.
func NewPainter() *Painter {
	return &Painter{palette: Palette()}
}

// Paint clears dst, draws every cell as a square of cellSize-1 pixels at
// (cellSize*x, cellSize*y) and presents the frame.
func (p *Painter) Paint(dst Surface, b Board, cellSize int) {
	dst.Clear(Background)

	size := b.Size()
	cells := b.Cells()
	side := max(1, cellSize-1)
	last := len(p.palette) - 1
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := min(int(cells[y*size.W+x]), last)
			dst.FillRect(cellSize*x, cellSize*y, side, side, p.palette[idx])
		}
	}
	dst.Present()
}
