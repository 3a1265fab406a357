package life

import (
	"errors"
	"fmt"

	"cgol/internal/core"
)

// Cell values. 1..Alive-1 are fading states, Alive..Old are living states
// that age by one per surviving generation, Alien is the injected marker.
const (
	Dead  uint8 = 0
	Alive uint8 = 8
	Old         = Alive * 2
	Alien       = Old + 1
)

const (
	// AlienPeriod is the number of steps between alien injections.
	AlienPeriod = 512
	// alienDensity is the board area covered by one injected alien.
	alienDensity = 30
	// seedOdds gives the 1-in-n chance of a cell starting Alive.
	seedOdds = 5
)

// ErrEmptyBoard is returned when a board would have no cells.
var ErrEmptyBoard = errors.New("life: board has no cells")

// Next applies the transition rule to a single cell given its previous value
// and the number of living neighbours.
func Next(old uint8, neighbours int) uint8 {
	switch {
	case neighbours == 3 && old < Alive:
		return Alive
	case neighbours < 2 || neighbours > 3 || old < Alive:
		if old == Dead {
			return Dead
		}
		return min(Alive, old) - 1
	default:
		return min(Old, old+1)
	}
}

// Engine implements Game of Life with fading and ageing cells on a toroidal,
// double-buffered grid.
type Engine struct {
	grids  [2]*core.ByteGrid
	active int

	generation int
	alienCount int

	rng *core.RNG
}

// New returns an Engine with a randomly seeded w*h board.
func New(w, h int, seed int64) (*Engine, error) {
	e := &Engine{rng: core.NewRNG(seed)}
	if err := e.Initialize(w, h); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize reallocates both buffers at w*h and reseeds every cell as Alive
// with probability 1/5. The alien counter is left untouched.
func (e *Engine) Initialize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyBoard, w, h)
	}
	e.grids[0] = core.NewByteGrid(w, h)
	e.grids[1] = core.NewByteGrid(w, h)
	e.active = 0
	e.generation = 0
	cells := e.current().Cells()
	for i := range cells {
		if e.rng.OneIn(seedOdds) {
			cells[i] = Alive
		}
	}
	return nil
}

func (e *Engine) current() *core.ByteGrid  { return e.grids[e.active] }
func (e *Engine) previous() *core.ByteGrid { return e.grids[e.active^1] }

// Size returns the board dimensions.
func (e *Engine) Size() core.Size {
	g := e.current()
	return core.Size{W: g.W, H: g.H}
}

// Cells exposes the current buffer in row-major order.
func (e *Engine) Cells() []uint8 { return e.current().Cells() }

// Cell returns the value at the wrapped coordinates.
func (e *Engine) Cell(x, y int) uint8 { return e.current().At(x, y) }

// CellBinary returns 1 when the cell at (x, y) counts as alive, 0 otherwise.
func (e *Engine) CellBinary(x, y int) uint8 { return binary(e.current().At(x, y)) }

// SetCell stores v at the wrapped coordinates.
func (e *Engine) SetCell(x, y int, v uint8) { e.current().Set(x, y, v) }

// Toggle kills a living cell or brings a non-living one to Alive.
func (e *Engine) Toggle(x, y int) {
	if e.CellBinary(x, y) == 1 {
		e.SetCell(x, y, Dead)
		return
	}
	e.SetCell(x, y, Alive)
}

// Clear sets the whole current buffer to Dead.
func (e *Engine) Clear() { e.current().Clear() }

// ArmAliens makes the next Step inject aliens.
func (e *Engine) ArmAliens() { e.alienCount = AlienPeriod - 1 }

// Generation returns the number of steps since the last Initialize.
func (e *Engine) Generation() int { return e.generation }

// Population counts the cells that are alive for neighbour purposes.
func (e *Engine) Population() int {
	n := 0
	for _, v := range e.current().Cells() {
		n += int(binary(v))
	}
	return n
}

// Step swaps the buffers and computes the next generation from the previous
// one, injecting aliens every AlienPeriod steps.
func (e *Engine) Step() {
	e.active ^= 1
	src, dst := e.previous(), e.current()
	w, h := src.W, src.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbours := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbours += int(binary(src.At(x+dx, y+dy)))
				}
			}
			dst.Cells()[y*w+x] = Next(src.Cells()[y*w+x], neighbours)
		}
	}

	e.generation++
	e.alienCount++
	if e.alienCount%AlienPeriod == 0 {
		e.injectAliens()
	}
}

// injectAliens overwrites w*h/30 random cells with Alien. Targets may repeat.
func (e *Engine) injectAliens() {
	g := e.current()
	n := g.W * g.H / alienDensity
	for i := 0; i < n; i++ {
		g.Set(e.rng.IntN(g.W), e.rng.IntN(g.H), Alien)
	}
}

func binary(v uint8) uint8 {
	if v < Alive {
		return 0
	}
	return 1
}
