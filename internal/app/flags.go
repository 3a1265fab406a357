package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"cgol/internal/core"
)

const (
	minCellSize = 1
	maxCellSize = 128
)

// ErrWindowTooSmall reports a window that cannot hold a single cell.
var ErrWindowTooSmall = errors.New("window smaller than one cell")

// Config represents the command-line parameters for the application.
type Config struct {
	Title    string
	Width    int
	Height   int
	CellSize int
	FPS      int
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Title: "Conway", Width: 600, Height: 600, CellSize: 8, FPS: 20}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels (power of two, 1..128)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second (1..100)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
}

// Validate normalises the configuration in place. The cell size is rounded
// down to a power of two in range and the frame rate is clamped.
func (c *Config) Validate() error {
	c.FPS = core.ClampFPS(c.FPS)
	size := minCellSize
	for size*2 <= min(c.CellSize, maxCellSize) {
		size *= 2
	}
	c.CellSize = size
	if c.Width < c.CellSize || c.Height < c.CellSize {
		return fmt.Errorf("%w: %dx%d at cell size %d", ErrWindowTooSmall, c.Width, c.Height, c.CellSize)
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return nil
}
