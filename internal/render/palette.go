package render

import (
	"image/color"

	"cgol/internal/sims/life"
)

// Background is the color behind the cell grid.
var Background = color.RGBA{R: 32, G: 32, B: 32, A: 255}

var (
	deadColor   = color.RGBA{A: 255}
	youngColor  = color.RGBA{G: 0xc0, A: 255}
	matureColor = color.RGBA{G: 0x20, B: 0xc0, A: 255}
	alienColor  = color.RGBA{R: 0xc0, A: 255}
)

var cellPalette = buildPalette()

// Palette returns the color for every cell value from Dead to Alien.
func Palette() []color.RGBA { return cellPalette }

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, int(life.Alien)+1)
	for i := range palette {
		v := uint8(i)
		switch {
		case v == life.Dead:
			palette[i] = deadColor
		case v < life.Alive:
			g := v * 16
			palette[i] = color.RGBA{R: g, G: g, B: g, A: 255}
		case v < life.Old:
			palette[i] = youngColor
		case v < life.Alien:
			palette[i] = matureColor
		default:
			palette[i] = alienColor
		}
	}
	return palette
}
