//go:build ebiten

package ui

import (
	"image/color"

	"cgol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding  = 6
	lineHeight    = 16
	lineBaseline  = 12
	panelMinWidth = 180
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders a status panel in the top-left corner. It starts hidden and
// toggles with the H key.
type HUD struct {
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a hidden HUD.
func NewHUD() *HUD { return &HUD{} }

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel over the grid.
func (h *HUD) Draw(screen *ebiten.Image, st core.Status) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13
	lines := StatusLines(st)
	width := panelMinWidth
	for _, line := range lines {
		width = max(width, text.BoundString(face, line).Dx()+2*panelPadding)
	}
	height := len(lines)*lineHeight + panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(panelColor)
	for i, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, panelPadding/2+i*lineHeight+lineBaseline, textColor)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
