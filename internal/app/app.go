//go:build ebiten

package app

import (
	"image"

	"cgol/internal/render"
	"cgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	key ebiten.Key
	sym Key
}{
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyQ, KeyQ},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyA, KeyA},
	{ebiten.KeyC, KeyC},
	{ebiten.KeyN, KeyN},
	{ebiten.KeyNumpadAdd, KeyPlus},
	{ebiten.KeyEqual, KeyEquals},
	{ebiten.KeyMinus, KeyMinus},
	{ebiten.KeyNumpadSubtract, KeyMinus},
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Game adapts a Session to the ebiten.Game interface. Ebiten's tick rate
// provides the frame pacing.
type Game struct {
	session *Session
	surface *render.ImageSurface
	hud     *ui.HUD

	screen *ebiten.Image
}

// New constructs a Game for the provided session.
func New(session *Session) *Game {
	g := &Game{session: session, hud: ui.NewHUD()}
	w, h := session.WindowSize()
	g.surface = render.NewImageSurface(w, h, func(img *image.RGBA) {
		if g.screen != nil {
			g.screen.WritePixels(img.Pix)
		}
	})
	return g
}

// Poll collects the input edges ebiten saw since the previous tick.
func (g *Game) Poll() []Event {
	var events []Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, Quit())
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, KeyPress(b.sym))
		}
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			events = append(events, Click(x, y))
		}
	}
	return events
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	g.hud.Update()
	g.session.Update(g.Poll())
	if !g.session.Running() {
		return ebiten.Termination
	}
	ebiten.SetTPS(g.session.FPS())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen = screen
	g.session.Draw(g.surface)
	g.screen = nil
	g.hud.Draw(screen, g.session.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.WindowSize()
}
