// Package term runs the session in a terminal, one character cell per
// window pixel.
package term

import (
	"fmt"
	"image/color"

	"cgol/internal/app"

	"github.com/gdamore/tcell/v2"
)

const pressButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Screen adapts a tcell screen to the session's surface and event source.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	held   tcell.ButtonMask
}

// Open initializes the controlling terminal.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and starts forwarding its events.
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.EnableMouse()
	s.HideCursor()
	s.Clear()

	t := &Screen{
		screen: s,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

func (t *Screen) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Size returns the terminal size in character cells.
func (t *Screen) Size() (int, int) { return t.screen.Size() }

// Close restores the terminal.
func (t *Screen) Close() {
	close(t.quit)
	t.screen.Fini()
}

// Poll drains the events forwarded since the previous call.
func (t *Screen) Poll() []app.Event {
	var out []app.Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := t.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (t *Screen) translate(ev tcell.Event) (app.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		buttons := ev.Buttons() & pressButtons
		pressed := buttons != 0 && t.held == 0
		t.held = buttons
		if !pressed {
			return app.Event{}, false
		}
		x, y := ev.Position()
		return app.Click(x, y), true
	}
	return app.Event{}, false
}

func translateKey(ev *tcell.EventKey) (app.Event, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return app.Quit(), true
	case tcell.KeyEscape:
		return app.KeyPress(app.KeyEscape), true
	case tcell.KeyUp:
		return app.KeyPress(app.KeyUp), true
	case tcell.KeyDown:
		return app.KeyPress(app.KeyDown), true
	case tcell.KeyRune:
	default:
		return app.Event{}, false
	}

	var k app.Key
	switch ev.Rune() {
	case 'q', 'Q':
		k = app.KeyQ
	case ' ':
		k = app.KeySpace
	case 'a':
		k = app.KeyA
	case 'c':
		k = app.KeyC
	case 'n':
		k = app.KeyN
	case '+':
		k = app.KeyPlus
	case '=':
		k = app.KeyEquals
	case '-':
		k = app.KeyMinus
	default:
		return app.Event{}, false
	}
	return app.KeyPress(k), true
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Clear fills the terminal with c.
func (t *Screen) Clear(c color.RGBA) {
	t.screen.Fill(' ', styleFor(c))
}

// FillRect paints the character cells covered by the rectangle.
func (t *Screen) FillRect(x, y, w, h int, c color.RGBA) {
	style := styleFor(c)
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			t.screen.SetContent(px, py, ' ', nil, style)
		}
	}
}

// Present flushes the frame to the terminal.
func (t *Screen) Present() { t.screen.Show() }
