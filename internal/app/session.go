package app

import (
	"fmt"

	"cgol/internal/core"
	"cgol/internal/render"
	"cgol/internal/sims/life"
)

// Session owns the engine and the interactive state of one window.
type Session struct {
	engine  *life.Engine
	painter *render.Painter

	width, height int
	cellSize      int
	fps           int

	running    bool
	simulating bool
}

// NewSession validates cfg and seeds a board sized to the window.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine, err := life.New(cfg.Width/cfg.CellSize, cfg.Height/cfg.CellSize, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed board: %w", err)
	}
	return &Session{
		engine:   engine,
		painter:  render.NewPainter(),
		width:    cfg.Width,
		height:   cfg.Height,
		cellSize: cfg.CellSize,
		fps:      cfg.FPS,
		running:  true,
	}, nil
}

// Engine exposes the simulation.
func (s *Session) Engine() *life.Engine { return s.engine }

// Running reports whether the loop should keep going.
func (s *Session) Running() bool { return s.running }

// Simulating reports whether the board advances every frame.
func (s *Session) Simulating() bool { return s.simulating }

// FPS returns the current frame rate.
func (s *Session) FPS() int { return s.fps }

// CellSize returns the current cell size in pixels.
func (s *Session) CellSize() int { return s.cellSize }

// WindowSize returns the window dimensions in pixels.
func (s *Session) WindowSize() (int, int) { return s.width, s.height }

// Status snapshots the session for status displays.
func (s *Session) Status() core.Status {
	return core.Status{
		FPS:        s.fps,
		CellSize:   s.cellSize,
		Generation: s.engine.Generation(),
		Population: s.engine.Population(),
		Board:      s.engine.Size(),
		Paused:     !s.simulating,
	}
}

// Handle applies a single input event.
func (s *Session) Handle(ev Event) {
	switch ev.Kind {
	case EventQuit:
		s.running = false
	case EventKeyDown:
		s.handleKey(ev.Key)
	case EventMouseDown:
		s.engine.Toggle(ev.X/s.cellSize, ev.Y/s.cellSize)
	}
}

func (s *Session) handleKey(k Key) {
	switch k {
	case KeyEscape, KeyQ:
		s.running = false
	case KeySpace:
		s.simulating = !s.simulating
	case KeyDown:
		s.fps = core.ClampFPS(s.fps - 1)
	case KeyUp:
		s.fps = core.ClampFPS(s.fps + 1)
	case KeyA:
		s.engine.ArmAliens()
	case KeyC:
		s.engine.Clear()
	case KeyN:
		if !s.simulating {
			s.engine.Step()
		}
	case KeyPlus, KeyEquals:
		if s.cellSize < maxCellSize {
			s.resize(s.cellSize * 2)
		}
	case KeyMinus:
		if s.cellSize > minCellSize {
			s.resize(s.cellSize / 2)
		}
	}
}

// resize switches to a new cell size and reseeds the board. Sizes that would
// leave no cells on the board are ignored.
func (s *Session) resize(cellSize int) {
	if s.engine.Initialize(s.width/cellSize, s.height/cellSize) != nil {
		return
	}
	s.cellSize = cellSize
}

// Update handles the events of one frame and advances the board when
// simulating.
func (s *Session) Update(events []Event) {
	for _, ev := range events {
		s.Handle(ev)
	}
	if s.simulating {
		s.engine.Step()
	}
}

// Draw rasterizes the current board onto dst.
func (s *Session) Draw(dst render.Surface) {
	s.painter.Paint(dst, s.engine, s.cellSize)
}

// Run drives the frame loop until a quit event arrives: poll, update, draw,
// then wait one frame.
func (s *Session) Run(src EventSource, dst render.Surface, pacer core.Pacer) {
	for s.running {
		s.Update(src.Poll())
		s.Draw(dst)
		pacer.Delay(core.FrameDelay(s.fps))
	}
}
