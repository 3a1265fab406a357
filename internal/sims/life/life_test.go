package life

import (
	"errors"
	"testing"

	"cgol/internal/core"
)

func newCleared(t *testing.T, w, h int) *Engine {
	t.Helper()
	e, err := New(w, h, 1)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	e.Clear()
	return e
}

func countValue(cells []uint8, v uint8) int {
	n := 0
	for _, c := range cells {
		if c == v {
			n++
		}
	}
	return n
}

func TestNextRule(t *testing.T) {
	cases := []struct {
		old        uint8
		neighbours int
		want       uint8
	}{
		{Dead, 3, Alive},
		{Alive, 1, Alive - 1},
		{Old, 4, Alive - 1},
		{Alive, 2, Alive + 1},
		{Old, 3, Old},
		{Dead, 0, Dead},
		{Dead, 2, Dead},
		{3, 3, Alive},
		{3, 2, 2},
		{1, 0, Dead},
		{Alien, 3, Old},
		{Alien, 2, Old},
		{Alien, 5, Alive - 1},
		{Alien, 0, Alive - 1},
		{Alive + 3, 8, Alive - 1},
	}
	for _, c := range cases {
		if got := Next(c.old, c.neighbours); got != c.want {
			t.Fatalf("Next(%d,%d)=%d, expected %d", c.old, c.neighbours, got, c.want)
		}
	}
}

func TestNextStaysInRange(t *testing.T) {
	for old := 0; old <= int(Alien); old++ {
		for n := 0; n <= 8; n++ {
			if got := Next(uint8(old), n); got > Alien {
				t.Fatalf("Next(%d,%d)=%d is out of range", old, n, got)
			}
		}
	}
}

func TestCellWrap(t *testing.T) {
	e := newCleared(t, 10, 6)
	e.SetCell(-1, -1, Alien)
	if got := e.Cell(9, 5); got != Alien {
		t.Fatalf("Cell(9,5)=%d, expected %d", got, Alien)
	}
	for k := -2; k <= 2; k++ {
		if got := e.Cell(9+k*10, 5+k*6); got != Alien {
			t.Fatalf("Cell(%d,%d)=%d, expected %d", 9+k*10, 5+k*6, got, Alien)
		}
	}
	if e.CellBinary(9, 5) != 1 {
		t.Fatal("alien cell must count as alive for neighbours")
	}
	e.SetCell(0, 0, Alive-1)
	if e.CellBinary(0, 0) != 0 {
		t.Fatal("fading cell must not count as alive")
	}
}

func TestInitialize(t *testing.T) {
	e, err := New(100, 80, 42)
	if err != nil {
		t.Fatal(err)
	}
	if s := e.Size(); s.W != 100 || s.H != 80 {
		t.Fatalf("size %dx%d, expected 100x80", s.W, s.H)
	}
	alive := 0
	for i, v := range e.Cells() {
		switch v {
		case Alive:
			alive++
		case Dead:
		default:
			t.Fatalf("cell %d seeded with %d", i, v)
		}
	}
	if alive < 1200 || alive > 2000 {
		t.Fatalf("seeded %d live cells of 8000, expected about 1600", alive)
	}

	e.Step()
	if err := e.Initialize(20, 10); err != nil {
		t.Fatal(err)
	}
	if s := e.Size(); s.W != 20 || s.H != 10 || len(e.Cells()) != 200 {
		t.Fatalf("reinitialized size %dx%d with %d cells", s.W, s.H, len(e.Cells()))
	}
	if e.Generation() != 0 {
		t.Fatalf("generation %d after Initialize", e.Generation())
	}

	if err := e.Initialize(0, 10); !errors.Is(err, ErrEmptyBoard) {
		t.Fatalf("Initialize(0,10) error %v, expected ErrEmptyBoard", err)
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a, _ := New(32, 32, 9)
	b, _ := New(32, 32, 9)
	for i := 0; i < 600; i++ {
		a.Step()
		b.Step()
	}
	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("cell %d differs: %d vs %d", i, ac[i], bc[i])
		}
	}
}

func TestGliderStep(t *testing.T) {
	e := newCleared(t, 10, 10)
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		e.SetCell(p[0], p[1], Alive)
	}

	e.Step()
	if e.Generation() >= AlienPeriod {
		t.Fatalf("generation %d reached the alien tick", e.Generation())
	}

	expects := map[[2]int]uint8{
		{0, 1}: Alive,
		{1, 3}: Alive,
		{2, 1}: Alive + 1,
		{1, 2}: Alive + 1,
		{2, 2}: Alive + 1,
		{1, 0}: Alive - 1,
		{0, 2}: Alive - 1,
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := expects[[2]int{x, y}]
			if got := e.Cell(x, y); got != want {
				t.Fatalf("cell (%d,%d)=%d, expected %d", x, y, got, want)
			}
		}
	}
	if e.Population() != 5 {
		t.Fatalf("population %d, expected 5", e.Population())
	}
}

func TestFadeToDead(t *testing.T) {
	e := newCleared(t, 8, 8)
	e.SetCell(4, 4, Old)
	e.Step()
	for want := int(Alive) - 1; want >= 0; want-- {
		if got := e.Cell(4, 4); got != uint8(want) {
			t.Fatalf("lone cell %d, expected %d", got, want)
		}
		e.Step()
	}
	if got := e.Cell(4, 4); got != Dead {
		t.Fatalf("lone cell %d after fading out", got)
	}
}

func TestAlienCadence(t *testing.T) {
	const w, h, seed = 30, 20, 5
	e, err := New(w, h, seed)
	if err != nil {
		t.Fatal(err)
	}
	e.Clear()

	for tick := 1; tick < AlienPeriod; tick++ {
		e.Step()
		if n := countValue(e.Cells(), Alien); n != 0 {
			t.Fatalf("tick %d has %d aliens", tick, n)
		}
	}

	// Replay the engine's random stream: seeding draws, then injection targets.
	rng := core.NewRNG(seed)
	for i := 0; i < w*h; i++ {
		rng.OneIn(seedOdds)
	}
	targets := map[[2]int]bool{}
	for i := 0; i < w*h/alienDensity; i++ {
		x := rng.IntN(w)
		y := rng.IntN(h)
		targets[[2]int{x, y}] = true
	}

	e.Step()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			isAlien := e.Cell(x, y) == Alien
			if isAlien != targets[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alien=%v, expected %v", x, y, isAlien, !isAlien)
			}
		}
	}

	for tick := AlienPeriod + 1; tick < 2*AlienPeriod; tick++ {
		e.Step()
		if n := countValue(e.Cells(), Alien); n != 0 {
			t.Fatalf("tick %d has %d aliens", tick, n)
		}
	}
	e.Step()
	if countValue(e.Cells(), Alien) == 0 {
		t.Fatalf("tick %d injected no aliens", 2*AlienPeriod)
	}
}

func TestArmAliens(t *testing.T) {
	e := newCleared(t, 30, 30)
	e.Step()
	e.ArmAliens()
	e.Step()
	if n := countValue(e.Cells(), Alien); n == 0 || n > 30 {
		t.Fatalf("armed step injected %d aliens, expected 1..30", n)
	}
}

func TestToggle(t *testing.T) {
	e := newCleared(t, 4, 4)
	e.Toggle(1, 1)
	if e.Cell(1, 1) != Alive {
		t.Fatalf("toggled dead cell is %d", e.Cell(1, 1))
	}
	e.Toggle(1, 1)
	if e.Cell(1, 1) != Dead {
		t.Fatalf("toggled live cell is %d", e.Cell(1, 1))
	}
	e.SetCell(2, 2, 5)
	e.Toggle(2, 2)
	if e.Cell(2, 2) != Alive {
		t.Fatalf("toggled fading cell is %d", e.Cell(2, 2))
	}
	e.SetCell(3, 3, Alien)
	e.Toggle(3, 3)
	if e.Cell(3, 3) != Dead {
		t.Fatalf("toggled alien cell is %d", e.Cell(3, 3))
	}
}
