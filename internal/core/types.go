package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Status is a snapshot of the session shown by status displays.
type Status struct {
	FPS        int
	CellSize   int
	Generation int
	Population int
	Board      Size
	Paused     bool
}
