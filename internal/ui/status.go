package ui

import (
	"fmt"

	"cgol/internal/core"
)

// StatusLines formats a session snapshot for the status panel.
func StatusLines(st core.Status) []string {
	state := "running"
	if st.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("%s  %d fps", state, st.FPS),
		fmt.Sprintf("board %dx%d  cell %dpx", st.Board.W, st.Board.H, st.CellSize),
		fmt.Sprintf("gen %d  pop %d", st.Generation, st.Population),
	}
}
