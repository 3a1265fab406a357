package core

import (
	"testing"
	"time"
)

func TestFrameDelay(t *testing.T) {
	cases := map[int]time.Duration{
		20:  50 * time.Millisecond,
		1:   time.Second,
		100: 10 * time.Millisecond,
		3:   333 * time.Millisecond,
		0:   time.Second,
		500: 10 * time.Millisecond,
	}
	for fps, want := range cases {
		if got := FrameDelay(fps); got != want {
			t.Fatalf("FrameDelay(%d)=%v, expected %v", fps, got, want)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
}
