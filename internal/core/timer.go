package core

import "time"

const (
	// MinFPS and MaxFPS bound the frame rate of the main loop.
	MinFPS = 1
	MaxFPS = 100
)

// Pacer blocks the loop between frames.
type Pacer interface {
	Delay(d time.Duration)
}

// SleepPacer delays by sleeping the calling goroutine.
type SleepPacer struct{}

// Delay sleeps for d.
func (SleepPacer) Delay(d time.Duration) { time.Sleep(d) }

// NopPacer never blocks. Headless runs use it to render as fast as possible.
type NopPacer struct{}

// Delay returns immediately.
func (NopPacer) Delay(time.Duration) {}

// ClampFPS bounds fps to [MinFPS, MaxFPS].
func ClampFPS(fps int) int {
	return min(max(fps, MinFPS), MaxFPS)
}

// FrameDelay returns the whole-millisecond pause that follows a frame at the
// given rate.
func FrameDelay(fps int) time.Duration {
	return time.Duration(1000/ClampFPS(fps)) * time.Millisecond
}
