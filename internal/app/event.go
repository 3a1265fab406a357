package app

// EventKind tags the input events the session reacts to.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventKeyDown
	EventMouseDown
)

// Key is a backend-neutral key symbol.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeySpace
	KeyUp
	KeyDown
	KeyA
	KeyC
	KeyN
	KeyPlus
	KeyEquals
	KeyMinus
)

// Event is a single input event. Key is set for EventKeyDown, X and Y hold
// window pixel coordinates for EventMouseDown.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y int
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// KeyPress returns a key-down event for k.
func KeyPress(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// Click returns a mouse-down event at pixel (x, y).
func Click(x, y int) Event { return Event{Kind: EventMouseDown, X: x, Y: y} }

// EventSource yields the events queued since the previous call without
// blocking.
type EventSource interface {
	Poll() []Event
}

// Script is an EventSource that replays one batch of events per poll and
// then asks to quit.
type Script struct {
	batches [][]Event
	polls   int
}

// NewScript returns a Script over the given per-frame batches.
func NewScript(batches ...[]Event) *Script {
	return &Script{batches: batches}
}

// Poll returns the next batch, or a quit event once the batches run out.
func (s *Script) Poll() []Event {
	if s.polls >= len(s.batches) {
		return []Event{Quit()}
	}
	batch := s.batches[s.polls]
	s.polls++
	return batch
}
