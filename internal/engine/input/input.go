// Package input carries window events from the backend to the frame loop.
// Backends push events as they arrive; the loop drains them once per frame.
package input

import "sync"

// EventType identifies what happened.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventWindowResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	default:
		return "none"
	}
}

// Key is a backend-independent key code. Only keys the demo reacts to
// are named; everything else arrives as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF12
	KeySpace
)

// Event is one processed window event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
}

// Quit is the close request event.
func Quit() Event { return Event{Type: EventQuit} }

// Resize is a framebuffer resize event.
func Resize(width, height int) Event {
	return Event{Type: EventWindowResize, Width: width, Height: height}
}

// KeyDown is a key press.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// KeyUp is a key release.
func KeyUp(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// Queue buffers events between frames.
type Queue struct {
	mu     sync.Mutex
	events []Event
	spare  []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
		spare:  make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain returns the pending events in arrival order and empties the queue.
// The returned slice is valid until the next Drain.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = q.spare[:0]
	q.spare = out
	return out
}
