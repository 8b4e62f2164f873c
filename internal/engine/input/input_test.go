package input

import "testing"

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	q.Push(Resize(800, 600))
	q.Push(KeyDown(KeyEscape))
	q.Push(Quit())

	got := q.Drain()
	want := []EventType{EventWindowResize, EventKeyDown, EventQuit}
	if len(got) != len(want) {
		t.Fatalf("drained %d events, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, e.Type, want[i])
		}
	}
	if rest := q.Drain(); len(rest) != 0 {
		t.Errorf("queue not empty after drain: %v", rest)
	}
}

func TestQueueDrainTwice(t *testing.T) {
	q := NewQueue()
	q.Push(KeyDown(KeyF12))
	first := q.Drain()
	if len(first) != 1 || first[0].Key != KeyF12 {
		t.Fatalf("first drain = %v", first)
	}
	if second := q.Drain(); len(second) != 0 {
		t.Errorf("second drain = %v, want empty", second)
	}

	q.Push(KeyUp(KeySpace))
	third := q.Drain()
	if len(third) != 1 || third[0].Type != EventKeyUp {
		t.Errorf("third drain = %v", third)
	}
}
