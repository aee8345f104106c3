// Package mobiletouch turns golang.org/x/mobile touch and size events into
// orbitview motion events, the way Android reports a multi-touch stream.
package mobiletouch

import (
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/gekko3d/orbitview"
)

// maxPointers is how many simultaneous touches are tracked; later ones are
// ignored until a tracked one lifts.
const maxPointers = 2

// Tracker follows touch sequences and reports the active pointers in the order
// they went down.
type Tracker struct {
	active []touch.Sequence
	pos    map[touch.Sequence]orbitview.Point
}

func NewTracker() *Tracker {
	return &Tracker{
		pos: make(map[touch.Sequence]orbitview.Point),
	}
}

// Active is the number of tracked pointers.
func (t *Tracker) Active() int {
	return len(t.active)
}

// Handle translates one touch event. ok is false for events that do not
// concern a tracked pointer.
func (t *Tracker) Handle(e touch.Event) (ev orbitview.MotionEvent, ok bool) {
	p := orbitview.Point{X: e.X, Y: e.Y}

	switch e.Type {
	case touch.TypeBegin:
		if t.tracked(e.Sequence) || len(t.active) >= maxPointers {
			return ev, false
		}
		t.active = append(t.active, e.Sequence)
		t.pos[e.Sequence] = p
		action := orbitview.ActionPointerDown
		if len(t.active) == 1 {
			action = orbitview.ActionDown
		}
		return t.event(action), true

	case touch.TypeMove:
		if !t.tracked(e.Sequence) {
			return ev, false
		}
		t.pos[e.Sequence] = p
		return t.event(orbitview.ActionMove), true

	case touch.TypeEnd:
		if !t.tracked(e.Sequence) {
			return ev, false
		}
		t.pos[e.Sequence] = p
		action := orbitview.ActionPointerUp
		if len(t.active) == 1 {
			action = orbitview.ActionUp
		}
		// The lifting pointer is still reported, as on Android.
		ev = t.event(action)
		t.remove(e.Sequence)
		return ev, true
	}
	return ev, false
}

// Feed handles e and queues the result.
func (t *Tracker) Feed(queue *orbitview.TouchQueue, e touch.Event) {
	if ev, ok := t.Handle(e); ok {
		queue.Push(ev)
	}
}

// Cancel drops every tracked pointer and returns the cancel event to send,
// for when the surface goes away mid-gesture.
func (t *Tracker) Cancel() orbitview.MotionEvent {
	ev := t.event(orbitview.ActionCancel)
	t.active = t.active[:0]
	clear(t.pos)
	return ev
}

func (t *Tracker) event(action orbitview.TouchAction) orbitview.MotionEvent {
	pointers := make([]orbitview.Point, len(t.active))
	for i, seq := range t.active {
		pointers[i] = t.pos[seq]
	}
	return orbitview.MotionEvent{Action: action, Pointers: pointers}
}

func (t *Tracker) tracked(seq touch.Sequence) bool {
	for _, s := range t.active {
		if s == seq {
			return true
		}
	}
	return false
}

func (t *Tracker) remove(seq touch.Sequence) {
	for i, s := range t.active {
		if s == seq {
			t.active = append(t.active[:i], t.active[i+1:]...)
			break
		}
	}
	delete(t.pos, seq)
}

// Resize forwards a size event to the viewer.
func Resize(v *orbitview.Viewer, e size.Event) {
	v.Resize(e.WidthPx, e.HeightPx)
}
