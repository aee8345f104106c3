package orbitview

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type TouchAction int

const (
	ActionDown TouchAction = iota
	ActionMove
	ActionUp
	ActionCancel
	ActionPointerDown
	ActionPointerUp
)

var touchActionNames = map[TouchAction]string{
	ActionDown:        "down",
	ActionMove:        "move",
	ActionUp:          "up",
	ActionCancel:      "cancel",
	ActionPointerDown: "pointer_down",
	ActionPointerUp:   "pointer_up",
}

func (a TouchAction) String() string {
	if name, ok := touchActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("TouchAction(%d)", int(a))
}

func ParseTouchAction(s string) (TouchAction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for action, name := range touchActionNames {
		if name == s {
			return action, nil
		}
	}
	return 0, fmt.Errorf("unknown touch action %q", s)
}

func (a TouchAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *TouchAction) UnmarshalText(text []byte) error {
	parsed, err := ParseTouchAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Point is a raw pointer position with a top-left origin.
type Point struct {
	X, Y float32
}

// MotionEvent is one platform touch event. Pointers are ordered by pointer index.
type MotionEvent struct {
	Action   TouchAction
	Pointers []Point
}

func (ev MotionEvent) PointerCount() int {
	return len(ev.Pointers)
}

// TouchSample is the first two pointers of a MotionEvent with Y flipped to a
// bottom-left origin. With a single pointer Pt1 equals Pt0.
type TouchSample struct {
	Pt0, Pt1 mgl32.Vec2
	Count    int
}

func NewTouchSample(ev MotionEvent, viewHeight int) TouchSample {
	var s TouchSample
	h := float32(viewHeight)
	if len(ev.Pointers) >= 1 {
		p := ev.Pointers[0]
		s.Pt0 = mgl32.Vec2{p.X, h - p.Y}
		s.Pt1 = s.Pt0
		s.Count++
	}
	if len(ev.Pointers) >= 2 {
		p := ev.Pointers[1]
		s.Pt1 = mgl32.Vec2{p.X, h - p.Y}
		s.Count++
	}
	return s
}

func (s TouchSample) Separation() float32 {
	return s.Pt0.Sub(s.Pt1).Len()
}

func (s TouchSample) Midpoint() mgl32.Vec2 {
	return s.Pt0.Mul(0.5).Add(s.Pt1.Mul(0.5))
}

// X is the midpoint truncated to whole pixels.
func (s TouchSample) X() int {
	return int(s.Midpoint().X())
}

func (s TouchSample) Y() int {
	return int(s.Midpoint().Y())
}

// TouchQueue buffers platform events until the gesture system drains them.
type TouchQueue struct {
	events []MotionEvent
}

func (q *TouchQueue) Push(events ...MotionEvent) {
	q.events = append(q.events, events...)
}

func (q *TouchQueue) Len() int {
	return len(q.events)
}

// Drain returns the pending events in arrival order and empties the queue.
func (q *TouchQueue) Drain() []MotionEvent {
	events := q.events
	q.events = nil
	return events
}
