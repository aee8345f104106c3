package orbitview

// MouseEmulator turns per-frame mouse button state into touch events so a
// desktop pointer can drive the gesture detector. The primary button drags one
// finger. The secondary button pinches two fingers mirrored around the press
// point. Only one button gesture runs at a time.
type MouseEmulator struct {
	primary, secondary bool
	anchor             Point
	last               Point
	seen               bool
}

// Update takes the cursor in window pixels (top-left origin) and the current
// button states and returns the events to queue, in order.
func (m *MouseEmulator) Update(cursor Point, primary, secondary bool) []MotionEvent {
	var events []MotionEvent
	moved := !m.seen || cursor != m.last
	m.last = cursor
	m.seen = true

	switch {
	case primary && !m.primary && !m.secondary:
		m.primary = true
		events = append(events, MotionEvent{Action: ActionDown, Pointers: []Point{cursor}})
	case secondary && !m.secondary && !m.primary:
		m.secondary = true
		m.anchor = cursor
		events = append(events, MotionEvent{Action: ActionDown, Pointers: m.pinch(cursor)})
	case m.primary && !primary:
		m.primary = false
		return append(events, MotionEvent{Action: ActionUp, Pointers: []Point{cursor}})
	case m.secondary && !secondary:
		m.secondary = false
		return append(events, MotionEvent{Action: ActionUp, Pointers: m.pinch(cursor)})
	}

	if !moved {
		return events
	}
	if m.primary {
		events = append(events, MotionEvent{Action: ActionMove, Pointers: []Point{cursor}})
	} else if m.secondary {
		events = append(events, MotionEvent{Action: ActionMove, Pointers: m.pinch(cursor)})
	}
	return events
}

func (m *MouseEmulator) pinch(cursor Point) []Point {
	mirror := Point{
		X: 2*m.anchor.X - cursor.X,
		Y: 2*m.anchor.Y - cursor.Y,
	}
	return []Point{mirror, cursor}
}
