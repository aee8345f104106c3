package mobiletouch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/gekko3d/orbitview"
)

func ev(seq touch.Sequence, typ touch.Type, x, y float32) touch.Event {
	return touch.Event{X: x, Y: y, Sequence: seq, Type: typ}
}

func TestTracker_MultiTouchStream(t *testing.T) {
	tr := NewTracker()

	got, ok := tr.Handle(ev(1, touch.TypeBegin, 10, 10))
	require.True(t, ok)
	assert.Equal(t, orbitview.ActionDown, got.Action)
	assert.Equal(t, []orbitview.Point{{X: 10, Y: 10}}, got.Pointers)

	got, ok = tr.Handle(ev(2, touch.TypeBegin, 50, 50))
	require.True(t, ok)
	assert.Equal(t, orbitview.ActionPointerDown, got.Action)
	assert.Equal(t, 2, got.PointerCount())

	got, ok = tr.Handle(ev(2, touch.TypeMove, 60, 50))
	require.True(t, ok)
	assert.Equal(t, orbitview.ActionMove, got.Action)
	assert.Equal(t, []orbitview.Point{{X: 10, Y: 10}, {X: 60, Y: 50}}, got.Pointers)

	_, ok = tr.Handle(ev(3, touch.TypeBegin, 0, 0))
	assert.False(t, ok, "third finger is not tracked")
	_, ok = tr.Handle(ev(3, touch.TypeMove, 1, 1))
	assert.False(t, ok)

	got, ok = tr.Handle(ev(1, touch.TypeEnd, 12, 10))
	require.True(t, ok)
	assert.Equal(t, orbitview.ActionPointerUp, got.Action)
	assert.Equal(t, []orbitview.Point{{X: 12, Y: 10}, {X: 60, Y: 50}}, got.Pointers)
	assert.Equal(t, 1, tr.Active())

	got, ok = tr.Handle(ev(2, touch.TypeMove, 70, 50))
	require.True(t, ok)
	assert.Equal(t, []orbitview.Point{{X: 70, Y: 50}}, got.Pointers)

	got, ok = tr.Handle(ev(2, touch.TypeEnd, 70, 50))
	require.True(t, ok)
	assert.Equal(t, orbitview.ActionUp, got.Action)
	assert.Zero(t, tr.Active())
}

func TestTracker_DuplicateBeginIgnored(t *testing.T) {
	tr := NewTracker()
	tr.Handle(ev(1, touch.TypeBegin, 0, 0))
	_, ok := tr.Handle(ev(1, touch.TypeBegin, 0, 0))
	assert.False(t, ok)
	assert.Equal(t, 1, tr.Active())
}

func TestTracker_Cancel(t *testing.T) {
	tr := NewTracker()
	tr.Handle(ev(1, touch.TypeBegin, 0, 0))
	tr.Handle(ev(2, touch.TypeBegin, 5, 5))

	got := tr.Cancel()
	assert.Equal(t, orbitview.ActionCancel, got.Action)
	assert.Equal(t, 2, got.PointerCount())
	assert.Zero(t, tr.Active())

	_, ok := tr.Handle(ev(1, touch.TypeMove, 1, 1))
	assert.False(t, ok)
}

func TestTracker_SecondFingerCancelsOrbit(t *testing.T) {
	v := orbitview.NewViewer(orbitview.DefaultConfig(), nil, nil)
	Resize(v, size.Event{WidthPx: 1080, HeightPx: 1920})
	require.Equal(t, 1920, v.Gestures.ViewHeight())

	queue := &orbitview.TouchQueue{}
	tr := NewTracker()
	tr.Feed(queue, ev(1, touch.TypeBegin, 500, 900))
	for x := float32(500); x < 560; x += 10 {
		tr.Feed(queue, ev(1, touch.TypeMove, x, 900))
	}
	for _, e := range queue.Drain() {
		v.OnTouchEvent(e)
	}
	require.Equal(t, orbitview.GestureOrbit, v.Gestures.Gesture())

	tr.Feed(queue, ev(2, touch.TypeBegin, 700, 900))
	tr.Feed(queue, ev(2, touch.TypeMove, 710, 900))
	for _, e := range queue.Drain() {
		v.OnTouchEvent(e)
	}
	assert.Equal(t, orbitview.GestureNone, v.Gestures.Gesture())
	assert.False(t, v.Manipulator.(*orbitview.OrbitManipulator).Grabbing())
}

func TestResize(t *testing.T) {
	v := orbitview.NewViewer(orbitview.DefaultConfig(), nil, nil)
	Resize(v, size.Event{WidthPx: 640, HeightPx: 480})
	assert.Equal(t, 640, v.Camera.ViewportWidth)
	assert.Equal(t, 480, v.Camera.ViewportHeight)

	v.Sync()
	eye, _, _ := v.Manipulator.LookAt()
	assert.InDelta(t, eye.Len(), float64(v.Camera.Eye.Len()), 1e-4)
}
