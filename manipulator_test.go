package orbitview

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3InDelta(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v", i, actual)
	}
}

func TestOrbitManipulator_StartsAtHome(t *testing.T) {
	cfg := DefaultManipulatorConfig()
	m := NewOrbitManipulator(cfg)

	eye, target, up := m.LookAt()
	assertVec3InDelta(t, cfg.HomeEye, eye, 1e-9)
	assert.Equal(t, cfg.Target, target)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, up)
	assert.InDelta(t, cfg.HomeEye.Sub(cfg.Target).Len(), m.Distance(), 1e-9)
}

func TestOrbitManipulator_HorizontalDragOrbitsAtConstantHeight(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	before, _, _ := m.LookAt()

	m.GrabBegin(500, 500, false)
	assert.True(t, m.Grabbing())
	m.GrabUpdate(300, 500)
	after, target, _ := m.LookAt()

	assert.InDelta(t, before.Y(), after.Y(), 1e-9)
	assert.InDelta(t, before.Sub(target).Len(), after.Sub(target).Len(), 1e-9)
	assert.NotEqual(t, before.X(), after.X())
}

func TestOrbitManipulator_GrabUpdateIsRelativeToGrab(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	m.GrabBegin(500, 500, false)
	m.GrabUpdate(450, 480)
	m.GrabUpdate(400, 460)
	twoSteps, _, _ := m.LookAt()

	n := NewOrbitManipulator(DefaultManipulatorConfig())
	n.GrabBegin(500, 500, false)
	n.GrabUpdate(400, 460)
	oneStep, _, _ := n.LookAt()

	assertVec3InDelta(t, oneStep, twoSteps, 1e-12)
}

func TestOrbitManipulator_UpwardDragLowersEye(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	before, _, _ := m.LookAt()

	m.GrabBegin(500, 500, false)
	m.GrabUpdate(500, 600)
	after, _, _ := m.LookAt()
	assert.Less(t, after.Y(), before.Y())
}

func TestOrbitManipulator_ElevationClamped(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	m.GrabBegin(0, 0, false)
	m.GrabUpdate(0, -1_000_000)

	eye, target, _ := m.LookAt()
	offset := eye.Sub(target)
	assert.Less(t, offset.Y(), m.Distance())
	assert.Greater(t, math.Hypot(offset.X(), offset.Z()), 0.0)
}

func TestOrbitManipulator_UpdateWithoutGrabIsIgnored(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	before, _, _ := m.LookAt()
	m.GrabUpdate(0, 0)
	after, _, _ := m.LookAt()
	assert.Equal(t, before, after)

	m.GrabBegin(0, 0, false)
	m.GrabEnd()
	assert.False(t, m.Grabbing())
	m.GrabUpdate(100, 100)
	after, _, _ = m.LookAt()
	assert.Equal(t, before, after)
}

func TestOrbitManipulator_StrafeMovesEyeAndTarget(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	m.SetViewport(800, 600)
	w, h := m.Viewport()
	require.Equal(t, 800, w)
	require.Equal(t, 600, h)

	eye0, target0, _ := m.LookAt()
	m.GrabBegin(400, 300, true)
	m.GrabUpdate(300, 300)
	eye1, target1, _ := m.LookAt()

	moved := target1.Sub(target0)
	assert.Greater(t, moved.Len(), 0.0)
	assertVec3InDelta(t, moved, eye1.Sub(eye0), 1e-9)
	assert.InDelta(t, m.Distance(), eye1.Sub(target1).Len(), 1e-9)
}

func TestOrbitManipulator_StrafeWithoutViewportDoesNothing(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	_, target0, _ := m.LookAt()
	m.GrabBegin(400, 300, true)
	m.GrabUpdate(0, 0)
	_, target1, _ := m.LookAt()
	assert.Equal(t, target0, target1)
}

func TestOrbitManipulator_Scroll(t *testing.T) {
	cfg := DefaultManipulatorConfig()
	m := NewOrbitManipulator(cfg)
	d := m.Distance()

	m.Scroll(0, 0, 10)
	assert.InDelta(t, d+10*cfg.ZoomSpeed, m.Distance(), 1e-9)

	m.Scroll(0, 0, -1e9)
	assert.Equal(t, cfg.MinDistance, m.Distance())
}

func TestOrbitManipulator_JumpToHome(t *testing.T) {
	cfg := DefaultManipulatorConfig()
	m := NewOrbitManipulator(cfg)
	m.GrabBegin(0, 0, false)
	m.GrabUpdate(300, 200)
	m.Scroll(0, 0, 20)

	m.JumpToHome()
	eye, _, _ := m.LookAt()
	assertVec3InDelta(t, cfg.HomeEye, eye, 1e-9)
	assert.False(t, m.Grabbing())
}

func TestOrbitManipulator_SetSpeeds(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	m.SetSpeeds(mgl64.Vec2{0, 0}, 1)
	before, _, _ := m.LookAt()

	m.GrabBegin(0, 0, false)
	m.GrabUpdate(500, 500)
	after, _, _ := m.LookAt()
	assertVec3InDelta(t, before, after, 1e-12)

	d := m.Distance()
	m.Scroll(0, 0, 2)
	assert.InDelta(t, d+2, m.Distance(), 1e-9)
}

func TestOrbitManipulator_FixesDegenerateConfig(t *testing.T) {
	cfg := DefaultManipulatorConfig()
	cfg.MinDistance = 0
	cfg.Up = mgl64.Vec3{}
	m := NewOrbitManipulator(cfg)

	_, _, up := m.LookAt()
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, up)
	m.Scroll(0, 0, -1e9)
	assert.Equal(t, 0.01, m.Distance())
}

func TestOrbitManipulator_DrivenByGestures(t *testing.T) {
	m := NewOrbitManipulator(DefaultManipulatorConfig())
	d := NewGestureDetector(m, DefaultGestureConfig())
	d.SetViewHeight(1000)
	before, _, _ := m.LookAt()

	for x := float32(500); x > 400; x -= 10 {
		d.OnTouchEvent(MotionEvent{Action: ActionMove, Pointers: []Point{{X: x, Y: 500}}})
	}
	d.OnTouchEvent(MotionEvent{Action: ActionUp})

	after, _, _ := m.LookAt()
	assert.False(t, m.Grabbing())
	assert.NotEqual(t, before, after)
	assert.InDelta(t, before.Y(), after.Y(), 1e-9)
}
