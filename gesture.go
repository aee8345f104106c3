package orbitview

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Gesture int

const (
	GestureNone Gesture = iota
	GestureOrbit
	GesturePan
	GestureZoom
)

func (g Gesture) String() string {
	switch g {
	case GestureNone:
		return "none"
	case GestureOrbit:
		return "orbit"
	case GesturePan:
		return "pan"
	case GestureZoom:
		return "zoom"
	}
	return fmt.Sprintf("Gesture(%d)", int(g))
}

// pointers reports how many active pointers the gesture needs, 0 for none.
func (g Gesture) pointers() int {
	switch g {
	case GestureOrbit:
		return 1
	case GesturePan, GestureZoom:
		return 2
	}
	return 0
}

// CameraManipulator is the camera the gesture detector drives. Coordinates are
// screen pixels with a bottom-left origin.
type CameraManipulator interface {
	GrabBegin(x, y int, strafe bool)
	GrabUpdate(x, y int)
	GrabEnd()
	Scroll(x, y int, delta float64)
	LookAt() (eye, target, up mgl64.Vec3)
}

type GestureConfig struct {
	ZoomSpeed float64 `toml:"zoom_speed"`
	// World units the eye drops per pixel of upward orbit drag.
	EyeYMovementPerPixel float64 `toml:"eye_y_movement_per_pixel"`
	// Orbit stops once the eye would go below this height.
	EyeYMinThreshold float64 `toml:"eye_y_min_threshold"`
	// A tentative gesture needs more than this many samples to promote.
	ConfidenceCount int `toml:"confidence_count"`
	// Pixels of separation change a pinch needs before it counts as zoom.
	ZoomConfidenceDistance float32 `toml:"zoom_confidence_distance"`
	// Pixels of midpoint travel a two-finger drag needs before it counts as pan.
	PanConfidenceDistance float32 `toml:"pan_confidence_distance"`
	PanEnabled            bool    `toml:"pan_enabled"`
}

const (
	DefaultOrbitSpeed = 0.001
	DefaultZoomSpeed  = 0.1
)

func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		ZoomSpeed:              DefaultZoomSpeed,
		EyeYMovementPerPixel:   DefaultOrbitSpeed * 20,
		EyeYMinThreshold:       1.5,
		ConfidenceCount:        2,
		ZoomConfidenceDistance: 10,
		PanConfidenceDistance:  4,
		PanEnabled:             false,
	}
}

// ZoomRange is the symmetric window the accumulated zoom delta is clamped to.
func (c GestureConfig) ZoomRange() (lower, upper float64) {
	return -5.0 / c.ZoomSpeed, 5.0 / c.ZoomSpeed
}

// GestureDetector classifies touch events into orbit, pan and zoom and drives a
// CameraManipulator. It is not safe for concurrent use; feed it from the thread
// that receives input.
type GestureDetector struct {
	cfg         GestureConfig
	manipulator CameraManipulator
	log         Logger
	viewHeight  int

	current  Gesture
	previous TouchSample

	tentativeOrbit []TouchSample
	tentativePan   []TouchSample
	tentativeZoom  []TouchSample

	zoomDelta float64
}

func NewGestureDetector(manipulator CameraManipulator, cfg GestureConfig) *GestureDetector {
	return &GestureDetector{
		cfg:         cfg,
		manipulator: manipulator,
		log:         NewNopLogger(),
	}
}

func (d *GestureDetector) SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	d.log = l
}

// SetViewHeight sets the height used to flip Y to a bottom-left origin.
func (d *GestureDetector) SetViewHeight(height int) {
	d.viewHeight = height
}

func (d *GestureDetector) ViewHeight() int {
	return d.viewHeight
}

// SetConfig swaps thresholds and speeds. The zoom accumulator is kept but
// clamped into the new range; a zoom left on a bound ends.
func (d *GestureDetector) SetConfig(cfg GestureConfig) {
	d.cfg = cfg
	lower, upper := cfg.ZoomRange()
	d.zoomDelta = math.Min(upper, math.Max(lower, d.zoomDelta))
	if d.current == GestureZoom && (d.zoomDelta <= lower || d.zoomDelta >= upper) {
		d.log.Debugf("zoom saturated at %.2f after config change", d.zoomDelta)
		d.EndGesture()
	}
}

func (d *GestureDetector) Config() GestureConfig {
	return d.cfg
}

func (d *GestureDetector) Gesture() Gesture {
	return d.current
}

// ZoomDelta is the accumulated zoom, always within Config().ZoomRange().
func (d *GestureDetector) ZoomDelta() float64 {
	return d.zoomDelta
}

// Tentative returns the buffered sample counts for orbit, pan and zoom.
func (d *GestureDetector) Tentative() (orbit, pan, zoom int) {
	return len(d.tentativeOrbit), len(d.tentativePan), len(d.tentativeZoom)
}

func (d *GestureDetector) OnTouchEvent(ev MotionEvent) {
	touch := NewTouchSample(ev, d.viewHeight)

	switch ev.Action {
	case ActionMove:
		d.onMove(ev.PointerCount(), touch)
	case ActionUp, ActionCancel:
		d.EndGesture()
	}
}

func (d *GestureDetector) onMove(pointerCount int, touch TouchSample) {
	if d.current != GestureNone && pointerCount != d.current.pointers() {
		d.log.Debugf("gesture %s cancelled: %d pointers", d.current, pointerCount)
		d.EndGesture()
		return
	}

	switch d.current {
	case GestureZoom:
		d.updateZoom(touch)
		return
	case GestureOrbit:
		d.updateOrbit(touch)
		return
	case GesturePan:
		d.manipulator.GrabUpdate(touch.X(), touch.Y())
		return
	}

	if pointerCount == 1 {
		d.tentativeOrbit = append(d.tentativeOrbit, touch)
	}
	if pointerCount == 2 {
		d.tentativePan = append(d.tentativePan, touch)
		d.tentativeZoom = append(d.tentativeZoom, touch)
	}

	switch {
	case d.isOrbitGesture():
		d.manipulator.GrabBegin(touch.X(), touch.Y(), false)
		d.begin(GestureOrbit, touch)
	case d.isZoomGesture():
		d.begin(GestureZoom, touch)
	case d.isPanGesture():
		d.manipulator.GrabBegin(touch.X(), touch.Y(), true)
		d.current = GesturePan
		d.log.Debugf("gesture pan began at (%d, %d)", touch.X(), touch.Y())
	}
}

func (d *GestureDetector) begin(g Gesture, touch TouchSample) {
	d.current = g
	d.previous = touch
	d.log.Debugf("gesture %s began at (%d, %d)", g, touch.X(), touch.Y())
}

func (d *GestureDetector) updateZoom(touch TouchSample) {
	lower, upper := d.cfg.ZoomRange()
	scrollDelta := float64(d.previous.Separation()-touch.Separation()) * d.cfg.ZoomSpeed

	if scrollDelta < 0 {
		if d.zoomDelta > lower {
			d.zoomDelta = math.Max(lower, d.zoomDelta+scrollDelta)
		}
	} else {
		if d.zoomDelta < upper {
			d.zoomDelta = math.Min(upper, d.zoomDelta+scrollDelta)
		}
	}

	if d.zoomDelta > lower && d.zoomDelta < upper {
		d.manipulator.Scroll(touch.X(), touch.Y(), scrollDelta)
		d.previous = touch
		return
	}

	d.log.Debugf("zoom saturated at %.2f", d.zoomDelta)
	d.EndGesture()
}

func (d *GestureDetector) updateOrbit(touch TouchSample) {
	// Eye height is read every event so the clamp follows the manipulator.
	eye, _, _ := d.manipulator.LookAt()

	if touch.Y() > d.previous.Y() {
		maxAllowedYDelta := eye.Y() - d.cfg.EyeYMinThreshold
		maxYPixels := maxAllowedYDelta/d.cfg.EyeYMovementPerPixel + float64(d.previous.Y())

		if float64(touch.Y()) < maxYPixels {
			d.manipulator.GrabUpdate(touch.X(), touch.Y())
		} else {
			d.manipulator.GrabUpdate(touch.X(), int(maxYPixels))
			d.log.Debugf("orbit reached minimum eye height %.2f", d.cfg.EyeYMinThreshold)
			d.EndGesture()
		}
	} else {
		d.manipulator.GrabUpdate(touch.X(), touch.Y())
	}

	d.previous = touch
}

// EndGesture clears tentative state and releases the grab. Safe to call when no
// gesture is active.
func (d *GestureDetector) EndGesture() {
	d.tentativeOrbit = d.tentativeOrbit[:0]
	d.tentativePan = d.tentativePan[:0]
	d.tentativeZoom = d.tentativeZoom[:0]
	d.current = GestureNone
	d.manipulator.GrabEnd()
}

func (d *GestureDetector) isOrbitGesture() bool {
	return len(d.tentativeOrbit) > d.cfg.ConfidenceCount
}

func (d *GestureDetector) isPanGesture() bool {
	if !d.cfg.PanEnabled {
		return false
	}
	if len(d.tentativePan) <= d.cfg.ConfidenceCount {
		return false
	}
	oldest := d.tentativePan[0].Midpoint()
	newest := d.tentativePan[len(d.tentativePan)-1].Midpoint()
	return oldest.Sub(newest).Len() > d.cfg.PanConfidenceDistance
}

func (d *GestureDetector) isZoomGesture() bool {
	if len(d.tentativeZoom) <= d.cfg.ConfidenceCount {
		return false
	}
	oldest := d.tentativeZoom[0].Separation()
	newest := d.tentativeZoom[len(d.tentativeZoom)-1].Separation()
	return float32(math.Abs(float64(newest-oldest))) > d.cfg.ZoomConfidenceDistance
}
