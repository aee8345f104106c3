package orbitview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type ManipulatorConfig struct {
	HomeEye mgl64.Vec3 `toml:"home_eye"`
	Target  mgl64.Vec3 `toml:"target"`
	Up      mgl64.Vec3 `toml:"up"`
	// Radians per pixel, horizontal then vertical.
	OrbitSpeed     mgl64.Vec2 `toml:"orbit_speed"`
	ZoomSpeed      float64    `toml:"zoom_speed"`
	MinDistance    float64    `toml:"min_distance"`
	FovDegrees     float64    `toml:"fov_degrees"`
	ViewportWidth  int        `toml:"-"`
	ViewportHeight int        `toml:"-"`
}

func DefaultManipulatorConfig() ManipulatorConfig {
	return ManipulatorConfig{
		HomeEye:     mgl64.Vec3{0, 1.65, 14},
		Target:      mgl64.Vec3{0, 0, -4},
		Up:          mgl64.Vec3{0, 1, 0},
		OrbitSpeed:  mgl64.Vec2{DefaultOrbitSpeed, DefaultOrbitSpeed},
		ZoomSpeed:   DefaultZoomSpeed,
		MinDistance: 0.01,
		FovDegrees:  33,
	}
}

// maxElevation keeps the eye off the poles where the up vector degenerates.
const maxElevation = math.Pi/2 - 1e-3

// OrbitManipulator keeps the eye on a sphere around a target. Drags rotate
// the eye, strafe drags slide eye and target together, scroll changes the
// radius.
type OrbitManipulator struct {
	cfg    ManipulatorConfig
	target mgl64.Vec3

	azimuth   float64
	elevation float64
	distance  float64

	grabbing      bool
	strafing      bool
	grabX, grabY  int
	grabAzimuth   float64
	grabElevation float64
	grabTarget    mgl64.Vec3
}

func NewOrbitManipulator(cfg ManipulatorConfig) *OrbitManipulator {
	if cfg.MinDistance <= 0 {
		cfg.MinDistance = 0.01
	}
	if cfg.Up.Len() == 0 {
		cfg.Up = mgl64.Vec3{0, 1, 0}
	}
	m := &OrbitManipulator{cfg: cfg}
	m.JumpToHome()
	return m
}

// JumpToHome puts the eye back at the configured home position.
func (m *OrbitManipulator) JumpToHome() {
	m.target = m.cfg.Target
	offset := m.cfg.HomeEye.Sub(m.cfg.Target)
	m.distance = math.Max(offset.Len(), m.cfg.MinDistance)
	m.elevation = math.Asin(mgl64.Clamp(offset.Y()/m.distance, -1, 1))
	m.azimuth = math.Atan2(offset.X(), offset.Z())
	m.grabbing = false
}

func (m *OrbitManipulator) SetViewport(width, height int) {
	m.cfg.ViewportWidth = width
	m.cfg.ViewportHeight = height
}

func (m *OrbitManipulator) Viewport() (width, height int) {
	return m.cfg.ViewportWidth, m.cfg.ViewportHeight
}

// SetSpeeds updates orbit and zoom speeds without moving the camera.
func (m *OrbitManipulator) SetSpeeds(orbit mgl64.Vec2, zoom float64) {
	m.cfg.OrbitSpeed = orbit
	m.cfg.ZoomSpeed = zoom
}

func (m *OrbitManipulator) Distance() float64 {
	return m.distance
}

func (m *OrbitManipulator) Grabbing() bool {
	return m.grabbing
}

func (m *OrbitManipulator) GrabBegin(x, y int, strafe bool) {
	m.grabbing = true
	m.strafing = strafe
	m.grabX, m.grabY = x, y
	m.grabAzimuth = m.azimuth
	m.grabElevation = m.elevation
	m.grabTarget = m.target
}

func (m *OrbitManipulator) GrabUpdate(x, y int) {
	if !m.grabbing {
		return
	}
	delX := float64(m.grabX - x)
	delY := float64(m.grabY - y)

	if m.strafing {
		eye, _, _ := m.LookAt()
		forward := m.target.Sub(eye).Normalize()
		right := forward.Cross(m.cfg.Up).Normalize()
		up := right.Cross(forward)
		perPixel := m.worldPerPixel()
		m.target = m.grabTarget.
			Add(right.Mul(delX * perPixel)).
			Add(up.Mul(delY * perPixel))
		return
	}

	m.azimuth = m.grabAzimuth + delX*m.cfg.OrbitSpeed.X()
	m.elevation = mgl64.Clamp(m.grabElevation+delY*m.cfg.OrbitSpeed.Y(), -maxElevation, maxElevation)
}

func (m *OrbitManipulator) GrabEnd() {
	m.grabbing = false
	m.strafing = false
}

// Scroll moves the eye along the view axis; positive delta moves away.
func (m *OrbitManipulator) Scroll(x, y int, delta float64) {
	m.distance = math.Max(m.cfg.MinDistance, m.distance+delta*m.cfg.ZoomSpeed)
}

func (m *OrbitManipulator) LookAt() (eye, target, up mgl64.Vec3) {
	cosEl := math.Cos(m.elevation)
	offset := mgl64.Vec3{
		cosEl * math.Sin(m.azimuth),
		math.Sin(m.elevation),
		cosEl * math.Cos(m.azimuth),
	}.Mul(m.distance)
	return m.target.Add(offset), m.target, m.cfg.Up
}

func (m *OrbitManipulator) worldPerPixel() float64 {
	if m.cfg.ViewportHeight <= 0 {
		return 0
	}
	halfFov := mgl64.DegToRad(m.cfg.FovDegrees) / 2
	return 2 * m.distance * math.Tan(halfFov) / float64(m.cfg.ViewportHeight)
}
