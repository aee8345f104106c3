package orbitview

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// sensorHeight is the 35mm-film frame height lens projection is computed for.
const sensorHeight = 24.0

type CameraConfig struct {
	FocalLength  float32 `toml:"focal_length"`
	Near         float32 `toml:"near"`
	Far          float32 `toml:"far"`
	Aperture     float32 `toml:"aperture"`
	ShutterSpeed float32 `toml:"shutter_speed"`
	Sensitivity  float32 `toml:"sensitivity"`
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FocalLength:  28,
		Near:         0.05,   // 5 cm
		Far:          1000.0, // 1 km
		Aperture:     24,
		ShutterSpeed: 1.0 / 125.0,
		Sensitivity:  100,
	}
}

// Camera is the render camera: a look-at basis from the manipulator plus a
// physical lens and exposure.
type Camera struct {
	CameraConfig

	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	ViewportWidth  int
	ViewportHeight int
}

func NewCamera(cfg CameraConfig) *Camera {
	return &Camera{
		CameraConfig: cfg,
		Up:           mgl32.Vec3{0, 1, 0},
	}
}

func (c *Camera) SetLookAt(eye, target, up mgl64.Vec3) {
	c.Eye = vec3To32(eye)
	c.Target = vec3To32(target)
	c.Up = vec3To32(up)
}

func (c *Camera) Aspect() float32 {
	if c.ViewportHeight <= 0 {
		return 1
	}
	return float32(c.ViewportWidth) / float32(c.ViewportHeight)
}

// VerticalFov is in radians.
func (c *Camera) VerticalFov() float32 {
	return float32(2 * math.Atan(sensorHeight/(2*float64(c.FocalLength))))
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.VerticalFov(), c.Aspect(), c.Near, c.Far)
}

// EV100 is the exposure value at ISO 100 for the configured settings.
func (c *Camera) EV100() float32 {
	n := float64(c.Aperture)
	t := float64(c.ShutterSpeed)
	s := float64(c.Sensitivity)
	return float32(math.Log2((n * n) / t * 100.0 / s))
}

func vec3To32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
