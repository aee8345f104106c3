package orbitview

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCamera_Exposure(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	assert.InDelta(t, math.Log2(24*24*125), float64(c.EV100()), 1e-4)

	c.Sensitivity = 200
	assert.InDelta(t, math.Log2(24*24*125)-1, float64(c.EV100()), 1e-4)
}

func TestCamera_VerticalFov(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	assert.InDelta(t, 2*math.Atan(12.0/28.0), float64(c.VerticalFov()), 1e-6)

	c.FocalLength = 50
	assert.InDelta(t, mgl64.DegToRad(26.99), float64(c.VerticalFov()), 1e-3)
}

func TestCamera_Aspect(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	assert.Equal(t, float32(1), c.Aspect())

	c.ViewportWidth, c.ViewportHeight = 1600, 800
	assert.Equal(t, float32(2), c.Aspect())
}

func TestCamera_ViewMatrixLooksAtTarget(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetLookAt(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})

	assert.Equal(t, mgl32.Vec3{0, 0, 10}, c.Eye)
	target := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, target.X(), 1e-5)
	assert.InDelta(t, 0, target.Y(), 1e-5)
	assert.InDelta(t, -10, target.Z(), 1e-5)
}

func TestCamera_ProjectionUsesNearFar(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.ViewportWidth, c.ViewportHeight = 100, 100
	p := c.ProjectionMatrix()

	near := p.Mul4x1(mgl32.Vec4{0, 0, -c.Near, 1})
	far := p.Mul4x1(mgl32.Vec4{0, 0, -c.Far, 1})
	assert.InDelta(t, -1, near.Z()/near.W(), 1e-4)
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-4)
}
