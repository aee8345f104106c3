package geom

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrRingMismatch = errors.New("geom: rings must have the same, even, non-zero length")

// Quad holds the four corners of a quad.
type Quad struct {
	TopLeft     mgl32.Vec3
	BottomLeft  mgl32.Vec3
	TopRight    mgl32.Vec3
	BottomRight mgl32.Vec3
}

// CirclePoints returns n points on a circle of the given radius in the XY
// plane through center.
func CirclePoints(center mgl32.Vec3, radius float32, n int) []mgl32.Vec3 {
	if n <= 0 {
		return nil
	}
	step := 2 * math32.Pi / float32(n)
	points := make([]mgl32.Vec3, n)
	for i := range points {
		theta := float32(i) * step
		points[i] = mgl32.Vec3{
			center.X() + radius*math32.Cos(theta),
			center.Y() + radius*math32.Sin(theta),
			center.Z(),
		}
	}
	return points
}

// CylinderQuads joins two rings into the side wall of a cylinder, one quad per
// pair of neighbours. The last quad wraps back to the first point so the wall
// is closed.
func CylinderQuads(top, bottom []mgl32.Vec3) ([]Quad, error) {
	if len(top) == 0 || len(top) != len(bottom) || len(top)%2 != 0 {
		return nil, ErrRingMismatch
	}
	n := len(top)
	quads := make([]Quad, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		quads[i] = Quad{
			TopLeft:     top[i],
			BottomLeft:  bottom[i],
			TopRight:    top[j],
			BottomRight: bottom[j],
		}
	}
	return quads, nil
}

// Cylinder builds the wall between two parallel circles at z0 and z1.
func Cylinder(center mgl32.Vec3, radius, z0, z1 float32, segments int) ([]Quad, error) {
	top := CirclePoints(mgl32.Vec3{center.X(), center.Y(), z0}, radius, segments)
	bottom := CirclePoints(mgl32.Vec3{center.X(), center.Y(), z1}, radius, segments)
	return CylinderQuads(top, bottom)
}
