// Package geom builds the CPU-side geometry for ad-hoc meshes: sampled Bézier
// curves, rings of points, cylinder walls made of quads and the float/index
// buffers a renderer uploads.
package geom

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrTooFewPoints = errors.New("geom: a curve needs at least 2 sample points")

// QuadraticBezier samples n points from p0 to p2 pulled toward p1, with
// t = i/(n-1).
func QuadraticBezier(p0, p1, p2 mgl32.Vec2, n int) ([]mgl32.Vec2, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	points := make([]mgl32.Vec2, 0, n)
	for i := 0; i < n; i++ {
		t := float32(i) / float32(n-1)
		u := 1 - t
		points = append(points, p0.Mul(u*u).
			Add(p1.Mul(2*u*t)).
			Add(p2.Mul(t*t)))
	}
	return points, nil
}

// CubicBezier samples n points from p0 to p3 with control points p1 and p2.
func CubicBezier(p0, p1, p2, p3 mgl32.Vec2, n int) ([]mgl32.Vec2, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	points := make([]mgl32.Vec2, 0, n)
	for i := 0; i < n; i++ {
		t := float32(i) / float32(n-1)
		u := 1 - t
		points = append(points, p0.Mul(u*u*u).
			Add(p1.Mul(3*u*u*t)).
			Add(p2.Mul(3*u*t*t)).
			Add(p3.Mul(t*t*t)))
	}
	return points, nil
}

// Lift lays 2D curve points on the ground plane at the given height: x stays
// x and y becomes z.
func Lift(points []mgl32.Vec2, height float32) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(points))
	for i, p := range points {
		out[i] = mgl32.Vec3{p.X(), height, p.Y()}
	}
	return out
}
