package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	FloatSize           = 4
	PositionStride      = 3 * FloatSize
	PositionColorStride = 3*FloatSize + 4
	UVStride            = 2 * FloatSize

	// MaxIndexedVertices is the most vertices a 16-bit index buffer can address.
	MaxIndexedVertices = math.MaxUint16 + 1
)

var ErrIndexOverflow = errors.New("indices do not fit in 16 bits")

// VertexWithColor is a position plus a packed ABGR color.
type VertexWithColor struct {
	Position mgl32.Vec3
	Color    uint32
}

// PositionBuffer flattens positions as x, y, z triples.
func PositionBuffer(vertices []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}

// QuadBuffer flattens a quad in TL, BL, TR, BR order, which QuadIndices expects.
func QuadBuffer(q Quad) []float32 {
	return PositionBuffer([]mgl32.Vec3{q.TopLeft, q.BottomLeft, q.TopRight, q.BottomRight})
}

// QuadsBuffer flattens quads back to back.
func QuadsBuffer(quads []Quad) []float32 {
	out := make([]float32, 0, len(quads)*12)
	for _, q := range quads {
		out = append(out, QuadBuffer(q)...)
	}
	return out
}

// ColoredBuffer interleaves positions with the color's raw bits so the buffer
// can be uploaded as-is with PositionColorStride.
func ColoredBuffer(vertices []VertexWithColor) []float32 {
	out := make([]float32, 0, len(vertices)*4)
	for _, v := range vertices {
		out = append(out, v.Position.X(), v.Position.Y(), v.Position.Z(), math.Float32frombits(v.Color))
	}
	return out
}

// QuadIndices emits two counter-clockwise triangles per quad laid out by
// QuadBuffer.
func QuadIndices(quads int) ([]uint16, error) {
	if quads < 0 || quads*4 > MaxIndexedVertices {
		return nil, fmt.Errorf("%d quads need %d vertices: %w", quads, quads*4, ErrIndexOverflow)
	}
	out := make([]uint16, 0, quads*6)
	for i := 0; i < quads; i++ {
		base := uint16(i * 4)
		tl, bl, tr, br := base, base+1, base+2, base+3
		out = append(out, tl, bl, br, tl, br, tr)
	}
	return out, nil
}

// SequentialIndices returns 0..n-1, for line strips and triangle lists that
// do not share vertices.
func SequentialIndices(n int) ([]uint16, error) {
	if n < 0 || n > MaxIndexedVertices {
		return nil, fmt.Errorf("%d vertices: %w", n, ErrIndexOverflow)
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(i)
	}
	return out, nil
}

// PackABGR packs 8-bit channels the way little-endian RGBA8 vertex colors are
// read.
func PackABGR(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}
