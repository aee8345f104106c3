package trace

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gekko3d/orbitview"
)

// GestureColors maps each gesture to the color its samples are plotted in.
var GestureColors = map[orbitview.Gesture]color.RGBA{
	orbitview.GestureNone:  {R: 0x90, G: 0x90, B: 0x90, A: 0xff},
	orbitview.GestureOrbit: {R: 0x21, G: 0x96, B: 0xf3, A: 0xff},
	orbitview.GesturePan:   {R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	orbitview.GestureZoom:  {R: 0xff, G: 0x98, B: 0x00, A: 0xff},
}

const markerRadius = 3

// Plot draws every touch point of the replayed steps on a width x height
// canvas in screen space, colored by the gesture active after that event.
func Plot(steps []Step, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(2*markerRadius+3, 2*markerRadius+3)
	for _, s := range steps {
		c := GestureColors[s.Gesture]
		for _, p := range s.Event.Pointers {
			drawMarker(img, r, p.X, p.Y, c)
		}
	}
	return img
}

// drawMarker fills a small diamond centred on (x, y). The rasterizer only
// covers the marker's bounding box, clipped to the image.
func drawMarker(img *image.RGBA, r *vector.Rasterizer, x, y float32, c color.RGBA) {
	b := img.Bounds()
	if x < 0 || y < 0 || x >= float32(b.Dx()) || y >= float32(b.Dy()) {
		return
	}
	cx, cy := int(x), int(y)
	box := image.Rect(cx-markerRadius-1, cy-markerRadius-1, cx+markerRadius+2, cy+markerRadius+2).Intersect(b)
	if box.Empty() {
		return
	}
	x -= float32(box.Min.X)
	y -= float32(box.Min.Y)

	r.Reset(box.Dx(), box.Dy())
	r.MoveTo(x, y-markerRadius)
	r.LineTo(x+markerRadius, y)
	r.LineTo(x, y+markerRadius)
	r.LineTo(x-markerRadius, y)
	r.ClosePath()
	r.Draw(img, box, image.NewUniform(c), image.Point{})
}
