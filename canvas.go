package pdficon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so a Bézier quarter curve approximates a
// circular arc.
const kappa = 0.5522847498

type fpoint struct {
	x, y float32
}

// canvas wraps an RGBA image with a reusable rasterizer.
type canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

func newCanvas(size int) *canvas {
	return &canvas{
		img: image.NewRGBA(image.Rect(0, 0, size, size)),
		ras: vector.NewRasterizer(size, size),
	}
}

func (c *canvas) fill(col color.Color) {
	b := c.img.Bounds()
	c.ras.DrawOp = draw.Over
	c.ras.Draw(c.img, b, image.NewUniform(col), image.Point{})
	c.ras.Reset(b.Dx(), b.Dy())
}

// fillRect paints an axis-aligned rectangle without anti-aliasing.
func (c *canvas) fillRect(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// fillRoundedRect fills r with corners of the given radius. The radius is
// clamped to half the shorter side.
func (c *canvas) fillRoundedRect(r image.Rectangle, radius float32, col color.Color) {
	if r.Empty() {
		return
	}
	c.roundedRectPath(float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y), radius)
	c.fill(col)
}

// outlineRoundedRect draws a filled rounded rectangle with an inner border of
// width stroke.
func (c *canvas) outlineRoundedRect(r image.Rectangle, radius float32, stroke int, fillCol, lineCol color.Color) {
	if r.Empty() {
		return
	}
	c.fillRoundedRect(r, radius, lineCol)
	inner := r.Inset(stroke)
	if inner.Empty() {
		return
	}
	c.fillRoundedRect(inner, max(0, radius-float32(stroke)), fillCol)
}

func (c *canvas) roundedRectPath(x0, y0, x1, y1, radius float32) {
	radius = min(radius, (x1-x0)/2, (y1-y0)/2)
	if radius <= 0 {
		c.ras.MoveTo(x0, y0)
		c.ras.LineTo(x1, y0)
		c.ras.LineTo(x1, y1)
		c.ras.LineTo(x0, y1)
		c.ras.ClosePath()
		return
	}
	k := radius * kappa
	c.ras.MoveTo(x0+radius, y0)
	c.ras.LineTo(x1-radius, y0)
	c.ras.CubeTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
	c.ras.LineTo(x1, y1-radius)
	c.ras.CubeTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
	c.ras.LineTo(x0+radius, y1)
	c.ras.CubeTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
	c.ras.LineTo(x0, y0+radius)
	c.ras.CubeTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	c.ras.ClosePath()
}

// fillPolygon fills the closed polygon through pts.
func (c *canvas) fillPolygon(pts []image.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.ras.LineTo(float32(p.X), float32(p.Y))
	}
	c.ras.ClosePath()
	c.fill(col)
}

// strokePolygon traces the closed polygon through pts with lines of the given
// width, centred on the edges.
func (c *canvas) strokePolygon(pts []image.Point, width float32, col color.Color) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		c.segmentPath(
			fpoint{float32(a.X), float32(a.Y)},
			fpoint{float32(b.X), float32(b.Y)},
			width,
		)
	}
	c.fill(col)
}

func (c *canvas) segmentPath(a, b fpoint, width float32) {
	dx, dy := b.x-a.x, b.y-a.y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	half := width / 2
	// unit normal and tangent scaled to half the width
	nx, ny := -dy/length*half, dx/length*half
	tx, ty := dx/length*half, dy/length*half
	c.ras.MoveTo(a.x-tx+nx, a.y-ty+ny)
	c.ras.LineTo(b.x+tx+nx, b.y+ty+ny)
	c.ras.LineTo(b.x+tx-nx, b.y+ty-ny)
	c.ras.LineTo(a.x-tx-nx, a.y-ty-ny)
	c.ras.ClosePath()
}
