package pdficon

import (
	"image"
	"math"
)

// DocAspect is the document height to width ratio (A4 is close to 1:1.4).
const DocAspect = 1.4

// LabelMinSize is the smallest canvas that receives a label or fallback bars.
const LabelMinSize = 32

const barCount = 3

// Layout holds the geometry of one icon frame. All coordinates are in canvas
// pixels; rectangles are half-open as usual for image.Rectangle.
type Layout struct {
	Size         int
	Margin       int
	Doc          image.Rectangle
	ShadowOffset int
	Radius       int
	Stroke       int
	Fold         [3]image.Point
	FontSize     int
	Label        bool
}

// ComputeLayout derives the frame geometry for a canvas of side size.
func ComputeLayout(size int) Layout {
	margin := size / 8
	bound := size - 2*margin
	docW := bound
	docH := int(math.Round(float64(docW) * DocAspect))
	if docH > bound {
		docH = bound
		docW = int(math.Round(float64(docH) / DocAspect))
	}
	x := (size - docW) / 2
	y := (size - docH) / 2
	doc := image.Rect(x, y, x+docW, y+docH)

	c := docW / 4
	return Layout{
		Size:         size,
		Margin:       margin,
		Doc:          doc,
		ShadowOffset: max(1, size/32),
		Radius:       size / 16,
		Stroke:       max(1, size/32),
		Fold: [3]image.Point{
			{X: doc.Max.X - c, Y: doc.Min.Y},
			{X: doc.Max.X, Y: doc.Min.Y + c},
			{X: doc.Max.X - c, Y: doc.Min.Y + c},
		},
		FontSize: size / 4,
		Label:    size >= LabelMinSize,
	}
}

// Shadow returns the shadow rectangle, the document shifted by ShadowOffset.
func (l Layout) Shadow() image.Rectangle {
	return l.Doc.Add(image.Pt(l.ShadowOffset, l.ShadowOffset))
}

// LabelTop is the y coordinate of the top edge of the label text.
func (l Layout) LabelTop() int {
	return l.Doc.Min.Y + l.Doc.Dy()/2
}

// Bars returns the three simulated text lines drawn when no scalable font is
// available. It returns nil for frames too small to carry a label.
func (l Layout) Bars() []image.Rectangle {
	if !l.Label {
		return nil
	}
	docW := l.Doc.Dx()
	lineH := max(1, l.Size/16)
	spacing := lineH * 2
	startY := l.Doc.Min.Y + l.Doc.Dy()/3
	x0 := l.Doc.Min.X + l.Margin

	bars := make([]image.Rectangle, 0, barCount)
	for i := range barCount {
		w := docW - docW/3
		if i == 1 {
			w = docW / 2
		}
		top := startY + i*spacing
		bars = append(bars, image.Rect(x0, top, x0+w, top+lineH))
	}
	return bars
}
