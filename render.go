package pdficon

import (
	"image"
	"image/color"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RenderFrame draws a single icon frame of side size.
func RenderFrame(size int, opts ...RenderOption) (*image.RGBA, error) {
	if err := ValidateSizes([]int{size}); err != nil {
		return nil, err
	}
	cfg := newRenderConfig(opts)
	tf := cfg.resolveTypeface()
	return drawFrame(size, cfg, tf), nil
}

// Render draws one frame per size, in the order given.
func Render(sizes []int, opts ...RenderOption) ([]*image.RGBA, error) {
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	cfg := newRenderConfig(opts)
	return renderFrames(sizes, cfg), nil
}

func renderFrames(sizes []int, cfg renderConfig) []*image.RGBA {
	tf := cfg.resolveTypeface()
	frames := make([]*image.RGBA, 0, len(sizes))
	for _, size := range sizes {
		frames = append(frames, drawFrame(size, cfg, tf))
	}
	return frames
}

func (cfg renderConfig) resolveTypeface() Typeface {
	if cfg.typeface != nil {
		return *cfg.typeface
	}
	tf, err := ResolveTypeface(FontEmbedded)
	if err != nil {
		cfg.log.Debug().Err(err).Msg("label text disabled, drawing placeholder bars")
	}
	return tf
}

func drawFrame(size int, cfg renderConfig, tf Typeface) *image.RGBA {
	l := ComputeLayout(size)
	p := cfg.palette
	c := newCanvas(size)
	radius := float32(l.Radius)

	c.fillRoundedRect(l.Shadow(), radius, p.Shadow)
	c.outlineRoundedRect(l.Doc, radius, l.Stroke, p.Paper, p.Outline)

	fold := l.Fold[:]
	c.fillPolygon(fold, p.Fold)
	c.strokePolygon(fold, 1, p.Outline)

	if l.Label {
		drawLabel(c, l, cfg.label, p, tf, cfg.log)
	}
	return c.img
}

func drawLabel(c *canvas, l Layout, text string, p Palette, tf Typeface, log zerolog.Logger) {
	if tf.Scalable() {
		face, err := tf.Face(float64(l.FontSize))
		if err == nil {
			drawText(c.img, l, text, face, p.Label)
			_ = face.Close()
			return
		}
		log.Debug().Err(err).Int("size", l.Size).Msg("font face unavailable, drawing placeholder bars")
	}
	for _, bar := range l.Bars() {
		c.fillRect(bar, p.Bar)
	}
}

// drawText centres text horizontally in the document with its ink top at the
// document's vertical midpoint.
func drawText(dst *image.RGBA, l Layout, text string, face font.Face, col color.Color) {
	bounds, _ := font.BoundString(face, text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	x := l.Doc.Min.X + (l.Doc.Dx()-textW)/2 - bounds.Min.X.Floor()
	y := l.LabelTop() - bounds.Min.Y.Floor()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
