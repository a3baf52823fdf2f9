package pdficon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// ErrFontUnavailable reports that no scalable font could be loaded. The
// renderer recovers from it by drawing placeholder bars.
var ErrFontUnavailable = errors.New("scalable font unavailable")

// Font source keywords accepted by ResolveTypeface.
const (
	FontEmbedded = "embedded"
	FontNone     = "none"
)

// Typeface is the outcome of the font capability check: either a scalable
// font handle or no font at all.
type Typeface struct {
	name string
	font *opentype.Font
}

// NoFont is the typeface used when text cannot be rendered.
var NoFont = Typeface{name: FontNone}

// Scalable reports whether the typeface carries a usable font.
func (t Typeface) Scalable() bool { return t.font != nil }

// Name returns the source the typeface was resolved from.
func (t Typeface) Name() string { return t.name }

// Face builds a face at the given pixel size.
func (t Typeface) Face(size float64) (font.Face, error) {
	if t.font == nil {
		return nil, ErrFontUnavailable
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: font size %.1f", ErrFontUnavailable, size)
	}
	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}
	return face, nil
}

// ResolveTypeface loads a scalable font from source: "" or "embedded" for the
// bundled Go Bold face, "none" to disable text, or a path to a TrueType or
// OpenType file. On failure it returns NoFont together with an error wrapping
// ErrFontUnavailable.
func ResolveTypeface(source string) (Typeface, error) {
	source = strings.TrimSpace(source)
	switch strings.ToLower(source) {
	case "", FontEmbedded:
		return parseTypeface(FontEmbedded, gobold.TTF)
	case FontNone:
		return NoFont, fmt.Errorf("%w: disabled", ErrFontUnavailable)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return NoFont, fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}
	return parseTypeface(source, data)
}

func parseTypeface(name string, data []byte) (Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return NoFont, fmt.Errorf("%w: parse %s: %v", ErrFontUnavailable, name, err)
	}
	return Typeface{name: name, font: f}, nil
}
