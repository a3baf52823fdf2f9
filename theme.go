package pdficon

import (
	"image/color"
	"sort"
	"strings"
)

// Palette names the colours used to paint an icon.
type Palette struct {
	Name    string
	Shadow  color.RGBA
	Paper   color.RGBA
	Outline color.RGBA
	Fold    color.RGBA
	Label   color.RGBA
	Bar     color.RGBA
}

var builtinPalettes = map[string]Palette{
	"default": {
		Name:    "default",
		Shadow:  color.RGBA{A: 50},
		Paper:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Outline: color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Fold:    color.RGBA{R: 230, G: 230, B: 230, A: 255},
		Label:   color.RGBA{R: 220, G: 20, B: 60, A: 255},
		Bar:     color.RGBA{R: 200, G: 200, B: 200, A: 255},
	},
	"mono": {
		Name:    "mono",
		Shadow:  color.RGBA{A: 50},
		Paper:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Outline: color.RGBA{R: 60, G: 60, B: 60, A: 255},
		Fold:    color.RGBA{R: 220, G: 220, B: 220, A: 255},
		Label:   color.RGBA{R: 40, G: 40, B: 40, A: 255},
		Bar:     color.RGBA{R: 160, G: 160, B: 160, A: 255},
	},
	"night": {
		Name:    "night",
		Shadow:  color.RGBA{A: 90},
		Paper:   color.RGBA{R: 40, G: 44, B: 52, A: 255},
		Outline: color.RGBA{R: 171, G: 178, B: 191, A: 255},
		Fold:    color.RGBA{R: 92, G: 99, B: 112, A: 255},
		Label:   color.RGBA{R: 224, G: 108, B: 117, A: 255},
		Bar:     color.RGBA{R: 92, G: 99, B: 112, A: 255},
	},
}

// AvailablePalettes returns the names of built-in palettes.
func AvailablePalettes() []string {
	names := make([]string, 0, len(builtinPalettes))
	for name := range builtinPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteByName returns a built-in palette by name.
func PaletteByName(name string) (Palette, bool) {
	if name == "" {
		return builtinPalettes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	p, ok := builtinPalettes[normalized]
	return p, ok
}

// DefaultPalette returns the default built-in palette.
func DefaultPalette() Palette {
	return builtinPalettes["default"]
}
