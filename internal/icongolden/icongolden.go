// Package icongolden compares rendered icon frames against golden PNGs.
package icongolden

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
)

const (
	goldenTol      = 2
	goldenMaxRatio = 0.0005
)

// FindModuleRoot returns the directory holding the pdficon go.mod.
func FindModuleRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("icongolden: unable to resolve module path")
	}
	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("icongolden: go.mod not found")
		}
		dir = parent
	}
}

// Dir returns the golden directory under root.
func Dir(root string) string {
	return filepath.Join(root, "testdata", "golden")
}

// GoldenName names the golden file of one frame.
func GoldenName(palette string, size int) string {
	return fmt.Sprintf("%s_%d.png", palette, size)
}

// ComparePNG compares got against the PNG stored at wantPath. Channels may
// differ by a small tolerance on a tiny share of pixels.
func ComparePNG(got image.Image, wantPath string) error {
	want, err := LoadPNG(wantPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", wantPath, err)
	}
	if got.Bounds() != want.Bounds() {
		return fmt.Errorf("bounds mismatch got=%v want=%v", got.Bounds(), want.Bounds())
	}
	diff := 0
	total := got.Bounds().Dx() * got.Bounds().Dy()
	for y := got.Bounds().Min.Y; y < got.Bounds().Max.Y; y++ {
		for x := got.Bounds().Min.X; x < got.Bounds().Max.X; x++ {
			r1, g1, b1, a1 := got.At(x, y).RGBA()
			r2, g2, b2, a2 := want.At(x, y).RGBA()
			if !rgbaClose(r1, r2) || !rgbaClose(g1, g2) || !rgbaClose(b1, b2) || !rgbaClose(a1, a2) {
				diff++
			}
		}
	}
	ratio := float64(diff) / float64(total)
	if ratio > goldenMaxRatio {
		return fmt.Errorf("pixel diff ratio %.4f exceeds %.4f", ratio, goldenMaxRatio)
	}
	return nil
}

func rgbaClose(a, b uint32) bool {
	av := int(a >> 8)
	bv := int(b >> 8)
	if av < bv {
		return bv-av <= goldenTol
	}
	return av-bv <= goldenTol
}

// LoadPNG decodes the PNG file at path.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
