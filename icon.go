package pdficon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// File extensions of the two output files.
const (
	ContainerExt = ".ico"
	RasterExt    = ".png"
)

// Result is a rendered icon set.
type Result struct {
	// Container holds the encoded multi-resolution icon.
	Container []byte
	// Largest holds the largest frame encoded as a standalone PNG.
	Largest []byte
	// LargestSize is the side of the largest frame.
	LargestSize int
	// Frames lists the sizes embedded in Container, in input order.
	Frames []int
	// Images are the rendered canvases, one per requested size.
	Images []*image.RGBA
	// Fallback is set when Container holds only the largest frame.
	Fallback bool
	// FallbackErr explains why the full set could not be encoded.
	FallbackErr error
}

// Build renders one frame per size and encodes them into an icon container
// and a standalone PNG of the largest frame.
func Build(sizes []int, opts ...RenderOption) (*Result, error) {
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	cfg := newRenderConfig(opts)
	frames := renderFrames(sizes, cfg)
	largest := largestIndex(sizes)

	container, err := encodeContainer(cfg.encoder, frames, largest)
	if err != nil {
		return nil, err
	}
	if container.fallback {
		cfg.log.Warn().
			Err(container.fallbackErr).
			Int("size", sizes[largest]).
			Msg("writing single-size icon container")
	}

	largestPNG, err := EncodePNG(frames[largest])
	if err != nil {
		return nil, err
	}
	return &Result{
		Container:   container.data,
		Largest:     largestPNG,
		LargestSize: sizes[largest],
		Frames:      container.frames,
		Images:      frames,
		Fallback:    container.fallback,
		FallbackErr: container.fallbackErr,
	}, nil
}

// WriteFiles writes res as <base>.ico and <base>.png inside dir, creating dir
// if needed. It returns the two paths written.
func WriteFiles(dir, base string, res *Result) (containerPath, rasterPath string, err error) {
	if res == nil {
		return "", "", fmt.Errorf("write icon: result is nil")
	}
	base = strings.TrimSpace(base)
	if base == "" {
		return "", "", fmt.Errorf("write icon: base name is empty")
	}
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", fmt.Errorf("write icon: %w", err)
		}
	}
	containerPath = filepath.Join(dir, base+ContainerExt)
	rasterPath = filepath.Join(dir, base+RasterExt)
	if err := os.WriteFile(containerPath, res.Container, 0o644); err != nil {
		return "", "", fmt.Errorf("write icon: %w", err)
	}
	if err := os.WriteFile(rasterPath, res.Largest, 0o644); err != nil {
		return "", "", fmt.Errorf("write icon: %w", err)
	}
	return containerPath, rasterPath, nil
}
