package pdficon

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

// icoSizes parses the ICO directory and returns the width of every entry.
func icoSizes(t *testing.T, data []byte) []int {
	t.Helper()
	if len(data) < 6 {
		t.Fatalf("ico too short: %d bytes", len(data))
	}
	if kind := binary.LittleEndian.Uint16(data[2:4]); kind != 1 {
		t.Fatalf("ico type %d, want 1", kind)
	}
	n := int(binary.LittleEndian.Uint16(data[4:6]))
	if len(data) < 6+16*n {
		t.Fatalf("ico directory truncated")
	}
	sizes := make([]int, n)
	for i := range n {
		w := int(data[6+16*i])
		if w == 0 {
			w = 256
		}
		sizes[i] = w
	}
	return sizes
}

type singleFrameEncoder struct {
	ICOEncoder
}

func (singleFrameEncoder) EncodeAll(io.Writer, []image.Image) error {
	return errors.New("backend writes one frame only")
}

type brokenEncoder struct{}

func (brokenEncoder) EncodeAll(io.Writer, []image.Image) error {
	return errors.New("no multi")
}

func (brokenEncoder) Encode(io.Writer, image.Image) error {
	return errors.New("no single")
}

func TestBuildDefaultSizes(t *testing.T) {
	res, err := Build(DefaultSizes())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.Fallback {
		t.Fatalf("unexpected fallback: %v", res.FallbackErr)
	}
	if diff := cmp.Diff(DefaultSizes(), res.Frames); diff != "" {
		t.Fatalf("frames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultSizes(), icoSizes(t, res.Container)); diff != "" {
		t.Fatalf("ico directory mismatch (-want +got):\n%s", diff)
	}
	if len(res.Images) != len(DefaultSizes()) {
		t.Fatalf("got %d images", len(res.Images))
	}
	if res.LargestSize != 256 {
		t.Fatalf("LargestSize=%d", res.LargestSize)
	}
	img, err := png.Decode(bytes.NewReader(res.Largest))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 256, 256) {
		t.Fatalf("png bounds %v", got)
	}
}

func TestBuildFallsBackToSingleFrame(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)
	res, err := Build(DefaultSizes(), WithContainerEncoder(singleFrameEncoder{}), WithLogger(log))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !res.Fallback {
		t.Fatalf("expected fallback")
	}
	if !errors.Is(res.FallbackErr, ErrMultiSizeUnsupported) {
		t.Fatalf("FallbackErr=%v", res.FallbackErr)
	}
	if diff := cmp.Diff([]int{256}, res.Frames); diff != "" {
		t.Fatalf("frames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{256}, icoSizes(t, res.Container)); diff != "" {
		t.Fatalf("ico directory mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logBuf.String(), "single-size icon container") {
		t.Fatalf("expected fallback warning, log: %q", logBuf.String())
	}
	img, err := png.Decode(bytes.NewReader(res.Largest))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 256 {
		t.Fatalf("png width %d", img.Bounds().Dx())
	}
}

func TestBuildFailsWhenNoContainerCanBeWritten(t *testing.T) {
	if _, err := Build(DefaultSizes(), WithContainerEncoder(brokenEncoder{})); err == nil {
		t.Fatalf("expected error when both encodes fail")
	}
}

func TestBuildPicksGreatestFrame(t *testing.T) {
	res, err := Build([]int{128, 16, 48})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.LargestSize != 128 {
		t.Fatalf("LargestSize=%d", res.LargestSize)
	}
	if diff := cmp.Diff([]int{128, 16, 48}, icoSizes(t, res.Container)); diff != "" {
		t.Fatalf("ico order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRejectsInvalidSizes(t *testing.T) {
	if _, err := Build(nil); !errors.Is(err, ErrNoSizes) {
		t.Fatalf("expected ErrNoSizes, got %v", err)
	}
	if _, err := Build([]int{16, -4}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	a, err := Build(DefaultSizes())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(DefaultSizes())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.Equal(a.Largest, b.Largest) {
		t.Fatalf("standalone png differs between runs")
	}
	if !bytes.Equal(a.Container, b.Container) {
		t.Fatalf("icon container differs between runs")
	}
}

func TestWriteFiles(t *testing.T) {
	res, err := Build([]int{16, 32})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "nested", "out")
	icoPath, pngPath, err := WriteFiles(dir, "app_icon", res)
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if filepath.Base(icoPath) != "app_icon.ico" || filepath.Base(pngPath) != "app_icon.png" {
		t.Fatalf("unexpected paths %s %s", icoPath, pngPath)
	}
	gotICO, err := os.ReadFile(icoPath)
	if err != nil {
		t.Fatalf("read ico: %v", err)
	}
	if !bytes.Equal(gotICO, res.Container) {
		t.Fatalf("ico contents differ")
	}
	gotPNG, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if !bytes.Equal(gotPNG, res.Largest) {
		t.Fatalf("png contents differ")
	}

	if _, _, err := WriteFiles(dir, " ", res); err == nil {
		t.Fatalf("expected error for empty base name")
	}
	if _, _, err := WriteFiles(dir, "x", nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
}
