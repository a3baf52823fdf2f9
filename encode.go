package pdficon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

// ErrMultiSizeUnsupported reports that the container encoder could not write
// every frame. Build recovers by embedding only the largest frame.
var ErrMultiSizeUnsupported = errors.New("multi-size icon encoding unsupported")

// ContainerEncoder writes icon containers.
type ContainerEncoder interface {
	// EncodeAll writes every frame, in order, into one container.
	EncodeAll(w io.Writer, frames []image.Image) error
	// Encode writes a single-frame container.
	Encode(w io.Writer, frame image.Image) error
}

// ICOEncoder writes Windows ICO containers.
type ICOEncoder struct{}

// EncodeAll implements ContainerEncoder.
func (ICOEncoder) EncodeAll(w io.Writer, frames []image.Image) error {
	return ico.EncodeAll(w, frames)
}

// Encode implements ContainerEncoder.
func (ICOEncoder) Encode(w io.Writer, frame image.Image) error {
	return ico.Encode(w, frame)
}

type containerResult struct {
	data        []byte
	frames      []int
	fallback    bool
	fallbackErr error
}

// encodeContainer writes all frames, falling back to the frame at index
// largest when the encoder rejects the full set.
func encodeContainer(enc ContainerEncoder, frames []*image.RGBA, largest int) (containerResult, error) {
	imgs := make([]image.Image, len(frames))
	sizes := make([]int, len(frames))
	for i, f := range frames {
		imgs[i] = f
		sizes[i] = f.Bounds().Dx()
	}

	var buf bytes.Buffer
	err := enc.EncodeAll(&buf, imgs)
	if err == nil {
		return containerResult{data: buf.Bytes(), frames: sizes}, nil
	}
	multiErr := fmt.Errorf("%w: %v", ErrMultiSizeUnsupported, err)

	buf.Reset()
	if err := enc.Encode(&buf, frames[largest]); err != nil {
		return containerResult{}, fmt.Errorf("encode icon container: %w", err)
	}
	return containerResult{
		data:        buf.Bytes(),
		frames:      []int{sizes[largest]},
		fallback:    true,
		fallbackErr: multiErr,
	}, nil
}

// EncodePNG encodes img as a standalone PNG image.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
