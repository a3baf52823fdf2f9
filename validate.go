package pdficon

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSizes reports an empty size list.
	ErrNoSizes = errors.New("no icon sizes requested")
	// ErrInvalidSize reports a size that is not a positive pixel count.
	ErrInvalidSize = errors.New("invalid icon size")
)

// DefaultSizes returns the frame sizes of a standard application icon.
func DefaultSizes() []int {
	return []int{16, 32, 48, 64, 128, 256}
}

// ValidateSizes returns an error if sizes is empty or holds a non-positive
// value.
func ValidateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return ErrNoSizes
	}
	for i, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("%w: sizes[%d]=%d", ErrInvalidSize, i, s)
		}
	}
	return nil
}

// largestIndex returns the index of the greatest size, the first one on ties.
func largestIndex(sizes []int) int {
	best := 0
	for i, s := range sizes {
		if s > sizes[best] {
			best = i
		}
	}
	return best
}
