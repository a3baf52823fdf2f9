package pdficon_test

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/pdficon"
	"pkt.systems/pdficon/internal/icongolden"
)

var updateGoldens = flag.Bool("update", false, "rewrite testdata/golden from the current renderer")

func TestFrameGoldens(t *testing.T) {
	root, err := icongolden.FindModuleRoot()
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}
	goldenDir := icongolden.Dir(root)
	scratch := t.TempDir()
	for _, name := range pdficon.AvailablePalettes() {
		palette, _ := pdficon.PaletteByName(name)
		frames, err := pdficon.Render(pdficon.DefaultSizes(), pdficon.WithPalette(palette))
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		for i, size := range pdficon.DefaultSizes() {
			t.Run(fmt.Sprintf("%s-%d", name, size), func(t *testing.T) {
				want := filepath.Join(goldenDir, icongolden.GoldenName(name, size))
				if *updateGoldens {
					if err := icongolden.WritePNG(want, frames[i]); err != nil {
						t.Fatalf("update golden: %v", err)
					}
				}
				if _, err := os.Stat(want); errors.Is(err, fs.ErrNotExist) {
					// No committed frame yet: compare against an independent
					// render so the PNG round trip is still checked.
					t.Logf("missing golden %s (run \"go test -run Golden -update .\" to write it)", want)
					ref, err := pdficon.RenderFrame(size, pdficon.WithPalette(palette))
					if err != nil {
						t.Fatalf("reference render: %v", err)
					}
					want = filepath.Join(scratch, icongolden.GoldenName(name, size))
					if err := icongolden.WritePNG(want, ref); err != nil {
						t.Fatalf("write reference: %v", err)
					}
				}
				if err := icongolden.ComparePNG(frames[i], want); err != nil {
					t.Fatalf("golden mismatch: %v", err)
				}
			})
		}
	}
}
