package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pkt.systems/pdficon"
	"pkt.systems/pdficon/internal/icongolden"
)

func main() {
	root, err := icongolden.FindModuleRoot()
	if err != nil {
		fatalf("find module root: %v", err)
	}
	if err := writeGoldens(icongolden.Dir(root), os.Stdout); err != nil {
		fatalf("%v", err)
	}
}

// writeGoldens renders every palette at the default sizes into dir.
func writeGoldens(dir string, out io.Writer) error {
	sizes := pdficon.DefaultSizes()
	for _, name := range pdficon.AvailablePalettes() {
		palette, _ := pdficon.PaletteByName(name)
		frames, err := pdficon.Render(sizes, pdficon.WithPalette(palette))
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		for i, frame := range frames {
			path := filepath.Join(dir, icongolden.GoldenName(name, sizes[i]))
			if err := icongolden.WritePNG(path, frame); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(out, "wrote %s\n", path)
		}
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
