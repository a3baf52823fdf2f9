// Package pdficon renders a PDF-document application icon at several sizes.
//
// Every frame is drawn procedurally: a drop shadow, a rounded white sheet with
// a folded top-right corner and, on frames of 32 pixels or more, a red "PDF"
// label. When no scalable font is available the label degrades to three grey
// placeholder bars. Frames are encoded into a multi-resolution ICO container
// and the largest frame is also encoded as a standalone PNG.
//
// Core properties:
//   - Deterministic drawing; identical input yields identical output bytes
//   - Frame order in the container follows the requested size order
//   - Container encoding falls back to the single largest frame
//
// Example:
//
//	res, err := pdficon.Build(pdficon.DefaultSizes(),
//		pdficon.WithPalette(pdficon.DefaultPalette()),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, _, err := pdficon.WriteFiles(".", "app_icon", res); err != nil {
//		log.Fatal(err)
//	}
//
// Rendering can be customized with RenderOptions such as WithTypeface and
// WithLabel.
package pdficon
