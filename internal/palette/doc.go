// Package palette extracts named colour swatches from a bitmap.
//
// The pipeline has three stages:
//
//  1. A Bitmap holds the pixel population as packed ARGB Colours.
//  2. QuantizeColours reduces that population to a few representative
//     colours with median cut over RGB space.
//  3. Select scores every representative colour against each Target
//     (Vibrant, Muted, and their light and dark variants) and picks one
//     Swatch per target.
//
// Generate runs all three with sensible defaults:
//
//	p, err := palette.Generate(bmp, palette.Options{})
//	if err != nil {
//	    return err
//	}
//	if s, ok := p.Vibrant(); ok {
//	    fmt.Println(s.Colour.Hex())
//	}
//
// # Boundaries
//
// Bitmap access outside its bounds is lenient: reads return opaque white and
// writes are dropped. PixelAt reports whether a position was in bounds.
//
// # Concurrency
//
// Everything here is synchronous and holds no shared mutable state. The
// canonical Target values are read-only and may be shared between goroutines;
// a Bitmap must not be mutated while another goroutine reads it.
package palette
