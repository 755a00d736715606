// Package imaging connects decoded image files to the palette engine.
//
// It loads and caches images, converts them to palette bitmaps, and wraps
// quantization and swatch selection in result types that the MCP tools and
// the command-line client serialize directly.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. For regions, (X1,Y1) is
// inclusive and (X2,Y2) is exclusive.
//
// # Pipeline
//
// ExtractPalette runs the full chain:
//
//	img -> CropRegion -> Resample -> ToBitmap -> palette.Generate
//
// Resample only does work for the linear and lanczos filters; with the
// default nearest filter the bitmap's own nearest-neighbour scaling is used,
// so no blended colours enter the histogram.
//
// # Color Representation
//
// Colours are reported as:
//   - Hex: "#RRGGBB" (alpha excluded)
//   - ARGB: "#AARRGGBB"
//   - RGB / RGBA: 8-bit components, alpha straight (not premultiplied)
//   - HSL: Hue (0-359), Saturation (0-100), Lightness (0-100)
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Everything else is stateless and
// can run concurrently on different images.
package imaging
