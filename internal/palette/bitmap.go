package palette

import (
	"errors"
	"fmt"
	"math"
)

// ErrPixelCountMismatch is returned by SetPixels when the number of supplied
// colours differs from the number of in-bounds cells in the target rectangle.
var ErrPixelCountMismatch = errors.New("pixel count does not match in-bounds area")

// Bitmap is a row-major grid of colours.
//
// Every in-bounds cell is defined; fresh cells hold opaque white.
// Out-of-bounds access is lenient: reads return White and writes are dropped.
// Use PixelAt when the caller needs to tell the two apart.
//
// The zero value is an invalid, empty bitmap. Resizing it does not make it
// valid; create bitmaps meant for use with NewBitmap.
type Bitmap struct {
	width  int
	height int
	pixels []Colour
	sized  bool
}

// NewBitmap creates a width×height bitmap filled with opaque white.
// Negative dimensions are treated as zero.
func NewBitmap(width, height int) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	b := &Bitmap{
		width:  width,
		height: height,
		pixels: make([]Colour, width*height),
		sized:  true,
	}
	for i := range b.pixels {
		b.pixels[i] = White
	}
	return b
}

// Width returns the number of columns.
func (b *Bitmap) Width() int { return b.width }

// Height returns the number of rows.
func (b *Bitmap) Height() int { return b.height }

// IsValid reports whether the bitmap was created by NewBitmap with a
// non-zero area.
func (b *Bitmap) IsValid() bool {
	return b.sized && b.width > 0 && b.height > 0
}

func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Pixel returns the colour at (x, y), or White when (x, y) is out of bounds.
func (b *Bitmap) Pixel(x, y int) Colour {
	c, _ := b.PixelAt(x, y)
	return c
}

// PixelAt returns the colour at (x, y) and whether the position is in bounds.
// Out-of-bounds positions yield White and false.
func (b *Bitmap) PixelAt(x, y int) (Colour, bool) {
	if !b.inBounds(x, y) {
		return White, false
	}
	return b.pixels[y*b.width+x], true
}

// SetPixel stores c at (x, y). Out-of-bounds writes are ignored.
func (b *Bitmap) SetPixel(c Colour, x, y int) {
	if !b.inBounds(x, y) {
		return
	}
	b.pixels[y*b.width+x] = c
}

// clip intersects the w×h rectangle at (x, y) with the bitmap bounds.
func (b *Bitmap) clip(x, y, w, h int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+max(w, 0), b.width), min(y+max(h, 0), b.height)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0
	}
	return x0, y0, x1, y1
}

// Pixels returns the in-bounds part of the w×h rectangle at (x, y) in
// row-major order. Positions outside the bitmap are skipped, so the result
// may be shorter than w*h, and is empty for a rectangle entirely outside.
func (b *Bitmap) Pixels(x, y, w, h int) []Colour {
	x0, y0, x1, y1 := b.clip(x, y, w, h)
	out := make([]Colour, 0, (x1-x0)*(y1-y0))
	for row := y0; row < y1; row++ {
		out = append(out, b.pixels[row*b.width+x0:row*b.width+x1]...)
	}
	return out
}

// SetPixels writes colours into the in-bounds part of the w×h rectangle at
// (x, y), in the same order Pixels reads them. len(colours) must equal that
// in-bounds count; otherwise nothing is written and ErrPixelCountMismatch is
// returned.
func (b *Bitmap) SetPixels(colours []Colour, x, y, w, h int) error {
	x0, y0, x1, y1 := b.clip(x, y, w, h)
	want := (x1 - x0) * (y1 - y0)
	if len(colours) != want {
		return fmt.Errorf("set %d pixels into %d cells: %w", len(colours), want, ErrPixelCountMismatch)
	}
	i := 0
	for row := y0; row < y1; row++ {
		i += copy(b.pixels[row*b.width+x0:row*b.width+x1], colours[i:])
	}
	return nil
}

// SetWidth resizes the bitmap horizontally. Existing cells that remain in
// bounds keep their colour and new cells are white. Height is unchanged.
func (b *Bitmap) SetWidth(width int) {
	b.resize(max(width, 0), b.height)
}

// SetHeight resizes the bitmap vertically. Existing cells that remain in
// bounds keep their colour and new cells are white. Width is unchanged.
func (b *Bitmap) SetHeight(height int) {
	b.resize(b.width, max(height, 0))
}

func (b *Bitmap) resize(width, height int) {
	pixels := make([]Colour, width*height)
	for i := range pixels {
		pixels[i] = White
	}
	keepW, keepH := min(width, b.width), min(height, b.height)
	for row := 0; row < keepH; row++ {
		copy(pixels[row*width:row*width+keepW], b.pixels[row*b.width:row*b.width+keepW])
	}
	b.width, b.height, b.pixels = width, height, pixels
}

// Scaled returns a new width×height bitmap sampled from b by nearest
// neighbour: destination (x, y) takes source (x*srcW/width, y*srcH/height)
// with floor division. Scaling up by an integer factor reproduces each
// source pixel as a solid block; scaling down never blends.
func (b *Bitmap) Scaled(width, height int) *Bitmap {
	dst := NewBitmap(width, height)
	for y := 0; y < dst.height; y++ {
		sy := y * b.height / dst.height
		for x := 0; x < dst.width; x++ {
			dst.pixels[y*dst.width+x] = b.Pixel(x*b.width/dst.width, sy)
		}
	}
	return dst
}

// ScaledToArea shrinks the bitmap, keeping its aspect ratio, so that it holds
// at most maxArea pixels. It returns b itself when no shrinking is needed or
// maxArea is not positive.
func (b *Bitmap) ScaledToArea(maxArea int) *Bitmap {
	area := b.width * b.height
	if maxArea <= 0 || area <= maxArea {
		return b
	}
	ratio := math.Sqrt(float64(maxArea) / float64(area))
	w := max(int(float64(b.width)*ratio), 1)
	h := max(int(float64(b.height)*ratio), 1)
	return b.Scaled(w, h)
}
