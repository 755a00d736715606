package imaging

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// ToBitmap copies img into a palette bitmap. Channels are stored straight
// (not premultiplied), so a half-transparent red keeps R=255.
func ToBitmap(img image.Image) *palette.Bitmap {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	pixels := make([]palette.Colour, 0, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			pixels = append(pixels, palette.NewColour(row[i+3], row[i], row[i+1], row[i+2]))
		}
	}

	bmp := palette.NewBitmap(w, h)
	// The slice is built to the exact bitmap size.
	_ = bmp.SetPixels(pixels, 0, 0, w, h)
	return bmp
}

// ResampleFilter selects how images are shrunk before quantization.
type ResampleFilter string

const (
	// FilterNearest leaves shrinking to the bitmap's own nearest-neighbour
	// scaling, which never blends colours.
	FilterNearest ResampleFilter = "nearest"

	// FilterLinear shrinks with bilinear interpolation.
	FilterLinear ResampleFilter = "linear"

	// FilterLanczos shrinks with a Lanczos kernel. Sharper, slower.
	FilterLanczos ResampleFilter = "lanczos"
)

// ParseResampleFilter accepts "nearest", "linear" or "lanczos" in any case.
// An empty name selects FilterNearest.
func ParseResampleFilter(name string) (ResampleFilter, error) {
	switch f := ResampleFilter(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FilterNearest, nil
	case FilterNearest, FilterLinear, FilterLanczos:
		return f, nil
	}
	return "", fmt.Errorf("unknown resample filter: %s (want nearest, linear or lanczos)", name)
}

// Resample shrinks img, keeping its aspect ratio, to at most maxArea pixels.
// img is returned unchanged when it already fits, when maxArea is not
// positive, or for FilterNearest.
func Resample(img image.Image, maxArea int, filter ResampleFilter) image.Image {
	bounds := img.Bounds()
	area := bounds.Dx() * bounds.Dy()
	if filter == FilterNearest || maxArea <= 0 || area <= maxArea {
		return img
	}

	ratio := math.Sqrt(float64(maxArea) / float64(area))
	w := max(int(float64(bounds.Dx())*ratio), 1)
	h := max(int(float64(bounds.Dy())*ratio), 1)

	kernel := transform.Linear
	if filter == FilterLanczos {
		kernel = transform.Lanczos
	}
	return transform.Resize(img, w, h, kernel)
}
