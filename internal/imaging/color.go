package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// RGBColor is an 8-bit RGB triple.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor is an 8-bit RGB triple plus straight (non-premultiplied) alpha.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"` // 0 = fully transparent, 255 = opaque
}

// HSLColor is an HSL colour rounded down to whole units for display.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult reports one colour in the representations tools hand back.
type ColorResult struct {
	Hex  string    `json:"hex"`  // "#RRGGBB", alpha excluded
	ARGB string    `json:"argb"` // "#AARRGGBB"
	RGB  RGBColor  `json:"rgb"`
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// toHSLColor scales a palette HSL value to whole degrees and percentages.
func toHSLColor(hsl palette.HSL) HSLColor {
	return HSLColor{
		H: int(hsl.H),
		S: int(hsl.S * 100),
		L: int(hsl.L * 100),
	}
}

// NewColorResult expands c into every representation of ColorResult.
func NewColorResult(c palette.Colour) ColorResult {
	return ColorResult{
		Hex:  c.Hex(),
		ARGB: c.String(),
		RGB:  RGBColor{R: c.R(), G: c.G(), B: c.B()},
		RGBA: RGBAColor{R: c.R(), G: c.G(), B: c.B(), A: c.A()},
		HSL:  toHSLColor(c.HSL()),
	}
}

// SampleColor returns the colour of the pixel at (x, y).
//
// Coordinates are 0-based from the top-left corner and must lie inside the
// image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if !(image.Point{X: x, Y: y}).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := palette.ColourModel.Convert(img.At(x, y)).(palette.Colour)
	result := NewColorResult(c)
	return &result, nil
}

// ColorFrequency is one quantized colour and its share of the analysed pixels.
type ColorFrequency struct {
	Hex        string   `json:"hex"`
	Percentage float64  `json:"percentage"` // 0-100
	Population int      `json:"population"`
	RGB        RGBColor `json:"rgb"`
}

// DominantColorsResult lists quantized colours, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors reduces img (or region of it, when non-nil) to at most
// count representative colours by median cut and reports each colour's share
// of the pixels. No colours are filtered out.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	if region != nil {
		cropped, err := CropRegion(img, *region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	bmp := ToBitmap(img)
	population := palette.Quantize(bmp, count)
	total := bmp.Width() * bmp.Height()

	colors := make([]ColorFrequency, 0, len(population))
	for _, qc := range population {
		c := qc.Colour
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(qc.Population) / float64(total) * 100,
			Population: qc.Population,
			RGB:        RGBColor{R: c.R(), G: c.G(), B: c.B()},
		})
	}

	return &DominantColorsResult{Colors: colors}, nil
}
