package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is a 32-bit ARGB colour stored in its packed form.
//
// The packed layout is always (alpha<<24)|(red<<16)|(green<<8)|blue. The zero
// value is transparent black. Colours are plain values: copy them freely.
type Colour struct {
	argb uint32
}

// HSL is a colour in hue/saturation/lightness space.
//
// H is in degrees [0,360); S and L are normalized to [0,1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// White is opaque white, the value every fresh Bitmap cell holds.
var White = FromRaw(0xFFFFFFFF)

// NewColour packs four 8-bit channels into a Colour.
func NewColour(a, r, g, b uint8) Colour {
	return Colour{argb: uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// FromRaw wraps a packed ARGB value.
func FromRaw(argb uint32) Colour {
	return Colour{argb: argb}
}

// FromHSL builds an opaque Colour from hue (degrees), saturation and lightness.
// The conversion rounds to 8-bit channels, so HSL() of the result may differ
// slightly from the input.
func FromHSL(h, s, l float64) Colour {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return NewColour(0xFF, r, g, b)
}

// Raw returns the packed ARGB value.
func (c Colour) Raw() uint32 { return c.argb }

// A returns the alpha channel.
func (c Colour) A() uint8 { return uint8(c.argb >> 24) }

// R returns the red channel.
func (c Colour) R() uint8 { return uint8(c.argb >> 16) }

// G returns the green channel.
func (c Colour) G() uint8 { return uint8(c.argb >> 8) }

// B returns the blue channel.
func (c Colour) B() uint8 { return uint8(c.argb) }

// SetA replaces the alpha channel, leaving the others untouched.
func (c *Colour) SetA(v uint8) { c.setChannel(24, v) }

// SetR replaces the red channel, leaving the others untouched.
func (c *Colour) SetR(v uint8) { c.setChannel(16, v) }

// SetG replaces the green channel, leaving the others untouched.
func (c *Colour) SetG(v uint8) { c.setChannel(8, v) }

// SetB replaces the blue channel, leaving the others untouched.
func (c *Colour) SetB(v uint8) { c.setChannel(0, v) }

// SetRaw replaces all four channels at once.
func (c *Colour) SetRaw(argb uint32) { c.argb = argb }

func (c *Colour) setChannel(shift uint, v uint8) {
	c.argb = c.argb&^(0xFF<<shift) | uint32(v)<<shift
}

// HSL converts the RGB channels to hue, saturation and lightness.
//
// Lightness is (max+min)/2 and saturation is (max-min)/(1-|2L-1|) over
// channels normalized to [0,1]. Achromatic colours (max == min) report a hue
// and saturation of 0. Alpha is ignored.
func (c Colour) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	if h >= 360 {
		h -= 360
	}
	return HSL{H: h, S: s, L: l}
}

// Hex formats the colour as "#RRGGBB" (alpha excluded).
func (c Colour) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// String formats the colour as "#AARRGGBB".
func (c Colour) String() string {
	return fmt.Sprintf("#%08X", c.argb)
}

// RGBA implements color.Color. Channels are stored straight (not
// premultiplied), so they are premultiplied here.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

func (c Colour) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
}

// ColourModel converts any color.Color into a Colour.
var ColourModel = color.ModelFunc(func(c color.Color) color.Color {
	if col, ok := c.(Colour); ok {
		return col
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColour(n.A, n.R, n.G, n.B)
})
