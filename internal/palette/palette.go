package palette

import (
	"errors"
	"fmt"
)

// ErrNilBitmap is returned by Generate when no bitmap is supplied.
var ErrNilBitmap = errors.New("nil bitmap")

// DefaultResizeArea is the pixel area bitmaps are shrunk to before
// quantization.
const DefaultResizeArea = 112 * 112

// Options controls palette generation. The zero value selects the defaults.
type Options struct {
	// MaxColours caps the quantized population. Default DefaultMaxColours.
	MaxColours int

	// ResizeArea shrinks larger bitmaps to about this many pixels first.
	// Zero selects DefaultResizeArea; a negative value disables resizing.
	ResizeArea int

	// Targets to select swatches for, in order. Default DefaultTargets().
	Targets []Target

	// Filters applied during quantization. Default [DefaultFilter] unless
	// NoFilters is set.
	Filters   []Filter
	NoFilters bool
}

func (o Options) normalized() Options {
	if o.MaxColours <= 0 {
		o.MaxColours = DefaultMaxColours
	}
	if o.ResizeArea == 0 {
		o.ResizeArea = DefaultResizeArea
	}
	if o.Targets == nil {
		o.Targets = DefaultTargets()
	}
	switch {
	case o.NoFilters:
		o.Filters = nil
	case o.Filters == nil:
		o.Filters = []Filter{DefaultFilter}
	}
	return o
}

// Palette is the result of Generate.
type Palette struct {
	// Population is the quantized colour set, most populous first.
	Population []QuantizedColour

	// Swatches holds at most one swatch per target, in target order.
	Swatches []Swatch
}

// Generate extracts a palette from bmp: the bitmap is shrunk to the resize
// area, quantized, and a swatch is selected for each target.
//
// An empty or fully filtered bitmap is not an error; it produces a palette
// with no population and no swatches.
func Generate(bmp *Bitmap, opts Options) (*Palette, error) {
	if bmp == nil {
		return nil, ErrNilBitmap
	}
	opts = opts.normalized()
	for _, t := range opts.Targets {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	population := Quantize(bmp.ScaledToArea(opts.ResizeArea), opts.MaxColours, opts.Filters...)
	return &Palette{
		Population: population,
		Swatches:   Select(population, opts.Targets),
	}, nil
}

// Swatch returns the swatch selected for the named target.
func (p *Palette) Swatch(name string) (Swatch, bool) {
	key := normalizeName(name)
	for _, s := range p.Swatches {
		if normalizeName(s.Target) == key {
			return s, true
		}
	}
	return Swatch{}, false
}

// Dominant returns the most populous quantized colour.
func (p *Palette) Dominant() (QuantizedColour, bool) {
	if len(p.Population) == 0 {
		return QuantizedColour{}, false
	}
	return p.Population[0], true
}

// Vibrant returns the swatch for the Vibrant target.
func (p *Palette) Vibrant() (Swatch, bool) { return p.Swatch(Vibrant.Name) }

// LightVibrant returns the swatch for the LightVibrant target.
func (p *Palette) LightVibrant() (Swatch, bool) { return p.Swatch(LightVibrant.Name) }

// DarkVibrant returns the swatch for the DarkVibrant target.
func (p *Palette) DarkVibrant() (Swatch, bool) { return p.Swatch(DarkVibrant.Name) }

// Muted returns the swatch for the Muted target.
func (p *Palette) Muted() (Swatch, bool) { return p.Swatch(Muted.Name) }

// LightMuted returns the swatch for the LightMuted target.
func (p *Palette) LightMuted() (Swatch, bool) { return p.Swatch(LightMuted.Name) }

// DarkMuted returns the swatch for the DarkMuted target.
func (p *Palette) DarkMuted() (Swatch, bool) { return p.Swatch(DarkMuted.Name) }

// String summarizes the palette for logs.
func (p *Palette) String() string {
	return fmt.Sprintf("palette(%d colours, %d swatches)", len(p.Population), len(p.Swatches))
}
