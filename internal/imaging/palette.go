package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// PaletteOptions controls ExtractPalette. Zero values select the palette
// package defaults.
type PaletteOptions struct {
	MaxColours int
	ResizeArea int // 0 = default, negative disables resizing

	// Targets names the canonical targets to fill, in order. Empty selects
	// all six.
	Targets []string

	// Region restricts extraction to part of the image.
	Region *Region

	// Resample picks the downscaling filter; empty means FilterNearest.
	Resample ResampleFilter

	NoFilters bool
}

// SwatchResult is a selected swatch as reported by the tools.
type SwatchResult struct {
	Target     string      `json:"target"`
	Color      ColorResult `json:"color"`
	Population int         `json:"population"`
	Score      float64     `json:"score"`
}

// PopulationEntry is one quantized colour.
type PopulationEntry struct {
	Color      ColorResult `json:"color"`
	Population int         `json:"population"`
}

// PaletteResult is the outcome of ExtractPalette.
type PaletteResult struct {
	// SampledWidth and SampledHeight are the size of the bitmap that was
	// actually quantized, after cropping and resizing.
	SampledWidth  int `json:"sampled_width"`
	SampledHeight int `json:"sampled_height"`

	Swatches   []SwatchResult    `json:"swatches"`
	Population []PopulationEntry `json:"population"`
}

// ResolveTargets maps target names to canonical targets. An empty list
// selects palette.DefaultTargets().
func ResolveTargets(names []string) ([]palette.Target, error) {
	if len(names) == 0 {
		return palette.DefaultTargets(), nil
	}
	targets := make([]palette.Target, 0, len(names))
	for _, name := range names {
		t, ok := palette.TargetByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown target: %s", name)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// prepare crops img to the region and shrinks it with the chosen filter.
func prepare(img image.Image, region *Region, maxArea int, filter ResampleFilter) (*palette.Bitmap, error) {
	if region != nil {
		cropped, err := CropRegion(img, *region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}
	return ToBitmap(Resample(img, maxArea, filter)), nil
}

// ExtractPalette builds a palette from img: optional crop, resize, median-cut
// quantization and swatch selection for each requested target.
func ExtractPalette(img image.Image, opts PaletteOptions) (*PaletteResult, error) {
	targets, err := ResolveTargets(opts.Targets)
	if err != nil {
		return nil, err
	}

	resizeArea := opts.ResizeArea
	if resizeArea == 0 {
		resizeArea = palette.DefaultResizeArea
	}
	bmp, err := prepare(img, opts.Region, resizeArea, opts.Resample)
	if err != nil {
		return nil, err
	}
	bmp = bmp.ScaledToArea(resizeArea)

	p, err := palette.Generate(bmp, palette.Options{
		MaxColours: opts.MaxColours,
		ResizeArea: resizeArea,
		Targets:    targets,
		NoFilters:  opts.NoFilters,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate palette: %w", err)
	}

	return &PaletteResult{
		SampledWidth:  bmp.Width(),
		SampledHeight: bmp.Height(),
		Swatches:      swatchResults(p.Swatches),
		Population:    populationEntries(p.Population),
	}, nil
}

// QuantizeImage runs median cut over img (or region of it) at full
// resolution, returning at most maxColours colours. With filtered set,
// palette.DefaultFilter drops near-black, near-white and skin tones first.
func QuantizeImage(img image.Image, maxColours int, region *Region, filtered bool) ([]PopulationEntry, error) {
	if maxColours <= 0 {
		return nil, fmt.Errorf("max_colours must be positive, got %d", maxColours)
	}
	bmp, err := prepare(img, region, 0, FilterNearest)
	if err != nil {
		return nil, err
	}
	var filters []palette.Filter
	if filtered {
		filters = append(filters, palette.DefaultFilter)
	}
	return populationEntries(palette.Quantize(bmp, maxColours, filters...)), nil
}

func swatchResults(swatches []palette.Swatch) []SwatchResult {
	out := make([]SwatchResult, 0, len(swatches))
	for _, s := range swatches {
		out = append(out, SwatchResult{
			Target:     s.Target,
			Color:      NewColorResult(s.Colour),
			Population: s.Population,
			Score:      s.Score,
		})
	}
	return out
}

func populationEntries(population []palette.QuantizedColour) []PopulationEntry {
	out := make([]PopulationEntry, 0, len(population))
	for _, qc := range population {
		out = append(out, PopulationEntry{
			Color:      NewColorResult(qc.Colour),
			Population: qc.Population,
		})
	}
	return out
}
