package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// DefaultChipSize is the edge length, in pixels, of one preview chip.
const DefaultChipSize = 64

// PreviewResult is a rendered swatch strip.
type PreviewResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
	Targets     []string `json:"targets"` // chip order, left to right
}

// RenderSwatches draws one square chip per swatch, left to right, separated
// by a gap filled with background (a "#RRGGBB" or "#AARRGGBB" string; empty
// means transparent). The strip is returned as a base64 PNG.
func RenderSwatches(swatches []SwatchResult, chipSize, gap int, background string) (*PreviewResult, error) {
	if len(swatches) == 0 {
		return nil, fmt.Errorf("no swatches to render")
	}
	if chipSize <= 0 {
		chipSize = DefaultChipSize
	}
	gap = max(gap, 0)

	var bg color.Color = color.Transparent
	if background != "" {
		c, err := parseHexColor(background)
		if err != nil {
			return nil, fmt.Errorf("invalid background: %w", err)
		}
		bg = c
	}

	n := len(swatches)
	width := n*chipSize + (n+1)*gap
	height := chipSize + 2*gap
	canvas := imaging.New(width, height, bg)

	targets := make([]string, 0, n)
	for i, s := range swatches {
		c, err := parseHexColor(s.Color.ARGB)
		if err != nil {
			return nil, fmt.Errorf("swatch %s: %w", s.Target, err)
		}
		chip := imaging.New(chipSize, chipSize, c)
		canvas = imaging.Paste(canvas, chip, image.Pt(gap+i*(chipSize+gap), gap))
		targets = append(targets, s.Target)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Targets:     targets,
	}, nil
}

// parseHexColor parses "#RRGGBB" (opaque) or "#AARRGGBB". The leading '#'
// is optional.
func parseHexColor(hex string) (palette.Colour, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 0 {
		return palette.Colour{}, fmt.Errorf("empty color string")
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return palette.Colour{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	switch len(hex) {
	case 6:
		return palette.FromRaw(0xFF000000 | uint32(val)), nil
	case 8:
		return palette.FromRaw(uint32(val)), nil
	}
	return palette.Colour{}, fmt.Errorf("invalid hex color length %d", len(hex))
}
