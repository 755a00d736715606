package palette

// Filter decides whether a colour may take part in quantization.
type Filter interface {
	IsAllowed(c Colour, hsl HSL) bool
}

// FilterFunc adapts a plain function to Filter.
type FilterFunc func(c Colour, hsl HSL) bool

// IsAllowed calls f.
func (f FilterFunc) IsAllowed(c Colour, hsl HSL) bool { return f(c, hsl) }

const (
	blackMaxLightness = 0.05
	whiteMinLightness = 0.95
)

// DefaultFilter drops colours that make poor theme swatches: near-black,
// near-white, and the desaturated orange band of skin tones ("red I-line").
var DefaultFilter Filter = FilterFunc(func(_ Colour, hsl HSL) bool {
	return !isBlack(hsl) && !isWhite(hsl) && !isNearRedILine(hsl)
})

func isBlack(hsl HSL) bool { return hsl.L <= blackMaxLightness }

func isWhite(hsl HSL) bool { return hsl.L >= whiteMinLightness }

func isNearRedILine(hsl HSL) bool {
	return hsl.H >= 10 && hsl.H <= 37 && hsl.S <= 0.82
}

func allowed(filters []Filter, c Colour) bool {
	if len(filters) == 0 {
		return true
	}
	hsl := c.HSL()
	for _, f := range filters {
		if f != nil && !f.IsAllowed(c, hsl) {
			return false
		}
	}
	return true
}
