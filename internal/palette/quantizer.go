package palette

import "sort"

// DefaultMaxColours is the number of representative colours a palette is
// reduced to when no other limit is given.
const DefaultMaxColours = 16

// QuantizedColour is one representative colour and the number of pixels it
// stands for.
type QuantizedColour struct {
	Colour     Colour
	Population int
}

// channel identifies one of the RGB channels a box can be cut along.
type channel int

const (
	red channel = iota
	green
	blue
)

func (ch channel) of(c Colour) uint8 {
	switch ch {
	case red:
		return c.R()
	case green:
		return c.G()
	default:
		return c.B()
	}
}

// colourBox is a group of distinct colours with their counts and the
// per-channel extents of the group.
type colourBox struct {
	colours    []QuantizedColour
	population int
	lo, hi     [3]uint8
}

func newColourBox(colours []QuantizedColour) *colourBox {
	box := &colourBox{colours: colours, lo: [3]uint8{255, 255, 255}}
	for _, qc := range colours {
		box.population += qc.Population
		for ch := red; ch <= blue; ch++ {
			v := ch.of(qc.Colour)
			box.lo[ch] = min(box.lo[ch], v)
			box.hi[ch] = max(box.hi[ch], v)
		}
	}
	return box
}

// widest returns the channel with the largest value range and that range.
// Ties go to the earlier channel in R, G, B order.
func (b *colourBox) widest() (channel, int) {
	best, width := red, -1
	for ch := red; ch <= blue; ch++ {
		if w := int(b.hi[ch]) - int(b.lo[ch]); w > width {
			best, width = ch, w
		}
	}
	return best, width
}

// canSplit reports whether the box holds more than one distinct colour that
// can be told apart on some RGB channel.
func (b *colourBox) canSplit() bool {
	_, width := b.widest()
	return len(b.colours) > 1 && width > 0
}

// priority ranks boxes for splitting: wide, well-populated boxes first.
func (b *colourBox) priority() int {
	_, width := b.widest()
	return width * b.population
}

// split cuts the box along its widest channel at the population-weighted
// median. Both halves are non-empty.
func (b *colourBox) split() (*colourBox, *colourBox) {
	ch, _ := b.widest()
	sorted := make([]QuantizedColour, len(b.colours))
	copy(sorted, b.colours)
	sort.Slice(sorted, func(i, j int) bool {
		vi, vj := ch.of(sorted[i].Colour), ch.of(sorted[j].Colour)
		if vi != vj {
			return vi < vj
		}
		return sorted[i].Colour.Raw() < sorted[j].Colour.Raw()
	})

	cut, cumulative := len(sorted)-1, 0
	for i, qc := range sorted {
		cumulative += qc.Population
		if cumulative*2 >= b.population {
			cut = i + 1
			break
		}
	}
	cut = min(max(cut, 1), len(sorted)-1)

	return newColourBox(sorted[:cut]), newColourBox(sorted[cut:])
}

// average collapses the box to its population-weighted mean colour.
func (b *colourBox) average() QuantizedColour {
	var sa, sr, sg, sb int
	for _, qc := range b.colours {
		c, n := qc.Colour, qc.Population
		sa += int(c.A()) * n
		sr += int(c.R()) * n
		sg += int(c.G()) * n
		sb += int(c.B()) * n
	}
	n := b.population
	mean := func(sum int) uint8 { return uint8((sum + n/2) / n) }
	return QuantizedColour{
		Colour:     NewColour(mean(sa), mean(sr), mean(sg), mean(sb)),
		Population: n,
	}
}

// Quantize reduces the bitmap's colours to at most maxColours representative
// colours using median cut. Colours rejected by any filter are left out.
func Quantize(bmp *Bitmap, maxColours int, filters ...Filter) []QuantizedColour {
	if bmp == nil {
		return nil
	}
	return QuantizeColours(bmp.pixels, maxColours, filters...)
}

// QuantizeColours reduces a pixel population to at most maxColours
// representative colours.
//
// Duplicate pixels accumulate population. The working set starts as one box
// holding every distinct colour; while it has fewer than maxColours boxes,
// the splittable box with the largest widest-range × population is cut at
// its population-weighted median along the widest channel. Each final box
// becomes its weighted average colour.
//
// The result is ordered by population (descending) then packed value. It
// holds fewer than maxColours entries when the input has fewer distinct
// colours, and is empty for an empty population.
func QuantizeColours(pixels []Colour, maxColours int, filters ...Filter) []QuantizedColour {
	if maxColours <= 0 {
		return nil
	}

	histogram := make(map[uint32]int)
	for _, c := range pixels {
		histogram[c.Raw()]++
	}

	distinct := make([]QuantizedColour, 0, len(histogram))
	for raw, n := range histogram {
		c := FromRaw(raw)
		if !allowed(filters, c) {
			continue
		}
		distinct = append(distinct, QuantizedColour{Colour: c, Population: n})
	}
	if len(distinct) == 0 {
		return nil
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].Colour.Raw() < distinct[j].Colour.Raw()
	})

	boxes := []*colourBox{newColourBox(distinct)}
	for len(boxes) < maxColours {
		target := -1
		for i, box := range boxes {
			if box.canSplit() && (target < 0 || box.priority() > boxes[target].priority()) {
				target = i
			}
		}
		if target < 0 {
			break
		}
		left, right := boxes[target].split()
		boxes[target] = left
		boxes = append(boxes, right)
	}

	result := make([]QuantizedColour, 0, len(boxes))
	for _, box := range boxes {
		result = append(result, box.average())
	}
	sortByPopulation(result)
	return result
}

func sortByPopulation(colours []QuantizedColour) {
	sort.Slice(colours, func(i, j int) bool {
		if colours[i].Population != colours[j].Population {
			return colours[i].Population > colours[j].Population
		}
		return colours[i].Colour.Raw() < colours[j].Colour.Raw()
	})
}
