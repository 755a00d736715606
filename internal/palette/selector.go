package palette

// Swatch is the colour selected for one Target.
type Swatch struct {
	Target     string
	Colour     Colour
	Population int
	Score      float64
}

// rangeScore is 1 when v equals target and falls linearly to 0 at the bound
// v has moved toward. Values outside [lo, hi] score 0.
func rangeScore(v, lo, target, hi float64) float64 {
	switch {
	case v < lo || v > hi:
		return 0
	case v == target:
		return 1
	case v < target:
		return 1 - (target-v)/(target-lo)
	default:
		return 1 - (v-target)/(hi-target)
	}
}

// Score rates a quantized colour against a target.
//
// The saturation, lightness and population scores are combined as a weighted
// mean over the criteria whose weight is non-zero. Population is scored
// relative to maxPopulation, the largest population in the whole set. ok is
// false when the target has no non-zero weight.
func Score(qc QuantizedColour, t Target, maxPopulation int) (score float64, ok bool) {
	hsl := qc.Colour.HSL()

	var sum, weights float64
	if t.SaturationWeight > 0 {
		sum += t.SaturationWeight * rangeScore(hsl.S, t.MinSaturation, t.TargetSaturation, t.MaxSaturation)
		weights += t.SaturationWeight
	}
	if t.LightnessWeight > 0 {
		sum += t.LightnessWeight * rangeScore(hsl.L, t.MinLightness, t.TargetLightness, t.MaxLightness)
		weights += t.LightnessWeight
	}
	if t.PopulationWeight > 0 {
		var pop float64
		if maxPopulation > 0 {
			pop = float64(qc.Population) / float64(maxPopulation)
		}
		sum += t.PopulationWeight * pop
		weights += t.PopulationWeight
	}
	if weights == 0 {
		return 0, false
	}
	return sum / weights, true
}

// better reports whether candidate a beats b: higher score, then higher
// population, then lower packed colour.
func better(a QuantizedColour, aScore float64, b QuantizedColour, bScore float64) bool {
	if aScore != bScore {
		return aScore > bScore
	}
	if a.Population != b.Population {
		return a.Population > b.Population
	}
	return a.Colour.Raw() < b.Colour.Raw()
}

// Select picks at most one swatch per target, in target order.
//
// Each target takes the best-scoring colour not yet claimed by an earlier
// exclusive target. There is no minimum score: a target always reports the
// best colour left. A target with no non-zero weight, or with no colour left
// to choose from, yields no swatch.
func Select(population []QuantizedColour, targets []Target) []Swatch {
	if len(population) == 0 {
		return nil
	}

	maxPopulation := 0
	for _, qc := range population {
		maxPopulation = max(maxPopulation, qc.Population)
	}

	claimed := make([]bool, len(population))
	swatches := make([]Swatch, 0, len(targets))
	for _, t := range targets {
		best, bestScore := -1, 0.0
		for i, qc := range population {
			if claimed[i] {
				continue
			}
			score, ok := Score(qc, t, maxPopulation)
			if !ok {
				break
			}
			if best < 0 || better(qc, score, population[best], bestScore) {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			continue
		}
		if t.Exclusive {
			claimed[best] = true
		}
		swatches = append(swatches, Swatch{
			Target:     t.Name,
			Colour:     population[best].Colour,
			Population: population[best].Population,
			Score:      bestScore,
		})
	}
	return swatches
}
