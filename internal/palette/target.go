package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTarget is returned when a Target's ranges or weights are inconsistent.
var ErrInvalidTarget = errors.New("invalid target")

// Target is a named scoring profile used to pick one swatch.
//
// Saturation and lightness each have a min ≤ target ≤ max range in [0,1].
// The weights set how much each criterion counts; they need not sum to 1.
// An exclusive target claims the colour it selects so that later targets
// cannot pick it again.
type Target struct {
	Name string `json:"name"`

	MinSaturation    float64 `json:"min_saturation"`
	TargetSaturation float64 `json:"target_saturation"`
	MaxSaturation    float64 `json:"max_saturation"`

	MinLightness    float64 `json:"min_lightness"`
	TargetLightness float64 `json:"target_lightness"`
	MaxLightness    float64 `json:"max_lightness"`

	SaturationWeight float64 `json:"saturation_weight"`
	LightnessWeight  float64 `json:"lightness_weight"`
	PopulationWeight float64 `json:"population_weight"`

	Exclusive bool `json:"exclusive"`
}

const (
	targetDarkLightness = 0.26
	maxDarkLightness    = 0.45

	minLightLightness    = 0.55
	targetLightLightness = 0.74

	minNormalLightness    = 0.35
	targetNormalLightness = 0.5
	maxNormalLightness    = 0.7

	targetMutedSaturation = 0.3
	maxMutedSaturation    = 0.4

	targetVibrantSaturation = 1.0
	minVibrantSaturation    = 0.35

	weightSaturation = 0.24
	weightLightness  = 0.52
	weightPopulation = 0.24
)

// TargetOption adjusts a Target under construction.
type TargetOption func(*Target)

// WithSaturation sets the saturation range.
func WithSaturation(lo, target, hi float64) TargetOption {
	return func(t *Target) {
		t.MinSaturation, t.TargetSaturation, t.MaxSaturation = lo, target, hi
	}
}

// WithLightness sets the lightness range.
func WithLightness(lo, target, hi float64) TargetOption {
	return func(t *Target) {
		t.MinLightness, t.TargetLightness, t.MaxLightness = lo, target, hi
	}
}

// WithWeights sets the saturation, lightness and population weights.
func WithWeights(saturation, lightness, population float64) TargetOption {
	return func(t *Target) {
		t.SaturationWeight, t.LightnessWeight, t.PopulationWeight = saturation, lightness, population
	}
}

// WithExclusive sets whether the target claims the colour it selects.
func WithExclusive(exclusive bool) TargetOption {
	return func(t *Target) { t.Exclusive = exclusive }
}

// NewTarget builds a Target. Without options it accepts any saturation and
// lightness, aims for the middle of both, uses the standard weights and is
// exclusive.
func NewTarget(name string, opts ...TargetOption) Target {
	t := Target{
		Name:             name,
		MinSaturation:    0,
		TargetSaturation: 0.5,
		MaxSaturation:    1,
		MinLightness:     0,
		TargetLightness:  0.5,
		MaxLightness:     1,
		SaturationWeight: weightSaturation,
		LightnessWeight:  weightLightness,
		PopulationWeight: weightPopulation,
		Exclusive:        true,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

var (
	vibrantSaturation = WithSaturation(minVibrantSaturation, targetVibrantSaturation, 1)
	mutedSaturation   = WithSaturation(0, targetMutedSaturation, maxMutedSaturation)

	lightLightness  = WithLightness(minLightLightness, targetLightLightness, 1)
	normalLightness = WithLightness(minNormalLightness, targetNormalLightness, maxNormalLightness)
	darkLightness   = WithLightness(0, targetDarkLightness, maxDarkLightness)
)

// The canonical targets.
var (
	LightVibrant = NewTarget("light_vibrant", vibrantSaturation, lightLightness)
	Vibrant      = NewTarget("vibrant", vibrantSaturation, normalLightness)
	DarkVibrant  = NewTarget("dark_vibrant", vibrantSaturation, darkLightness)
	LightMuted   = NewTarget("light_muted", mutedSaturation, lightLightness)
	Muted        = NewTarget("muted", mutedSaturation, normalLightness)
	DarkMuted    = NewTarget("dark_muted", mutedSaturation, darkLightness)
)

// DefaultTargets returns the canonical targets in selection order. The slice
// is a fresh copy on every call.
func DefaultTargets() []Target {
	return []Target{LightVibrant, Vibrant, DarkVibrant, LightMuted, Muted, DarkMuted}
}

// TargetByName finds a canonical target. Matching ignores case, spaces,
// underscores and hyphens, so "DarkVibrant", "dark_vibrant" and
// "dark-vibrant" are equivalent.
func TargetByName(name string) (Target, bool) {
	key := normalizeName(name)
	for _, t := range DefaultTargets() {
		if normalizeName(t.Name) == key {
			return t, true
		}
	}
	return Target{}, false
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// Validate checks that every range is ordered and inside [0,1] and that no
// weight is negative.
func (t Target) Validate() error {
	ranges := []struct {
		name           string
		lo, target, hi float64
	}{
		{"saturation", t.MinSaturation, t.TargetSaturation, t.MaxSaturation},
		{"lightness", t.MinLightness, t.TargetLightness, t.MaxLightness},
	}
	for _, r := range ranges {
		if r.lo < 0 || r.hi > 1 || r.lo > r.target || r.target > r.hi {
			return fmt.Errorf("target %q: %s range %.2f/%.2f/%.2f: %w",
				t.Name, r.name, r.lo, r.target, r.hi, ErrInvalidTarget)
		}
	}
	if t.SaturationWeight < 0 || t.LightnessWeight < 0 || t.PopulationWeight < 0 {
		return fmt.Errorf("target %q: negative weight: %w", t.Name, ErrInvalidTarget)
	}
	return nil
}
