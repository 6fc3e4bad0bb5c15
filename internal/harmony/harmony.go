// Package harmony derives the five role hues of a palette from a base hue
// using classic colour-wheel harmony schemes.
package harmony

import (
	"fmt"

	"github.com/jmylchreest/brandpal/internal/brand"
	"github.com/jmylchreest/brandpal/internal/colour"
	"github.com/jmylchreest/brandpal/internal/random"
)

// Scheme is a rule for deriving related hues from a base hue.
type Scheme string

// Harmony schemes.
const (
	Analogous          Scheme = "analogous"
	Complementary      Scheme = "complementary"
	Triadic            Scheme = "triadic"
	SplitComplementary Scheme = "split-complementary"
)

// Schemes returns every scheme.
func Schemes() []Scheme {
	return []Scheme{Analogous, Complementary, Triadic, SplitComplementary}
}

// schemeBias narrows the candidate schemes for some tones. Tones without an
// entry choose uniformly from every scheme.
var schemeBias = map[brand.Tone][]Scheme{
	brand.Playful:      {Triadic, SplitComplementary},
	brand.Energetic:    {Triadic, SplitComplementary},
	brand.Conservative: {Analogous, Complementary},
	brand.Premium:      {Analogous, Complementary},
	brand.Minimal:      {Analogous},
	brand.Techie:       {Analogous},
}

// Fixed saturation/lightness of the neutral and background roles.
const (
	neutralSaturation    = 0.3
	neutralLightness     = 0.6
	backgroundSaturation = 0.2
	backgroundLightness  = 0.9
)

// Params are the inputs of a harmony derivation.
type Params struct {
	BaseHue    int
	AccentHint int
	NeutralHue int
	Tone       brand.Tone
	Modifier   brand.ToneModifier
}

// Swatch is a raw, not yet rendered, role colour. S and L are in [0, 1].
type Swatch struct {
	Role colour.Role
	H    float64
	S    float64
	L    float64
}

// Result is the outcome of a harmony derivation.
type Result struct {
	Scheme       Scheme
	SecondaryHue int
	AccentHue    int
	// Swatches holds one entry per role in colour.Roles() order.
	Swatches []Swatch
}

// SelectScheme picks a scheme with tone-biased probability.
// Single-candidate tones consume no entropy.
func SelectScheme(tone brand.Tone, rng *random.Rand) (Scheme, error) {
	candidates, ok := schemeBias[tone]
	if !ok {
		candidates = Schemes()
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	s, err := random.Pick(rng, candidates)
	if err != nil {
		return "", fmt.Errorf("failed to select harmony scheme: %w", err)
	}
	return s, nil
}

// Hues returns the secondary and accent hues for a scheme. Analogous and
// split-complementary draw jitter from rng; the others are fixed offsets.
// Complementary keeps the accent hint as its accent.
func Hues(scheme Scheme, baseHue, accentHint int, rng *random.Rand) (secondary, accent int, err error) {
	switch scheme {
	case Analogous:
		secondary = baseHue + rng.NextInt(-30, 30)
		accent = baseHue + rng.NextInt(30, 60)
	case Complementary:
		secondary = baseHue + 180
		accent = accentHint
	case Triadic:
		secondary = baseHue + 120
		accent = baseHue + 240
	case SplitComplementary:
		secondary = baseHue + 150 + rng.NextInt(-30, 30)
		accent = baseHue + 210 + rng.NextInt(-30, 30)
	default:
		return 0, 0, fmt.Errorf("unknown harmony scheme: %s", scheme)
	}
	return wrap(secondary), wrap(accent), nil
}

// Derive selects a scheme and produces the five role swatches.
func Derive(p Params, rng *random.Rand) (Result, error) {
	scheme, err := SelectScheme(p.Tone, rng)
	if err != nil {
		return Result{}, err
	}

	secondary, accent, err := Hues(scheme, p.BaseHue, p.AccentHint, rng)
	if err != nil {
		return Result{}, err
	}

	sat, light := p.Modifier.Saturation, p.Modifier.Lightness
	return Result{
		Scheme:       scheme,
		SecondaryHue: secondary,
		AccentHue:    accent,
		Swatches: []Swatch{
			swatch(colour.RolePrimary, wrap(p.BaseHue), sat, light),
			swatch(colour.RoleSecondary, secondary, sat*0.9, light*1.1),
			swatch(colour.RoleAccent, accent, sat*1.2, light*0.9),
			swatch(colour.RoleNeutral, wrap(p.NeutralHue), neutralSaturation, neutralLightness),
			swatch(colour.RoleBackground, wrap(p.NeutralHue), backgroundSaturation, backgroundLightness),
		},
	}, nil
}

func swatch(role colour.Role, hue int, s, l float64) Swatch {
	return Swatch{
		Role: role,
		H:    float64(hue),
		S:    colour.Clamp(s, 0, 1),
		L:    colour.Clamp(l, 0, 1),
	}
}

// wrap reduces a hue to [0, 360).
func wrap(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
