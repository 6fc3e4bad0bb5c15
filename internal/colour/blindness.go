package colour

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Deficiency is a simulated colour vision deficiency.
type Deficiency string

const (
	Protanopia   Deficiency = "protanopia"
	Deuteranopia Deficiency = "deuteranopia"
	Tritanopia   Deficiency = "tritanopia"
)

// MinDistinguishableDeltaE is the smallest CIEDE2000 difference at which two
// simulated colours still count as distinguishable.
const MinDistinguishableDeltaE = 15.0

// Deficiencies returns every simulated deficiency.
func Deficiencies() []Deficiency {
	return []Deficiency{Protanopia, Deuteranopia, Tritanopia}
}

// Per-channel weights in sRGB space. Rows are applied in order and each row
// sees the channels already rewritten by the rows above it. Every row sums to
// 1, so greys are preserved.
var deficiencyMatrices = map[Deficiency][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
}

// SimulateColourBlindness returns hex as it might appear to someone with
// the given deficiency.
func SimulateColourBlindness(hex string, kind Deficiency) (string, error) {
	m, ok := deficiencyMatrices[kind]
	if !ok {
		return "", fmt.Errorf("unknown colour deficiency: %s", kind)
	}

	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}

	ch := [3]float64{
		float64(rgb.R) / 255.0,
		float64(rgb.G) / 255.0,
		float64(rgb.B) / 255.0,
	}
	for i, row := range m {
		ch[i] = row[0]*ch[0] + row[1]*ch[1] + row[2]*ch[2]
	}

	sim := colorful.Color{R: ch[0], G: ch[1], B: ch[2]}
	return sim.Clamped().Hex(), nil
}

// DeltaE returns the CIEDE2000 difference between two hex colours on the
// conventional 0-100 lightness scale.
func DeltaE(a, b string) (float64, error) {
	ca, err := toColorful(a)
	if err != nil {
		return 0, err
	}
	cb, err := toColorful(b)
	if err != nil {
		return 0, err
	}
	// go-colorful works with L* in [0, 1].
	return ca.DistanceCIEDE2000(cb) * 100, nil
}

// Distinguishable reports whether a and b stay at least
// MinDistinguishableDeltaE apart under every simulated deficiency.
func Distinguishable(a, b string) (bool, error) {
	for _, kind := range Deficiencies() {
		simA, err := SimulateColourBlindness(a, kind)
		if err != nil {
			return false, err
		}
		simB, err := SimulateColourBlindness(b, kind)
		if err != nil {
			return false, err
		}
		d, err := DeltaE(simA, simB)
		if err != nil {
			return false, err
		}
		if d < MinDistinguishableDeltaE {
			return false, nil
		}
	}
	return true, nil
}

func toColorful(hex string) (colorful.Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}, nil
}
