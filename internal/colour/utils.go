package colour

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor reports a malformed hex colour. Inside the engine it
// signals a defect in the harmony maths rather than bad user input.
var ErrInvalidColor = errors.New("invalid colour")

var hexPattern = regexp.MustCompile(`(?i)^#?[0-9a-f]{6}$`)

// WCAG thresholds.
const (
	AANormal  = 4.5
	AALarge   = 3.0
	AAANormal = 7.0
	AAALarge  = 4.5
)

// HexToRGB parses a six digit hex colour, with or without a leading '#'.
func HexToRGB(hex string) (RGB, error) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	c, err := colorful.Hex("#" + strings.TrimPrefix(hex, "#"))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHSL converts RGB to rounded HSL (hue 0-359, saturation and
// lightness in percent).
func RGBToHSL(rgb RGB) HSL {
	h, s, l := rgbToHSL(rgb)
	hue := int(math.Round(h)) % 360
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// HSLToHex renders an HSL colour as a lower-case "#rrggbb" string.
// Hue is reduced mod 360; saturation and lightness are clamped to [0, 1].
func HSLToHex(h, s, l float64) string {
	return colorful.Hsl(NormaliseHue(h), clamp01(s), clamp01(l)).Clamped().Hex()
}

// NormaliseHue reduces a hue in degrees to [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG contrast ratio between two relative
// luminance values. Returns a value between 1 and 21.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsAA reports whether ratio satisfies WCAG AA.
func MeetsAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= AALarge
	}
	return ratio >= AANormal
}

// MeetsAAA reports whether ratio satisfies WCAG AAA.
func MeetsAAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= AAALarge
	}
	return ratio >= AAANormal
}

// BestTextColour picks the text polarity for a background luminance.
func BestTextColour(bgLum float64) TextOn {
	if bgLum > 0.5 {
		return TextDark
	}
	return TextLight
}
