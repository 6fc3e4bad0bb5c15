// Package colour provides the colour model and the accessibility metrics
// used by palette generation.
package colour

import (
	"encoding/json"
	"fmt"
)

// Role is one of the five semantic slots every palette fills.
type Role string

// Palette roles.
const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleNeutral    Role = "neutral"
	RoleBackground Role = "background"
)

// Roles returns every role in canonical order.
func Roles() []Role {
	return []Role{RolePrimary, RoleSecondary, RoleAccent, RoleNeutral, RoleBackground}
}

// ForegroundRoles returns the roles that are checked against the background.
func ForegroundRoles() []Role {
	return []Role{RolePrimary, RoleSecondary, RoleAccent, RoleNeutral}
}

// TextOn is the polarity of text that reads best on a colour.
type TextOn string

const (
	// TextLight means light (white) text should be placed on the colour.
	TextLight TextOn = "light"
	// TextDark means dark (black) text should be placed on the colour.
	TextDark TextOn = "dark"
)

// RGB represents a color in RGB format.
// It is encoded in JSON as a three element array.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// MarshalJSON encodes the colour as [r, g, b].
func (rgb RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint8{rgb.R, rgb.G, rgb.B})
}

// UnmarshalJSON decodes a [r, g, b] array.
func (rgb *RGB) UnmarshalJSON(data []byte) error {
	var v [3]uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("rgb must be a [r, g, b] array: %w", err)
	}
	rgb.R, rgb.G, rgb.B = v[0], v[1], v[2]
	return nil
}

// HSL is a rounded hue (degrees, 0-359), saturation and lightness
// (percent, 0-100) triple. It is encoded in JSON as a three element array.
type HSL struct {
	H int
	S int
	L int
}

// Saturation returns S as a fraction in [0, 1].
func (hsl HSL) Saturation() float64 {
	return float64(hsl.S) / 100
}

// Lightness returns L as a fraction in [0, 1].
func (hsl HSL) Lightness() float64 {
	return float64(hsl.L) / 100
}

// String returns the colour as "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// MarshalJSON encodes the colour as [h, s, l].
func (hsl HSL) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{hsl.H, hsl.S, hsl.L})
}

// UnmarshalJSON decodes a [h, s, l] array.
func (hsl *HSL) UnmarshalJSON(data []byte) error {
	var v [3]int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("hsl must be a [h, s, l] array: %w", err)
	}
	hsl.H, hsl.S, hsl.L = v[0], v[1], v[2]
	return nil
}

// Color is a fully described palette colour.
// Every field is derived from Hex by NewColor; values must not be edited
// independently afterwards.
type Color struct {
	Role           Role    `json:"role"`
	Hex            string  `json:"hex"`
	RGB            RGB     `json:"rgb"`
	HSL            HSL     `json:"hsl"`
	Luminance      float64 `json:"luminance"`
	TextOn         TextOn  `json:"textOn"`
	ContrastOnText float64 `json:"contrastOnText"`
}

// NewColor derives a Color from a hex code.
// The hex is normalised to lower case with a leading '#'.
func NewColor(hex string, role Role) (Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Color{}, err
	}

	lum := RelativeLuminance(rgb)
	textOn := BestTextColour(lum)

	var contrast float64
	if textOn == TextLight {
		contrast = ContrastRatio(lum, 1.0)
	} else {
		contrast = ContrastRatio(lum, 0.0)
	}

	return Color{
		Role:           role,
		Hex:            rgb.Hex(),
		RGB:            rgb,
		HSL:            RGBToHSL(rgb),
		Luminance:      lum,
		TextOn:         textOn,
		ContrastOnText: contrast,
	}, nil
}

// FromHSL renders an HSL value (s and l in [0, 1]) and derives a Color
// from the resulting hex.
func FromHSL(h, s, l float64, role Role) (Color, error) {
	return NewColor(HSLToHex(h, s, l), role)
}

// String returns a short human-readable description of the colour.
func (c Color) String() string {
	return fmt.Sprintf("%s %s (%s)", c.Role, c.Hex, c.HSL)
}
