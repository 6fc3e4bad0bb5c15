// Package accessibility post-processes generated role colours so they meet
// WCAG contrast against the background and stay distinguishable under
// simulated colour blindness.
//
// Every correction is a single bounded step. The result is best effort:
// pathological hue/saturation combinations may still fall short of AA after
// the one lightness shift, and that palette is returned as is.
package accessibility

import (
	"fmt"

	"github.com/jmylchreest/brandpal/internal/colour"
)

// Correction parameters.
const (
	lightThemeLightness  = 0.95
	darkThemeLightness   = 0.10
	themeSaturationScale = 0.2

	neutralShift        = 0.10
	minNeutralLightness = 0.20
	maxNeutralLightness = 0.80

	contrastShift        = 0.15
	minAdjustedLightness = 0.15
	maxAdjustedLightness = 0.85

	accentHueRotation = 60
)

// Set holds one colour per role.
type Set map[colour.Role]colour.Color

// Clone returns a shallow copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (s Set) require(roles ...colour.Role) error {
	for _, r := range roles {
		if _, ok := s[r]; !ok {
			return fmt.Errorf("colour set is missing role %q", r)
		}
	}
	return nil
}

// RepairKind names the correction that was applied.
type RepairKind string

// Repair kinds.
const (
	RepairTheme           RepairKind = "theme"
	RepairNeutralContrast RepairKind = "neutral-contrast"
	RepairContrast        RepairKind = "contrast"
	RepairDistinguishable RepairKind = "distinguishability"
)

// Repair records one correction.
type Repair struct {
	Kind   RepairKind
	Role   colour.Role
	Before string
	After  string
}

func (r Repair) String() string {
	return fmt.Sprintf("%s %s: %s -> %s", r.Kind, r.Role, r.Before, r.After)
}

// ApplyTheme forces the background lightness for light and dark themes and
// desaturates it to 20% of its generated saturation. Neutral (or empty)
// keeps the generated background and instead nudges every foreground role
// below AA by 0.1 lightness, clamped to [0.2, 0.8]. The input set is not
// modified.
func ApplyTheme(set Set, theme colour.Theme) (Set, []Repair, error) {
	var lightness float64
	switch theme {
	case colour.ThemeLight:
		lightness = lightThemeLightness
	case colour.ThemeDark:
		lightness = darkThemeLightness
	default:
		if err := set.require(colour.Roles()...); err != nil {
			return nil, nil, err
		}
		out := set.Clone()
		repairs, err := shiftFailing(out, RepairNeutralContrast, neutralShift, minNeutralLightness, maxNeutralLightness)
		if err != nil {
			return nil, nil, err
		}
		return out, repairs, nil
	}

	if err := set.require(colour.RoleBackground); err != nil {
		return nil, nil, err
	}
	out := set.Clone()
	bg := out[colour.RoleBackground]
	adjusted, err := colour.FromHSL(float64(bg.HSL.H), bg.HSL.Saturation()*themeSaturationScale, lightness, colour.RoleBackground)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to apply %s theme: %w", theme, err)
	}
	out[colour.RoleBackground] = adjusted

	return out, []Repair{{Kind: RepairTheme, Role: colour.RoleBackground, Before: bg.Hex, After: adjusted.Hex}}, nil
}

// Enforce applies the contrast and distinguishability corrections.
//
// Each foreground role below AA (4.5:1) against the background gets exactly
// one lightness shift of 0.15, darker on light backgrounds and lighter
// otherwise, clamped to [0.15, 0.85]. If primary and accent are then not
// distinguishable, the accent hue is rotated by 60 degrees once.
// Shortfalls are never errors; only malformed colours are.
func Enforce(set Set) (Set, []Repair, error) {
	if err := set.require(colour.Roles()...); err != nil {
		return nil, nil, err
	}

	out := set.Clone()
	repairs, err := shiftFailing(out, RepairContrast, contrastShift, minAdjustedLightness, maxAdjustedLightness)
	if err != nil {
		return nil, nil, err
	}

	primary, accent := out[colour.RolePrimary], out[colour.RoleAccent]
	ok, err := colour.Distinguishable(primary.Hex, accent.Hex)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compare primary and accent: %w", err)
	}
	if !ok {
		rotated, err := colour.FromHSL(float64(accent.HSL.H+accentHueRotation), accent.HSL.Saturation(), accent.HSL.Lightness(), colour.RoleAccent)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to rotate accent: %w", err)
		}
		out[colour.RoleAccent] = rotated
		repairs = append(repairs, Repair{Kind: RepairDistinguishable, Role: colour.RoleAccent, Before: accent.Hex, After: rotated.Hex})
	}

	return out, repairs, nil
}

// shiftFailing moves each foreground role of set that misses AA by step
// lightness, away from the background, clamped to [lo, hi]. set is updated
// in place.
func shiftFailing(set Set, kind RepairKind, step, lo, hi float64) ([]Repair, error) {
	bgLum := set[colour.RoleBackground].Luminance
	if bgLum > 0.5 {
		step = -step
	}

	var repairs []Repair
	for _, role := range colour.ForegroundRoles() {
		c := set[role]
		if colour.MeetsAA(colour.ContrastRatio(c.Luminance, bgLum), false) {
			continue
		}
		l := colour.Clamp(c.HSL.Lightness()+step, lo, hi)
		adjusted, err := colour.FromHSL(float64(c.HSL.H), c.HSL.Saturation(), l, role)
		if err != nil {
			return nil, fmt.Errorf("failed to adjust %s contrast: %w", role, err)
		}
		set[role] = adjusted
		repairs = append(repairs, Repair{Kind: kind, Role: role, Before: c.Hex, After: adjusted.Hex})
	}
	return repairs, nil
}

// Check is the WCAG verdict for one foreground role against the background.
type Check struct {
	Role     colour.Role `json:"role"`
	Contrast float64     `json:"contrast"`
	AA       bool        `json:"aa"`
	AALarge  bool        `json:"aaLarge"`
	AAA      bool        `json:"aaa"`
}

// Report summarises the accessibility of a finished colour set.
type Report struct {
	Checks []Check `json:"checks"`
	// Distinguishable is true when primary and accent remain apart under
	// every simulated deficiency.
	Distinguishable bool `json:"distinguishable"`
}

// Shortfalls returns the roles that miss AA for normal text.
func (r Report) Shortfalls() []colour.Role {
	var out []colour.Role
	for _, c := range r.Checks {
		if !c.AA {
			out = append(out, c.Role)
		}
	}
	return out
}

// Audit measures set without changing it.
func Audit(set Set) (Report, error) {
	if err := set.require(colour.Roles()...); err != nil {
		return Report{}, err
	}

	bgLum := set[colour.RoleBackground].Luminance
	report := Report{Checks: make([]Check, 0, len(colour.ForegroundRoles()))}
	for _, role := range colour.ForegroundRoles() {
		ratio := colour.ContrastRatio(set[role].Luminance, bgLum)
		report.Checks = append(report.Checks, Check{
			Role:     role,
			Contrast: ratio,
			AA:       colour.MeetsAA(ratio, false),
			AALarge:  colour.MeetsAA(ratio, true),
			AAA:      colour.MeetsAAA(ratio, false),
		})
	}

	ok, err := colour.Distinguishable(set[colour.RolePrimary].Hex, set[colour.RoleAccent].Hex)
	if err != nil {
		return Report{}, fmt.Errorf("failed to compare primary and accent: %w", err)
	}
	report.Distinguishable = ok

	return report, nil
}
