// Package palette generates deterministic, accessibility-checked brand
// palettes from an industry, an optional tone and theme, and a seed.
package palette

import (
	"github.com/jmylchreest/brandpal/internal/brand"
	"github.com/jmylchreest/brandpal/internal/colour"
)

// PaletteCount is the number of palettes every request yields.
const PaletteCount = 3

// GenerateInput is a palette request.
type GenerateInput struct {
	Industry        string         `json:"industry"`
	BrandTone       brand.Tone     `json:"brandTone,omitempty"`
	ThemePreference colour.Theme   `json:"themePreference,omitempty"`
	Seed            *int64         `json:"seed,omitempty"`
	UseContext      bool           `json:"useContext,omitempty"`
	Context         *brand.Context `json:"context,omitempty"`
}

// SeedValue returns the request seed, or 0 when none was given.
func (in GenerateInput) SeedValue() int64 {
	if in.Seed == nil {
		return 0
	}
	return *in.Seed
}

// Palette is one generated brand palette with its companion metadata.
type Palette struct {
	Name string `json:"name"`
	// Roles holds exactly the five palette roles.
	Roles map[colour.Role]colour.Color `json:"roles"`
	// Swatches lists the Roles values in colour.Roles() order.
	Swatches    []colour.Color   `json:"swatches"`
	Typography  brand.Typography `json:"typography"`
	IconStyle   string           `json:"iconStyle"`
	Imagery     []string         `json:"imagery"`
	LogoPrompts []string         `json:"logoPrompts"`
	SeedBack    int64            `json:"seedBack"`
}

// GenerateResponse echoes the request next to its palettes.
type GenerateResponse struct {
	Input    GenerateInput `json:"input"`
	Palettes []Palette     `json:"palettes"`
}
