package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/brandpal/internal/brand"
	"github.com/jmylchreest/brandpal/internal/colour"
	"github.com/jmylchreest/brandpal/internal/palette"
)

// ErrInvalidInput marks a request that fails boundary validation.
var ErrInvalidInput = errors.New("invalid input")

// ValidateInput checks a request and normalises its tone and theme to
// their canonical spelling. It reports the first problem found.
// A missing seed is left for the caller to fill.
func ValidateInput(in *palette.GenerateInput) error {
	if strings.TrimSpace(in.Industry) == "" {
		return fmt.Errorf("%w: industry is required and must be a string", ErrInvalidInput)
	}
	if in.Seed != nil && *in.Seed < 0 {
		return fmt.Errorf("%w: seed must be a non-negative number", ErrInvalidInput)
	}

	tone, ok := brand.ParseTone(string(in.BrandTone))
	if !ok {
		return fmt.Errorf("%w: invalid brand tone %q", ErrInvalidInput, in.BrandTone)
	}
	in.BrandTone = tone

	if in.ThemePreference != "" {
		theme, ok := colour.ParseTheme(string(in.ThemePreference))
		if !ok {
			return fmt.Errorf("%w: theme preference must be light, dark, or neutral", ErrInvalidInput)
		}
		in.ThemePreference = theme
	}

	return nil
}
