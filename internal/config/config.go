// Package config reads brandpal settings from the environment. A .env file
// in the working directory is loaded first by the binary, so both sources
// land here.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/brandpal/internal/brand"
	"github.com/jmylchreest/brandpal/internal/colour"
)

// Environment variable names.
const (
	EnvLogLevel    = "BRANDPAL_LOG_LEVEL"
	EnvTone        = "BRANDPAL_TONE"
	EnvTheme       = "BRANDPAL_THEME"
	EnvFormat      = "BRANDPAL_FORMAT"
	EnvMetricsFile = "BRANDPAL_METRICS_FILE"
	EnvNoColor     = "NO_COLOR"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvConfig holds defaults taken from the environment. Command-line flags
// override every field.
type EnvConfig struct {
	LogLevel    string
	Tone        string
	Theme       string
	Format      string
	MetricsFile string
	// NoColor follows the no-color.org convention: any non-empty value.
	NoColor bool
}

// Load reads the configuration from the process environment.
func Load() *EnvConfig {
	return &EnvConfig{
		LogLevel:    strings.ToLower(getEnvOrDefault(EnvLogLevel, "warn")),
		Tone:        os.Getenv(EnvTone),
		Theme:       os.Getenv(EnvTheme),
		Format:      strings.ToLower(getEnvOrDefault(EnvFormat, FormatText)),
		MetricsFile: os.Getenv(EnvMetricsFile),
		NoColor:     os.Getenv(EnvNoColor) != "",
	}
}

// Validate checks every field and reports all problems at once.
func (c *EnvConfig) Validate() error {
	var errs []string

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		errs = append(errs, fmt.Sprintf("%s: unknown log level %q", EnvLogLevel, c.LogLevel))
	}
	if _, ok := brand.ParseTone(c.Tone); !ok {
		errs = append(errs, fmt.Sprintf("%s: unknown tone %q", EnvTone, c.Tone))
	}
	if _, ok := colour.ParseTheme(c.Theme); !ok {
		errs = append(errs, fmt.Sprintf("%s: unknown theme %q", EnvTheme, c.Theme))
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		errs = append(errs, fmt.Sprintf("%s: format must be %s or %s, got %q", EnvFormat, FormatText, FormatJSON, c.Format))
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
