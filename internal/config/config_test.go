package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{EnvLogLevel, EnvTone, EnvTheme, EnvFormat, EnvMetricsFile, EnvNoColor} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want %s", cfg.Format, FormatText)
	}
	if cfg.Tone != "" || cfg.Theme != "" || cfg.MetricsFile != "" || cfg.NoColor {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvTone, "playful")
	t.Setenv(EnvTheme, "dark")
	t.Setenv(EnvFormat, "JSON")
	t.Setenv(EnvMetricsFile, "/tmp/brandpal.prom")
	t.Setenv(EnvNoColor, "1")

	cfg := Load()
	want := EnvConfig{
		LogLevel:    "debug",
		Tone:        "playful",
		Theme:       "dark",
		Format:      FormatJSON,
		MetricsFile: "/tmp/brandpal.prom",
		NoColor:     true,
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     EnvConfig
		wantErr []string
	}{
		{
			name: "valid",
			cfg:  EnvConfig{LogLevel: "info", Format: FormatText},
		},
		{
			name:    "bad log level",
			cfg:     EnvConfig{LogLevel: "loud", Format: FormatText},
			wantErr: []string{EnvLogLevel},
		},
		{
			name:    "aggregates every problem",
			cfg:     EnvConfig{LogLevel: "info", Tone: "grumpy", Theme: "sepia", Format: "yaml"},
			wantErr: []string{EnvTone, EnvTheme, EnvFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %s", err, want)
				}
			}
		})
	}
}
