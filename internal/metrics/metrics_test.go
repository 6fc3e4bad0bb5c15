package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/jmylchreest/brandpal/internal/accessibility"
	"github.com/jmylchreest/brandpal/internal/brand"
	"github.com/jmylchreest/brandpal/internal/colour"
	"github.com/jmylchreest/brandpal/internal/palette"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()

	r.ObserveRepair(accessibility.Repair{Kind: accessibility.RepairContrast, Role: colour.RolePrimary})
	r.ObserveRepair(accessibility.Repair{Kind: accessibility.RepairContrast, Role: colour.RolePrimary})
	r.ObserveRepair(accessibility.Repair{Kind: accessibility.RepairDistinguishable, Role: colour.RoleAccent})
	r.ObservePalette(palette.Palette{}, accessibility.Report{Checks: []accessibility.Check{
		{Role: colour.RolePrimary, AA: true},
		{Role: colour.RoleNeutral, AA: false},
	}})
	r.ObserveGeneration(2 * time.Millisecond)

	if got := testutil.ToFloat64(r.palettes); got != 1 {
		t.Errorf("palettes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.repairs.WithLabelValues("contrast", "primary")); got != 2 {
		t.Errorf("contrast/primary repairs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.repairs.WithLabelValues("distinguishability", "accent")); got != 1 {
		t.Errorf("distinguishability/accent repairs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.shortfalls.WithLabelValues("neutral")); got != 1 {
		t.Errorf("neutral shortfalls = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.duration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestRecorderAsObserver(t *testing.T) {
	r := NewRecorder()
	g := palette.NewGenerator(palette.WithObserver(r))
	seed := int64(42)
	if _, err := g.Generate(palette.GenerateInput{Industry: "healthcare", BrandTone: brand.Conservative, ThemePreference: colour.ThemeLight, Seed: &seed}); err != nil {
		t.Fatal(err)
	}

	if got := testutil.ToFloat64(r.palettes); got != palette.PaletteCount {
		t.Errorf("palettes = %v, want %d", got, palette.PaletteCount)
	}
	if got := testutil.ToFloat64(r.repairs.WithLabelValues("theme", "background")); got != palette.PaletteCount {
		t.Errorf("theme repairs = %v, want %d", got, palette.PaletteCount)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObservePalette(palette.Palette{}, accessibility.Report{})
	r.ObserveGeneration(time.Millisecond)

	path := filepath.Join(t.TempDir(), "brandpal.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"brandpal_palettes_generated_total 1",
		"brandpal_generation_seconds_count 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q:\n%s", want, data)
		}
	}
}

func TestWriteTextfileBadPath(t *testing.T) {
	r := NewRecorder()
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
