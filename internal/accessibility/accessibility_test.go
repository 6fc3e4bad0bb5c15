package accessibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/brandpal/internal/colour"
)

func mustColor(t *testing.T, hex string, role colour.Role) colour.Color {
	t.Helper()
	c, err := colour.NewColor(hex, role)
	if err != nil {
		t.Fatalf("NewColor(%q) error = %v", hex, err)
	}
	return c
}

// newSet builds a set from hex codes in colour.Roles() order.
func newSet(t *testing.T, primary, secondary, accent, neutral, background string) Set {
	t.Helper()
	hexes := []string{primary, secondary, accent, neutral, background}
	set := Set{}
	for i, role := range colour.Roles() {
		set[role] = mustColor(t, hexes[i], role)
	}
	return set
}

func repairsOf(repairs []Repair, kind RepairKind) []Repair {
	var out []Repair
	for _, r := range repairs {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func TestApplyTheme(t *testing.T) {
	tests := []struct {
		name      string
		theme     colour.Theme
		wantL     int
		wantSMax  int
		wantFixes int
	}{
		{name: "light", theme: colour.ThemeLight, wantL: 95, wantSMax: 10, wantFixes: 1},
		{name: "dark", theme: colour.ThemeDark, wantL: 10, wantSMax: 10, wantFixes: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg, err := colour.FromHSL(200, 0.2, 0.9, colour.RoleBackground)
			if err != nil {
				t.Fatal(err)
			}
			in := Set{colour.RoleBackground: bg}

			out, repairs, err := ApplyTheme(in, tt.theme)
			if err != nil {
				t.Fatalf("ApplyTheme() error = %v", err)
			}
			got := out[colour.RoleBackground]
			if got.HSL.L != tt.wantL {
				t.Errorf("background lightness = %d, want %d", got.HSL.L, tt.wantL)
			}
			if got.HSL.S > tt.wantSMax {
				t.Errorf("background saturation = %d, want <= %d", got.HSL.S, tt.wantSMax)
			}
			if got.Role != colour.RoleBackground {
				t.Errorf("role = %s", got.Role)
			}
			if len(repairs) != tt.wantFixes || repairs[0].Kind != RepairTheme {
				t.Errorf("repairs = %v", repairs)
			}
			if in[colour.RoleBackground] != bg {
				t.Error("input set was modified")
			}
		})
	}
}

func TestApplyThemeNeutralNudgesContrast(t *testing.T) {
	tests := []struct {
		name       string
		primary    string
		background string
		want       string
	}{
		// 4.48:1 on white, L 0.47 -> 0.37.
		{name: "darken on light background", primary: "#777777", background: "#ffffff", want: "#5e5e5e"},
		// L 0.25 - 0.1 clamps to 0.2.
		{name: "clamp to minimum", primary: "#808000", background: "#ffffff", want: "#666600"},
		// Background luminance 0.18 is dark, so lighten; 0.85 clamps to 0.8.
		{name: "clamp to maximum", primary: "#bfbfbf", background: "#767676", want: "#cccccc"},
		{name: "passing colour untouched", primary: "#000000", background: "#ffffff", want: "#000000"},
	}

	for _, tt := range tests {
		for _, theme := range []colour.Theme{colour.ThemeNeutral, ""} {
			t.Run(tt.name+"/"+string(theme), func(t *testing.T) {
				set := newSet(t, tt.primary, "#000000", "#000000", "#000000", tt.background)
				if tt.background == "#767676" {
					set = newSet(t, tt.primary, "#ffffff", "#ffffff", "#ffffff", tt.background)
				}

				out, repairs, err := ApplyTheme(set, theme)
				if err != nil {
					t.Fatalf("ApplyTheme() error = %v", err)
				}
				if got := out[colour.RolePrimary].Hex; got != tt.want {
					t.Errorf("primary = %s, want %s", got, tt.want)
				}
				if out[colour.RoleBackground] != set[colour.RoleBackground] {
					t.Error("neutral theme changed the background")
				}
				if len(repairsOf(repairs, RepairTheme)) != 0 {
					t.Errorf("unexpected background repair: %v", repairs)
				}

				nudges := repairsOf(repairs, RepairNeutralContrast)
				if tt.primary == tt.want {
					if len(nudges) != 0 {
						t.Errorf("repairs = %v, want none", nudges)
					}
					return
				}
				want := []Repair{{Kind: RepairNeutralContrast, Role: colour.RolePrimary, Before: tt.primary, After: tt.want}}
				if diff := cmp.Diff(want, nudges); diff != "" {
					t.Errorf("repairs mismatch (-want +got):\n%s", diff)
				}
				if set[colour.RolePrimary].Hex != tt.primary {
					t.Error("input set was modified")
				}
			})
		}
	}
}

func TestApplyThemeNeutralMissingRole(t *testing.T) {
	set := newSet(t, "#3366cc", "#000000", "#cc6633", "#000000", "#ffffff")
	delete(set, colour.RoleAccent)
	if _, _, err := ApplyTheme(set, colour.ThemeNeutral); err == nil {
		t.Error("expected error for set without accent")
	}
}

func TestApplyThemeMissingBackground(t *testing.T) {
	if _, _, err := ApplyTheme(Set{}, colour.ThemeLight); err == nil {
		t.Error("expected error for set without background")
	}
}

func TestEnforceContrast(t *testing.T) {
	tests := []struct {
		name       string
		primary    string
		background string
		want       string
	}{
		// 4.48:1 on white, one step darker.
		{name: "darken on light background", primary: "#777777", background: "#ffffff", want: "#525252"},
		// L 0.25 - 0.15 clamps to 0.15; red lands a hair under 76.5.
		{name: "clamp to minimum", primary: "#808000", background: "#ffffff", want: "#4c4d00"},
		// Background luminance 0.456 is not above 0.5, so lighten; 0.95 clamps to 0.85.
		{name: "clamp to maximum", primary: "#cccccc", background: "#b4b4b4", want: "#d9d9d9"},
		// Still failing after the shift, but only one step is taken.
		{name: "single step only", primary: "#eeeeee", background: "#ffffff", want: "#c7c7c7"},
		{name: "passing colour untouched", primary: "#000000", background: "#ffffff", want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := newSet(t, tt.primary, "#000000", "#000000", "#000000", tt.background)

			out, repairs, err := Enforce(set)
			if err != nil {
				t.Fatalf("Enforce() error = %v", err)
			}
			if got := out[colour.RolePrimary].Hex; got != tt.want {
				t.Errorf("primary = %s, want %s", got, tt.want)
			}

			var contrast []Repair
			for _, r := range repairsOf(repairs, RepairContrast) {
				if r.Role == colour.RolePrimary {
					contrast = append(contrast, r)
				}
			}
			wantRepairs := 0
			if tt.primary != tt.want {
				wantRepairs = 1
			}
			if len(contrast) != wantRepairs {
				t.Fatalf("contrast repairs = %v, want %d", contrast, wantRepairs)
			}
			if wantRepairs == 1 && (contrast[0].Before != tt.primary || contrast[0].After != tt.want) {
				t.Errorf("repair = %v", contrast[0])
			}
			if set[colour.RolePrimary].Hex != tt.primary {
				t.Error("input set was modified")
			}
		})
	}
}

func TestEnforceRotatesIndistinguishableAccent(t *testing.T) {
	set := newSet(t, "#3366cc", "#000000", "#3366cc", "#000000", "#ffffff")

	out, repairs, err := Enforce(set)
	if err != nil {
		t.Fatal(err)
	}

	if len(repairsOf(repairs, RepairContrast)) != 0 {
		t.Errorf("unexpected contrast repairs: %v", repairs)
	}
	rot := repairsOf(repairs, RepairDistinguishable)
	if len(rot) != 1 || rot[0].Role != colour.RoleAccent {
		t.Fatalf("distinguishability repairs = %v, want one on accent", rot)
	}

	// #3366cc is hsl(220, 60%, 50%).
	want, err := colour.FromHSL(280, 0.6, 0.5, colour.RoleAccent)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, out[colour.RoleAccent]); diff != "" {
		t.Errorf("rotated accent mismatch (-want +got):\n%s", diff)
	}
	if out[colour.RolePrimary] != set[colour.RolePrimary] {
		t.Error("primary should not change")
	}
}

func TestEnforceMissingRole(t *testing.T) {
	set := newSet(t, "#3366cc", "#000000", "#cc6633", "#000000", "#ffffff")
	delete(set, colour.RoleNeutral)
	if _, _, err := Enforce(set); err == nil {
		t.Error("expected error for missing neutral")
	}
}

func TestAudit(t *testing.T) {
	set := newSet(t, "#777777", "#767676", "#222222", "#ffffff", "#ffffff")

	report, err := Audit(set)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Checks) != 4 {
		t.Fatalf("checks = %d, want 4", len(report.Checks))
	}

	want := map[colour.Role]struct{ aa, aaLarge, aaa bool }{
		colour.RolePrimary:   {aa: false, aaLarge: true, aaa: false},
		colour.RoleSecondary: {aa: true, aaLarge: true, aaa: false},
		colour.RoleAccent:    {aa: true, aaLarge: true, aaa: true},
		colour.RoleNeutral:   {aa: false, aaLarge: false, aaa: false},
	}
	for _, c := range report.Checks {
		w := want[c.Role]
		if c.AA != w.aa || c.AALarge != w.aaLarge || c.AAA != w.aaa {
			t.Errorf("%s: got AA=%v AALarge=%v AAA=%v (%.3f:1)", c.Role, c.AA, c.AALarge, c.AAA, c.Contrast)
		}
	}

	if diff := cmp.Diff([]colour.Role{colour.RolePrimary, colour.RoleNeutral}, report.Shortfalls()); diff != "" {
		t.Errorf("Shortfalls() mismatch (-want +got):\n%s", diff)
	}
	// Greys this far apart in lightness survive every simulation.
	if !report.Distinguishable {
		t.Error("#777777 and #222222 should be distinguishable")
	}
}

func TestAuditIdenticalPrimaryAccent(t *testing.T) {
	set := newSet(t, "#3366cc", "#000000", "#3366cc", "#000000", "#ffffff")
	report, err := Audit(set)
	if err != nil {
		t.Fatal(err)
	}
	if report.Distinguishable {
		t.Error("identical colours reported distinguishable")
	}
}
