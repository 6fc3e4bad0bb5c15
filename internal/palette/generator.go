package palette

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/brandpal/internal/accessibility"
	"github.com/jmylchreest/brandpal/internal/brand"
	"github.com/jmylchreest/brandpal/internal/colour"
	"github.com/jmylchreest/brandpal/internal/harmony"
	"github.com/jmylchreest/brandpal/internal/random"
)

// Observer is notified as palettes are produced. Implementations must be
// safe for concurrent use when the Generator is shared.
type Observer interface {
	// ObserveRepair is called for every correction applied to a palette.
	ObserveRepair(r accessibility.Repair)
	// ObservePalette is called once per finished palette with its audit.
	ObservePalette(p Palette, report accessibility.Report)
	// ObserveGeneration is called once per Generate call.
	ObserveGeneration(elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRepair(accessibility.Repair)           {}
func (nopObserver) ObservePalette(Palette, accessibility.Report) {}
func (nopObserver) ObserveGeneration(time.Duration)              {}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithObserver registers an observer for repairs and finished palettes.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		if o != nil {
			g.observer = o
		}
	}
}

// Generator builds palettes. It holds no random state: every Generate call
// seeds its own source, so one Generator may serve concurrent callers.
type Generator struct {
	logger   hclog.Logger
	observer Observer
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:   hclog.NewNullLogger(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns exactly PaletteCount palettes for in. The same input
// always yields the same response. An omitted seed behaves as 0.
func (g *Generator) Generate(in GenerateInput) (GenerateResponse, error) {
	start := time.Now()
	seed := in.SeedValue()
	// Seeds are reduced to 32 bits.
	rng := random.New(uint32(seed))

	logger := g.logger.With("industry", in.Industry, "tone", in.BrandTone, "seed", seed)
	if _, ok := brand.ParseIndustry(in.Industry); !ok {
		logger.Debug("unknown industry, using fallback hue rule", "fallback", brand.FallbackIndustry)
	}

	var ctx *brand.Context
	if in.UseContext {
		ctx = in.Context
	}
	rule := brand.IndustryHues(in.Industry, in.BrandTone, ctx)

	palettes := make([]Palette, 0, PaletteCount)
	for i := range PaletteCount {
		p, err := g.generateOne(in, rule, seed, rng, logger.With("index", i))
		if err != nil {
			return GenerateResponse{}, fmt.Errorf("failed to generate palette %d: %w", i, err)
		}
		palettes = append(palettes, p)
	}

	g.observer.ObserveGeneration(time.Since(start))
	return GenerateResponse{Input: in, Palettes: palettes}, nil
}

func (g *Generator) generateOne(in GenerateInput, rule brand.HueRule, seed int64, rng *random.Rand, logger hclog.Logger) (Palette, error) {
	baseHue := rng.NextInt(rule.BaseHue[0], rule.BaseHue[1])
	accentHint := (baseHue + 180) % 360
	if rule.AccentHue != nil {
		accentHint = *rule.AccentHue
	}

	res, err := harmony.Derive(harmony.Params{
		BaseHue:    baseHue,
		AccentHint: accentHint,
		NeutralHue: rule.NeutralHue,
		Tone:       in.BrandTone,
		Modifier:   brand.Modifier(in.BrandTone),
	}, rng)
	if err != nil {
		return Palette{}, err
	}
	logger.Debug("derived harmony", "scheme", res.Scheme, "base_hue", baseHue,
		"secondary_hue", res.SecondaryHue, "accent_hue", res.AccentHue)

	set := make(accessibility.Set, len(res.Swatches))
	for _, s := range res.Swatches {
		c, err := colour.FromHSL(s.H, s.S, s.L, s.Role)
		if err != nil {
			return Palette{}, fmt.Errorf("failed to render %s: %w", s.Role, err)
		}
		set[s.Role] = c
	}

	set, themeRepairs, err := accessibility.ApplyTheme(set, in.ThemePreference)
	if err != nil {
		return Palette{}, err
	}
	set, repairs, err := accessibility.Enforce(set)
	if err != nil {
		return Palette{}, err
	}
	for _, r := range append(themeRepairs, repairs...) {
		logger.Trace("repair", "kind", r.Kind, "role", r.Role, "before", r.Before, "after", r.After)
		g.observer.ObserveRepair(r)
	}

	name, err := paletteName(in.Industry, rng)
	if err != nil {
		return Palette{}, err
	}
	icon, err := random.Pick(rng, iconStyles)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to pick icon style: %w", err)
	}
	img, err := imagery(rng)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to describe imagery: %w", err)
	}

	p := Palette{
		Name:        name,
		Roles:       make(map[colour.Role]colour.Color, len(set)),
		Swatches:    make([]colour.Color, 0, len(set)),
		Typography:  brand.TypographyFor(in.BrandTone),
		IconStyle:   icon,
		Imagery:     img,
		LogoPrompts: logoPrompts(in.Industry, in.BrandTone, rng),
		SeedBack:    seed,
	}
	for _, role := range colour.Roles() {
		p.Roles[role] = set[role]
		p.Swatches = append(p.Swatches, set[role])
	}

	report, err := accessibility.Audit(set)
	if err != nil {
		return Palette{}, err
	}
	if short := report.Shortfalls(); len(short) > 0 {
		logger.Debug("palette below AA after repair", "roles", short)
	}
	g.observer.ObservePalette(p, report)

	return p, nil
}
