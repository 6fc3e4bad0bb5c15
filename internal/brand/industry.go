// Package brand holds the static lookup tables that bias palette generation:
// industry hue bands, tone modifiers and typography pairings.
package brand

import (
	"strings"
)

// Industry identifies a business sector with its own hue band.
type Industry string

// Known industries.
const (
	Healthcare   Industry = "healthcare"
	Construction Industry = "construction"
	Legal        Industry = "legal"
	Finance      Industry = "finance"
	Beauty       Industry = "beauty"
	Restaurant   Industry = "restaurant"
	Technology   Industry = "technology"
	Education    Industry = "education"
	RealEstate   Industry = "real_estate"
	Nonprofit    Industry = "nonprofit"
	Hospitality  Industry = "hospitality"
	Retail       Industry = "retail"
	Fitness      Industry = "fitness"
	Automotive   Industry = "automotive"
)

// FallbackIndustry is used for any industry string that is not recognised.
const FallbackIndustry = Technology

// HueRule describes the hue band an industry draws from.
type HueRule struct {
	// BaseHue is the inclusive [min, max] band the primary hue is drawn from.
	BaseHue [2]int
	// AccentHue is a suggested accent hue; nil means derive one.
	AccentHue *int
	// NeutralHue tints the neutral and background roles.
	NeutralHue int
}

// Context is free-text business context supplied with a request.
// Only industry-specific hue branches may read it.
type Context struct {
	BusinessName string `json:"businessName,omitempty"`
	Tagline      string `json:"tagline,omitempty"`
	Values       string `json:"values,omitempty"`
	Audience     string `json:"audience,omitempty"`
	Competitors  string `json:"competitors,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func hue(h int) *int { return &h }

var industryHues = map[Industry]HueRule{
	Healthcare:   {BaseHue: [2]int{195, 210}, AccentHue: hue(165), NeutralHue: 200},
	Construction: {BaseHue: [2]int{25, 40}, AccentHue: hue(200), NeutralHue: 30},
	Legal:        {BaseHue: [2]int{210, 230}, AccentHue: hue(350), NeutralHue: 210},
	Finance:      {BaseHue: [2]int{205, 225}, AccentHue: hue(135), NeutralHue: 200},
	Beauty:       {BaseHue: [2]int{320, 340}, AccentHue: hue(260), NeutralHue: 0},
	Restaurant:   {BaseHue: [2]int{10, 20}, AccentHue: hue(120), NeutralHue: 40},
	Technology:   {BaseHue: [2]int{200, 220}, AccentHue: hue(260), NeutralHue: 210},
	Education:    {BaseHue: [2]int{200, 210}, AccentHue: hue(40), NeutralHue: 0},
	RealEstate:   {BaseHue: [2]int{200, 210}, AccentHue: hue(25), NeutralHue: 30},
	Nonprofit:    {BaseHue: [2]int{280, 300}, AccentHue: hue(160), NeutralHue: 0},
	Hospitality:  {BaseHue: [2]int{25, 45}, AccentHue: hue(45), NeutralHue: 30},
	Retail:       {BaseHue: [2]int{0, 30}, AccentHue: hue(200), NeutralHue: 0},
	Fitness:      {BaseHue: [2]int{120, 140}, AccentHue: hue(45), NeutralHue: 0},
	Automotive:   {BaseHue: [2]int{0, 15}, AccentHue: hue(200), NeutralHue: 210},
}

// Tone-driven overrides for the branching industries.
var (
	beautyPastels = HueRule{BaseHue: [2]int{260, 280}, AccentHue: hue(320), NeutralHue: 0}
	nonprofitEco  = HueRule{BaseHue: [2]int{160, 180}, AccentHue: hue(120), NeutralHue: 0}
)

// industryBranches lets an industry refine its hue rule from tone or context.
var industryBranches = map[Industry]func(tone Tone, ctx *Context) HueRule{
	Beauty: func(tone Tone, _ *Context) HueRule {
		if tone == Playful || tone == Minimal {
			return beautyPastels
		}
		return industryHues[Beauty]
	},
	// Receives context so cuisine hints can refine the band; none are read yet.
	Restaurant: func(Tone, *Context) HueRule {
		return industryHues[Restaurant]
	},
	Nonprofit: func(tone Tone, _ *Context) HueRule {
		if tone == Eco || tone == Trustworthy {
			return nonprofitEco
		}
		return industryHues[Nonprofit]
	},
}

// Industries returns every known industry in display order.
func Industries() []Industry {
	return []Industry{
		Healthcare, Construction, Legal, Finance, Beauty, Restaurant, Technology,
		Education, RealEstate, Nonprofit, Hospitality, Retail, Fitness, Automotive,
	}
}

// Label returns the industry as a human-readable label ("real estate").
func (i Industry) Label() string {
	return strings.ReplaceAll(string(i), "_", " ")
}

// ParseIndustry resolves free text to a known industry. Matching ignores
// case and surrounding space, and treats spaces and hyphens as underscores.
// Unknown input yields FallbackIndustry and false.
func ParseIndustry(s string) (Industry, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if _, ok := industryHues[Industry(key)]; ok {
		return Industry(key), true
	}
	return FallbackIndustry, false
}

// IndustryHues returns the hue rule for an industry string. Beauty and
// nonprofit branch on tone, restaurant on context. Unrecognised industries
// get the technology rule; this never fails.
func IndustryHues(industry string, tone Tone, ctx *Context) HueRule {
	ind, _ := ParseIndustry(industry)
	if branch, ok := industryBranches[ind]; ok {
		return branch(tone, ctx)
	}
	return industryHues[ind]
}
