package brand

import (
	"slices"
	"strings"
)

// Tone is the brand personality a palette should convey.
type Tone string

// Brand tones.
const (
	Conservative     Tone = "conservative"
	Modern           Tone = "modern"
	Playful          Tone = "playful"
	Premium          Tone = "premium"
	Eco              Tone = "eco"
	Trustworthy      Tone = "trustworthy"
	Energetic        Tone = "energetic"
	Minimal          Tone = "minimal"
	Artisan          Tone = "artisan"
	Techie           Tone = "techie"
	ToneHealthcare   Tone = "healthcare"
	ToneFinance      Tone = "finance"
	ToneHospitality  Tone = "hospitality"
	ToneEducation    Tone = "education"
	ToneConstruction Tone = "construction"
	ToneLegal        Tone = "legal"
	ToneNonprofit    Tone = "nonprofit"
	ToneRestaurant   Tone = "restaurant"
	ToneRetail       Tone = "retail"
	ToneBeauty       Tone = "beauty"
	ToneFitness      Tone = "fitness"
	ToneAutomotive   Tone = "automotive"
	ToneRealEstate   Tone = "real_estate"
)

// DefaultTone applies when a request names no tone.
const DefaultTone = Trustworthy

// ToneModifier biases the saturation and lightness of generated colours.
type ToneModifier struct {
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Contrast   float64 `json:"contrast"`
}

var toneModifiers = map[Tone]ToneModifier{
	Conservative:     {Saturation: 0.7, Lightness: 0.4, Contrast: 1.2},
	Modern:           {Saturation: 0.9, Lightness: 0.5, Contrast: 1.1},
	Playful:          {Saturation: 1.1, Lightness: 0.6, Contrast: 1.0},
	Premium:          {Saturation: 0.8, Lightness: 0.35, Contrast: 1.4},
	Eco:              {Saturation: 0.9, Lightness: 0.5, Contrast: 1.1},
	Trustworthy:      {Saturation: 0.75, Lightness: 0.45, Contrast: 1.15},
	Energetic:        {Saturation: 1.0, Lightness: 0.55, Contrast: 1.05},
	Minimal:          {Saturation: 0.85, Lightness: 0.5, Contrast: 1.3},
	Artisan:          {Saturation: 0.95, Lightness: 0.45, Contrast: 1.2},
	Techie:           {Saturation: 0.9, Lightness: 0.5, Contrast: 1.1},
	ToneHealthcare:   {Saturation: 0.8, Lightness: 0.5, Contrast: 1.1},
	ToneFinance:      {Saturation: 0.7, Lightness: 0.4, Contrast: 1.2},
	ToneHospitality:  {Saturation: 0.9, Lightness: 0.5, Contrast: 1.1},
	ToneEducation:    {Saturation: 0.85, Lightness: 0.5, Contrast: 1.1},
	ToneConstruction: {Saturation: 0.9, Lightness: 0.45, Contrast: 1.15},
	ToneLegal:        {Saturation: 0.75, Lightness: 0.4, Contrast: 1.25},
	ToneNonprofit:    {Saturation: 0.85, Lightness: 0.5, Contrast: 1.1},
	ToneRestaurant:   {Saturation: 0.9, Lightness: 0.5, Contrast: 1.1},
	ToneRetail:       {Saturation: 0.95, Lightness: 0.5, Contrast: 1.05},
	ToneBeauty:       {Saturation: 1.0, Lightness: 0.55, Contrast: 1.0},
	ToneFitness:      {Saturation: 0.95, Lightness: 0.5, Contrast: 1.1},
	ToneAutomotive:   {Saturation: 0.9, Lightness: 0.45, Contrast: 1.15},
	ToneRealEstate:   {Saturation: 0.85, Lightness: 0.5, Contrast: 1.1},
}

// Tones returns every tone in display order.
func Tones() []Tone {
	return []Tone{
		Conservative, Modern, Playful, Premium, Eco, Trustworthy, Energetic,
		Minimal, Artisan, Techie, ToneHealthcare, ToneFinance, ToneHospitality,
		ToneEducation, ToneConstruction, ToneLegal, ToneNonprofit, ToneRestaurant,
		ToneRetail, ToneBeauty, ToneFitness, ToneAutomotive, ToneRealEstate,
	}
}

// Valid reports whether t is one of the known tones.
func (t Tone) Valid() bool {
	return slices.Contains(Tones(), t)
}

// OrDefault returns t, or DefaultTone when t is empty.
func (t Tone) OrDefault() Tone {
	if t == "" {
		return DefaultTone
	}
	return t
}

// ParseTone resolves a tone name, ignoring case and surrounding space.
// An empty string is valid and means "no tone".
func ParseTone(s string) (Tone, bool) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return "", true
	}
	return t, t.Valid()
}

// Modifier returns the saturation/lightness bias for a tone, falling back
// to DefaultTone for an empty or unknown tone.
func Modifier(t Tone) ToneModifier {
	if m, ok := toneModifiers[t]; ok {
		return m
	}
	return toneModifiers[DefaultTone]
}
