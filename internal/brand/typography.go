package brand

// Typography is a headline/body font pairing with its stylesheet links.
type Typography struct {
	Headline        string   `json:"headline"`
	HeadlineWeights []int    `json:"headlineWeights"`
	Body            string   `json:"body"`
	BodyWeights     []int    `json:"bodyWeights"`
	Links           []string `json:"links"`
}

const fontsBase = "https://fonts.googleapis.com/css2?family="

var typography = map[Tone]Typography{
	Conservative: {
		Headline: "Libre Baskerville", HeadlineWeights: []int{400, 700},
		Body: "Source Sans 3", BodyWeights: []int{400, 600},
		Links: []string{fontsBase + "Libre+Baskerville:wght@400;700&family=Source+Sans+3:wght@400;600&display=swap"},
	},
	Modern: {
		Headline: "Inter", HeadlineWeights: []int{400, 600},
		Body: "Roboto Slab", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Inter:wght@400;600&family=Roboto+Slab:wght@400;500&display=swap"},
	},
	Playful: {
		Headline: "Baloo 2", HeadlineWeights: []int{400, 700},
		Body: "Nunito", BodyWeights: []int{400, 600},
		Links: []string{fontsBase + "Baloo+2:wght@400;700&family=Nunito:wght@400;600&display=swap"},
	},
	Premium: {
		Headline: "Playfair Display", HeadlineWeights: []int{400, 700},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Playfair+Display:wght@400;700&family=Inter:wght@400;500&display=swap"},
	},
	Eco: {
		Headline: "Source Serif 4", HeadlineWeights: []int{400, 600},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Source+Serif+4:wght@400;600&family=Inter:wght@400;500&display=swap"},
	},
	Trustworthy: {
		Headline: "Source Sans 3", HeadlineWeights: []int{400, 600},
		Body: "Source Sans 3", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Source+Sans+3:wght@400;500;600&display=swap"},
	},
	Energetic: {
		Headline: "Righteous", HeadlineWeights: []int{400},
		Body: "Mulish", BodyWeights: []int{400, 600},
		Links: []string{fontsBase + "Righteous&family=Mulish:wght@400;600&display=swap"},
	},
	Minimal: {
		Headline: "Inter", HeadlineWeights: []int{400, 500},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Inter:wght@400;500&display=swap"},
	},
	Artisan: {
		Headline: "Crimson Text", HeadlineWeights: []int{400, 600},
		Body: "Source Sans 3", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Crimson+Text:wght@400;600&family=Source+Sans+3:wght@400;500&display=swap"},
	},
	Techie: {
		Headline: "Space Grotesk", HeadlineWeights: []int{400, 700},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Space+Grotesk:wght@400;700&family=Inter:wght@400;500&display=swap"},
	},
	ToneHealthcare: {
		Headline: "Poppins", HeadlineWeights: []int{400, 600},
		Body: "Source Sans 3", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Poppins:wght@400;600&family=Source+Sans+3:wght@400;500&display=swap"},
	},
	ToneFinance: {
		Headline: "Source Sans 3", HeadlineWeights: []int{400, 600},
		Body: "Source Sans 3", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Source+Sans+3:wght@400;500;600&display=swap"},
	},
	ToneHospitality: {
		Headline: "Playfair Display", HeadlineWeights: []int{400, 600},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Playfair+Display:wght@400;600&family=Inter:wght@400;500&display=swap"},
	},
	ToneEducation: {
		Headline: "Inter", HeadlineWeights: []int{400, 600},
		Body: "Source Sans 3", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Inter:wght@400;600&family=Source+Sans+3:wght@400;500&display=swap"},
	},
	ToneConstruction: {
		Headline: "Oswald", HeadlineWeights: []int{400, 600},
		Body: "Source Sans 3", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Oswald:wght@400;600&family=Source+Sans+3:wght@400;500&display=swap"},
	},
	ToneLegal: {
		Headline: "Libre Baskerville", HeadlineWeights: []int{400, 700},
		Body: "Work Sans", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Libre+Baskerville:wght@400;700&family=Work+Sans:wght@400;500&display=swap"},
	},
	ToneNonprofit: {
		Headline: "Source Sans 3", HeadlineWeights: []int{400, 600},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Source+Sans+3:wght@400;600&family=Inter:wght@400;500&display=swap"},
	},
	ToneRestaurant: {
		Headline: "Playfair Display", HeadlineWeights: []int{400, 700},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Playfair+Display:wght@400;700&family=Inter:wght@400;500&display=swap"},
	},
	ToneRetail: {
		Headline: "Inter", HeadlineWeights: []int{400, 600},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Inter:wght@400;500;600&display=swap"},
	},
	ToneBeauty: {
		Headline: "Playfair Display", HeadlineWeights: []int{400, 600},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Playfair+Display:wght@400;600&family=Inter:wght@400;500&display=swap"},
	},
	ToneFitness: {
		Headline: "Oswald", HeadlineWeights: []int{400, 600},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Oswald:wght@400;600&family=Inter:wght@400;500&display=swap"},
	},
	ToneAutomotive: {
		Headline: "Inter", HeadlineWeights: []int{400, 600},
		Body: "Source Sans 3", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Inter:wght@400;600&family=Source+Sans+3:wght@400;500&display=swap"},
	},
	ToneRealEstate: {
		Headline: "Source Sans 3", HeadlineWeights: []int{400, 600},
		Body: "Inter", BodyWeights: []int{400, 500},
		Links: []string{fontsBase + "Source+Sans+3:wght@400;600&family=Inter:wght@400;500&display=swap"},
	},
}

// TypographyFor returns the font pairing for a tone, falling back to
// DefaultTone for an empty or unknown tone. The returned slices are copies.
func TypographyFor(t Tone) Typography {
	ty, ok := typography[t]
	if !ok {
		ty = typography[DefaultTone]
	}
	return Typography{
		Headline:        ty.Headline,
		HeadlineWeights: append([]int(nil), ty.HeadlineWeights...),
		Body:            ty.Body,
		BodyWeights:     append([]int(nil), ty.BodyWeights...),
		Links:           append([]string(nil), ty.Links...),
	}
}
