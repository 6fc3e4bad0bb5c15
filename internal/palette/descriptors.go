package palette

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jmylchreest/brandpal/internal/brand"
	"github.com/jmylchreest/brandpal/internal/random"
)

var iconStyles = []string{
	"outline",
	"rounded",
	"sharp",
	"geometric",
	"handcrafted",
}

var imageryAdjectives = []string{
	"warm", "cool", "vibrant", "muted", "natural", "minimal",
	"organic", "geometric", "textured", "clean", "bold", "soft",
}

var imagerySubjects = []string{
	"wood grain micro texture", "soft fabric folds", "geometric patterns",
	"natural light shadows", "handcrafted details", "minimalist forms",
}

var nameAdjectives = []string{"Modern", "Classic", "Bold", "Clean", "Warm", "Cool", "Vibrant", "Subtle"}

// logoPromptCount is how many of the candidate prompts are kept.
const logoPromptCount = 3

// paletteName draws an adjective and joins it with the industry as typed,
// upper-casing only the first letter of each space-separated word.
func paletteName(industry string, rng *random.Rand) (string, error) {
	adj, err := random.Pick(rng, nameAdjectives)
	if err != nil {
		return "", fmt.Errorf("failed to pick name adjective: %w", err)
	}
	// Casers hold state, so one per call.
	upper := cases.Upper(language.Und)
	words := strings.Fields(industry)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(string(r)) + w[size:]
	}
	return strings.TrimSpace(adj + " " + strings.Join(words, " ")), nil
}

// imagery draws two different adjectives and a subject.
func imagery(rng *random.Rand) ([]string, error) {
	first, err := random.Pick(rng, imageryAdjectives)
	if err != nil {
		return nil, err
	}
	rest := make([]string, 0, len(imageryAdjectives)-1)
	for _, a := range imageryAdjectives {
		if a != first {
			rest = append(rest, a)
		}
	}
	second, err := random.Pick(rng, rest)
	if err != nil {
		return nil, err
	}
	subject, err := random.Pick(rng, imagerySubjects)
	if err != nil {
		return nil, err
	}
	return []string{first + " " + second + " " + subject}, nil
}

// logoPrompts builds the five candidate prompts and keeps a shuffled three.
func logoPrompts(industry string, tone brand.Tone, rng *random.Rand) []string {
	aesthetic, lines := string(tone), string(tone)
	if tone == "" {
		aesthetic, lines = "modern", "clean"
	}
	candidates := []string{
		fmt.Sprintf("Monogram combining %s initials with geometric elements", industry),
		fmt.Sprintf("Abstract symbol representing %s values and %s aesthetic", industry, aesthetic),
		"Lettermark with custom typography and subtle icon integration",
		fmt.Sprintf("Symbolic mark using %s-related metaphors", industry),
		fmt.Sprintf("Minimalist icon with %s lines and forms", lines),
	}
	return random.Shuffle(rng, candidates)[:logoPromptCount]
}
