package content

import "strings"

const (
	fallbackFeatures     = "beautiful finishes throughout"
	fallbackBuyer        = "growing families and first-time buyers alike"
	fallbackNeighborhood = "a friendly, walkable community close to shops and parks"
)

// SynthesizeInterview builds a post from interview answers by position:
// address, standout features, ideal buyer, neighborhood.
func SynthesizeInterview(answers []string) string {
	at := func(i int, fallback string) string {
		if i < len(answers) {
			if a := strings.TrimSpace(answers[i]); a != "" {
				return a
			}
		}
		return fallback
	}

	return strings.NewReplacer(
		"{{address}}", at(0, FallbackAddress),
		"{{features}}", strings.TrimRight(at(1, fallbackFeatures), "."),
		"{{buyer}}", strings.TrimRight(at(2, fallbackBuyer), "."),
		"{{neighborhood}}", strings.TrimRight(at(3, fallbackNeighborhood), "."),
	).Replace(interviewTemplate)
}
