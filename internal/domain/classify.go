package domain

import "strings"

// Keyword sets for taxon classification. Order matters: bird wins
// outright, then mammal, then the marine/reptile combination rules.
// Reordering changes classification outcomes for names that match more
// than one set (e.g. "Sea Turtle"), so the precedence is part of the
// observable behavior, not an implementation detail.
var (
	birdKeywords = []string{
		"bird", "avian", "eagle", "hawk", "falcon", "owl", "swan", "crane",
		"stork", "tern", "albatross", "petrel", "gull", "duck", "goose",
	}
	mammalKeywords = []string{
		"mammal", "whale", "dolphin", "seal", "bear", "wolf", "deer",
		"elk", "caribou", "moose", "cat", "dog", "bat", "elephant",
	}
	marineKeywords = []string{
		"fish", "shark", "tuna", "salmon", "turtle", "marine",
	}
	reptileKeywords = []string{
		"turtle", "snake", "lizard", "reptile", "crocodile", "iguana",
	}
)

// Classify maps study metadata to a taxon label via substring keyword
// matching against the lower-cased study name and investigator name.
// This is a heuristic; Movebank carries no ground-truth taxon field.
func Classify(studyName, investigatorName string) string {
	text := strings.ToLower(studyName) + " " + strings.ToLower(investigatorName)

	switch {
	case containsAny(text, birdKeywords):
		return TaxonBird
	case containsAny(text, mammalKeywords):
		return TaxonMammal
	case containsAny(text, marineKeywords):
		// "turtle" is in both sets; marine + reptile means reptile,
		// marine alone means fish.
		if containsAny(text, reptileKeywords) {
			return TaxonReptile
		}
		return TaxonFish
	case containsAny(text, reptileKeywords):
		return TaxonReptile
	}
	return TaxonUnknown
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// speciesPatterns maps known study-name phrases to display species names.
// Kept as an ordered slice so the first match always wins.
var speciesPatterns = []struct {
	pattern string
	species string
}{
	{"arctic tern", "Arctic Tern"},
	{"gray whale", "Gray Whale"},
	{"humpback whale", "Humpback Whale"},
	{"loggerhead", "Loggerhead Turtle"},
	{"bald eagle", "Bald Eagle"},
	{"golden eagle", "Golden Eagle"},
	{"brown bear", "Brown Bear"},
	{"polar bear", "Polar Bear"},
	{"caribou", "Caribou"},
	{"elk", "Elk"},
	{"white shark", "Great White Shark"},
	{"bluefin tuna", "Bluefin Tuna"},
}

// ExtractSpecies derives a species label from a study name. Known
// phrases are matched first; otherwise the first two whitespace-separated
// tokens of the original-case name are used as a best guess.
func ExtractSpecies(studyName string) string {
	lower := strings.ToLower(studyName)
	for _, p := range speciesPatterns {
		if strings.Contains(lower, p.pattern) {
			return p.species
		}
	}

	words := strings.Fields(studyName)
	if len(words) >= 2 {
		return words[0] + " " + words[1]
	}
	return "Unknown Species"
}
