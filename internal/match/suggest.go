package match

import "strings"

// DefaultSuggestionThreshold is the minimum normalized similarity a
// candidate needs before it is offered as a suggestion.
const DefaultSuggestionThreshold = 0.5

// NormalizeIdent normalizes a hardware name for fuzzy matching.
// Vendor files disagree on case and separators for the same block, so
// both are folded away before comparison.
func NormalizeIdent(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}

// Closest returns the candidate most similar to name, when its score
// reaches the suggestion threshold. Candidates are compared in
// normalized form; the returned name keeps its original spelling.
func Closest(name string, candidates []string) (string, bool) {
	norm := NormalizeIdent(name)

	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		score := LevenshteinNormalized(norm, NormalizeIdent(c))
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	if bestScore < DefaultSuggestionThreshold {
		return "", false
	}

	return best, true
}
