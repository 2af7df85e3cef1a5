package match

import "github.com/hbollon/go-edlib"

// suggestionThreshold is the minimum Jaro-Winkler similarity for a
// candidate to be offered as a suggestion. Below this the candidate is
// more likely noise than a typo.
const suggestionThreshold = 0.70

// Closest returns the candidate most similar to name, comparing
// normalized forms with Jaro-Winkler similarity (favors shared prefixes,
// which suits short user and tag names). The boolean is false when no
// candidate clears the similarity threshold.
func Closest(name string, candidates []string) (string, bool) {
	target := Normalize(name)

	best := ""
	bestScore := 0.0
	for _, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(target, Normalize(candidate)))
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < suggestionThreshold {
		return "", false
	}
	return best, true
}
