package services

import (
	"regexp"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// fuzzyMatchCutoff is the minimum similarity ratio for a whitespace token to
// count as a fuzzy match of a candidate item.
const fuzzyMatchCutoff = 0.8

// FindPresentItems returns the candidates present in text, preserving the
// candidates' order with each candidate listed at most once. A candidate
// counts as present on an exact whole-word match, or when the closest
// whitespace token reaches the fuzzy cutoff. Matching is case-insensitive and
// candidate text is always treated literally, never as pattern syntax.
//
// Fuzzy matching compares single tokens only, so multi-word candidates can
// match exactly but never fuzzily.
func FindPresentItems(text string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}

	text = strings.ToLower(text)
	tokens := strings.Fields(text)
	lev := metrics.NewLevenshtein()

	var found []string
	for _, candidate := range candidates {
		lowered := strings.ToLower(candidate)

		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(lowered) + `\b`)
		if pattern.MatchString(text) {
			found = append(found, candidate)
			continue
		}

		if bestTokenSimilarity(lowered, tokens, lev) >= fuzzyMatchCutoff {
			found = append(found, candidate)
		}
	}

	return found
}

// bestTokenSimilarity returns the highest similarity ratio between the
// candidate and any single token, 0 when there are no tokens.
func bestTokenSimilarity(candidate string, tokens []string, lev *metrics.Levenshtein) float64 {
	best := 0.0
	for _, token := range tokens {
		if ratio := strutil.Similarity(token, candidate, lev); ratio > best {
			best = ratio
		}
	}
	return best
}
