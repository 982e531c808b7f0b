// Package analyze ranks the descriptive terms of a job description.
package analyze

import (
	"regexp"
	"sort"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+(?:['-][a-z0-9]+)*`)

// Keywords returns the unique lowercase words of description ordered by how
// often each occurs, most frequent first. With a single-document corpus the
// inverse-document-frequency factor is a constant, so term frequency alone
// decides the ranking. Ties keep first-occurrence order. Deterministic.
func Keywords(description string) []string {
	tokens := wordPattern.FindAllString(strings.ToLower(description), -1)

	counts := make(map[string]int, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			unique = append(unique, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return counts[unique[i]] > counts[unique[j]]
	})

	return unique
}

// Top returns at most n ranked keywords.
func Top(description string, n int) []string {
	ranked := Keywords(description)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
