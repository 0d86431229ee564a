// Package dedup removes near-duplicate articles from a collection run.
package dedup

import (
	"regexp"
	"strings"

	"NewsletterHub/internal/domain"
)

// similarityThreshold is the Jaccard character-set ratio above which two
// normalized titles count as the same story.
const similarityThreshold = 0.8

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Filter drops every article whose normalized title is near-identical to any
// previously accepted one, preserving first-seen order. The metric is Jaccard
// similarity over distinct characters, not tokens; anagram-like titles are
// judged duplicates on purpose. Quadratic in the run size, which stays small.
func Filter(articles []domain.Article) []domain.Article {
	unique := make([]domain.Article, 0, len(articles))
	var seen []string

	for _, article := range articles {
		normalized := normalizeTitle(article.Title)

		duplicate := false
		for _, prior := range seen {
			if jaccard(normalized, prior) > similarityThreshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		unique = append(unique, article)
		seen = append(seen, normalized)
	}

	return unique
}

func normalizeTitle(title string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(title), "")
}

// jaccard computes |A∩B| / |A∪B| over the sets of distinct characters.
func jaccard(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)

	union := len(setB)
	intersection := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
