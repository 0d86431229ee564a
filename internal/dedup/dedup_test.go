package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsletterHub/internal/domain"
)

func titled(titles ...string) []domain.Article {
	articles := make([]domain.Article, 0, len(titles))
	for _, title := range titles {
		articles = append(articles, domain.Article{Title: title})
	}
	return articles
}

func TestFilterDropsNearDuplicateTitles(t *testing.T) {
	t.Parallel()

	out := Filter(titled(
		"OpenAI Releases New Model",
		"OpenAI Release New Model",
	))

	require.Len(t, out, 1)
	assert.Equal(t, "OpenAI Releases New Model", out[0].Title)
}

func TestFilterPreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	out := Filter(titled(
		"Quantum Hardware Update",
		"Minimalist Interfaces Win",
		"Growth Loops Explained",
	))

	require.Len(t, out, 3)
	assert.Equal(t, "Quantum Hardware Update", out[0].Title)
	assert.Equal(t, "Minimalist Interfaces Win", out[1].Title)
	assert.Equal(t, "Growth Loops Explained", out[2].Title)
}

func TestFilterTreatsAnagramsAsDuplicates(t *testing.T) {
	t.Parallel()

	// character sets, not tokens: anagram titles collide
	out := Filter(titled("Listen", "Silent"))
	require.Len(t, out, 1)
}

func TestFilterIgnoresCaseAndPunctuation(t *testing.T) {
	t.Parallel()

	out := Filter(titled(
		"React 19: What's New?",
		"REACT 19 — WHAT'S NEW",
	))
	require.Len(t, out, 1)
}

func TestFilterKeepsEmptyTitles(t *testing.T) {
	t.Parallel()

	// empty normalized titles never compare as similar
	out := Filter(titled("", "!!!"))
	assert.Len(t, out, 2)
}

func TestJaccardCharacterSets(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, jaccard("abc", "cab"), 1e-9)
	assert.InDelta(t, 0.5, jaccard("ab", "b"), 1e-9)
	assert.InDelta(t, 1.0/3.0, jaccard("ab", "bc"), 1e-9)
	assert.Zero(t, jaccard("", ""))
	assert.Zero(t, jaccard("abc", "xyz"))
}
