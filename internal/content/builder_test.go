package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsletterHub/internal/domain"
)

var testEmail = domain.RawEmail{
	ID:      "email_42",
	Subject: "TLDR: the weekly roundup",
	Date:    time.Date(2024, time.August, 15, 10, 0, 0, 0, time.UTC),
}

func section(title, body string) domain.Section {
	return domain.Section{Title: title, Content: body, Method: domain.MethodHeaderBased}
}

func TestBuildPopulatesDerivedFields(t *testing.T) {
	t.Parallel()

	body := "Anthropic shipped a new Claude model with stronger reasoning. " +
		"Benchmarks show meaningful gains across coding and analysis tasks."

	article := NewBuilder(nil).Build(section("Claude update lands", body), testEmail, 0)
	require.NotNil(t, article)

	assert.Equal(t, "claude-update-lands", article.Slug)
	assert.Equal(t, "ai", article.Category.Slug)
	assert.True(t, article.Published)
	assert.True(t, article.Featured)
	assert.Equal(t, 1, article.ReadTime)
	assert.Equal(t, 0, article.ViewCount)
	assert.Equal(t, testEmail.Date, article.PublishedAt)
	assert.Equal(t, "TLDR Newsletter", article.Source)
	assert.Equal(t, "email_42", article.SourceEmail)
	assert.Equal(t, testEmail.Subject, article.OriginalSubject)
}

func TestBuildRejectsThinSections(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil)

	assert.Nil(t, builder.Build(section("", "long enough content that still has no title attached to it"), testEmail, 0))
	assert.Nil(t, builder.Build(section("A title without content", ""), testEmail, 0))
	assert.Nil(t, builder.Build(section("A title with thin content", "too short"), testEmail, 0))
}

func TestBuildFeaturedCutoff(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil)
	body := strings.Repeat("sentence with several ordinary words in it. ", 5)

	for index, want := range []bool{true, true, true, false, false} {
		article := builder.Build(section("Some sufficiently long title", body), testEmail, index)
		require.NotNil(t, article)
		assert.Equal(t, want, article.Featured, "index %d", index)
	}
}

func TestBuildTruncationBounds(t *testing.T) {
	t.Parallel()

	longTitle := strings.Repeat("T", 500)
	longBody := strings.Repeat("word ", 1000)

	article := NewBuilder(nil).Build(section(longTitle, longBody), testEmail, 0)
	require.NotNil(t, article)

	assert.Len(t, article.Title, 200)
	assert.LessOrEqual(t, len(article.Content), 2000)
	assert.LessOrEqual(t, len(article.Excerpt), 203)
}

func TestSlugDerivation(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Hello, World!":                  "hello-world",
		"Multiple   Spaces --- Here":     "multiple-spaces-here",
		"Svelte 5: runes & reactivity":   "svelte-5-runes-reactivity",
		"???":                            "",
		"  leading and trailing spaces ": "leading-and-trailing-spaces",
	}
	for title, want := range cases {
		assert.Equal(t, want, Slug(title), "title %q", title)
	}

	// pure function: identical input, identical output
	assert.Equal(t, Slug("Determinism Check"), Slug("Determinism Check"))

	assert.LessOrEqual(t, len(Slug(strings.Repeat("a", 500))), 100)
}

func TestExcerptShortContentPassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "line one line two", Excerpt("line one\nline two"))
}

func TestExcerptTruncatesAtWordBoundary(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("newsletter content ", 30)
	got := Excerpt(long)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), 203)
	assert.False(t, strings.HasSuffix(strings.TrimSuffix(got, "..."), " "))
}

func TestExcerptWithoutSpacesKeepsHardCut(t *testing.T) {
	t.Parallel()

	got := Excerpt(strings.Repeat("x", 400))
	assert.Equal(t, 203, len(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestReadTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 1, ReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 5, ReadTime(strings.Repeat("word ", 1000)))
}
