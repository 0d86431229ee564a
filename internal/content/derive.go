package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxExcerptLen = 200
	maxSlugLen    = 100

	wordsPerMinute = 200
)

var (
	slugStrip   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slug derives a deterministic url-safe slug from a title. An all-symbol
// title yields an empty slug; duplicate titles are expected to collide and
// are caught by deduplication upstream.
func Slug(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return truncateRunes(s, maxSlugLen)
}

// Excerpt collapses newlines and truncates at the last word boundary before
// the cap, appending an ellipsis. A window with no space at all keeps the
// hard cut, so the result never exceeds maxExcerptLen+3.
func Excerpt(body string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(body, "\n", " "))
	if utf8.RuneCountInString(cleaned) <= maxExcerptLen {
		return cleaned
	}

	cut := truncateRunes(cleaned, maxExcerptLen)
	if i := strings.LastIndex(cut, " "); i != -1 {
		cut = cut[:i]
	}
	return cut + "..."
}

// ReadTime estimates reading minutes at wordsPerMinute, never below one.
func ReadTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
