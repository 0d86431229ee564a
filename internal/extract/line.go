package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"NewsletterHub/internal/domain"
)

// titlePattern marks lines that start uppercase and end lowercase.
var titlePattern = regexp.MustCompile(`^[A-Z].*[a-z]$`)

// lineStrategy is the last-resort tier: strip all markup and carve the plain
// text into title/content runs line by line.
type lineStrategy struct{}

func (lineStrategy) Name() string { return "line" }

func (lineStrategy) Extract(_ *goquery.Document, plain string) []domain.Section {
	var sections []domain.Section
	var current *domain.Section

	flush := func() {
		if current != nil && utf8.RuneCountInString(current.Content) > 100 {
			current.Content = strings.TrimSpace(current.Content)
			sections = append(sections, *current)
		}
	}

	for _, line := range strings.Split(plain, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		isTitle := utf8.RuneCountInString(trimmed) < 200 &&
			(strings.Contains(trimmed, ":") || titlePattern.MatchString(trimmed))

		switch {
		case isTitle:
			flush()
			current = &domain.Section{Title: trimmed, Method: domain.MethodLineBased}
		case current != nil && utf8.RuneCountInString(trimmed) > 20:
			current.Content += trimmed + "\n\n"
		}
	}
	flush()

	return sections
}
