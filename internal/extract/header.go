package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"NewsletterHub/internal/domain"
)

// headerStrategy treats h1-h3 headings as story titles and accumulates the
// text of following block siblings until the next heading.
type headerStrategy struct{}

func (headerStrategy) Name() string { return "header" }

func (headerStrategy) Extract(doc *goquery.Document, _ string) []domain.Section {
	var sections []domain.Section

	doc.Find("h1, h2, h3").Each(func(_ int, header *goquery.Selection) {
		title := strings.TrimSpace(header.Text())
		if utf8.RuneCountInString(title) <= 10 {
			return
		}

		var buf strings.Builder
		for next := header.Next(); next.Length() > 0 && !next.Is("h1, h2, h3"); next = next.Next() {
			if next.Is("p, div, span") {
				buf.WriteString(strings.TrimSpace(next.Text()))
				buf.WriteString("\n\n")
			}
		}

		content := strings.TrimSpace(buf.String())
		if utf8.RuneCountInString(content) > 50 {
			sections = append(sections, domain.Section{
				Title:   title,
				Content: content,
				Method:  domain.MethodHeaderBased,
			})
		}
	})

	return sections
}
