package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"NewsletterHub/internal/domain"
)

// paragraphStrategy handles newsletters that bold their story titles instead
// of using headings: every strong/b text of plausible title length becomes a
// candidate, and its content is every paragraph that contains that text.
type paragraphStrategy struct{}

func (paragraphStrategy) Name() string { return "paragraph" }

func (paragraphStrategy) Extract(doc *goquery.Document, _ string) []domain.Section {
	paragraphs := doc.Find("p").Map(func(_ int, p *goquery.Selection) string {
		return strings.TrimSpace(p.Text())
	})

	var sections []domain.Section
	doc.Find("strong, b").Each(func(_ int, bold *goquery.Selection) {
		title := strings.TrimSpace(bold.Text())
		length := utf8.RuneCountInString(title)
		if length <= 10 || length >= 200 {
			return
		}

		var related []string
		for _, p := range paragraphs {
			if strings.Contains(p, title) {
				related = append(related, p)
			}
		}

		content := strings.Join(related, "\n\n")
		if utf8.RuneCountInString(content) > 100 {
			sections = append(sections, domain.Section{
				Title:   title,
				Content: content,
				Method:  domain.MethodParagraphBased,
			})
		}
	})

	return sections
}
