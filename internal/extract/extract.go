// Package extract cuts candidate news sections out of loosely structured
// newsletter markup. A cascade of strategies is tried in order; the first one
// that yields any sections wins.
package extract

import (
	"html"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"NewsletterHub/internal/domain"
)

// maxSections caps how many sections a single email may contribute.
const maxSections = 10

// Strategy attempts to extract sections from one parsed email body.
type Strategy interface {
	Name() string
	Extract(doc *goquery.Document, plain string) []domain.Section
}

// Cascade runs extraction strategies in a fixed order. Order matters twice:
// later tiers only run when earlier ones found nothing, and the document
// order of the returned sections decides which articles become featured.
type Cascade struct {
	strategies []Strategy
	policy     *bluemonday.Policy
	logger     *slog.Logger
}

// NewCascade wires the default header -> paragraph -> line tier order.
func NewCascade(logger *slog.Logger) *Cascade {
	return &Cascade{
		strategies: []Strategy{
			headerStrategy{},
			paragraphStrategy{},
			lineStrategy{},
		},
		policy: bluemonday.StrictPolicy(),
		logger: logger,
	}
}

// Sections parses body and returns at most maxSections sections in document
// order. Malformed markup never propagates: the email just yields nothing.
func (c *Cascade) Sections(body string) []domain.Section {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		c.debug("unparseable email body", "error", err)
		return nil
	}
	doc.Find("script, style").Remove()

	plain := html.UnescapeString(c.policy.Sanitize(body))

	for _, strategy := range c.strategies {
		sections := strategy.Extract(doc, plain)
		if len(sections) == 0 {
			continue
		}
		c.debug("strategy matched", "strategy", strategy.Name(), "sections", len(sections))
		if len(sections) > maxSections {
			sections = sections[:maxSections]
		}
		return sections
	}

	return nil
}

func (c *Cascade) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
