package content

import (
	"log/slog"

	"NewsletterHub/internal/domain"
	"NewsletterHub/internal/extract"
)

// Parser runs the full per-email path: section extraction followed by
// article construction. A failure anywhere inside yields zero articles for
// that email and never aborts the batch.
type Parser struct {
	cascade *extract.Cascade
	builder *Builder
	logger  *slog.Logger
}

// NewParser wires the extraction cascade and article builder.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{
		cascade: extract.NewCascade(logger),
		builder: NewBuilder(logger),
		logger:  logger,
	}
}

// Parse extracts every publishable article from one email.
func (p *Parser) Parse(email domain.RawEmail) []domain.Article {
	sections := p.cascade.Sections(email.Body)

	articles := make([]domain.Article, 0, len(sections))
	for i, section := range sections {
		if article := p.builder.Build(section, email, i); article != nil {
			articles = append(articles, *article)
		}
	}

	if p.logger != nil {
		p.logger.Info("parsed email", "subject", email.Subject, "articles", len(articles))
	}
	return articles
}
