// Package content turns extracted sections into normalized, publishable
// article records.
package content

import (
	"log/slog"
	"unicode/utf8"

	"NewsletterHub/internal/classify"
	"NewsletterHub/internal/domain"
)

const (
	// sourceName identifies the newsletter origin on every built article.
	sourceName = "TLDR Newsletter"

	maxTitleLen   = 200
	maxContentLen = 2000

	// featuredCount marks the first N sections of an email as featured.
	featuredCount = 3

	// minContentLen rejects sections too thin to publish.
	minContentLen = 50
)

// Builder derives all computed article fields from a section and its email.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder constructs the article builder.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build produces one article from a section, or nil when the section cannot
// yield one. index is the 0-based extraction position within the email.
func (b *Builder) Build(section domain.Section, email domain.RawEmail, index int) *domain.Article {
	title := section.Title
	body := section.Content

	if title == "" || body == "" || utf8.RuneCountInString(body) < minContentLen {
		return nil
	}

	category := classify.Classify(title + " " + body)

	return &domain.Article{
		Title:           truncateRunes(title, maxTitleLen),
		Slug:            Slug(title),
		Excerpt:         Excerpt(body),
		Content:         truncateRunes(body, maxContentLen),
		Category:        category,
		Published:       true,
		Featured:        index < featuredCount,
		PublishedAt:     email.Date,
		ReadTime:        ReadTime(body),
		ViewCount:       0,
		Source:          sourceName,
		SourceEmail:     email.ID,
		OriginalSubject: email.Subject,
	}
}
