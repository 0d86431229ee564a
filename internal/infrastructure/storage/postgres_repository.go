package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"NewsletterHub/internal/domain"
	"NewsletterHub/internal/ports"
)

// PostgresRepository archives committed collection runs. The in-memory set
// stays authoritative; the archive is an audit trail, so failures here are
// reported but never fail a run.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ArticleRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveRun upserts every article of one run keyed by slug.
func (r *PostgresRepository) SaveRun(ctx context.Context, articles []domain.Article) error {
	if r.db == nil || len(articles) == 0 {
		return nil
	}

	insert := r.builder.
		Insert("collected_articles").
		Columns("slug", "title", "excerpt", "content", "category_slug", "featured",
			"published_at", "read_time", "source", "source_email", "original_subject").
		Suffix(`ON CONFLICT (slug) DO UPDATE
                SET title = EXCLUDED.title,
                    excerpt = EXCLUDED.excerpt,
                    content = EXCLUDED.content,
                    category_slug = EXCLUDED.category_slug,
                    featured = EXCLUDED.featured,
                    published_at = EXCLUDED.published_at,
                    read_time = EXCLUDED.read_time,
                    updated_at = NOW()`)

	for _, a := range articles {
		insert = insert.Values(a.Slug, a.Title, a.Excerpt, a.Content, a.Category.Slug,
			a.Featured, a.PublishedAt, a.ReadTime, a.Source, a.SourceEmail, a.OriginalSubject)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert collected articles: %w", err)
	}

	return nil
}
