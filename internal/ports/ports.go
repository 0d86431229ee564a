package ports

import (
	"context"
	"time"

	"NewsletterHub/internal/domain"
)

// EmailSource supplies batches of newsletter emails. Implementations decide
// whether a live provider backs them or a canned corpus stands in.
type EmailSource interface {
	// Initialize reports whether a live provider is available. The pipeline
	// behaves identically either way.
	Initialize(ctx context.Context) (bool, error)
	// Search returns up to maxResults newsletter emails, newest first.
	Search(ctx context.Context, maxResults int) ([]domain.RawEmail, error)
}

// ArticleRepository archives the article set committed by a collection run.
type ArticleRepository interface {
	SaveRun(ctx context.Context, articles []domain.Article) error
}

// Scheduler controls when collection runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
