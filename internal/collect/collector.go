// Package collect owns collection runs and the in-memory article set they
// produce.
package collect

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"NewsletterHub/internal/content"
	"NewsletterHub/internal/dedup"
	"NewsletterHub/internal/domain"
	"NewsletterHub/internal/ports"
)

const defaultMaxResults = 50

// Options tunes a single collection run.
type Options struct {
	MaxResults int
}

// Deps wires the collector's collaborators.
type Deps struct {
	Source  ports.EmailSource
	Archive ports.ArticleRepository
	Parser  *content.Parser
	Logger  *slog.Logger
}

// Collector drives the extraction pipeline over email batches and serves
// read queries against the last committed article set. At most one run may
// be in flight at a time; reads never block on a run.
type Collector struct {
	source  ports.EmailSource
	archive ports.ArticleRepository
	parser  *content.Parser
	logger  *slog.Logger

	mu             sync.RWMutex
	processing     bool
	lastCollection *time.Time
	articles       []domain.Article
}

// New constructs an idle collector with an empty article set.
func New(deps Deps) *Collector {
	return &Collector{
		source:  deps.Source,
		archive: deps.Archive,
		parser:  deps.Parser,
		logger:  deps.Logger,
	}
}

// Initialize probes the email source and reports whether a live provider is
// available. The collector works the same either way.
func (c *Collector) Initialize(ctx context.Context) bool {
	live, err := c.source.Initialize(ctx)
	if err != nil {
		c.logger.Error("email source initialization failed", "error", err)
		return false
	}
	if live {
		c.logger.Info("email source initialized with live provider")
	} else {
		c.logger.Info("email source initialized with mock data")
	}
	return true
}

// Collect runs the full pipeline over one email batch and atomically replaces
// the stored article set on success. A run already in progress is rejected
// immediately; a fetch failure leaves the previous set untouched.
func (c *Collector) Collect(ctx context.Context, opts Options) domain.CollectionResult {
	c.mu.Lock()
	if c.processing {
		c.mu.Unlock()
		c.logger.Warn("collection already in progress")
		return domain.CollectionResult{
			Success: false,
			Message: "Collection already in progress",
		}
	}
	c.processing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.processing = false
		c.mu.Unlock()
	}()

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	c.logger.Info("starting newsletter collection", "max_results", maxResults)

	emails, err := c.source.Search(ctx, maxResults)
	if err != nil {
		c.logger.Error("email fetch failed", "error", err)
		return domain.CollectionResult{
			Success: false,
			Message: "Email collection failed: " + err.Error(),
		}
	}

	var all []domain.Article
	emailCount := 0
	for _, email := range emails {
		articles := c.parser.Parse(email)
		all = append(all, articles...)
		emailCount++
	}

	unique := dedup.Filter(all)
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].PublishedAt.After(unique[j].PublishedAt)
	})

	now := time.Now()

	// Commit: replacement is unconditional on success, so an empty batch
	// clears whatever a previous run stored.
	c.mu.Lock()
	c.articles = unique
	c.lastCollection = &now
	c.mu.Unlock()

	if c.archive != nil {
		if archiveErr := c.archive.SaveRun(ctx, unique); archiveErr != nil {
			c.logger.Warn("archiving collected articles failed", "error", archiveErr)
		}
	}

	c.logger.Info("newsletter collection completed",
		"emails", emailCount, "articles", len(unique))

	message := "Email collection completed successfully"
	if emailCount == 0 {
		message = "No emails found"
	}

	return domain.CollectionResult{
		Success: true,
		Message: message,
		Data: &domain.CollectionData{
			Articles:       unique,
			EmailCount:     emailCount,
			ArticleCount:   len(unique),
			CollectionDate: now,
			Categories:     categoryStats(unique),
		},
	}
}

// Query is a pure read over the stored set: filter, then paginate. The
// pagination metadata reflects the filtered count.
func (c *Collector) Query(q domain.ArticleQuery) domain.ArticlePage {
	c.mu.RLock()
	stored := c.articles
	c.mu.RUnlock()

	filtered := make([]domain.Article, 0, len(stored))
	for _, article := range stored {
		if q.Category != "" && article.Category.Slug != normalizeSlug(q.Category) {
			continue
		}
		if q.Featured != nil && article.Featured != *q.Featured {
			continue
		}
		filtered = append(filtered, article)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	total := len(filtered)
	offset := (page - 1) * limit

	var items []domain.Article
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		items = filtered[offset:end]
	} else {
		items = []domain.Article{}
	}

	totalPages := (total + limit - 1) / limit

	return domain.ArticlePage{
		Articles: items,
		Pagination: domain.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: limit,
			HasNextPage:  offset+limit < total,
			HasPrevPage:  page > 1,
		},
	}
}

// Status reports orchestrator state and a per-category breakdown.
func (c *Collector) Status() domain.CollectionStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := domain.CollectionStatus{
		IsProcessing: c.processing,
		ArticleCount: len(c.articles),
		Categories:   categoryStats(c.articles),
	}
	if c.lastCollection != nil {
		t := *c.lastCollection
		status.LastCollectionDate = &t
	}
	return status
}

// Clear empties the stored set immediately, whether or not a run is active.
func (c *Collector) Clear() {
	c.mu.Lock()
	c.articles = nil
	c.lastCollection = nil
	c.mu.Unlock()
	c.logger.Info("collected articles cleared")
}

func categoryStats(articles []domain.Article) map[string]domain.CategoryStat {
	stats := make(map[string]domain.CategoryStat)
	for _, article := range articles {
		stat, ok := stats[article.Category.Name]
		if !ok {
			stat = domain.CategoryStat{
				Slug:  article.Category.Slug,
				Color: article.Category.Color,
			}
		}
		stat.Count++
		stats[article.Category.Name] = stat
	}
	return stats
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
