package collect

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsletterHub/internal/content"
	"NewsletterHub/internal/domain"
)

type fakeSource struct {
	mu     sync.Mutex
	emails []domain.RawEmail
	err    error
	live   bool
	gate   chan struct{} // when set, Search blocks until the gate closes
}

func (f *fakeSource) Initialize(context.Context) (bool, error) {
	return f.live, nil
}

func (f *fakeSource) Search(context.Context, int) ([]domain.RawEmail, error) {
	f.mu.Lock()
	gate := f.gate
	emails, err := f.emails, f.err
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return emails, err
}

func (f *fakeSource) set(emails []domain.RawEmail, err error) {
	f.mu.Lock()
	f.emails, f.err = emails, err
	f.mu.Unlock()
}

func newTestCollector(source *fakeSource) *Collector {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Deps{
		Source: source,
		Parser: content.NewParser(logger),
		Logger: logger,
	})
}

func twoStoryEmail() domain.RawEmail {
	return domain.RawEmail{
		ID:      "email_1",
		Subject: "TLDR: two stories today",
		Date:    time.Date(2024, time.August, 15, 10, 0, 0, 0, time.UTC),
		Body: `<html><body>
		  <h2>Serverless Platforms Overview</h2>
		  <p>Cloud vendors keep expanding their serverless offerings this quarter.</p>
		  <p>Cold starts keep shrinking while per-request pricing stays flat.</p>
		  <h2>Quantum Computing Digest</h2>
		  <p>Researchers demonstrated error correction across dozens of qubits.</p>
		  <p>Hardware roadmaps now target thousands of logical qubits this decade.</p>
		</body></html>`,
	}
}

func TestCollectEndToEnd(t *testing.T) {
	t.Parallel()

	source := &fakeSource{emails: []domain.RawEmail{twoStoryEmail()}}
	collector := newTestCollector(source)

	result := collector.Collect(context.Background(), Options{})

	require.True(t, result.Success, result.Message)
	require.NotNil(t, result.Data)
	assert.Equal(t, 1, result.Data.EmailCount)
	assert.Equal(t, 2, result.Data.ArticleCount)
	for _, article := range result.Data.Articles {
		assert.True(t, article.Featured)
		assert.Equal(t, "email_1", article.SourceEmail)
	}
	assert.NotEmpty(t, result.Data.Categories)

	page := collector.Query(domain.ArticleQuery{})
	assert.Equal(t, 2, page.Pagination.TotalItems)

	status := collector.Status()
	assert.False(t, status.IsProcessing)
	assert.Equal(t, 2, status.ArticleCount)
	require.NotNil(t, status.LastCollectionDate)
}

func TestCollectBusyRejection(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	source := &fakeSource{emails: []domain.RawEmail{twoStoryEmail()}, gate: gate}
	collector := newTestCollector(source)

	done := make(chan domain.CollectionResult, 1)
	go func() {
		done <- collector.Collect(context.Background(), Options{})
	}()

	// wait for the run to take the processing flag
	require.Eventually(t, func() bool {
		return collector.Status().IsProcessing
	}, time.Second, time.Millisecond)

	busy := collector.Collect(context.Background(), Options{})
	assert.False(t, busy.Success)
	assert.Contains(t, busy.Message, "already in progress")
	assert.True(t, collector.Status().IsProcessing)

	close(gate)
	first := <-done
	assert.True(t, first.Success)
	assert.False(t, collector.Status().IsProcessing)
}

func TestCollectFetchFailureKeepsPriorSet(t *testing.T) {
	t.Parallel()

	source := &fakeSource{emails: []domain.RawEmail{twoStoryEmail()}}
	collector := newTestCollector(source)

	require.True(t, collector.Collect(context.Background(), Options{}).Success)
	require.Equal(t, 2, collector.Status().ArticleCount)

	source.set(nil, errors.New("mailbox unavailable"))
	result := collector.Collect(context.Background(), Options{})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "mailbox unavailable")
	assert.Equal(t, 2, collector.Status().ArticleCount)
	assert.False(t, collector.Status().IsProcessing)
}

func TestCollectEmptyBatchClearsPriorSet(t *testing.T) {
	t.Parallel()

	source := &fakeSource{emails: []domain.RawEmail{twoStoryEmail()}}
	collector := newTestCollector(source)
	require.True(t, collector.Collect(context.Background(), Options{}).Success)

	source.set(nil, nil)
	result := collector.Collect(context.Background(), Options{})

	require.True(t, result.Success)
	assert.Equal(t, 0, result.Data.EmailCount)
	assert.Equal(t, 0, result.Data.ArticleCount)
	assert.Equal(t, 0, collector.Status().ArticleCount)
}

func TestCollectSortsNewestFirst(t *testing.T) {
	t.Parallel()

	older := twoStoryEmail()
	older.ID = "email_old"
	older.Date = time.Date(2024, time.August, 10, 10, 0, 0, 0, time.UTC)
	older.Body = `<html><body>
	  <h2>Vector Database Benchmarks</h2>
	  <p>Benchmarks this month compare recall and latency across six engines.</p>
	  <p>Index build time turned out to vary far more than query throughput.</p>
	</body></html>`

	source := &fakeSource{emails: []domain.RawEmail{older, twoStoryEmail()}}
	collector := newTestCollector(source)

	result := collector.Collect(context.Background(), Options{})
	require.True(t, result.Success)
	require.Equal(t, 3, result.Data.ArticleCount)

	articles := result.Data.Articles
	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i-1].PublishedAt.Before(articles[i].PublishedAt))
	}
}

func seedArticles(collector *Collector, articles []domain.Article) {
	collector.mu.Lock()
	collector.articles = articles
	collector.mu.Unlock()
}

func TestQueryFiltersAndPaginates(t *testing.T) {
	t.Parallel()

	collector := newTestCollector(&fakeSource{})

	ai := domain.Category{ID: 2, Name: "AI", Slug: "ai", Color: "#8B5CF6"}
	tech := domain.Category{ID: 1, Name: "IT/TECH", Slug: "tech", Color: "#3B82F6"}

	var seeded []domain.Article
	for i := 0; i < 12; i++ {
		category := tech
		if i%2 == 0 {
			category = ai
		}
		seeded = append(seeded, domain.Article{
			Title:    "story",
			Category: category,
			Featured: i < 3,
		})
	}
	seedArticles(collector, seeded)

	page := collector.Query(domain.ArticleQuery{Category: "AI", Limit: 4})
	assert.Equal(t, 6, page.Pagination.TotalItems)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Len(t, page.Articles, 4)
	assert.True(t, page.Pagination.HasNextPage)
	assert.False(t, page.Pagination.HasPrevPage)

	second := collector.Query(domain.ArticleQuery{Category: "ai", Page: 2, Limit: 4})
	assert.Len(t, second.Articles, 2)
	assert.False(t, second.Pagination.HasNextPage)
	assert.True(t, second.Pagination.HasPrevPage)

	featured := true
	flagged := collector.Query(domain.ArticleQuery{Featured: &featured})
	assert.Equal(t, 3, flagged.Pagination.TotalItems)

	beyond := collector.Query(domain.ArticleQuery{Page: 99})
	assert.Empty(t, beyond.Articles)
	assert.Equal(t, 12, beyond.Pagination.TotalItems)
}

func TestClearTakesEffectImmediately(t *testing.T) {
	t.Parallel()

	source := &fakeSource{emails: []domain.RawEmail{twoStoryEmail()}}
	collector := newTestCollector(source)
	require.True(t, collector.Collect(context.Background(), Options{}).Success)

	collector.Clear()

	status := collector.Status()
	assert.Equal(t, 0, status.ArticleCount)
	assert.Nil(t, status.LastCollectionDate)
	assert.Empty(t, status.Categories)
}

func TestInitializeReportsMockSource(t *testing.T) {
	t.Parallel()

	collector := newTestCollector(&fakeSource{})
	assert.True(t, collector.Initialize(context.Background()))
}
