package domain

import "time"

// Category is one of the four fixed topical buckets.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// Article is the durable unit of pipeline output.
type Article struct {
	ID              int       `json:"id,omitempty"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Excerpt         string    `json:"excerpt"`
	Content         string    `json:"content"`
	Category        Category  `json:"category"`
	Published       bool      `json:"published"`
	Featured        bool      `json:"featured"`
	PublishedAt     time.Time `json:"publishedAt"`
	ReadTime        int       `json:"readTime"`
	ViewCount       int       `json:"viewCount"`
	Source          string    `json:"source"`
	SourceEmail     string    `json:"sourceEmail,omitempty"`
	OriginalSubject string    `json:"originalSubject,omitempty"`
}

// CategoryStat summarizes how many articles landed in one category.
type CategoryStat struct {
	Count int    `json:"count"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// CollectionData carries the payload of a successful collection run.
type CollectionData struct {
	Articles       []Article               `json:"articles"`
	EmailCount     int                     `json:"emailCount"`
	ArticleCount   int                     `json:"articleCount"`
	CollectionDate time.Time               `json:"collectionDate"`
	Categories     map[string]CategoryStat `json:"categories"`
}

// CollectionResult is the structured outcome of a collect call.
// Failures (busy, upstream fetch) are values, never panics.
type CollectionResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *CollectionData `json:"data"`
}

// CollectionStatus reports orchestrator state without touching it.
type CollectionStatus struct {
	IsProcessing       bool                    `json:"isProcessing"`
	LastCollectionDate *time.Time              `json:"lastCollectionDate"`
	ArticleCount       int                     `json:"articleCount"`
	Categories         map[string]CategoryStat `json:"categories"`
}

// ArticleQuery filters and paginates a read over the stored article set.
type ArticleQuery struct {
	Category string
	Featured *bool
	Page     int
	Limit    int
}

// Pagination is computed from the filtered count, not the unfiltered one.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// ArticlePage is one page of a filtered article listing.
type ArticlePage struct {
	Articles   []Article  `json:"articles"`
	Pagination Pagination `json:"pagination"`
}
