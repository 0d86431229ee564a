package server

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"NewsletterHub/internal/domain"
)

// collectedIDBase keeps collected-article IDs clear of the static dataset.
const collectedIDBase = 1000

// mergedArticles returns the static dataset plus the current collected set,
// the latter carrying synthetic IDs.
func (s *Server) mergedArticles() []domain.Article {
	merged := mockArticles()

	collected := s.collector.Query(domain.ArticleQuery{Limit: collectedIDBase})
	for i, article := range collected.Articles {
		article.ID = collectedIDBase + i
		merged = append(merged, article)
	}
	return merged
}

func (s *Server) handleListArticles(c echo.Context) error {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	category := strings.ToLower(c.QueryParam("category"))
	sortOrder := c.QueryParam("sortOrder")

	articles := s.mergedArticles()

	filtered := articles[:0:0]
	for _, article := range articles {
		if category != "" && article.Category.Slug != category {
			continue
		}
		filtered = append(filtered, article)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if sortOrder == "asc" {
			return filtered[i].PublishedAt.Before(filtered[j].PublishedAt)
		}
		return filtered[i].PublishedAt.After(filtered[j].PublishedAt)
	})

	total := len(filtered)
	offset := (page - 1) * limit
	items := []domain.Article{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		items = filtered[offset:end]
	}

	totalPages := (total + limit - 1) / limit

	return ok(c, domain.ArticlePage{
		Articles: items,
		Pagination: domain.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: limit,
			HasNextPage:  offset+limit < total,
			HasPrevPage:  page > 1,
		},
	})
}

func (s *Server) handleGetArticle(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid article id")
	}

	for _, article := range s.mergedArticles() {
		if article.ID == id {
			return ok(c, article)
		}
	}
	return fail(c, http.StatusNotFound, "Article not found")
}

func intQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
