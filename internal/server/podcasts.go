package server

import (
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"NewsletterHub/internal/domain"
)

func (s *Server) handleListPodcasts(c echo.Context) error {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	category := strings.ToLower(c.QueryParam("category"))

	podcasts := mockPodcasts()

	filtered := podcasts[:0:0]
	for _, p := range podcasts {
		if category != "" && p.Category.Slug != category {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublishedAt.After(filtered[j].PublishedAt)
	})

	total := len(filtered)
	offset := (page - 1) * limit
	items := []podcast{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		items = filtered[offset:end]
	}

	return ok(c, map[string]any{
		"podcasts": items,
		"pagination": domain.Pagination{
			CurrentPage:  page,
			TotalPages:   (total + limit - 1) / limit,
			TotalItems:   total,
			ItemsPerPage: limit,
			HasNextPage:  offset+limit < total,
			HasPrevPage:  page > 1,
		},
	})
}
