package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"NewsletterHub/internal/classify"
)

func (s *Server) handleListCategories(c echo.Context) error {
	categories := make([]categoryInfo, 0, len(categoryDetails))
	for _, cat := range classify.Categories() {
		info := categoryDetails[cat.Slug]
		info.Category = cat
		categories = append(categories, info)
	}
	return ok(c, categories)
}

// handleGetCategory resolves a category by numeric id or by slug.
func (s *Server) handleGetCategory(c echo.Context) error {
	param := c.Param("id")

	if cat, found := classify.Lookup(param); found {
		info := categoryDetails[cat.Slug]
		info.Category = cat
		return ok(c, info)
	}

	if id, err := strconv.Atoi(param); err == nil {
		for _, cat := range classify.Categories() {
			if cat.ID == id {
				info := categoryDetails[cat.Slug]
				info.Category = cat
				return ok(c, info)
			}
		}
	}

	return fail(c, http.StatusNotFound, "Category not found")
}
