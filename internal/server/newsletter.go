package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"NewsletterHub/internal/collect"
	"NewsletterHub/internal/domain"
)

type collectRequest struct {
	MaxResults int `json:"maxResults"`
}

func (s *Server) handleInitialize(c echo.Context) error {
	initialized := s.collector.Initialize(c.Request().Context())
	if !initialized {
		return fail(c, http.StatusInternalServerError, "Failed to initialize email collector")
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "Email collector initialized"})
}

func (s *Server) handleCollect(c echo.Context) error {
	var req collectRequest
	if err := c.Bind(&req); err != nil && err != echo.ErrUnsupportedMediaType {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	result := s.collector.Collect(c.Request().Context(), collect.Options{
		MaxResults: req.MaxResults,
	})

	if !result.Success {
		code := http.StatusInternalServerError
		if strings.Contains(result.Message, "already in progress") {
			code = http.StatusConflict
		}
		return c.JSON(code, result)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleCollectedArticles(c echo.Context) error {
	query := domain.ArticleQuery{
		Category: c.QueryParam("category"),
		Page:     intQuery(c, "page", 1),
		Limit:    intQuery(c, "limit", 10),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured := raw == "true"
		query.Featured = &featured
	}

	return ok(c, s.collector.Query(query))
}

func (s *Server) handleCollectionStatus(c echo.Context) error {
	return ok(c, s.collector.Status())
}

func (s *Server) handleClearArticles(c echo.Context) error {
	s.collector.Clear()
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "Collected articles cleared"})
}
