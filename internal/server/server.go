// Package server exposes the content API: collected newsletter articles next
// to the static demo datasets, plus the collection control endpoints.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"NewsletterHub/internal/collect"
)

// Server wraps the echo instance and its handler dependencies.
type Server struct {
	echo          *echo.Echo
	collector     *collect.Collector
	subscriptions *subscriptionStore
	logger        *slog.Logger
}

// New builds the HTTP surface around a collector.
func New(collector *collect.Collector, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:          e,
		collector:     collector,
		subscriptions: newSubscriptionStore(),
		logger:        logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/health", s.handleHealth)

	api := s.echo.Group("/api")

	api.GET("/articles", s.handleListArticles)
	api.GET("/articles/:id", s.handleGetArticle)

	api.GET("/categories", s.handleListCategories)
	api.GET("/categories/:id", s.handleGetCategory)

	api.GET("/podcasts", s.handleListPodcasts)

	api.POST("/subscriptions", s.handleCreateSubscription)
	api.GET("/subscriptions/:email", s.handleGetSubscription)
	api.DELETE("/subscriptions/:email", s.handleDeleteSubscription)

	api.POST("/newsletter/initialize", s.handleInitialize)
	api.POST("/newsletter/collect", s.handleCollect)
	api.GET("/newsletter/articles", s.handleCollectedArticles)
	api.GET("/newsletter/status", s.handleCollectionStatus)
	api.DELETE("/newsletter/articles", s.handleClearArticles)
}

// Start begins serving on address and blocks until shutdown.
func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func fail(c echo.Context, code int, message string) error {
	return c.JSON(code, envelope{Success: false, Error: message})
}
