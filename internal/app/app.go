package app

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"NewsletterHub/internal/collect"
	"NewsletterHub/internal/config"
	"NewsletterHub/internal/content"
	"NewsletterHub/internal/infrastructure/mailbox"
	"NewsletterHub/internal/infrastructure/scheduler"
	"NewsletterHub/internal/infrastructure/storage"
	"NewsletterHub/internal/logging"
	"NewsletterHub/internal/ports"
	"NewsletterHub/internal/server"
)

// Application wires configs to components and owns their lifecycle.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	collector *collect.Collector
	server    *server.Server
	scheduler ports.Scheduler
	db        *sql.DB
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	source := mailbox.NewMockInbox(baseLogger.With("component", "mailbox"))

	var db *sql.DB
	var archive ports.ArticleRepository
	if cfg.Database.DSN != "" {
		opened, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		db = opened
		archive = storage.NewPostgresRepository(db)
	}

	collector := collect.New(collect.Deps{
		Source:  source,
		Archive: archive,
		Parser:  content.NewParser(baseLogger.With("component", "parser")),
		Logger:  baseLogger.With("component", "collector"),
	})

	app := &Application{
		cfg:       cfg,
		logger:    baseLogger,
		collector: collector,
		server:    server.New(collector, baseLogger.With("component", "server")),
		db:        db,
	}

	if cfg.Scheduler.Enabled {
		app.scheduler = scheduler.NewCronScheduler(
			cfg.Scheduler.CronExpression, cfg.Scheduler.Location())
	}

	return app, nil
}

// Run starts the scheduler and HTTP server, then blocks until ctx is
// canceled or the listener fails.
func (a *Application) Run(ctx context.Context) error {
	a.collector.Initialize(ctx)

	if a.scheduler != nil {
		job := func(trigger time.Time) {
			a.logger.Info("scheduled collection triggered", "at", trigger)
			result := a.collector.Collect(ctx, collect.Options{
				MaxResults: a.cfg.Collector.MaxResults,
			})
			if !result.Success {
				a.logger.Warn("scheduled collection skipped", "reason", result.Message)
			}
		}
		if err := a.scheduler.Start(ctx, job); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(a.cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	a.logger.Info("server started", "address", a.cfg.Server.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return a.shutdown()
}

func (a *Application) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.scheduler != nil {
		_ = a.scheduler.Stop(ctx)
	}
	if a.db != nil {
		_ = a.db.Close()
	}

	a.logger.Info("shutting down")
	return a.server.Shutdown(ctx)
}
