package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/puremvc-go/internal/adapters/bridge"
	"github.com/andrescamacho/puremvc-go/internal/adapters/journal"
	"github.com/andrescamacho/puremvc-go/internal/adapters/metrics"
	"github.com/andrescamacho/puremvc-go/internal/adapters/persistence"
	"github.com/andrescamacho/puremvc-go/internal/application/console"
	"github.com/andrescamacho/puremvc-go/internal/infrastructure/config"
	"github.com/andrescamacho/puremvc-go/internal/infrastructure/database"
	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/core"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/facade"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/middleware"
)

// App is a booted console application and the resources it owns
type App struct {
	Facade   *facade.Facade
	Registry *console.Registry
	Metrics  *metrics.CommandMetricsCollector
	Logger   logging.Logger

	closers []func() error
}

// AppOptions are the per-invocation inputs of NewApp
type AppOptions struct {
	Out              io.Writer
	Logger           logging.Logger
	ConsoleInterests []string

	// Publisher replaces the NATS connection when the bridge is enabled
	Publisher bridge.Publisher
}

// NewApp wires a facade from configuration. Nothing is dispatched until Start.
func NewApp(cfg *config.Config, opts AppOptions) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	app := &App{Logger: logger}

	coreOpts, collector, err := buildCoreOptions(cfg, logger)
	if err != nil {
		return nil, err
	}
	app.Metrics = collector
	app.Facade = facade.New(coreOpts...)

	var extra []mvc.Mediator

	if cfg.Journal.Enabled {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.closers = append(app.closers, func() error { return database.Close(db) })
		if err := database.AutoMigrate(db); err != nil {
			_ = app.closeResources()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		repo := persistence.NewGormJournalRepository(db, nil)
		extra = append(extra, journal.NewMediator(repo, cfg.Journal.Interests, logger))
	}

	if cfg.Bridge.Enabled {
		publisher := opts.Publisher
		if publisher == nil {
			conn, err := bridge.Connect(cfg.Bridge.URL)
			if err != nil {
				_ = app.closeResources()
				return nil, err
			}
			app.closers = append(app.closers, conn.Drain)
			publisher = conn
		}
		extra = append(extra, bridge.NewMediator(publisher, cfg.Bridge.SubjectPrefix, cfg.Bridge.Interests, logger))
	}

	app.Registry = console.NewRegistry(app.Facade, console.Dependencies{
		Out:              opts.Out,
		ConsoleInterests: opts.ConsoleInterests,
		Extra:            extra,
		Logger:           logger,
	})
	if err := app.Registry.RegisterCommands(); err != nil {
		_ = app.closeResources()
		return nil, err
	}

	return app, nil
}

// buildCoreOptions turns dispatch, metrics and logging config into facade options.
// Middleware order, outermost first: metrics, recover, logging, rate limit.
func buildCoreOptions(cfg *config.Config, logger logging.Logger) ([]core.Option, *metrics.CommandMetricsCollector, error) {
	policy, err := core.ParseDuplicatePolicy(cfg.Dispatch.DuplicatePolicy)
	if err != nil {
		return nil, nil, err
	}

	var chain []mvc.Middleware
	var collector *metrics.CommandMetricsCollector

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		collector = metrics.NewCommandMetricsCollector()
		if err := collector.Register(); err != nil {
			return nil, nil, fmt.Errorf("failed to register command metrics: %w", err)
		}
		chain = append(chain, metrics.PrometheusMiddleware(collector))
	}

	chain = append(chain, middleware.Recover(), middleware.Logging())

	if cfg.Dispatch.RateLimit.Enabled {
		chain = append(chain, middleware.RateLimit(
			rate.Limit(cfg.Dispatch.RateLimit.Requests),
			cfg.Dispatch.RateLimit.Burst,
		))
	}

	return []core.Option{
		core.WithLogger(logger),
		core.WithDuplicatePolicy(policy),
		core.WithMiddleware(chain...),
	}, collector, nil
}

// Start sends the startup notification
func (a *App) Start(ctx context.Context) error {
	return a.Facade.SendNotification(a.withLogger(ctx), console.StartupNotification, nil, "")
}

// Send dispatches one notification
func (a *App) Send(ctx context.Context, name string, body any, notificationType string) error {
	return a.Facade.SendNotification(a.withLogger(ctx), name, body, notificationType)
}

// Close sends the shutdown notification and releases database and NATS resources
func (a *App) Close(ctx context.Context) error {
	shutdownErr := a.Facade.SendNotification(a.withLogger(ctx), console.ShutdownNotification, nil, "")
	return errors.Join(shutdownErr, a.closeResources())
}

func (a *App) closeResources() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, a.Logger)
}

// newLogger builds the process logger from LoggingConfig; the returned
// function closes a log file when one was opened
func newLogger(cfg config.LoggingConfig) (logging.Logger, func() error, error) {
	level := cfg.Level
	if verbose {
		level = logging.LevelDebug
	}

	var out io.Writer
	closeFn := func() error { return nil }

	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	default:
		out = os.Stderr
	}

	return logging.NewWriterLogger(out, cfg.Format, level, cfg.IncludeCaller), closeFn, nil
}
