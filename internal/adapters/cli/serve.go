package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/puremvc-go/internal/adapters/httpapi"
	"github.com/andrescamacho/puremvc-go/internal/adapters/metrics"
	"github.com/andrescamacho/puremvc-go/internal/infrastructure/config"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var (
		address string
		echo    []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Boot the console app and accept notifications over HTTP",
		Long: `Boot the console application and serve its facade over HTTP until
interrupted.

Routes:
  POST /notifications/{name}   body {"type": "...", "body": ...}
  GET  /commands/{name}
  GET  /mediators/{name}
  GET  /metrics                when metrics are enabled

Examples:
  puremvc serve
  puremvc serve --address :9090 --echo greet --echo deploy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if address != "" {
				cfg.HTTP.Address = address
			}

			logger, closeLog, err := newLogger(cfg.Logging)
			if err != nil {
				return err
			}
			defer closeLog()

			app, err := NewApp(cfg, AppOptions{
				Out:              cmd.OutOrStdout(),
				Logger:           logger,
				ConsoleInterests: echo,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.Start(ctx); err != nil {
				return errors.Join(fmt.Errorf("startup failed: %w", err), app.Close(context.Background()))
			}

			routerOpts := httpapi.Options{Logger: logger}
			if cfg.Metrics.Enabled {
				routerOpts.MetricsPath = cfg.Metrics.Path
				routerOpts.MetricsHandler = metrics.Handler()
			}
			server := httpapi.NewServer(cfg.HTTP, httpapi.NewRouter(app.Facade, routerOpts), logger)

			serveErr := server.Run(ctx)
			return errors.Join(serveErr, app.Close(context.Background()))
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address (overrides http.address)")
	cmd.Flags().StringSliceVar(&echo, "echo", nil, "Notification names the console prints")

	return cmd
}
