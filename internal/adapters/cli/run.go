package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/puremvc-go/internal/infrastructure/config"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		body             string
		notificationType string
	)

	cmd := &cobra.Command{
		Use:   "run [notification...]",
		Short: "Boot the console app and send notifications",
		Long: `Boot the console application, send each named notification in order
and shut down. The console mediator prints every notification it receives.

--body is parsed as JSON when it is valid JSON and sent as a string otherwise.

Examples:
  puremvc run greet
  puremvc run greet --body '{"who":"world"}' --type hello`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger, closeLog, err := newLogger(cfg.Logging)
			if err != nil {
				return err
			}
			defer closeLog()

			app, err := NewApp(cfg, AppOptions{
				Out:              cmd.OutOrStdout(),
				Logger:           logger,
				ConsoleInterests: args,
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := app.Start(ctx); err != nil {
				return errors.Join(fmt.Errorf("startup failed: %w", err), app.Close(ctx))
			}

			var sendErr error
			payload := parseBody(body)
			for _, name := range args {
				if err := app.Send(ctx, name, payload, notificationType); err != nil {
					sendErr = fmt.Errorf("notification %q failed: %w", name, err)
					break
				}
			}

			return errors.Join(sendErr, app.Close(ctx))
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "Notification body (JSON or plain text)")
	cmd.Flags().StringVar(&notificationType, "type", "", "Notification type")

	return cmd
}

// parseBody decodes raw as JSON, falling back to the raw string; empty is nil
func parseBody(raw string) any {
	if raw == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
