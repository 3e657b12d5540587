package cli

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/puremvc-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect puremvc configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (PMVC_* prefix, plus DATABASE_URL and NATS_URL)
2. Config file (config.yaml)
3. Default values

Examples:
  puremvc config show
  puremvc config show --json`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			if asJSON {
				masked := *cfg
				masked.Database.URL = maskPassword(cfg.Database.URL)
				masked.Bridge.URL = maskPassword(cfg.Bridge.URL)
				fmt.Fprintln(out, prettyPrint(masked))
				return nil
			}

			printConfig(out, cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print configuration as JSON")

	return cmd
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "puremvc Configuration")
	fmt.Fprintln(out, "=====================")

	fmt.Fprintln(out, "\nDispatch:")
	fmt.Fprintf(out, "  Duplicate Policy: %s\n", cfg.Dispatch.DuplicatePolicy)
	if cfg.Dispatch.RateLimit.Enabled {
		fmt.Fprintf(out, "  Rate Limit:       %d req/s (burst: %d)\n",
			cfg.Dispatch.RateLimit.Requests, cfg.Dispatch.RateLimit.Burst)
	} else {
		fmt.Fprintf(out, "  Rate Limit:       (disabled)\n")
	}

	fmt.Fprintln(out, "\nDatabase:")
	fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
	if cfg.Database.Type == "sqlite" {
		fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
		fmt.Fprintf(out, "  Max Connections:  1\n")
	} else {
		fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
		fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
	}

	fmt.Fprintln(out, "\nJournal:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Journal.Enabled)
	fmt.Fprintf(out, "  Interests:        %s\n", joinOrNone(cfg.Journal.Interests))

	fmt.Fprintln(out, "\nNATS Bridge:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Bridge.Enabled)
	fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Bridge.URL))
	fmt.Fprintf(out, "  Subject Prefix:   %s\n", cfg.Bridge.SubjectPrefix)
	fmt.Fprintf(out, "  Interests:        %s\n", joinOrNone(cfg.Bridge.Interests))

	fmt.Fprintln(out, "\nHTTP:")
	fmt.Fprintf(out, "  Address:          %s\n", cfg.HTTP.Address)
	fmt.Fprintf(out, "  Read Timeout:     %s\n", cfg.HTTP.ReadTimeout)
	fmt.Fprintf(out, "  Write Timeout:    %s\n", cfg.HTTP.WriteTimeout)

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
	fmt.Fprintf(out, "  Path:             %s\n", cfg.Metrics.Path)

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)
}

// maskPassword hides the password of a URL with credentials
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	// u.User.String() is the escaped form as it appears in raw
	masked := url.User(u.User.Username()).String() + ":****@"
	if out := strings.Replace(raw, u.User.String()+"@", masked, 1); out != raw {
		return out
	}
	return u.Redacted()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}
