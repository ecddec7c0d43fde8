// Command webscalectl is a console for the Webscale address-set API: one
// subcommand per remote operation, plus the idempotent membership commands
// and a connectivity test. It is thin plumbing over the SDK; all real
// behavior lives in the webscale package.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	webscale "github.com/webscale/client-go"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

func main() {
	cfg := &Config{}
	var flagURL, flagAPIKey string
	var flagTimeout time.Duration
	var flagDebug bool

	root := &cobra.Command{
		Use:           "webscalectl",
		Short:         "Manage Webscale address sets (blocklists, throttle lists)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig()
			if err != nil {
				return err
			}
			*cfg = *loaded

			// Flags override file/env config.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if changed["url"] {
				cfg.BaseURL = flagURL
			}
			if changed["api-key"] {
				cfg.APIKey = flagAPIKey
			}
			if changed["timeout"] {
				cfg.Timeout = flagTimeout
			}
			if changed["debug"] {
				cfg.Debug = flagDebug
			}

			if cfg.Debug {
				logger = logger.Level(zerolog.DebugLevel)
			}
			logger.Debug().Interface("config", cfg.masked()).Msg("configuration")

			return cfg.Validate()
		},
	}

	root.PersistentFlags().StringVar(&flagURL, "url", "", "base URL of the Webscale API (env: WEBSCALE_URL)")
	root.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key for authentication (env: WEBSCALE_API_KEY)")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "HTTP request timeout (env: WEBSCALE_TIMEOUT)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging (env: WEBSCALE_DEBUG)")

	root.AddCommand(
		newSetsCommand(cfg),
		newSetCommand(cfg),
		newMembersCommand(cfg),
		newIsMemberCommand(cfg, "is-member", "Check whether an address is a member of an address set"),
		newIsMemberCommand(cfg, "is-blocked", "Check whether an address is on a blocklist set"),
		newIsMemberCommand(cfg, "is-throttled", "Check whether an address is on a throttle-list set"),
		newAddMemberCommand(cfg),
		newTestCommand(cfg),
	)

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("webscalectl")
		os.Exit(1)
	}
}

// newClient builds an SDK client from the CLI configuration.
func newClient(cfg *Config) (*webscale.Client, error) {
	opts := []webscale.Option{webscale.WithTimeout(cfg.Timeout)}
	if cfg.APIKey != "" {
		opts = append(opts, webscale.WithAPIKey(cfg.APIKey))
	}
	return webscale.New(cfg.BaseURL, opts...)
}

// commandContext returns the context for a single command invocation.
func commandContext(cfg *Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.Timeout+5*time.Second)
}

func printBool(v bool) {
	fmt.Println(v)
}
