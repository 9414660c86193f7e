package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/urlfreezer/internal/cliconfig"
)

const longHelp = `Freeze links through the urlfreezer service.

Reads CSV rows with the columns page, link and label, resolves every link
to a stable urlfreezer link and writes rows with the columns page, original,
label, link and action. Rows that cannot be parsed are skipped unless
--strict is set.`

var exampleUsage = strings.TrimSpace(`
  urlfreezer --user-id <id> --input-file links.csv --output-file frozen.csv
  cat links.csv | urlfreezer -u <id> > frozen.csv
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:          "urlfreezer",
		Short:        "Client CLI for the urlfreezer service",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			ec, err := cliconfig.LoadEnvConfig()
			if err != nil {
				return err
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, ec, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), newLogger(cfg.Verbose))
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.urlfreezer/config.toml)")
	root.Flags().StringVarP(&cfg.UserID, "user-id", "u", cfg.UserID, "urlfreezer user identifier (required)")
	root.Flags().StringVarP(&cfg.InputFile, "input-file", "i", cfg.InputFile, "input CSV file (default: stdin)")
	root.Flags().StringVarP(&cfg.OutputFile, "output-file", "o", cfg.OutputFile, "output CSV file (default: stdout)")
	root.Flags().StringVar(&cfg.Host, "host", cfg.Host, "urlfreezer service address")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout per request")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail on the first unparsable input row")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	return root
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log := newLogger(false)
		log.Error().Err(err).Msg("urlfreezer")
		stop()
		os.Exit(1)
	}
}
