package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/urlfreezer/internal/cliconfig"
	"github.com/bft-labs/urlfreezer/internal/domain"
	"github.com/bft-labs/urlfreezer/pkg/client"
	"github.com/bft-labs/urlfreezer/pkg/csvbatch"
	"github.com/bft-labs/urlfreezer/pkg/log"
)

// run streams the configured input through the service into the configured output.
// stdin and stdout are used when no file is configured.
func run(ctx context.Context, cfg cliconfig.Config, stdin io.Reader, stdout io.Writer, zl zerolog.Logger) error {
	logger := log.NewZerologAdapterWithLogger(zl)

	c, err := client.ConnectHost(cfg.Host, cfg.UserID,
		client.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		client.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.InputFile != "" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return domain.Wrap(domain.ErrIO, "open input", err)
		}
		defer f.Close()
		in = f
	}

	out := stdout
	var outFile *os.File
	if cfg.OutputFile != "" {
		outFile, err = os.Create(cfg.OutputFile)
		if err != nil {
			return domain.Wrap(domain.ErrIO, "create output", err)
		}
		defer outFile.Close()
		out = outFile
	}

	zl.Debug().
		Str("endpoint", c.Endpoint()).
		Str("input", displayPath(cfg.InputFile, "stdin")).
		Str("output", displayPath(cfg.OutputFile, "stdout")).
		Bool("strict", cfg.Strict).
		Msg("configuration")

	opts := []csvbatch.Option{csvbatch.WithLogger(logger)}
	if cfg.Strict {
		opts = append(opts, csvbatch.WithStrictRows())
	}

	report, err := csvbatch.Process(ctx, c, in, out, opts...)
	if err != nil {
		return err
	}

	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return domain.Wrap(domain.ErrIO, "close output", err)
		}
	}

	zl.Info().
		Int("rows", report.Rows).
		Int("written", report.Written).
		Int("no_match", report.NoMatch).
		Int("skipped", report.Skipped).
		Msg("done")
	return nil
}

func displayPath(p, fallback string) string {
	if p == "" {
		return fallback
	}
	return fmt.Sprintf("%q", p)
}
