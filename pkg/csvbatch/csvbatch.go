package csvbatch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/urlfreezer/internal/domain"
	"github.com/bft-labs/urlfreezer/pkg/log"
)

// Resolver resolves a single link. *client.Client satisfies it.
type Resolver interface {
	FetchLink(ctx context.Context, link string, page, label *string) (*domain.LinkInfo, error)
}

// Report counts what happened to the input rows.
type Report struct {
	// Rows is the number of data records read, including skipped ones.
	Rows int
	// Written is the number of output rows emitted.
	Written int
	// NoMatch is the number of rows the service had no match for.
	NoMatch int
	// Skipped is the number of rows that could not be decoded.
	Skipped int
}

// Option configures Process.
type Option func(*options)

type options struct {
	strict bool
	logger log.Logger
}

// WithStrictRows makes an undecodable row abort the run with domain.ErrRowDecode
// instead of being skipped.
func WithStrictRows() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger sets the logger used for skipped-row diagnostics.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Process reads CSV rows from r, resolves each with resolver in input order
// and writes one output row per match to w.
//
// The output header is written together with the first output row.
func Process(ctx context.Context, resolver Resolver, r io.Reader, w io.Writer, opts ...Option) (Report, error) {
	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	p := &processor{
		resolver: resolver,
		in:       csv.NewReader(r),
		out:      csv.NewWriter(w),
		opts:     o,
	}
	p.in.ReuseRecord = true

	err := p.run(ctx)
	if ferr := p.flush(); err == nil {
		err = ferr
	}
	return p.report, err
}

type processor struct {
	resolver Resolver
	in       *csv.Reader
	out      *csv.Writer
	opts     options
	report   Report
	cols     columns
	headed   bool
}

func (p *processor) run(ctx context.Context) error {
	header, err := p.in.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return domain.Wrap(domain.ErrIO, "read header", err)
	}
	p.cols = newColumns(header)
	p.opts.logger.Debug("reading rows",
		log.Int("columns", len(header)),
		log.Bool("strict", p.opts.strict),
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := p.in.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		p.report.Rows++

		var pe *csv.ParseError
		if errors.As(err, &pe) {
			if err := p.skip(pe.StartLine, err); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return domain.Wrap(domain.ErrIO, "read input", err)
		}

		line, _ := p.in.FieldPos(0)
		row, err := p.cols.decode(record)
		if err != nil {
			if err := p.skip(line, err); err != nil {
				return err
			}
			continue
		}

		if err := p.resolve(ctx, line, row); err != nil {
			return err
		}
	}
}

func (p *processor) skip(line int, cause error) error {
	if p.opts.strict {
		return domain.Wrap(domain.ErrRowDecode, fmt.Sprintf("line %d", line), cause)
	}
	p.report.Skipped++
	p.opts.logger.Debug("skipping undecodable row", log.Int("line", line), log.Err(cause))
	return nil
}

func (p *processor) resolve(ctx context.Context, line int, row InputRow) error {
	info, err := p.resolver.FetchLink(ctx, row.Link, domain.Optional(row.Page), domain.Optional(row.Label))
	if err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	if info == nil {
		p.report.NoMatch++
		return nil
	}

	if !p.headed {
		if err := p.out.Write(OutputHeader); err != nil {
			return domain.Wrap(domain.ErrIO, "write header", err)
		}
		p.headed = true
	}
	if err := p.out.Write(NewOutputRow(row, *info).Record()); err != nil {
		return domain.Wrap(domain.ErrIO, fmt.Sprintf("write row for line %d", line), err)
	}
	p.report.Written++
	return nil
}

func (p *processor) flush() error {
	p.out.Flush()
	if err := p.out.Error(); err != nil {
		return domain.Wrap(domain.ErrIO, "flush output", err)
	}
	return nil
}
