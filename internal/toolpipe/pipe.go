package toolpipe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"isaext/internal/analysis"
)

// recordsPerTask is the number of records one oracle worker handles before
// picking up the next batch.
const recordsPerTask = 64

// Source produces the disassembly listing of a binary.
type Source interface {
	Disassemble(ctx context.Context, path string) (io.Reader, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, path string) (io.Reader, error)

func (f SourceFunc) Disassemble(ctx context.Context, path string) (io.Reader, error) {
	return f(ctx, path)
}

// ExecSource runs a disassembler command. {path} in Command is
// substituted.
type ExecSource struct {
	Command string
}

func (s *ExecSource) Disassemble(ctx context.Context, path string) (io.Reader, error) {
	tmpl := s.Command
	if tmpl == "" {
		tmpl = DefaultDisassembler
	}
	out, err := run(ctx, tmpl, strings.NewReplacer("{path}", path))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(out), nil
}

// Pipe is the backend built on external tools.
type Pipe struct {
	Source  Source
	Oracle  Oracle
	Workers int
	// Bits is used when the input carries no code to derive it from.
	Bits int
}

func (p *Pipe) Name() string { return "pipe" }

// Features lists the instructions of in.Path and asks the oracle about
// each one concurrently. Instructions the oracle fails on are skipped and
// counted.
func (p *Pipe) Features(ctx context.Context, in analysis.Input) (analysis.Result, error) {
	bits := p.Bits
	if in.Code != nil {
		bits = in.Code.Mode.Bits()
	}
	if bits == 0 {
		bits = 64
	}

	out, err := p.Source.Disassemble(ctx, in.Path)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("disassemble %s: %w", in.Path, err)
	}
	recs, err := ParseLines(out)
	if err != nil {
		return analysis.Result{}, err
	}
	slog.Debug("Parsed disassembly", "path", in.Path, "records", len(recs), "bits", bits)

	workers := p.Workers
	if workers <= 0 {
		workers = analysis.DefaultWorkers()
	}
	var batches [][]Record
	for len(recs) > recordsPerTask {
		batches = append(batches, recs[:recordsPerTask])
		recs = recs[recordsPerTask:]
	}
	if len(recs) > 0 {
		batches = append(batches, recs)
	}

	parts := make([]analysis.Result, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, batch := range batches {
		g.Go(func() error {
			r, err := p.classify(gctx, batch, bits)
			parts[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return analysis.Result{}, err
	}

	res := analysis.NewResult()
	for _, part := range parts {
		res.Merge(part)
	}
	res.Bits = bits
	if in.Code != nil && len(in.Code.Symbols) > 0 {
		analysis.NewSymbolTable(in.Code.Symbols).Attribute(&res)
	}
	if res.Skipped > 0 {
		slog.Debug("Oracle skipped instructions", "skipped", res.Skipped, "classified", res.Instructions)
	}
	return res, nil
}

func (p *Pipe) classify(ctx context.Context, batch []Record, bits int) (analysis.Result, error) {
	r := analysis.NewResult()
	for _, rec := range batch {
		set, err := p.Oracle.Classify(ctx, rec.Hex, bits)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return r, ctxErr
			}
			var oe *OracleError
			if !errors.As(err, &oe) {
				err = &OracleError{Hex: rec.Hex, Err: err}
			}
			slog.Debug("Skipping instruction", "addr", fmt.Sprintf("%#x", rec.Addr), "err", err)
			r.Skipped++
			continue
		}
		r.Instructions++
		r.Record(analysis.Witness{
			Addr:     rec.Addr,
			Mnemonic: rec.Mnemonic(),
			Text:     rec.Text,
			Raw:      rec.Bytes(),
		}, set)
	}
	return r, nil
}
