package analysis

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"isaext/internal/disasm"
	"isaext/internal/feature"
)

// Classifier maps a decoded instruction to the features it requires.
type Classifier interface {
	Classify(in disasm.Inst) (feature.Set, error)
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(disasm.Inst) (feature.Set, error)

func (f ClassifierFunc) Classify(in disasm.Inst) (feature.Set, error) { return f(in) }

// Fold classifies stream in order and accumulates the result.
func Fold(stream disasm.Stream, c Classifier) (Result, error) {
	r := NewResult()
	for _, in := range stream {
		set, err := c.Classify(in)
		if err != nil {
			return Result{}, err
		}
		r.Observe(in, set)
	}
	return r, nil
}

// Chunk splits stream into contiguous pieces of at most size instructions.
// A non-positive size yields a single chunk. The chunks share the backing
// array of stream.
func Chunk(stream disasm.Stream, size int) []disasm.Stream {
	if len(stream) == 0 {
		return nil
	}
	if size <= 0 || size >= len(stream) {
		return []disasm.Stream{stream}
	}
	chunks := make([]disasm.Stream, 0, (len(stream)+size-1)/size)
	for len(stream) > size {
		chunks = append(chunks, stream[:size:size])
		stream = stream[size:]
	}
	return append(chunks, stream)
}

// Parallel classifies stream on up to workers goroutines. Every chunk is
// folded into its own Result and the results are merged afterwards on the
// calling goroutine.
func Parallel(ctx context.Context, stream disasm.Stream, c Classifier, workers, chunkSize int) (Result, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	chunks := Chunk(stream, chunkSize)
	if workers == 1 || len(chunks) < MinParallel {
		return Fold(stream, c)
	}
	slog.Debug("Classifying in parallel", "instructions", len(stream), "chunks", len(chunks), "workers", workers)

	parts := make([]Result, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Fold(chunk, c)
			if err != nil {
				return err
			}
			parts[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	total := NewResult()
	for _, p := range parts {
		total.Merge(p)
	}
	return total, nil
}
