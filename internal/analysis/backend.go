package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"isaext/internal/classify"
	"isaext/internal/codesrc"
	"isaext/internal/disasm"
)

// Backend computes the feature report for one binary.
type Backend interface {
	Name() string
	Features(ctx context.Context, in Input) (Result, error)
}

// Input is what a backend analyses. Code is nil for backends that read
// the file themselves.
type Input struct {
	Path string
	Code *codesrc.Code
}

// Native decodes and classifies the code region in process.
type Native struct {
	Classifier Classifier
	Workers    int
	ChunkSize  int
}

func (n *Native) Name() string { return "native" }

func (n *Native) Features(ctx context.Context, in Input) (Result, error) {
	code := in.Code
	if code == nil {
		return Result{}, fmt.Errorf("%s: no code loaded", in.Path)
	}
	c := n.Classifier
	if c == nil {
		c = ClassifierFunc(classify.Classify)
	}

	stream, err := disasm.DecodeAll(code.Blob, code.Mode)
	if err != nil {
		var de *disasm.DecodeError
		if errors.As(err, &de) {
			return Result{}, fmt.Errorf("decode %s at %#x: %w", code.Section, code.Addr+uint64(de.Offset), err)
		}
		return Result{}, fmt.Errorf("decode %s: %w", code.Section, err)
	}
	slog.Debug("Decoded code", "section", code.Section, "instructions", len(stream), "bytes", len(code.Blob))

	res, err := Parallel(ctx, stream, c, n.Workers, n.ChunkSize)
	if err != nil {
		var ge *classify.GapError
		if errors.As(err, &ge) {
			return Result{}, fmt.Errorf("classify at %#x: %w", code.Addr+uint64(ge.Offset), err)
		}
		return Result{}, err
	}
	res.Bits = code.Mode.Bits()
	res.Rebase(code.Addr)
	if len(code.Symbols) > 0 {
		NewSymbolTable(code.Symbols).Attribute(&res)
	}
	return res, nil
}
