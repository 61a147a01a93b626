package toolpipe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isaext/internal/analysis"
	"isaext/internal/codesrc"
	"isaext/internal/disasm"
	"isaext/internal/feature"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
		ok   bool
	}{
		{"plain", "401000 main 55 push rbp", Record{0x401000, "main", "55", "push rbp"}, true},
		{"xed", "XDIS 401001: AVX2 C5FDFEC1 vpaddd ymm0, ymm0, ymm1", Record{0x401001, "AVX2", "c5fdfec1", "vpaddd ymm0, ymm0, ymm1"}, true},
		{"indented", "  10\tf\t0f0b\tud2  ", Record{0x10, "f", "0f0b", "ud2"}, true},
		{"blank", "", Record{}, false},
		{"header", "Disassembly of section .text:", Record{}, false},
		{"symbol", "0000000000401000 <main>:", Record{}, false},
		{"odd hex", "401000 main 5 push rbp", Record{}, false},
		{"no text", "401000 main 55", Record{}, false},
		{"summary", "# end of text section.", Record{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord(t *testing.T) {
	r := Record{Hex: "66480f6ec0", Text: "movq xmm0, rax"}
	assert.Equal(t, "MOVQ", r.Mnemonic())
	assert.Equal(t, []byte{0x66, 0x48, 0x0f, 0x6e, 0xc0}, r.Bytes())
	assert.Empty(t, Record{}.Mnemonic())
}

func TestParseISAExt(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []feature.ID
		ok   bool
	}{
		{"single", "ISA-EXT: AVX2", []feature.ID{feature.AVX2}, true},
		{"followed by field", "ICLASS: ANDN ISA-EXT: BMI1 CATEGORY: BMI1", []feature.ID{feature.BMI1}, true},
		{"comma", "ISA-EXT: SSE2,BMI1", []feature.ID{feature.SSE2, feature.BMI1}, true},
		{"plus and slash", "ISA-EXT: avx512f+avx512vl/sse4.2", []feature.ID{feature.SSE4_2, feature.AVX512F, feature.AVX512VL}, true},
		{"blanks", "ISA-EXT:  AES   AVX  ", []feature.ID{feature.AVX, feature.AES}, true},
		{"baseline", "ISA-EXT: BASE", nil, true},
		{"longmode", "ISA-EXT: LONGMODE\n", nil, true},
		{"unknown kept", "ISA-EXT: amx_complex", []feature.ID{"AMX_COMPLEX"}, true},
		{"compound name", "ISA-EXT: AVXAES", []feature.ID{feature.AES, feature.AVX}, true},
		{"vex encoded avx512", "ISA-EXT: AVX512VEX", []feature.ID{feature.AVX512F}, true},
		{"fp16", "ISA-EXT: AVX512_FP16", []feature.ID{feature.AVX512_FP16}, true},
		{"amx", "ISA-EXT: AMX_TILE", []feature.ID{feature.AMX_TILE}, true},
		{"multi line", "ICLASS: X\nISA-EXT: SSE2\nISA-EXT: SSSE3 ATTRIBUTES: NONE\n", []feature.ID{feature.SSE2, feature.SSSE3}, true},
		{"missing", "ERROR: could not decode", nil, false},
		{"empty", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseISAExt(tt.out)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, feature.NewSet(tt.want...).Equal(got), "got %s", got)
		})
	}
}

const listing = `
mixed.elf:     file format elf64-x86-64

Disassembly of section .text:

401000 main 55 push rbp
401001 main 660ffec1 paddd xmm0, xmm1
some free-form text the disassembler printed

401005 main c4e270f2c2 andn eax, ecx, edx
40100a main 0f0b ud2
40100c main c5fdfec1 vpaddd ymm0, ymm0, ymm1
401010 main c3 ret
# end
`

// fakeOracle answers from a table keyed by hex encoding.
func fakeOracle(calls *atomic.Int32) Oracle {
	table := map[string]feature.Set{
		"55":         feature.NewSet(),
		"660ffec1":   feature.NewSet(feature.SSE2),
		"c4e270f2c2": feature.NewSet(feature.SSE2, feature.BMI1),
		"c5fdfec1":   feature.NewSet(feature.AVX2),
		"c3":         feature.NewSet(),
	}
	return OracleFunc(func(_ context.Context, hex string, bits int) (feature.Set, error) {
		if calls != nil {
			calls.Add(1)
		}
		if bits != 64 {
			return nil, fmt.Errorf("unexpected bits %d", bits)
		}
		set, ok := table[hex]
		if !ok {
			return nil, &OracleError{Hex: hex, Err: ErrNoExtension}
		}
		return set.Clone(), nil
	})
}

func textSource(s string) Source {
	return SourceFunc(func(context.Context, string) (io.Reader, error) {
		return strings.NewReader(s), nil
	})
}

func TestPipe(t *testing.T) {
	var calls atomic.Int32
	p := &Pipe{Source: textSource(listing), Oracle: fakeOracle(&calls), Workers: 3}
	assert.Equal(t, "pipe", p.Name())

	r, err := p.Features(context.Background(), analysis.Input{Path: "mixed.elf"})
	require.NoError(t, err)

	assert.Equal(t, []feature.ID{feature.SSE2, feature.BMI1, feature.AVX2}, r.Set.Sorted())
	assert.Equal(t, int32(6), calls.Load())
	assert.Equal(t, 5, r.Instructions)
	assert.Equal(t, 1, r.Skipped, "ud2 is unknown to the oracle")
	assert.Equal(t, 2, r.Counts[feature.SSE2])
	assert.Equal(t, 64, r.Bits)

	w := r.Witnesses[feature.SSE2]
	assert.Equal(t, uint64(0x401001), w.Addr)
	assert.Equal(t, "PADDD", w.Mnemonic)
	assert.Equal(t, "paddd xmm0, xmm1", w.Text)
}

func TestPipeManyRecords(t *testing.T) {
	var b strings.Builder
	for i := range 1000 {
		fmt.Fprintf(&b, "%x f 660ffec1 paddd xmm0, xmm1\n", 0x1000+4*i)
		if i%7 == 0 {
			b.WriteString("\n-- noise --\n")
		}
	}
	b.WriteString("5000 f c5fdfec1 vpaddd ymm0, ymm0, ymm1\n")

	for _, workers := range []int{1, 4, 32} {
		p := &Pipe{Source: textSource(b.String()), Oracle: fakeOracle(nil), Workers: workers}
		r, err := p.Features(context.Background(), analysis.Input{})
		require.NoError(t, err)
		assert.Equal(t, []feature.ID{feature.SSE2, feature.AVX2}, r.Set.Sorted())
		assert.Equal(t, 1001, r.Instructions)
		assert.Equal(t, uint64(0x1000), r.Witnesses[feature.SSE2].Addr)
	}
}

func TestPipeEmptyListing(t *testing.T) {
	p := &Pipe{Source: textSource("\n\nno instructions here\n"), Oracle: fakeOracle(nil)}
	r, err := p.Features(context.Background(), analysis.Input{})
	require.NoError(t, err)
	assert.Zero(t, r.Set.Len())
	assert.Zero(t, r.Skipped)
}

func TestPipeBitsFromCode(t *testing.T) {
	var got atomic.Int32
	oracle := OracleFunc(func(_ context.Context, _ string, bits int) (feature.Set, error) {
		got.Store(int32(bits))
		return feature.NewSet(), nil
	})
	p := &Pipe{Source: textSource("10 f 90 nop\n"), Oracle: oracle, Bits: 64}
	_, err := p.Features(context.Background(), analysis.Input{Code: &codesrc.Code{Mode: disasm.Mode32}})
	require.NoError(t, err)
	assert.Equal(t, int32(32), got.Load())
}

func TestPipeErrors(t *testing.T) {
	boom := errors.New("boom")
	p := &Pipe{
		Source: SourceFunc(func(context.Context, string) (io.Reader, error) { return nil, boom }),
		Oracle: fakeOracle(nil),
	}
	_, err := p.Features(context.Background(), analysis.Input{Path: "x"})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p = &Pipe{
		Source: textSource(listing),
		Oracle: OracleFunc(func(ctx context.Context, hex string, _ int) (feature.Set, error) {
			return nil, ctx.Err()
		}),
	}
	_, err = p.Features(ctx, analysis.Input{})
	assert.ErrorIs(t, err, context.Canceled)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestExecOracle(t *testing.T) {
	script := writeScript(t, `
case "$3" in
  c5fdfec1) echo "ICLASS: VPADDD ISA-EXT: AVX2 ISA-SET: AVX2" ;;
  bad) echo "cannot decode" >&2; exit 1 ;;
  *) echo "nothing useful" ;;
esac
test "$1" = "-64" || exit 2
`)
	o := &ExecOracle{Command: script + " -{bits} -d {hex}"}

	set, err := o.Classify(context.Background(), "c5fdfec1", 64)
	require.NoError(t, err)
	assert.Equal(t, []feature.ID{feature.AVX2}, set.Sorted())

	_, err = o.Classify(context.Background(), "bad", 64)
	var oe *OracleError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "bad", oe.Hex)
	assert.Contains(t, err.Error(), "cannot decode")

	_, err = o.Classify(context.Background(), "90", 64)
	assert.ErrorIs(t, err, ErrNoExtension)

	_, err = (&ExecOracle{Command: "  "}).Classify(context.Background(), "90", 64)
	require.ErrorAs(t, err, &oe)
}

func TestExecSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listing.txt")
	require.NoError(t, os.WriteFile(path, []byte(listing), 0o644))
	script := writeScript(t, `exec cat "$1"`)

	out, err := (&ExecSource{Command: script + " {path}"}).Disassemble(context.Background(), path)
	require.NoError(t, err)
	recs, err := ParseLines(out)
	require.NoError(t, err)
	require.Len(t, recs, 6)
	assert.Equal(t, "ud2", recs[3].Text)

	_, err = (&ExecSource{Command: script + " {path}"}).Disassemble(context.Background(), filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
