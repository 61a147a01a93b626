package analysis

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isaext/internal/classify"
	"isaext/internal/codesrc"
	"isaext/internal/disasm"
	"isaext/internal/feature"
)

func hexBytes(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

var classifier = ClassifierFunc(classify.Classify)

// mixed is a 64-bit blob touching several extensions.
const mixed = "90" + // nop
	"66 0f fe c1" + // paddd xmm
	"c5 fd fe c1" + // vpaddd ymm
	"c4 e2 70 f2 c2" + // andn
	"f3 0f b8 c1" + // popcnt
	"0f fe c1" + // paddd mm
	"62 f1 7d 48 fe c1" + // vpaddd zmm
	"c3" // ret

func decodeMixed(t testing.TB, copies int) disasm.Stream {
	t.Helper()
	blob := bytes.Repeat(hexBytes(t, mixed), copies)
	s, err := disasm.DecodeAll(blob, disasm.Mode64)
	require.NoError(t, err)
	return s
}

func TestFoldScenarios(t *testing.T) {
	tests := []struct {
		name  string
		blob  string
		insts int
		want  []feature.ID
	}{
		{"empty", "", 0, nil},
		{"baseline", "90", 1, nil},
		{"avx2", "c5 fd fe c1", 1, []feature.ID{feature.AVX2}},
		{"sse2 then bmi1", "66 0f fe c1 c4 e2 70 f2 c2", 2, []feature.ID{feature.SSE2, feature.BMI1}},
		{"duplicates", "66 0f fe c1 66 0f fe c1", 2, []feature.ID{feature.SSE2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := disasm.DecodeAll(hexBytes(t, tt.blob), disasm.Mode64)
			require.NoError(t, err)
			require.Len(t, s, tt.insts)

			r, err := Fold(s, classifier)
			require.NoError(t, err)
			assert.Equal(t, tt.insts, r.Instructions)
			assert.True(t, r.Set.Equal(feature.NewSet(tt.want...)), "got %s", r.Set)
		})
	}
}

func TestFoldDeduplicatesOverlappingSets(t *testing.T) {
	sets := []feature.Set{
		feature.NewSet(feature.SSE2),
		feature.NewSet(feature.SSE2, feature.BMI1),
	}
	c := ClassifierFunc(func(in disasm.Inst) (feature.Set, error) {
		return sets[in.Offset].Clone(), nil
	})
	r, err := Fold(disasm.Stream{{Offset: 0, Len: 1}, {Offset: 1, Len: 1}}, c)
	require.NoError(t, err)

	assert.Equal(t, []feature.ID{feature.SSE2, feature.BMI1}, r.Set.Sorted())
	assert.Equal(t, 2, r.Counts[feature.SSE2])
	assert.Equal(t, 1, r.Counts[feature.BMI1])
	assert.Equal(t, uint64(0), r.Witnesses[feature.SSE2].Addr)
	assert.Equal(t, uint64(1), r.Witnesses[feature.BMI1].Addr)
}

func TestFoldStopsAtGap(t *testing.T) {
	boom := errors.New("boom")
	c := ClassifierFunc(func(in disasm.Inst) (feature.Set, error) {
		if in.Offset == 1 {
			return nil, boom
		}
		return feature.NewSet(), nil
	})
	_, err := Fold(disasm.Stream{{Offset: 0}, {Offset: 1}, {Offset: 2}}, c)
	assert.ErrorIs(t, err, boom)
}

func TestChunk(t *testing.T) {
	s := decodeMixed(t, 3)
	n := len(s)
	for _, size := range []int{-1, 0, 1, 2, 7, n - 1, n, n + 5} {
		chunks := Chunk(s, size)
		var joined disasm.Stream
		for _, c := range chunks {
			require.NotEmpty(t, c)
			if size > 0 {
				assert.LessOrEqual(t, len(c), size)
			}
			joined = append(joined, c...)
		}
		assert.Equal(t, s, joined, "size %d", size)
	}
	assert.Nil(t, Chunk(nil, 4))
}

func TestChunkDoesNotAlias(t *testing.T) {
	s := decodeMixed(t, 1)
	chunks := Chunk(s, 2)
	require.Greater(t, len(chunks), 1)
	first := append(chunks[0], disasm.Inst{Op: disasm.OpInvalid})
	assert.Equal(t, s[2], chunks[1][0])
	assert.Len(t, first, 3)
}

func TestParallelMatchesFold(t *testing.T) {
	s := decodeMixed(t, 500)
	want, err := Fold(s, classifier)
	require.NoError(t, err)

	for _, tc := range []struct{ workers, chunk int }{
		{1, 0}, {2, 1}, {4, 3}, {8, 64}, {3, 1000}, {16, len(s)},
	} {
		got, err := Parallel(context.Background(), s, classifier, tc.workers, tc.chunk)
		require.NoError(t, err)
		assert.True(t, want.Set.Equal(got.Set), "workers=%d chunk=%d", tc.workers, tc.chunk)
		assert.Equal(t, want.Counts, got.Counts)
		assert.Equal(t, want.Witnesses, got.Witnesses)
		assert.Equal(t, want.Instructions, got.Instructions)
	}
}

func TestParallelEmpty(t *testing.T) {
	r, err := Parallel(context.Background(), nil, classifier, 4, 1)
	require.NoError(t, err)
	assert.Zero(t, r.Set.Len())
	assert.Zero(t, r.Instructions)
}

func TestParallelPropagatesError(t *testing.T) {
	s := decodeMixed(t, 50)
	c := ClassifierFunc(func(in disasm.Inst) (feature.Set, error) {
		if in.Offset > 200 {
			return nil, &classify.GapError{Offset: in.Offset, Identity: "test"}
		}
		return classify.Classify(in)
	})
	_, err := Parallel(context.Background(), s, c, 4, 8)
	assert.ErrorIs(t, err, classify.ErrClassificationGap)
}

func TestParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parallel(ctx, decodeMixed(t, 50), classifier, 2, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParallelFoldsSingleChunkInline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := decodeMixed(t, 2)
	want, err := Fold(s, classifier)
	require.NoError(t, err)

	// One chunk is below MinParallel and never reaches the worker group.
	got, err := Parallel(ctx, s, classifier, 4, len(s))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Parallel(ctx, s, classifier, 4, (len(s)+1)/MinParallel)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMergeIsIdempotentForSets(t *testing.T) {
	r, err := Fold(decodeMixed(t, 2), classifier)
	require.NoError(t, err)

	twice := NewResult()
	twice.Merge(r)
	twice.Merge(r)
	assert.True(t, r.Set.Equal(twice.Set))
	assert.Equal(t, r.Witnesses, twice.Witnesses)
	assert.Equal(t, 2*r.Instructions, twice.Instructions)

	again, err := Fold(decodeMixed(t, 2), classifier)
	require.NoError(t, err)
	assert.Equal(t, r, again)
}

func TestMergeOrderIndependent(t *testing.T) {
	s := decodeMixed(t, 4)
	var parts []Result
	for _, c := range Chunk(s, 5) {
		r, err := Fold(c, classifier)
		require.NoError(t, err)
		parts = append(parts, r)
	}
	forward, backward := NewResult(), NewResult()
	for i := range parts {
		forward.Merge(parts[i])
		backward.Merge(parts[len(parts)-1-i])
	}
	assert.Equal(t, forward, backward)
}

func TestNative(t *testing.T) {
	blob := hexBytes(t, "90 66 0f fe c1 c3 c5 fd fe c1 c3")
	code := &codesrc.Code{
		Blob:    blob,
		Mode:    disasm.Mode64,
		Addr:    0x401000,
		Section: ".text",
		Symbols: []codesrc.Symbol{
			{Name: "main", Addr: 0x401000, Size: 6},
			{Name: "_Z4haxxv", Addr: 0x401006},
		},
	}
	n := &Native{Workers: 2, ChunkSize: 1}
	assert.Equal(t, "native", n.Name())

	r, err := n.Features(context.Background(), Input{Path: "a.out", Code: code})
	require.NoError(t, err)

	assert.Equal(t, []feature.ID{feature.SSE2, feature.AVX2}, r.Set.Sorted())
	assert.Equal(t, 5, r.Instructions)
	assert.Equal(t, 64, r.Bits)

	sse2 := r.Witnesses[feature.SSE2]
	assert.Equal(t, uint64(0x401001), sse2.Addr)
	assert.Equal(t, "PADDD", sse2.Mnemonic)
	assert.Equal(t, "main+0x1", sse2.Symbol)
	assert.Equal(t, hexBytes(t, "66 0f fe c1"), sse2.Raw)

	avx2 := r.Witnesses[feature.AVX2]
	assert.Equal(t, uint64(0x401006), avx2.Addr)
	assert.Equal(t, "VPADDD", avx2.Mnemonic)
	assert.Equal(t, "haxx()", avx2.Symbol)
}

func TestNativeErrors(t *testing.T) {
	n := &Native{}

	_, err := n.Features(context.Background(), Input{Path: "a.out"})
	require.Error(t, err)

	code := &codesrc.Code{Blob: hexBytes(t, "90 90 0f"), Mode: disasm.Mode64, Addr: 0x1000, Section: ".text"}
	_, err = n.Features(context.Background(), Input{Code: code})
	require.ErrorIs(t, err, disasm.ErrTruncated)
	var de *disasm.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Offset)
	assert.Contains(t, err.Error(), "0x1002")

	gap := &Native{Classifier: ClassifierFunc(func(in disasm.Inst) (feature.Set, error) {
		return nil, &classify.GapError{Offset: in.Offset, Identity: in.Identity()}
	})}
	code = &codesrc.Code{Blob: hexBytes(t, "90"), Mode: disasm.Mode64, Addr: 0x2000, Section: ".text"}
	_, err = gap.Features(context.Background(), Input{Code: code})
	require.ErrorIs(t, err, classify.ErrClassificationGap)
	assert.Contains(t, err.Error(), "0x2000")
}

func TestNativeEmptyCode(t *testing.T) {
	code := &codesrc.Code{Mode: disasm.Mode32, Section: ".text"}
	r, err := (&Native{}).Features(context.Background(), Input{Code: code})
	require.NoError(t, err)
	assert.Zero(t, r.Set.Len())
	assert.Zero(t, r.Instructions)
}

func TestSymbolTable(t *testing.T) {
	tab := NewSymbolTable([]codesrc.Symbol{
		{Name: "b", Addr: 0x200},
		{Name: "a", Addr: 0x100, Size: 0x10},
		{Name: "_ZN3foo3barEv", Addr: 0x300, Size: 0x20},
	})
	tests := []struct {
		addr uint64
		want string
	}{
		{0x0ff, ""},
		{0x100, "a"},
		{0x10f, "a+0xf"},
		{0x110, ""},
		{0x250, "b+0x50"},
		{0x2ff, "b+0xff"},
		{0x304, "foo::bar()+0x4"},
		{0x320, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tab.Name(tt.addr), "%#x", tt.addr)
	}
}

func TestAttributeLogsDemangleStats(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	tab := NewSymbolTable([]codesrc.Symbol{{Name: "_ZN2ns4workEv", Addr: 0x100, Size: 0x40}})
	r := NewResult()
	r.Witnesses[feature.SSE2] = Witness{Addr: 0x104}
	r.Witnesses[feature.AVX2] = Witness{Addr: 0x110}
	tab.Attribute(&r)

	assert.Equal(t, "ns::work()+0x4", r.Witnesses[feature.SSE2].Symbol)
	assert.Equal(t, "ns::work()+0x10", r.Witnesses[feature.AVX2].Symbol)
	out := buf.String()
	assert.Contains(t, out, "Attributed witnesses")
	assert.Contains(t, out, "witnesses=2")
	assert.Contains(t, out, "hits=")

	buf.Reset()
	empty := NewResult()
	tab.Attribute(&empty)
	assert.Empty(t, buf.String())
}

func TestCachedDemangle(t *testing.T) {
	assert.Equal(t, "main", CachedDemangle("main"))
	assert.Equal(t, "ns::f(int)", CachedDemangle("_ZN2ns1fEi"))
	assert.Equal(t, "ns::f(int)", CachedDemangle("_ZN2ns1fEi"))

	entries, hits, top := DemangleCacheStats()
	assert.GreaterOrEqual(t, entries, 2)
	assert.GreaterOrEqual(t, hits, 1)
	assert.NotEmpty(t, top)
}
