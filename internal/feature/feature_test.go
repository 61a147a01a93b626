package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want ID
		ok   bool
	}{
		{"SSE4_2", SSE4_2, true},
		{"sse4.2", SSE4_2, true},
		{"SSE42", SSE4_2, true},
		{"sse4_2", SSE4_2, true},
		{"avx512vnni", AVX512_VNNI, true},
		{"AVX512_VNNI", AVX512_VNNI, true},
		{"avx512-vpopcntdq", AVX512_VPOPCNT, true},
		{"aes", AES, true},
		{"AESNI", AES, true},
		{"FMA3", FMA, true},
		{"x87", FPU, true},
		{"3dnow", D3NOW, true},
		{"AMD3DNOW", D3NOW, true},
		{"CMPXCHG16B", CX16, true},
		{"ibt", CET_IBT, true},
		{"LZCNT", LZCNT, true},
		{"abm", LZCNT, true},
		{"", "", false},
		{"  ", "", false},
		{"AMX_TILE", AMX_TILE, true},
		{"avx512vp2intersect", AVX512_VP2INT, true},
		{"MOVDIR", MOVDIRI, true},
		{"AVX512VEX", AVX512F, true},
		{"AMX_COMPLEX", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabulary(t *testing.T) {
	seen := map[ID]bool{}
	for _, info := range All {
		require.False(t, seen[info.ID], "duplicate %s", info.ID)
		seen[info.ID] = true
		assert.NotEmpty(t, info.Description, "%s", info.ID)
		assert.True(t, Known(info.ID))

		got, ok := Parse(string(info.ID))
		assert.True(t, ok)
		assert.Equal(t, info.ID, got, "canonical names parse to themselves")
	}
	assert.False(t, Known("sse2"), "lower case is not canonical")
	assert.Empty(t, Describe("NOPE"))
	assert.Equal(t, "SSE4.2", Describe(SSE4_2))
}

func TestParseAll(t *testing.T) {
	tests := []struct {
		in   string
		want []ID
		ok   bool
	}{
		{"AVXAES", []ID{AES, AVX}, true},
		{"avx_aes", []ID{AES, AVX}, true},
		{"AVX512EVEX", []ID{AVX512F}, true},
		{"sse4.2", []ID{SSE4_2}, true},
		{"AMX_COMPLEX", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAll(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	// The expansion is a copy.
	got, _ := ParseAll("AVXAES")
	got[0] = SHA
	again, _ := ParseAll("AVXAES")
	assert.Equal(t, AES, again[0])
}

func TestIsBaseline(t *testing.T) {
	for _, name := range []string{"BASE", "longmode", "I386", "INTEL386", "i486"} {
		assert.True(t, IsBaseline(name), name)
	}
	for _, name := range []string{"SSE", "AVX2", "X87"} {
		assert.False(t, IsBaseline(name), name)
	}
}

func TestSet(t *testing.T) {
	a := NewSet(AVX2, SSE2)
	b := NewSet(SSE2, BMI1)

	assert.True(t, a.Has(AVX2))
	assert.False(t, a.Has(BMI1))
	assert.Equal(t, 2, a.Len())

	c := a.Clone().Union(b)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, a.Len(), "clone is independent")
	assert.True(t, c.Equal(NewSet(BMI1, SSE2, AVX2)))
	assert.False(t, c.Equal(a))

	c.Add(SSE2, "ZZZ", "AAA")
	assert.Equal(t, []ID{SSE2, BMI1, AVX2, "AAA", "ZZZ"}, c.Sorted())
	assert.Equal(t, "SSE2  BMI1  AVX2  AAA  ZZZ", c.String())
	assert.Empty(t, NewSet().Strings())
}

func TestSetUnionOrderIndependent(t *testing.T) {
	parts := []Set{NewSet(SSE2), NewSet(AVX2, BMI1), NewSet(), NewSet(SSE2, POPCNT)}
	forward := NewSet()
	for _, p := range parts {
		forward.Union(p)
	}
	backward := NewSet()
	for i := len(parts) - 1; i >= 0; i-- {
		backward.Union(parts[i])
	}
	assert.True(t, forward.Equal(backward))
	assert.Equal(t, forward.Sorted(), backward.Sorted())
}
