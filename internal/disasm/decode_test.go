package disasm

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"
)

func hx(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

func TestDecodeSingle(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		mode     Mode
		op       Op
		enc      Encoding
		length   int
		mnemonic string
	}{
		{"nop", "90", Mode64, NOP, EncLegacy, 1, "NOP"},
		{"multi-byte nop", "0f 1f 44 00 00", Mode64, NOP, EncLegacy, 5, "NOP"},
		{"movabs", "48 b8 88 77 66 55 44 33 22 11", Mode64, MOV, EncLegacy, 10, "MOV"},
		{"mov imm16 with 66", "66 b8 34 12", Mode64, MOV, EncLegacy, 4, "MOV"},
		{"mov imm16 in 16-bit", "b8 34 12", Mode16, MOV, EncLegacy, 3, "MOV"},
		{"mov imm32 in 16-bit with 66", "66 b8 78 56 34 12", Mode16, MOV, EncLegacy, 6, "MOV"},
		{"call rel32 ignores 66 in 64-bit", "66 e8 00 00 00 00", Mode64, CALL, EncLegacy, 6, "CALL"},
		{"call rel16 in 16-bit", "e8 00 00", Mode16, CALL, EncLegacy, 3, "CALL"},
		{"rip relative", "8b 05 00 00 00 00", Mode64, MOV, EncLegacy, 6, "MOV"},
		{"sib without base", "8b 04 25 00 00 00 00", Mode64, MOV, EncLegacy, 7, "MOV"},
		{"16-bit bp disp8", "8b 46 02", Mode16, MOV, EncLegacy, 3, "MOV"},
		{"16-bit direct", "8b 06 34 12", Mode16, MOV, EncLegacy, 4, "MOV"},
		{"32-bit addressing in 16-bit", "66 67 8b 44 24 04", Mode16, MOV, EncLegacy, 6, "MOV"},
		{"moffs 64", "a1 00 00 00 00 00 00 00 00", Mode64, MOV, EncLegacy, 9, "MOV"},
		{"moffs 32 with 67", "67 a1 00 00 00 00", Mode64, MOV, EncLegacy, 6, "MOV"},
		{"enter", "c8 10 00 00", Mode64, ENTER, EncLegacy, 4, "ENTER"},
		{"far call", "9a 00 00 00 00 08 00", Mode32, CALLF, EncLegacy, 7, "CALLF"},
		{"test imm8", "f6 c1 01", Mode64, TEST, EncLegacy, 3, "TEST"},
		{"not has no imm", "f7 d0", Mode64, NOT, EncLegacy, 2, "NOT"},
		{"cpuid", "0f a2", Mode64, CPUID, EncLegacy, 2, "CPUID"},
		{"popcnt", "f3 0f b8 c1", Mode64, POPCNT, EncLegacy, 4, "POPCNT"},
		{"tzcnt", "f3 0f bc c1", Mode64, TZCNT, EncLegacy, 4, "TZCNT"},
		{"bsf", "0f bc c1", Mode64, BSF, EncLegacy, 3, "BSF"},
		{"paddd mmx", "0f fe c1", Mode64, PADDD, EncLegacy, 3, "PADDD"},
		{"paddd sse2", "66 0f fe c1", Mode64, PADDD, EncLegacy, 4, "PADDD"},
		{"pshufb", "66 0f 38 00 c1", Mode64, PSHUFB, EncLegacy, 5, "PSHUFB"},
		{"palignr", "66 0f 3a 0f c1 08", Mode64, PALIGNR, EncLegacy, 6, "PALIGNR"},
		{"crc32", "f2 0f 38 f1 c1", Mode64, CRC32, EncLegacy, 5, "CRC32"},
		{"movbe", "0f 38 f0 07", Mode64, MOVBE, EncLegacy, 4, "MOVBE"},
		{"cmpxchg8b", "0f c7 0f", Mode64, CMPXCHG8B, EncLegacy, 3, "CMPXCHG8B"},
		{"cmpxchg16b", "48 0f c7 0f", Mode64, CMPXCHG16B, EncLegacy, 4, "CMPXCHG16B"},
		{"rdrand", "0f c7 f0", Mode64, RDRAND, EncLegacy, 3, "RDRAND"},
		{"endbr64", "f3 0f 1e fa", Mode64, ENDBR64, EncLegacy, 4, "ENDBR64"},
		{"mov from cr0", "0f 20 c0", Mode64, MOV, EncLegacy, 3, "MOV"},
		{"mov cr ignores mod", "0f 20 00", Mode64, MOV, EncLegacy, 3, "MOV"},
		{"lfence", "0f ae e8", Mode64, LFENCE, EncLegacy, 3, "LFENCE"},
		{"xabort", "c6 f8 05", Mode64, XABORT, EncLegacy, 3, "XABORT"},
		{"xbegin", "c7 f8 00 00 00 00", Mode64, XBEGIN, EncLegacy, 6, "XBEGIN"},
		{"fld1", "d9 e8", Mode64, X87, EncLegacy, 2, "X87"},
		{"fcmovb", "da c1", Mode64, FCMOV, EncLegacy, 2, "FCMOV"},
		{"fucomi", "db e9", Mode64, FCOMI, EncLegacy, 2, "FCOMI"},
		{"fisttp", "dd 08", Mode64, FISTTP, EncLegacy, 2, "FISTTP"},
		{"pfadd", "0f 0f c1 9e", Mode64, PFADD, Enc3DNow, 4, "PFADD"},
		{"les in 32-bit", "c4 00", Mode32, LES, EncLegacy, 2, "LES"},
		{"bound in 32-bit", "62 00", Mode32, BOUND, EncLegacy, 2, "BOUND"},
		{"inc in 32-bit", "40", Mode32, INC, EncLegacy, 1, "INC"},
		{"vpaddd ymm", "c5 fd fe c1", Mode64, PADDD, EncVEX, 4, "VPADDD"},
		{"andn", "c4 e2 70 f2 c2", Mode64, ANDN, EncVEX, 5, "ANDN"},
		{"andn in 32-bit", "c4 e2 70 f2 c2", Mode32, ANDN, EncVEX, 5, "ANDN"},
		{"vinsertf128", "c4 e3 7d 18 c1 01", Mode64, VINSERTF128, EncVEX, 6, "VINSERTF128"},
		{"vzeroupper", "c5 f8 77", Mode64, VZEROUPPER, EncVEX, 3, "VZEROUPPER"},
		{"vpaddd zmm", "62 f1 7d 48 fe c1", Mode64, PADDD, EncEVEX, 6, "VPADDD"},
		{"vpaddd xmm evex", "62 f1 7d 08 fe c1", Mode64, PADDD, EncEVEX, 6, "VPADDD"},
		{"evex disp8", "62 f1 7d 48 fe 40 01", Mode64, PADDD, EncEVEX, 7, "VPADDD"},
		{"vphaddbq", "8f e9 78 c3 c1", Mode64, VPHADDBQ, EncXOP, 5, "VPHADDBQ"},
		{"tbm bextr", "8f ea 78 10 c0 00 00 00 00", Mode64, BEXTR, EncXOP, 9, "BEXTR"},
		{"pop rm is not xop", "8f c0", Mode64, POP, EncLegacy, 2, "POP"},
		{"tpause", "66 0f ae f1", Mode64, TPAUSE, EncLegacy, 4, "TPAUSE"},
		{"umonitor", "f3 0f ae f1", Mode64, UMONITOR, EncLegacy, 4, "UMONITOR"},
		{"umwait", "f2 0f ae f1", Mode64, UMWAIT, EncLegacy, 4, "UMWAIT"},
		{"clwb is still memory only", "66 0f ae 30", Mode64, CLWB, EncLegacy, 4, "CLWB"},
		{"movdiri", "0f 38 f9 00", Mode64, MOVDIRI, EncLegacy, 4, "MOVDIRI"},
		{"movdir64b", "66 0f 38 f8 01", Mode64, MOVDIR64B, EncLegacy, 5, "MOVDIR64B"},
		{"movdir64b in 32-bit", "66 0f 38 f8 01", Mode32, MOVDIR64B, EncLegacy, 5, "MOVDIR64B"},
		{"ldtilecfg", "c4 e2 78 49 00", Mode64, LDTILECFG, EncVEX, 5, "LDTILECFG"},
		{"sttilecfg", "c4 e2 79 49 00", Mode64, STTILECFG, EncVEX, 5, "STTILECFG"},
		{"tilerelease", "c4 e2 78 49 c0", Mode64, TILERELEASE, EncVEX, 5, "TILERELEASE"},
		{"tilezero", "c4 e2 7b 49 c0", Mode64, TILEZERO, EncVEX, 5, "TILEZERO"},
		{"tileloadd", "c4 e2 7b 4b 04 08", Mode64, TILELOADD, EncVEX, 6, "TILELOADD"},
		{"tdpbssd", "c4 e2 6b 5e c1", Mode64, TDPBSSD, EncVEX, 5, "TDPBSSD"},
		{"vcvtne2ps2bf16", "62 f2 77 48 72 d0", Mode64, VCVTNE2PS2BF16, EncEVEX, 6, "VCVTNE2PS2BF16"},
		{"vcvtneps2bf16", "62 f2 7e 48 72 c1", Mode64, VCVTNEPS2BF16, EncEVEX, 6, "VCVTNEPS2BF16"},
		{"vpshrdvw keeps 66", "62 f2 fd 48 72 c1", Mode64, VPSHRDVW, EncEVEX, 6, "VPSHRDVW"},
		{"vdpbf16ps", "62 f2 76 48 52 d0", Mode64, VDPBF16PS, EncEVEX, 6, "VDPBF16PS"},
		{"vp2intersectd", "62 f2 77 48 68 c2", Mode64, VP2INTERSECTD, EncEVEX, 6, "VP2INTERSECTD"},
		{"vp2intersectq", "62 f2 f7 48 68 c2", Mode64, VP2INTERSECTQ, EncEVEX, 6, "VP2INTERSECTQ"},
		{"vaddph map 5", "62 f5 74 48 58 d0", Mode64, EVEXFP16, EncEVEX, 6, "EVEX.FP16"},
		{"vaddph disp8", "62 f5 74 48 58 50 01", Mode64, EVEXFP16, EncEVEX, 7, "EVEX.FP16"},
		{"vfmadd132ph map 6", "62 f6 75 48 98 d0", Mode64, EVEXFP16, EncEVEX, 6, "EVEX.FP16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Decode(hx(t, tt.code), tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.op, in.Op)
			assert.Equal(t, tt.enc, in.Enc)
			assert.Equal(t, tt.length, in.Len)
			assert.Equal(t, tt.mnemonic, in.Mnemonic())
			assert.Len(t, in.Raw, in.Len)
		})
	}
}

func TestDecodeVectorFields(t *testing.T) {
	in, err := Decode(hx(t, "c5 fd fe c1"), Mode64)
	require.NoError(t, err)
	assert.Equal(t, 1, in.L)
	assert.Equal(t, 256, in.VectorBits())
	assert.Equal(t, Pfx66, in.Pfx)
	assert.Equal(t, Map0F, in.Map)
	assert.Equal(t, "vex.256.66.0f fe /0 reg (VPADDD)", in.Identity())

	in, err = Decode(hx(t, "62 f1 7d 48 fe c1"), Mode64)
	require.NoError(t, err)
	assert.Equal(t, 2, in.L)
	assert.False(t, in.Bcst)

	// Broadcast from memory.
	in, err = Decode(hx(t, "62 f1 7d 58 fe 00"), Mode64)
	require.NoError(t, err)
	assert.True(t, in.Bcst)
	assert.True(t, in.IsMem())

	// Embedded rounding forces 512 bits.
	in, err = Decode(hx(t, "62 f1 7c 18 58 c1"), Mode64)
	require.NoError(t, err)
	assert.Equal(t, ADDPS, in.Op)
	assert.Equal(t, 2, in.L)

	in, err = Decode(hx(t, "62 f5 74 48 58 d0"), Mode64)
	require.NoError(t, err)
	assert.Equal(t, Map5, in.Map)
	assert.Equal(t, "evex.512.map5 58 /2 reg (EVEX.FP16)", in.Identity())

	in, err = Decode(hx(t, "c4 e2 f0 f7 c2"), Mode64)
	require.NoError(t, err)
	assert.Equal(t, BEXTR, in.Op)
	assert.True(t, in.W)
	assert.Equal(t, 64, in.OpSize)
}

func TestDecodeUnknownEVEX(t *testing.T) {
	// 0F38 C5 has no table entry; the length is still exact.
	in, err := Decode(hx(t, "62 f2 7d 48 c5 c1"), Mode64)
	require.NoError(t, err)
	assert.Equal(t, EVEXUnknown, in.Op)
	assert.Equal(t, 6, in.Len)

	in, err = Decode(hx(t, "62 f3 7d 48 f0 c1 05"), Mode64)
	require.NoError(t, err)
	assert.Equal(t, EVEXUnknown, in.Op)
	assert.Equal(t, 7, in.Len)
}

func TestDecodePrefixes(t *testing.T) {
	t.Run("rex must precede opcode", func(t *testing.T) {
		in, err := Decode(hx(t, "48 66 b8 34 12"), Mode64)
		require.NoError(t, err)
		assert.False(t, in.W)
		assert.Equal(t, 16, in.OpSize)
		assert.Equal(t, 5, in.Len)
	})
	t.Run("rex.w after 66", func(t *testing.T) {
		in, err := Decode(hx(t, "66 48 b8 88 77 66 55 44 33 22 11"), Mode64)
		require.NoError(t, err)
		assert.True(t, in.W)
		assert.Equal(t, 64, in.OpSize)
		assert.Equal(t, 11, in.Len)
	})
	t.Run("last f2/f3 wins", func(t *testing.T) {
		in, err := Decode(hx(t, "f2 f3 0f b8 c1"), Mode64)
		require.NoError(t, err)
		assert.Equal(t, POPCNT, in.Op)
		assert.Equal(t, PfxF3, in.Pfx)
	})
	t.Run("f3 beats 66", func(t *testing.T) {
		in, err := Decode(hx(t, "66 f3 0f 6f c1"), Mode64)
		require.NoError(t, err)
		assert.Equal(t, MOVDQU, in.Op)
	})
	t.Run("segment and lock", func(t *testing.T) {
		in, err := Decode(hx(t, "f0 64 48 0f b1 0f"), Mode64)
		require.NoError(t, err)
		assert.Equal(t, CMPXCHG, in.Op)
		assert.True(t, in.Lock)
		assert.Equal(t, 6, in.Len)
	})
	t.Run("fourteen prefixes fit", func(t *testing.T) {
		code := append(bytes.Repeat([]byte{0x66}, 14), 0x90)
		in, err := Decode(code, Mode64)
		require.NoError(t, err)
		assert.Equal(t, 15, in.Len)
	})
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		code string
		mode Mode
	}{
		{"undefined 0f slot", "0f 04", Mode64},
		{"push es in 64-bit", "06", Mode64},
		{"salc", "d6", Mode64},
		{"far call in 64-bit", "9a 00 00 00 00 08 00", Mode64},
		{"movbe register form", "0f 38 f0 c1", Mode64},
		{"unknown 3dnow suffix", "0f 0f c1 00", Mode64},
		{"vex map 0", "c4 e0 70 f2 c2", Mode64},
		{"vex after rex", "40 c5 fd fe c1", Mode64},
		{"vex after 66", "66 c5 fd fe c1", Mode64},
		{"vex after lock", "f0 c5 fd fe c1", Mode64},
		{"evex reserved bits", "62 fd 7d 48 fe c1", Mode64},
		{"evex map 4", "62 f4 7c 48 58 c1", Mode64},
		{"evex map 7", "62 f7 7c 48 58 c1", Mode64},
		{"amx outside 64-bit", "c4 e2 78 49 00", Mode32},
		{"tileloadd register form", "c4 e2 7b 4b c0", Mode64},
		{"movdiri register form", "0f 38 f9 c0", Mode64},
		{"evex fixed bit", "62 f1 79 48 fe c1", Mode64},
		{"evex vector length 3", "62 f1 7d 68 fe 00", Mode64},
		{"xop with pp", "8f e9 79 c3 c1", Mode64},
		{"lea register form", "8d c0", Mode64},
		{"too long", strings.Repeat("66 ", 15) + "90", Mode64},
		{"immediate past 15 bytes", strings.Repeat("66 ", 14) + "b8 34 12", Mode64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(hx(t, tt.code), tt.mode)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEncoding)
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, InvalidEncoding, de.Kind)
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		mode   Mode
		offset int
	}{
		{"lone prefix", "66", Mode64, 0},
		{"escape only", "90 0f", Mode64, 1},
		{"missing rel32", "90 90 e8 00 00", Mode64, 2},
		{"missing modrm", "48 89", Mode64, 0},
		{"missing sib", "c3 8b 04", Mode64, 1},
		{"missing displacement", "8b 05 00 00", Mode64, 0},
		{"missing imm8", "90 6a", Mode32, 1},
		{"vex payload", "c5 fd", Mode64, 0},
		{"evex payload", "62 f1 7d", Mode64, 0},
		{"3dnow suffix", "0f 0f c1", Mode64, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeAll(hx(t, tt.code), tt.mode)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrTruncated)
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, TruncatedInstruction, de.Kind)
			assert.Equal(t, tt.offset, de.Offset)
		})
	}
}

func TestDecoderTiling(t *testing.T) {
	corpus := []string{
		"55", "48 89 e5", "48 83 ec 08", "e8 00 00 00 00", "0f 1f 44 00 00",
		"c5 fd fe c1", "c4 e2 70 f2 c2", "62 f1 7d 48 fe c1", "66 0f fe c1",
		"f3 0f 1e fa", "8f e9 78 c3 c1", "0f 0f c1 9e", "48 b8 88 77 66 55 44 33 22 11",
		"c9", "c3",
	}
	var blob []byte
	for _, c := range corpus {
		blob = append(blob, hx(t, c)...)
	}

	s, err := DecodeAll(blob, Mode64)
	require.NoError(t, err)
	require.Len(t, s, len(corpus))
	assert.Equal(t, len(blob), s.Bytes())

	next := 0
	for i, in := range s {
		assert.Equal(t, next, in.Offset, "instruction %d", i)
		assert.Equal(t, blob[in.Offset:in.Offset+in.Len], in.Raw)
		next += in.Len
	}
	assert.Equal(t, len(blob), next)
}

func TestDecoderIteration(t *testing.T) {
	blob := hx(t, "90 c5 fd fe c1 d6 90")
	d := NewDecoder(blob, Mode64)

	in, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, NOP, in.Op)
	in, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, in.Offset)
	assert.Equal(t, 5, d.Offset())

	_, err = d.Next()
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 5, de.Offset)

	// Errors are sticky.
	_, err2 := d.Next()
	assert.Equal(t, err, err2)

	d.Reset()
	in, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, in.Offset)

	empty := NewDecoder(nil, Mode64)
	_, err = empty.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestDecodeAllEmpty(t *testing.T) {
	s, err := DecodeAll(nil, Mode32)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestDecodeBadMode(t *testing.T) {
	_, err := Decode([]byte{0x90}, Mode(8))
	require.Error(t, err)
	_, err = ParseMode(128)
	require.Error(t, err)
	m, err := ParseMode(16)
	require.NoError(t, err)
	assert.Equal(t, Mode16, m)
	assert.Equal(t, "16-bit", m.String())
}

// TestLengthsMatchX86asm cross-checks legacy encodings against the Go
// assembler's decoder.
func TestLengthsMatchX86asm(t *testing.T) {
	corpus := []struct {
		code string
		mode Mode
	}{
		{"90", Mode64},
		{"55", Mode64},
		{"c3", Mode64},
		{"48 89 e5", Mode64},
		{"48 83 ec 08", Mode64},
		{"48 81 ec 00 01 00 00", Mode64},
		{"e8 00 00 00 00", Mode64},
		{"e9 00 00 00 00", Mode64},
		{"eb fe", Mode64},
		{"0f 84 00 00 00 00", Mode64},
		{"74 05", Mode64},
		{"0f 1f 44 00 00", Mode64},
		{"66 0f 1f 84 00 00 00 00 00", Mode64},
		{"48 8b 05 00 00 00 00", Mode64},
		{"48 8d 04 c5 00 00 00 00", Mode64},
		{"48 8b 44 24 08", Mode64},
		{"48 8b 84 24 00 01 00 00", Mode64},
		{"41 ff d3", Mode64},
		{"0f 05", Mode64},
		{"0f a2", Mode64},
		{"0f 31", Mode64},
		{"0f b6 c0", Mode64},
		{"48 0f bf c0", Mode64},
		{"48 63 c7", Mode64},
		{"0f 44 c1", Mode64},
		{"0f 94 c0", Mode64},
		{"f3 48 ab", Mode64},
		{"f0 48 0f b1 0f", Mode64},
		{"48 b8 88 77 66 55 44 33 22 11", Mode64},
		{"c7 44 24 08 01 00 00 00", Mode64},
		{"66 c7 44 24 08 01 00", Mode64},
		{"c6 04 24 01", Mode64},
		{"f6 c1 01", Mode64},
		{"f7 c1 01 00 00 00", Mode64},
		{"c1 e0 04", Mode64},
		{"d1 e0", Mode64},
		{"c8 10 00 00", Mode64},
		{"cd 80", Mode64},
		{"d9 e8", Mode64},
		{"dd 44 24 08", Mode64},
		{"f3 0f 10 05 00 00 00 00", Mode64},
		{"f2 0f 59 c1", Mode64},
		{"0f 28 c1", Mode64},
		{"66 0f 6f c1", Mode64},
		{"f3 0f 6f 07", Mode64},
		{"66 0f fe c1", Mode64},
		{"0f fe c1", Mode64},
		{"66 0f 70 c1 1b", Mode64},
		{"66 0f 73 d8 04", Mode64},
		{"66 0f c6 c1 44", Mode64},
		{"66 0f 38 00 c1", Mode64},
		{"66 0f 3a 0f c1 08", Mode64},
		{"66 0f 3a 63 c1 0c", Mode64},
		{"f3 0f b8 c1", Mode64},
		{"0f ae f8", Mode64},
		{"0f ae 38", Mode64},
		{"0f c7 0f", Mode64},
		{"89 c8", Mode32},
		{"a1 00 00 00 00", Mode32},
		{"9a 00 00 00 00 08 00", Mode32},
		{"40", Mode32},
		{"c4 00", Mode32},
		{"62 00", Mode32},
		{"8b 46 02", Mode16},
		{"8b 06 34 12", Mode16},
		{"b8 34 12", Mode16},
		{"66 b8 78 56 34 12", Mode16},
		{"e8 00 00", Mode16},
		{"ea 00 00 00 f0", Mode16},
	}

	for _, tt := range corpus {
		t.Run(tt.code, func(t *testing.T) {
			code := hx(t, tt.code)
			want, err := x86asm.Decode(code, tt.mode.Bits())
			require.NoError(t, err)
			got, err := Decode(code, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, want.Len, got.Len)
			assert.Equal(t, len(code), got.Len)
		})
	}
}
