// Package disasm decodes x86 machine code into a stream of instruction
// descriptors.
//
// The decoder is a length and identity decoder: it walks prefixes,
// escapes, ModRM/SIB, displacements and immediates to find where each
// instruction ends, and resolves the opcode class ([Op]) the feature
// classifier keys on. It does not produce operand text.
package disasm

import (
	"fmt"
	"strings"
)

// Mode is an execution mode, expressed as its default bit width.
type Mode int

const (
	Mode16 Mode = 16
	Mode32 Mode = 32
	Mode64 Mode = 64
)

// ParseMode converts a bit width into a Mode.
func ParseMode(bits int) (Mode, error) {
	switch bits {
	case 16, 32, 64:
		return Mode(bits), nil
	}
	return 0, fmt.Errorf("unsupported execution mode: %d-bit", bits)
}

func (m Mode) String() string { return fmt.Sprintf("%d-bit", int(m)) }

// Bits returns the bit width of m.
func (m Mode) Bits() int { return int(m) }

// Encoding is the encoding space an instruction was found in.
type Encoding uint8

const (
	EncLegacy Encoding = iota
	EncVEX
	EncEVEX
	EncXOP
	Enc3DNow
)

var encNames = [...]string{"legacy", "vex", "evex", "xop", "3dnow"}

func (e Encoding) String() string {
	if int(e) < len(encNames) {
		return encNames[e]
	}
	return fmt.Sprintf("enc(%d)", e)
}

// Map is the opcode map selected by escape bytes or by the VEX/EVEX/XOP
// map field.
type Map uint8

const (
	MapPrimary Map = iota
	Map0F
	Map0F38
	Map0F3A
	MapXOP8
	MapXOP9
	MapXOPA
	Map5 // EVEX FP16 maps
	Map6
)

var mapNames = [...]string{"", "0f", "0f38", "0f3a", "xop8", "xop9", "xopa", "map5", "map6"}

func (m Map) String() string {
	if int(m) < len(mapNames) {
		return mapNames[m]
	}
	return fmt.Sprintf("map(%d)", m)
}

// Prefix is the mandatory prefix of an instruction: the last F2/F3 byte,
// else 66, else none. For VEX, EVEX and XOP it is the pp field.
type Prefix uint8

const (
	PfxNone Prefix = iota
	Pfx66
	PfxF3
	PfxF2
)

var pfxNames = [...]string{"", "66", "f3", "f2"}

func (p Prefix) String() string { return pfxNames[p&3] }

// Inst is one decoded instruction.
type Inst struct {
	Offset   int      // offset of the first byte within the blob
	Len      int      // encoded length in bytes
	Op       Op       // opcode class
	Enc      Encoding // encoding space
	Map      Map      // opcode map
	Opcode   byte     // opcode byte within Map
	Pfx      Prefix   // mandatory prefix or pp
	ModRM    byte     // valid when HasModRM
	HasModRM bool
	W        bool // REX.W or VEX/EVEX/XOP.W
	L        int  // vector length: 0=128, 1=256, 2=512
	Bcst     bool // EVEX embedded broadcast on a memory operand
	Lock     bool
	OpSize   int // effective operand size in bits
	AddrSize int // effective address size in bits
	Mode     Mode
	Raw      []byte // encoded bytes, a sub-slice of the decoded blob
}

// Mod returns the ModRM mod field.
func (i Inst) Mod() byte { return i.ModRM >> 6 }

// Reg returns the ModRM reg field.
func (i Inst) Reg() byte { return (i.ModRM >> 3) & 7 }

// RM returns the ModRM r/m field.
func (i Inst) RM() byte { return i.ModRM & 7 }

// IsMem reports whether the ModRM operand is a memory reference.
func (i Inst) IsMem() bool { return i.HasModRM && i.Mod() != 3 }

// VectorBits returns the vector length in bits.
func (i Inst) VectorBits() int { return 128 << i.L }

// Mnemonic returns the upper-case mnemonic of the instruction. VEX and
// EVEX forms of legacy SSE instructions carry the V prefix.
func (i Inst) Mnemonic() string {
	name := i.Op.String()
	if (i.Enc == EncVEX || i.Enc == EncEVEX) && i.Op.Legacy() {
		return "V" + name
	}
	return name
}

// Identity returns a compact description of the encoding identity, e.g.
// "vex.256.66.0f38.w0 18 (VBROADCASTSS)".
func (i Inst) Identity() string {
	var b strings.Builder
	b.WriteString(i.Enc.String())
	if i.Enc == EncVEX || i.Enc == EncEVEX || i.Enc == EncXOP {
		fmt.Fprintf(&b, ".%d", i.VectorBits())
	}
	for _, part := range []string{i.Pfx.String(), i.Map.String()} {
		if part != "" {
			b.WriteByte('.')
			b.WriteString(part)
		}
	}
	if i.W {
		b.WriteString(".w1")
	}
	fmt.Fprintf(&b, " %02x", i.Opcode)
	if i.HasModRM {
		fmt.Fprintf(&b, " /%d", i.Reg())
		if i.Mod() == 3 {
			b.WriteString(" reg")
		} else {
			b.WriteString(" mem")
		}
	}
	fmt.Fprintf(&b, " (%s)", i.Mnemonic())
	return b.String()
}

func (i Inst) String() string {
	return fmt.Sprintf("%#x: % x %s", i.Offset, i.Raw, i.Mnemonic())
}

// Stream is a linear sequence of instructions.
type Stream []Inst

// Bytes returns the total encoded length of the stream.
func (s Stream) Bytes() int {
	n := 0
	for _, in := range s {
		n += in.Len
	}
	return n
}
