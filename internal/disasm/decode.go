package disasm

import (
	"errors"
	"io"
)

// maxInstLen is the architectural limit on instruction length.
const maxInstLen = 15

// cursor reads bytes of one instruction, enforcing the blob end and the
// 15-byte limit.
type cursor struct {
	src []byte
	pos int
}

func (c *cursor) next() (byte, error) {
	if c.pos >= maxInstLen {
		return 0, &DecodeError{Kind: InvalidEncoding}
	}
	if c.pos >= len(c.src) {
		return 0, &DecodeError{Kind: TruncatedInstruction}
	}
	b := c.src[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) peek() (byte, error) {
	if c.pos >= len(c.src) {
		return 0, &DecodeError{Kind: TruncatedInstruction}
	}
	return c.src[c.pos], nil
}

func (c *cursor) skip(n int) error {
	for ; n > 0; n-- {
		if _, err := c.next(); err != nil {
			return err
		}
	}
	return nil
}

func invalid() error { return &DecodeError{Kind: InvalidEncoding} }

// Decode decodes the instruction at the start of src.
func Decode(src []byte, mode Mode) (Inst, error) {
	if _, err := ParseMode(int(mode)); err != nil {
		return Inst{}, err
	}
	c := cursor{src: src}
	in, err := decode(&c, mode)
	if err != nil {
		return Inst{}, err
	}
	in.Len = c.pos
	in.Raw = src[:c.pos:c.pos]
	return in, nil
}

func decode(c *cursor, mode Mode) (Inst, error) {
	in := Inst{Mode: mode}
	var (
		opsz66, adsz67 bool
		rep            byte
		rex            byte
	)

prefixes:
	for {
		b, err := c.peek()
		if err != nil {
			return in, err
		}
		switch {
		case b == 0x66:
			opsz66 = true
		case b == 0x67:
			adsz67 = true
		case b == 0xf2 || b == 0xf3:
			rep = b
		case b == 0xf0:
			in.Lock = true
		case b == 0x26 || b == 0x2e || b == 0x36 || b == 0x3e || b == 0x64 || b == 0x65:
		case mode == Mode64 && b&0xf0 == 0x40:
			if _, err := c.next(); err != nil {
				return in, err
			}
			rex = b
			continue
		default:
			break prefixes
		}
		if _, err := c.next(); err != nil {
			return in, err
		}
		// REX only counts when it immediately precedes the opcode.
		rex = 0
	}

	switch {
	case rep == 0xf3:
		in.Pfx = PfxF3
	case rep == 0xf2:
		in.Pfx = PfxF2
	case opsz66:
		in.Pfx = Pfx66
	}
	in.W = rex&0x08 != 0
	in.OpSize = operandSize(mode, opsz66, in.W)
	in.AddrSize = addressSize(mode, adsz67)

	b, err := c.next()
	if err != nil {
		return in, err
	}
	in.Opcode = b
	in.Map = MapPrimary

	switch b {
	case 0x0f:
		return decodeEscape(c, &in)
	case 0xc4, 0xc5, 0x62, 0x8f:
		nb, err := c.peek()
		if err != nil {
			return in, err
		}
		escape := false
		switch b {
		case 0xc4, 0xc5, 0x62:
			// LES/LDS/BOUND outside 64-bit mode unless the next byte
			// would be a register-form ModRM.
			escape = mode == Mode64 || nb&0xc0 == 0xc0
		case 0x8f:
			escape = nb&0x1f >= 8
		}
		if escape {
			if opsz66 || rep != 0 || in.Lock || rex != 0 {
				return in, invalid()
			}
			switch b {
			case 0xc4, 0xc5:
				return decodeVEX(c, &in, b)
			case 0x62:
				return decodeEVEX(c, &in)
			}
			return decodeXOP(c, &in)
		}
	}
	return finish(c, &in, &primary[b])
}

func operandSize(mode Mode, opsz66, w bool) int {
	switch {
	case w && mode == Mode64:
		return 64
	case mode == Mode16:
		if opsz66 {
			return 32
		}
		return 16
	case opsz66:
		return 16
	}
	return 32
}

func addressSize(mode Mode, adsz67 bool) int {
	switch mode {
	case Mode16:
		if adsz67 {
			return 32
		}
		return 16
	case Mode32:
		if adsz67 {
			return 16
		}
		return 32
	}
	if adsz67 {
		return 32
	}
	return 64
}

func decodeEscape(c *cursor, in *Inst) (Inst, error) {
	b, err := c.next()
	if err != nil {
		return *in, err
	}
	switch b {
	case 0x38:
		in.Map = Map0F38
		if in.Opcode, err = c.next(); err != nil {
			return *in, err
		}
		return finish(c, in, &map0F38[in.Opcode])
	case 0x3a:
		in.Map = Map0F3A
		if in.Opcode, err = c.next(); err != nil {
			return *in, err
		}
		return finish(c, in, &map0F3A[in.Opcode])
	case 0x0f:
		return decode3DNow(c, in)
	}
	in.Map = Map0F
	in.Opcode = b
	if b >= 0x20 && b <= 0x23 {
		// MOV to/from control and debug registers ignores ModRM.mod.
		if in.ModRM, err = c.next(); err != nil {
			return *in, err
		}
		in.HasModRM = true
		in.Op = MOV
		return *in, nil
	}
	return finish(c, in, &secondary[b])
}

// decode3DNow handles 0F 0F: ModRM operand then an imm8 opcode suffix.
func decode3DNow(c *cursor, in *Inst) (Inst, error) {
	in.Enc = Enc3DNow
	in.Map = Map0F
	if err := modrm(c, in); err != nil {
		return *in, err
	}
	suffix, err := c.next()
	if err != nil {
		return *in, err
	}
	op, ok := amd3DNow[suffix]
	if !ok {
		return *in, invalid()
	}
	in.Opcode = suffix
	in.Op = op
	return *in, nil
}

func decodeVEX(c *cursor, in *Inst, lead byte) (Inst, error) {
	in.Enc = EncVEX
	p0, err := c.next()
	if err != nil {
		return *in, err
	}
	var mmmmm, p1 byte
	if lead == 0xc5 {
		mmmmm = 1
		p1 = p0
		in.W = false
	} else {
		mmmmm = p0 & 0x1f
		if p1, err = c.next(); err != nil {
			return *in, err
		}
		in.W = p1&0x80 != 0
	}
	in.L = int(p1>>2) & 1
	in.Pfx = Prefix(p1 & 3)
	in.OpSize = vexOperandSize(in.Mode, in.W)

	var table *[256]entry
	switch mmmmm {
	case 1:
		in.Map, table = Map0F, &vex0F
	case 2:
		in.Map, table = Map0F38, &vex0F38
	case 3:
		in.Map, table = Map0F3A, &vex0F3A
	default:
		return *in, invalid()
	}
	if in.Opcode, err = c.next(); err != nil {
		return *in, err
	}
	return finish(c, in, &table[in.Opcode])
}

func decodeXOP(c *cursor, in *Inst) (Inst, error) {
	in.Enc = EncXOP
	p0, err := c.next()
	if err != nil {
		return *in, err
	}
	p1, err := c.next()
	if err != nil {
		return *in, err
	}
	in.W = p1&0x80 != 0
	in.L = int(p1>>2) & 1
	if p1&3 != 0 {
		return *in, invalid()
	}
	in.Pfx = PfxNone
	in.OpSize = vexOperandSize(in.Mode, in.W)

	var table *[256]entry
	switch p0 & 0x1f {
	case 8:
		in.Map, table = MapXOP8, &xop8
	case 9:
		in.Map, table = MapXOP9, &xop9
	case 0xa:
		in.Map, table = MapXOPA, &xopA
	default:
		return *in, invalid()
	}
	if in.Opcode, err = c.next(); err != nil {
		return *in, err
	}
	return finish(c, in, &table[in.Opcode])
}

func decodeEVEX(c *cursor, in *Inst) (Inst, error) {
	in.Enc = EncEVEX
	var p [3]byte
	for i := range p {
		b, err := c.next()
		if err != nil {
			return *in, err
		}
		p[i] = b
	}
	// P0 bit 3 and P1 bit 2 are fixed. P0 bits 2:0 select the map.
	if p[0]&0x08 != 0 || p[1]&0x04 == 0 {
		return *in, invalid()
	}
	in.W = p[1]&0x80 != 0
	in.Pfx = Prefix(p[1] & 3)
	in.OpSize = vexOperandSize(in.Mode, in.W)
	ll := int(p[2]>>5) & 3
	b := p[2]&0x10 != 0

	var table *[256]entry
	switch p[0] & 7 {
	case 1:
		in.Map, table = Map0F, &evex0F
	case 2:
		in.Map, table = Map0F38, &evex0F38
	case 3:
		in.Map, table = Map0F3A, &evex0F3A
	case 5:
		in.Map, table = Map5, &evexFP16
	case 6:
		in.Map, table = Map6, &evexFP16
	default:
		return *in, invalid()
	}
	var err error
	if in.Opcode, err = c.next(); err != nil {
		return *in, err
	}
	if err := modrm(c, in); err != nil {
		return *in, err
	}
	if b && in.Mod() == 3 {
		// Embedded rounding: L'L is the rounding mode and the vector
		// length is the full 512 bits.
		ll = 2
	} else if ll == 3 {
		return *in, invalid()
	}
	in.L = ll
	in.Bcst = b && in.Mod() != 3

	e := &table[in.Opcode]
	s := state{pfx: in.Pfx, modrm: in.ModRM, w: in.W, l: in.L, mode: in.Mode}
	imm := evexFallback(in.Map, in.Opcode)
	in.Op = EVEXUnknown
	if table == &evexFP16 {
		in.Op = EVEXFP16
	}
	if x, ok := e.lookup(&s); ok {
		in.Op = x.op
		imm = x.imm
	}
	return *in, immediate(c, in, imm)
}

func vexOperandSize(mode Mode, w bool) int {
	if w && mode == Mode64 {
		return 64
	}
	if mode == Mode16 {
		return 16
	}
	return 32
}

// finish reads the ModRM operand, resolves the form and reads the
// immediate.
func finish(c *cursor, in *Inst, e *entry) (Inst, error) {
	if !e.valid() {
		return *in, invalid()
	}
	if e.modrm {
		if err := modrm(c, in); err != nil {
			return *in, err
		}
	}
	s := state{pfx: in.Pfx, modrm: in.ModRM, w: in.W, l: in.L, mode: in.Mode}
	x, ok := e.lookup(&s)
	if !ok {
		return *in, invalid()
	}
	in.Op = x.op
	return *in, immediate(c, in, x.imm)
}

// modrm reads ModRM, SIB and displacement.
func modrm(c *cursor, in *Inst) error {
	b, err := c.next()
	if err != nil {
		return err
	}
	in.ModRM = b
	in.HasModRM = true
	mod, rm := b>>6, b&7
	if mod == 3 {
		return nil
	}
	if in.AddrSize == 16 {
		switch {
		case mod == 0 && rm == 6, mod == 2:
			return c.skip(2)
		case mod == 1:
			return c.skip(1)
		}
		return nil
	}
	if rm == 4 {
		sib, err := c.next()
		if err != nil {
			return err
		}
		if mod == 0 && sib&7 == 5 {
			return c.skip(4)
		}
	}
	switch {
	case mod == 0 && rm == 5, mod == 2:
		return c.skip(4)
	case mod == 1:
		return c.skip(1)
	}
	return nil
}

func immediate(c *cursor, in *Inst, k immKind) error {
	n := 0
	switch k {
	case immB:
		n = 1
	case immW:
		n = 2
	case immD:
		n = 4
	case immZ:
		n = 4
		if in.OpSize == 16 {
			n = 2
		}
	case immV:
		n = in.OpSize / 8
	case immJ:
		n = 4
		if in.Mode != Mode64 && in.OpSize == 16 {
			n = 2
		}
	case immMoffs:
		n = in.AddrSize / 8
	case immPtr:
		n = 6
		if in.OpSize == 16 {
			n = 4
		}
	case immWB:
		n = 3
	case immBB:
		n = 2
	}
	return c.skip(n)
}

// Decoder walks a blob instruction by instruction.
type Decoder struct {
	blob []byte
	mode Mode
	off  int
	err  error
}

// NewDecoder returns a decoder positioned at the start of blob.
func NewDecoder(blob []byte, mode Mode) *Decoder {
	return &Decoder{blob: blob, mode: mode}
}

// Next decodes the next instruction. It returns io.EOF once the whole blob
// has been consumed. A decode error is sticky until Reset.
func (d *Decoder) Next() (Inst, error) {
	if d.err != nil {
		return Inst{}, d.err
	}
	if d.off >= len(d.blob) {
		return Inst{}, io.EOF
	}
	in, err := Decode(d.blob[d.off:], d.mode)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Offset = d.off
		}
		d.err = err
		return Inst{}, err
	}
	in.Offset = d.off
	d.off += in.Len
	return in, nil
}

// Offset returns the offset of the next instruction.
func (d *Decoder) Offset() int { return d.off }

// Reset restarts decoding from the start of the blob.
func (d *Decoder) Reset() {
	d.off = 0
	d.err = nil
}

// DecodeAll decodes the whole blob.
func DecodeAll(blob []byte, mode Mode) (Stream, error) {
	d := NewDecoder(blob, mode)
	var s Stream
	for {
		in, err := d.Next()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return nil, err
		}
		s = append(s, in)
	}
}
