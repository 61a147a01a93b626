package disasm

// immKind selects how many immediate bytes follow the ModRM operand.
type immKind uint8

const (
	immNone  immKind = iota
	immB             // imm8 or rel8
	immW             // imm16
	immD             // imm32
	immZ             // imm16/imm32 by operand size
	immV             // imm16/imm32/imm64 by operand size
	immJ             // rel16/rel32, always rel32 in 64-bit mode
	immMoffs         // address-sized memory offset
	immPtr           // far pointer, seg:off16 or seg:off32
	immWB            // ENTER imm16, imm8
	immBB            // two imm8
)

type pfxMask uint8

const (
	pAny pfxMask = 0
	pN   pfxMask = 1 << PfxNone
	p66  pfxMask = 1 << Pfx66
	pF3  pfxMask = 1 << PfxF3
	pF2  pfxMask = 1 << PfxF2
)

type modReq uint8

const (
	modAny modReq = iota
	modMem
	modReg
)

type modeReq uint8

const (
	anyMode modeReq = iota
	only64
	not64
)

// form is one candidate meaning of an opcode slot. The first form whose
// constraints hold wins.
type form struct {
	op   Op
	pfx  pfxMask
	reg  int8 // ModRM.reg, -1 for any
	rm   int8 // ModRM.rm, -1 for any
	mod  modReq
	w    int8 // -1 for any
	l    int8 // -1 for any
	mode modeReq
	imm  immKind
}

// entry is one opcode slot of a map.
type entry struct {
	modrm bool
	forms []form
}

func (e entry) valid() bool { return len(e.forms) > 0 }

func f(op Op) form { return form{op: op, reg: -1, rm: -1, w: -1, l: -1} }

func (x form) p(m pfxMask) form { x.pfx = m; return x }
func (x form) r(n int8) form    { x.reg = n; return x }
func (x form) rmIs(n int8) form { x.rm = n; return x }
func (x form) mem() form        { x.mod = modMem; return x }
func (x form) regs() form       { x.mod = modReg; return x }
func (x form) w0() form         { x.w = 0; return x }
func (x form) w1() form         { x.w = 1; return x }
func (x form) l0() form         { x.l = 0; return x }
func (x form) l1() form         { x.l = 1; return x }
func (x form) o64() form        { x.mode = only64; return x }
func (x form) i64() form        { x.mode = not64; return x }
func (x form) ib() form         { x.imm = immB; return x }
func (x form) iw() form         { x.imm = immW; return x }
func (x form) iz() form         { x.imm = immZ; return x }
func (x form) jz() form         { x.imm = immJ; return x }
func (x form) with(k immKind) form {
	x.imm = k
	return x
}

// m builds a slot with a ModRM byte.
func m(forms ...form) entry { return entry{modrm: true, forms: forms} }

// n builds a slot without a ModRM byte.
func n(forms ...form) entry { return entry{forms: forms} }

// mo and no build single-form slots.
func mo(op Op) entry { return m(f(op)) }
func no(op Op) entry { return n(f(op)) }

// state is what a form is matched against.
type state struct {
	pfx   Prefix
	modrm byte
	w     bool
	l     int
	mode  Mode
}

func (x *form) match(s *state, hasModRM bool) bool {
	if x.pfx != pAny && x.pfx&(1<<s.pfx) == 0 {
		return false
	}
	if hasModRM {
		mod := s.modrm >> 6
		if x.reg >= 0 && int8((s.modrm>>3)&7) != x.reg {
			return false
		}
		if x.rm >= 0 && int8(s.modrm&7) != x.rm {
			return false
		}
		if x.mod == modMem && mod == 3 || x.mod == modReg && mod != 3 {
			return false
		}
	}
	if x.w >= 0 && (x.w == 1) != s.w {
		return false
	}
	if x.l >= 0 && int(x.l) != s.l {
		return false
	}
	switch x.mode {
	case only64:
		return s.mode == Mode64
	case not64:
		return s.mode != Mode64
	}
	return true
}

// lookup returns the first form of e that matches s.
func (e *entry) lookup(s *state) (*form, bool) {
	for i := range e.forms {
		if e.forms[i].match(s, e.modrm) {
			return &e.forms[i], true
		}
	}
	return nil, false
}
