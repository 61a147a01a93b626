package classify

import (
	"isaext/internal/disasm"
	"isaext/internal/feature"
)

type encMask uint8

const (
	legacy   encMask = 1 << disasm.EncLegacy
	vex      encMask = 1 << disasm.EncVEX
	evex     encMask = 1 << disasm.EncEVEX
	xop      encMask = 1 << disasm.EncXOP
	amd3DNow encMask = 1 << disasm.Enc3DNow
)

// rule is one candidate feature requirement of an op. Constraints left at
// their zero or -1 value match anything.
type rule struct {
	enc   encMask
	pfx   uint8 // mask of 1<<disasm.Prefix
	mp    int8  // disasm.Map
	w     int8
	l     int8
	mem   int8 // 1 memory operand, 0 register operand
	in64  int8 // 1 only in 64-bit mode
	vl    bool // EVEX below 512 bits also needs AVX512VL
	feats []feature.ID
}

// Rule is the exported view of a table rule.
type Rule struct {
	Op       disasm.Op
	Encoding disasm.Encoding
	Features []feature.ID
	VL       bool
}

func on(enc encMask, feats ...feature.ID) rule {
	return rule{enc: enc, mp: -1, w: -1, l: -1, mem: -1, in64: -1, feats: feats}
}

func (r rule) p(pfx ...disasm.Prefix) rule {
	for _, p := range pfx {
		r.pfx |= 1 << p
	}
	return r
}

func (r rule) inMap(m disasm.Map) rule { r.mp = int8(m); return r }
func (r rule) w0() rule                { r.w = 0; return r }
func (r rule) w1() rule                { r.w = 1; return r }
func (r rule) l0() rule                { r.l = 0; return r }
func (r rule) memOnly() rule           { r.mem = 1; return r }
func (r rule) only64() rule            { r.in64 = 1; return r }
func (r rule) withVL() rule            { r.vl = true; return r }

func (r *rule) match(in *disasm.Inst) bool {
	if r.enc&(1<<in.Enc) == 0 {
		return false
	}
	if r.pfx != 0 && r.pfx&(1<<in.Pfx) == 0 {
		return false
	}
	if r.mp >= 0 && disasm.Map(r.mp) != in.Map {
		return false
	}
	if r.w >= 0 && (r.w == 1) != in.W {
		return false
	}
	if r.l >= 0 && int(r.l) != in.L {
		return false
	}
	if r.mem >= 0 && (r.mem == 1) != in.IsMem() {
		return false
	}
	if r.in64 == 1 && in.Mode != disasm.Mode64 {
		return false
	}
	return true
}

// table maps each op to its rules in priority order.
var table = map[disasm.Op][]rule{}

func def(rules []rule, ops ...disasm.Op) {
	for _, op := range ops {
		table[op] = append(table[op], rules...)
	}
}

func rules(rs ...rule) []rule { return rs }

// base marks general purpose instructions of the base architecture.
func base(ops ...disasm.Op) { def(rules(on(legacy)), ops...) }

// gp marks legacy-encoded instructions that need feats.
func gp(feats []feature.ID, ops ...disasm.Op) { def(rules(on(legacy, feats...)), ops...) }

func ids(feats ...feature.ID) []feature.ID { return feats }

// packed covers floating point vector instructions: the legacy form needs
// leg, any VEX form AVX and the EVEX form ev.
func packed(leg, ev feature.ID, ops ...disasm.Op) {
	def(rules(
		on(legacy, leg),
		on(vex, feature.AVX),
		on(evex, ev).withVL(),
	), ops...)
}

// scalar is packed without the vector length requirement.
func scalar(leg, ev feature.ID, ops ...disasm.Op) {
	def(rules(
		on(legacy, leg),
		on(vex, feature.AVX),
		on(evex, ev),
	), ops...)
}

// integer covers integer vector instructions whose 256-bit VEX form
// arrived with AVX2.
func integer(leg, ev feature.ID, ops ...disasm.Op) {
	def(rules(
		on(legacy, leg),
		on(vex, feature.AVX).l0(),
		on(vex, feature.AVX2),
		on(evex, ev).withVL(),
	), ops...)
}

// mmxInt is integer with an MMX form when there is no 66 prefix.
func mmxInt(ev feature.ID, ops ...disasm.Op) {
	def(rules(on(legacy, feature.MMX).p(disasm.PfxNone)), ops...)
	integer(feature.SSE2, ev, ops...)
}

// mmxExt is integer for the integer SSE additions to MMX.
func mmxExt(ev feature.ID, ops ...disasm.Op) {
	def(rules(on(legacy, feature.SSE).p(disasm.PfxNone)), ops...)
	integer(feature.SSE2, ev, ops...)
}

// element covers 128-bit-only element moves and inserts.
func element(leg, ev feature.ID, ops ...disasm.Op) {
	def(rules(
		on(legacy, leg),
		on(vex, feature.AVX),
		on(evex, ev),
	), ops...)
}

// avx512 covers instructions that only exist in EVEX form.
func avx512(ev feature.ID, ops ...disasm.Op) {
	def(rules(on(evex, ev).withVL()), ops...)
}

// avx512Scalar is avx512 for scalar operations.
func avx512Scalar(ev feature.ID, ops ...disasm.Op) {
	def(rules(on(evex, ev)), ops...)
}

// byWidth selects the EVEX feature by W for ops that share an opcode
// between element widths.
func byWidth(w0, w1 feature.ID, ops ...disasm.Op) {
	def(rules(
		on(evex, w0).w0().withVL(),
		on(evex, w1).withVL(),
	), ops...)
}

// vexAVX2 covers VEX instructions that only exist with AVX2, with an
// EVEX form needing ev. An empty ev means there is no EVEX form.
func vexAVX2(ev feature.ID, ops ...disasm.Op) {
	rs := rules(on(vex, feature.AVX2))
	if ev != "" {
		rs = append(rs, on(evex, ev).withVL())
	}
	def(rs, ops...)
}

// kmask covers the opmask instructions. The mandatory prefix and W pick
// the mask width: W0 without prefix is the word form, 66 W0 the byte
// form, and the W1 forms are doubleword and quadword.
func kmask(ops ...disasm.Op) {
	def(rules(
		on(vex, feature.AVX512F).p(disasm.PfxNone).w0(),
		on(vex, feature.AVX512DQ).p(disasm.Pfx66).w0(),
		on(vex, feature.AVX512BW),
	), ops...)
}
