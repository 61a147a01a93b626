package disasm

// VEX maps reuse the legacy SSE slots where the VEX form keeps the legacy
// opcode, minus the MMX forms, and add the VEX-only instructions.

// noVEX lists legacy ops whose slot is shared with VEX forms but that have
// no VEX encoding themselves.
var noVEX = map[Op]bool{
	CVTPI2PS: true, CVTPI2PD: true, CVTPS2PI: true, CVTPD2PI: true,
	CVTTPS2PI: true, CVTTPD2PI: true, MOVNTSS: true, MOVNTSD: true,
	MOVQ2DQ: true, MOVDQ2Q: true, MASKMOVQ: true, MOVNTQ: true, PSHUFW: true,
	PBLENDVB: true, BLENDVPS: true, BLENDVPD: true,
	INVEPT: true, INVVPID: true, INVPCID: true, MOVBE: true, CRC32: true,
	ADCX: true, ADOX: true, WRSS: true, WRUSS: true,
	SHA1NEXTE: true, SHA1MSG1: true, SHA1MSG2: true, SHA256RNDS2: true,
	SHA256MSG1: true, SHA256MSG2: true, SHA1RNDS4: true, MOVNTI: true,
}

// integerSlot reports whether a 0F slot only has MMX meaning without a
// prefix, so its VEX form must carry 66/F3/F2.
func integerSlot(code int) bool {
	return code >= 0x60 && code <= 0x7f || code == 0xc4 || code == 0xc5 || code >= 0xd0
}

// fromLegacy copies the forms of a legacy slot that are not in skip. With
// stripNone set, forms that only exist without a prefix are dropped.
func fromLegacy(e entry, stripNone bool, skip map[Op]bool) entry {
	var forms []form
	for _, x := range e.forms {
		if skip[x.op] {
			continue
		}
		if stripNone {
			if x.pfx == pN {
				continue
			}
			x.pfx &^= pN
		}
		forms = append(forms, x)
	}
	if len(forms) == 0 {
		return entry{}
	}
	return m(forms...)
}

var vex0F = func() (t [256]entry) {
	for _, r := range [][2]int{{0x10, 0x17}, {0x28, 0x2f}, {0x50, 0x76}, {0x7c, 0x7f}, {0xc2, 0xc6}, {0xd0, 0xfe}} {
		for code := r[0]; code <= r[1]; code++ {
			t[code] = fromLegacy(secondary[code], integerSlot(code), noVEX)
		}
	}
	t[0x77] = n(f(VZEROUPPER).p(pN).l0(), f(VZEROALL).p(pN).l1())
	t[0xae] = m(f(LDMXCSR).p(pN).mem().r(2).l0(), f(STMXCSR).p(pN).mem().r(3).l0())

	// Opmask instructions.
	t[0x41] = m(f(KAND).regs().l1())
	t[0x42] = m(f(KANDN).regs().l1())
	t[0x44] = m(f(KNOT).regs().l0())
	t[0x45] = m(f(KOR).regs().l1())
	t[0x46] = m(f(KXNOR).regs().l1())
	t[0x47] = m(f(KXOR).regs().l1())
	t[0x4a] = m(f(KADD).regs().l1())
	t[0x4b] = m(f(KUNPCK).regs().l1().p(pN | p66))
	t[0x90] = m(f(KMOV).p(pN | p66).l0())
	t[0x91] = m(f(KMOV).p(pN | p66).mem().l0())
	t[0x92] = m(f(KMOV).regs().l0())
	t[0x93] = m(f(KMOV).regs().l0())
	t[0x98] = m(f(KORTEST).regs().l0().p(pN | p66))
	t[0x99] = m(f(KTEST).regs().l0().p(pN | p66))
	return t
}()

var vex0F38 = func() (t [256]entry) {
	for _, r := range [][2]int{{0x00, 0x0b}, {0x17, 0x17}, {0x1c, 0x1e}, {0x20, 0x2b}, {0x30, 0x41}, {0xcf, 0xcf}, {0xdb, 0xdf}} {
		for code := r[0]; code <= r[1]; code++ {
			t[code] = fromLegacy(map0F38[code], true, noVEX)
		}
	}
	vp := func(op Op) form { return f(op).p(p66) }
	t[0x0c] = m(vp(VPERMILPS).w0())
	t[0x0d] = m(vp(VPERMILPD).w0())
	t[0x0e] = m(vp(VTESTPS).w0())
	t[0x0f] = m(vp(VTESTPD).w0())
	t[0x13] = m(vp(VCVTPH2PS).w0())
	t[0x16] = m(vp(VPERMPS).w0().l1())
	t[0x18] = m(vp(VBROADCASTSS).w0())
	t[0x19] = m(vp(VBROADCASTSD).w0().l1())
	t[0x1a] = m(vp(VBROADCASTF128).w0().l1().mem())
	t[0x2c] = m(vp(VMASKMOVPS).w0().mem())
	t[0x2d] = m(vp(VMASKMOVPD).w0().mem())
	t[0x2e] = m(vp(VMASKMOVPS).w0().mem())
	t[0x2f] = m(vp(VMASKMOVPD).w0().mem())
	t[0x36] = m(vp(VPERMD).w0().l1())
	t[0x45] = m(vp(VPSRLVD).w0(), vp(VPSRLVQ).w1())
	t[0x46] = m(vp(VPSRAVD).w0())
	t[0x47] = m(vp(VPSLLVD).w0(), vp(VPSLLVQ).w1())
	// AMX tile operations, 64-bit mode only.
	amx := func(op Op, pfx pfxMask) form { return f(op).p(pfx).w0().l0().o64() }
	t[0x49] = m(
		amx(LDTILECFG, pN).mem().r(0), amx(STTILECFG, p66).mem().r(0),
		amx(TILERELEASE, pN).regs().r(0).rmIs(0), amx(TILEZERO, pF2).regs().rmIs(0),
	)
	t[0x4b] = m(amx(TILELOADD, pF2).mem(), amx(TILELOADDT1, p66).mem(), amx(TILESTORED, pF3).mem())
	t[0x5c] = m(amx(TDPBF16PS, pF3).regs())
	t[0x5e] = m(
		amx(TDPBSSD, pF2).regs(), amx(TDPBSUD, pF3).regs(),
		amx(TDPBUSD, p66).regs(), amx(TDPBUUD, pN).regs(),
	)
	t[0x50] = m(vp(VPDPBUSD).w0())
	t[0x51] = m(vp(VPDPBUSDS).w0())
	t[0x52] = m(vp(VPDPWSSD).w0())
	t[0x53] = m(vp(VPDPWSSDS).w0())
	t[0x58] = m(vp(VPBROADCASTD).w0())
	t[0x59] = m(vp(VPBROADCASTQ).w0())
	t[0x5a] = m(vp(VBROADCASTI128).w0().l1().mem())
	t[0x78] = m(vp(VPBROADCASTB).w0())
	t[0x79] = m(vp(VPBROADCASTW).w0())
	t[0x8c] = m(vp(VPMASKMOVD).w0().mem(), vp(VPMASKMOVQ).w1().mem())
	t[0x8e] = m(vp(VPMASKMOVD).w0().mem(), vp(VPMASKMOVQ).w1().mem())
	t[0x90] = m(vp(VPGATHERDD).w0().mem(), vp(VPGATHERDQ).w1().mem())
	t[0x91] = m(vp(VPGATHERQD).w0().mem(), vp(VPGATHERQQ).w1().mem())
	t[0x92] = m(vp(VGATHERDPS).w0().mem(), vp(VGATHERDPD).w1().mem())
	t[0x93] = m(vp(VGATHERQPS).w0().mem(), vp(VGATHERQPD).w1().mem())
	for i, ops := range fma3 {
		for j, base := range []int{0x96, 0xa6, 0xb6} {
			t[base+i] = m(vp(ops[j][0]).w0(), vp(ops[j][1]).w1())
		}
	}

	t[0xf2] = m(f(ANDN).p(pN).l0())
	t[0xf3] = m(f(BLSR).p(pN).l0().r(1), f(BLSMSK).p(pN).l0().r(2), f(BLSI).p(pN).l0().r(3))
	t[0xf5] = m(f(BZHI).p(pN).l0(), f(PEXT).p(pF3).l0(), f(PDEP).p(pF2).l0())
	t[0xf6] = m(f(MULX).p(pF2).l0())
	t[0xf7] = m(f(BEXTR).p(pN).l0(), f(SHLX).p(p66).l0(), f(SARX).p(pF3).l0(), f(SHRX).p(pF2).l0())
	return t
}()

// fma3 holds the FMA3 operations by opcode offset from 96/A6/B6 and then
// by operand order 132/213/231, as single/double pairs.
var fma3 = [10][3][2]Op{
	{{VFMADDSUB132PS, VFMADDSUB132PD}, {VFMADDSUB213PS, VFMADDSUB213PD}, {VFMADDSUB231PS, VFMADDSUB231PD}},
	{{VFMSUBADD132PS, VFMSUBADD132PD}, {VFMSUBADD213PS, VFMSUBADD213PD}, {VFMSUBADD231PS, VFMSUBADD231PD}},
	{{VFMADD132PS, VFMADD132PD}, {VFMADD213PS, VFMADD213PD}, {VFMADD231PS, VFMADD231PD}},
	{{VFMADD132SS, VFMADD132SD}, {VFMADD213SS, VFMADD213SD}, {VFMADD231SS, VFMADD231SD}},
	{{VFMSUB132PS, VFMSUB132PD}, {VFMSUB213PS, VFMSUB213PD}, {VFMSUB231PS, VFMSUB231PD}},
	{{VFMSUB132SS, VFMSUB132SD}, {VFMSUB213SS, VFMSUB213SD}, {VFMSUB231SS, VFMSUB231SD}},
	{{VFNMADD132PS, VFNMADD132PD}, {VFNMADD213PS, VFNMADD213PD}, {VFNMADD231PS, VFNMADD231PD}},
	{{VFNMADD132SS, VFNMADD132SD}, {VFNMADD213SS, VFNMADD213SD}, {VFNMADD231SS, VFNMADD231SD}},
	{{VFNMSUB132PS, VFNMSUB132PD}, {VFNMSUB213PS, VFNMSUB213PD}, {VFNMSUB231PS, VFNMSUB231PD}},
	{{VFNMSUB132SS, VFNMSUB132SD}, {VFNMSUB213SS, VFNMSUB213SD}, {VFNMSUB231SS, VFNMSUB231SD}},
}

var vex0F3A = func() (t [256]entry) {
	for _, r := range [][2]int{{0x08, 0x0f}, {0x14, 0x17}, {0x20, 0x22}, {0x40, 0x42}, {0x44, 0x44}, {0x60, 0x63}, {0xce, 0xdf}} {
		for code := r[0]; code <= r[1]; code++ {
			t[code] = fromLegacy(map0F3A[code], true, noVEX)
		}
	}
	vp := func(op Op) form { return f(op).p(p66).ib() }
	t[0x00] = m(vp(VPERMQ).w1().l1())
	t[0x01] = m(vp(VPERMPD).w1().l1())
	t[0x02] = m(vp(VPBLENDD).w0())
	t[0x04] = m(vp(VPERMILPS).w0())
	t[0x05] = m(vp(VPERMILPD).w0())
	t[0x06] = m(vp(VPERM2F128).w0().l1())
	t[0x18] = m(vp(VINSERTF128).w0().l1())
	t[0x19] = m(vp(VEXTRACTF128).w0().l1())
	t[0x1d] = m(vp(VCVTPS2PH).w0())
	t[0x38] = m(vp(VINSERTI128).w0().l1())
	t[0x39] = m(vp(VEXTRACTI128).w0().l1())
	t[0x46] = m(vp(VPERM2I128).w0().l1())
	t[0x4a] = m(vp(VBLENDVPS).w0())
	t[0x4b] = m(vp(VBLENDVPD).w0())
	t[0x4c] = m(vp(VPBLENDVB).w0())
	for code, op := range fma4 {
		t[code] = m(vp(op))
	}
	t[0xf0] = m(f(RORX).p(pF2).l0().ib())
	return t
}()

var fma4 = map[byte]Op{
	0x5c: VFMADDSUBPS, 0x5d: VFMADDSUBPD, 0x5e: VFMSUBADDPS, 0x5f: VFMSUBADDPD,
	0x68: VFMADDPS, 0x69: VFMADDPD, 0x6a: VFMADDSS, 0x6b: VFMADDSD,
	0x6c: VFMSUBPS, 0x6d: VFMSUBPD, 0x6e: VFMSUBSS, 0x6f: VFMSUBSD,
	0x78: VFNMADDPS, 0x79: VFNMADDPD, 0x7a: VFNMADDSS, 0x7b: VFNMADDSD,
	0x7c: VFNMSUBPS, 0x7d: VFNMSUBPD, 0x7e: VFNMSUBSS, 0x7f: VFNMSUBSD,
}

// AMD XOP maps. Map 8 carries an imm8, map A an imm32.

var xop8 = func() (t [256]entry) {
	for code, op := range map[byte]Op{
		0x85: VPMACSSWW, 0x86: VPMACSSWD, 0x87: VPMACSSDQL, 0x8e: VPMACSSDD, 0x8f: VPMACSSDQH,
		0x95: VPMACSWW, 0x96: VPMACSWD, 0x97: VPMACSDQL, 0x9e: VPMACSDD, 0x9f: VPMACSDQH,
		0xa2: VPCMOV, 0xa3: VPPERM, 0xa6: VPMADCSSWD, 0xb6: VPMADCSWD,
		0xc0: VPROTB, 0xc1: VPROTW, 0xc2: VPROTD, 0xc3: VPROTQ,
		0xcc: VPCOMB, 0xcd: VPCOMW, 0xce: VPCOMD, 0xcf: VPCOMQ,
		0xec: VPCOMUB, 0xed: VPCOMUW, 0xee: VPCOMUD, 0xef: VPCOMUQ,
	} {
		t[code] = m(f(op).ib())
	}
	return t
}()

var xop9 = func() (t [256]entry) {
	t[0x01] = m(
		f(BLCFILL).r(1), f(BLSFILL).r(2), f(BLCS).r(3), f(TZMSK).r(4),
		f(BLCIC).r(5), f(BLSIC).r(6), f(T1MSKC).r(7),
	)
	t[0x02] = m(f(BLCMSK).r(1), f(BLCI).r(6))
	for code, op := range map[byte]Op{
		0x80: VFRCZPS, 0x81: VFRCZPD, 0x82: VFRCZSS, 0x83: VFRCZSD,
		0x90: VPROTB, 0x91: VPROTW, 0x92: VPROTD, 0x93: VPROTQ,
		0x94: VPSHLB, 0x95: VPSHLW, 0x96: VPSHLD, 0x97: VPSHLQ,
		0x98: VPSHAB, 0x99: VPSHAW, 0x9a: VPSHAD, 0x9b: VPSHAQ,
		0xc1: VPHADDBW, 0xc2: VPHADDBD, 0xc3: VPHADDBQ, 0xc6: VPHADDWD, 0xc7: VPHADDWQ, 0xcb: VPHADDDQ,
		0xd1: VPHADDUBW, 0xd2: VPHADDUBD, 0xd3: VPHADDUBQ, 0xd6: VPHADDUWD, 0xd7: VPHADDUWQ, 0xdb: VPHADDUDQ,
		0xe1: VPHSUBBW, 0xe2: VPHSUBWD, 0xe3: VPHSUBDQ,
	} {
		t[code] = mo(op)
	}
	return t
}()

var xopA = func() (t [256]entry) {
	t[0x10] = m(f(BEXTR).with(immD))
	return t
}()
