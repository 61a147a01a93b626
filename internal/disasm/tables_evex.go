package disasm

// EVEX maps. Slots whose EVEX meaning keeps the legacy operation are
// copied from the legacy tables; the rest are listed explicitly. EVEX
// opcodes missing here decode as EVEXUnknown rather than failing, see
// evexFallback.

var noEVEX = func() map[Op]bool {
	skip := map[Op]bool{
		MOVMSKPS: true, MOVMSKPD: true, RSQRTPS: true, RSQRTSS: true, RCPPS: true, RCPSS: true,
		HADDPS: true, HADDPD: true, HSUBPS: true, HSUBPD: true, ADDSUBPS: true, ADDSUBPD: true,
		PMOVMSKB: true, LDDQU: true, MASKMOVDQU: true,
		PHADDW: true, PHADDD: true, PHADDSW: true, PHSUBW: true, PHSUBD: true, PHSUBSW: true,
		PSIGNB: true, PSIGNW: true, PSIGND: true, PTEST: true, PHMINPOSUW: true, AESIMC: true,
	}
	for op := range noVEX {
		skip[op] = true
	}
	return skip
}()

// add appends forms to a slot, creating it when empty.
func add(e *entry, forms ...form) {
	e.modrm = true
	e.forms = append(e.forms, forms...)
}

func copyEVEX(t *[256]entry, src *[256]entry, ranges [][2]int, strip func(int) bool) {
	for _, r := range ranges {
		for code := r[0]; code <= r[1]; code++ {
			t[code] = fromLegacy(src[code], strip(code), noEVEX)
		}
	}
}

func always(int) bool { return true }

var evex0F = func() (t [256]entry) {
	copyEVEX(&t, &secondary, [][2]int{
		{0x10, 0x17}, {0x28, 0x2f}, {0x51, 0x51}, {0x54, 0x76}, {0x7e, 0x7e}, {0xc2, 0xc6}, {0xd1, 0xfe},
	}, integerSlot)

	e := func(op Op) form { return f(op).p(p66) }
	t[0x6f] = m(
		e(VMOVDQA32).w0(), e(VMOVDQA64).w1(),
		f(VMOVDQU32).p(pF3).w0(), f(VMOVDQU64).p(pF3).w1(),
		f(VMOVDQU8).p(pF2).w0(), f(VMOVDQU16).p(pF2).w1(),
	)
	t[0x71] = m(e(PSRLW).r(2).ib(), e(PSRAW).r(4).ib(), e(PSLLW).r(6).ib())
	t[0x72] = m(
		e(VPRORD).r(0).ib(), e(VPROLD).r(1).ib(), e(PSRLD).r(2).ib(),
		e(PSRAD).r(4).ib(), e(PSLLD).r(6).ib(),
	)
	t[0x73] = m(e(PSRLQ).r(2).ib(), e(PSRLDQ).r(3).ib(), e(PSLLQ).r(6).ib(), e(PSLLDQ).r(7).ib())
	t[0x78] = sse(VCVTTPS2UDQ, VCVTTPS2UQQ, VCVTTSS2USI, VCVTTSD2USI)
	t[0x79] = sse(VCVTPS2UDQ, VCVTPS2UQQ, VCVTSS2USI, VCVTSD2USI)
	t[0x7a] = sse(0, VCVTTPS2QQ, VCVTUDQ2PD, VCVTUDQ2PS)
	t[0x7b] = sse(0, VCVTPS2QQ, VCVTUSI2SS, VCVTUSI2SD)
	t[0x7f] = m(
		e(VMOVDQA32).w0(), e(VMOVDQA64).w1(),
		f(VMOVDQU32).p(pF3).w0(), f(VMOVDQU64).p(pF3).w1(),
		f(VMOVDQU8).p(pF2).w0(), f(VMOVDQU16).p(pF2).w1(),
	)
	return t
}()

var evex0F38 = func() (t [256]entry) {
	copyEVEX(&t, &map0F38, [][2]int{
		{0x00, 0x00}, {0x04, 0x04}, {0x0b, 0x0b}, {0x1c, 0x1e}, {0x20, 0x25}, {0x28, 0x2b},
		{0x30, 0x35}, {0x37, 0x40}, {0xcf, 0xcf}, {0xdc, 0xdf},
	}, always)

	e := func(op Op) form { return f(op).p(p66) }
	x := func(op Op) form { return f(op).p(pF3) }

	t[0x0c] = m(e(VPERMILPS).w0())
	t[0x0d] = m(e(VPERMILPD).w1())
	t[0x10] = m(e(VPSRLVW).w1(), x(VPMOVUSWB).w0())
	t[0x11] = m(e(VPSRAVW).w1(), x(VPMOVUSDB).w0())
	t[0x12] = m(e(VPSLLVW).w1(), x(VPMOVUSQB).w0())
	t[0x13] = m(e(VCVTPH2PS).w0(), x(VPMOVUSDW).w0())
	t[0x14] = m(e(VPRORVD), x(VPMOVUSQW).w0())
	t[0x15] = m(e(VPROLVD), x(VPMOVUSQD).w0())
	t[0x16] = m(e(VPERMPS))
	t[0x18] = m(e(VBROADCASTSS).w0())
	t[0x19] = m(e(VBROADCASTSD))
	t[0x1a] = m(e(VBROADCASTF32X4).mem())
	t[0x1b] = m(e(VBROADCASTF64X4).mem())
	t[0x1f] = m(e(VPABSQ).w1())
	add(&t[0x20], x(VPMOVSWB).w0())
	add(&t[0x21], x(VPMOVSDB).w0())
	add(&t[0x22], x(VPMOVSQB).w0())
	add(&t[0x23], x(VPMOVSDW).w0())
	add(&t[0x24], x(VPMOVSQW).w0())
	add(&t[0x25], x(VPMOVSQD).w0())
	t[0x26] = m(e(VPTESTMB), x(VPTESTNMB))
	t[0x27] = m(e(VPTESTMD), x(VPTESTNMD))
	add(&t[0x28], x(VPMOVM2B).regs())
	add(&t[0x29], x(VPMOVB2M).regs())
	add(&t[0x2a], x(VPBROADCASTMB2Q).regs().w1())
	t[0x2c] = m(e(VSCALEFPS))
	t[0x2d] = m(e(VSCALEFSS))
	add(&t[0x30], x(VPMOVWB).w0())
	add(&t[0x31], x(VPMOVDB).w0())
	add(&t[0x32], x(VPMOVQB).w0())
	add(&t[0x33], x(VPMOVDW).w0())
	add(&t[0x34], x(VPMOVQW).w0())
	add(&t[0x35], x(VPMOVQD).w0())
	t[0x36] = m(e(VPERMD))
	add(&t[0x38], x(VPMOVM2D).regs())
	add(&t[0x39], x(VPMOVD2M).regs())
	add(&t[0x3a], x(VPBROADCASTMW2D).regs().w0())
	t[0x40] = m(e(PMULLD).w0(), e(VPMULLQ).w1())
	t[0x42] = m(e(VGETEXPPS))
	t[0x43] = m(e(VGETEXPSS))
	t[0x44] = m(e(VPLZCNTD))
	t[0x45] = m(e(VPSRLVD).w0(), e(VPSRLVQ).w1())
	t[0x46] = m(e(VPSRAVD))
	t[0x47] = m(e(VPSLLVD).w0(), e(VPSLLVQ).w1())
	t[0x4c] = m(e(VRCP14PS))
	t[0x4d] = m(e(VRCP14SS))
	t[0x4e] = m(e(VRSQRT14PS))
	t[0x4f] = m(e(VRSQRT14SS))
	t[0x50] = m(e(VPDPBUSD).w0())
	t[0x51] = m(e(VPDPBUSDS).w0())
	t[0x52] = m(e(VPDPWSSD).w0(), x(VDPBF16PS).w0())
	t[0x53] = m(e(VPDPWSSDS).w0())
	t[0x54] = m(e(VPOPCNTB))
	t[0x55] = m(e(VPOPCNTD))
	t[0x58] = m(e(VPBROADCASTD).w0())
	t[0x59] = m(e(VPBROADCASTQ))
	t[0x5a] = m(e(VBROADCASTI32X4).mem())
	t[0x5b] = m(e(VBROADCASTI64X4).mem())
	t[0x62] = m(e(VPEXPANDB))
	t[0x63] = m(e(VPCOMPRESSB))
	t[0x64] = m(e(VPBLENDMD))
	t[0x65] = m(e(VBLENDMPS))
	t[0x66] = m(e(VPBLENDMB))
	t[0x68] = m(f(VP2INTERSECTD).p(pF2).w0(), f(VP2INTERSECTQ).p(pF2).w1())
	t[0x70] = m(e(VPSHLDVW).w1())
	t[0x71] = m(e(VPSHLDVD))
	t[0x72] = m(e(VPSHRDVW).w1(), x(VCVTNEPS2BF16).w0(), f(VCVTNE2PS2BF16).p(pF2).w0())
	t[0x73] = m(e(VPSHRDVD))
	t[0x75] = m(e(VPERMI2B).w0(), e(VPERMI2W).w1())
	t[0x76] = m(e(VPERMI2D))
	t[0x77] = m(e(VPERMI2PS))
	t[0x78] = m(e(VPBROADCASTB).w0())
	t[0x79] = m(e(VPBROADCASTW).w0())
	t[0x7a] = m(e(VPBROADCASTB).regs().w0())
	t[0x7b] = m(e(VPBROADCASTW).regs().w0())
	t[0x7c] = m(e(VPBROADCASTD).regs())
	t[0x7d] = m(e(VPERMT2B).w0(), e(VPERMT2W).w1())
	t[0x7e] = m(e(VPERMT2D))
	t[0x7f] = m(e(VPERMT2PS))
	t[0x83] = m(e(VPMULTISHIFTQB).w1())
	t[0x88] = m(e(VEXPANDPS))
	t[0x89] = m(e(VPEXPANDD))
	t[0x8a] = m(e(VCOMPRESSPS))
	t[0x8b] = m(e(VPCOMPRESSD))
	t[0x8d] = m(e(VPERMB).w0(), e(VPERMW).w1())
	t[0x8f] = m(e(VPSHUFBITQMB).w0())
	t[0x90] = m(e(VPGATHERDD).w0().mem(), e(VPGATHERDQ).w1().mem())
	t[0x91] = m(e(VPGATHERQD).w0().mem(), e(VPGATHERQQ).w1().mem())
	t[0x92] = m(e(VGATHERDPS).w0().mem(), e(VGATHERDPD).w1().mem())
	t[0x93] = m(e(VGATHERQPS).w0().mem(), e(VGATHERQPD).w1().mem())
	t[0xa0] = m(e(VPSCATTERDD).w0().mem(), e(VPSCATTERDQ).w1().mem())
	t[0xa1] = m(e(VPSCATTERQD).w0().mem(), e(VPSCATTERQQ).w1().mem())
	t[0xa2] = m(e(VSCATTERDPS).w0().mem(), e(VSCATTERDPD).w1().mem())
	t[0xa3] = m(e(VSCATTERQPS).w0().mem(), e(VSCATTERQPD).w1().mem())
	for i, ops := range fma3 {
		for j, base := range []int{0x96, 0xa6, 0xb6} {
			t[base+i] = m(e(ops[j][0]).w0(), e(ops[j][1]).w1())
		}
	}
	t[0xb4] = m(e(VPMADD52LUQ).w1())
	t[0xb5] = m(e(VPMADD52HUQ).w1())
	t[0xc4] = m(e(VPCONFLICTD))
	return t
}()

var evex0F3A = func() (t [256]entry) {
	copyEVEX(&t, &map0F3A, [][2]int{
		{0x0f, 0x0f}, {0x14, 0x17}, {0x20, 0x22}, {0x44, 0x44}, {0xce, 0xcf},
	}, always)

	e := func(op Op) form { return f(op).p(p66).ib() }
	t[0x00] = m(e(VPERMQ).w1())
	t[0x01] = m(e(VPERMPD).w1())
	t[0x03] = m(e(VALIGND))
	t[0x04] = m(e(VPERMILPS).w0())
	t[0x05] = m(e(VPERMILPD).w1())
	t[0x08] = m(e(VRNDSCALEPS).w0())
	t[0x09] = m(e(VRNDSCALEPD).w1())
	t[0x0a] = m(e(VRNDSCALESS).w0())
	t[0x0b] = m(e(VRNDSCALESD).w1())
	t[0x18] = m(e(VINSERTF32X4).w0(), e(VINSERTF64X2).w1())
	t[0x19] = m(e(VEXTRACTF32X4).w0(), e(VEXTRACTF64X2).w1())
	t[0x1a] = m(e(VINSERTF32X8).w0(), e(VINSERTF64X4).w1())
	t[0x1b] = m(e(VEXTRACTF32X8).w0(), e(VEXTRACTF64X4).w1())
	t[0x1d] = m(e(VCVTPS2PH).w0())
	t[0x1e] = m(e(VPCMPUD))
	t[0x1f] = m(e(VPCMPD))
	t[0x23] = m(e(VSHUFF32X4))
	t[0x25] = m(e(VPTERNLOGD))
	t[0x26] = m(e(VGETMANTPS))
	t[0x27] = m(e(VGETMANTSS))
	t[0x38] = m(e(VINSERTI32X4).w0(), e(VINSERTI64X2).w1())
	t[0x39] = m(e(VEXTRACTI32X4).w0(), e(VEXTRACTI64X2).w1())
	t[0x3a] = m(e(VINSERTI32X8).w0(), e(VINSERTI64X4).w1())
	t[0x3b] = m(e(VEXTRACTI32X8).w0(), e(VEXTRACTI64X4).w1())
	t[0x3e] = m(e(VPCMPUB))
	t[0x3f] = m(e(VPCMPB))
	t[0x42] = m(e(VDBPSADBW).w0())
	t[0x43] = m(e(VSHUFI32X4))
	t[0x50] = m(e(VRANGEPS))
	t[0x51] = m(e(VRANGESS))
	t[0x54] = m(e(VFIXUPIMMPS))
	t[0x55] = m(e(VFIXUPIMMSS))
	t[0x56] = m(e(VREDUCEPS))
	t[0x57] = m(e(VREDUCESS))
	t[0x66] = m(e(VFPCLASSPS))
	t[0x67] = m(e(VFPCLASSSS))
	t[0x70] = m(e(VPSHLDW).w1())
	t[0x71] = m(e(VPSHLDD))
	t[0x72] = m(e(VPSHRDW).w1())
	t[0x73] = m(e(VPSHRDD))
	return t
}()

// evexFP16 is the opcode table of EVEX maps 5 and 6. Both maps hold only
// AVX512-FP16 operations without immediates, so every slot decodes through
// the fallback.
var evexFP16 [256]entry

// evexFallback returns the immediate kind of an EVEX opcode that has no
// table entry, so its length is still exact.
func evexFallback(mp Map, code byte) immKind {
	switch {
	case mp == Map0F3A:
		return immB
	case mp == Map0F && (code >= 0x70 && code <= 0x73 || code >= 0xc2 && code <= 0xc6):
		return immB
	}
	return immNone
}
