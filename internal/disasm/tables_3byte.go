package disasm

// Legacy three-byte maps. Every 0F38 slot has a ModRM byte; every 0F3A
// slot has a ModRM byte and an imm8.

var map0F38 = func() (t [256]entry) {
	for i, op := range []Op{
		PSHUFB, PHADDW, PHADDD, PHADDSW, PMADDUBSW, PHSUBW, PHSUBD, PHSUBSW,
		PSIGNB, PSIGNW, PSIGND, PMULHRSW,
	} {
		t[i] = mmx(op)
	}
	t[0x10] = sse(0, PBLENDVB, 0, 0)
	t[0x14] = sse(0, BLENDVPS, 0, 0)
	t[0x15] = sse(0, BLENDVPD, 0, 0)
	t[0x17] = sse(0, PTEST, 0, 0)
	t[0x1c] = mmx(PABSB)
	t[0x1d] = mmx(PABSW)
	t[0x1e] = mmx(PABSD)
	for i, op := range []Op{PMOVSXBW, PMOVSXBD, PMOVSXBQ, PMOVSXWD, PMOVSXWQ, PMOVSXDQ} {
		t[0x20+i] = sse(0, op, 0, 0)
	}
	t[0x28] = sse(0, PMULDQ, 0, 0)
	t[0x29] = sse(0, PCMPEQQ, 0, 0)
	t[0x2a] = sse(0, MOVNTDQA, 0, 0, withMem)
	t[0x2b] = sse(0, PACKUSDW, 0, 0)
	for i, op := range []Op{PMOVZXBW, PMOVZXBD, PMOVZXBQ, PMOVZXWD, PMOVZXWQ, PMOVZXDQ} {
		t[0x30+i] = sse(0, op, 0, 0)
	}
	t[0x37] = sse(0, PCMPGTQ, 0, 0)
	for i, op := range []Op{
		PMINSB, PMINSD, PMINUW, PMINUD, PMAXSB, PMAXSD, PMAXUW, PMAXUD,
		PMULLD, PHMINPOSUW,
	} {
		t[0x38+i] = sse(0, op, 0, 0)
	}
	t[0x80] = sse(0, INVEPT, 0, 0, withMem)
	t[0x81] = sse(0, INVVPID, 0, 0, withMem)
	t[0x82] = sse(0, INVPCID, 0, 0, withMem)
	for i, op := range []Op{SHA1NEXTE, SHA1MSG1, SHA1MSG2, SHA256RNDS2, SHA256MSG1, SHA256MSG2} {
		t[0xc8+i] = sse(op, 0, 0, 0)
	}
	t[0xcf] = sse(0, GF2P8MULB, 0, 0)
	for i, op := range []Op{AESIMC, AESENC, AESENCLAST, AESDEC, AESDECLAST} {
		t[0xdb+i] = sse(0, op, 0, 0)
	}
	t[0xf0] = m(f(MOVBE).p(pN|p66).mem(), f(CRC32).p(pF2))
	t[0xf1] = m(f(MOVBE).p(pN|p66).mem(), f(CRC32).p(pF2))
	t[0xf5] = m(f(WRUSS).p(p66).mem())
	t[0xf6] = m(f(WRSS).p(pN).mem(), f(ADCX).p(p66), f(ADOX).p(pF3))
	t[0xf8] = m(f(MOVDIR64B).p(p66).mem())
	t[0xf9] = m(f(MOVDIRI).p(pN).mem())
	return t
}()

var map0F3A = func() (t [256]entry) {
	for i, op := range []Op{ROUNDPS, ROUNDPD, ROUNDSS, ROUNDSD, BLENDPS, BLENDPD, PBLENDW} {
		t[0x08+i] = sse(0, op, 0, 0, withIb)
	}
	t[0x0f] = mmx(PALIGNR, withIb)
	for i, op := range []Op{PEXTRB, PEXTRW, PEXTRD, EXTRACTPS} {
		t[0x14+i] = sse(0, op, 0, 0, withIb)
	}
	t[0x20] = sse(0, PINSRB, 0, 0, withIb)
	t[0x21] = sse(0, INSERTPS, 0, 0, withIb)
	t[0x22] = sse(0, PINSRD, 0, 0, withIb)
	t[0x40] = sse(0, DPPS, 0, 0, withIb)
	t[0x41] = sse(0, DPPD, 0, 0, withIb)
	t[0x42] = sse(0, MPSADBW, 0, 0, withIb)
	t[0x44] = sse(0, PCLMULQDQ, 0, 0, withIb)
	for i, op := range []Op{PCMPESTRM, PCMPESTRI, PCMPISTRM, PCMPISTRI} {
		t[0x60+i] = sse(0, op, 0, 0, withIb)
	}
	t[0xcc] = sse(SHA1RNDS4, 0, 0, 0, withIb)
	t[0xce] = sse(0, GF2P8AFFINEQB, 0, 0, withIb)
	t[0xcf] = sse(0, GF2P8AFFINEINVQB, 0, 0, withIb)
	t[0xdf] = sse(0, AESKEYGENASSIST, 0, 0, withIb)
	return t
}()
