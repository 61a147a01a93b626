package disasm

// alu builds the six classic ALU slots starting at base.
func alu(t *[256]entry, base byte, op Op) {
	t[base+0] = mo(op)
	t[base+1] = mo(op)
	t[base+2] = mo(op)
	t[base+3] = mo(op)
	t[base+4] = n(f(op).ib())
	t[base+5] = n(f(op).iz())
}

func group1(imm immKind) []form {
	ops := []Op{ADD, OR, ADC, SBB, AND, SUB, XOR, CMP}
	forms := make([]form, len(ops))
	for i, op := range ops {
		forms[i] = f(op).r(int8(i)).with(imm)
	}
	return forms
}

func group2(imm immKind) []form {
	ops := []Op{ROL, ROR, RCL, RCR, SHL, SHR, SAL, SAR}
	forms := make([]form, len(ops))
	for i, op := range ops {
		forms[i] = f(op).r(int8(i)).with(imm)
	}
	return forms
}

func group3(imm immKind) []form {
	return []form{
		f(TEST).r(0).with(imm), f(TEST).r(1).with(imm),
		f(NOT).r(2), f(NEG).r(3), f(MUL).r(4), f(IMUL).r(5), f(DIV).r(6), f(IDIV).r(7),
	}
}

var primary = func() (t [256]entry) {
	alu(&t, 0x00, ADD)
	alu(&t, 0x08, OR)
	alu(&t, 0x10, ADC)
	alu(&t, 0x18, SBB)
	alu(&t, 0x20, AND)
	alu(&t, 0x28, SUB)
	alu(&t, 0x30, XOR)
	alu(&t, 0x38, CMP)

	for _, b := range []byte{0x06, 0x0e, 0x16, 0x1e} {
		t[b] = n(f(PUSH).i64())
	}
	for _, b := range []byte{0x07, 0x17, 0x1f} {
		t[b] = n(f(POP).i64())
	}
	t[0x27] = n(f(DAA).i64())
	t[0x2f] = n(f(DAS).i64())
	t[0x37] = n(f(AAA).i64())
	t[0x3f] = n(f(AAS).i64())

	// 40-4F are REX prefixes in 64-bit mode and never reach the table.
	for b := 0x40; b < 0x48; b++ {
		t[b] = n(f(INC).i64())
		t[b+8] = n(f(DEC).i64())
	}
	for b := 0x50; b < 0x58; b++ {
		t[b] = no(PUSH)
		t[b+8] = no(POP)
	}
	t[0x60] = n(f(PUSHA).i64())
	t[0x61] = n(f(POPA).i64())
	t[0x62] = m(f(BOUND).mem().i64())
	t[0x63] = m(f(MOVSXD).o64(), f(ARPL))
	t[0x68] = n(f(PUSH).iz())
	t[0x69] = m(f(IMUL).iz())
	t[0x6a] = n(f(PUSH).ib())
	t[0x6b] = m(f(IMUL).ib())
	t[0x6c] = no(INS)
	t[0x6d] = no(INS)
	t[0x6e] = no(OUTS)
	t[0x6f] = no(OUTS)
	for b := 0x70; b < 0x80; b++ {
		t[b] = n(f(JCC).ib())
	}

	t[0x80] = m(group1(immB)...)
	t[0x81] = m(group1(immZ)...)
	g := group1(immB)
	for i := range g {
		g[i] = g[i].i64()
	}
	t[0x82] = m(g...)
	t[0x83] = m(group1(immB)...)
	t[0x84] = mo(TEST)
	t[0x85] = mo(TEST)
	t[0x86] = mo(XCHG)
	t[0x87] = mo(XCHG)
	for b := 0x88; b < 0x8d; b++ {
		t[b] = mo(MOV)
	}
	t[0x8d] = m(f(LEA).mem())
	t[0x8e] = mo(MOV)
	t[0x8f] = m(f(POP).r(0))

	t[0x90] = no(NOP)
	for b := 0x91; b < 0x98; b++ {
		t[b] = no(XCHG)
	}
	t[0x98] = no(CBW)
	t[0x99] = no(CWD)
	t[0x9a] = n(f(CALLF).with(immPtr).i64())
	t[0x9b] = no(FWAIT)
	t[0x9c] = no(PUSHF)
	t[0x9d] = no(POPF)
	t[0x9e] = no(SAHF)
	t[0x9f] = no(LAHF)

	for b := 0xa0; b < 0xa4; b++ {
		t[b] = n(f(MOV).with(immMoffs))
	}
	t[0xa4] = no(MOVS)
	t[0xa5] = no(MOVS)
	t[0xa6] = no(CMPS)
	t[0xa7] = no(CMPS)
	t[0xa8] = n(f(TEST).ib())
	t[0xa9] = n(f(TEST).iz())
	t[0xaa] = no(STOS)
	t[0xab] = no(STOS)
	t[0xac] = no(LODS)
	t[0xad] = no(LODS)
	t[0xae] = no(SCAS)
	t[0xaf] = no(SCAS)
	for b := 0xb0; b < 0xb8; b++ {
		t[b] = n(f(MOV).ib())
		t[b+8] = n(f(MOV).with(immV))
	}

	t[0xc0] = m(group2(immB)...)
	t[0xc1] = m(group2(immB)...)
	t[0xc2] = n(f(RET).iw())
	t[0xc3] = no(RET)
	// C4/C5 only reach the table as LES/LDS; VEX is recognized earlier.
	t[0xc4] = m(f(LES).mem().i64())
	t[0xc5] = m(f(LDS).mem().i64())
	t[0xc6] = m(f(MOV).r(0).ib(), f(XABORT).r(7).rmIs(0).regs().ib())
	t[0xc7] = m(f(MOV).r(0).iz(), f(XBEGIN).r(7).rmIs(0).regs().jz())
	t[0xc8] = n(f(ENTER).with(immWB))
	t[0xc9] = no(LEAVE)
	t[0xca] = n(f(RETF).iw())
	t[0xcb] = no(RETF)
	t[0xcc] = no(INT3)
	t[0xcd] = n(f(INT).ib())
	t[0xce] = n(f(INTO).i64())
	t[0xcf] = no(IRET)

	t[0xd0] = m(group2(immNone)...)
	t[0xd1] = m(group2(immNone)...)
	t[0xd2] = m(group2(immNone)...)
	t[0xd3] = m(group2(immNone)...)
	t[0xd4] = n(f(AAM).ib().i64())
	t[0xd5] = n(f(AAD).ib().i64())
	t[0xd7] = no(XLAT)
	for b := 0xd8; b < 0xe0; b++ {
		t[b] = x87(byte(b))
	}

	t[0xe0] = n(f(LOOPNE).ib())
	t[0xe1] = n(f(LOOPE).ib())
	t[0xe2] = n(f(LOOP).ib())
	t[0xe3] = n(f(JCXZ).ib())
	t[0xe4] = n(f(IN).ib())
	t[0xe5] = n(f(IN).ib())
	t[0xe6] = n(f(OUT).ib())
	t[0xe7] = n(f(OUT).ib())
	t[0xe8] = n(f(CALL).jz())
	t[0xe9] = n(f(JMP).jz())
	t[0xea] = n(f(JMPF).with(immPtr).i64())
	t[0xeb] = n(f(JMP).ib())
	t[0xec] = no(IN)
	t[0xed] = no(IN)
	t[0xee] = no(OUT)
	t[0xef] = no(OUT)

	t[0xf1] = no(INT1)
	t[0xf4] = no(HLT)
	t[0xf5] = no(CMC)
	t[0xf6] = m(group3(immB)...)
	t[0xf7] = m(group3(immZ)...)
	t[0xf8] = no(CLC)
	t[0xf9] = no(STC)
	t[0xfa] = no(CLI)
	t[0xfb] = no(STI)
	t[0xfc] = no(CLD)
	t[0xfd] = no(STD)
	t[0xfe] = m(f(INC).r(0), f(DEC).r(1))
	t[0xff] = m(
		f(INC).r(0), f(DEC).r(1), f(CALL).r(2), f(CALLF).r(3).mem(),
		f(JMP).r(4), f(JMPF).r(5).mem(), f(PUSH).r(6),
	)
	return t
}()

// x87 resolves the escape opcodes D8-DF. The forms that need more than
// the x87 unit are split out; everything else is X87.
func x87(op byte) entry {
	switch op {
	case 0xda:
		return m(
			f(FCMOV).regs().r(0), f(FCMOV).regs().r(1), f(FCMOV).regs().r(2), f(FCMOV).regs().r(3),
			f(X87),
		)
	case 0xdb:
		return m(
			f(FISTTP).mem().r(1),
			f(FCMOV).regs().r(0), f(FCMOV).regs().r(1), f(FCMOV).regs().r(2), f(FCMOV).regs().r(3),
			f(FCOMI).regs().r(5), f(FCOMI).regs().r(6),
			f(X87).mem().r(0), f(X87).mem().r(2), f(X87).mem().r(3), f(X87).mem().r(5), f(X87).mem().r(7),
			f(X87).regs().r(4),
		)
	case 0xdd:
		return m(f(FISTTP).mem().r(1), f(X87))
	case 0xdf:
		return m(f(FISTTP).mem().r(1), f(FCOMI).regs().r(5), f(FCOMI).regs().r(6), f(X87))
	}
	return mo(X87)
}

// sse builds an SSE slot from the four mandatory-prefix meanings. A zero
// Op leaves that prefix undefined.
func sse(none, o66, f3, f2 Op, extra ...func(form) form) entry {
	var forms []form
	for i, op := range []Op{none, o66, f3, f2} {
		if op == 0 {
			continue
		}
		x := f(op).p(pfxMask(1 << i))
		for _, fn := range extra {
			x = fn(x)
		}
		forms = append(forms, x)
	}
	return m(forms...)
}

// mmx builds a slot with an MMX form and a 66 SSE2 form of the same op.
func mmx(op Op, extra ...func(form) form) entry { return sse(op, op, 0, 0, extra...) }

func withIb(x form) form   { return x.ib() }
func withMem(x form) form  { return x.mem() }
func withRegs(x form) form { return x.regs() }

var secondary = func() (t [256]entry) {
	t[0x00] = m(f(SLDT).r(0), f(STR).r(1), f(LLDT).r(2), f(LTR).r(3), f(VERR).r(4), f(VERW).r(5))
	t[0x01] = m(
		f(SGDT).mem().r(0), f(SIDT).mem().r(1), f(LGDT).mem().r(2), f(LIDT).mem().r(3),
		f(SMSW).r(4), f(RSTORSSP).mem().r(5).p(pF3), f(LMSW).r(6), f(INVLPG).mem().r(7),
		f(VMCALL).regs().r(0).rmIs(1), f(VMLAUNCH).regs().r(0).rmIs(2),
		f(VMRESUME).regs().r(0).rmIs(3), f(VMXOFF).regs().r(0).rmIs(4),
		f(MONITOR).regs().r(1).rmIs(0), f(MWAIT).regs().r(1).rmIs(1),
		f(CLAC).regs().r(1).rmIs(2), f(STAC).regs().r(1).rmIs(3),
		f(XGETBV).regs().r(2).rmIs(0), f(XSETBV).regs().r(2).rmIs(1),
		f(VMFUNC).regs().r(2).rmIs(4), f(XEND).regs().r(2).rmIs(5), f(XTEST).regs().r(2).rmIs(6),
		f(VMRUN).regs().r(3).rmIs(0), f(VMMCALL).regs().r(3).rmIs(1),
		f(VMLOAD).regs().r(3).rmIs(2), f(VMSAVE).regs().r(3).rmIs(3),
		f(STGI).regs().r(3).rmIs(4), f(CLGI).regs().r(3).rmIs(5),
		f(SKINIT).regs().r(3).rmIs(6), f(INVLPGA).regs().r(3).rmIs(7),
		f(SETSSBSY).regs().r(5).rmIs(0).p(pF3), f(SAVEPREVSSP).regs().r(5).rmIs(2).p(pF3),
		f(SERIALIZE).regs().r(5).rmIs(0).p(pN),
		f(RDPKRU).regs().r(5).rmIs(6), f(WRPKRU).regs().r(5).rmIs(7),
		f(SWAPGS).regs().r(7).rmIs(0).o64(), f(RDTSCP).regs().r(7).rmIs(1),
		f(MONITORX).regs().r(7).rmIs(2), f(MWAITX).regs().r(7).rmIs(3),
		f(CLZERO).regs().r(7).rmIs(4),
	)
	t[0x02] = mo(LAR)
	t[0x03] = mo(LSL)
	t[0x05] = no(SYSCALL)
	t[0x06] = no(CLTS)
	t[0x07] = no(SYSRET)
	t[0x08] = no(INVD)
	t[0x09] = no(WBINVD)
	t[0x0b] = no(UD2)
	t[0x0d] = m(f(PREFETCHW).mem().r(1), f(PREFETCHWT1).mem().r(2), f(PREFETCH).mem(), f(NOP))
	t[0x0e] = no(FEMMS)
	// 0F 0F is 3DNow! and is handled by the decoder directly.

	t[0x10] = sse(MOVUPS, MOVUPD, MOVSS, MOVSD)
	t[0x11] = sse(MOVUPS, MOVUPD, MOVSS, MOVSD)
	t[0x12] = m(
		f(MOVLPS).p(pN).mem(), f(MOVHLPS).p(pN).regs(), f(MOVLPD).p(p66).mem(),
		f(MOVSLDUP).p(pF3), f(MOVDDUP).p(pF2),
	)
	t[0x13] = sse(MOVLPS, MOVLPD, 0, 0, withMem)
	t[0x14] = sse(UNPCKLPS, UNPCKLPD, 0, 0)
	t[0x15] = sse(UNPCKHPS, UNPCKHPD, 0, 0)
	t[0x16] = m(
		f(MOVHPS).p(pN).mem(), f(MOVLHPS).p(pN).regs(), f(MOVHPD).p(p66).mem(),
		f(MOVSHDUP).p(pF3),
	)
	t[0x17] = sse(MOVHPS, MOVHPD, 0, 0, withMem)
	t[0x18] = m(
		f(PREFETCHNTA).mem().r(0), f(PREFETCHT0).mem().r(1),
		f(PREFETCHT1).mem().r(2), f(PREFETCHT2).mem().r(3), f(NOP),
	)
	t[0x19] = mo(NOP)
	t[0x1a] = mo(NOP)
	t[0x1b] = mo(NOP)
	t[0x1c] = mo(NOP)
	t[0x1d] = mo(NOP)
	t[0x1e] = m(
		f(ENDBR64).p(pF3).regs().r(7).rmIs(2), f(ENDBR32).p(pF3).regs().r(7).rmIs(3),
		f(RDSSP).p(pF3).regs().r(1), f(NOP),
	)
	t[0x1f] = mo(NOP)
	for b := 0x20; b < 0x24; b++ {
		t[b] = mo(MOV)
	}

	t[0x28] = sse(MOVAPS, MOVAPD, 0, 0)
	t[0x29] = sse(MOVAPS, MOVAPD, 0, 0)
	t[0x2a] = sse(CVTPI2PS, CVTPI2PD, CVTSI2SS, CVTSI2SD)
	t[0x2b] = sse(MOVNTPS, MOVNTPD, MOVNTSS, MOVNTSD, withMem)
	t[0x2c] = sse(CVTTPS2PI, CVTTPD2PI, CVTTSS2SI, CVTTSD2SI)
	t[0x2d] = sse(CVTPS2PI, CVTPD2PI, CVTSS2SI, CVTSD2SI)
	t[0x2e] = sse(UCOMISS, UCOMISD, 0, 0)
	t[0x2f] = sse(COMISS, COMISD, 0, 0)

	t[0x30] = no(WRMSR)
	t[0x31] = no(RDTSC)
	t[0x32] = no(RDMSR)
	t[0x33] = no(RDPMC)
	t[0x34] = no(SYSENTER)
	t[0x35] = no(SYSEXIT)
	t[0x37] = no(GETSEC)
	for b := 0x40; b < 0x50; b++ {
		t[b] = mo(CMOVCC)
	}

	t[0x50] = sse(MOVMSKPS, MOVMSKPD, 0, 0, withRegs)
	t[0x51] = sse(SQRTPS, SQRTPD, SQRTSS, SQRTSD)
	t[0x52] = sse(RSQRTPS, 0, RSQRTSS, 0)
	t[0x53] = sse(RCPPS, 0, RCPSS, 0)
	t[0x54] = sse(ANDPS, ANDPD, 0, 0)
	t[0x55] = sse(ANDNPS, ANDNPD, 0, 0)
	t[0x56] = sse(ORPS, ORPD, 0, 0)
	t[0x57] = sse(XORPS, XORPD, 0, 0)
	t[0x58] = sse(ADDPS, ADDPD, ADDSS, ADDSD)
	t[0x59] = sse(MULPS, MULPD, MULSS, MULSD)
	t[0x5a] = sse(CVTPS2PD, CVTPD2PS, CVTSS2SD, CVTSD2SS)
	t[0x5b] = sse(CVTDQ2PS, CVTPS2DQ, CVTTPS2DQ, 0)
	t[0x5c] = sse(SUBPS, SUBPD, SUBSS, SUBSD)
	t[0x5d] = sse(MINPS, MINPD, MINSS, MINSD)
	t[0x5e] = sse(DIVPS, DIVPD, DIVSS, DIVSD)
	t[0x5f] = sse(MAXPS, MAXPD, MAXSS, MAXSD)

	for i, op := range []Op{
		PUNPCKLBW, PUNPCKLWD, PUNPCKLDQ, PACKSSWB, PCMPGTB, PCMPGTW, PCMPGTD, PACKUSWB,
		PUNPCKHBW, PUNPCKHWD, PUNPCKHDQ, PACKSSDW,
	} {
		t[0x60+i] = mmx(op)
	}
	t[0x6c] = sse(0, PUNPCKLQDQ, 0, 0)
	t[0x6d] = sse(0, PUNPCKHQDQ, 0, 0)
	t[0x6e] = mmx(MOVD)
	t[0x6f] = sse(MOVQ, MOVDQA, MOVDQU, 0)
	t[0x70] = sse(PSHUFW, PSHUFD, PSHUFHW, PSHUFLW, withIb)
	t[0x71] = m(
		f(PSRLW).p(pN|p66).regs().r(2).ib(), f(PSRAW).p(pN|p66).regs().r(4).ib(),
		f(PSLLW).p(pN|p66).regs().r(6).ib(),
	)
	t[0x72] = m(
		f(PSRLD).p(pN|p66).regs().r(2).ib(), f(PSRAD).p(pN|p66).regs().r(4).ib(),
		f(PSLLD).p(pN|p66).regs().r(6).ib(),
	)
	t[0x73] = m(
		f(PSRLQ).p(pN|p66).regs().r(2).ib(), f(PSRLDQ).p(p66).regs().r(3).ib(),
		f(PSLLQ).p(pN|p66).regs().r(6).ib(), f(PSLLDQ).p(p66).regs().r(7).ib(),
	)
	t[0x74] = mmx(PCMPEQB)
	t[0x75] = mmx(PCMPEQW)
	t[0x76] = mmx(PCMPEQD)
	t[0x77] = n(f(EMMS).p(pN))
	t[0x78] = m(f(VMREAD).p(pN), f(EXTRQ).p(p66).regs().r(0).with(immBB), f(INSERTQ).p(pF2).regs().with(immBB))
	t[0x79] = m(f(VMWRITE).p(pN), f(EXTRQ).p(p66).regs(), f(INSERTQ).p(pF2).regs())
	t[0x7c] = sse(0, HADDPD, 0, HADDPS)
	t[0x7d] = sse(0, HSUBPD, 0, HSUBPS)
	t[0x7e] = sse(MOVD, MOVD, MOVQ, 0)
	t[0x7f] = sse(MOVQ, MOVDQA, MOVDQU, 0)

	for b := 0x80; b < 0x90; b++ {
		t[b] = n(f(JCC).jz())
		t[b+0x10] = mo(SETCC)
	}
	t[0xa0] = no(PUSH)
	t[0xa1] = no(POP)
	t[0xa2] = no(CPUID)
	t[0xa3] = mo(BT)
	t[0xa4] = m(f(SHLD).ib())
	t[0xa5] = mo(SHLD)
	t[0xa8] = no(PUSH)
	t[0xa9] = no(POP)
	t[0xaa] = no(RSM)
	t[0xab] = mo(BTS)
	t[0xac] = m(f(SHRD).ib())
	t[0xad] = mo(SHRD)
	t[0xae] = m(
		f(FXSAVE).p(pN).mem().r(0), f(FXRSTOR).p(pN).mem().r(1),
		f(LDMXCSR).p(pN).mem().r(2), f(STMXCSR).p(pN).mem().r(3),
		f(XSAVE).p(pN).mem().r(4), f(XRSTOR).p(pN).mem().r(5),
		f(XSAVEOPT).p(pN).mem().r(6), f(CLFLUSH).p(pN).mem().r(7),
		f(CLWB).p(p66).mem().r(6), f(CLFLUSHOPT).p(p66).mem().r(7),
		f(LFENCE).p(pN).regs().r(5), f(MFENCE).p(pN).regs().r(6), f(SFENCE).p(pN).regs().r(7),
		f(RDFSBASE).p(pF3).regs().r(0).o64(), f(RDGSBASE).p(pF3).regs().r(1).o64(),
		f(WRFSBASE).p(pF3).regs().r(2).o64(), f(WRGSBASE).p(pF3).regs().r(3).o64(),
		f(INCSSP).p(pF3).regs().r(5), f(CLRSSBSY).p(pF3).mem().r(6),
		f(TPAUSE).p(p66).regs().r(6), f(UMONITOR).p(pF3).regs().r(6), f(UMWAIT).p(pF2).regs().r(6),
	)
	t[0xaf] = mo(IMUL)
	t[0xb0] = mo(CMPXCHG)
	t[0xb1] = mo(CMPXCHG)
	t[0xb2] = m(f(LSS).mem())
	t[0xb3] = mo(BTR)
	t[0xb4] = m(f(LFS).mem())
	t[0xb5] = m(f(LGS).mem())
	t[0xb6] = mo(MOVZX)
	t[0xb7] = mo(MOVZX)
	t[0xb8] = m(f(POPCNT).p(pF3))
	t[0xb9] = mo(UD1)
	t[0xba] = m(f(BT).r(4).ib(), f(BTS).r(5).ib(), f(BTR).r(6).ib(), f(BTC).r(7).ib())
	t[0xbb] = mo(BTC)
	t[0xbc] = m(f(TZCNT).p(pF3), f(BSF))
	t[0xbd] = m(f(LZCNT).p(pF3), f(BSR))
	t[0xbe] = mo(MOVSX)
	t[0xbf] = mo(MOVSX)

	t[0xc0] = mo(XADD)
	t[0xc1] = mo(XADD)
	t[0xc2] = sse(CMPPS, CMPPD, CMPSS, CMPSD, withIb)
	t[0xc3] = m(f(MOVNTI).p(pN).mem())
	t[0xc4] = mmx(PINSRW, withIb)
	t[0xc5] = mmx(PEXTRW, withIb, withRegs)
	t[0xc6] = sse(SHUFPS, SHUFPD, 0, 0, withIb)
	t[0xc7] = m(
		f(CMPXCHG8B).mem().r(1).w0(), f(CMPXCHG16B).mem().r(1).w1(),
		f(XRSTORS).p(pN).mem().r(3), f(XSAVEC).p(pN).mem().r(4), f(XSAVES).p(pN).mem().r(5),
		f(VMPTRLD).p(pN).mem().r(6), f(VMCLEAR).p(p66).mem().r(6), f(VMXON).p(pF3).mem().r(6),
		f(VMPTRST).p(pN).mem().r(7),
		f(RDRAND).p(pN|p66).regs().r(6),
		f(RDSEED).p(pN|p66).regs().r(7), f(RDPID).p(pF3).regs().r(7),
	)
	for b := 0xc8; b < 0xd0; b++ {
		t[b] = no(BSWAP)
	}

	t[0xd0] = sse(0, ADDSUBPD, 0, ADDSUBPS)
	t[0xd6] = m(f(MOVQ).p(p66), f(MOVQ2DQ).p(pF3).regs(), f(MOVDQ2Q).p(pF2).regs())
	t[0xd7] = mmx(PMOVMSKB, withRegs)
	t[0xe6] = sse(0, CVTTPD2DQ, CVTDQ2PD, CVTPD2DQ)
	t[0xe7] = sse(MOVNTQ, MOVNTDQ, 0, 0, withMem)
	t[0xf0] = m(f(LDDQU).p(pF2).mem())
	t[0xf7] = sse(MASKMOVQ, MASKMOVDQU, 0, 0, withRegs)
	for code, op := range map[byte]Op{
		0xd1: PSRLW, 0xd2: PSRLD, 0xd3: PSRLQ, 0xd4: PADDQ, 0xd5: PMULLW,
		0xd8: PSUBUSB, 0xd9: PSUBUSW, 0xda: PMINUB, 0xdb: PAND,
		0xdc: PADDUSB, 0xdd: PADDUSW, 0xde: PMAXUB, 0xdf: PANDN,
		0xe0: PAVGB, 0xe1: PSRAW, 0xe2: PSRAD, 0xe3: PAVGW,
		0xe4: PMULHUW, 0xe5: PMULHW, 0xe8: PSUBSB, 0xe9: PSUBSW,
		0xea: PMINSW, 0xeb: POR, 0xec: PADDSB, 0xed: PADDSW,
		0xee: PMAXSW, 0xef: PXOR,
		0xf1: PSLLW, 0xf2: PSLLD, 0xf3: PSLLQ, 0xf4: PMULUDQ,
		0xf5: PMADDWD, 0xf6: PSADBW, 0xf8: PSUBB, 0xf9: PSUBW,
		0xfa: PSUBD, 0xfb: PSUBQ, 0xfc: PADDB, 0xfd: PADDW, 0xfe: PADDD,
	} {
		t[code] = mmx(op)
	}
	t[0xff] = mo(UD0)
	return t
}()

// amd3DNow maps the imm8 suffix of 0F 0F to its operation.
var amd3DNow = map[byte]Op{
	0x0c: PI2FW, 0x0d: PI2FD, 0x1c: PF2IW, 0x1d: PF2ID,
	0x8a: PFNACC, 0x8e: PFPNACC, 0x90: PFCMPGE, 0x94: PFMIN,
	0x96: PFRCP, 0x97: PFRSQRT, 0x9a: PFSUB, 0x9e: PFADD,
	0xa0: PFCMPGT, 0xa4: PFMAX, 0xa6: PFRCPIT1, 0xa7: PFRSQIT1,
	0xaa: PFSUBR, 0xae: PFACC, 0xb0: PFCMPEQ, 0xb4: PFMUL,
	0xb6: PFRCPIT2, 0xb7: PMULHRW, 0xbb: PSWAPD, 0xbf: PAVGUSB,
}
