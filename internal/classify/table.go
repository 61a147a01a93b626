package classify

import (
	d "isaext/internal/disasm"
	f "isaext/internal/feature"
)

func init() {
	base(
		d.AAA, d.AAD, d.AAM, d.AAS, d.ADC, d.ADD, d.AND, d.ARPL, d.BOUND, d.BSF, d.BSR,
		d.BSWAP, d.BT, d.BTC, d.BTR, d.BTS, d.CALL, d.CALLF, d.CBW, d.CLC, d.CLD, d.CLI,
		d.CLTS, d.CMC, d.CMP, d.CMPS, d.CMPXCHG, d.CPUID, d.CWD, d.DAA, d.DAS, d.DEC,
		d.DIV, d.ENTER, d.FWAIT, d.HLT, d.IDIV, d.IMUL, d.IN, d.INC, d.INS, d.INT,
		d.INT1, d.INT3, d.INTO, d.INVD, d.INVLPG, d.IRET, d.JCC, d.JCXZ, d.JMP, d.JMPF,
		d.LAR, d.LDS, d.LEA, d.LEAVE, d.LES, d.LFS, d.LGDT, d.LGS, d.LIDT, d.LLDT,
		d.LMSW, d.LODS, d.LOOP, d.LOOPE, d.LOOPNE, d.LSL, d.LSS, d.LTR, d.MOV, d.MOVS,
		d.MOVSX, d.MOVSXD, d.MOVZX, d.MUL, d.NEG, d.NOP, d.NOT, d.OR, d.OUT, d.OUTS,
		d.POP, d.POPA, d.POPF, d.PUSH, d.PUSHA, d.PUSHF, d.RCL, d.RCR, d.RDPMC, d.RET,
		d.RETF, d.ROL, d.ROR, d.RSM, d.SAL, d.SAR, d.SBB, d.SCAS, d.SETCC, d.SGDT,
		d.SHL, d.SHLD, d.SHR, d.SHRD, d.SIDT, d.SLDT, d.SMSW, d.STC, d.STD, d.STI,
		d.STOS, d.STR, d.SUB, d.SWAPGS, d.TEST, d.UD0, d.UD1, d.UD2, d.VERR, d.VERW,
		d.WBINVD, d.XADD, d.XCHG, d.XLAT, d.XOR,
	)

	// LAHF and SAHF were dropped by the first 64-bit processors.
	def(rules(on(legacy, f.LAHF_LM).only64(), on(legacy)), d.LAHF, d.SAHF)

	gp(ids(f.CMOV), d.CMOVCC)
	gp(ids(f.FPU), d.X87)
	gp(ids(f.FPU, f.CMOV), d.FCMOV, d.FCOMI)
	gp(ids(f.SSE3), d.FISTTP)
	gp(ids(f.CX8), d.CMPXCHG8B)
	gp(ids(f.CX16), d.CMPXCHG16B)
	gp(ids(f.TSC), d.RDTSC)
	gp(ids(f.MSR), d.RDMSR, d.WRMSR)
	gp(ids(f.SEP), d.SYSENTER, d.SYSEXIT)
	gp(ids(f.SYSCALL), d.SYSCALL, d.SYSRET)
	gp(ids(f.RDTSCP), d.RDTSCP)
	gp(ids(f.RDPID), d.RDPID)
	gp(ids(f.RDRAND), d.RDRAND)
	gp(ids(f.RDSEED), d.RDSEED)
	gp(ids(f.POPCNT), d.POPCNT)
	gp(ids(f.LZCNT), d.LZCNT)
	gp(ids(f.BMI1), d.TZCNT)
	gp(ids(f.MOVBE), d.MOVBE)
	gp(ids(f.SSE4_2), d.CRC32)
	gp(ids(f.ADX), d.ADCX, d.ADOX)
	gp(ids(f.FXSR), d.FXSAVE, d.FXRSTOR)
	gp(ids(f.XSAVE), d.XSAVE, d.XRSTOR, d.XGETBV, d.XSETBV)
	gp(ids(f.XSAVEOPT), d.XSAVEOPT)
	gp(ids(f.XSAVEC), d.XSAVEC)
	gp(ids(f.XSAVES), d.XSAVES, d.XRSTORS)
	gp(ids(f.FSGSBASE), d.RDFSBASE, d.RDGSBASE, d.WRFSBASE, d.WRGSBASE)
	gp(ids(f.RTM), d.XBEGIN, d.XABORT, d.XEND, d.XTEST)
	gp(ids(f.CLFSH), d.CLFLUSH)
	gp(ids(f.CLFLUSHOPT), d.CLFLUSHOPT)
	gp(ids(f.CLWB), d.CLWB)
	gp(ids(f.PREFETCHW), d.PREFETCH, d.PREFETCHW)
	gp(ids(f.PREFETCHWT1), d.PREFETCHWT1)
	gp(ids(f.SSE), d.PREFETCHNTA, d.PREFETCHT0, d.PREFETCHT1, d.PREFETCHT2, d.SFENCE)
	gp(ids(f.SSE2), d.LFENCE, d.MFENCE, d.MOVNTI)
	gp(ids(f.MONITOR), d.MONITOR, d.MWAIT)
	gp(ids(f.MONITORX), d.MONITORX, d.MWAITX)
	gp(ids(f.CET_IBT), d.ENDBR32, d.ENDBR64)
	gp(ids(f.CET_SS), d.RDSSP, d.INCSSP, d.SAVEPREVSSP, d.RSTORSSP, d.SETSSBSY, d.CLRSSBSY, d.WRSS, d.WRUSS)
	gp(ids(f.SERIALIZE), d.SERIALIZE)
	gp(ids(f.SMAP), d.CLAC, d.STAC)
	gp(ids(f.PKU), d.RDPKRU, d.WRPKRU)
	gp(ids(f.CLZERO), d.CLZERO)
	gp(ids(f.INVPCID), d.INVPCID)
	gp(ids(f.WAITPKG), d.TPAUSE, d.UMONITOR, d.UMWAIT)
	gp(ids(f.MOVDIRI), d.MOVDIRI)
	gp(ids(f.MOVDIR64B), d.MOVDIR64B)
	gp(ids(f.SMX), d.GETSEC)
	gp(ids(f.VMX),
		d.VMCALL, d.VMLAUNCH, d.VMRESUME, d.VMXOFF, d.VMREAD, d.VMWRITE, d.VMPTRLD,
		d.VMPTRST, d.VMCLEAR, d.VMXON, d.VMFUNC, d.INVEPT, d.INVVPID,
	)
	gp(ids(f.SVM), d.VMRUN, d.VMMCALL, d.VMLOAD, d.VMSAVE, d.STGI, d.CLGI, d.SKINIT, d.INVLPGA)
	gp(ids(f.SHA), d.SHA1NEXTE, d.SHA1MSG1, d.SHA1MSG2, d.SHA1RNDS4, d.SHA256RNDS2, d.SHA256MSG1, d.SHA256MSG2)
	gp(ids(f.SSE4A), d.EXTRQ, d.INSERTQ, d.MOVNTSS, d.MOVNTSD)

	// MMX and the SSE instructions that still operate on MMX registers.
	gp(ids(f.MMX), d.EMMS)
	gp(ids(f.D3NOW), d.FEMMS)
	gp(ids(f.SSE), d.MASKMOVQ, d.MOVNTQ, d.PSHUFW, d.CVTPI2PS, d.CVTPS2PI, d.CVTTPS2PI)
	gp(ids(f.SSE2), d.CVTPI2PD, d.CVTPD2PI, d.CVTTPD2PI, d.MOVQ2DQ, d.MOVDQ2Q)
	def(rules(on(amd3DNow, f.D3NOW)),
		d.PI2FW, d.PI2FD, d.PF2IW, d.PF2ID, d.PFNACC, d.PFPNACC, d.PFCMPGE, d.PFMIN,
		d.PFRCP, d.PFRSQRT, d.PFSUB, d.PFADD, d.PFCMPGT, d.PFMAX, d.PFRCPIT1, d.PFRSQIT1,
		d.PFSUBR, d.PFACC, d.PFCMPEQ, d.PFMUL, d.PFRCPIT2, d.PMULHRW, d.PSWAPD, d.PAVGUSB,
	)

	// MXCSR access moved to VEX along with AVX.
	def(rules(on(legacy, f.SSE), on(vex, f.AVX)), d.LDMXCSR, d.STMXCSR)

	packed(f.SSE, f.AVX512F,
		d.MOVUPS, d.MOVAPS, d.MOVLPS, d.MOVHPS, d.MOVHLPS, d.MOVLHPS, d.UNPCKLPS,
		d.UNPCKHPS, d.MOVNTPS, d.SQRTPS, d.ADDPS, d.MULPS, d.SUBPS, d.MINPS, d.DIVPS,
		d.MAXPS, d.CMPPS, d.SHUFPS, d.MOVMSKPS, d.RSQRTPS, d.RCPPS,
	)
	packed(f.SSE, f.AVX512DQ, d.ANDPS, d.ANDNPS, d.ORPS, d.XORPS)
	scalar(f.SSE, f.AVX512F,
		d.MOVSS, d.SQRTSS, d.ADDSS, d.MULSS, d.SUBSS, d.MINSS, d.DIVSS, d.MAXSS, d.CMPSS,
		d.UCOMISS, d.COMISS, d.CVTSI2SS, d.CVTSS2SI, d.CVTTSS2SI, d.RSQRTSS, d.RCPSS,
	)
	packed(f.SSE2, f.AVX512F,
		d.MOVUPD, d.MOVAPD, d.MOVLPD, d.MOVHPD, d.UNPCKLPD, d.UNPCKHPD, d.MOVNTPD,
		d.SQRTPD, d.ADDPD, d.MULPD, d.SUBPD, d.MINPD, d.DIVPD, d.MAXPD, d.CMPPD, d.SHUFPD,
		d.MOVMSKPD, d.CVTPS2PD, d.CVTPD2PS, d.CVTDQ2PS, d.CVTPS2DQ, d.CVTTPS2DQ,
		d.CVTTPD2DQ, d.CVTDQ2PD, d.CVTPD2DQ,
	)
	packed(f.SSE2, f.AVX512DQ, d.ANDPD, d.ANDNPD, d.ORPD, d.XORPD)
	scalar(f.SSE2, f.AVX512F,
		d.MOVSD, d.SQRTSD, d.ADDSD, d.MULSD, d.SUBSD, d.MINSD, d.DIVSD, d.MAXSD, d.CMPSD,
		d.UCOMISD, d.COMISD, d.CVTSI2SD, d.CVTSD2SI, d.CVTTSD2SI, d.CVTSS2SD, d.CVTSD2SS,
	)
	packed(f.SSE3, f.AVX512F,
		d.ADDSUBPD, d.ADDSUBPS, d.HADDPD, d.HADDPS, d.HSUBPD, d.HSUBPS, d.LDDQU,
		d.MOVSHDUP, d.MOVSLDUP, d.MOVDDUP,
	)

	mmxInt(f.AVX512BW,
		d.PUNPCKLBW, d.PUNPCKLWD, d.PACKSSWB, d.PCMPGTB, d.PCMPGTW, d.PACKUSWB,
		d.PUNPCKHBW, d.PUNPCKHWD, d.PACKSSDW, d.PCMPEQB, d.PCMPEQW, d.PSRLW, d.PSRAW,
		d.PSLLW, d.PMULLW, d.PSUBUSB, d.PSUBUSW, d.PADDUSB, d.PADDUSW, d.PMULHW,
		d.PSUBSB, d.PSUBSW, d.PADDSB, d.PADDSW, d.PMADDWD, d.PSUBB, d.PSUBW, d.PADDB,
		d.PADDW,
	)
	mmxInt(f.AVX512F,
		d.PUNPCKLDQ, d.PCMPGTD, d.PUNPCKHDQ, d.PCMPEQD, d.PSRLD, d.PSRAD, d.PSLLD,
		d.PSRLQ, d.PSLLQ, d.PAND, d.PANDN, d.POR, d.PXOR, d.PSUBD, d.PADDD,
	)
	mmxExt(f.AVX512BW,
		d.PMINUB, d.PMAXUB, d.PAVGB, d.PAVGW, d.PMULHUW, d.PMINSW, d.PMAXSW, d.PSADBW,
		d.PMOVMSKB,
	)
	integer(f.SSE2, f.AVX512F,
		d.PADDQ, d.PSUBQ, d.PMULUDQ, d.PUNPCKLQDQ, d.PUNPCKHQDQ, d.PSHUFD, d.MOVDQA,
		d.MOVDQU, d.MOVNTDQ, d.MASKMOVDQU,
	)
	integer(f.SSE2, f.AVX512BW, d.PSHUFHW, d.PSHUFLW, d.PSRLDQ, d.PSLLDQ)

	// MOVD and MOVQ are MMX without a prefix and SSE2 otherwise.
	def(rules(on(legacy, f.MMX).p(d.PfxNone)), d.MOVD, d.MOVQ)
	element(f.SSE2, f.AVX512F, d.MOVD, d.MOVQ)

	// PINSRW and PEXTRW have an SSE form on MMX registers; the 0F3A
	// encoding of PEXTRW came with SSE4.1.
	def(rules(on(legacy, f.SSE4_1).inMap(d.Map0F3A)), d.PEXTRW)
	def(rules(on(legacy, f.SSE).p(d.PfxNone)), d.PINSRW, d.PEXTRW)
	element(f.SSE2, f.AVX512BW, d.PINSRW, d.PEXTRW)

	integer(f.SSSE3, f.AVX512BW, d.PSHUFB, d.PMADDUBSW, d.PMULHRSW, d.PABSB, d.PABSW, d.PALIGNR)
	integer(f.SSSE3, f.AVX512F,
		d.PABSD, d.PHADDW, d.PHADDD, d.PHADDSW, d.PHSUBW, d.PHSUBD, d.PHSUBSW, d.PSIGNB,
		d.PSIGNW, d.PSIGND,
	)

	integer(f.SSE4_1, f.AVX512BW,
		d.PMOVSXBW, d.PMOVZXBW, d.PACKUSDW, d.PMINSB, d.PMAXSB, d.PMINUW, d.PMAXUW,
		d.PBLENDW, d.MPSADBW,
	)
	integer(f.SSE4_1, f.AVX512F,
		d.PMOVSXBD, d.PMOVSXBQ, d.PMOVSXWD, d.PMOVSXWQ, d.PMOVSXDQ, d.PMOVZXBD,
		d.PMOVZXBQ, d.PMOVZXWD, d.PMOVZXWQ, d.PMOVZXDQ, d.PMULDQ, d.PCMPEQQ, d.MOVNTDQA,
		d.PMINSD, d.PMAXSD, d.PMINUD, d.PMAXUD, d.PMULLD, d.PHMINPOSUW, d.PBLENDVB,
	)
	packed(f.SSE4_1, f.AVX512F,
		d.ROUNDPS, d.ROUNDPD, d.BLENDPS, d.BLENDPD, d.DPPS, d.DPPD, d.BLENDVPS, d.BLENDVPD,
		d.PTEST,
	)
	scalar(f.SSE4_1, f.AVX512F, d.ROUNDSS, d.ROUNDSD, d.EXTRACTPS, d.INSERTPS)
	element(f.SSE4_1, f.AVX512BW, d.PEXTRB, d.PINSRB)
	element(f.SSE4_1, f.AVX512DQ, d.PEXTRD, d.PINSRD)

	integer(f.SSE4_2, f.AVX512F, d.PCMPGTQ)
	element(f.SSE4_2, f.AVX512F, d.PCMPESTRM, d.PCMPESTRI, d.PCMPISTRM, d.PCMPISTRI)

	// The crypto extensions gained 256 and 512-bit forms later, under
	// their own feature flags.
	def(rules(
		on(legacy, f.AES),
		on(vex, f.AES, f.AVX).l0(),
		on(vex, f.VAES),
		on(evex, f.VAES, f.AVX512F).withVL(),
	), d.AESENC, d.AESENCLAST, d.AESDEC, d.AESDECLAST, d.AESIMC, d.AESKEYGENASSIST)
	def(rules(
		on(legacy, f.PCLMULQDQ),
		on(vex, f.PCLMULQDQ, f.AVX).l0(),
		on(vex, f.VPCLMUL),
		on(evex, f.VPCLMUL, f.AVX512F).withVL(),
	), d.PCLMULQDQ)
	def(rules(
		on(legacy, f.GFNI),
		on(vex, f.GFNI, f.AVX),
		on(evex, f.GFNI, f.AVX512F).withVL(),
	), d.GF2P8MULB, d.GF2P8AFFINEQB, d.GF2P8AFFINEINVQB)

	// VEX-only AVX instructions.
	def(rules(on(vex, f.AVX)),
		d.VZEROUPPER, d.VZEROALL, d.VBROADCASTF128, d.VINSERTF128, d.VEXTRACTF128,
		d.VPERM2F128, d.VTESTPS, d.VTESTPD, d.VMASKMOVPS, d.VMASKMOVPD, d.VBLENDVPS,
		d.VBLENDVPD,
	)
	def(rules(on(vex, f.AVX), on(evex, f.AVX512F).withVL()), d.VPERMILPS, d.VPERMILPD)
	def(rules(on(vex, f.AVX).l0(), on(vex, f.AVX2)), d.VPBLENDVB)

	// Register-source broadcasts came with AVX2.
	def(rules(
		on(vex, f.AVX).memOnly(),
		on(vex, f.AVX2),
		on(evex, f.AVX512F).withVL(),
	), d.VBROADCASTSS)
	def(rules(
		on(vex, f.AVX).memOnly(),
		on(vex, f.AVX2),
		on(evex, f.AVX512F).w1().withVL(),
		on(evex, f.AVX512DQ).withVL(),
	), d.VBROADCASTSD)

	vexAVX2(f.AVX512F,
		d.VPERMD, d.VPERMPS, d.VPERMQ, d.VPERMPD, d.VPSLLVD, d.VPSLLVQ, d.VPSRLVD,
		d.VPSRLVQ, d.VPSRAVD, d.VPBROADCASTD, d.VPGATHERDD, d.VPGATHERDQ, d.VPGATHERQD,
		d.VPGATHERQQ, d.VGATHERDPS, d.VGATHERDPD, d.VGATHERQPS, d.VGATHERQPD,
	)
	vexAVX2(f.AVX512BW, d.VPBROADCASTB, d.VPBROADCASTW)
	vexAVX2("",
		d.VPBLENDD, d.VBROADCASTI128, d.VINSERTI128, d.VEXTRACTI128, d.VPERM2I128,
		d.VPMASKMOVD, d.VPMASKMOVQ,
	)
	def(rules(
		on(vex, f.AVX2),
		on(evex, f.AVX512F).w1().withVL(),
		on(evex, f.AVX512DQ).withVL(),
	), d.VPBROADCASTQ)

	def(rules(on(vex, f.F16C), on(evex, f.AVX512F).withVL()), d.VCVTPH2PS, d.VCVTPS2PH)

	def(rules(on(vex, f.FMA), on(evex, f.AVX512F).withVL()), fma3Packed...)
	def(rules(on(vex, f.FMA), on(evex, f.AVX512F)), fma3Scalar...)
	def(rules(on(vex, f.FMA4)),
		d.VFMADDSUBPS, d.VFMADDSUBPD, d.VFMSUBADDPS, d.VFMSUBADDPD, d.VFMADDPS,
		d.VFMADDPD, d.VFMADDSS, d.VFMADDSD, d.VFMSUBPS, d.VFMSUBPD, d.VFMSUBSS,
		d.VFMSUBSD, d.VFNMADDPS, d.VFNMADDPD, d.VFNMADDSS, d.VFNMADDSD, d.VFNMSUBPS,
		d.VFNMSUBPD, d.VFNMSUBSS, d.VFNMSUBSD,
	)

	def(rules(on(xop, f.XOP)),
		d.VPMACSSWW, d.VPMACSSWD, d.VPMACSSDQL, d.VPMACSSDD, d.VPMACSSDQH, d.VPMACSWW,
		d.VPMACSWD, d.VPMACSDQL, d.VPMACSDD, d.VPMACSDQH, d.VPCMOV, d.VPPERM,
		d.VPMADCSSWD, d.VPMADCSWD, d.VPROTB, d.VPROTW, d.VPROTD, d.VPROTQ, d.VPCOMB,
		d.VPCOMW, d.VPCOMD, d.VPCOMQ, d.VPCOMUB, d.VPCOMUW, d.VPCOMUD, d.VPCOMUQ,
		d.VFRCZPS, d.VFRCZPD, d.VFRCZSS, d.VFRCZSD, d.VPSHLB, d.VPSHLW, d.VPSHLD,
		d.VPSHLQ, d.VPSHAB, d.VPSHAW, d.VPSHAD, d.VPSHAQ, d.VPHADDBW, d.VPHADDBD,
		d.VPHADDBQ, d.VPHADDWD, d.VPHADDWQ, d.VPHADDDQ, d.VPHADDUBW, d.VPHADDUBD,
		d.VPHADDUBQ, d.VPHADDUWD, d.VPHADDUWQ, d.VPHADDUDQ, d.VPHSUBBW, d.VPHSUBWD,
		d.VPHSUBDQ,
	)
	def(rules(on(xop, f.TBM)),
		d.BLCFILL, d.BLSFILL, d.BLCS, d.TZMSK, d.BLCIC, d.BLSIC, d.T1MSKC, d.BLCMSK, d.BLCI,
	)
	// BEXTR with an immediate is TBM; the register form is BMI1.
	def(rules(on(xop, f.TBM), on(vex, f.BMI1)), d.BEXTR)
	def(rules(on(vex, f.BMI1)), d.ANDN, d.BLSR, d.BLSMSK, d.BLSI)
	def(rules(on(vex, f.BMI2)), d.BZHI, d.PEXT, d.PDEP, d.MULX, d.SHLX, d.SARX, d.SHRX, d.RORX)

	def(rules(on(vex, f.AVX_VNNI), on(evex, f.AVX512_VNNI).withVL()),
		d.VPDPBUSD, d.VPDPBUSDS, d.VPDPWSSD, d.VPDPWSSDS,
	)

	def(rules(on(vex, f.AMX_TILE)),
		d.LDTILECFG, d.STTILECFG, d.TILERELEASE, d.TILEZERO, d.TILELOADD, d.TILELOADDT1, d.TILESTORED,
	)
	def(rules(on(vex, f.AMX_INT8)), d.TDPBSSD, d.TDPBSUD, d.TDPBUSD, d.TDPBUUD)
	def(rules(on(vex, f.AMX_BF16)), d.TDPBF16PS)

	kmask(d.KAND, d.KANDN, d.KNOT, d.KOR, d.KXNOR, d.KXOR, d.KMOV, d.KORTEST)
	// KADD and KTEST have no word form without AVX512DQ.
	def(rules(on(vex, f.AVX512DQ).w0(), on(vex, f.AVX512BW)), d.KADD, d.KTEST)
	// KUNPCKBW is the 66 form; the others came with AVX512BW.
	def(rules(on(vex, f.AVX512F).p(d.Pfx66), on(vex, f.AVX512BW)), d.KUNPCK)

	// EVEX-only instructions.
	avx512(f.AVX512F,
		d.VMOVDQA32, d.VMOVDQA64, d.VMOVDQU32, d.VMOVDQU64, d.VPRORD, d.VPROLD, d.VPRORVD,
		d.VPROLVD, d.VALIGND, d.VPTERNLOGD, d.VPERMI2D, d.VPERMI2PS, d.VPERMT2D,
		d.VPERMT2PS, d.VPEXPANDD, d.VPCOMPRESSD, d.VEXPANDPS, d.VCOMPRESSPS, d.VPTESTMD,
		d.VPTESTNMD, d.VPBLENDMD, d.VBLENDMPS, d.VPCMPD, d.VPCMPUD, d.VPABSQ,
		d.VPMOVDB, d.VPMOVDW, d.VPMOVQB, d.VPMOVQD, d.VPMOVQW, d.VPMOVSDB, d.VPMOVSDW,
		d.VPMOVSQB, d.VPMOVSQD, d.VPMOVSQW, d.VPMOVUSDB, d.VPMOVUSDW, d.VPMOVUSQB,
		d.VPMOVUSQD, d.VPMOVUSQW, d.VCVTPS2UDQ, d.VCVTTPS2UDQ, d.VEXTRACTF32X4,
		d.VEXTRACTF64X4, d.VEXTRACTI32X4, d.VEXTRACTI64X4, d.VINSERTF32X4,
		d.VINSERTF64X4, d.VINSERTI32X4, d.VINSERTI64X4, d.VSHUFF32X4, d.VSHUFI32X4,
		d.VSCALEFPS, d.VGETEXPPS, d.VGETMANTPS, d.VRCP14PS, d.VRSQRT14PS, d.VRNDSCALEPS,
		d.VRNDSCALEPD, d.VFIXUPIMMPS, d.VPSCATTERDD, d.VPSCATTERDQ, d.VPSCATTERQD,
		d.VPSCATTERQQ, d.VSCATTERDPS, d.VSCATTERDPD, d.VSCATTERQPS, d.VSCATTERQPD,
	)
	avx512Scalar(f.AVX512F,
		d.VCVTSS2USI, d.VCVTSD2USI, d.VCVTTSS2USI, d.VCVTTSD2USI, d.VCVTUSI2SS,
		d.VCVTUSI2SD, d.VSCALEFSS, d.VGETEXPSS, d.VGETMANTSS, d.VRCP14SS, d.VRSQRT14SS,
		d.VRNDSCALESS, d.VRNDSCALESD, d.VFIXUPIMMSS,
	)
	avx512(f.AVX512BW,
		d.VMOVDQU8, d.VMOVDQU16, d.VPERMI2W, d.VPERMT2W, d.VPERMW, d.VPTESTMB,
		d.VPTESTNMB, d.VPBLENDMB, d.VPCMPB, d.VPCMPUB, d.VDBPSADBW, d.VPSLLVW,
		d.VPSRLVW, d.VPSRAVW, d.VPMOVWB, d.VPMOVSWB, d.VPMOVUSWB, d.VPMOVM2B,
		d.VPMOVB2M,
	)
	avx512(f.AVX512DQ,
		d.VPMULLQ, d.VCVTPS2QQ, d.VCVTTPS2QQ, d.VCVTPS2UQQ, d.VCVTTPS2UQQ,
		d.VEXTRACTF32X8, d.VEXTRACTF64X2, d.VEXTRACTI32X8, d.VEXTRACTI64X2,
		d.VINSERTF32X8, d.VINSERTF64X2, d.VINSERTI32X8, d.VINSERTI64X2, d.VRANGEPS,
		d.VREDUCEPS, d.VFPCLASSPS, d.VPMOVM2D, d.VPMOVD2M,
	)
	avx512Scalar(f.AVX512DQ, d.VRANGESS, d.VREDUCESS, d.VFPCLASSSS)
	avx512(f.AVX512CD, d.VPCONFLICTD, d.VPLZCNTD, d.VPBROADCASTMB2Q, d.VPBROADCASTMW2D)
	avx512(f.AVX512_VBMI, d.VPERMB, d.VPERMI2B, d.VPERMT2B, d.VPMULTISHIFTQB)
	avx512(f.AVX512_VBMI2,
		d.VPEXPANDB, d.VPCOMPRESSB, d.VPSHLDD, d.VPSHLDW, d.VPSHRDD, d.VPSHRDW,
		d.VPSHLDVD, d.VPSHLDVW, d.VPSHRDVD, d.VPSHRDVW,
	)
	avx512(f.AVX512_IFMA, d.VPMADD52LUQ, d.VPMADD52HUQ)
	avx512(f.AVX512_BITALG, d.VPOPCNTB, d.VPSHUFBITQMB)
	avx512(f.AVX512_VPOPCNT, d.VPOPCNTD)
	avx512(f.AVX512_BF16, d.VCVTNE2PS2BF16, d.VCVTNEPS2BF16, d.VDPBF16PS)
	avx512(f.AVX512_VP2INT, d.VP2INTERSECTD, d.VP2INTERSECTQ)
	// The FP16 maps hold packed operations under no prefix or 66 and
	// scalar ones under F3 and F2.
	def(rules(
		on(evex, f.AVX512_FP16).p(d.PfxNone, d.Pfx66).withVL(),
		on(evex, f.AVX512_FP16),
	), d.EVEXFP16)

	// Element width picks the feature for these shared opcodes.
	byWidth(f.AVX512F, f.AVX512DQ, d.VBROADCASTF32X4, d.VBROADCASTI32X4, d.VCVTUDQ2PD, d.VCVTUDQ2PS)
	byWidth(f.AVX512DQ, f.AVX512F, d.VBROADCASTF64X4, d.VBROADCASTI64X4)
}

var fma3Packed = []d.Op{
	d.VFMADD132PS, d.VFMADD132PD, d.VFMADD213PS, d.VFMADD213PD, d.VFMADD231PS, d.VFMADD231PD,
	d.VFMSUB132PS, d.VFMSUB132PD, d.VFMSUB213PS, d.VFMSUB213PD, d.VFMSUB231PS, d.VFMSUB231PD,
	d.VFNMADD132PS, d.VFNMADD132PD, d.VFNMADD213PS, d.VFNMADD213PD, d.VFNMADD231PS, d.VFNMADD231PD,
	d.VFNMSUB132PS, d.VFNMSUB132PD, d.VFNMSUB213PS, d.VFNMSUB213PD, d.VFNMSUB231PS, d.VFNMSUB231PD,
	d.VFMADDSUB132PS, d.VFMADDSUB132PD, d.VFMADDSUB213PS, d.VFMADDSUB213PD,
	d.VFMADDSUB231PS, d.VFMADDSUB231PD, d.VFMSUBADD132PS, d.VFMSUBADD132PD,
	d.VFMSUBADD213PS, d.VFMSUBADD213PD, d.VFMSUBADD231PS, d.VFMSUBADD231PD,
}

var fma3Scalar = []d.Op{
	d.VFMADD132SS, d.VFMADD132SD, d.VFMADD213SS, d.VFMADD213SD, d.VFMADD231SS, d.VFMADD231SD,
	d.VFMSUB132SS, d.VFMSUB132SD, d.VFMSUB213SS, d.VFMSUB213SD, d.VFMSUB231SS, d.VFMSUB231SD,
	d.VFNMADD132SS, d.VFNMADD132SD, d.VFNMADD213SS, d.VFNMADD213SD, d.VFNMADD231SS, d.VFNMADD231SD,
	d.VFNMSUB132SS, d.VFNMSUB132SD, d.VFNMSUB213SS, d.VFNMSUB213SD, d.VFNMSUB231SS, d.VFNMSUB231SD,
}
