package disasm

import "fmt"

// Op names an instruction operation. Ops group encodings that share a
// mnemonic; operand width and vector length live on Inst.
type Op uint16

const (
	OpInvalid Op = iota

	AAA
	AAD
	AAM
	AAS
	ADC
	ADCX
	ADD
	ADDPD
	ADDPS
	ADDSD
	ADDSS
	ADDSUBPD
	ADDSUBPS
	ADOX
	AESDEC
	AESDECLAST
	AESENC
	AESENCLAST
	AESIMC
	AESKEYGENASSIST
	AND
	ANDNPD
	ANDNPS
	ANDPD
	ANDPS
	ARPL
	BLENDPD
	BLENDPS
	BLENDVPD
	BLENDVPS
	BOUND
	BSF
	BSR
	BSWAP
	BT
	BTC
	BTR
	BTS
	CALL
	CALLF
	CBW
	CLAC
	CLC
	CLD
	CLFLUSH
	CLFLUSHOPT
	CLGI
	CLI
	CLRSSBSY
	CLTS
	CLWB
	CLZERO
	CMC
	CMOVCC
	CMP
	CMPPD
	CMPPS
	CMPS
	CMPSD
	CMPSS
	CMPXCHG
	CMPXCHG16B
	CMPXCHG8B
	COMISD
	COMISS
	CPUID
	CRC32
	CVTDQ2PD
	CVTDQ2PS
	CVTPD2DQ
	CVTPD2PI
	CVTPD2PS
	CVTPI2PD
	CVTPI2PS
	CVTPS2DQ
	CVTPS2PD
	CVTPS2PI
	CVTSD2SI
	CVTSD2SS
	CVTSI2SD
	CVTSI2SS
	CVTSS2SD
	CVTSS2SI
	CVTTPD2DQ
	CVTTPD2PI
	CVTTPS2DQ
	CVTTPS2PI
	CVTTSD2SI
	CVTTSS2SI
	CWD
	DAA
	DAS
	DEC
	DIV
	DIVPD
	DIVPS
	DIVSD
	DIVSS
	DPPD
	DPPS
	EMMS
	ENDBR32
	ENDBR64
	ENTER
	EXTRACTPS
	EXTRQ
	FCMOV
	FCOMI
	FEMMS
	FISTTP
	FWAIT
	FXRSTOR
	FXSAVE
	GETSEC
	GF2P8AFFINEINVQB
	GF2P8AFFINEQB
	GF2P8MULB
	HADDPD
	HADDPS
	HLT
	HSUBPD
	HSUBPS
	IDIV
	IMUL
	IN
	INC
	INCSSP
	INS
	INSERTPS
	INSERTQ
	INT
	INT1
	INT3
	INTO
	INVD
	INVEPT
	INVLPG
	INVLPGA
	INVPCID
	INVVPID
	IRET
	JCC
	JCXZ
	JMP
	JMPF
	LAHF
	LAR
	LDDQU
	LDMXCSR
	LDS
	LEA
	LEAVE
	LES
	LFENCE
	LFS
	LGDT
	LGS
	LIDT
	LLDT
	LMSW
	LODS
	LOOP
	LOOPE
	LOOPNE
	LSL
	LSS
	LTR
	LZCNT
	MASKMOVDQU
	MASKMOVQ
	MAXPD
	MAXPS
	MAXSD
	MAXSS
	MFENCE
	MINPD
	MINPS
	MINSD
	MINSS
	MONITOR
	MONITORX
	MOV
	MOVAPD
	MOVAPS
	MOVBE
	MOVD
	MOVDDUP
	MOVDIR64B
	MOVDIRI
	MOVDQ2Q
	MOVDQA
	MOVDQU
	MOVHLPS
	MOVHPD
	MOVHPS
	MOVLHPS
	MOVLPD
	MOVLPS
	MOVMSKPD
	MOVMSKPS
	MOVNTDQ
	MOVNTDQA
	MOVNTI
	MOVNTPD
	MOVNTPS
	MOVNTQ
	MOVNTSD
	MOVNTSS
	MOVQ
	MOVQ2DQ
	MOVS
	MOVSD
	MOVSHDUP
	MOVSLDUP
	MOVSS
	MOVSX
	MOVSXD
	MOVUPD
	MOVUPS
	MOVZX
	MPSADBW
	MUL
	MULPD
	MULPS
	MULSD
	MULSS
	MWAIT
	MWAITX
	NEG
	NOP
	NOT
	OR
	ORPD
	ORPS
	OUT
	OUTS
	PABSB
	PABSD
	PABSW
	PACKSSDW
	PACKSSWB
	PACKUSDW
	PACKUSWB
	PADDB
	PADDD
	PADDQ
	PADDSB
	PADDSW
	PADDUSB
	PADDUSW
	PADDW
	PALIGNR
	PAND
	PANDN
	PAVGB
	PAVGUSB
	PAVGW
	PBLENDVB
	PBLENDW
	PCLMULQDQ
	PCMPEQB
	PCMPEQD
	PCMPEQQ
	PCMPEQW
	PCMPESTRI
	PCMPESTRM
	PCMPGTB
	PCMPGTD
	PCMPGTQ
	PCMPGTW
	PCMPISTRI
	PCMPISTRM
	PEXTRB
	PEXTRD
	PEXTRW
	PF2ID
	PF2IW
	PFACC
	PFADD
	PFCMPEQ
	PFCMPGE
	PFCMPGT
	PFMAX
	PFMIN
	PFMUL
	PFNACC
	PFPNACC
	PFRCP
	PFRCPIT1
	PFRCPIT2
	PFRSQIT1
	PFRSQRT
	PFSUB
	PFSUBR
	PHADDD
	PHADDSW
	PHADDW
	PHMINPOSUW
	PHSUBD
	PHSUBSW
	PHSUBW
	PI2FD
	PI2FW
	PINSRB
	PINSRD
	PINSRW
	PMADDUBSW
	PMADDWD
	PMAXSB
	PMAXSD
	PMAXSW
	PMAXUB
	PMAXUD
	PMAXUW
	PMINSB
	PMINSD
	PMINSW
	PMINUB
	PMINUD
	PMINUW
	PMOVMSKB
	PMOVSXBD
	PMOVSXBQ
	PMOVSXBW
	PMOVSXDQ
	PMOVSXWD
	PMOVSXWQ
	PMOVZXBD
	PMOVZXBQ
	PMOVZXBW
	PMOVZXDQ
	PMOVZXWD
	PMOVZXWQ
	PMULDQ
	PMULHRSW
	PMULHRW
	PMULHUW
	PMULHW
	PMULLD
	PMULLW
	PMULUDQ
	POP
	POPA
	POPCNT
	POPF
	POR
	PREFETCH
	PREFETCHNTA
	PREFETCHT0
	PREFETCHT1
	PREFETCHT2
	PREFETCHW
	PREFETCHWT1
	PSADBW
	PSHUFB
	PSHUFD
	PSHUFHW
	PSHUFLW
	PSHUFW
	PSIGNB
	PSIGND
	PSIGNW
	PSLLD
	PSLLDQ
	PSLLQ
	PSLLW
	PSRAD
	PSRAW
	PSRLD
	PSRLDQ
	PSRLQ
	PSRLW
	PSUBB
	PSUBD
	PSUBQ
	PSUBSB
	PSUBSW
	PSUBUSB
	PSUBUSW
	PSUBW
	PSWAPD
	PTEST
	PUNPCKHBW
	PUNPCKHDQ
	PUNPCKHQDQ
	PUNPCKHWD
	PUNPCKLBW
	PUNPCKLDQ
	PUNPCKLQDQ
	PUNPCKLWD
	PUSH
	PUSHA
	PUSHF
	PXOR
	RCL
	RCPPS
	RCPSS
	RCR
	RDFSBASE
	RDGSBASE
	RDMSR
	RDPID
	RDPKRU
	RDPMC
	RDRAND
	RDSEED
	RDSSP
	RDTSC
	RDTSCP
	RET
	RETF
	ROL
	ROR
	ROUNDPD
	ROUNDPS
	ROUNDSD
	ROUNDSS
	RSM
	RSQRTPS
	RSQRTSS
	RSTORSSP
	SAHF
	SAL
	SAR
	SAVEPREVSSP
	SBB
	SCAS
	SERIALIZE
	SETCC
	SETSSBSY
	SFENCE
	SGDT
	SHA1MSG1
	SHA1MSG2
	SHA1NEXTE
	SHA1RNDS4
	SHA256MSG1
	SHA256MSG2
	SHA256RNDS2
	SHL
	SHLD
	SHR
	SHRD
	SHUFPD
	SHUFPS
	SIDT
	SKINIT
	SLDT
	SMSW
	SQRTPD
	SQRTPS
	SQRTSD
	SQRTSS
	STAC
	STC
	STD
	STGI
	STI
	STMXCSR
	STOS
	STR
	SUB
	SUBPD
	SUBPS
	SUBSD
	SUBSS
	SWAPGS
	SYSCALL
	SYSENTER
	SYSEXIT
	SYSRET
	TEST
	TPAUSE
	TZCNT
	UCOMISD
	UCOMISS
	UD0
	UD1
	UD2
	UMONITOR
	UMWAIT
	UNPCKHPD
	UNPCKHPS
	UNPCKLPD
	UNPCKLPS
	VERR
	VERW
	VMCALL
	VMCLEAR
	VMFUNC
	VMLAUNCH
	VMLOAD
	VMMCALL
	VMPTRLD
	VMPTRST
	VMREAD
	VMRESUME
	VMRUN
	VMSAVE
	VMWRITE
	VMXOFF
	VMXON
	WBINVD
	WRFSBASE
	WRGSBASE
	WRMSR
	WRPKRU
	WRSS
	WRUSS
	X87
	XABORT
	XADD
	XBEGIN
	XCHG
	XEND
	XGETBV
	XLAT
	XOR
	XORPD
	XORPS
	XRSTOR
	XRSTORS
	XSAVE
	XSAVEC
	XSAVEOPT
	XSAVES
	XSETBV
	XTEST

	// firstExtOnly is the first op with no legacy (non-VEX) encoding.
	firstExtOnly

	ANDN
	BEXTR
	BLCFILL
	BLCI
	BLCIC
	BLCMSK
	BLCS
	BLSFILL
	BLSI
	BLSIC
	BLSMSK
	BLSR
	BZHI
	KADD
	KAND
	KANDN
	KMOV
	KNOT
	KOR
	KORTEST
	KTEST
	KUNPCK
	KXNOR
	KXOR
	LDTILECFG
	MULX
	PDEP
	PEXT
	RORX
	SARX
	SHLX
	SHRX
	STTILECFG
	T1MSKC
	TDPBF16PS
	TDPBSSD
	TDPBSUD
	TDPBUSD
	TDPBUUD
	TILELOADD
	TILELOADDT1
	TILERELEASE
	TILESTORED
	TILEZERO
	TZMSK
	VALIGND
	VBLENDMPS
	VBLENDVPD
	VBLENDVPS
	VBROADCASTF128
	VBROADCASTF32X4
	VBROADCASTF64X4
	VBROADCASTI128
	VBROADCASTI32X4
	VBROADCASTI64X4
	VBROADCASTSD
	VBROADCASTSS
	VCOMPRESSPS
	VCVTNE2PS2BF16
	VCVTNEPS2BF16
	VCVTPH2PS
	VCVTPS2PH
	VCVTPS2QQ
	VCVTPS2UDQ
	VCVTPS2UQQ
	VCVTSD2USI
	VCVTSS2USI
	VCVTTPS2QQ
	VCVTTPS2UDQ
	VCVTTPS2UQQ
	VCVTTSD2USI
	VCVTTSS2USI
	VCVTUDQ2PD
	VCVTUDQ2PS
	VCVTUSI2SD
	VCVTUSI2SS
	VDBPSADBW
	VDPBF16PS
	VEXPANDPS
	VEXTRACTF128
	VEXTRACTF32X4
	VEXTRACTF32X8
	VEXTRACTF64X2
	VEXTRACTF64X4
	VEXTRACTI128
	VEXTRACTI32X4
	VEXTRACTI32X8
	VEXTRACTI64X2
	VEXTRACTI64X4
	VFIXUPIMMPS
	VFIXUPIMMSS
	VFMADD132PD
	VFMADD132PS
	VFMADD132SD
	VFMADD132SS
	VFMADD213PD
	VFMADD213PS
	VFMADD213SD
	VFMADD213SS
	VFMADD231PD
	VFMADD231PS
	VFMADD231SD
	VFMADD231SS
	VFMADDPD
	VFMADDPS
	VFMADDSD
	VFMADDSS
	VFMADDSUB132PD
	VFMADDSUB132PS
	VFMADDSUB213PD
	VFMADDSUB213PS
	VFMADDSUB231PD
	VFMADDSUB231PS
	VFMADDSUBPD
	VFMADDSUBPS
	VFMSUB132PD
	VFMSUB132PS
	VFMSUB132SD
	VFMSUB132SS
	VFMSUB213PD
	VFMSUB213PS
	VFMSUB213SD
	VFMSUB213SS
	VFMSUB231PD
	VFMSUB231PS
	VFMSUB231SD
	VFMSUB231SS
	VFMSUBADD132PD
	VFMSUBADD132PS
	VFMSUBADD213PD
	VFMSUBADD213PS
	VFMSUBADD231PD
	VFMSUBADD231PS
	VFMSUBADDPD
	VFMSUBADDPS
	VFMSUBPD
	VFMSUBPS
	VFMSUBSD
	VFMSUBSS
	VFNMADD132PD
	VFNMADD132PS
	VFNMADD132SD
	VFNMADD132SS
	VFNMADD213PD
	VFNMADD213PS
	VFNMADD213SD
	VFNMADD213SS
	VFNMADD231PD
	VFNMADD231PS
	VFNMADD231SD
	VFNMADD231SS
	VFNMADDPD
	VFNMADDPS
	VFNMADDSD
	VFNMADDSS
	VFNMSUB132PD
	VFNMSUB132PS
	VFNMSUB132SD
	VFNMSUB132SS
	VFNMSUB213PD
	VFNMSUB213PS
	VFNMSUB213SD
	VFNMSUB213SS
	VFNMSUB231PD
	VFNMSUB231PS
	VFNMSUB231SD
	VFNMSUB231SS
	VFNMSUBPD
	VFNMSUBPS
	VFNMSUBSD
	VFNMSUBSS
	VFPCLASSPS
	VFPCLASSSS
	VFRCZPD
	VFRCZPS
	VFRCZSD
	VFRCZSS
	VGATHERDPD
	VGATHERDPS
	VGATHERQPD
	VGATHERQPS
	VGETEXPPS
	VGETEXPSS
	VGETMANTPS
	VGETMANTSS
	VINSERTF128
	VINSERTF32X4
	VINSERTF32X8
	VINSERTF64X2
	VINSERTF64X4
	VINSERTI128
	VINSERTI32X4
	VINSERTI32X8
	VINSERTI64X2
	VINSERTI64X4
	VMASKMOVPD
	VMASKMOVPS
	VMOVDQA32
	VMOVDQA64
	VMOVDQU16
	VMOVDQU32
	VMOVDQU64
	VMOVDQU8
	VP2INTERSECTD
	VP2INTERSECTQ
	VPABSQ
	VPBLENDD
	VPBLENDMB
	VPBLENDMD
	VPBLENDVB
	VPBROADCASTB
	VPBROADCASTD
	VPBROADCASTMB2Q
	VPBROADCASTMW2D
	VPBROADCASTQ
	VPBROADCASTW
	VPCMOV
	VPCMPB
	VPCMPD
	VPCMPUB
	VPCMPUD
	VPCOMB
	VPCOMD
	VPCOMPRESSB
	VPCOMPRESSD
	VPCOMQ
	VPCOMUB
	VPCOMUD
	VPCOMUQ
	VPCOMUW
	VPCOMW
	VPCONFLICTD
	VPDPBUSD
	VPDPBUSDS
	VPDPWSSD
	VPDPWSSDS
	VPERM2F128
	VPERM2I128
	VPERMB
	VPERMD
	VPERMI2B
	VPERMI2D
	VPERMI2PS
	VPERMI2W
	VPERMILPD
	VPERMILPS
	VPERMPD
	VPERMPS
	VPERMQ
	VPERMT2B
	VPERMT2D
	VPERMT2PS
	VPERMT2W
	VPERMW
	VPEXPANDB
	VPEXPANDD
	VPGATHERDD
	VPGATHERDQ
	VPGATHERQD
	VPGATHERQQ
	VPHADDBD
	VPHADDBQ
	VPHADDBW
	VPHADDDQ
	VPHADDUBD
	VPHADDUBQ
	VPHADDUBW
	VPHADDUDQ
	VPHADDUWD
	VPHADDUWQ
	VPHADDWD
	VPHADDWQ
	VPHSUBBW
	VPHSUBDQ
	VPHSUBWD
	VPLZCNTD
	VPMACSDD
	VPMACSDQH
	VPMACSDQL
	VPMACSSDD
	VPMACSSDQH
	VPMACSSDQL
	VPMACSSWD
	VPMACSSWW
	VPMACSWD
	VPMACSWW
	VPMADCSSWD
	VPMADCSWD
	VPMADD52HUQ
	VPMADD52LUQ
	VPMASKMOVD
	VPMASKMOVQ
	VPMOVB2M
	VPMOVD2M
	VPMOVDB
	VPMOVDW
	VPMOVM2B
	VPMOVM2D
	VPMOVQB
	VPMOVQD
	VPMOVQW
	VPMOVSDB
	VPMOVSDW
	VPMOVSQB
	VPMOVSQD
	VPMOVSQW
	VPMOVSWB
	VPMOVUSDB
	VPMOVUSDW
	VPMOVUSQB
	VPMOVUSQD
	VPMOVUSQW
	VPMOVUSWB
	VPMOVWB
	VPMULLQ
	VPMULTISHIFTQB
	VPOPCNTB
	VPOPCNTD
	VPPERM
	VPROLD
	VPROLVD
	VPRORD
	VPRORVD
	VPROTB
	VPROTD
	VPROTQ
	VPROTW
	VPSCATTERDD
	VPSCATTERDQ
	VPSCATTERQD
	VPSCATTERQQ
	VPSHAB
	VPSHAD
	VPSHAQ
	VPSHAW
	VPSHLB
	VPSHLD
	VPSHLDD
	VPSHLDVD
	VPSHLDVW
	VPSHLDW
	VPSHLQ
	VPSHLW
	VPSHRDD
	VPSHRDVD
	VPSHRDVW
	VPSHRDW
	VPSHUFBITQMB
	VPSLLVD
	VPSLLVQ
	VPSLLVW
	VPSRAVD
	VPSRAVW
	VPSRLVD
	VPSRLVQ
	VPSRLVW
	VPTERNLOGD
	VPTESTMB
	VPTESTMD
	VPTESTNMB
	VPTESTNMD
	VRANGEPS
	VRANGESS
	VRCP14PS
	VRCP14SS
	VREDUCEPS
	VREDUCESS
	VRNDSCALEPD
	VRNDSCALEPS
	VRNDSCALESD
	VRNDSCALESS
	VRSQRT14PS
	VRSQRT14SS
	VSCALEFPS
	VSCALEFSS
	VSCATTERDPD
	VSCATTERDPS
	VSCATTERQPD
	VSCATTERQPS
	VSHUFF32X4
	VSHUFI32X4
	VTESTPD
	VTESTPS
	VZEROALL
	VZEROUPPER
	// EVEXUnknown is an EVEX opcode with no table entry. EVEXFP16 is any
	// opcode of the FP16 maps 5 and 6.
	EVEXUnknown
	EVEXFP16

	opCount
)

var opNames = [opCount]string{
	"(bad)", "AAA", "AAD", "AAM", "AAS", "ADC", "ADCX", "ADD", "ADDPD",
	"ADDPS", "ADDSD", "ADDSS", "ADDSUBPD", "ADDSUBPS", "ADOX", "AESDEC",
	"AESDECLAST", "AESENC", "AESENCLAST", "AESIMC", "AESKEYGENASSIST",
	"AND", "ANDNPD", "ANDNPS", "ANDPD", "ANDPS", "ARPL", "BLENDPD",
	"BLENDPS", "BLENDVPD", "BLENDVPS", "BOUND", "BSF", "BSR", "BSWAP",
	"BT", "BTC", "BTR", "BTS", "CALL", "CALLF", "CBW", "CLAC", "CLC",
	"CLD", "CLFLUSH", "CLFLUSHOPT", "CLGI", "CLI", "CLRSSBSY", "CLTS",
	"CLWB", "CLZERO", "CMC", "CMOVcc", "CMP", "CMPPD", "CMPPS", "CMPS",
	"CMPSD", "CMPSS", "CMPXCHG", "CMPXCHG16B", "CMPXCHG8B", "COMISD",
	"COMISS", "CPUID", "CRC32", "CVTDQ2PD", "CVTDQ2PS", "CVTPD2DQ",
	"CVTPD2PI", "CVTPD2PS", "CVTPI2PD", "CVTPI2PS", "CVTPS2DQ",
	"CVTPS2PD", "CVTPS2PI", "CVTSD2SI", "CVTSD2SS", "CVTSI2SD",
	"CVTSI2SS", "CVTSS2SD", "CVTSS2SI", "CVTTPD2DQ", "CVTTPD2PI",
	"CVTTPS2DQ", "CVTTPS2PI", "CVTTSD2SI", "CVTTSS2SI", "CWD", "DAA",
	"DAS", "DEC", "DIV", "DIVPD", "DIVPS", "DIVSD", "DIVSS", "DPPD",
	"DPPS", "EMMS", "ENDBR32", "ENDBR64", "ENTER", "EXTRACTPS", "EXTRQ",
	"FCMOV", "FCOMI", "FEMMS", "FISTTP", "FWAIT", "FXRSTOR", "FXSAVE",
	"GETSEC", "GF2P8AFFINEINVQB", "GF2P8AFFINEQB", "GF2P8MULB", "HADDPD",
	"HADDPS", "HLT", "HSUBPD", "HSUBPS", "IDIV", "IMUL", "IN", "INC",
	"INCSSP", "INS", "INSERTPS", "INSERTQ", "INT", "INT1", "INT3", "INTO",
	"INVD", "INVEPT", "INVLPG", "INVLPGA", "INVPCID", "INVVPID", "IRET",
	"Jcc", "JCXZ", "JMP", "JMPF", "LAHF", "LAR", "LDDQU", "LDMXCSR",
	"LDS", "LEA", "LEAVE", "LES", "LFENCE", "LFS", "LGDT", "LGS", "LIDT",
	"LLDT", "LMSW", "LODS", "LOOP", "LOOPE", "LOOPNE", "LSL", "LSS",
	"LTR", "LZCNT", "MASKMOVDQU", "MASKMOVQ", "MAXPD", "MAXPS", "MAXSD",
	"MAXSS", "MFENCE", "MINPD", "MINPS", "MINSD", "MINSS", "MONITOR",
	"MONITORX", "MOV", "MOVAPD", "MOVAPS", "MOVBE", "MOVD", "MOVDDUP",
	"MOVDIR64B", "MOVDIRI", "MOVDQ2Q", "MOVDQA", "MOVDQU", "MOVHLPS",
	"MOVHPD", "MOVHPS", "MOVLHPS", "MOVLPD", "MOVLPS", "MOVMSKPD",
	"MOVMSKPS", "MOVNTDQ", "MOVNTDQA", "MOVNTI", "MOVNTPD", "MOVNTPS",
	"MOVNTQ", "MOVNTSD", "MOVNTSS", "MOVQ", "MOVQ2DQ", "MOVS", "MOVSD",
	"MOVSHDUP", "MOVSLDUP", "MOVSS", "MOVSX", "MOVSXD", "MOVUPD",
	"MOVUPS", "MOVZX", "MPSADBW", "MUL", "MULPD", "MULPS", "MULSD",
	"MULSS", "MWAIT", "MWAITX", "NEG", "NOP", "NOT", "OR", "ORPD", "ORPS",
	"OUT", "OUTS", "PABSB", "PABSD", "PABSW", "PACKSSDW", "PACKSSWB",
	"PACKUSDW", "PACKUSWB", "PADDB", "PADDD", "PADDQ", "PADDSB", "PADDSW",
	"PADDUSB", "PADDUSW", "PADDW", "PALIGNR", "PAND", "PANDN", "PAVGB",
	"PAVGUSB", "PAVGW", "PBLENDVB", "PBLENDW", "PCLMULQDQ", "PCMPEQB",
	"PCMPEQD", "PCMPEQQ", "PCMPEQW", "PCMPESTRI", "PCMPESTRM", "PCMPGTB",
	"PCMPGTD", "PCMPGTQ", "PCMPGTW", "PCMPISTRI", "PCMPISTRM", "PEXTRB",
	"PEXTRD", "PEXTRW", "PF2ID", "PF2IW", "PFACC", "PFADD", "PFCMPEQ",
	"PFCMPGE", "PFCMPGT", "PFMAX", "PFMIN", "PFMUL", "PFNACC", "PFPNACC",
	"PFRCP", "PFRCPIT1", "PFRCPIT2", "PFRSQIT1", "PFRSQRT", "PFSUB",
	"PFSUBR", "PHADDD", "PHADDSW", "PHADDW", "PHMINPOSUW", "PHSUBD",
	"PHSUBSW", "PHSUBW", "PI2FD", "PI2FW", "PINSRB", "PINSRD", "PINSRW",
	"PMADDUBSW", "PMADDWD", "PMAXSB", "PMAXSD", "PMAXSW", "PMAXUB",
	"PMAXUD", "PMAXUW", "PMINSB", "PMINSD", "PMINSW", "PMINUB", "PMINUD",
	"PMINUW", "PMOVMSKB", "PMOVSXBD", "PMOVSXBQ", "PMOVSXBW", "PMOVSXDQ",
	"PMOVSXWD", "PMOVSXWQ", "PMOVZXBD", "PMOVZXBQ", "PMOVZXBW",
	"PMOVZXDQ", "PMOVZXWD", "PMOVZXWQ", "PMULDQ", "PMULHRSW", "PMULHRW",
	"PMULHUW", "PMULHW", "PMULLD", "PMULLW", "PMULUDQ", "POP", "POPA",
	"POPCNT", "POPF", "POR", "PREFETCH", "PREFETCHNTA", "PREFETCHT0",
	"PREFETCHT1", "PREFETCHT2", "PREFETCHW", "PREFETCHWT1", "PSADBW",
	"PSHUFB", "PSHUFD", "PSHUFHW", "PSHUFLW", "PSHUFW", "PSIGNB",
	"PSIGND", "PSIGNW", "PSLLD", "PSLLDQ", "PSLLQ", "PSLLW", "PSRAD",
	"PSRAW", "PSRLD", "PSRLDQ", "PSRLQ", "PSRLW", "PSUBB", "PSUBD",
	"PSUBQ", "PSUBSB", "PSUBSW", "PSUBUSB", "PSUBUSW", "PSUBW", "PSWAPD",
	"PTEST", "PUNPCKHBW", "PUNPCKHDQ", "PUNPCKHQDQ", "PUNPCKHWD",
	"PUNPCKLBW", "PUNPCKLDQ", "PUNPCKLQDQ", "PUNPCKLWD", "PUSH", "PUSHA",
	"PUSHF", "PXOR", "RCL", "RCPPS", "RCPSS", "RCR", "RDFSBASE",
	"RDGSBASE", "RDMSR", "RDPID", "RDPKRU", "RDPMC", "RDRAND", "RDSEED",
	"RDSSP", "RDTSC", "RDTSCP", "RET", "RETF", "ROL", "ROR", "ROUNDPD",
	"ROUNDPS", "ROUNDSD", "ROUNDSS", "RSM", "RSQRTPS", "RSQRTSS",
	"RSTORSSP", "SAHF", "SAL", "SAR", "SAVEPREVSSP", "SBB", "SCAS",
	"SERIALIZE", "SETcc", "SETSSBSY", "SFENCE", "SGDT", "SHA1MSG1",
	"SHA1MSG2", "SHA1NEXTE", "SHA1RNDS4", "SHA256MSG1", "SHA256MSG2",
	"SHA256RNDS2", "SHL", "SHLD", "SHR", "SHRD", "SHUFPD", "SHUFPS",
	"SIDT", "SKINIT", "SLDT", "SMSW", "SQRTPD", "SQRTPS", "SQRTSD",
	"SQRTSS", "STAC", "STC", "STD", "STGI", "STI", "STMXCSR", "STOS",
	"STR", "SUB", "SUBPD", "SUBPS", "SUBSD", "SUBSS", "SWAPGS", "SYSCALL",
	"SYSENTER", "SYSEXIT", "SYSRET", "TEST", "TPAUSE", "TZCNT", "UCOMISD",
	"UCOMISS", "UD0", "UD1", "UD2", "UMONITOR", "UMWAIT", "UNPCKHPD",
	"UNPCKHPS", "UNPCKLPD", "UNPCKLPS", "VERR", "VERW", "VMCALL",
	"VMCLEAR", "VMFUNC", "VMLAUNCH", "VMLOAD", "VMMCALL", "VMPTRLD",
	"VMPTRST", "VMREAD", "VMRESUME", "VMRUN", "VMSAVE", "VMWRITE",
	"VMXOFF", "VMXON", "WBINVD", "WRFSBASE", "WRGSBASE", "WRMSR",
	"WRPKRU", "WRSS", "WRUSS", "X87", "XABORT", "XADD", "XBEGIN", "XCHG",
	"XEND", "XGETBV", "XLAT", "XOR", "XORPD", "XORPS", "XRSTOR",
	"XRSTORS", "XSAVE", "XSAVEC", "XSAVEOPT", "XSAVES", "XSETBV", "XTEST",
	"", "ANDN", "BEXTR", "BLCFILL", "BLCI", "BLCIC", "BLCMSK", "BLCS",
	"BLSFILL", "BLSI", "BLSIC", "BLSMSK", "BLSR", "BZHI", "KADD", "KAND",
	"KANDN", "KMOV", "KNOT", "KOR", "KORTEST", "KTEST", "KUNPCK", "KXNOR",
	"KXOR", "LDTILECFG", "MULX", "PDEP", "PEXT", "RORX", "SARX", "SHLX",
	"SHRX", "STTILECFG", "T1MSKC", "TDPBF16PS", "TDPBSSD", "TDPBSUD",
	"TDPBUSD", "TDPBUUD", "TILELOADD", "TILELOADDT1", "TILERELEASE",
	"TILESTORED", "TILEZERO", "TZMSK", "VALIGND", "VBLENDMPS",
	"VBLENDVPD", "VBLENDVPS", "VBROADCASTF128", "VBROADCASTF32X4",
	"VBROADCASTF64X4", "VBROADCASTI128", "VBROADCASTI32X4",
	"VBROADCASTI64X4", "VBROADCASTSD", "VBROADCASTSS", "VCOMPRESSPS",
	"VCVTNE2PS2BF16", "VCVTNEPS2BF16", "VCVTPH2PS", "VCVTPS2PH",
	"VCVTPS2QQ", "VCVTPS2UDQ", "VCVTPS2UQQ", "VCVTSD2USI", "VCVTSS2USI",
	"VCVTTPS2QQ", "VCVTTPS2UDQ", "VCVTTPS2UQQ", "VCVTTSD2USI",
	"VCVTTSS2USI", "VCVTUDQ2PD", "VCVTUDQ2PS", "VCVTUSI2SD", "VCVTUSI2SS",
	"VDBPSADBW", "VDPBF16PS", "VEXPANDPS", "VEXTRACTF128",
	"VEXTRACTF32X4", "VEXTRACTF32X8", "VEXTRACTF64X2", "VEXTRACTF64X4",
	"VEXTRACTI128", "VEXTRACTI32X4", "VEXTRACTI32X8", "VEXTRACTI64X2",
	"VEXTRACTI64X4", "VFIXUPIMMPS", "VFIXUPIMMSS", "VFMADD132PD",
	"VFMADD132PS", "VFMADD132SD", "VFMADD132SS", "VFMADD213PD",
	"VFMADD213PS", "VFMADD213SD", "VFMADD213SS", "VFMADD231PD",
	"VFMADD231PS", "VFMADD231SD", "VFMADD231SS", "VFMADDPD", "VFMADDPS",
	"VFMADDSD", "VFMADDSS", "VFMADDSUB132PD", "VFMADDSUB132PS",
	"VFMADDSUB213PD", "VFMADDSUB213PS", "VFMADDSUB231PD",
	"VFMADDSUB231PS", "VFMADDSUBPD", "VFMADDSUBPS", "VFMSUB132PD",
	"VFMSUB132PS", "VFMSUB132SD", "VFMSUB132SS", "VFMSUB213PD",
	"VFMSUB213PS", "VFMSUB213SD", "VFMSUB213SS", "VFMSUB231PD",
	"VFMSUB231PS", "VFMSUB231SD", "VFMSUB231SS", "VFMSUBADD132PD",
	"VFMSUBADD132PS", "VFMSUBADD213PD", "VFMSUBADD213PS",
	"VFMSUBADD231PD", "VFMSUBADD231PS", "VFMSUBADDPD", "VFMSUBADDPS",
	"VFMSUBPD", "VFMSUBPS", "VFMSUBSD", "VFMSUBSS", "VFNMADD132PD",
	"VFNMADD132PS", "VFNMADD132SD", "VFNMADD132SS", "VFNMADD213PD",
	"VFNMADD213PS", "VFNMADD213SD", "VFNMADD213SS", "VFNMADD231PD",
	"VFNMADD231PS", "VFNMADD231SD", "VFNMADD231SS", "VFNMADDPD",
	"VFNMADDPS", "VFNMADDSD", "VFNMADDSS", "VFNMSUB132PD", "VFNMSUB132PS",
	"VFNMSUB132SD", "VFNMSUB132SS", "VFNMSUB213PD", "VFNMSUB213PS",
	"VFNMSUB213SD", "VFNMSUB213SS", "VFNMSUB231PD", "VFNMSUB231PS",
	"VFNMSUB231SD", "VFNMSUB231SS", "VFNMSUBPD", "VFNMSUBPS", "VFNMSUBSD",
	"VFNMSUBSS", "VFPCLASSPS", "VFPCLASSSS", "VFRCZPD", "VFRCZPS",
	"VFRCZSD", "VFRCZSS", "VGATHERDPD", "VGATHERDPS", "VGATHERQPD",
	"VGATHERQPS", "VGETEXPPS", "VGETEXPSS", "VGETMANTPS", "VGETMANTSS",
	"VINSERTF128", "VINSERTF32X4", "VINSERTF32X8", "VINSERTF64X2",
	"VINSERTF64X4", "VINSERTI128", "VINSERTI32X4", "VINSERTI32X8",
	"VINSERTI64X2", "VINSERTI64X4", "VMASKMOVPD", "VMASKMOVPS",
	"VMOVDQA32", "VMOVDQA64", "VMOVDQU16", "VMOVDQU32", "VMOVDQU64",
	"VMOVDQU8", "VP2INTERSECTD", "VP2INTERSECTQ", "VPABSQ", "VPBLENDD",
	"VPBLENDMB", "VPBLENDMD", "VPBLENDVB", "VPBROADCASTB", "VPBROADCASTD",
	"VPBROADCASTMB2Q", "VPBROADCASTMW2D", "VPBROADCASTQ", "VPBROADCASTW",
	"VPCMOV", "VPCMPB", "VPCMPD", "VPCMPUB", "VPCMPUD", "VPCOMB",
	"VPCOMD", "VPCOMPRESSB", "VPCOMPRESSD", "VPCOMQ", "VPCOMUB",
	"VPCOMUD", "VPCOMUQ", "VPCOMUW", "VPCOMW", "VPCONFLICTD", "VPDPBUSD",
	"VPDPBUSDS", "VPDPWSSD", "VPDPWSSDS", "VPERM2F128", "VPERM2I128",
	"VPERMB", "VPERMD", "VPERMI2B", "VPERMI2D", "VPERMI2PS", "VPERMI2W",
	"VPERMILPD", "VPERMILPS", "VPERMPD", "VPERMPS", "VPERMQ", "VPERMT2B",
	"VPERMT2D", "VPERMT2PS", "VPERMT2W", "VPERMW", "VPEXPANDB",
	"VPEXPANDD", "VPGATHERDD", "VPGATHERDQ", "VPGATHERQD", "VPGATHERQQ",
	"VPHADDBD", "VPHADDBQ", "VPHADDBW", "VPHADDDQ", "VPHADDUBD",
	"VPHADDUBQ", "VPHADDUBW", "VPHADDUDQ", "VPHADDUWD", "VPHADDUWQ",
	"VPHADDWD", "VPHADDWQ", "VPHSUBBW", "VPHSUBDQ", "VPHSUBWD",
	"VPLZCNTD", "VPMACSDD", "VPMACSDQH", "VPMACSDQL", "VPMACSSDD",
	"VPMACSSDQH", "VPMACSSDQL", "VPMACSSWD", "VPMACSSWW", "VPMACSWD",
	"VPMACSWW", "VPMADCSSWD", "VPMADCSWD", "VPMADD52HUQ", "VPMADD52LUQ",
	"VPMASKMOVD", "VPMASKMOVQ", "VPMOVB2M", "VPMOVD2M", "VPMOVDB",
	"VPMOVDW", "VPMOVM2B", "VPMOVM2D", "VPMOVQB", "VPMOVQD", "VPMOVQW",
	"VPMOVSDB", "VPMOVSDW", "VPMOVSQB", "VPMOVSQD", "VPMOVSQW",
	"VPMOVSWB", "VPMOVUSDB", "VPMOVUSDW", "VPMOVUSQB", "VPMOVUSQD",
	"VPMOVUSQW", "VPMOVUSWB", "VPMOVWB", "VPMULLQ", "VPMULTISHIFTQB",
	"VPOPCNTB", "VPOPCNTD", "VPPERM", "VPROLD", "VPROLVD", "VPRORD",
	"VPRORVD", "VPROTB", "VPROTD", "VPROTQ", "VPROTW", "VPSCATTERDD",
	"VPSCATTERDQ", "VPSCATTERQD", "VPSCATTERQQ", "VPSHAB", "VPSHAD",
	"VPSHAQ", "VPSHAW", "VPSHLB", "VPSHLD", "VPSHLDD", "VPSHLDVD",
	"VPSHLDVW", "VPSHLDW", "VPSHLQ", "VPSHLW", "VPSHRDD", "VPSHRDVD",
	"VPSHRDVW", "VPSHRDW", "VPSHUFBITQMB", "VPSLLVD", "VPSLLVQ",
	"VPSLLVW", "VPSRAVD", "VPSRAVW", "VPSRLVD", "VPSRLVQ", "VPSRLVW",
	"VPTERNLOGD", "VPTESTMB", "VPTESTMD", "VPTESTNMB", "VPTESTNMD",
	"VRANGEPS", "VRANGESS", "VRCP14PS", "VRCP14SS", "VREDUCEPS",
	"VREDUCESS", "VRNDSCALEPD", "VRNDSCALEPS", "VRNDSCALESD",
	"VRNDSCALESS", "VRSQRT14PS", "VRSQRT14SS", "VSCALEFPS", "VSCALEFSS",
	"VSCATTERDPD", "VSCATTERDPS", "VSCATTERQPD", "VSCATTERQPS",
	"VSHUFF32X4", "VSHUFI32X4", "VTESTPD", "VTESTPS", "VZEROALL",
	"VZEROUPPER", "EVEX", "EVEX.FP16",
}

func (op Op) String() string {
	if op < opCount && op != firstExtOnly {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}

// Legacy reports whether op also has a legacy encoding, in which case the
// VEX and EVEX forms are spelled with a V prefix.
func (op Op) Legacy() bool { return op > OpInvalid && op < firstExtOnly }

// Ops returns every defined op in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, opCount)
	for op := OpInvalid + 1; op < opCount; op++ {
		if op != firstExtOnly {
			ops = append(ops, op)
		}
	}
	return ops
}
