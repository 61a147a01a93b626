// Package feature defines the CPU feature vocabulary reported by isaext
// and the set type used to aggregate it.
//
// Feature names are canonical upper-case identifiers with underscore
// separators (SSE4_2, AVX512_VNNI). Names coming from outside the engine
// (oracle output, configuration, host CPU queries) must go through [Parse]
// so the same feature is never represented two ways.
package feature

import (
	"strings"
)

// ID identifies a CPU feature.
type ID string

// Known features.
const (
	FPU       ID = "FPU"
	CMOV      ID = "CMOV"
	CX8       ID = "CX8"
	CX16      ID = "CX16"
	TSC       ID = "TSC"
	MSR       ID = "MSR"
	SEP       ID = "SEP"
	SYSCALL   ID = "SYSCALL"
	LAHF_LM   ID = "LAHF_LM"
	FXSR      ID = "FXSR"
	MMX       ID = "MMX"
	D3NOW     ID = "3DNOW"
	SSE       ID = "SSE"
	SSE2      ID = "SSE2"
	SSE3      ID = "SSE3"
	SSSE3     ID = "SSSE3"
	SSE4_1    ID = "SSE4_1"
	SSE4_2    ID = "SSE4_2"
	SSE4A     ID = "SSE4A"
	POPCNT    ID = "POPCNT"
	LZCNT     ID = "LZCNT"
	BMI1      ID = "BMI1"
	BMI2      ID = "BMI2"
	ADX       ID = "ADX"
	AES       ID = "AES"
	PCLMULQDQ ID = "PCLMULQDQ"
	VAES      ID = "VAES"
	VPCLMUL   ID = "VPCLMULQDQ"
	GFNI      ID = "GFNI"
	SHA       ID = "SHA"
	MOVBE     ID = "MOVBE"
	RDRAND    ID = "RDRAND"
	RDSEED    ID = "RDSEED"
	RDTSCP    ID = "RDTSCP"
	RDPID     ID = "RDPID"
	AVX       ID = "AVX"
	AVX2      ID = "AVX2"
	FMA       ID = "FMA"
	F16C      ID = "F16C"
	FMA4      ID = "FMA4"
	XOP       ID = "XOP"
	TBM       ID = "TBM"
	AVX_VNNI  ID = "AVX_VNNI"

	AVX512F        ID = "AVX512F"
	AVX512VL       ID = "AVX512VL"
	AVX512BW       ID = "AVX512BW"
	AVX512DQ       ID = "AVX512DQ"
	AVX512CD       ID = "AVX512CD"
	AVX512_IFMA    ID = "AVX512_IFMA"
	AVX512_VBMI    ID = "AVX512_VBMI"
	AVX512_VBMI2   ID = "AVX512_VBMI2"
	AVX512_VNNI    ID = "AVX512_VNNI"
	AVX512_BITALG  ID = "AVX512_BITALG"
	AVX512_VPOPCNT ID = "AVX512_VPOPCNTDQ"
	AVX512_BF16    ID = "AVX512_BF16"
	AVX512_VP2INT  ID = "AVX512_VP2INTERSECT"
	AVX512_FP16    ID = "AVX512_FP16"

	AMX_TILE ID = "AMX_TILE"
	AMX_INT8 ID = "AMX_INT8"
	AMX_BF16 ID = "AMX_BF16"

	XSAVE       ID = "XSAVE"
	XSAVEOPT    ID = "XSAVEOPT"
	XSAVEC      ID = "XSAVEC"
	XSAVES      ID = "XSAVES"
	FSGSBASE    ID = "FSGSBASE"
	RTM         ID = "RTM"
	CLFSH       ID = "CLFSH"
	CLFLUSHOPT  ID = "CLFLUSHOPT"
	CLWB        ID = "CLWB"
	PREFETCHW   ID = "PREFETCHW"
	PREFETCHWT1 ID = "PREFETCHWT1"
	MONITOR     ID = "MONITOR"
	MONITORX    ID = "MONITORX"
	CET_IBT     ID = "CET_IBT"
	CET_SS      ID = "CET_SS"
	SERIALIZE   ID = "SERIALIZE"
	SMAP        ID = "SMAP"
	VMX         ID = "VMX"
	SVM         ID = "SVM"
	SMX         ID = "SMX"
	INVPCID     ID = "INVPCID"
	PKU         ID = "PKU"
	CLZERO      ID = "CLZERO"
	WAITPKG     ID = "WAITPKG"
	MOVDIRI     ID = "MOVDIRI"
	MOVDIR64B   ID = "MOVDIR64B"
)

// Info describes one feature of the vocabulary.
type Info struct {
	ID          ID     `json:"id"`
	Description string `json:"description"`
}

// All lists every feature the classifier can report, in display order.
var All = []Info{
	{FPU, "x87 floating point unit"},
	{CMOV, "conditional move (i686)"},
	{CX8, "CMPXCHG8B"},
	{CX16, "CMPXCHG16B"},
	{TSC, "RDTSC"},
	{MSR, "RDMSR/WRMSR"},
	{SEP, "SYSENTER/SYSEXIT"},
	{SYSCALL, "SYSCALL/SYSRET"},
	{LAHF_LM, "LAHF/SAHF in 64-bit mode"},
	{FXSR, "FXSAVE/FXRSTOR"},
	{MMX, "MMX"},
	{D3NOW, "AMD 3DNow!"},
	{SSE, "SSE"},
	{SSE2, "SSE2"},
	{SSE3, "SSE3"},
	{SSSE3, "Supplemental SSE3"},
	{SSE4_1, "SSE4.1"},
	{SSE4_2, "SSE4.2"},
	{SSE4A, "AMD SSE4a"},
	{POPCNT, "POPCNT"},
	{LZCNT, "LZCNT (ABM)"},
	{BMI1, "Bit manipulation instructions 1"},
	{BMI2, "Bit manipulation instructions 2"},
	{ADX, "ADCX/ADOX"},
	{AES, "AES-NI"},
	{PCLMULQDQ, "carry-less multiplication"},
	{VAES, "vector AES"},
	{VPCLMUL, "vector carry-less multiplication"},
	{GFNI, "Galois field instructions"},
	{SHA, "SHA extensions"},
	{MOVBE, "MOVBE"},
	{RDRAND, "RDRAND"},
	{RDSEED, "RDSEED"},
	{RDTSCP, "RDTSCP"},
	{RDPID, "RDPID"},
	{AVX, "AVX"},
	{AVX2, "AVX2"},
	{FMA, "FMA3"},
	{F16C, "half-precision conversion"},
	{FMA4, "AMD FMA4"},
	{XOP, "AMD XOP"},
	{TBM, "AMD trailing bit manipulation"},
	{AVX_VNNI, "VEX-encoded VNNI"},
	{AVX512F, "AVX-512 foundation"},
	{AVX512VL, "AVX-512 128/256-bit vector length"},
	{AVX512BW, "AVX-512 byte and word"},
	{AVX512DQ, "AVX-512 doubleword and quadword"},
	{AVX512CD, "AVX-512 conflict detection"},
	{AVX512_IFMA, "AVX-512 integer fused multiply-add"},
	{AVX512_VBMI, "AVX-512 vector byte manipulation"},
	{AVX512_VBMI2, "AVX-512 vector byte manipulation 2"},
	{AVX512_VNNI, "AVX-512 vector neural network"},
	{AVX512_BITALG, "AVX-512 bit algorithms"},
	{AVX512_VPOPCNT, "AVX-512 vector population count"},
	{AVX512_BF16, "AVX-512 bfloat16"},
	{AVX512_VP2INT, "AVX-512 vector pair intersection"},
	{AVX512_FP16, "AVX-512 half precision"},
	{AMX_TILE, "AMX tile configuration and data movement"},
	{AMX_INT8, "AMX 8-bit integer tile multiply"},
	{AMX_BF16, "AMX bfloat16 tile multiply"},
	{XSAVE, "XSAVE/XRSTOR/XGETBV"},
	{XSAVEOPT, "XSAVEOPT"},
	{XSAVEC, "XSAVEC"},
	{XSAVES, "XSAVES/XRSTORS"},
	{FSGSBASE, "RD/WR FS/GS base"},
	{RTM, "restricted transactional memory"},
	{CLFSH, "CLFLUSH"},
	{CLFLUSHOPT, "CLFLUSHOPT"},
	{CLWB, "CLWB"},
	{PREFETCHW, "PREFETCH/PREFETCHW"},
	{PREFETCHWT1, "PREFETCHWT1"},
	{MONITOR, "MONITOR/MWAIT"},
	{MONITORX, "MONITORX/MWAITX"},
	{CET_IBT, "CET indirect branch tracking"},
	{CET_SS, "CET shadow stack"},
	{SERIALIZE, "SERIALIZE"},
	{SMAP, "CLAC/STAC"},
	{VMX, "Intel virtual machine extensions"},
	{SVM, "AMD secure virtual machine"},
	{SMX, "safer mode extensions"},
	{INVPCID, "INVPCID"},
	{PKU, "protection keys"},
	{CLZERO, "CLZERO"},
	{WAITPKG, "UMONITOR/UMWAIT/TPAUSE"},
	{MOVDIRI, "MOVDIRI direct store"},
	{MOVDIR64B, "MOVDIR64B 64-byte direct store"},
}

var (
	byKey     = map[string]ID{}
	aliases   = map[string]ID{}
	baselines = map[string]bool{}

	// compounds are external names that stand for more than one feature.
	compounds = map[string][]ID{
		"AVXAES": {AES, AVX},
	}
)

func init() {
	for _, info := range All {
		byKey[key(string(info.ID))] = info.ID
	}
	for alias, id := range map[string]ID{
		"X87":        FPU,
		"CMPXCHG8B":  CX8,
		"CMPXCHG16B": CX16,
		"SSE4":       SSE4_1,
		"SSE41":      SSE4_1,
		"SSE42":      SSE4_2,
		"ABM":        LZCNT,
		"ADOXADCX":   ADX,
		"AESNI":      AES,
		"CLMUL":      PCLMULQDQ,
		"PCLMUL":     PCLMULQDQ,
		"FMA3":       FMA,
		"AVX2GATHER": AVX2,
		"AVX512EVEX": AVX512F,
		"AVX512VEX":  AVX512F,
		"MOVDIR":     MOVDIRI,
		"AMD3DNOW":   D3NOW,
		"PRFCHW":     PREFETCHW,
		"IBT":        CET_IBT,
		"SHSTK":      CET_SS,
		"VTX":        VMX,
		"SYSENTER":   SEP,
		"LAHF":       LAHF_LM,
		"AVXVNNI":    AVX_VNNI,
		"VPCLMULQDQ": VPCLMUL,
	} {
		aliases[alias] = id
	}
	for _, b := range []string{"BASE", "LONGMODE", "I86", "I186", "I286", "I386", "I486", "I586", "I686", "PENTIUM", "INTEL8086", "INTEL186", "INTEL286", "INTEL386", "INTEL486", "X64", "CPUID", "PAUSE", "NOP"} {
		baselines[b] = true
	}
}

// key reduces a spelling to upper-case alphanumerics.
func key(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse normalizes an external feature spelling to its canonical ID.
// It reports false when the name is not part of the vocabulary; callers
// decide whether to keep the raw token.
func Parse(name string) (ID, bool) {
	k := key(name)
	if k == "" {
		return "", false
	}
	if id, ok := byKey[k]; ok {
		return id, true
	}
	if id, ok := aliases[k]; ok {
		return id, true
	}
	return "", false
}

// ParseAll is [Parse] for names that may stand for several features, such
// as XED's AVXAES. The result is never empty when ok is true.
func ParseAll(name string) ([]ID, bool) {
	if ids, ok := compounds[key(name)]; ok {
		return append([]ID(nil), ids...), true
	}
	if id, ok := Parse(name); ok {
		return []ID{id}, true
	}
	return nil, false
}

// IsBaseline reports whether name denotes the base instruction set rather
// than an extension (XED's BASE, LONGMODE, iced's INTEL386 and so on).
func IsBaseline(name string) bool {
	return baselines[key(name)]
}

// Known reports whether id belongs to the vocabulary.
func Known(id ID) bool {
	got, ok := byKey[key(string(id))]
	return ok && got == id
}

// Describe returns the description of id, or "" for unknown features.
func Describe(id ID) string {
	for _, info := range All {
		if info.ID == id {
			return info.Description
		}
	}
	return ""
}
