package report

import (
	"strings"

	"github.com/klauspost/cpuid/v2"

	"isaext/internal/feature"
)

// cpuidNames maps features whose cpuid name differs from the ID with the
// underscores removed.
var cpuidNames = map[feature.ID]string{
	feature.FPU:       "X87",
	feature.CX8:       "CMPXCHG8",
	feature.LAHF_LM:   "LAHF",
	feature.D3NOW:     "AMD3DNOW",
	feature.SEP:       "SYSEE",
	feature.SSE4_1:    "SSE4",
	feature.SSE4_2:    "SSE42",
	feature.AES:       "AESNI",
	feature.PCLMULQDQ: "CLMUL",
	feature.FMA:       "FMA3",
}

// HostSupports reports whether the running CPU supports id. known is false
// when cpuid cannot tell.
func HostSupports(id feature.ID) (supported, known bool) {
	name, ok := cpuidNames[id]
	if !ok {
		name = strings.ReplaceAll(string(id), "_", "")
	}
	f := cpuid.ParseFeature(name)
	if f == cpuid.UNKNOWN {
		return false, false
	}
	return cpuid.CPU.Supports(f), true
}
