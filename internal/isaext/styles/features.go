// Package styles holds the terminal styles of isaext reports.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	"isaext/internal/feature"
)

var (
	Header  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(charmtone.Smoke.Hex()))
	Address = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	Symbol  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	Count   = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Zinc.Hex()))
	Missing = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	legacy = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Squid.Hex()))
	sse    = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Malibu.Hex()))
	avx    = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Guac.Hex()))
	avx512 = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(charmtone.Zest.Hex()))
	other  = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Charple.Hex()))
)

// Feature returns the style for a feature name, by family.
func Feature(id feature.ID) lipgloss.Style {
	s := string(id)
	switch {
	case strings.HasPrefix(s, "AVX512"):
		return avx512
	case strings.HasPrefix(s, "AVX"), id == feature.FMA, id == feature.F16C:
		return avx
	case strings.HasPrefix(s, "SSE"), strings.HasPrefix(s, "SSSE"):
		return sse
	case id == feature.FPU, id == feature.CMOV, id == feature.CX8, id == feature.MMX, id == feature.FXSR:
		return legacy
	}
	return other
}
