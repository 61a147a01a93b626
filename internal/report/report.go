// Package report renders feature reports as text, JSON or markdown and
// exports them as Prometheus metrics.
package report

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"

	"isaext/internal/analysis"
	"isaext/internal/feature"
)

// Meta describes the analysed binary.
type Meta struct {
	Path      string
	Backend   string
	Container string
	Section   string
	Addr      uint64
}

// Options select what a report contains and how it is rendered.
type Options struct {
	Format    string
	Explain   bool
	HostCheck bool
	// Color enables terminal styling. Width is the terminal width used
	// for markdown wrapping.
	Color bool
	Width int
}

type Report struct {
	Path         string    `json:"path"`
	Backend      string    `json:"backend"`
	Container    string    `json:"container,omitempty"`
	Section      string    `json:"section,omitempty"`
	Bits         int       `json:"bits"`
	Instructions int       `json:"instructions"`
	Skipped      int       `json:"skipped,omitempty"`
	Features     []Feature `json:"features"`
}

type Feature struct {
	ID          feature.ID `json:"id"`
	Description string     `json:"description,omitempty"`
	Count       int        `json:"count"`
	Witness     *Witness   `json:"witness,omitempty"`
	// Host is set with --host-check when the running CPU is known to
	// support or lack the feature.
	Host *bool `json:"host,omitempty"`
}

type Witness struct {
	Addr   string `json:"addr"`
	Text   string `json:"text"`
	Bytes  string `json:"bytes,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// Build assembles the report of res.
func Build(meta Meta, res analysis.Result, opts Options) Report {
	rep := Report{
		Path:         meta.Path,
		Backend:      meta.Backend,
		Container:    meta.Container,
		Section:      meta.Section,
		Bits:         res.Bits,
		Instructions: res.Instructions,
		Skipped:      res.Skipped,
		Features:     []Feature{},
	}
	for _, id := range res.Set.Sorted() {
		f := Feature{ID: id, Description: feature.Describe(id), Count: res.Counts[id]}
		if w, ok := res.Witnesses[id]; ok && opts.Explain {
			f.Witness = &Witness{
				Addr:   fmt.Sprintf("%#x", w.Addr),
				Text:   Disassemble(w, res.Bits),
				Bytes:  hex.EncodeToString(w.Raw),
				Symbol: w.Symbol,
			}
		}
		if opts.HostCheck {
			if ok, known := HostSupports(id); known {
				f.Host = &ok
			}
		}
		rep.Features = append(rep.Features, f)
	}
	return rep
}

// IDs returns the feature names of the report in order.
func (r Report) IDs() []string {
	ids := make([]string, len(r.Features))
	for i, f := range r.Features {
		ids[i] = string(f.ID)
	}
	return ids
}

// Missing returns the features the running CPU lacks.
func (r Report) Missing() []feature.ID {
	var ids []feature.ID
	for _, f := range r.Features {
		if f.Host != nil && !*f.Host {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// Disassemble renders a witness in Intel syntax. Text reported by an
// external disassembler is used as is. x86asm does not know VEX, EVEX or
// XOP encodings; those fall back to the mnemonic.
func Disassemble(w analysis.Witness, bits int) string {
	if w.Text != "" {
		return w.Text
	}
	if bits != 0 && len(w.Raw) > 0 {
		if inst, err := x86asm.Decode(w.Raw, bits); err == nil && inst.Len == len(w.Raw) {
			return x86asm.IntelSyntax(inst, w.Addr, nil)
		}
	}
	return strings.ToLower(w.Mnemonic)
}
