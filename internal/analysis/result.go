package analysis

import (
	"isaext/internal/disasm"
	"isaext/internal/feature"
)

// Witness is the first instruction seen that requires a feature.
type Witness struct {
	Addr     uint64 `json:"addr"`
	Mnemonic string `json:"mnemonic"`
	Text     string `json:"text,omitempty"`
	Raw      []byte `json:"raw,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
}

// Result accumulates the features required by a set of instructions.
// Witness addresses are blob offsets until Rebase is called.
type Result struct {
	Set          feature.Set
	Counts       map[feature.ID]int
	Witnesses    map[feature.ID]Witness
	Instructions int
	Skipped      int
	Bits         int
}

func NewResult() Result {
	return Result{
		Set:       feature.NewSet(),
		Counts:    make(map[feature.ID]int),
		Witnesses: make(map[feature.ID]Witness),
	}
}

// Observe records one decoded instruction and the features it requires.
func (r *Result) Observe(in disasm.Inst, set feature.Set) {
	r.Instructions++
	if len(set) == 0 {
		return
	}
	w := Witness{
		Addr:     uint64(in.Offset),
		Mnemonic: in.Mnemonic(),
		Raw:      append([]byte(nil), in.Raw...),
	}
	r.Record(w, set)
}

// Record adds set to the result with w as the candidate witness. It does
// not count an instruction; callers that are not folding a decoded stream
// bump Instructions themselves.
func (r *Result) Record(w Witness, set feature.Set) {
	for id := range set {
		r.Set.Add(id)
		r.Counts[id]++
		if cur, ok := r.Witnesses[id]; !ok || w.Addr < cur.Addr {
			r.Witnesses[id] = w
		}
	}
}

// Merge unions other into r. Counts add up and the lowest addressed
// witness wins, so the outcome does not depend on merge order.
func (r *Result) Merge(other Result) {
	r.Set.Union(other.Set)
	for id, n := range other.Counts {
		r.Counts[id] += n
	}
	for id, w := range other.Witnesses {
		if cur, ok := r.Witnesses[id]; !ok || w.Addr < cur.Addr {
			r.Witnesses[id] = w
		}
	}
	r.Instructions += other.Instructions
	r.Skipped += other.Skipped
	if r.Bits == 0 {
		r.Bits = other.Bits
	}
}

// Rebase turns blob offsets into virtual addresses.
func (r *Result) Rebase(base uint64) {
	if base == 0 {
		return
	}
	for id, w := range r.Witnesses {
		w.Addr += base
		r.Witnesses[id] = w
	}
}
