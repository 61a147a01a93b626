// Package classify maps decoded instructions to the CPU features they
// require.
//
// The mapping is a static table keyed by opcode class. Each class carries
// an ordered list of rules constraining the encoding space, mandatory
// prefix, opcode map, W, vector length, operand kind and execution mode;
// the first rule that matches an instruction supplies its feature set.
// Instructions of the base architecture match a rule with no features.
package classify

import (
	"errors"
	"fmt"
	"log/slog"
	"math/bits"
	"strings"
	"sync"

	"isaext/internal/disasm"
	"isaext/internal/feature"
)

// ErrClassificationGap is matched by every [GapError].
var ErrClassificationGap = errors.New("classification gap")

// GapError reports a decoded instruction the feature table has no entry for.
type GapError struct {
	Offset   int
	Identity string
}

func (e *GapError) Error() string {
	return fmt.Sprintf("no feature rule for %s at offset %#x", e.Identity, e.Offset)
}

func (e *GapError) Unwrap() error { return ErrClassificationGap }

// GapPolicy decides what a [Classifier] does with a classification gap.
type GapPolicy int

const (
	// GapFail returns the gap as an error.
	GapFail GapPolicy = iota
	// GapIgnore treats the instruction as requiring no features beyond
	// what its encoding implies and logs each distinct encoding once.
	GapIgnore
)

// ParseGapPolicy converts the configuration spelling of a policy.
func ParseGapPolicy(s string) (GapPolicy, error) {
	switch strings.ToLower(s) {
	case "", "error", "fail":
		return GapFail, nil
	case "ignore":
		return GapIgnore, nil
	}
	return 0, fmt.Errorf("unknown gap policy %q (want error or ignore)", s)
}

func (p GapPolicy) String() string {
	if p == GapIgnore {
		return "ignore"
	}
	return "error"
}

// Classify returns the features required to execute in. It is pure and
// safe for concurrent use.
func Classify(in disasm.Inst) (feature.Set, error) {
	for i := range table[in.Op] {
		r := &table[in.Op][i]
		if !r.match(&in) {
			continue
		}
		set := feature.NewSet(r.feats...)
		if r.vl && in.Enc == disasm.EncEVEX && in.L < 2 {
			set.Add(feature.AVX512VL)
		}
		return set, nil
	}
	return nil, &GapError{Offset: in.Offset, Identity: in.Identity()}
}

// Classifier applies a gap policy on top of [Classify]. It is safe for
// concurrent use.
type Classifier struct {
	policy GapPolicy

	mu   sync.Mutex
	seen map[string]struct{}
}

// New returns a classifier using policy.
func New(policy GapPolicy) *Classifier {
	return &Classifier{policy: policy, seen: make(map[string]struct{})}
}

// Policy returns the gap policy of c.
func (c *Classifier) Policy() GapPolicy { return c.policy }

// Classify classifies in, applying the gap policy.
func (c *Classifier) Classify(in disasm.Inst) (feature.Set, error) {
	set, err := Classify(in)
	if err == nil || c.policy == GapFail {
		return set, err
	}
	var gap *GapError
	if !errors.As(err, &gap) {
		return nil, err
	}
	c.mu.Lock()
	_, dup := c.seen[gap.Identity]
	if !dup {
		c.seen[gap.Identity] = struct{}{}
	}
	c.mu.Unlock()
	if !dup {
		slog.Warn("Ignoring unclassified instruction", "identity", gap.Identity, "offset", fmt.Sprintf("%#x", gap.Offset))
	}
	return floor(in), nil
}

// floor is what an ignored gap still proves: any EVEX encoding needs
// AVX512F, and AVX512VL below 512 bits.
func floor(in disasm.Inst) feature.Set {
	set := feature.NewSet()
	if in.Enc == disasm.EncEVEX {
		set.Add(feature.AVX512F)
		if in.L < 2 {
			set.Add(feature.AVX512VL)
		}
	}
	return set
}

// Gaps returns the distinct encodings ignored so far.
func (c *Classifier) Gaps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

// Table returns every rule of the feature table, grouped by op in op
// order and in priority order within an op.
func Table() []Rule {
	var out []Rule
	for _, op := range disasm.Ops() {
		for _, r := range table[op] {
			out = append(out, Rule{
				Op:       op,
				Encoding: disasm.Encoding(bits.TrailingZeros8(uint8(r.enc))),
				Features: append([]feature.ID(nil), r.feats...),
				VL:       r.vl,
			})
		}
	}
	return out
}
