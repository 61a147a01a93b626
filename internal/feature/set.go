package feature

import (
	"sort"
	"strings"
)

// Set is a set of features. The zero value is not usable; use NewSet.
type Set map[ID]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts ids into s.
func (s Set) Add(ids ...ID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Has reports whether id is in s.
func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of features in s.
func (s Set) Len() int { return len(s) }

// Union adds every member of other to s and returns s.
func (s Set) Union(other Set) Set {
	for id := range other {
		s[id] = struct{}{}
	}
	return s
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Equal reports whether s and other hold the same features.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the members of s in vocabulary order, followed by any
// features outside the vocabulary in lexical order.
func (s Set) Sorted() []ID {
	out := make([]ID, 0, len(s))
	seen := make(map[ID]bool, len(s))
	for _, info := range All {
		if s.Has(info.ID) {
			out = append(out, info.ID)
			seen[info.ID] = true
		}
	}
	var rest []ID
	for id := range s {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

// Strings returns the sorted feature names.
func (s Set) Strings() []string {
	ids := s.Sorted()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func (s Set) String() string {
	return strings.Join(s.Strings(), "  ")
}
