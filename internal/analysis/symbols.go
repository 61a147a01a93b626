package analysis

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/ianlancetaylor/demangle"

	"isaext/internal/codesrc"
)

// symbolCache memoizes demangled names. Witness attribution demangles the
// same few functions over and over.
type symbolCache struct {
	mu            sync.Mutex
	demangleCache map[string]string
	hits          map[string]int
}

var cache = &symbolCache{
	demangleCache: make(map[string]string),
	hits:          make(map[string]int),
}

// CachedDemangle returns the demangled form of a C++ or Rust symbol, or
// the name itself when it is not mangled.
func CachedDemangle(mangled string) string {
	cache.mu.Lock()
	if d, ok := cache.demangleCache[mangled]; ok {
		cache.hits[mangled]++
		cache.mu.Unlock()
		return d
	}
	cache.mu.Unlock()

	d := demangle.Filter(mangled, demangle.NoClones)

	cache.mu.Lock()
	cache.demangleCache[mangled] = d
	cache.mu.Unlock()
	return d
}

// DemangleCacheStats reports the number of cached names, the number of
// cache hits and up to five most requested names.
func DemangleCacheStats() (entries, hits int, top []string) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	type symbolHit struct {
		symbol string
		count  int
	}
	var all []symbolHit
	for sym, n := range cache.hits {
		hits += n
		all = append(all, symbolHit{sym, n})
	}
	slices.SortFunc(all, func(a, b symbolHit) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.symbol, b.symbol)
	})
	for i := 0; i < 5 && i < len(all); i++ {
		top = append(top, fmt.Sprintf("%s (%d hits)", all[i].symbol, all[i].count))
	}
	return len(cache.demangleCache), hits, top
}

// SymbolTable maps addresses to the function containing them.
type SymbolTable struct {
	syms []codesrc.Symbol
}

// NewSymbolTable indexes syms. A symbol without a recorded size is
// assumed to extend to the next symbol.
func NewSymbolTable(syms []codesrc.Symbol) *SymbolTable {
	s := slices.Clone(syms)
	slices.SortStableFunc(s, func(a, b codesrc.Symbol) int { return cmp.Compare(a.Addr, b.Addr) })
	return &SymbolTable{syms: s}
}

// Lookup returns the symbol containing addr and the offset into it.
func (t *SymbolTable) Lookup(addr uint64) (codesrc.Symbol, uint64, bool) {
	i := sort.Search(len(t.syms), func(i int) bool { return t.syms[i].Addr > addr }) - 1
	if i < 0 {
		return codesrc.Symbol{}, 0, false
	}
	s := t.syms[i]
	if s.Size > 0 && addr >= s.Addr+s.Size {
		return codesrc.Symbol{}, 0, false
	}
	return s, addr - s.Addr, true
}

// Name formats the location of addr as "symbol+0xoff", demangled.
func (t *SymbolTable) Name(addr uint64) string {
	s, off, ok := t.Lookup(addr)
	if !ok {
		return ""
	}
	name := CachedDemangle(s.Name)
	if off == 0 {
		return name
	}
	return fmt.Sprintf("%s+%#x", name, off)
}

// Attribute names the function containing each witness of r.
func (t *SymbolTable) Attribute(r *Result) {
	for id, w := range r.Witnesses {
		w.Symbol = t.Name(w.Addr)
		r.Witnesses[id] = w
	}
	if len(r.Witnesses) > 0 {
		entries, hits, top := DemangleCacheStats()
		slog.Debug("Attributed witnesses", "witnesses", len(r.Witnesses), "demangled", entries, "hits", hits, "top", top)
	}
}
