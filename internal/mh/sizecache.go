// Package mh implements the Metropolis-Hastings mutation kernel (spec
// §4.5-§4.7, C7), grounded on the reference crate's generate::metro
// module: a term is repeatedly perturbed by replacing one subnode with an
// alternative of the same or a resampled size, accepted or rejected by the
// Metropolis criterion applied to a caller-supplied score.
package mh

import (
	"math/rand"

	"github.com/kolmogorov-synth/kolmogorov/internal/cache"
	"github.com/kolmogorov-synth/kolmogorov/internal/config"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/search"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// sizeCacheKey identifies one (type, size, scope) enumeration the mutation
// kernel has already paid for.
type sizeCacheKey struct {
	ty   string
	size int
	key  string
}

// sizeCacheEntry either retains the full enumerated term set (when it fits
// within config.MaxInMem) or degrades to a bare count once the set grows
// past that bound, exactly mirroring metro.rs's CacheEntry::{Explicit,Count}
// (spec §5): the kernel only ever needs "how many alternatives exist" for
// the g-ratio, and "a uniformly random one" for proposing a replacement,
// neither of which requires retaining an unbounded term list.
type sizeCacheEntry struct {
	terms []search.Candidate // nil once degraded
	count int
}

// SizeCache memoizes full enumerations the mutation kernel repeats across
// many proposals at the same (type, size) pair. It owns an inhabitation
// Cache per underlying enumeration call (a fresh one each time, since the
// kernel's scope changes proposal to proposal).
type SizeCache struct {
	mem map[sizeCacheKey]sizeCacheEntry
}

// NewSizeCache returns an empty cache.
func NewSizeCache() *SizeCache {
	return &SizeCache{mem: make(map[sizeCacheKey]sizeCacheEntry)}
}

func (s *SizeCache) lookup(l lang.Language, vg *term.VarGen, targ term.Type, size int, decls term.VarsVec) sizeCacheEntry {
	k := sizeCacheKey{ty: targ.String(), size: size, key: decls.SortedKey()}
	if e, ok := s.mem[k]; ok {
		return e
	}
	cands := search.Enumerate(l, vg, cache.New(), targ, size, decls)
	var e sizeCacheEntry
	if len(cands) <= config.MaxInMem {
		e = sizeCacheEntry{terms: cands, count: len(cands)}
	} else {
		e = sizeCacheEntry{count: len(cands)}
	}
	s.mem[k] = e
	return e
}

// Count returns the number of inhabitants of (targ, size) in decls.
func (s *SizeCache) Count(l lang.Language, vg *term.VarGen, targ term.Type, size int, decls term.VarsVec) int {
	return s.lookup(l, vg, targ, size, decls).count
}

// Sample draws one term uniformly at random from the inhabitants of
// (targ, size) in decls, or reports ok=false if there are none. When the
// full set was not retained (it degraded to a Count), Sample re-runs the
// enumeration once to draw from it rather than fabricate a value — the
// degraded cache entry only saves memory on repeat Count-only queries.
func (s *SizeCache) Sample(l lang.Language, vg *term.VarGen, targ term.Type, size int, decls term.VarsVec, rng *rand.Rand) (search.Candidate, bool) {
	e := s.lookup(l, vg, targ, size, decls)
	if e.count == 0 {
		return search.Candidate{}, false
	}
	if e.terms != nil {
		return e.terms[rng.Intn(len(e.terms))], true
	}
	cands := search.Enumerate(l, vg, cache.New(), targ, size, decls)
	if len(cands) == 0 {
		return search.Candidate{}, false
	}
	return cands[rng.Intn(len(cands))], true
}
