package search

import (
	"github.com/kolmogorov-synth/kolmogorov/internal/cache"
	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// Search is the public enumerator surface named in spec §6/§9: a caller
// drives it with repeated Next() calls rather than receiving the whole
// result set at once, matching the "consumer drives it by repeated next
// calls" contract of §5 even though the underlying walk (Enumerate) is
// computed eagerly — size-bounded enumeration at a fixed (type, size) is
// already a terminating, boundedly-sized search, so there is no unbounded
// sequence to stream lazily here; Search exists so callers (in particular
// cmd/kolmogorov's `enumerate` driver) see the §9 Open Question's chosen
// iterator shape rather than a bare slice.
type Search struct {
	items []Candidate
	pos   int
}

// NewSearch runs Enumerate once and wraps its result as an iterator.
func NewSearch(l lang.Language, vg *term.VarGen, c *cache.Cache, targ term.Type, size int, decls term.VarsVec) *Search {
	return &Search{items: Enumerate(l, vg, c, targ, size, decls)}
}

// Next returns the next (Term, Analysis) pair, or ok=false once the
// search is exhausted (spec §7, "empty search... reported as end-of-
// iteration, not an error").
func (s *Search) Next() (term.Term, lang.Analysis, bool) {
	if s.pos >= len(s.items) {
		return nil, lang.Analysis{}, false
	}
	c := s.items[s.pos]
	s.pos++
	return c.Term, c.Analysis, true
}

// NewContextSearch is a convenience constructor seeding the VarGen and
// inhabitation cache fresh from ctx, the common case for a one-shot
// top-level search (spec §4.1's context()).
func NewContextSearch(l lang.Language, ctx *context.Context, targ term.Type, size int) *Search {
	return NewSearch(l, ctx.VarGen(), cache.New(), targ, size, nil)
}
