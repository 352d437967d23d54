// Package search implements the size-bounded term enumerator (spec §4.3,
// C5) and the annotation pass used by the mutation kernel (spec §4.6, C6).
// It is grounded on the reference crate's search module: a head either
// stands alone (its own type already matches the target) or is applied to
// enough arguments to bring its arrow chain down to the target, with every
// way of splitting the remaining size budget across those arguments tried
// in turn. Argument-chain pruning and semantic deduplication happen at
// every level so that equivalent terms are produced only once.
package search

import (
	"github.com/kolmogorov-synth/kolmogorov/internal/cache"
	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// Candidate is one term produced by the enumerator together with its
// canonicalization result.
type Candidate struct {
	Term     term.Term
	Analysis lang.Analysis
}

// head is a named, typed thing that can stand as the leftmost symbol of
// an application: a bound variable or a context builtin.
type head struct {
	name term.Identifier
	ty   term.Type
}

// Enumerate returns every term of exactly the given size and target type,
// one per semantic equivalence class (spec §4.3). decls is the scope the
// term is built in (its free variables); vg supplies fresh binder names
// for any lambdas introduced along the way; c is the inhabitation cache
// for this search session.
func Enumerate(l lang.Language, vg *term.VarGen, c *cache.Cache, targ term.Type, size int, decls term.VarsVec) []Candidate {
	if size < 1 {
		return nil
	}
	if c.Prune(targ, size) {
		return nil
	}

	s := c.BeginSearch(targ, size)
	var out []Candidate
	var seen []lang.Analysis

	emit := func(t term.Term) {
		an := lang.Analyze(l, t, targ, decls)
		if an.IsMalformed() {
			return
		}
		if an.Kind == lang.Canonical {
			for _, prior := range seen {
				if lang.SameClass(an, prior) {
					return
				}
			}
		}
		seen = append(seen, an)
		out = append(out, Candidate{Term: t, Analysis: an})
		c.YieldTerm(s)
	}

	if size == 1 {
		for _, h := range heads(decls, l.Context()) {
			if h.ty.Equal(targ) {
				emit(term.TVar{Name: h.name})
			}
		}
		c.EndSearch(s)
		return out
	}

	if f, ok := targ.(term.Fun); ok {
		v := vg.Fresh()
		c.IntroVar()
		bodies := Enumerate(l, vg, c, f.Ret, size-1, decls.Extended(term.VarDecl{Name: v, Type: f.Arg}))
		c.ElimVar()
		vg.Release(v)
		for _, b := range bodies {
			emit(term.TLam{Var: v, Body: b.Term})
		}
	}

	budget := size - 1
	if budget >= 1 {
		for _, h := range heads(decls, l.Context()) {
			if !term.Produces(h.ty, targ) {
				continue
			}
			argTypes, ret := term.Uncurry(h.ty)
			for k := 1; k <= len(argTypes); k++ {
				remaining := term.FunN(ret, argTypes[k:]...)
				if !remaining.Equal(targ) {
					continue
				}
				emitApplications(l, vg, c, h, argTypes[:k], budget, decls, emit)
			}
		}
	}

	c.EndSearch(s)
	return out
}

// heads lists every bound variable and context builtin in scope, in a
// fixed order (decls first, then context declaration order) so that
// enumeration order is deterministic (spec §4.3).
func heads(decls term.VarsVec, ctx *context.Context) []head {
	out := make([]head, 0, len(decls)+4)
	for _, d := range decls {
		out = append(out, head{name: d.Name, ty: d.Type})
	}
	for _, e := range ctx.Iter() {
		out = append(out, head{name: e.Name, ty: e.Builtin.Type})
	}
	return out
}

// emitApplications tries every way of splitting budget across argTypes
// (each part at least 1, since every subterm has size >= 1), pruning
// splits the cache already knows are dead, and calls emit once per
// resulting application for every combination of argument terms.
func emitApplications(l lang.Language, vg *term.VarGen, c *cache.Cache, h head, argTypes []term.Type, budget int, decls term.VarsVec, emit func(term.Term)) {
	if len(argTypes) > budget {
		return
	}
	if c.PruneArg(argTypes, budget) {
		return
	}
	for _, split := range partitions(budget, len(argTypes)) {
		argSets := make([][]Candidate, len(argTypes))
		ok := true
		for i, at := range argTypes {
			argSets[i] = Enumerate(l, vg, c, at, split[i], decls)
			if len(argSets[i]) == 0 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for _, combo := range cartesian(argSets) {
			t := term.Term(term.TVar{Name: h.name})
			for _, a := range combo {
				t = term.TApp{Fun: t, Arg: a.Term}
			}
			emit(t)
		}
	}
}

// partitions returns every way to write total as the sum of n positive
// integers, in ascending lexicographic order of the first differing part
// (the enumerator's deterministic ordering requirement, spec §4.3).
func partitions(total, n int) [][]int {
	if n == 0 {
		if total == 0 {
			return [][]int{{}}
		}
		return nil
	}
	if n == 1 {
		if total < 1 {
			return nil
		}
		return [][]int{{total}}
	}
	var out [][]int
	for first := 1; first <= total-(n-1); first++ {
		for _, rest := range partitions(total-first, n-1) {
			part := append([]int{first}, rest...)
			out = append(out, part)
		}
	}
	return out
}

// cartesian returns the Cartesian product of sets, preserving the order
// of each input slice.
func cartesian(sets [][]Candidate) [][]Candidate {
	if len(sets) == 0 {
		return [][]Candidate{{}}
	}
	rest := cartesian(sets[1:])
	out := make([][]Candidate, 0, len(sets[0])*len(rest))
	for _, c := range sets[0] {
		for _, r := range rest {
			combo := append([]Candidate{c}, r...)
			out = append(out, combo)
		}
	}
	return out
}
