package search_test

import (
	"testing"

	"github.com/kolmogorov-synth/kolmogorov/internal/cache"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/langs/opaque"
	"github.com/kolmogorov-synth/kolmogorov/internal/langs/polynomial"
	"github.com/kolmogorov-synth/kolmogorov/internal/search"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// TestPolynomialEnumerationSizeFive enumerates N -> N terms of size 5 in
// the Polynomials language and checks that the result is non-empty and
// that no two of its terms share a normalized polynomial.
func TestPolynomialEnumerationSizeFive(t *testing.T) {
	l := polynomial.New()
	targ := term.FunN(polynomial.N, polynomial.N)

	cands := enumerate(l, targ, 5)
	if len(cands) == 0 {
		t.Fatalf("expected at least one term of type N -> N at size 5")
	}

	seen := make([]lang.Analysis, 0, len(cands))
	for _, c := range cands {
		for _, prior := range seen {
			if lang.SameClass(c.Analysis, prior) {
				t.Fatalf("two enumerated terms share a canonical analysis: %v", c.Term)
			}
		}
		seen = append(seen, c.Analysis)
	}
}

// TestEnumerateYieldsBetaNormalExactSizeTerms covers spec §8 properties
// 1 (normal-form closure) and 3 (size exactness).
func TestEnumerateYieldsBetaNormalExactSizeTerms(t *testing.T) {
	l := polynomial.New()
	targ := term.FunN(polynomial.N, polynomial.N)
	for _, size := range []int{1, 2, 3, 4, 5, 6} {
		cands := enumerate(l, targ, size)
		for _, c := range cands {
			if !term.IsBetaNormal(c.Term) {
				t.Errorf("size %d: %v is not beta-normal", size, c.Term)
			}
			if got := term.Size(c.Term); got != size {
				t.Errorf("size %d: Size(%v) = %d, want %d", size, c.Term, got, size)
			}
		}
	}
}

// TestMonotoneInhabitation covers spec §8 property 5: once a (type,
// size) pair is recorded Uninhabited in a scope, re-enumerating it there
// yields zero terms.
func TestMonotoneInhabitation(t *testing.T) {
	l := opaque.New()
	// Bool has no size-1 inhabitant in this language's empty top-level
	// scope (no 0-arity Bool builtin, no bound Bool variable).
	targ := opaque.Bool
	c := cache.New()
	vg := l.Context().VarGen()

	first := search.Enumerate(l, vg, c, targ, 1, nil)
	if len(first) != 0 {
		t.Fatalf("expected no size-1 Bool terms in the empty scope, got %v", first)
	}
	if !c.Prune(targ, 1) {
		t.Fatalf("an exhausted empty search must be recorded Uninhabited")
	}

	second := search.Enumerate(l, vg, c, targ, 1, nil)
	if len(second) != 0 {
		t.Errorf("re-enumerating an Uninhabited (type,size) must still yield zero terms, got %v", second)
	}
}

func enumerate(l lang.Language, targ term.Type, size int) []search.Candidate {
	return search.Enumerate(l, l.Context().VarGen(), cache.New(), targ, size, nil)
}
