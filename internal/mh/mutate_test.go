package mh_test

import (
	"math/rand"
	"testing"

	"github.com/kolmogorov-synth/kolmogorov/internal/langs/polynomial"
	"github.com/kolmogorov-synth/kolmogorov/internal/mh"
	"github.com/kolmogorov-synth/kolmogorov/internal/search"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

func seedTerm() term.Term {
	// n -> plus one n
	return term.TLam{Var: "n", Body: term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "plus"}, Arg: term.TVar{Name: "one"}},
		Arg: term.TVar{Name: "n"},
	}}
}

// TestDetailedBalanceSanity covers spec §8 property 8: for HVar and
// Small proposals the g-ratio must be exactly 1, since both move kinds
// are symmetric (the reverse move draws from the identical candidate
// set).
func TestDetailedBalanceSanity(t *testing.T) {
	l := polynomial.New()
	ctx := l.Context()
	rootTy := term.FunN(polynomial.N, polynomial.N)
	vg := ctx.VarGen()
	sc := mh.NewSizeCache()
	rng := rand.New(rand.NewSource(7))

	cases := []struct {
		name    string
		weights [3]float64
	}{
		{"HVar", [3]float64{1, 0, 0}},
		{"Small", [3]float64{0, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prop, ok := mh.Mutate(l, ctx, vg, sc, rng, seedTerm(), rootTy, tc.weights)
			if !ok {
				t.Skipf("no eligible subnode for %s on this seed/rng draw", tc.name)
			}
			if prop.GForward != 1 || prop.GBackward != 1 {
				t.Errorf("%s proposal g-ratio = %v/%v, want 1/1 (symmetric)", tc.name, prop.GForward, prop.GBackward)
			}
		})
	}
}

// TestMetropolisChainStaysBetaNormal covers spec §8 property 7: every
// state the Metropolis chain accepts must be β-normal and retain the
// root type. A raw Mutate() proposal is allowed to be non-normal (a
// same-type lambda spliced into a head position can create a fresh
// redex); it is Metropolis's job to reject those before they are ever
// adopted as the chain's current state (spec §4.5, §7).
func TestMetropolisChainStaysBetaNormal(t *testing.T) {
	l := polynomial.New()
	ctx := l.Context()
	rootTy := term.FunN(polynomial.N, polynomial.N)
	rng := rand.New(rand.NewSource(42))

	// A constant scorer accepts every proposal Metropolis doesn't itself
	// reject, maximizing the chance of observing the invariant under
	// test rather than getting stuck re-proposing the same state.
	scorer := func(term.Term) float64 { return 1 }
	opts := mh.DefaultOptions(200)
	result := mh.Metropolis(l, ctx, rootTy, seedTerm(), scorer, rng, opts)

	if !term.IsBetaNormal(result.Best) {
		t.Fatalf("best term %v is not beta-normal", result.Best)
	}
	root := search.Annotate(ctx, result.Best, rootTy, nil)
	if !root.Ann.Type.Equal(rootTy) {
		t.Fatalf("best term root type = %v, want %v", root.Ann.Type, rootTy)
	}
}
