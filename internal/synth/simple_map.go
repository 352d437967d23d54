package synth

import (
	"math"
	"math/rand"

	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/mh"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// Example is one (inputs, expected output) pair a candidate program is
// scored against (spec §4.8).
type Example struct {
	Args []term.Value
	Want term.Value
}

// applyAll builds and evaluates fn applied in turn to every arg, returning
// the resulting leaf Value. ok is false if evaluation does not reduce to
// a Value leaf (e.g. the candidate is malformed, or under-applied).
func applyAll(ctx *context.Context, fn term.Term, args []term.Value) (term.Value, bool) {
	t := fn
	for _, a := range args {
		t = term.TApp{Fun: t, Arg: term.TVal{Val: a}}
	}
	return term.LeafVal(context.Evaluate(ctx, t))
}

// scoreFromMatches turns a correct/total count into a Metropolis score:
// +Inf on a perfect match (an exact solution, stopping the chain), else
// exp(scoreFactor * correct), matching metro.rs's scorer convention of
// returning None for a solution and a bias-weighted float otherwise.
func scoreFromMatches(correct, total int, scoreFactor float64) float64 {
	if total > 0 && correct == total {
		return math.Inf(1)
	}
	return math.Exp(scoreFactor * float64(correct))
}

// SimpleMap synthesizes a term of rootTy that maps every example's Args to
// its Want, via Metropolis-Hastings search seeded from seed.
func SimpleMap(l lang.Language, ctx *context.Context, rootTy term.Type, examples []Example, seed term.Term, rng *rand.Rand, params Parameters) mh.Result {
	scorer := func(t term.Term) float64 {
		correct := 0
		for _, ex := range examples {
			got, ok := applyAll(ctx, t, ex.Args)
			if ok && got.Equal(ex.Want) {
				correct++
			}
		}
		raw := scoreFromMatches(correct, len(examples), params.ScoreFactor)
		if math.IsInf(raw, 1) {
			return raw
		}
		return params.Bias.Apply(raw, term.Size(t))
	}

	opts := mh.DefaultOptions(params.Iterations)
	if params.PrintFreq > 0 {
		opts.PrintFreq = params.PrintFreq
	}
	opts.OnProgress = params.OnProgress
	return mh.Metropolis(l, ctx, rootTy, seed, scorer, rng, opts)
}
