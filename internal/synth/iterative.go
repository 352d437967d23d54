package synth

import (
	"math"
	"math/rand"

	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/mh"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// Iterative synthesizes a step function of type rootTy (Elem -> Elem) that
// reproduces seq: f(seq[i]) should equal seq[i+1] for every i. Unlike
// SimpleMap, each step is scored by feeding it the TRUE previous element
// from seq rather than the candidate's own (possibly wrong) prior output,
// matching iterative.rs's use of the ground-truth sequence at every step
// rather than compounding error across a generated run.
func Iterative(l lang.Language, ctx *context.Context, rootTy term.Type, seq []term.Value, seed term.Term, rng *rand.Rand, params Parameters) mh.Result {
	steps := len(seq) - 1
	scorer := func(t term.Term) float64 {
		correct := 0
		for i := 0; i < steps; i++ {
			got, ok := applyAll(ctx, t, []term.Value{seq[i]})
			if ok && got.Equal(seq[i+1]) {
				correct++
			}
		}
		raw := scoreFromMatches(correct, steps, params.ScoreFactor)
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
