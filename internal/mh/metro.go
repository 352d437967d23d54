package mh

import (
	"math"
	"math/rand"

	"github.com/kolmogorov-synth/kolmogorov/internal/config"
	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// Scorer scores a candidate term; higher is better. A score of
// math.Inf(1) signals an exact solution and stops the chain early,
// mirroring metro.rs's scorer closures returning None on a perfect match.
type Scorer func(t term.Term) float64

// Options configures a Metropolis-Hastings run (spec §4.5).
type Options struct {
	Iterations int
	Weights    [3]float64 // ReplaceVar, ReplaceSmall, ReplaceLarge
	PrintFreq  int
	OnProgress func(iter int, bestScore float64, best term.Term)
}

// DefaultOptions returns the proposal mixture from config and a
// print frequency suitable for interactive use.
func DefaultOptions(iterations int) Options {
	return Options{
		Iterations: iterations,
		Weights:    [3]float64{config.ReplaceVarProb, config.ReplaceSmallProb, config.ReplaceLargeProb},
		PrintFreq:  config.DefaultPrintFreq,
	}
}

// Result is the outcome of a Metropolis run.
type Result struct {
	Best      term.Term
	BestScore float64
	Solved    bool
	Iters     int
}

// Metropolis runs the mutation kernel for opts.Iterations steps (or until
// score reaches +Inf), starting from seed and scoring every proposed term
// with score. This is the Go analogue of metro.rs's metropolis():
// propose a neighbor via Mutate and compute the acceptance ratio
// (proposalScore/curScore) * (GBackward/GForward); accept it
// unconditionally if that ratio is at least 1, otherwise with probability
// equal to the ratio, tracking the best term
// seen across every proposal regardless of whether it was accepted.
func Metropolis(l lang.Language, ctx *context.Context, rootTy term.Type, seed term.Term, score Scorer, rng *rand.Rand, opts Options) Result {
	vg := ctx.VarGen()
	sc := NewSizeCache()

	cur := seed
	curScore := score(cur)
	best := cur
	bestScore := curScore

	for i := 0; i < opts.Iterations; i++ {
		if math.IsInf(curScore, 1) {
			return Result{Best: cur, BestScore: curScore, Solved: true, Iters: i}
		}

		prop, ok := Mutate(l, ctx, vg, sc, rng, cur, rootTy, opts.Weights)
		if !ok {
			continue
		}
		if !term.IsBetaNormal(prop.Term) {
			// A same-type replacement can be a lambda spliced into a
			// position that turns it into a fresh redex; that is a plain
			// rejection here, not an error (§4.5, §7).
			continue
		}
		propScore := score(prop.Term)

		// best tracks the highest-scoring candidate seen across every
		// proposal, independent of whether the chain actually moves to it
		// (§4.5): a high-scoring but rejected proposal must still count.
		if propScore > bestScore {
			bestScore, best = propScore, prop.Term
		}
		if math.IsInf(propScore, 1) {
			return Result{Best: prop.Term, BestScore: propScore, Solved: true, Iters: i + 1}
		}

		ratio := scoreRatio(propScore, curScore) * gRatio(prop)
		accept := ratio >= 1 || rng.Float64() < ratio
		if accept {
			cur, curScore = prop.Term, propScore
		}

		if opts.PrintFreq > 0 && opts.OnProgress != nil && i%opts.PrintFreq == 0 {
			opts.OnProgress(i, bestScore, best)
		}
	}

	return Result{Best: best, BestScore: bestScore, Solved: math.IsInf(bestScore, 1), Iters: opts.Iterations}
}

// scoreRatio is proposalScore/curScore, the linear-domain ratio spec §4.5
// and metro.rs's score_ratio both use (the scorer itself already applies
// exp(scoreFactor*correct), so the acceptance test must not exponentiate
// again). curScore == 0 only arises from a custom scorer that can reach
// zero; treat it as "any positive proposal is an improvement".
func scoreRatio(propScore, curScore float64) float64 {
	if curScore == 0 {
		if propScore > 0 {
			return math.Inf(1)
		}
		return 1
	}
	return propScore / curScore
}

// gRatio returns the Hastings correction GBackward/GForward, defaulting to
// 1 (a symmetric proposal) for ReplaceVar/ReplaceSmall moves.
func gRatio(p Proposal) float64 {
	if p.GForward == 0 {
		return 0
	}
	return p.GBackward / p.GForward
}
