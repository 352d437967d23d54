// Package synth implements the two synthesis drivers (spec §4.8, C8): a
// direct-example scorer (SimpleMap) and a sequence scorer that feeds each
// step's true previous output back into the candidate (Iterative). Both
// wrap internal/mh's Metropolis loop with a Scorer built from a caller's
// example set, grounded on the reference crate's generate::synth module.
package synth

import (
	"math"

	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// SizeBias adjusts a raw correctness score by a candidate's size, letting
// a caller trade exactness for parsimony (spec §4.8).
type SizeBias interface {
	Apply(score float64, size int) float64
}

// Flat applies no size adjustment at all.
type Flat struct{}

func (Flat) Apply(score float64, size int) float64 { return score }

// DistAbs penalizes distance from Mean, scaled by C, matching metro.rs's
// bias term: score * exp(-C * |size - Mean|).
type DistAbs struct {
	Mean float64
	C    float64
}

func (b DistAbs) Apply(score float64, size int) float64 {
	return score * math.Exp(-b.C*math.Abs(float64(size)-b.Mean))
}

// Parameters configures a synthesis run (spec §4.8).
type Parameters struct {
	Iterations  int
	ScoreFactor float64
	Bias        SizeBias
	PrintFreq   int
	// OnProgress, if set, is invoked every PrintFreq iterations with the
	// best term seen so far (spec §6, "print_freq... how often to log
	// progress"). Callers decide how to render it (e.g. cmd/kolmogorov
	// picks \r-overwrite vs newline-delimited based on go-isatty).
	OnProgress func(iter int, bestScore float64, best term.Term)
}
