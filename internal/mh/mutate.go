package mh

import (
	"math/rand"

	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/search"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
	"gonum.org/v1/gonum/stat/distuv"
)

// ProposalKind tags which of the three mutation moves metro.rs's
// MutationTy distinguishes (spec §4.5).
type ProposalKind int

const (
	// ReplaceVar swaps a single occurrence of a variable or 0-arity head
	// for another of the same type in scope. Forward and reverse move
	// sets are identical, so this never needs a g-ratio correction.
	ReplaceVar ProposalKind = iota
	// ReplaceSmall replaces a subnode no larger than the language's
	// SmallSize with an independently resampled term of the exact same
	// size, drawn uniformly — also symmetric, for the same reason.
	ReplaceSmall
	// ReplaceLarge replaces a subnode larger than SmallSize with a term
	// whose size is itself resampled, which is asymmetric and needs the
	// detailed-balance correction computed by g.
	ReplaceLarge
)

// ChooseProposalKind samples a ProposalKind according to the fixed mixture
// weights from config (spec §4.5).
func ChooseProposalKind(rng *rand.Rand, weights [3]float64) ProposalKind {
	p := rng.Float64()
	if p < weights[0] {
		return ReplaceVar
	}
	if p < weights[0]+weights[1] {
		return ReplaceSmall
	}
	return ReplaceLarge
}

// reservoirPick chooses one node from nodes uniformly at random without
// materializing a slice copy, mirroring utils.rs's uniform_sample.
func reservoirPick(rng *rand.Rand, nodes []*search.Node) (*search.Node, bool) {
	var chosen *search.Node
	seen := 0
	for _, n := range nodes {
		seen++
		if rng.Intn(seen) == 0 {
			chosen = n
		}
	}
	return chosen, chosen != nil
}

// Proposal is a candidate next state for the Markov chain together with
// the bookkeeping needed to weigh it against the current state.
type Proposal struct {
	Term       term.Term
	Kind       ProposalKind
	OldSize    int
	NewSize    int
	GForward   float64 // g(old -> new): density of proposing this move
	GBackward  float64 // g(new -> old): density of proposing the reverse move
}

// Mutate proposes a single next state derived from cur (annotated via
// search.Annotate against root type rootTy with the empty outer scope).
// It returns ok=false if no eligible subnode exists for the chosen
// ProposalKind (the caller should retry with a different draw).
func Mutate(l lang.Language, ctx *context.Context, vg *term.VarGen, sc *SizeCache, rng *rand.Rand, cur term.Term, rootTy term.Type, weights [3]float64) (Proposal, bool) {
	root := search.Annotate(ctx, cur, rootTy, nil)
	kind := ChooseProposalKind(rng, weights)
	switch kind {
	case ReplaceVar:
		return mutateVar(l, ctx, root, rng)
	case ReplaceSmall:
		return mutateSmall(l, vg, sc, root, rng, l.SmallSize())
	default:
		return mutateLarge(l, ctx, vg, sc, root, rootTy, rng, l.SmallSize(), l.LargeSize())
	}
}

func mutateVar(l lang.Language, ctx *context.Context, root *search.Node, rng *rand.Rand) (Proposal, bool) {
	candidates := root.Collect(func(n *search.Node) bool {
		_, ok := term.Deref(n.Term).(term.TVar)
		return ok
	})
	n, ok := reservoirPick(rng, candidates)
	if !ok {
		return Proposal{}, false
	}
	alts := altHeadsOfType(n.Ann.Decls, ctx, n.Ann.Type)
	if len(alts) <= 1 {
		return Proposal{}, false
	}
	pick := alts[rng.Intn(len(alts))]
	newTerm := n.Replace(term.TVar{Name: pick})
	return Proposal{Term: newTerm, Kind: ReplaceVar, OldSize: n.Ann.Size, NewSize: n.Ann.Size, GForward: 1, GBackward: 1}, true
}

func altHeadsOfType(decls term.VarsVec, ctx *context.Context, ty term.Type) []term.Identifier {
	var out []term.Identifier
	for _, d := range decls {
		if d.Type.Equal(ty) {
			out = append(out, d.Name)
		}
	}
	for _, e := range ctx.Iter() {
		if e.Builtin.Arity == 0 && e.Builtin.Type.Equal(ty) {
			out = append(out, e.Name)
		}
	}
	return out
}

func mutateSmall(l lang.Language, vg *term.VarGen, sc *SizeCache, root *search.Node, rng *rand.Rand, smallSize int) (Proposal, bool) {
	candidates := root.Collect(func(n *search.Node) bool {
		return n.Parent != nil && n.Ann.Size <= smallSize
	})
	n, ok := reservoirPick(rng, candidates)
	if !ok {
		return Proposal{}, false
	}
	sample, ok := sc.Sample(l, vg.Clone(), n.Ann.Type, n.Ann.Size, n.Ann.Decls, rng)
	if !ok {
		return Proposal{}, false
	}
	newTerm := n.Replace(sample.Term)
	return Proposal{Term: newTerm, Kind: ReplaceSmall, OldSize: n.Ann.Size, NewSize: n.Ann.Size, GForward: 1, GBackward: 1}, true
}

// mutateLarge replaces a subnode larger than smallSize with a term whose
// size is drawn from a Binomial distribution over the remaining size
// budget up to largeSize, matching metro.rs's use of
// statrs::distribution::Binomial to keep proposed sizes concentrated
// around the replaced subnode's own size while still exploring both
// directions. Because the proposal's size can differ from the replaced
// subnode's, the move is asymmetric and needs the full §4.5 g-ratio:
// P(pick this subnode) * P(this size | binomial) * P(this particular term
// among same-(type,size,scope) alternatives), computed once forward (from
// the current term) and once backward (from the re-annotated proposal,
// exactly as metro.rs's second random_subnode call on the proposed term).
func mutateLarge(l lang.Language, ctx *context.Context, vg *term.VarGen, sc *SizeCache, root *search.Node, rootTy term.Type, rng *rand.Rand, smallSize, largeSize int) (Proposal, bool) {
	forwardCandidates := root.Collect(func(n *search.Node) bool {
		return n.Parent != nil && n.Ann.Size > smallSize
	})
	n, ok := reservoirPick(rng, forwardCandidates)
	if !ok {
		return Proposal{}, false
	}

	maxSize := largeSize
	if maxSize < 1 {
		maxSize = n.Ann.Size
	}
	dist := distuv.Binomial{N: float64(maxSize), P: binomialP(n.Ann.Size, maxSize), Src: rng}
	newSize := int(dist.Rand()) + 1

	sample, ok := sc.Sample(l, vg.Clone(), n.Ann.Type, newSize, n.Ann.Decls, rng)
	if !ok {
		return Proposal{}, false
	}
	newTerm := n.Replace(sample.Term)

	forwardCount := sc.Count(l, vg.Clone(), n.Ann.Type, newSize, n.Ann.Decls)
	backwardCount := sc.Count(l, vg.Clone(), n.Ann.Type, n.Ann.Size, n.Ann.Decls)

	proposalRoot := search.Annotate(ctx, newTerm, rootTy, nil)
	backwardCandidates := proposalRoot.Collect(func(m *search.Node) bool {
		return m.Parent != nil && m.Ann.Size > smallSize
	})
	backDist := distuv.Binomial{N: float64(maxSize), P: binomialP(newSize, maxSize), Src: rng}

	gForward := g(dist, newSize, len(forwardCandidates), forwardCount)
	gBackward := g(backDist, n.Ann.Size, len(backwardCandidates), backwardCount)

	return Proposal{
		Term: newTerm, Kind: ReplaceLarge,
		OldSize: n.Ann.Size, NewSize: newSize,
		GForward: gForward, GBackward: gBackward,
	}, true
}

// binomialP is the Binomial distribution's success probability centered on
// size over a range of maxSize+1 possible draws, clamped away from 0/1
// where distuv.Binomial would otherwise misbehave.
func binomialP(size, maxSize int) float64 {
	p := float64(size) / float64(maxSize+1)
	if p <= 0 {
		p = 0.01
	}
	if p >= 1 {
		p = 0.99
	}
	return p
}

// g is the detailed-balance proposal density (spec §4.5): the chance of
// picking one of numCandidates eligible subnodes, times the chance the
// Binomial draw lands on size-1 (0-indexed), times the chance of drawing
// this particular term among the sameSizeCount alternatives actually
// available at that size.
func g(dist distuv.Binomial, size int, numCandidates int, sameSizeCount int) float64 {
	if numCandidates == 0 || sameSizeCount == 0 {
		return 0
	}
	return dist.Prob(float64(size-1)) / float64(numCandidates) / float64(sameSizeCount)
}
