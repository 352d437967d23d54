package lang_test

import (
	"testing"

	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/langs/polynomial"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// TestSameClassRequiresBothCanonical covers spec §4.1's dedup contract:
// two Unique or Malformed analyses never count as the same class, even
// if they happened to wrap equal semantics.
func TestSameClassRequiresBothCanonical(t *testing.T) {
	a := lang.UniqueAnalysis()
	b := lang.UniqueAnalysis()
	if lang.SameClass(a, b) {
		t.Errorf("two Unique analyses must never be reported as the same class")
	}
}

func TestMalformedAnalysisIsMalformed(t *testing.T) {
	if !lang.MalformedAnalysis().IsMalformed() {
		t.Errorf("MalformedAnalysis().IsMalformed() = false, want true")
	}
	if lang.CanonicalAnalysis(nil).IsMalformed() {
		t.Errorf("a Canonical analysis must not report itself malformed")
	}
}

// TestAnalyzeDetectsIllTypedLambda covers Analyze's "no matching function
// type" branch: annotating a lambda against a non-function type must
// report Malformed rather than panicking.
func TestAnalyzeDetectsIllTypedLambda(t *testing.T) {
	l := polynomial.New()
	badTy := polynomial.N // not a Fun type
	lamTerm := term.TLam{Var: "x", Body: term.TVar{Name: "x"}}

	got := lang.Analyze(l, lamTerm, badTy, nil)
	if !got.IsMalformed() {
		t.Errorf("Analyze(lambda, non-function type) = %v, want Malformed", got)
	}
}

// TestAnalyzeDedupesEquivalentPolynomials covers spec §4.1/§4.3's
// canonicalization contract end to end: two syntactically distinct
// polynomial terms that compute the same function must analyze to the
// same semantic class.
func TestAnalyzeDedupesEquivalentPolynomials(t *testing.T) {
	l := polynomial.New()
	ty := polynomial.N
	decls := term.VarsVec{{Name: "n", Type: ty}}

	// n + n  vs  n * (one + one) — both collapse to 2n.
	sum := term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "plus"}, Arg: term.TVar{Name: "n"}},
		Arg: term.TVar{Name: "n"},
	}
	prod := term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "mult"}, Arg: term.TVar{Name: "n"}},
		Arg: term.TApp{
			Fun: term.TApp{Fun: term.TVar{Name: "plus"}, Arg: term.TVar{Name: "one"}},
			Arg: term.TVar{Name: "one"},
		},
	}

	a1 := lang.Analyze(l, sum, ty, decls)
	a2 := lang.Analyze(l, prod, ty, decls)
	if !lang.SameClass(a1, a2) {
		t.Errorf("expected n+n and n*(one+one) to analyze to the same class, got %v and %v", a1, a2)
	}
}

func TestInferHeadTypeResolvesBuiltinAndDecl(t *testing.T) {
	l := polynomial.New()
	decls := term.VarsVec{{Name: "n", Type: polynomial.N}}

	ty, ok := lang.InferHeadType(l, term.TVar{Name: "plus"}, decls)
	if !ok {
		t.Fatalf("InferHeadType(plus) failed")
	}
	if !ty.Equal(term.FunN(polynomial.N, polynomial.N, polynomial.N)) {
		t.Errorf("InferHeadType(plus) = %v, want N -> N -> N", ty)
	}

	ty, ok = lang.InferHeadType(l, term.TVar{Name: "n"}, decls)
	if !ok || !ty.Equal(polynomial.N) {
		t.Errorf("InferHeadType(n) = %v, %v, want N, true", ty, ok)
	}

	if _, ok := lang.InferHeadType(l, term.TVar{Name: "undeclared"}, decls); ok {
		t.Errorf("InferHeadType on an undeclared, non-builtin name should fail")
	}
}
