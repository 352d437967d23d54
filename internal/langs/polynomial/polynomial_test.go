package polynomial_test

import (
	"testing"

	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/langs/polynomial"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

func TestPolynomialEvaluatesArithmetic(t *testing.T) {
	ctx := polynomial.New().Context()
	expr := term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "mult"}, Arg: term.TVal{Val: term.IntValue(3)}},
		Arg: term.TVal{Val: term.IntValue(4)},
	}
	got := context.Evaluate(ctx, expr)
	v, ok := got.(term.TVal)
	if !ok || v.Val.Int() != 12 {
		t.Errorf("Evaluate(mult 3 4) = %v, want TVal{12}", got)
	}
}

// TestPolynomialDedupesAdditionCommutativity covers the coefficient-vector
// canonicalization's core guarantee: n+1 and 1+n are the same class.
func TestPolynomialDedupesAdditionCommutativity(t *testing.T) {
	l := polynomial.New()
	ty := polynomial.N
	decls := term.VarsVec{{Name: "n", Type: ty}}

	nPlusOne := term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "plus"}, Arg: term.TVar{Name: "n"}},
		Arg: term.TVar{Name: "one"},
	}
	onePlusN := term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "plus"}, Arg: term.TVar{Name: "one"}},
		Arg: term.TVar{Name: "n"},
	}
	a1 := lang.Analyze(l, nPlusOne, ty, decls)
	a2 := lang.Analyze(l, onePlusN, ty, decls)
	if !lang.SameClass(a1, a2) {
		t.Errorf("expected n+1 and 1+n to analyze to the same class")
	}
}

// TestPolynomialDistinguishesDifferentDegrees covers the negative case:
// a linear and a quadratic polynomial in the same variable must not
// collapse to one class.
func TestPolynomialDistinguishesDifferentDegrees(t *testing.T) {
	l := polynomial.New()
	ty := polynomial.N
	decls := term.VarsVec{{Name: "n", Type: ty}}

	linear := term.TVar{Name: "n"}
	quadratic := term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "mult"}, Arg: term.TVar{Name: "n"}},
		Arg: term.TVar{Name: "n"},
	}
	a1 := lang.Analyze(l, linear, ty, decls)
	a2 := lang.Analyze(l, quadratic, ty, decls)
	if lang.SameClass(a1, a2) {
		t.Errorf("expected n and n*n to analyze to different classes")
	}
}

// TestPolynomialMultiplyOverflowDegradesToUnique covers the maxDegree
// guard: a multiplication whose result would exceed the tracked degree
// must still be sound (canonicalize as Unique, never panic or silently
// wrap).
func TestPolynomialMultiplyOverflowDegradesToUnique(t *testing.T) {
	l := polynomial.New()
	ty := polynomial.N
	decls := term.VarsVec{{Name: "n", Type: ty}}

	// Build n^7 via six nested multiplications, past the degree-6 cap.
	expr := term.Term(term.TVar{Name: "n"})
	for i := 0; i < 6; i++ {
		expr = term.TApp{
			Fun: term.TApp{Fun: term.TVar{Name: "mult"}, Arg: expr},
			Arg: term.TVar{Name: "n"},
		}
	}
	got := lang.Analyze(l, expr, ty, decls)
	if got.Kind != lang.Unique {
		t.Errorf("an over-degree multiplication must degrade to Unique, got kind %v", got.Kind)
	}
}

func TestPolynomialSizeHints(t *testing.T) {
	l := polynomial.New()
	if l.SmallSize() <= 0 || l.LargeSize() <= l.SmallSize() {
		t.Errorf("expected 0 < SmallSize < LargeSize, got %d, %d", l.SmallSize(), l.LargeSize())
	}
}
