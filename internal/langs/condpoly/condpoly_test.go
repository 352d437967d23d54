package condpoly_test

import (
	"testing"

	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/langs/condpoly"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

func TestCondPolyCaseSelectsBranch(t *testing.T) {
	ctx := condpoly.New().Context()
	expr := term.TApp{
		Fun: term.TApp{
			Fun: term.TApp{Fun: term.TVar{Name: "case"}, Arg: term.TApp{Fun: term.TVar{Name: "pos"}, Arg: term.TVal{Val: term.IntValue(5)}}},
			Arg: term.TVal{Val: term.IntValue(10)},
		},
		Arg: term.TVal{Val: term.IntValue(20)},
	}
	got := context.Evaluate(ctx, expr)
	v, ok := got.(term.TVal)
	if !ok || v.Val.Int() != 10 {
		t.Errorf("Evaluate(case (pos 5) 10 20) = %v, want TVal{10}", got)
	}
}

func TestCondPolyOrelse(t *testing.T) {
	ctx := condpoly.New().Context()
	expr := term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "orelse"}, Arg: term.TVal{Val: term.BoolValue(false)}},
		Arg: term.TVal{Val: term.BoolValue(true)},
	}
	got := context.Evaluate(ctx, expr)
	v, ok := got.(term.TVal)
	if !ok || !v.Val.Bool() {
		t.Errorf("Evaluate(orelse false true) = %v, want TVal{true}", got)
	}
}

func TestCondPolyEvalAndDefAreIdentity(t *testing.T) {
	ctx := condpoly.New().Context()
	for _, name := range []string{"eval", "def"} {
		expr := term.TApp{Fun: term.TVar{Name: term.Identifier(name)}, Arg: term.TVal{Val: term.IntValue(42)}}
		got := context.Evaluate(ctx, expr)
		v, ok := got.(term.TVal)
		if !ok || v.Val.Int() != 42 {
			t.Errorf("Evaluate(%s 42) = %v, want TVal{42}", name, got)
		}
	}
}

// TestCondPolyMalformedPropagates covers SApp's one non-Unique branch:
// a Malformed argument must make the whole application Malformed, even
// though this language otherwise canonicalizes everything as Unique.
func TestCondPolyMalformedPropagates(t *testing.T) {
	l := condpoly.New()
	fn := l.SVar("case", term.FunN(condpoly.N, condpoly.Bool, condpoly.N, condpoly.N))
	got := l.SApp(fn, lang.MalformedAnalysis(), condpoly.N)
	if !got.IsMalformed() {
		t.Errorf("SApp with a malformed argument = %v, want Malformed", got)
	}
}
