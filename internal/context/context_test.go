package context_test

import (
	"testing"

	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

var n = term.Ground{Name: "N"}

func plusCtx() *context.Context {
	return context.New(
		context.Entry{Name: "zero", Builtin: context.Builtin{Arity: 0, Type: n, Reduce: func(args []context.Thunk) (term.Term, bool) {
			return term.TVal{Val: term.IntValue(0)}, true
		}}},
		context.Entry{Name: "plus", Builtin: context.Builtin{Arity: 2, Type: term.FunN(n, n, n), Reduce: func(args []context.Thunk) (term.Term, bool) {
			a, _ := term.LeafVal(args[0]())
			b, _ := term.LeafVal(args[1]())
			return term.TVal{Val: term.IntValue(a.Int() + b.Int())}, true
		}}},
	)
}

func TestContextIterPreservesDeclarationOrder(t *testing.T) {
	ctx := plusCtx()
	entries := ctx.Iter()
	if len(entries) != 2 || entries[0].Name != "zero" || entries[1].Name != "plus" {
		t.Fatalf("Iter() = %v, want [zero plus] in declaration order", entries)
	}
}

func TestContextGetMissingName(t *testing.T) {
	ctx := plusCtx()
	if _, ok := ctx.Get("nope"); ok {
		t.Errorf("Get on an undeclared name should report ok=false")
	}
}

func TestVarGenRetiresContextNames(t *testing.T) {
	ctx := plusCtx()
	vg := ctx.VarGen()
	fresh := vg.Fresh()
	if fresh == "zero" || fresh == "plus" {
		t.Errorf("VarGen() from a Context must never mint a name already bound in that context, got %q", fresh)
	}
}

// TestEvaluateReducesBuiltinApplication covers applying "plus" fully
// applied to two values down to a single TVal leaf.
func TestEvaluateReducesBuiltinApplication(t *testing.T) {
	ctx := plusCtx()
	expr := term.TApp{
		Fun: term.TApp{Fun: term.TVar{Name: "plus"}, Arg: term.TVal{Val: term.IntValue(2)}},
		Arg: term.TVal{Val: term.IntValue(3)},
	}
	got := context.Evaluate(ctx, expr)
	v, ok := got.(term.TVal)
	if !ok || v.Val.Int() != 5 {
		t.Errorf("Evaluate(plus 2 3) = %v, want TVal{5}", got)
	}
}

// TestEvaluateReducesLambdaRedex covers plain β-reduction with no
// builtins involved.
func TestEvaluateReducesLambdaRedex(t *testing.T) {
	ctx := plusCtx()
	expr := term.TApp{
		Fun: term.TLam{Var: "x", Body: term.TVar{Name: "x"}},
		Arg: term.TVal{Val: term.IntValue(7)},
	}
	got := context.Evaluate(ctx, expr)
	v, ok := got.(term.TVal)
	if !ok || v.Val.Int() != 7 {
		t.Errorf("Evaluate((\\x.x) 7) = %v, want TVal{7}", got)
	}
}

// TestEvaluatePartiallyAppliedBuiltinStaysStuck covers a builtin applied
// to fewer arguments than its arity: Evaluate must leave it as an
// application rather than reducing it early.
func TestEvaluatePartiallyAppliedBuiltinStaysStuck(t *testing.T) {
	ctx := plusCtx()
	expr := term.TApp{Fun: term.TVar{Name: "plus"}, Arg: term.TVal{Val: term.IntValue(2)}}
	got := context.Evaluate(ctx, expr)
	app, ok := got.(term.TApp)
	if !ok {
		t.Fatalf("Evaluate(plus 2) = %v (%T), want a stuck TApp", got, got)
	}
	if v, ok := term.Deref(app.Fun).(term.TVar); !ok || v.Name != "plus" {
		t.Errorf("stuck application head = %v, want plus", app.Fun)
	}
}
