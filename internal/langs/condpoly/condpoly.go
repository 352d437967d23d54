// Package condpoly implements a language of conditional integer functions:
// the same arithmetic surface as langs/polynomial, plus comparisons and a
// boolean-guarded branch. It mirrors the reference crate's cond_poly
// example language's builtin surface (plus, sub, mult, one, zero, case,
// orelse, eval, eqz, pos, and, def). This example intentionally skips
// that language's full Poly/Case semantic folding (itself one of its
// trickier corners) and canonicalizes everything as Unique instead, to
// keep the focus on demonstrating a Bool-branching type signature rather
// than re-deriving that equivalence relation from scratch.
package condpoly

import (
	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

var (
	N    = term.Ground{Name: "N"}
	Bool = term.Ground{Name: "Bool"}
)

// Language is the cond_poly example language.
type Language struct {
	ctx *context.Context
}

func New() Language {
	return Language{ctx: context.New(
		context.Entry{Name: "zero", Builtin: context.Builtin{Arity: 0, Type: N, Reduce: constInt(0)}},
		context.Entry{Name: "one", Builtin: context.Builtin{Arity: 0, Type: N, Reduce: constInt(1)}},
		context.Entry{Name: "plus", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binInt(func(a, b int32) int32 { return a + b })}},
		context.Entry{Name: "sub", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binInt(func(a, b int32) int32 { return a - b })}},
		context.Entry{Name: "mult", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binInt(func(a, b int32) int32 { return a * b })}},
		context.Entry{Name: "eqz", Builtin: context.Builtin{Arity: 1, Type: term.FunN(Bool, N), Reduce: unaryPred(func(a int32) bool { return a == 0 })}},
		context.Entry{Name: "pos", Builtin: context.Builtin{Arity: 1, Type: term.FunN(Bool, N), Reduce: unaryPred(func(a int32) bool { return a > 0 })}},
		context.Entry{Name: "and", Builtin: context.Builtin{Arity: 2, Type: term.FunN(Bool, Bool, Bool), Reduce: binBool(func(a, b bool) bool { return a && b })}},
		context.Entry{Name: "orelse", Builtin: context.Builtin{Arity: 2, Type: term.FunN(Bool, Bool, Bool), Reduce: binBool(func(a, b bool) bool { return a || b })}},
		context.Entry{Name: "case", Builtin: context.Builtin{Arity: 3, Type: term.FunN(N, Bool, N, N), Reduce: caseOp()}},
		context.Entry{Name: "eval", Builtin: context.Builtin{Arity: 1, Type: term.FunN(N, N), Reduce: identityInt()}},
		context.Entry{Name: "def", Builtin: context.Builtin{Arity: 1, Type: term.FunN(N, N), Reduce: identityInt()}},
	)}
}

func constInt(n int32) func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) { return term.TVal{Val: term.IntValue(n)}, true }
}

func identityInt() func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) {
		v, ok := term.LeafVal(args[0]())
		if !ok {
			return nil, false
		}
		return term.TVal{Val: v}, true
	}
}

func binInt(f func(a, b int32) int32) func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) {
		a, ok := term.LeafVal(args[0]())
		if !ok {
			return nil, false
		}
		b, ok := term.LeafVal(args[1]())
		if !ok {
			return nil, false
		}
		return term.TVal{Val: term.IntValue(f(a.Int(), b.Int()))}, true
	}
}

func unaryPred(f func(a int32) bool) func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) {
		a, ok := term.LeafVal(args[0]())
		if !ok {
			return nil, false
		}
		return term.TVal{Val: term.BoolValue(f(a.Int()))}, true
	}
}

func binBool(f func(a, b bool) bool) func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) {
		a, ok := term.LeafVal(args[0]())
		if !ok {
			return nil, false
		}
		b, ok := term.LeafVal(args[1]())
		if !ok {
			return nil, false
		}
		return term.TVal{Val: term.BoolValue(f(a.Bool(), b.Bool()))}, true
	}
}

func caseOp() func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) {
		cond, ok := term.LeafVal(args[0]())
		if !ok {
			return nil, false
		}
		if cond.Bool() {
			return args[1](), true
		}
		return args[2](), true
	}
}

func (l Language) Context() *context.Context { return l.ctx }

func (l Language) SVal(v term.Value, ty term.Type) lang.Analysis  { return lang.UniqueAnalysis() }
func (l Language) SVar(id term.Identifier, ty term.Type) lang.Analysis {
	return lang.UniqueAnalysis()
}
func (l Language) SLam(id term.Identifier, body lang.Analysis, ty term.Type) lang.Analysis {
	return lang.UniqueAnalysis()
}
func (l Language) SApp(fn, arg lang.Analysis, ty term.Type) lang.Analysis {
	if fn.IsMalformed() || arg.IsMalformed() {
		return lang.MalformedAnalysis()
	}
	return lang.UniqueAnalysis()
}

func (l Language) SmallSize() int { return 6 }
func (l Language) LargeSize() int { return 25 }
