// Package opaque implements the simplest possible Language: every term is
// accepted and treated as its own equivalence class (no semantic
// canonicalization at all). It exists mainly as a baseline for tests and
// as a template for new languages, the way the reference crate ships a
// no-op language alongside its real examples.
package opaque

import (
	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

var (
	N    = term.Ground{Name: "N"}
	Bool = term.Ground{Name: "Bool"}
)

// Language is a Context of plain integer/boolean arithmetic builtins with
// no canonicalization: SVal/SVar/SLam/SApp all return Unique.
type Language struct {
	ctx *context.Context
}

// New builds the opaque language's context: plus, sub, mult, eqz, and,
// ite, zero, one.
func New() Language {
	return Language{ctx: context.New(
		context.Entry{Name: "zero", Builtin: context.Builtin{Arity: 0, Type: N, Reduce: constInt(0)}},
		context.Entry{Name: "one", Builtin: context.Builtin{Arity: 0, Type: N, Reduce: constInt(1)}},
		context.Entry{Name: "plus", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binOp(func(a, b int32) int32 { return a + b })}},
		context.Entry{Name: "sub", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binOp(func(a, b int32) int32 { return a - b })}},
		context.Entry{Name: "mult", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binOp(func(a, b int32) int32 { return a * b })}},
		context.Entry{Name: "eqz", Builtin: context.Builtin{Arity: 1, Type: term.FunN(Bool, N), Reduce: eqz()}},
		context.Entry{Name: "and", Builtin: context.Builtin{Arity: 2, Type: term.FunN(Bool, Bool, Bool), Reduce: boolOp(func(a, b bool) bool { return a && b })}},
		context.Entry{Name: "ite", Builtin: context.Builtin{Arity: 3, Type: term.FunN(N, Bool, N, N), Reduce: ite()}},
	)}
}

func constInt(n int32) func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) {
		return term.TVal{Val: term.IntValue(n)}, true
	}
}

func binOp(f func(a, b int32) int32) func([]context.Thunk) (term.Term, bool) {
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

func boolOp(f func(a, b bool) bool) func([]context.Thunk) (term.Term, bool) {
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

func eqz() func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) {
		a, ok := term.LeafVal(args[0]())
		if !ok {
			return nil, false
		}
		return term.TVal{Val: term.BoolValue(a.Int() == 0)}, true
	}
}

func ite() func([]context.Thunk) (term.Term, bool) {
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
	return lang.UniqueAnalysis()
}

func (l Language) SmallSize() int { return 5 }
func (l Language) LargeSize() int { return 20 }
