// Package polynomial implements a small language of integer functions
// N -> N built from +, -, *, and a distinguished input variable, whose
// canonicalization folds a term into its coefficient vector so that
// e.g. "x*x + x*x" and "2*(x*x)" collapse to the same equivalence class
// during enumeration. This is grounded on the reference crate's cond_poly
// example language's Poly semantics, simplified to drop the conditional
// (case/orelse) half of that language, which langs/condpoly covers.
package polynomial

import (
	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/lang"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

var N = term.Ground{Name: "N"}

// maxDegree bounds the coefficient vectors this language tracks
// symbolically; a multiplication that would exceed it canonicalizes as
// Unique instead of Canonical, which is always sound — it just forgoes
// deduplication for that one term.
const maxDegree = 6

// poly is a polynomial's coefficients, lowest degree first.
type poly struct {
	Coeffs [maxDegree + 1]int64
}

func (p poly) Equal(o lang.Semantics) bool {
	op, ok := o.(poly)
	return ok && p.Coeffs == op.Coeffs
}

// pending is the semantics of a builtin (plus, sub, or mult) partially
// applied to zero or more already-canonicalized arguments. Once it has
// accumulated two arguments, SApp reduces it straight to a poly.
type pending struct {
	op   term.Identifier
	args []poly
}

func (p pending) Equal(o lang.Semantics) bool {
	op, ok := o.(pending)
	if !ok || p.op != op.op || len(p.args) != len(op.args) {
		return false
	}
	for i := range p.args {
		if !p.args[i].Equal(op.args[i]) {
			return false
		}
	}
	return true
}

func constPoly(c int64) poly {
	var p poly
	p.Coeffs[0] = c
	return p
}

func identityPoly() poly {
	var p poly
	p.Coeffs[1] = 1
	return p
}

func addPoly(a, b poly) poly {
	var out poly
	for i := range out.Coeffs {
		out.Coeffs[i] = a.Coeffs[i] + b.Coeffs[i]
	}
	return out
}

func subPoly(a, b poly) poly {
	var out poly
	for i := range out.Coeffs {
		out.Coeffs[i] = a.Coeffs[i] - b.Coeffs[i]
	}
	return out
}

func mulPoly(a, b poly) (poly, bool) {
	var out poly
	for i, ai := range a.Coeffs {
		if ai == 0 {
			continue
		}
		for j, bj := range b.Coeffs {
			if bj == 0 {
				continue
			}
			k := i + j
			if k > maxDegree {
				return poly{}, false
			}
			out.Coeffs[k] += ai * bj
		}
	}
	return out, true
}

func applyOp(op term.Identifier, a, b poly) (poly, bool) {
	switch op {
	case "plus":
		return addPoly(a, b), true
	case "sub":
		return subPoly(a, b), true
	case "mult":
		return mulPoly(a, b)
	default:
		return poly{}, false
	}
}

// Language is the polynomial example language: N -> N functions over
// plus, sub, mult and a single free input variable.
type Language struct {
	ctx *context.Context
}

func New() Language {
	return Language{ctx: context.New(
		context.Entry{Name: "zero", Builtin: context.Builtin{Arity: 0, Type: N, Reduce: constBuiltin(0)}},
		context.Entry{Name: "one", Builtin: context.Builtin{Arity: 0, Type: N, Reduce: constBuiltin(1)}},
		context.Entry{Name: "plus", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binBuiltin(func(a, b int32) int32 { return a + b })}},
		context.Entry{Name: "sub", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binBuiltin(func(a, b int32) int32 { return a - b })}},
		context.Entry{Name: "mult", Builtin: context.Builtin{Arity: 2, Type: term.FunN(N, N, N), Reduce: binBuiltin(func(a, b int32) int32 { return a * b })}},
	)}
}

func constBuiltin(n int32) func([]context.Thunk) (term.Term, bool) {
	return func(args []context.Thunk) (term.Term, bool) { return term.TVal{Val: term.IntValue(n)}, true }
}

func binBuiltin(f func(a, b int32) int32) func([]context.Thunk) (term.Term, bool) {
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

func (l Language) Context() *context.Context { return l.ctx }

func (l Language) SVal(v term.Value, ty term.Type) lang.Analysis {
	if v.Kind() != term.KindInt {
		return lang.UniqueAnalysis()
	}
	return lang.CanonicalAnalysis(constPoly(int64(v.Int())))
}

func (l Language) SVar(id term.Identifier, ty term.Type) lang.Analysis {
	switch id {
	case "zero":
		return lang.CanonicalAnalysis(constPoly(0))
	case "one":
		return lang.CanonicalAnalysis(constPoly(1))
	case "plus", "sub", "mult":
		return lang.CanonicalAnalysis(pending{op: id})
	default:
		// Any other bound variable is treated as the input variable: every
		// term has at most one variable in scope in this language's
		// intended use (functions of a single N argument).
		return lang.CanonicalAnalysis(identityPoly())
	}
}

func (l Language) SLam(id term.Identifier, body lang.Analysis, ty term.Type) lang.Analysis {
	return body
}

func (l Language) SApp(fn, arg lang.Analysis, ty term.Type) lang.Analysis {
	if fn.IsMalformed() || arg.IsMalformed() {
		return lang.MalformedAnalysis()
	}
	if fn.Kind != lang.Canonical || arg.Kind != lang.Canonical {
		return lang.UniqueAnalysis()
	}
	argPoly, argOk := arg.Sem.(poly)
	if !argOk {
		return lang.UniqueAnalysis()
	}
	switch fnSem := fn.Sem.(type) {
	case pending:
		args := append(append([]poly{}, fnSem.args...), argPoly)
		if len(args) < 2 {
			return lang.CanonicalAnalysis(pending{op: fnSem.op, args: args})
		}
		p, ok := applyOp(fnSem.op, args[0], args[1])
		if !ok {
			return lang.UniqueAnalysis()
		}
		return lang.CanonicalAnalysis(p)
	default:
		return lang.UniqueAnalysis()
	}
}

func (l Language) SmallSize() int { return 6 }
func (l Language) LargeSize() int { return 25 }
