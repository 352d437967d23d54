// Package lang defines the sole extension point of the core: the Language
// interface a caller supplies to enumerate or synthesize over (spec §4.1).
package lang

import (
	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// AnalysisKind tags an Analysis value (spec §3).
type AnalysisKind int

const (
	// Canonical: the term is the canonical representative of its
	// semantic equivalence class; Sem is the language's summary of it.
	Canonical AnalysisKind = iota
	// Unique: no semantic summary was computed, but the term is accepted
	// as-is (every syntactically distinct term is its own class).
	Unique
	// Malformed: the term has no meaning in this language.
	Malformed
)

// Analysis is the result of folding a Language's canonicalization hooks
// over a term (spec §3). Sem is only meaningful when Kind == Canonical; it
// is compared with Equal to detect duplicate equivalence classes.
type Analysis struct {
	Kind AnalysisKind
	Sem  Semantics
}

// Semantics is a language-specific summary value. Implementations must
// support equality comparison so the enumerator can deduplicate by
// semantic value (spec §4.1).
type Semantics interface {
	Equal(Semantics) bool
}

func (a Analysis) IsMalformed() bool { return a.Kind == Malformed }

func CanonicalAnalysis(sem Semantics) Analysis { return Analysis{Kind: Canonical, Sem: sem} }
func UniqueAnalysis() Analysis                 { return Analysis{Kind: Unique} }
func MalformedAnalysis() Analysis              { return Analysis{Kind: Malformed} }

// SameClass reports whether two analyses witness the same semantic
// equivalence class — the enumerator's dedup test (spec §4.1, §4.3).
func SameClass(a, b Analysis) bool {
	if a.Kind != Canonical || b.Kind != Canonical {
		return false
	}
	return a.Sem.Equal(b.Sem)
}

// Language is the interface a caller supplies to drive enumeration and
// synthesis (spec §4.1). Implementations are expected to be cheap to
// clone (in Go: to share freely as a value or a small pointer).
type Language interface {
	// Context returns this language's primitive builtins.
	Context() *context.Context

	// SVal, SVar, SLam, SApp canonicalize a term bottom-up.
	SVal(v term.Value, ty term.Type) Analysis
	SVar(id term.Identifier, ty term.Type) Analysis
	SLam(id term.Identifier, body Analysis, ty term.Type) Analysis
	SApp(fn, arg Analysis, ty term.Type) Analysis

	// SmallSize and LargeSize steer the MH proposal distribution (spec §4.5).
	SmallSize() int
	LargeSize() int
}

// Analyze folds a Language's canonicalization hooks bottom-up over t,
// given its type and the scope it was built under. This mirrors the
// "semantic deduplication" step described in spec §4.3: composing Analysis
// values from the leaves up, short-circuiting to Malformed as soon as any
// subterm is Malformed.
func Analyze(l Language, t term.Term, ty term.Type, decls term.VarsVec) Analysis {
	switch n := term.Deref(t).(type) {
	case term.TVal:
		return l.SVal(n.Val, ty)
	case term.TVar:
		return l.SVar(n.Name, ty)
	case term.TLam:
		f, ok := ty.(term.Fun)
		if !ok {
			return MalformedAnalysis()
		}
		body := Analyze(l, n.Body, f.Ret, decls.Extended(term.VarDecl{Name: n.Var, Type: f.Arg}))
		if body.IsMalformed() {
			return MalformedAnalysis()
		}
		return l.SLam(n.Var, body, ty)
	case term.TApp:
		fnTy, argTy, ok := funArgTypes(l, n.Fun, decls)
		if !ok {
			return MalformedAnalysis()
		}
		_ = argTy
		fnAnalysis := Analyze(l, n.Fun, fnTy, decls)
		if fnAnalysis.IsMalformed() {
			return MalformedAnalysis()
		}
		f, ok := fnTy.(term.Fun)
		if !ok {
			return MalformedAnalysis()
		}
		argAnalysis := Analyze(l, n.Arg, f.Arg, decls)
		if argAnalysis.IsMalformed() {
			return MalformedAnalysis()
		}
		return l.SApp(fnAnalysis, argAnalysis, ty)
	default:
		return MalformedAnalysis()
	}
}

// funArgTypes infers the type of n.Fun when analyzing an application,
// looking it up via the ambient scope/context rather than demanding it be
// passed down (applications' function position isn't otherwise annotated).
func funArgTypes(l Language, fn term.Term, decls term.VarsVec) (fnTy term.Type, argTy term.Type, ok bool) {
	ty, ok := InferHeadType(l, fn, decls)
	if !ok {
		return nil, nil, false
	}
	f, ok := ty.(term.Fun)
	if !ok {
		return nil, nil, false
	}
	return ty, f.Arg, true
}

// InferHeadType determines the type of a term built purely from variables,
// context builtins, and applications thereof — exactly the shapes the
// enumerator ever places in function position (spec §4.3's ArgTo/HeadVars
// construction always starts from a variable or builtin head).
func InferHeadType(l Language, t term.Term, decls term.VarsVec) (term.Type, bool) {
	switch n := term.Deref(t).(type) {
	case term.TVar:
		if ty, ok := decls.Lookup(n.Name); ok {
			return ty, true
		}
		if b, ok := l.Context().Get(n.Name); ok {
			return b.Type, true
		}
		return nil, false
	case term.TApp:
		fnTy, ok := InferHeadType(l, n.Fun, decls)
		if !ok {
			return nil, false
		}
		f, ok := fnTy.(term.Fun)
		if !ok {
			return nil, false
		}
		return f.Ret, true
	case term.TLam:
		return nil, false
	default:
		return nil, false
	}
}
