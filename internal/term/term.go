// Package term implements the typed lambda-calculus term model (spec §3):
// values, variables, lambdas, applications, and the Ref node the enumerator
// uses to share substructure without copying. All structural operations —
// substitution, β-reduction, size, free variables, deep cloning — live here.
package term

import "github.com/kolmogorov-synth/kolmogorov/internal/config"

func varPool() []string { return config.VarPool }

// Term is the tagged variant described in spec §3. A Ref is semantically
// transparent: it only exists to let the enumerator stitch partial
// applications together in O(1) without copying, and is always collapsed
// away by DeepClone before a term is handed to a consumer.
type Term interface {
	isTerm()
}

// TVal is an opaque leaf carrying a dynamically typed payload.
type TVal struct {
	Val Value
}

// TVar is an interned variable occurrence.
type TVar struct {
	Name Identifier
}

// TLam is a single-argument abstraction.
type TLam struct {
	Var  Identifier
	Body Term
}

// TApp is a binary application.
type TApp struct {
	Fun, Arg Term
}

// TRef is a shared reference to a term subtree. It is never itself part of
// a yielded term: DeepClone replaces it with an unshared copy of its target.
type TRef struct {
	Cell *Term
}

func (TVal) isTerm() {}
func (TVar) isTerm() {}
func (TLam) isTerm() {}
func (TApp) isTerm() {}
func (TRef) isTerm() {}

// NewRef boxes a term for sharing; Deref follows it (transparently, through
// chains of refs).
func NewRef(t Term) TRef {
	cell := new(Term)
	*cell = t
	return TRef{Cell: cell}
}

func Deref(t Term) Term {
	for {
		r, ok := t.(TRef)
		if !ok {
			return t
		}
		t = *r.Cell
	}
}

// Size returns the number of leaves (values and variables) and lambda
// binders in t, counting a Ref as its target's size (spec §4.2).
// Application nodes are not counted: Size(f x) is 2, not 3.
func Size(t Term) int {
	switch v := t.(type) {
	case TVal, TVar:
		return 1
	case TLam:
		return 1 + Size(v.Body)
	case TApp:
		return Size(v.Fun) + Size(v.Arg)
	case TRef:
		return Size(*v.Cell)
	default:
		return 0
	}
}

// FreeVars returns the set of free variable identifiers in t.
func FreeVars(t Term) map[Identifier]bool {
	free := make(map[Identifier]bool)
	collectFreeVars(t, free)
	return free
}

func collectFreeVars(t Term, out map[Identifier]bool) {
	switch v := t.(type) {
	case TVar:
		out[v.Name] = true
	case TLam:
		inner := make(map[Identifier]bool)
		collectFreeVars(v.Body, inner)
		delete(inner, v.Var)
		for k := range inner {
			out[k] = true
		}
	case TApp:
		collectFreeVars(v.Fun, out)
		collectFreeVars(v.Arg, out)
	case TRef:
		collectFreeVars(*v.Cell, out)
	}
}

// DeepClone produces an unshared copy of t, collapsing any Ref nodes. This
// is what the enumerator applies when a term is yielded to a consumer, so
// consumers always observe value semantics (spec §5, §9).
func DeepClone(t Term) Term {
	switch v := t.(type) {
	case TVal:
		return TVal{Val: v.Val}
	case TVar:
		return TVar{Name: v.Name}
	case TLam:
		return TLam{Var: v.Var, Body: DeepClone(v.Body)}
	case TApp:
		return TApp{Fun: DeepClone(v.Fun), Arg: DeepClone(v.Arg)}
	case TRef:
		return DeepClone(*v.Cell)
	default:
		return t
	}
}

// Substitute performs capture-avoiding substitution t[v := code]. When
// descending into a lambda binding a name that clashes with a free variable
// of code, the bound name is freshened first (spec §4.2).
func Substitute(t Term, v Identifier, code Term) Term {
	switch n := t.(type) {
	case TVar:
		if n.Name == v {
			return code
		}
		return n
	case TLam:
		if n.Var == v {
			// v is shadowed by this binder: substitution stops here.
			return n
		}
		free := FreeVars(code)
		if free[n.Var] {
			fresh := freshVarAvoiding(free, map[Identifier]bool{v: true})
			renamedBody := Substitute(n.Body, n.Var, TVar{Name: fresh})
			return TLam{Var: fresh, Body: Substitute(renamedBody, v, code)}
		}
		return TLam{Var: n.Var, Body: Substitute(n.Body, v, code)}
	case TApp:
		return TApp{Fun: Substitute(n.Fun, v, code), Arg: Substitute(n.Arg, v, code)}
	case TRef:
		return Substitute(*n.Cell, v, code)
	default:
		return t
	}
}

// freshVarAvoiding returns the first name in config.VarPool that is not a
// member of any of the given exclusion sets.
func freshVarAvoiding(avoid ...map[Identifier]bool) Identifier {
	for _, name := range varPool() {
		id := Identifier(name)
		clash := false
		for _, set := range avoid {
			if set[id] {
				clash = true
				break
			}
		}
		if !clash {
			return id
		}
	}
	panic("variable pool exhausted")
}
