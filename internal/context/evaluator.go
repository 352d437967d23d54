package context

import "github.com/kolmogorov-synth/kolmogorov/internal/term"

// Evaluate reduces t to normal form against ctx's builtins: ordinary
// β-reduction, plus builtin application once enough arguments have
// accumulated on a builtin's spine. This is the only evaluator the core
// provides — no general-purpose semantics beyond β-reduction of enumerated
// terms against the language's builtins (spec §1 Non-goals).
func Evaluate(ctx *Context, t term.Term) term.Term {
	for {
		next, normal := evalStep(ctx, t)
		if normal {
			return next
		}
		t = next
	}
}

func evalStep(ctx *Context, t term.Term) (term.Term, bool) {
	switch n := t.(type) {
	case term.TVal:
		return t, true
	case term.TVar:
		// An arity-0 builtin (a constant such as `one`) reduces on its own.
		if b, ok := ctx.Get(n.Name); ok && b.Arity == 0 {
			if result, ok := b.Reduce(nil); ok {
				return result, false
			}
		}
		return t, true
	case term.TRef:
		return evalStep(ctx, *n.Cell)
	case term.TLam:
		body, normal := evalStep(ctx, n.Body)
		return term.TLam{Var: n.Var, Body: body}, normal
	case term.TApp:
		if lam, ok := term.Deref(n.Fun).(term.TLam); ok {
			return term.Substitute(lam.Body, lam.Var, n.Arg), false
		}

		head, args := spine(t)
		if v, ok := term.Deref(head).(term.TVar); ok {
			if b, ok := ctx.Get(v.Name); ok && len(args) >= b.Arity {
				used, rest := args[:b.Arity], args[b.Arity:]
				thunks := make([]Thunk, len(used))
				for i, a := range used {
					a := a
					thunks[i] = func() term.Term { return Evaluate(ctx, a) }
				}
				if result, ok := b.Reduce(thunks); ok {
					out := result
					for _, r := range rest {
						out = term.TApp{Fun: out, Arg: r}
					}
					return out, false
				}
			}
		}

		fn, fnormal := evalStep(ctx, n.Fun)
		if !fnormal {
			return term.TApp{Fun: fn, Arg: n.Arg}, false
		}
		arg, argnormal := evalStep(ctx, n.Arg)
		if !argnormal {
			return term.TApp{Fun: n.Fun, Arg: arg}, false
		}
		return term.TApp{Fun: n.Fun, Arg: n.Arg}, true
	default:
		return t, true
	}
}

// spine decomposes a left-nested application chain into its head and the
// ordered list of arguments it has been applied to: spine(((f a) b)) is
// (f, [a, b]).
func spine(t term.Term) (term.Term, []term.Term) {
	var args []term.Term
	for {
		app, ok := term.Deref(t).(term.TApp)
		if !ok {
			reverse(args)
			return t, args
		}
		args = append(args, app.Arg)
		t = app.Fun
	}
}

func reverse(args []term.Term) {
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
}
