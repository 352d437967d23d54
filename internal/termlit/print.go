package termlit

import (
	"fmt"

	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// Print renders t in the canonical parenthesized §6 notation: every
// application, and every run of directly nested abstractions, gets its own
// parens, matching the form the
// spec §8 round-trip property checks against ("prints the canonical form
// `(f x -> x)` modulo α-renaming").
func Print(t term.Term) string {
	return normalizeSpace(printTerm(t))
}

func printTerm(t term.Term) string {
	switch n := term.Deref(t).(type) {
	case term.TVal:
		return n.Val.String()
	case term.TVar:
		return string(n.Name)
	case term.TLam:
		binders, body := string(n.Var), term.Deref(n.Body)
		for {
			inner, ok := body.(term.TLam)
			if !ok {
				break
			}
			binders += " " + string(inner.Var)
			body = term.Deref(inner.Body)
		}
		return fmt.Sprintf("(%s -> %s)", binders, printTerm(body))
	case term.TApp:
		return fmt.Sprintf("(%s %s)", printTerm(n.Fun), printTerm(n.Arg))
	default:
		return "?"
	}
}

// PrintType renders ty in the §6 right-associative arrow notation.
func PrintType(ty term.Type) string {
	switch t := ty.(type) {
	case term.Ground:
		return t.Name
	case term.Fun:
		return fmt.Sprintf("%s => %s", PrintType(t.Arg), PrintType(t.Ret))
	default:
		return "?"
	}
}

// alphaKey renders t with every bound variable replaced by its de Bruijn
// depth, so that two terms differing only by binder names compare equal —
// the α-equivalence check spec §8's round-trip property needs.
func alphaKey(t term.Term, depth map[term.Identifier]int, next int) string {
	switch n := term.Deref(t).(type) {
	case term.TVal:
		return n.Val.String()
	case term.TVar:
		if d, ok := depth[n.Name]; ok {
			return fmt.Sprintf("#%d", d)
		}
		return string(n.Name)
	case term.TLam:
		inner := make(map[term.Identifier]int, len(depth)+1)
		for k, v := range depth {
			inner[k] = v
		}
		inner[n.Var] = next
		return fmt.Sprintf("(#%d -> %s)", next, alphaKey(n.Body, inner, next+1))
	case term.TApp:
		return fmt.Sprintf("(%s %s)", alphaKey(n.Fun, depth, next), alphaKey(n.Arg, depth, next))
	default:
		return "?"
	}
}

// AlphaEqual reports whether a and b are identical up to renaming of
// bound variables.
func AlphaEqual(a, b term.Term) bool {
	return alphaKey(a, nil, 0) == alphaKey(b, nil, 0)
}

// joinArgs is a small helper kept for callers building multi-argument
// applications from a head and an argument list (mirrors the crate's
// `apps!` helper).
func joinArgs(head term.Term, args []term.Term) term.Term {
	t := head
	for _, a := range args {
		t = term.TApp{Fun: t, Arg: a}
	}
	return t
}
