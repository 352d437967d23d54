package term

import "fmt"

// Type is either a ground type (a named atom) or a function type. Types
// compare structurally (spec §3).
type Type interface {
	String() string
	Equal(Type) bool
	isType()
}

// Ground is a named atomic type such as N, Bool, or a language-defined
// name like Poly.
type Ground struct {
	Name string
}

func (g Ground) isType() {}
func (g Ground) String() string { return g.Name }
func (g Ground) Equal(o Type) bool {
	og, ok := o.(Ground)
	return ok && og.Name == g.Name
}

// Fun is a function type Arg -> Ret.
type Fun struct {
	Arg, Ret Type
}

func (f Fun) isType() {}
func (f Fun) String() string {
	return fmt.Sprintf("(%s -> %s)", f.Arg.String(), f.Ret.String())
}
func (f Fun) Equal(o Type) bool {
	of, ok := o.(Fun)
	return ok && f.Arg.Equal(of.Arg) && f.Ret.Equal(of.Ret)
}

// FunN builds a right-associative chain arg1 -> arg2 -> ... -> ret, matching
// the §6 type-literal notation `A => B => C`.
func FunN(ret Type, args ...Type) Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = Fun{Arg: args[i], Ret: t}
	}
	return t
}

// Uncurry splits a (possibly nested) function type into its argument chain
// and final return type. Used by the enumerator's HeadVars phase to see how
// many arguments a head of type l_ty can still absorb before reaching targ.
func Uncurry(t Type) (args []Type, ret Type) {
	for {
		f, ok := t.(Fun)
		if !ok {
			return args, t
		}
		args = append(args, f.Arg)
		t = f.Ret
	}
}

// Produces reports whether a chain of applications of something of type ty
// can eventually produce target, i.e. whether target appears as the final
// return type of ty's arrow chain (spec §4.3, HeadVars candidate filter).
func Produces(ty, target Type) bool {
	if ty.Equal(target) {
		return true
	}
	if f, ok := ty.(Fun); ok {
		return Produces(f.Ret, target)
	}
	return false
}
