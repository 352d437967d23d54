// Package context implements the registry of primitive operators a
// Language exposes (spec §3, §4.1 "context()") together with an evaluator
// that drives β-reduction against them.
package context

import "github.com/kolmogorov-synth/kolmogorov/internal/term"

// Thunk is a lazily forced argument handed to a Builtin's reduction
// function. Builtins that need the argument's value call the thunk; ones
// that don't (e.g. a constant combinator) may ignore it entirely.
type Thunk func() term.Term

// Builtin is a primitive operator: its arity, its typed reduction function,
// and its type. The reduction function returns (term, false) when it
// cannot reduce given these arguments — not an error, just "not reducible"
// (spec §7).
type Builtin struct {
	Arity  int
	Reduce func(args []Thunk) (term.Term, bool)
	Type   term.Type
}
