package search

import (
	"github.com/kolmogorov-synth/kolmogorov/internal/context"
	"github.com/kolmogorov-synth/kolmogorov/internal/kerr"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// Annotation is the per-subterm metadata the annotation pass computes
// (spec §4.6): its size, its type in context, and the variables bound
// above it.
type Annotation struct {
	Size  int
	Type  term.Type
	Decls term.VarsVec
}

// Node is one subterm of an annotated term. The Rust implementation keys
// an Annotation map by the subterm's raw pointer (Rc<Term> is heap
// allocated); Term here is a plain value, so Node instead gives every
// subterm its own addressable allocation — two structurally identical
// subterms still get distinct *Node pointers, which is all the mutation
// kernel needs to pick "a" subnode rather than "an equivalence class" of
// subnodes (spec §4.6, §4.7).
type Node struct {
	Term     term.Term
	Ann      Annotation
	Children []*Node
	Parent   *Node
}

// Annotate walks t top-down, building the Node tree described above. ty
// is t's type and decls its enclosing scope (both known already, since
// every term the enumerator or the mutation kernel produces carries its
// type alongside it). ctx resolves the types of free builtin heads.
func Annotate(ctx *context.Context, t term.Term, ty term.Type, decls term.VarsVec) *Node {
	return annotate(ctx, nil, t, ty, decls)
}

func annotate(ctx *context.Context, parent *Node, t term.Term, ty term.Type, decls term.VarsVec) *Node {
	n := &Node{
		Term:   t,
		Ann:    Annotation{Size: term.Size(t), Type: ty, Decls: decls},
		Parent: parent,
	}
	switch v := term.Deref(t).(type) {
	case term.TVar:
		if _, ok := decls.Lookup(v.Name); !ok {
			declared := false
			if ctx != nil {
				_, declared = ctx.Get(v.Name)
			}
			if !declared {
				panic(kerr.NewUndeclaredVariableError(string(v.Name)))
			}
		}
	case term.TLam:
		f, ok := ty.(term.Fun)
		if !ok {
			return n
		}
		body := annotate(ctx, n, v.Body, f.Ret, decls.Extended(term.VarDecl{Name: v.Var, Type: f.Arg}))
		n.Children = []*Node{body}
	case term.TApp:
		fn := annotate(ctx, n, v.Fun, headType(ctx, v.Fun, decls), decls)
		argTy := term.Type(term.Ground{Name: "?"})
		if f, ok := fn.Ann.Type.(term.Fun); ok {
			argTy = f.Arg
		}
		arg := annotate(ctx, n, v.Arg, argTy, decls)
		n.Children = []*Node{fn, arg}
	}
	return n
}

// headType recovers the type of a term built from variables, builtins, and
// applications thereof — exactly the shapes that ever occur in function
// position (spec §4.3).
func headType(ctx *context.Context, t term.Term, decls term.VarsVec) term.Type {
	switch v := term.Deref(t).(type) {
	case term.TVar:
		if ty, ok := decls.Lookup(v.Name); ok {
			return ty
		}
		if ctx != nil {
			if b, ok := ctx.Get(v.Name); ok {
				return b.Type
			}
		}
		return term.Ground{Name: "?"}
	case term.TApp:
		fnTy := headType(ctx, v.Fun, decls)
		if f, ok := fnTy.(term.Fun); ok {
			return f.Ret
		}
		return term.Ground{Name: "?"}
	default:
		return term.Ground{Name: "?"}
	}
}

// Walk calls visit on every node of the tree rooted at n, pre-order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Collect returns every node in the tree rooted at n satisfying pred.
func (n *Node) Collect(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(m *Node) {
		if pred(m) {
			out = append(out, m)
		}
	})
	return out
}

// slotOf reports whether child occupies the Fun or Arg position of p's
// TApp (p.Children is always [fn, arg] for a TApp node).
func slotOf(p, child *Node) bool {
	return len(p.Children) == 2 && p.Children[0] == child
}

// Replace substitutes replacement for n within its tree, returning the new
// root term. n must not be the root (callers replace the whole term
// directly in that case). This is the Go analogue of metro.rs's
// replace_subnode: instead of rebuilding via raw-pointer comparison, it
// walks up from n through the Parent links recorded during Annotate.
func (n *Node) Replace(replacement term.Term) term.Term {
	cur := replacement
	for p := n.Parent; p != nil; p = p.Parent {
		switch v := term.Deref(p.Term).(type) {
		case term.TLam:
			cur = term.TLam{Var: v.Var, Body: cur}
		case term.TApp:
			if slotOf(p, n) {
				cur = term.TApp{Fun: cur, Arg: v.Arg}
			} else {
				cur = term.TApp{Fun: v.Fun, Arg: cur}
			}
		}
		n = p
	}
	return cur
}

// Root walks up to the root of n's tree.
func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}
