package context

import "github.com/kolmogorov-synth/kolmogorov/internal/term"

// Entry is one (name, Builtin) pair in construction order.
type Entry struct {
	Name    term.Identifier
	Builtin Builtin
}

// Context is an ordered, immutable mapping from identifier to Builtin
// (spec §3). It is safe to share across an entire search session and is
// never mutated after construction.
type Context struct {
	order []term.Identifier
	table map[term.Identifier]Builtin
}

// New builds a Context from entries, preserving their order for
// deterministic enumeration (spec §4.3, "enumeration order is fixed").
func New(entries ...Entry) *Context {
	c := &Context{
		order: make([]term.Identifier, 0, len(entries)),
		table: make(map[term.Identifier]Builtin, len(entries)),
	}
	for _, e := range entries {
		if _, exists := c.table[e.Name]; !exists {
			c.order = append(c.order, e.Name)
		}
		c.table[e.Name] = e.Builtin
	}
	return c
}

// Get looks up a builtin by name.
func (c *Context) Get(name term.Identifier) (Builtin, bool) {
	b, ok := c.table[name]
	return b, ok
}

// Iter returns the (name, Builtin) pairs in declaration order.
func (c *Context) Iter() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, Entry{Name: name, Builtin: c.table[name]})
	}
	return entries
}

// VarGen returns a fresh VarGen with every context name already retired, so
// the enumerator never shadows a builtin with a bound variable of the same
// name (spec §4.3).
func (c *Context) VarGen() *term.VarGen {
	vg := term.NewVarGen()
	for _, name := range c.order {
		vg.Retire(name)
	}
	return vg
}
