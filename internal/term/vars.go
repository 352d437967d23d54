package term

import "sort"

// VarDecl is one (identifier, type) binding introduced by an enclosing
// lambda (spec §3, "VarsVec").
type VarDecl struct {
	Name Identifier
	Type Type
}

// VarsVec is an ordered sequence of declarations currently in scope,
// outer-to-inner. It doubles as a search key (spec §3) and is sorted by
// name before being used as a map key so that scope order doesn't affect
// cache hits.
type VarsVec []VarDecl

// Clone returns an independent copy.
func (v VarsVec) Clone() VarsVec {
	out := make(VarsVec, len(v))
	copy(out, v)
	return out
}

// Extended returns a copy of v with decl appended.
func (v VarsVec) Extended(decl VarDecl) VarsVec {
	out := make(VarsVec, len(v)+1)
	copy(out, v)
	out[len(v)] = decl
	return out
}

// SortedKey returns a copy sorted by name, suitable for use as a map key
// (spec §4.5, SizeCache.sample: "decls.sort()").
func (v VarsVec) SortedKey() string {
	sorted := v.Clone()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	key := ""
	for _, d := range sorted {
		key += string(d.Name) + ":" + d.Type.String() + "|"
	}
	return key
}

// Lookup returns the declared type of name, if it is in scope.
func (v VarsVec) Lookup(name Identifier) (Type, bool) {
	for _, d := range v {
		if d.Name == name {
			return d.Type, true
		}
	}
	return nil, false
}
