package term

// LeafVal extracts the Value carried by t if t is (after dereferencing any
// Ref) a bare Value leaf. Used by synthesis scorers to read off the result
// of evaluating a candidate program against an example.
func LeafVal(t Term) (Value, bool) {
	v, ok := Deref(t).(TVal)
	if !ok {
		return Value{}, false
	}
	return v.Val, true
}
