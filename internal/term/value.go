package term

import (
	"fmt"

	"github.com/kolmogorov-synth/kolmogorov/internal/kerr"
)

// ValueKind tags the ground type a Value carries. Per spec §9 ("Dynamic
// values"), this is implemented as a small sum over the few ground types
// the example languages in this repo actually need, rather than a fully
// generic runtime-checked downcast — the crate's `get::<T>()` accessor is
// reproduced here as typed, panicking accessors.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindBool:
		return "Bool"
	default:
		return "?"
	}
}

// Value is the opaque leaf payload carried by a Value term (spec §3).
type Value struct {
	kind ValueKind
	i    int32
	b    bool
}

func IntValue(i int32) Value  { return Value{kind: KindInt, i: i} }
func BoolValue(b bool) Value  { return Value{kind: KindBool, b: b} }
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the wrapped integer. Panics (a programming error, per spec
// §7) if the value does not hold an integer.
func (v Value) Int() int32 {
	if v.kind != KindInt {
		panic(kerr.NewValueKindError(KindInt.String(), v.kind.String()))
	}
	return v.i
}

// Bool returns the wrapped boolean. Panics if the value does not hold a bool.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic(kerr.NewValueKindError(KindBool.String(), v.kind.String()))
	}
	return v.b
}

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindBool:
		return v.b == o.b
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	default:
		return "<value>"
	}
}
