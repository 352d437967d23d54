// Package kerr collects the programming-error types the core can raise.
// None of these are meant to be recovered from: per spec §7, an undeclared
// variable or an impossible pattern combination is a bug in the caller or
// in a Language implementation, not a condition to retry around.
package kerr

import "fmt"

// UndeclaredVariableError is raised by the annotation pass (spec §4.6) when
// a term references a variable that is neither bound by an enclosing
// lambda nor present in the context.
type UndeclaredVariableError struct {
	Name string
}

func (e *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("undeclared variable: %s", e.Name)
}

func NewUndeclaredVariableError(name string) *UndeclaredVariableError {
	return &UndeclaredVariableError{Name: name}
}

// IllTypedError describes a term whose structure disagrees with its
// declared type (e.g. applying a non-function type). Nothing in the core
// raises it: search.Annotate gives such nodes the placeholder ground type
// "?" or leaves their children unannotated, and lang.Analyze reports them
// as Malformed.
type IllTypedError struct {
	Context string
}

func (e *IllTypedError) Error() string {
	return fmt.Sprintf("ill-typed term: %s", e.Context)
}

func NewIllTypedError(context string) *IllTypedError {
	return &IllTypedError{Context: context}
}

// ValueKindError is raised by Value's typed accessors when the requested
// kind does not match the value actually stored.
type ValueKindError struct {
	Want, Got string
}

func (e *ValueKindError) Error() string {
	return fmt.Sprintf("value holds %s, not %s", e.Got, e.Want)
}

func NewValueKindError(want, got string) *ValueKindError {
	return &ValueKindError{Want: want, Got: got}
}
