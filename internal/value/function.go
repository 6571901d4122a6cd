package value

// Callable is satisfied by whatever the evaluator treats as invocable: a
// user-defined function/mixin closure (internal/env.Callable) or a
// built-in's Go implementation (internal/builtins.Builtin). value stays
// agnostic of either concrete type to avoid an import cycle with env and
// builtins, which both need to produce/consume SassFunction values
// (meta.get-function() returns one; meta.call() invokes one).
type Callable interface {
	CallableName() string
}

// SassFunction is the first-class function value meta.get-function()
// produces and meta.call() invokes.
type SassFunction struct {
	Ref Callable
}

func (f *SassFunction) TypeName() string { return "function" }
func (f *SassFunction) Truthy() bool     { return true }
func (f *SassFunction) Inspect() string  { return "get-function(\"" + f.Ref.CallableName() + "\")" }

// ArgList is the value bound to a rest parameter: a positional sequence
// plus any keyword arguments the caller attached, per spec.md §4.3. It
// satisfies list builtins (length, nth, ...) via AsList.
type ArgList struct {
	Positional []Value
	Keywords   *Map
	Separator  Separator
}

func NewArgList(positional []Value, keywords *Map, sep Separator) *ArgList {
	if keywords == nil {
		keywords = NewMap()
	}
	return &ArgList{Positional: positional, Keywords: keywords, Separator: sep}
}

func (a *ArgList) TypeName() string { return "arglist" }
func (a *ArgList) Truthy() bool     { return true }

func (a *ArgList) Inspect() string {
	return a.AsList().Inspect()
}

func (a *ArgList) AsList() *List {
	return NewList(a.Positional, a.Separator, false)
}
