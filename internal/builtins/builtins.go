// Package builtins implements the native function namespaces spec.md
// §4.3 enumerates (math, color, list, map, string, meta, selector).
// Grounded on the teacher's less/functions.go table-of-Go-funcs-by-name
// registration style, generalized from Less's single flat namespace into
// spec.md's namespaced `math.*`/`color.*`/... modules (module-namespaced
// lookup is internal/env's job; this package only supplies the name →
// implementation table per namespace).
package builtins

import (
	"fmt"

	"github.com/toakleaf/sass.go/internal/env"
	"github.com/toakleaf/sass.go/internal/value"
)

// Param is a builtin's formal parameter: a name, an optional default
// (evaluated once at registration time, since builtin defaults are
// always constant), and whether it collects the rest of the arguments.
type Param struct {
	Name    string
	Default value.Value
	Rest    bool
}

// Dispatcher lets a builtin invoke an arbitrary first-class function value
// — a user-defined `@function`/`@mixin` closure as well as another
// builtin — with already-evaluated argument values, the shape
// meta.call()'s dynamic dispatch needs. The evaluator implements this;
// builtins stays agnostic of its concrete type (env.Callable's ultimate
// consumer) to avoid an import cycle.
type Dispatcher interface {
	Call(c value.Callable, positional []value.Value, keywords *value.Map) (value.Value, error)
}

// Builtin is a native function/mixin implementation. The evaluator binds
// call-site arguments against Params using the same algorithm it uses
// for user-defined callables (§4.3's four-step binding), then invokes Fn
// with the bound values in Param order; a trailing rest parameter's
// positional values are spread into the slice from its position on.
type Builtin struct {
	Namespace string
	Name      string
	Params    []Param
	Fn        func(args []value.Value) (value.Value, error)
	// ScopedFn, when set, is used instead of Fn for the handful of
	// meta.* introspection functions (variable-exists, function-exists,
	// mixin-exists, content-exists) whose result depends on the caller's
	// lexical scope rather than their argument values alone.
	ScopedFn func(args []value.Value, s *env.Scope) (value.Value, error)
	// DispatchFn, set only for meta.call, additionally receives a
	// Dispatcher so it can forward to whatever function value it was
	// given — builtin or user-defined alike — instead of only handling
	// the native-function case itself.
	DispatchFn func(args []value.Value, s *env.Scope, d Dispatcher) (value.Value, error)
}

func (b *Builtin) CallableName() string {
	if b.Namespace == "" {
		return b.Name
	}
	return b.Namespace + "." + b.Name
}

// Namespace is a named module of Builtins, e.g. "math" or "color".
type Namespace struct {
	Name  string
	Funcs map[string]*Builtin
}

// Registry collects every built-in namespace this compiler ships. The
// evaluator consults it when a function/mixin call's namespace matches
// one of these reserved module names (`@use "sass:math"` etc, per
// §4.2's "sass:" built-in module URLs).
type Registry struct {
	Namespaces map[string]*Namespace
}

func NewRegistry() *Registry {
	r := &Registry{Namespaces: map[string]*Namespace{}}
	r.add(mathFuncs())
	r.add(colorFuncs())
	r.add(listFuncs())
	r.add(mapFuncs())
	r.add(stringFuncs())
	r.add(metaFuncs(r))
	r.add(selectorFuncs())
	return r
}

func (r *Registry) add(ns *Namespace) { r.Namespaces[ns.Name] = ns }

func (r *Registry) Lookup(namespace, name string) (*Builtin, bool) {
	ns, ok := r.Namespaces["sass:"+namespace]
	if !ok {
		return nil, false
	}
	b, ok := ns.Funcs[name]
	return b, ok
}

// Global finds a builtin by name alone, searching every namespace — used
// for the pre-modules global names (`rgba()`, `map-get()`, ...) every
// real stylesheet can call unqualified regardless of `@use`.
func (r *Registry) Global(name string) (*Builtin, bool) {
	for _, ns := range r.Namespaces {
		if b, ok := ns.Funcs[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// InstallGlobals registers every namespace's functions into scope
// unqualified, matching the pre-`@use` global-function behavior real
// Sass keeps for backwards compatibility.
func InstallGlobals(r *Registry, s *env.Scope) {
	for _, ns := range r.Namespaces {
		for name, b := range ns.Funcs {
			s.SetFunc(name, b)
		}
	}
}

func newNamespace(name string) *Namespace {
	return &Namespace{Name: name, Funcs: map[string]*Builtin{}}
}

func (ns *Namespace) def(name string, params []Param, fn func([]value.Value) (value.Value, error)) {
	ns.Funcs[name] = &Builtin{Namespace: ns.Name, Name: name, Params: params, Fn: fn}
}

func (ns *Namespace) defScoped(name string, params []Param, fn func([]value.Value, *env.Scope) (value.Value, error)) {
	ns.Funcs[name] = &Builtin{Namespace: ns.Name, Name: name, Params: params, ScopedFn: fn}
}

func (ns *Namespace) defDispatch(name string, params []Param, fn func([]value.Value, *env.Scope, Dispatcher) (value.Value, error)) {
	ns.Funcs[name] = &Builtin{Namespace: ns.Name, Name: name, Params: params, DispatchFn: fn}
}

func argError(fn, msg string) error {
	return fmt.Errorf("%s: %s", fn, msg)
}

func wantNumber(fn string, v value.Value) (*value.Number, error) {
	n, ok := v.(*value.Number)
	if !ok {
		return nil, argError(fn, fmt.Sprintf("%s is not a number", v.Inspect()))
	}
	return n, nil
}

func wantString(fn string, v value.Value) (*value.SassString, error) {
	s, ok := v.(*value.SassString)
	if !ok {
		return nil, argError(fn, fmt.Sprintf("%s is not a string", v.Inspect()))
	}
	return s, nil
}

func wantColor(fn string, v value.Value) (*value.Color, error) {
	c, ok := v.(*value.Color)
	if !ok {
		return nil, argError(fn, fmt.Sprintf("%s is not a color", v.Inspect()))
	}
	return c, nil
}

func wantList(fn string, v value.Value) *value.List {
	switch t := v.(type) {
	case *value.List:
		return t
	case *value.ArgList:
		return t.AsList()
	case *value.Map:
		return t.AsList()
	default:
		return value.SingleToList(v)
	}
}

func boolNum(b bool) value.Value { return value.Boolean(b) }

// isNull reports whether an argument was left at its `null` default,
// the convention builtins use for optional trailing parameters.
func isNull(v value.Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(value.Null)
	return ok
}
