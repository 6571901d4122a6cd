package builtins

import (
	"github.com/toakleaf/sass.go/internal/env"
	"github.com/toakleaf/sass.go/internal/value"
)

// metaFuncs implements the `sass:meta` module (§4.3). The introspection
// functions that depend on the caller's lexical scope (get-function,
// variable-exists, function-exists, mixin-exists, content-exists) are
// registered with defScoped rather than def, since the evaluator — unlike
// every other builtin here — must thread the active env.Scope through to
// answer them; feature-exists stays a pure lookup against a fixed table
// the way the teacher's less/functions.go keeps a static feature list.
// call() goes one step further via defDispatch: it needs not just the
// scope but the evaluator itself, to invoke whatever function value it
// was handed — a stylesheet-defined `@function` as well as a builtin.
func metaFuncs(r *Registry) *Namespace {
	ns := newNamespace("sass:meta")

	ns.def("type-of", []Param{{Name: "value"}}, func(a []value.Value) (value.Value, error) {
		return value.NewString(a[0].TypeName(), false), nil
	})

	ns.def("inspect", []Param{{Name: "value"}}, func(a []value.Value) (value.Value, error) {
		return value.NewString(a[0].Inspect(), false), nil
	})

	ns.def("unit", []Param{{Name: "number"}}, func(a []value.Value) (value.Value, error) {
		n, err := wantNumber("unit", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewString(n.Unit.String(), true), nil
	})

	ns.def("unitless", []Param{{Name: "number"}}, func(a []value.Value) (value.Value, error) {
		n, err := wantNumber("unitless", a[0])
		if err != nil {
			return nil, err
		}
		return boolNum(n.Unit.IsNone()), nil
	})

	ns.def("comparable", []Param{{Name: "number1"}, {Name: "number2"}}, func(a []value.Value) (value.Value, error) {
		x, err := wantNumber("comparable", a[0])
		if err != nil {
			return nil, err
		}
		y, err := wantNumber("comparable", a[1])
		if err != nil {
			return nil, err
		}
		return boolNum(x.Unit.IsCompatible(y.Unit)), nil
	})

	ns.def("feature-exists", []Param{{Name: "feature"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("feature-exists", a[0])
		if err != nil {
			return nil, err
		}
		_, ok := knownFeatures[s.Text]
		return boolNum(ok), nil
	})

	ns.def("keywords", []Param{{Name: "args"}}, func(a []value.Value) (value.Value, error) {
		switch al := a[0].(type) {
		case *value.ArgList:
			return al.Keywords.Clone(), nil
		default:
			return value.NewMap(), nil
		}
	})

	ns.defScoped("get-function", []Param{
		{Name: "name"}, {Name: "css", Default: value.Boolean(false)}, {Name: "module", Default: value.NullValue},
	}, func(a []value.Value, s *env.Scope) (value.Value, error) {
		nameStr, err := wantString("get-function", a[0])
		if err != nil {
			return nil, err
		}
		if mod, ok := a[2].(*value.SassString); ok {
			if b, found := r.Lookup(mod.Text, nameStr.Text); found {
				return &value.SassFunction{Ref: b}, nil
			}
			return nil, argError("get-function", "function not found: "+nameStr.Text)
		}
		// Stylesheet-defined `@function`s live in the caller's scope, not
		// the builtin registry; check there before falling back to the
		// global builtin table, so get-function works for either.
		if fn, ok := s.GetFunc(nameStr.Text); ok {
			return &value.SassFunction{Ref: fn}, nil
		}
		if b, found := r.Global(nameStr.Text); found {
			return &value.SassFunction{Ref: b}, nil
		}
		return nil, argError("get-function", "function not found: "+nameStr.Text)
	})

	ns.defScoped("variable-exists", []Param{{Name: "name"}}, func(a []value.Value, s *env.Scope) (value.Value, error) {
		name, err := wantString("variable-exists", a[0])
		if err != nil {
			return nil, err
		}
		_, ok := s.GetVar(name.Text)
		return boolNum(ok), nil
	})

	ns.defScoped("global-variable-exists", []Param{{Name: "name"}}, func(a []value.Value, s *env.Scope) (value.Value, error) {
		name, err := wantString("global-variable-exists", a[0])
		if err != nil {
			return nil, err
		}
		_, ok := s.GetGlobal(name.Text)
		return boolNum(ok), nil
	})

	ns.defScoped("function-exists", []Param{{Name: "name"}}, func(a []value.Value, s *env.Scope) (value.Value, error) {
		name, err := wantString("function-exists", a[0])
		if err != nil {
			return nil, err
		}
		if _, ok := s.GetFunc(name.Text); ok {
			return boolNum(true), nil
		}
		_, ok := r.Global(name.Text)
		return boolNum(ok), nil
	})

	ns.defScoped("mixin-exists", []Param{{Name: "name"}}, func(a []value.Value, s *env.Scope) (value.Value, error) {
		name, err := wantString("mixin-exists", a[0])
		if err != nil {
			return nil, err
		}
		_, ok := s.GetMixin(name.Text)
		return boolNum(ok), nil
	})

	ns.defScoped("content-exists", nil, func(a []value.Value, s *env.Scope) (value.Value, error) {
		_, ok := s.GetMixin("@content")
		return boolNum(ok), nil
	})

	ns.defDispatch("call", []Param{{Name: "function"}, {Name: "args", Rest: true}}, func(a []value.Value, s *env.Scope, d Dispatcher) (value.Value, error) {
		fn, ok := a[0].(*value.SassFunction)
		if !ok {
			return nil, argError("call", a[0].Inspect()+" is not a function")
		}
		al, ok := a[1].(*value.ArgList)
		if !ok {
			return nil, argError("call", "args is not an arglist")
		}
		return d.Call(fn.Ref, al.Positional, al.Keywords)
	})

	return ns
}

// knownFeatures lists the at-rule/module features feature-exists()
// recognizes, matching the set Dart Sass reports as always-true.
var knownFeatures = map[string]bool{
	"global-variable-shadowing": true,
	"extend-selector-pseudoclass": true,
	"units-level-3": true,
	"at-error": true,
	"custom-property": true,
}
