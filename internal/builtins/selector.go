package builtins

import (
	"github.com/toakleaf/sass.go/internal/selector"
	"github.com/toakleaf/sass.go/internal/value"
)

// selectorFuncs implements the `sass:selector` module (§4.4). Every
// function here round-trips through selector.Parse/selector.List's own
// String(), so the semantics are exactly whatever the standalone
// selector engine (weave/unify/superselector, already built for
// @extend) already implements — this file is just an argument-
// marshaling adapter from SassScript values to *selector.List.
func selectorFuncs() *Namespace {
	ns := newNamespace("sass:selector")

	ns.def("selector-nest", []Param{{Name: "selectors", Rest: true}}, func(a []value.Value) (value.Value, error) {
		if len(a) == 0 {
			return nil, argError("selector-nest", "at least one selector required")
		}
		lists, err := toSelectorLists("selector-nest", a)
		if err != nil {
			return nil, err
		}
		cur := lists[0]
		for _, next := range lists[1:] {
			cur = selector.ResolveParent(next, cur)
		}
		return selectorListValue(cur), nil
	})

	ns.def("selector-append", []Param{{Name: "selectors", Rest: true}}, func(a []value.Value) (value.Value, error) {
		if len(a) == 0 {
			return nil, argError("selector-append", "at least one selector required")
		}
		lists, err := toSelectorLists("selector-append", a)
		if err != nil {
			return nil, err
		}
		cur := lists[0]
		for _, next := range lists[1:] {
			cur = appendSelector(cur, next)
		}
		return selectorListValue(cur), nil
	})

	ns.def("selector-extend", []Param{{Name: "selector"}, {Name: "extendee"}, {Name: "extender"}}, func(a []value.Value) (value.Value, error) {
		return selectorExtendImpl("selector-extend", a, false)
	})

	ns.def("selector-replace", []Param{{Name: "selector"}, {Name: "original"}, {Name: "replacement"}}, func(a []value.Value) (value.Value, error) {
		return selectorExtendImpl("selector-replace", a, true)
	})

	ns.def("selector-unify", []Param{{Name: "selector1"}, {Name: "selector2"}}, func(a []value.Value) (value.Value, error) {
		l1, err := toSelectorList("selector-unify", a[0])
		if err != nil {
			return nil, err
		}
		l2, err := toSelectorList("selector-unify", a[1])
		if err != nil {
			return nil, err
		}
		var out []*selector.Complex
		for _, c1 := range l1.Complexes {
			for _, c2 := range l2.Complexes {
				out = append(out, c1.Unify(c2)...)
			}
		}
		if len(out) == 0 {
			return value.NullValue, nil
		}
		return selectorListValue(selector.NewList(out)), nil
	})

	ns.def("is-superselector", []Param{{Name: "super"}, {Name: "sub"}}, func(a []value.Value) (value.Value, error) {
		super, err := toSelectorList("is-superselector", a[0])
		if err != nil {
			return nil, err
		}
		sub, err := toSelectorList("is-superselector", a[1])
		if err != nil {
			return nil, err
		}
		return boolNum(super.IsSuperselectorOf(sub)), nil
	})

	ns.def("simple-selectors", []Param{{Name: "selector"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("simple-selectors", a[0])
		if err != nil {
			return nil, err
		}
		cmp, err := selector.Parse(s.Text)
		if err != nil || len(cmp.Complexes) != 1 {
			return nil, argError("simple-selectors", "expected a compound selector")
		}
		comp := cmp.Complexes[0].FirstCompound()
		if comp == nil {
			return nil, argError("simple-selectors", "expected a compound selector")
		}
		items := make([]value.Value, len(comp.Simples))
		for i, sm := range comp.Simples {
			items[i] = value.NewString(sm.String(), false)
		}
		return value.NewList(items, value.SepComma, false), nil
	})

	ns.def("selector-parse", []Param{{Name: "selector"}}, func(a []value.Value) (value.Value, error) {
		l, err := toSelectorList("selector-parse", a[0])
		if err != nil {
			return nil, err
		}
		return selectorListValue(l), nil
	})

	return ns
}

func selectorExtendImpl(name string, a []value.Value, replace bool) (value.Value, error) {
	target, err := toSelectorList(name, a[0])
	if err != nil {
		return nil, err
	}
	extendee, err := toSelectorList(name, a[1])
	if err != nil {
		return nil, err
	}
	extender, err := toSelectorList(name, a[2])
	if err != nil {
		return nil, err
	}
	ext := selector.NewExtender()
	targets := extendeeSimples(extendee)
	for _, c := range extender.Complexes {
		for _, s := range targets {
			ext.Register(&selector.Extension{Extender: c, Target: s, IsOptional: true})
		}
	}
	originals := make(map[string]bool)
	for _, c := range target.Complexes {
		if complexContainsAny(c, targets) {
			originals[c.String()] = true
		}
	}
	result := ext.Apply(target)
	if replace {
		result = dropOriginals(result, originals)
	}
	return selectorListValue(result), nil
}

func complexContainsAny(c *selector.Complex, targets []*selector.Simple) bool {
	comp := c.LastCompound()
	if comp == nil {
		return false
	}
	for _, t := range targets {
		for _, s := range comp.Simples {
			if s.Equal(t) {
				return true
			}
		}
	}
	return false
}

// extendeeSimples collects the simple selectors named by selector-extend/
// selector-replace's "extendee" argument — each compound's simples are
// individual targets, matching how `@extend .a.b` extends both `.a` and
// `.b` independently.
func extendeeSimples(l *selector.List) []*selector.Simple {
	var out []*selector.Simple
	for _, c := range l.Complexes {
		comp := c.LastCompound()
		if comp == nil {
			continue
		}
		out = append(out, comp.Simples...)
	}
	return out
}

// dropOriginals removes the pre-extension complex selectors that matched
// an extendee simple, implementing selector-replace's "replace, don't
// union in the original" semantics on top of Extender.Apply (which
// always unions).
func dropOriginals(l *selector.List, originals map[string]bool) *selector.List {
	var kept []*selector.Complex
	for _, c := range l.Complexes {
		if originals[c.String()] {
			continue
		}
		kept = append(kept, c)
	}
	return selector.NewList(kept)
}

// appendSelector implements selector-append's `&` concatenation onto the
// parent's last compound, without treating whitespace as a descendant
// combinator the way selector-nest does.
func appendSelector(parent, child *selector.List) *selector.List {
	var out []*selector.Complex
	for _, p := range parent.Complexes {
		for _, c := range child.Complexes {
			out = append(out, concatComplex(p, c))
		}
	}
	return selector.NewList(out)
}

func concatComplex(p, c *selector.Complex) *selector.Complex {
	if p.IsEmpty() {
		return c
	}
	if c.IsEmpty() {
		return p
	}
	pc := p.LastCompound()
	cc := c.FirstCompound()
	if pc == nil || cc == nil {
		return c
	}
	merged := selector.NewCompound(append(append([]*selector.Simple{}, pc.Simples...), cc.Simples...))
	components := append([]selector.Component{}, p.Components[:len(p.Components)-1]...)
	components = append(components, selector.CompoundComponent(merged))
	components = append(components, c.Components[1:]...)
	return selector.NewComplex(components)
}

func toSelectorList(fn string, v value.Value) (*selector.List, error) {
	switch t := v.(type) {
	case *value.SassString:
		return selector.Parse(t.Text)
	case *value.List:
		return selector.Parse(t.Inspect())
	default:
		return nil, argError(fn, v.Inspect()+" is not a valid selector")
	}
}

func toSelectorLists(fn string, args []value.Value) ([]*selector.List, error) {
	out := make([]*selector.List, len(args))
	for i, v := range args {
		l, err := toSelectorList(fn, v)
		if err != nil {
			return nil, err
		}
		out[i] = l
	}
	return out, nil
}

func selectorListValue(l *selector.List) value.Value {
	items := make([]value.Value, len(l.Complexes))
	for i, c := range l.Complexes {
		items[i] = value.NewString(c.String(), false)
	}
	return value.NewList(items, value.SepComma, false)
}
