package builtins

import (
	"github.com/toakleaf/sass.go/internal/value"
)

// mapFuncs implements the `sass:map` module (§4.3), grounded directly on
// internal/value/map.go's insertion-ordered Map (Get/Set/Remove/Clone).
func mapFuncs() *Namespace {
	ns := newNamespace("sass:map")

	ns.def("get", []Param{{Name: "map"}, {Name: "key"}, {Name: "keys", Rest: true}}, func(a []value.Value) (value.Value, error) {
		m, err := wantMap("get", a[0])
		if err != nil {
			return nil, err
		}
		keys := append([]value.Value{a[1]}, a[2:]...)
		var cur value.Value = m
		for i, k := range keys {
			cm, ok := cur.(*value.Map)
			if !ok {
				return value.NullValue, nil
			}
			v, found := cm.Get(k)
			if !found {
				return value.NullValue, nil
			}
			if i == len(keys)-1 {
				return v, nil
			}
			cur = v
		}
		return value.NullValue, nil
	})

	ns.def("has-key", []Param{{Name: "map"}, {Name: "key"}, {Name: "keys", Rest: true}}, func(a []value.Value) (value.Value, error) {
		m, err := wantMap("has-key", a[0])
		if err != nil {
			return nil, err
		}
		keys := append([]value.Value{a[1]}, a[2:]...)
		var cur value.Value = m
		for i, k := range keys {
			cm, ok := cur.(*value.Map)
			if !ok {
				return boolNum(false), nil
			}
			v, found := cm.Get(k)
			if !found {
				return boolNum(false), nil
			}
			if i == len(keys)-1 {
				return boolNum(true), nil
			}
			cur = v
		}
		return boolNum(false), nil
	})

	ns.def("keys", []Param{{Name: "map"}}, func(a []value.Value) (value.Value, error) {
		m, err := wantMap("keys", a[0])
		if err != nil {
			return nil, err
		}
		keys := make([]value.Value, len(m.Entries))
		for i, e := range m.Entries {
			keys[i] = e.Key
		}
		return value.NewList(keys, value.SepComma, false), nil
	})

	ns.def("values", []Param{{Name: "map"}}, func(a []value.Value) (value.Value, error) {
		m, err := wantMap("values", a[0])
		if err != nil {
			return nil, err
		}
		vals := make([]value.Value, len(m.Entries))
		for i, e := range m.Entries {
			vals[i] = e.Value
		}
		return value.NewList(vals, value.SepComma, false), nil
	})

	ns.def("merge", []Param{{Name: "map1"}, {Name: "map2"}, {Name: "maps", Rest: true}}, func(a []value.Value) (value.Value, error) {
		m1, err := wantMap("merge", a[0])
		if err != nil {
			return nil, err
		}
		result := m1.Clone()
		rest := append([]value.Value{a[1]}, a[2:]...)
		for _, mv := range rest {
			m, err := wantMap("merge", mv)
			if err != nil {
				return nil, err
			}
			for _, e := range m.Entries {
				result.Set(e.Key, e.Value)
			}
		}
		return result, nil
	})

	ns.def("remove", []Param{{Name: "map"}, {Name: "keys", Rest: true}}, func(a []value.Value) (value.Value, error) {
		m, err := wantMap("remove", a[0])
		if err != nil {
			return nil, err
		}
		result := m.Clone()
		for _, k := range a[1:] {
			result.Remove(k)
		}
		return result, nil
	})

	return ns
}

func wantMap(fn string, v value.Value) (*value.Map, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return nil, argError(fn, v.Inspect()+" is not a map")
	}
	return m, nil
}
