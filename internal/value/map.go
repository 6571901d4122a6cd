package value

import "strings"

// MapEntry is one key/value pair of a Map, kept in insertion order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is Sass's map value: an insertion-ordered association list rather
// than a Go map, since keys are arbitrary Values compared with Equal and
// iteration order is observable (map.keys(), @each).
type Map struct {
	Entries []MapEntry
}

func NewMap() *Map { return &Map{} }

func (m *Map) TypeName() string { return "map" }
func (m *Map) Truthy() bool     { return true }

func (m *Map) Get(key Value) (Value, bool) {
	for _, e := range m.Entries {
		if Equal(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Set inserts or updates key, preserving its original position on update
// (map.merge semantics) and appending on insert.
func (m *Map) Set(key, val Value) {
	for i, e := range m.Entries {
		if Equal(e.Key, key) {
			m.Entries[i].Value = val
			return
		}
	}
	m.Entries = append(m.Entries, MapEntry{Key: key, Value: val})
}

func (m *Map) Remove(key Value) {
	for i, e := range m.Entries {
		if Equal(e.Key, key) {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return
		}
	}
}

func (m *Map) Clone() *Map {
	c := &Map{Entries: make([]MapEntry, len(m.Entries))}
	copy(c.Entries, m.Entries)
	return c
}

func (m *Map) Inspect() string {
	if len(m.Entries) == 0 {
		return "()"
	}
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = e.Key.Inspect() + ": " + e.Value.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// AsList returns the list-of-two-element-lists form `@each $k, $v in $map`
// iterates over.
func (m *Map) AsList() *List {
	items := make([]Value, len(m.Entries))
	for i, e := range m.Entries {
		items[i] = NewList([]Value{e.Key, e.Value}, SepSpace, false)
	}
	return NewList(items, SepComma, false)
}
