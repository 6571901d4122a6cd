package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/value"
)

func sampleMap() *value.Map {
	m := value.NewMap()
	m.Set(value.NewString("a", true), value.NewUnitless(1))
	m.Set(value.NewString("b", true), value.NewUnitless(2))
	return m
}

func TestMapGetReturnsValueForKey(t *testing.T) {
	r := NewRegistry()
	get, ok := r.Lookup("map", "get")
	require.True(t, ok)
	v, err := get.Fn([]value.Value{sampleMap(), value.NewString("b", true)})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.(*value.Number).Val)
}

func TestMapGetMissingKeyReturnsNull(t *testing.T) {
	r := NewRegistry()
	get, _ := r.Lookup("map", "get")
	v, err := get.Fn([]value.Value{sampleMap(), value.NewString("z", true)})
	require.NoError(t, err)
	assert.Equal(t, value.NullValue, v)
}

func TestMapGetNestedKeyPathDescends(t *testing.T) {
	r := NewRegistry()
	inner := value.NewMap()
	inner.Set(value.NewString("x", true), value.NewUnitless(9))
	outer := value.NewMap()
	outer.Set(value.NewString("a", true), inner)

	get, _ := r.Lookup("map", "get")
	v, err := get.Fn([]value.Value{outer, value.NewString("a", true), value.NewString("x", true)})
	require.NoError(t, err)
	assert.Equal(t, 9.0, v.(*value.Number).Val)
}

func TestMapHasKeyReportsPresence(t *testing.T) {
	r := NewRegistry()
	hasKey, _ := r.Lookup("map", "has-key")
	v, err := hasKey.Fn([]value.Value{sampleMap(), value.NewString("a", true)})
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)

	v, err = hasKey.Fn([]value.Value{sampleMap(), value.NewString("z", true)})
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(false), v)
}

func TestMapKeysAndValuesPreserveInsertionOrder(t *testing.T) {
	r := NewRegistry()
	keys, _ := r.Lookup("map", "keys")
	v, err := keys.Fn([]value.Value{sampleMap()})
	require.NoError(t, err)
	out := v.(*value.List)
	assert.Equal(t, "a", out.Items[0].(*value.SassString).Text)
	assert.Equal(t, "b", out.Items[1].(*value.SassString).Text)
}

func TestMapMergeKeepsOriginalPositionOnOverlap(t *testing.T) {
	r := NewRegistry()
	merge, _ := r.Lookup("map", "merge")
	overlay := value.NewMap()
	overlay.Set(value.NewString("a", true), value.NewUnitless(100))
	v, err := merge.Fn([]value.Value{sampleMap(), overlay})
	require.NoError(t, err)
	out := v.(*value.Map)
	assert.Len(t, out.Entries, 2)
	assert.Equal(t, "a", out.Entries[0].Key.(*value.SassString).Text)
	val, _ := out.Get(value.NewString("a", true))
	assert.Equal(t, 100.0, val.(*value.Number).Val)
}

func TestMapMergeDoesNotMutateOriginal(t *testing.T) {
	r := NewRegistry()
	merge, _ := r.Lookup("map", "merge")
	orig := sampleMap()
	overlay := value.NewMap()
	overlay.Set(value.NewString("a", true), value.NewUnitless(100))
	_, err := merge.Fn([]value.Value{orig, overlay})
	require.NoError(t, err)
	val, _ := orig.Get(value.NewString("a", true))
	assert.Equal(t, 1.0, val.(*value.Number).Val)
}

func TestMapRemoveDropsGivenKeys(t *testing.T) {
	r := NewRegistry()
	remove, _ := r.Lookup("map", "remove")
	v, err := remove.Fn([]value.Value{sampleMap(), value.NewString("a", true)})
	require.NoError(t, err)
	out := v.(*value.Map)
	assert.Len(t, out.Entries, 1)
	_, found := out.Get(value.NewString("a", true))
	assert.False(t, found)
}
