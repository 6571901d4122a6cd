package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapGetSetRoundTrips(t *testing.T) {
	m := NewMap()
	m.Set(NewString("a", true), NewUnitless(1))
	v, ok := m.Get(NewString("a", true))
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*Number).Val)

	_, ok = m.Get(NewString("missing", true))
	assert.False(t, ok)
}

func TestMapSetUpdatesInPlaceKeepsPosition(t *testing.T) {
	m := NewMap()
	m.Set(NewString("a", true), NewUnitless(1))
	m.Set(NewString("b", true), NewUnitless(2))
	m.Set(NewString("a", true), NewUnitless(99))

	require.Len(t, m.Entries, 2)
	assert.Equal(t, "a", m.Entries[0].Key.(*SassString).Text)
	assert.Equal(t, 99.0, m.Entries[0].Value.(*Number).Val)
}

func TestMapRemoveDropsMatchingEntry(t *testing.T) {
	m := NewMap()
	m.Set(NewString("a", true), NewUnitless(1))
	m.Set(NewString("b", true), NewUnitless(2))
	m.Remove(NewString("a", true))

	require.Len(t, m.Entries, 1)
	assert.Equal(t, "b", m.Entries[0].Key.(*SassString).Text)
}

func TestMapCloneIsIndependentOfOriginal(t *testing.T) {
	m := NewMap()
	m.Set(NewString("a", true), NewUnitless(1))
	clone := m.Clone()
	clone.Set(NewString("a", true), NewUnitless(2))

	orig, _ := m.Get(NewString("a", true))
	assert.Equal(t, 1.0, orig.(*Number).Val)
}

func TestMapInspectEmptyIsEmptyParens(t *testing.T) {
	assert.Equal(t, "()", NewMap().Inspect())
}

func TestMapInspectRendersKeyColonValuePairs(t *testing.T) {
	m := NewMap()
	m.Set(NewString("a", true), NewUnitless(1))
	m.Set(NewString("b", true), NewUnitless(2))
	assert.Equal(t, `("a": 1, "b": 2)`, m.Inspect())
}

func TestMapAsListProducesKeyValuePairLists(t *testing.T) {
	m := NewMap()
	m.Set(NewString("a", true), NewUnitless(1))
	m.Set(NewString("b", true), NewUnitless(2))
	asList := m.AsList()

	require.Len(t, asList.Items, 2)
	assert.Equal(t, SepComma, asList.Separator)
	pair := asList.Items[0].(*List)
	assert.Equal(t, SepSpace, pair.Separator)
	assert.Equal(t, "a", pair.Items[0].(*SassString).Text)
}
