package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListInspectJoinsWithSeparator(t *testing.T) {
	l := NewList([]Value{NewUnitless(1), NewUnitless(2), NewUnitless(3)}, SepComma, false)
	assert.Equal(t, "1, 2, 3", l.Inspect())

	s := NewList([]Value{NewUnitless(1), NewUnitless(2)}, SepSpace, false)
	assert.Equal(t, "1 2", s.Inspect())
}

func TestListInspectBracketedEmptyList(t *testing.T) {
	l := NewList(nil, SepComma, true)
	assert.Equal(t, "[]", l.Inspect())
}

func TestListInspectUnbracketedEmptyList(t *testing.T) {
	l := NewList(nil, SepComma, false)
	assert.Equal(t, "()", l.Inspect())
}

func TestListInspectSingleCommaItemGetsTrailingComma(t *testing.T) {
	l := NewList([]Value{NewUnitless(1)}, SepComma, false)
	assert.Equal(t, "(1,)", l.Inspect())
}

func TestListInspectSingleSpaceItemHasNoTrailingComma(t *testing.T) {
	l := NewList([]Value{NewUnitless(1)}, SepSpace, false)
	assert.Equal(t, "1", l.Inspect())
}

func TestListTruthyIsAlwaysTrueEvenEmpty(t *testing.T) {
	l := NewList(nil, SepComma, false)
	assert.True(t, l.Truthy())
}

func TestSingleToListWrapsBareValue(t *testing.T) {
	wrapped := SingleToList(NewUnitless(5))
	assert.Len(t, wrapped.Items, 1)
	assert.Equal(t, SepUndecided, wrapped.Separator)
	assert.False(t, wrapped.Brackets)
}

func TestSingleToListPassesThroughExistingList(t *testing.T) {
	original := NewList([]Value{NewUnitless(1)}, SepSpace, true)
	assert.Same(t, original, SingleToList(original))
}
