package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/value"
)

func sampleList(sep value.Separator) *value.List {
	return value.NewList([]value.Value{
		value.NewUnitless(1), value.NewUnitless(2), value.NewUnitless(3),
	}, sep, false)
}

func TestListLengthCountsItems(t *testing.T) {
	r := NewRegistry()
	length, ok := r.Lookup("list", "length")
	require.True(t, ok)
	v, err := length.Fn([]value.Value{sampleList(value.SepComma)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(*value.Number).Val)
}

func TestListNthSupportsNegativeIndex(t *testing.T) {
	r := NewRegistry()
	nth, _ := r.Lookup("list", "nth")
	v, err := nth.Fn([]value.Value{sampleList(value.SepComma), value.NewUnitless(-1)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(*value.Number).Val)
}

func TestListNthZeroIndexErrors(t *testing.T) {
	r := NewRegistry()
	nth, _ := r.Lookup("list", "nth")
	_, err := nth.Fn([]value.Value{sampleList(value.SepComma), value.NewUnitless(0)})
	assert.Error(t, err)
}

func TestListSetNthReplacesElementLeavesOriginalUntouched(t *testing.T) {
	r := NewRegistry()
	setNth, _ := r.Lookup("list", "set-nth")
	orig := sampleList(value.SepComma)
	v, err := setNth.Fn([]value.Value{orig, value.NewUnitless(2), value.NewString("x", true)})
	require.NoError(t, err)
	out := v.(*value.List)
	assert.Equal(t, "x", out.Items[1].(*value.SassString).Text)
	assert.Equal(t, 2.0, orig.Items[1].(*value.Number).Val)
}

func TestListJoinPrefersExplicitSeparator(t *testing.T) {
	r := NewRegistry()
	join, _ := r.Lookup("list", "join")
	v, err := join.Fn([]value.Value{
		sampleList(value.SepComma), sampleList(value.SepSpace), value.NewString("space", false), value.Boolean(false),
	})
	require.NoError(t, err)
	out := v.(*value.List)
	assert.Equal(t, value.SepSpace, out.Separator)
	assert.Len(t, out.Items, 6)
}

func TestListIndexReturnsOneBasedPositionOrNull(t *testing.T) {
	r := NewRegistry()
	index, _ := r.Lookup("list", "index")
	v, err := index.Fn([]value.Value{sampleList(value.SepComma), value.NewUnitless(2)})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.(*value.Number).Val)

	v, err = index.Fn([]value.Value{sampleList(value.SepComma), value.NewUnitless(99)})
	require.NoError(t, err)
	assert.Equal(t, value.NullValue, v)
}

func TestListZipTruncatesToShortestInput(t *testing.T) {
	r := NewRegistry()
	zip, _ := r.Lookup("list", "zip")
	short := value.NewList([]value.Value{value.NewUnitless(1)}, value.SepComma, false)
	v, err := zip.Fn([]value.Value{sampleList(value.SepComma), short})
	require.NoError(t, err)
	out := v.(*value.List)
	assert.Len(t, out.Items, 1)
}

func TestListSeparatorReportsCommaSpaceOrSlash(t *testing.T) {
	r := NewRegistry()
	sep, _ := r.Lookup("list", "list-separator")
	v, err := sep.Fn([]value.Value{sampleList(value.SepSlash)})
	require.NoError(t, err)
	assert.Equal(t, "slash", v.(*value.SassString).Text)
}
