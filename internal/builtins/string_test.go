package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/value"
)

func TestStringLengthCountsCodePointsNotBytes(t *testing.T) {
	r := NewRegistry()
	length, ok := r.Lookup("string", "length")
	require.True(t, ok)
	v, err := length.Fn([]value.Value{value.NewString("héllo", true)})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.(*value.Number).Val)
}

func TestStringInsertAtPositiveIndex(t *testing.T) {
	r := NewRegistry()
	insert, _ := r.Lookup("string", "insert")
	v, err := insert.Fn([]value.Value{
		value.NewString("abc", true), value.NewString("X", true), value.NewUnitless(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "aXbc", v.(*value.SassString).Text)
}

func TestStringInsertNegativeIndexBeforeLastChar(t *testing.T) {
	r := NewRegistry()
	insert, _ := r.Lookup("string", "insert")
	v, err := insert.Fn([]value.Value{
		value.NewString("abc", true), value.NewString("X", true), value.NewUnitless(-2),
	})
	require.NoError(t, err)
	assert.Equal(t, "abXc", v.(*value.SassString).Text)
}

func TestStringInsertNegativeOneAppendsAtEnd(t *testing.T) {
	r := NewRegistry()
	insert, _ := r.Lookup("string", "insert")
	v, err := insert.Fn([]value.Value{
		value.NewString("abc", true), value.NewString("X", true), value.NewUnitless(-1),
	})
	require.NoError(t, err)
	assert.Equal(t, "abcX", v.(*value.SassString).Text)
}

func TestStringIndexReturnsOneBasedPositionOrNull(t *testing.T) {
	r := NewRegistry()
	index, _ := r.Lookup("string", "index")
	v, err := index.Fn([]value.Value{value.NewString("abcdef", true), value.NewString("cd", true)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(*value.Number).Val)

	v, err = index.Fn([]value.Value{value.NewString("abcdef", true), value.NewString("zz", true)})
	require.NoError(t, err)
	assert.Equal(t, value.NullValue, v)
}

func TestStringSliceExtractsInclusiveRange(t *testing.T) {
	r := NewRegistry()
	slice, _ := r.Lookup("string", "slice")
	v, err := slice.Fn([]value.Value{value.NewString("abcdef", true), value.NewUnitless(2), value.NewUnitless(4)})
	require.NoError(t, err)
	assert.Equal(t, "bcd", v.(*value.SassString).Text)
}

func TestStringSliceDefaultEndIsStringEnd(t *testing.T) {
	r := NewRegistry()
	slice, _ := r.Lookup("string", "slice")
	v, err := slice.Fn([]value.Value{value.NewString("abcdef", true), value.NewUnitless(3), value.NewUnitless(-1)})
	require.NoError(t, err)
	assert.Equal(t, "cdef", v.(*value.SassString).Text)
}

func TestStringToUpperAndLowerCasePreserveQuoting(t *testing.T) {
	r := NewRegistry()
	upper, _ := r.Lookup("string", "to-upper-case")
	v, err := upper.Fn([]value.Value{value.NewString("abc", false)})
	require.NoError(t, err)
	s := v.(*value.SassString)
	assert.Equal(t, "ABC", s.Text)
	assert.False(t, s.Quoted)
}

func TestStringQuoteAndUnquoteTogglePresentation(t *testing.T) {
	r := NewRegistry()
	quote, _ := r.Lookup("string", "quote")
	v, err := quote.Fn([]value.Value{value.NewString("abc", false)})
	require.NoError(t, err)
	assert.True(t, v.(*value.SassString).Quoted)

	unquote, _ := r.Lookup("string", "unquote")
	v, err = unquote.Fn([]value.Value{value.NewString("abc", true)})
	require.NoError(t, err)
	assert.False(t, v.(*value.SassString).Quoted)
}

func TestStringUniqueIdStartsWithLetter(t *testing.T) {
	r := NewRegistry()
	uniqueID, _ := r.Lookup("string", "unique-id")
	v, err := uniqueID.Fn(nil)
	require.NoError(t, err)
	s := v.(*value.SassString)
	assert.True(t, len(s.Text) > 1 && s.Text[0] == 'u')
}
