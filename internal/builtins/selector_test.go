package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/value"
)

func TestSelectorNestCombinesParentAndChild(t *testing.T) {
	r := NewRegistry()
	nest, ok := r.Lookup("selector", "selector-nest")
	require.True(t, ok)
	v, err := nest.Fn([]value.Value{
		value.NewString(".a", false), value.NewString(".b", false),
	})
	require.NoError(t, err)
	out := v.(*value.List)
	require.Len(t, out.Items, 1)
	assert.Equal(t, ".a .b", out.Items[0].(*value.SassString).Text)
}

func TestSelectorAppendConcatenatesWithoutDescendant(t *testing.T) {
	r := NewRegistry()
	appendFn, ok := r.Lookup("selector", "selector-append")
	require.True(t, ok)
	v, err := appendFn.Fn([]value.Value{
		value.NewString(".icon", false), value.NewString(":hover", false),
	})
	require.NoError(t, err)
	out := v.(*value.List)
	require.Len(t, out.Items, 1)
	assert.Equal(t, ".icon:hover", out.Items[0].(*value.SassString).Text)
}

func TestSelectorExtendUnionsExtenderInPlace(t *testing.T) {
	r := NewRegistry()
	extend, ok := r.Lookup("selector", "selector-extend")
	require.True(t, ok)
	v, err := extend.Fn([]value.Value{
		value.NewString(".error", false), value.NewString(".error", false), value.NewString(".serious-error", false),
	})
	require.NoError(t, err)
	out := v.(*value.List)
	var rendered []string
	for _, it := range out.Items {
		rendered = append(rendered, it.(*value.SassString).Text)
	}
	assert.Contains(t, rendered, ".error")
	assert.Contains(t, rendered, ".serious-error")
}

func TestSelectorReplaceDropsOriginalMatch(t *testing.T) {
	r := NewRegistry()
	replace, ok := r.Lookup("selector", "selector-replace")
	require.True(t, ok)
	v, err := replace.Fn([]value.Value{
		value.NewString(".error", false), value.NewString(".error", false), value.NewString(".serious-error", false),
	})
	require.NoError(t, err)
	out := v.(*value.List)
	var rendered []string
	for _, it := range out.Items {
		rendered = append(rendered, it.(*value.SassString).Text)
	}
	assert.NotContains(t, rendered, ".error")
	assert.Contains(t, rendered, ".serious-error")
}

func TestSelectorIsSuperselectorReportsContainment(t *testing.T) {
	r := NewRegistry()
	isSuper, ok := r.Lookup("selector", "is-superselector")
	require.True(t, ok)
	v, err := isSuper.Fn([]value.Value{
		value.NewString(".a", false), value.NewString(".a.b", false),
	})
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)
}

func TestSelectorParseRoundTripsListText(t *testing.T) {
	r := NewRegistry()
	parse, ok := r.Lookup("selector", "selector-parse")
	require.True(t, ok)
	v, err := parse.Fn([]value.Value{value.NewString(".a, .b", false)})
	require.NoError(t, err)
	out := v.(*value.List)
	assert.Len(t, out.Items, 2)
}

func TestSimpleSelectorsSplitsCompound(t *testing.T) {
	r := NewRegistry()
	simples, ok := r.Lookup("selector", "simple-selectors")
	require.True(t, ok)
	v, err := simples.Fn([]value.Value{value.NewString(".a.b", false)})
	require.NoError(t, err)
	out := v.(*value.List)
	assert.Len(t, out.Items, 2)
}
