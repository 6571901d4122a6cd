package csstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/selector"
)

func mustSelector(t *testing.T, text string) *selector.List {
	t.Helper()
	list, err := selector.Parse(text)
	require.NoError(t, err)
	return list
}

func TestCssizeFlattensNestedStyleRule(t *testing.T) {
	inner := &StyleRule{
		Selector: mustSelector(t, ".inner"),
		Children: []Node{&Declaration{Property: "color", Value: "red"}},
	}
	outer := &StyleRule{
		Selector: mustSelector(t, ".outer"),
		Children: []Node{
			&Declaration{Property: "display", Value: "block"},
			inner,
		},
	}
	root := Cssize(&Root{Children: []Node{outer}})
	require.Len(t, root.Children, 2)

	first := root.Children[0].(*StyleRule)
	assert.Equal(t, ".outer", first.Selector.String())
	require.Len(t, first.Children, 1)
	assert.Equal(t, "display", first.Children[0].(*Declaration).Property)

	second := root.Children[1].(*StyleRule)
	assert.Equal(t, ".inner", second.Selector.String())
}

func TestCssizeBubblesMediaOutOfStyleRule(t *testing.T) {
	media := &MediaRule{
		Query: "(min-width: 1px)",
		Children: []Node{
			&Declaration{Property: "color", Value: "red"},
		},
	}
	outer := &StyleRule{
		Selector: mustSelector(t, ".a"),
		Children: []Node{media},
	}
	root := Cssize(&Root{Children: []Node{outer}})
	require.Len(t, root.Children, 1)
	m := root.Children[0].(*MediaRule)
	require.Len(t, m.Children, 1)
	wrapped := m.Children[0].(*StyleRule)
	assert.Equal(t, ".a", wrapped.Selector.String())
}

func TestCssizeDropsEmptyRules(t *testing.T) {
	empty := &StyleRule{Selector: mustSelector(t, ".empty")}
	nonEmpty := &StyleRule{
		Selector: mustSelector(t, ".full"),
		Children: []Node{&Declaration{Property: "color", Value: "red"}},
	}
	root := Cssize(&Root{Children: []Node{empty, nonEmpty}})
	require.Len(t, root.Children, 1)
	assert.Equal(t, ".full", root.Children[0].(*StyleRule).Selector.String())
}

func TestCssizeMergesAdjacentMediaWithSameQuery(t *testing.T) {
	a := &MediaRule{Query: "screen", Children: []Node{&Declaration{Property: "a", Value: "1"}}}
	b := &MediaRule{Query: "screen", Children: []Node{&Declaration{Property: "b", Value: "2"}}}
	root := Cssize(&Root{Children: []Node{a, b}})
	require.Len(t, root.Children, 1)
	merged := root.Children[0].(*MediaRule)
	assert.Len(t, merged.Children, 2)
}

func TestHasContentPlaceholderOnlySelectorIsEmpty(t *testing.T) {
	rule := &StyleRule{Selector: &selector.List{}, Children: []Node{&Declaration{Property: "a", Value: "b"}}}
	assert.False(t, HasContent(rule))
}
