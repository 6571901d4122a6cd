package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/csstree"
	"github.com/toakleaf/sass.go/internal/selector"
)

func mustSelector(t *testing.T, text string) *selector.List {
	t.Helper()
	list, err := selector.Parse(text)
	require.NoError(t, err)
	return list
}

func sampleRoot(t *testing.T) *csstree.Root {
	rule := &csstree.StyleRule{
		Selector: mustSelector(t, ".a"),
		Children: []csstree.Node{
			&csstree.Declaration{Property: "color", Value: "red"},
			&csstree.Declaration{Property: "display", Value: "block"},
		},
	}
	return &csstree.Root{Children: []csstree.Node{rule}}
}

func TestEmitExpanded(t *testing.T) {
	res := Emit(sampleRoot(t), Expanded, nil)
	assert.Equal(t, ".a {\n  color: red;\n  display: block;\n}\n", res.CSS)
}

func TestEmitCompact(t *testing.T) {
	res := Emit(sampleRoot(t), Compact, nil)
	assert.Equal(t, ".a { color: red; display: block; }\n", res.CSS)
}

func TestEmitCompressed(t *testing.T) {
	res := Emit(sampleRoot(t), Compressed, nil)
	assert.Equal(t, ".a{color:red;display:block;}", res.CSS)
}

func TestEmitCommentSuppressedInCompressed(t *testing.T) {
	root := &csstree.Root{Children: []csstree.Node{
		&csstree.Comment{Text: "/* hi */"},
		&csstree.StyleRule{Selector: mustSelector(t, ".a"), Children: []csstree.Node{
			&csstree.Declaration{Property: "color", Value: "red"},
		}},
	}}
	res := Emit(root, Compressed, nil)
	assert.NotContains(t, res.CSS, "hi")
}

func TestEmitMediaRuleNesting(t *testing.T) {
	root := &csstree.Root{Children: []csstree.Node{
		&csstree.MediaRule{Query: "screen", Children: []csstree.Node{
			&csstree.StyleRule{Selector: mustSelector(t, ".a"), Children: []csstree.Node{
				&csstree.Declaration{Property: "color", Value: "red"},
			}},
		}},
	}}
	res := Emit(root, Expanded, nil)
	assert.Equal(t, "@media screen {\n  .a {\n    color: red;\n  }\n}\n", res.CSS)
}

func TestEmitNoMappingsWithoutSourceSet(t *testing.T) {
	res := Emit(sampleRoot(t), Expanded, nil)
	assert.Empty(t, res.Mappings)
}

func twoSiblingRules(t *testing.T) *csstree.Root {
	return &csstree.Root{Children: []csstree.Node{
		&csstree.StyleRule{Selector: mustSelector(t, ".a"), Children: []csstree.Node{
			&csstree.Declaration{Property: "v", Value: "1"},
		}},
		&csstree.StyleRule{Selector: mustSelector(t, ".b"), Children: []csstree.Node{
			&csstree.Declaration{Property: "v", Value: "2"},
		}},
	}}
}

func TestEmitExpandedInsertsBlankLineBetweenSiblingRules(t *testing.T) {
	res := Emit(twoSiblingRules(t), Expanded, nil)
	assert.Equal(t, ".a {\n  v: 1;\n}\n\n.b {\n  v: 2;\n}\n", res.CSS)
}

func TestEmitNestedInsertsBlankLineBetweenSiblingRules(t *testing.T) {
	res := Emit(twoSiblingRules(t), Nested, nil)
	assert.Contains(t, res.CSS, "}\n\n.b")
}

func TestEmitCompactHasNoBlankLineBetweenSiblingRules(t *testing.T) {
	res := Emit(twoSiblingRules(t), Compact, nil)
	assert.NotContains(t, res.CSS, "\n\n")
}

func TestEmitCompressedHasNoBlankLineBetweenSiblingRules(t *testing.T) {
	res := Emit(twoSiblingRules(t), Compressed, nil)
	assert.NotContains(t, res.CSS, "\n")
}
