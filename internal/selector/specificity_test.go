package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificityIDBeatsClassBeatsType(t *testing.T) {
	id, err := Parse("#a")
	require.NoError(t, err)
	class, err := Parse(".a")
	require.NoError(t, err)
	typ, err := Parse("a")
	require.NoError(t, err)

	idSpec := id.Complexes[0].Specificity()
	classSpec := class.Complexes[0].Specificity()
	typeSpec := typ.Complexes[0].Specificity()

	assert.True(t, classSpec.Less(idSpec))
	assert.True(t, typeSpec.Less(classSpec))
}

func TestSpecificityCounts(t *testing.T) {
	list, err := Parse("div.foo.bar#baz")
	require.NoError(t, err)
	spec := list.Complexes[0].Specificity()
	assert.Equal(t, Specificity{IDs: 1, Classes: 2, Types: 1}, spec)
}

func TestIsSuperselectorOfCompound(t *testing.T) {
	broad, _ := Parse(".a")
	narrow, _ := Parse(".a.b")
	assert.True(t, broad.Complexes[0].Components[0].Compound.IsSuperselectorOf(narrow.Complexes[0].Components[0].Compound))
	assert.False(t, narrow.Complexes[0].Components[0].Compound.IsSuperselectorOf(broad.Complexes[0].Components[0].Compound))
}

func TestResolveParentBareAmpersand(t *testing.T) {
	parent, err := Parse(".parent")
	require.NoError(t, err)
	child, err := Parse("&.child")
	require.NoError(t, err)
	resolved := ResolveParent(child, parent)
	require.Len(t, resolved.Complexes, 1)
	assert.Equal(t, ".parent.child", resolved.Complexes[0].String())
}

func TestResolveParentNoExplicitRefPrependsDescendant(t *testing.T) {
	parent, err := Parse(".parent")
	require.NoError(t, err)
	child, err := Parse(".child")
	require.NoError(t, err)
	resolved := ResolveParent(child, parent)
	assert.Equal(t, ".parent .child", resolved.Complexes[0].String())
}

func TestResolveParentNilParentReturnsChildUnchanged(t *testing.T) {
	child, err := Parse(".child")
	require.NoError(t, err)
	resolved := ResolveParent(child, nil)
	assert.Same(t, child, resolved)
}

func TestResolveParentSuffixForm(t *testing.T) {
	parent, err := Parse(".btn")
	require.NoError(t, err)
	child, err := Parse("&--active")
	require.NoError(t, err)
	resolved := ResolveParent(child, parent)
	assert.Equal(t, ".btn--active", resolved.Complexes[0].String())
}
