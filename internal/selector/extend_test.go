package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtenderAppliesSimpleExtend(t *testing.T) {
	// ".serious-error { @extend .error; }" — the extender is the rule doing
	// the extending (.serious-error), the target is the selector it names
	// (.error); applying to a rule whose own selector is .error should add
	// .serious-error as an alternate.
	ext := NewExtender()

	extenderSel, err := Parse(".serious-error")
	require.NoError(t, err)
	target, err := Parse(".error")
	require.NoError(t, err)

	ext.Register(&Extension{
		Extender: extenderSel.Complexes[0],
		Target:   target.Complexes[0].LastCompound().Simples[0],
	})

	rule, err := Parse(".error")
	require.NoError(t, err)
	ext.MarkOriginal(rule.Complexes[0])

	result := ext.Apply(rule)
	var rendered []string
	for _, c := range result.Complexes {
		rendered = append(rendered, c.String())
	}
	assert.Contains(t, rendered, ".error")
	assert.Contains(t, rendered, ".serious-error")
}

func TestExtenderUnmatchedRequiredReportsNonOptional(t *testing.T) {
	ext := NewExtender()
	extenderSel, _ := Parse(".warn")
	target, _ := Parse(".never-used")
	e := &Extension{
		Extender: extenderSel.Complexes[0],
		Target:   target.Complexes[0].LastCompound().Simples[0],
	}
	ext.Register(e)

	unmatched := ext.UnmatchedRequired()
	require.Len(t, unmatched, 1)
	assert.Same(t, e, unmatched[0])
}

func TestExtenderOptionalExtendNotReportedUnmatched(t *testing.T) {
	ext := NewExtender()
	extenderSel, _ := Parse(".warn")
	target, _ := Parse(".never-used")
	ext.Register(&Extension{
		Extender:   extenderSel.Complexes[0],
		Target:     target.Complexes[0].LastCompound().Simples[0],
		IsOptional: true,
	})
	assert.Empty(t, ext.UnmatchedRequired())
}

func TestExtenderApplyNoExtensionsReturnsListUnchanged(t *testing.T) {
	ext := NewExtender()
	list, _ := Parse(".a")
	assert.Same(t, list, ext.Apply(list))
}
