package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/value"
)

func TestMathAbsPreservesUnit(t *testing.T) {
	r := NewRegistry()
	ns, ok := r.Lookup("math", "abs")
	require.True(t, ok)
	v, err := ns.Fn([]value.Value{value.NewNumber(-5, value.SingleUnit("px"))})
	require.NoError(t, err)
	n := v.(*value.Number)
	assert.Equal(t, 5.0, n.Val)
	assert.Equal(t, "px", n.Unit.String())
}

func TestMathCeilFloorRound(t *testing.T) {
	r := NewRegistry()
	ceil, _ := r.Lookup("math", "ceil")
	v, err := ceil.Fn([]value.Value{value.NewUnitless(1.2)})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.(*value.Number).Val)

	floor, _ := r.Lookup("math", "floor")
	v, err = floor.Fn([]value.Value{value.NewUnitless(1.8)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.(*value.Number).Val)

	round, _ := r.Lookup("math", "round")
	v, err = round.Fn([]value.Value{value.NewUnitless(2.5)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(*value.Number).Val)
}

func TestMathPercentageRejectsUnit(t *testing.T) {
	r := NewRegistry()
	pct, _ := r.Lookup("math", "percentage")
	_, err := pct.Fn([]value.Value{value.NewNumber(1, value.SingleUnit("px"))})
	assert.Error(t, err)
}

func TestMathMinMaxAcrossUnits(t *testing.T) {
	r := NewRegistry()
	min, _ := r.Lookup("math", "min")
	v, err := min.Fn([]value.Value{
		value.NewNumber(1, value.SingleUnit("in")),
		value.NewNumber(10, value.SingleUnit("px")),
	})
	require.NoError(t, err)
	n := v.(*value.Number)
	assert.Equal(t, 10.0, n.Val)
	assert.Equal(t, "px", n.Unit.String())
}
