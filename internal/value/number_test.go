package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberInspect(t *testing.T) {
	assert.Equal(t, "10px", NewNumber(10, SingleUnit("px")).Inspect())
	assert.Equal(t, "1.5", NewUnitless(1.5).Inspect())
	assert.Equal(t, "0", NewUnitless(-0.0).Inspect())
	assert.Equal(t, "1.3333333333", NewUnitless(4.0/3.0).Inspect())
}

func TestNumberAddConvertsCompatibleUnits(t *testing.T) {
	a := NewNumber(1, SingleUnit("in"))
	b := NewNumber(48, SingleUnit("px"))
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "in", sum.Unit.String())
	assert.InDelta(t, 1.5, sum.Val, 1e-9)
}

func TestNumberAddUnitlessKeepsOtherUnit(t *testing.T) {
	sum, err := NewUnitless(2).Add(NewNumber(3, SingleUnit("px")))
	require.NoError(t, err)
	assert.Equal(t, "px", sum.Unit.String())
	assert.Equal(t, 5.0, sum.Val)
}

func TestNumberAddIncompatibleUnitsErrors(t *testing.T) {
	_, err := NewNumber(1, SingleUnit("px")).Add(NewNumber(1, SingleUnit("deg")))
	require.Error(t, err)
	var unitErr *IncompatibleUnitsError
	assert.ErrorAs(t, err, &unitErr)
}

func TestNumberMulDivUnitAlgebra(t *testing.T) {
	px := NewNumber(2, SingleUnit("px"))
	s := NewNumber(3, SingleUnit("s"))
	product := px.Mul(s)
	assert.Equal(t, "px*s", product.Unit.String())
	assert.Equal(t, 6.0, product.Val)

	sq := px.Mul(px)
	quotient := sq.Div(px)
	assert.Equal(t, "px", quotient.Unit.String())
	assert.InDelta(t, 2.0, quotient.Val, 1e-9)
}

func TestNumberEqualToUsesToleranceAndConversion(t *testing.T) {
	a := NewNumber(1, SingleUnit("in"))
	b := NewNumber(96, SingleUnit("px"))
	assert.True(t, a.EqualTo(b))
	assert.False(t, a.EqualTo(NewNumber(97, SingleUnit("px"))))
}

func TestNumberCompareIncompatibleUnits(t *testing.T) {
	_, err := NewNumber(1, SingleUnit("px")).Compare(NewNumber(1, SingleUnit("s")))
	require.Error(t, err)
}

func TestNumberModKeepsDividendSign(t *testing.T) {
	m, err := NewUnitless(-7).Mod(NewUnitless(3))
	require.NoError(t, err)
	assert.Equal(t, -1.0, m.Val)
}

func TestNumberInspectPrefersAsSlashOverVal(t *testing.T) {
	n := NewNumber(0.75, NoUnit())
	n.AsSlash = &SlashPair{Num: NewNumber(12, SingleUnit("px")), Den: NewNumber(16, SingleUnit("px"))}
	assert.Equal(t, "12px/16px", n.Inspect())
}

func TestUnitConversionFactor(t *testing.T) {
	f, ok := SingleUnit("cm").ConversionFactor(SingleUnit("px"))
	require.True(t, ok)
	assert.InDelta(t, 96.0/2.54, f, 1e-9)

	_, ok = SingleUnit("px").ConversionFactor(SingleUnit("s"))
	assert.False(t, ok)
}
