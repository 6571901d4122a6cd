package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedColorRoundTrip(t *testing.T) {
	c, ok := NamedColor("Red")
	require.True(t, ok)
	assert.Equal(t, 255.0, c.R)
	assert.Equal(t, "red", c.Inspect())
}

func TestTransparentIsZeroAlpha(t *testing.T) {
	c, ok := NamedColor("transparent")
	require.True(t, ok)
	assert.Equal(t, 0.0, c.A)
}

func TestColorInspectHexWhenUnnamed(t *testing.T) {
	c := NewRGBA(17, 34, 51, 1)
	assert.Equal(t, "#112233", c.Inspect())
}

func TestColorInspectRGBAWhenTranslucent(t *testing.T) {
	c := NewRGBA(255, 0, 0, 0.5)
	assert.Equal(t, "rgba(255, 0, 0, 0.5)", c.Inspect())
}

func TestHSLARoundTrip(t *testing.T) {
	orig := NewRGBA(51, 102, 204, 1)
	h, s, l, a := orig.HSLA()
	back := NewHSLA(h, s, l, a)
	assert.True(t, orig.Equal(back), "expected %+v to equal %+v", orig, back)
}

func TestGrayscaleZeroesSaturation(t *testing.T) {
	c := NewRGBA(200, 50, 50, 1)
	gray := c.Grayscale()
	_, s, _, _ := gray.HSLA()
	assert.InDelta(t, 0, s, 1e-9)
}

func TestInvertFullWeight(t *testing.T) {
	c := NewRGBA(10, 20, 30, 1)
	inv := c.Invert(100)
	assert.Equal(t, 245.0, inv.R)
	assert.Equal(t, 235.0, inv.G)
	assert.Equal(t, 225.0, inv.B)
}

func TestMixEvenWeightAverages(t *testing.T) {
	a := NewRGBA(0, 0, 0, 1)
	b := NewRGBA(255, 255, 255, 1)
	mixed := Mix(a, b, 50)
	assert.InDelta(t, 127.5, mixed.R, 0.5)
}

func TestCompressedHexUsesThreeDigitForm(t *testing.T) {
	c := NewRGBA(17, 34, 51, 1)
	assert.Equal(t, "#123", c.CompressedHex())
}

func TestAdjustHSLClampsSaturationAndLightness(t *testing.T) {
	c := NewHSLA(120, 0.9, 0.95, 1)
	adjusted := c.AdjustHSL(0, 0.5, 0.5, 0)
	_, s, l, _ := adjusted.HSLA()
	assert.LessOrEqual(t, s, 1.0)
	assert.LessOrEqual(t, l, 1.0)
}
