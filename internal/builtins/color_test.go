package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/value"
)

func TestColorRGBBuildsOpaqueColor(t *testing.T) {
	r := NewRegistry()
	rgb, ok := r.Lookup("color", "rgb")
	require.True(t, ok)
	v, err := rgb.Fn([]value.Value{
		value.NewUnitless(51), value.NewUnitless(102), value.NewUnitless(153), value.NewUnitless(1),
	})
	require.NoError(t, err)
	c := v.(*value.Color)
	assert.Equal(t, 51.0, c.R)
	assert.Equal(t, 102.0, c.G)
	assert.Equal(t, 153.0, c.B)
	assert.Equal(t, 1.0, c.A)
}

func TestColorRGBAAlphaAsPercentDivides(t *testing.T) {
	r := NewRegistry()
	rgba, ok := r.Lookup("color", "rgba")
	require.True(t, ok)
	v, err := rgba.Fn([]value.Value{
		value.NewUnitless(0), value.NewUnitless(0), value.NewUnitless(0),
		value.NewNumber(50, value.SingleUnit("%")),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.5, v.(*value.Color).A)
}

func TestColorHueSaturationLightnessChannels(t *testing.T) {
	r := NewRegistry()
	c := value.NewHSLA(120, 0.5, 0.5, 1)

	hue, _ := r.Lookup("color", "hue")
	v, err := hue.Fn([]value.Value{c})
	require.NoError(t, err)
	assert.InDelta(t, 120.0, v.(*value.Number).Val, 0.001)

	sat, _ := r.Lookup("color", "saturation")
	v, err = sat.Fn([]value.Value{c})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, v.(*value.Number).Val, 0.001)
	assert.Equal(t, "%", v.(*value.Number).Unit.String())
}

func TestColorMixEvenWeightIsAverage(t *testing.T) {
	r := NewRegistry()
	mix, _ := r.Lookup("color", "mix")
	v, err := mix.Fn([]value.Value{
		value.NewRGBA(0, 0, 0, 1), value.NewRGBA(255, 255, 255, 1), value.NewNumber(50, value.SingleUnit("%")),
	})
	require.NoError(t, err)
	c := v.(*value.Color)
	assert.InDelta(t, 127.5, c.R, 0.5)
}

func TestColorLightenIncreasesLightness(t *testing.T) {
	r := NewRegistry()
	c := value.NewHSLA(0, 0.5, 0.3, 1)

	lighten, _ := r.Lookup("color", "lighten")
	v, err := lighten.Fn([]value.Value{c, value.NewNumber(10, value.SingleUnit("%"))})
	require.NoError(t, err)
	_, _, l, _ := v.(*value.Color).HSLA()
	assert.InDelta(t, 0.4, l, 0.01)
}

func TestColorChangeOverridesOnlyGivenChannels(t *testing.T) {
	r := NewRegistry()
	change, _ := r.Lookup("color", "change")
	v, err := change.Fn([]value.Value{
		value.NewRGBA(10, 20, 30, 1),
		value.NullValue, value.NullValue, value.NewUnitless(200),
		value.NullValue, value.NullValue, value.NullValue,
		value.NullValue,
	})
	require.NoError(t, err)
	c := v.(*value.Color)
	assert.Equal(t, 10.0, c.R)
	assert.Equal(t, 20.0, c.G)
	assert.Equal(t, 200.0, c.B)
}

func TestColorAdjustRejectsNonColorArgument(t *testing.T) {
	r := NewRegistry()
	adjust, _ := r.Lookup("color", "adjust")
	_, err := adjust.Fn([]value.Value{
		value.NewString("nope", true),
		value.NullValue, value.NullValue, value.NullValue,
		value.NullValue, value.NullValue, value.NullValue,
		value.NullValue,
	})
	assert.Error(t, err)
}

func TestColorIEHexStrIncludesAlphaChannel(t *testing.T) {
	r := NewRegistry()
	ieHex, _ := r.Lookup("color", "ie-hex-str")
	v, err := ieHex.Fn([]value.Value{value.NewRGBA(51, 102, 153, 1)})
	require.NoError(t, err)
	s := v.(*value.SassString)
	assert.Equal(t, "#FF336699", s.Text)
}
