package builtins

import (
	"github.com/toakleaf/sass.go/internal/value"
)

// colorFuncs implements the `sass:color` module (§4.3). Channel math and
// the mix/scale/adjust/invert algorithms are grounded on
// internal/value/color.go, which already carries the RGB/HSL conversion
// and blending the teacher's less/color_blending.go performs on its
// plain Color struct; this file only adapts argument binding to
// SassScript's named/optional-keyword calling convention.
func colorFuncs() *Namespace {
	ns := newNamespace("sass:color")

	ns.def("rgb", []Param{{Name: "red"}, {Name: "green"}, {Name: "blue"}, {Name: "alpha", Default: value.NewUnitless(1)}}, rgbaFn)
	ns.def("rgba", []Param{{Name: "red"}, {Name: "green"}, {Name: "blue"}, {Name: "alpha", Default: value.NewUnitless(1)}}, rgbaFn)

	ns.def("hsl", []Param{{Name: "hue"}, {Name: "saturation"}, {Name: "lightness"}, {Name: "alpha", Default: value.NewUnitless(1)}}, hslaFn)
	ns.def("hsla", []Param{{Name: "hue"}, {Name: "saturation"}, {Name: "lightness"}, {Name: "alpha", Default: value.NewUnitless(1)}}, hslaFn)

	ns.def("red", []Param{{Name: "color"}}, channelFn("red", func(c *value.Color) float64 { return c.R }))
	ns.def("green", []Param{{Name: "color"}}, channelFn("green", func(c *value.Color) float64 { return c.G }))
	ns.def("blue", []Param{{Name: "color"}}, channelFn("blue", func(c *value.Color) float64 { return c.B }))

	ns.def("hue", []Param{{Name: "color"}}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("hue", a[0])
		if err != nil {
			return nil, err
		}
		h, _, _, _ := c.HSLA()
		return value.NewNumber(h, value.SingleUnit("deg")), nil
	})
	ns.def("saturation", []Param{{Name: "color"}}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("saturation", a[0])
		if err != nil {
			return nil, err
		}
		_, s, _, _ := c.HSLA()
		return value.NewNumber(s*100, value.SingleUnit("%")), nil
	})
	ns.def("lightness", []Param{{Name: "color"}}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("lightness", a[0])
		if err != nil {
			return nil, err
		}
		_, _, l, _ := c.HSLA()
		return value.NewNumber(l*100, value.SingleUnit("%")), nil
	})
	ns.def("alpha", []Param{{Name: "color"}}, channelAlphaFn("alpha"))
	ns.def("opacity", []Param{{Name: "color"}}, channelAlphaFn("opacity"))

	ns.def("mix", []Param{
		{Name: "color1"}, {Name: "color2"}, {Name: "weight", Default: value.NewNumber(50, value.SingleUnit("%"))},
	}, func(a []value.Value) (value.Value, error) {
		c1, err := wantColor("mix", a[0])
		if err != nil {
			return nil, err
		}
		c2, err := wantColor("mix", a[1])
		if err != nil {
			return nil, err
		}
		w, err := wantNumber("mix", a[2])
		if err != nil {
			return nil, err
		}
		return value.Mix(c1, c2, w.Val), nil
	})

	ns.def("grayscale", []Param{{Name: "color"}}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("grayscale", a[0])
		if err != nil {
			return nil, err
		}
		return c.Grayscale(), nil
	})

	ns.def("invert", []Param{{Name: "color"}, {Name: "weight", Default: value.NewNumber(100, value.SingleUnit("%"))}}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("invert", a[0])
		if err != nil {
			return nil, err
		}
		w, err := wantNumber("invert", a[1])
		if err != nil {
			return nil, err
		}
		return c.Invert(w.Val), nil
	})

	ns.def("complement", []Param{{Name: "color"}}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("complement", a[0])
		if err != nil {
			return nil, err
		}
		return c.Complement(), nil
	})

	ns.def("lighten", []Param{{Name: "color"}, {Name: "amount"}}, hslShiftFn("lighten", func(dl float64) (float64, float64, float64) { return 0, 0, dl / 100 }))
	ns.def("darken", []Param{{Name: "color"}, {Name: "amount"}}, hslShiftFn("darken", func(dl float64) (float64, float64, float64) { return 0, 0, -dl / 100 }))
	ns.def("saturate", []Param{{Name: "color"}, {Name: "amount"}}, hslShiftFn("saturate", func(ds float64) (float64, float64, float64) { return 0, ds / 100, 0 }))
	ns.def("desaturate", []Param{{Name: "color"}, {Name: "amount"}}, hslShiftFn("desaturate", func(ds float64) (float64, float64, float64) { return 0, -ds / 100, 0 }))
	ns.def("adjust-hue", []Param{{Name: "color"}, {Name: "degrees"}}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("adjust-hue", a[0])
		if err != nil {
			return nil, err
		}
		deg, err := wantNumber("adjust-hue", a[1])
		if err != nil {
			return nil, err
		}
		return c.AdjustHSL(deg.Val, 0, 0, 0), nil
	})
	ns.def("opacify", []Param{{Name: "color"}, {Name: "amount"}}, alphaShiftFn("opacify", 1))
	ns.def("fade-in", []Param{{Name: "color"}, {Name: "amount"}}, alphaShiftFn("fade-in", 1))
	ns.def("transparentize", []Param{{Name: "color"}, {Name: "amount"}}, alphaShiftFn("transparentize", -1))
	ns.def("fade-out", []Param{{Name: "color"}, {Name: "amount"}}, alphaShiftFn("fade-out", -1))

	ns.def("adjust", []Param{
		{Name: "color"},
		{Name: "red", Default: value.NullValue}, {Name: "green", Default: value.NullValue}, {Name: "blue", Default: value.NullValue},
		{Name: "hue", Default: value.NullValue}, {Name: "saturation", Default: value.NullValue}, {Name: "lightness", Default: value.NullValue},
		{Name: "alpha", Default: value.NullValue},
	}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("adjust", a[0])
		if err != nil {
			return nil, err
		}
		dr, dg, db, dAlpha := optDelta(a[1]), optDelta(a[2]), optDelta(a[3]), optDelta(a[7])
		dh, ds, dl := optDelta(a[4]), optDelta(a[5])/100, optDelta(a[6])/100
		if dr != 0 || dg != 0 || db != 0 {
			c = value.NewRGBA(c.R+dr, c.G+dg, c.B+db, c.A)
		}
		if dh != 0 || ds != 0 || dl != 0 || dAlpha != 0 {
			c = c.AdjustHSL(dh, ds, dl, dAlpha)
		}
		return c, nil
	})

	ns.def("scale", []Param{
		{Name: "color"},
		{Name: "red", Default: value.NullValue}, {Name: "green", Default: value.NullValue}, {Name: "blue", Default: value.NullValue},
		{Name: "saturation", Default: value.NullValue}, {Name: "lightness", Default: value.NullValue},
		{Name: "alpha", Default: value.NullValue},
	}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("scale", a[0])
		if err != nil {
			return nil, err
		}
		if !isNull(a[1]) || !isNull(a[2]) || !isNull(a[3]) {
			r := scaleTowardsChannel(c.R, 255, optDelta(a[1]))
			g := scaleTowardsChannel(c.G, 255, optDelta(a[2]))
			b := scaleTowardsChannel(c.B, 255, optDelta(a[3]))
			c = value.NewRGBA(r, g, b, c.A)
		}
		ds, dl, da := optDelta(a[4]), optDelta(a[5]), optDelta(a[6])
		return c.ScaleHSL(ds, dl, da), nil
	})

	ns.def("change", []Param{
		{Name: "color"},
		{Name: "red", Default: value.NullValue}, {Name: "green", Default: value.NullValue}, {Name: "blue", Default: value.NullValue},
		{Name: "hue", Default: value.NullValue}, {Name: "saturation", Default: value.NullValue}, {Name: "lightness", Default: value.NullValue},
		{Name: "alpha", Default: value.NullValue},
	}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("change", a[0])
		if err != nil {
			return nil, err
		}
		r, g, b, al := c.R, c.G, c.B, c.A
		if !isNull(a[1]) {
			n, _ := wantNumber("change", a[1])
			r = n.Val
		}
		if !isNull(a[2]) {
			n, _ := wantNumber("change", a[2])
			g = n.Val
		}
		if !isNull(a[3]) {
			n, _ := wantNumber("change", a[3])
			b = n.Val
		}
		if !isNull(a[7]) {
			n, _ := wantNumber("change", a[7])
			al = n.Val
		}
		result := value.NewRGBA(r, g, b, al)
		if !isNull(a[4]) || !isNull(a[5]) || !isNull(a[6]) {
			h, s, l, _ := result.HSLA()
			if !isNull(a[4]) {
				n, _ := wantNumber("change", a[4])
				h = n.Val
			}
			if !isNull(a[5]) {
				n, _ := wantNumber("change", a[5])
				s = n.Val / 100
			}
			if !isNull(a[6]) {
				n, _ := wantNumber("change", a[6])
				l = n.Val / 100
			}
			result = value.NewHSLA(h, s, l, al)
		}
		return result, nil
	})

	ns.def("ie-hex-str", []Param{{Name: "color"}}, func(a []value.Value) (value.Value, error) {
		c, err := wantColor("ie-hex-str", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewString(c.IEHexStr(), false), nil
	})

	return ns
}

func rgbaFn(a []value.Value) (value.Value, error) {
	r, err := wantNumber("rgb", a[0])
	if err != nil {
		return nil, err
	}
	g, err := wantNumber("rgb", a[1])
	if err != nil {
		return nil, err
	}
	b, err := wantNumber("rgb", a[2])
	if err != nil {
		return nil, err
	}
	al, err := wantNumber("rgb", a[3])
	if err != nil {
		return nil, err
	}
	alpha := al.Val
	if !al.Unit.IsNone() {
		alpha = al.Val / 100
	}
	return value.NewRGBA(r.Val, g.Val, b.Val, alpha), nil
}

func hslaFn(a []value.Value) (value.Value, error) {
	h, err := wantNumber("hsl", a[0])
	if err != nil {
		return nil, err
	}
	s, err := wantNumber("hsl", a[1])
	if err != nil {
		return nil, err
	}
	l, err := wantNumber("hsl", a[2])
	if err != nil {
		return nil, err
	}
	al, err := wantNumber("hsl", a[3])
	if err != nil {
		return nil, err
	}
	alpha := al.Val
	if !al.Unit.IsNone() {
		alpha = al.Val / 100
	}
	return value.NewHSLA(h.Val, s.Val/100, l.Val/100, alpha), nil
}

func channelFn(name string, get func(*value.Color) float64) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) {
		c, err := wantColor(name, a[0])
		if err != nil {
			return nil, err
		}
		return value.NewUnitless(float64(round255i(get(c)))), nil
	}
}

func channelAlphaFn(name string) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) {
		c, err := wantColor(name, a[0])
		if err != nil {
			return nil, err
		}
		return value.NewUnitless(c.A), nil
	}
}

func round255i(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v + 0.5)
}

func hslShiftFn(name string, delta func(amount float64) (dh, ds, dl float64)) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) {
		c, err := wantColor(name, a[0])
		if err != nil {
			return nil, err
		}
		amt, err := wantNumber(name, a[1])
		if err != nil {
			return nil, err
		}
		dh, ds, dl := delta(amt.Val)
		return c.AdjustHSL(dh, ds, dl, 0), nil
	}
}

func alphaShiftFn(name string, sign float64) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) {
		c, err := wantColor(name, a[0])
		if err != nil {
			return nil, err
		}
		amt, err := wantNumber(name, a[1])
		if err != nil {
			return nil, err
		}
		delta := amt.Val
		if !amt.Unit.IsNone() {
			delta = amt.Val / 100
		}
		return c.AdjustHSL(0, 0, 0, sign*delta), nil
	}
}

// scaleTowardsChannel scales an RGB channel (0-255) toward its max/min by
// a percentage (-100..100), the rgb-channel analogue of Color.ScaleHSL.
func scaleTowardsChannel(v, max, pct float64) float64 {
	if pct >= 0 {
		return v + (max-v)*(pct/100)
	}
	return v + v*(pct/100)
}

// optDelta reads an optional numeric adjust()/scale() component, treating
// an omitted (null-default) argument as zero.
func optDelta(v value.Value) float64 {
	if isNull(v) {
		return 0
	}
	n, ok := v.(*value.Number)
	if !ok {
		return 0
	}
	return n.Val
}
