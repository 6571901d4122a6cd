package value

import (
	"fmt"
	"math"
	"strings"
)

// Color stores channels as the RGBA triple the way the teacher's
// less/color_blending.go does (Color.RGB []float64, Color.Alpha float64),
// plus the original textual form (a CSS named color, or the hsl()/rgba()
// call) so re-serialization prefers the author's spelling when possible,
// matching the round-trip property in spec.md §8.
type Color struct {
	R, G, B float64 // 0-255
	A       float64 // 0-1
	// Name, if non-empty, is the CSS named color this value was
	// constructed from (e.g. "red"); Inspect prints it in place of the
	// hex or rgba() form.
	Name string
	// FromHSL marks the color as constructed via NewHSLA.
	FromHSL bool
}

func NewRGBA(r, g, b, a float64) *Color {
	return &Color{R: clamp255(r), G: clamp255(g), B: clamp255(b), A: clampAlpha(a)}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

func (c *Color) TypeName() string { return "color" }
func (c *Color) Truthy() bool     { return true }

func (c *Color) Equal(o *Color) bool {
	return math.Abs(c.R-o.R) < 0.5 && math.Abs(c.G-o.G) < 0.5 &&
		math.Abs(c.B-o.B) < 0.5 && math.Abs(c.A-o.A) < 1e-6
}

// Inspect renders the shortest CSS-legal form: the original name if one was
// recorded, else a hex triplet for opaque colors, else rgb()/rgba().
func (c *Color) Inspect() string {
	if c.Name != "" {
		return c.Name
	}
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", round255(c.R), round255(c.G), round255(c.B))
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", round255(c.R), round255(c.G), round255(c.B), formatFloat(c.A, 10))
}

func round255(v float64) int {
	return int(math.Round(v))
}

// CompressedHex is a compressed-style serialization: a 3-digit
// hex form when every channel is a doublet (§4.5), else the 6-digit form,
// else (for alpha<1) rgba().
func (c *Color) CompressedHex() string {
	if c.A < 1 {
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", round255(c.R), round255(c.G), round255(c.B), formatFloat(c.A, 10))
	}
	r, g, b := round255(c.R), round255(c.G), round255(c.B)
	if r%17 == 0 && g%17 == 0 && b%17 == 0 {
		return fmt.Sprintf("#%x%x%x", r/17, g/17, b/17)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HSLA returns the color's hue [0,360), saturation/lightness [0,1].
func (c *Color) HSLA() (h, s, l, a float64) {
	r, g, b := c.R/255, c.G/255, c.B/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l, c.A
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l, c.A
}

// NewHSLA constructs a Color from hue (degrees), saturation/lightness/alpha
// in [0,1], mirroring CSS hsl()/hsla().
func NewHSLA(h, s, l, a float64) *Color {
	h = math.Mod(math.Mod(h, 360)+360, 360) / 360
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return &Color{R: r * 255, G: g * 255, B: b * 255, A: clampAlpha(a), FromHSL: true}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// Mix blends c with o by weight (0-100, c's share), per the standard
// Sass color.mix semantics, which also interpolates alpha.
func Mix(c, o *Color, weight float64) *Color {
	w := weight/100*2 - 1
	alphaDelta := c.A - o.A
	var w1 float64
	if w*alphaDelta == -1 {
		w1 = w
	} else {
		w1 = (w + alphaDelta) / (1 + w*alphaDelta)
	}
	w1 = (w1 + 1) / 2
	w2 := 1 - w1
	r := c.R*w1 + o.R*w2
	g := c.G*w1 + o.G*w2
	b := c.B*w1 + o.B*w2
	a := c.A*(weight/100) + o.A*(1-weight/100)
	return NewRGBA(r, g, b, a)
}

func (c *Color) Grayscale() *Color {
	h, _, l, a := c.HSLA()
	return NewHSLA(h, 0, l, a)
}

func (c *Color) Invert(weight float64) *Color {
	inv := NewRGBA(255-c.R, 255-c.G, 255-c.B, c.A)
	if weight == 100 {
		return inv
	}
	return Mix(inv, c, weight)
}

func (c *Color) Complement() *Color {
	h, s, l, a := c.HSLA()
	return NewHSLA(h+180, s, l, a)
}

// AdjustHSL shifts the hue/saturation/lightness by deltas (degrees / -1..1)
// and the alpha by an additive delta, implementing color.adjust's hsl args.
func (c *Color) AdjustHSL(dh, ds, dl, da float64) *Color {
	h, s, l, a := c.HSLA()
	s = clampUnit(s + ds)
	l = clampUnit(l + dl)
	return NewHSLA(h+dh, s, l, clampAlpha(a+da))
}

// ScaleHSL scales saturation/lightness toward their max/min by a percentage
// (-100..100), implementing color.scale.
func (c *Color) ScaleHSL(ds, dl, dAlpha float64) *Color {
	h, s, l, a := c.HSLA()
	s = scaleTowards(s, ds)
	l = scaleTowards(l, dl)
	a = scaleTowards(a, dAlpha)
	return NewHSLA(h, s, l, a)
}

func scaleTowards(v, pct float64) float64 {
	if pct >= 0 {
		return v + (1-v)*(pct/100)
	}
	return v + v*(pct/100)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (c *Color) IEHexStr() string {
	return strings.ToUpper(fmt.Sprintf("#%02x%02x%02x%02x", round255(c.A*255), round255(c.R), round255(c.G), round255(c.B)))
}

// NamedColors is the CSS named-color table NamedColor looks names up in.
var NamedColors = map[string][3]int{
	"black": {0, 0, 0}, "silver": {192, 192, 192}, "gray": {128, 128, 128},
	"white": {255, 255, 255}, "maroon": {128, 0, 0}, "red": {255, 0, 0},
	"purple": {128, 0, 128}, "fuchsia": {255, 0, 255}, "green": {0, 128, 0},
	"lime": {0, 255, 0}, "olive": {128, 128, 0}, "yellow": {255, 255, 0},
	"navy": {0, 0, 128}, "blue": {0, 0, 255}, "teal": {0, 128, 128},
	"aqua": {0, 255, 255}, "orange": {255, 165, 0}, "transparent": {0, 0, 0},
	"rebeccapurple": {102, 51, 153}, "pink": {255, 192, 203}, "tomato": {255, 99, 71},
	"gold": {255, 215, 0}, "indigo": {75, 0, 130}, "violet": {238, 130, 238},
	"salmon": {250, 128, 114}, "khaki": {240, 230, 140}, "coral": {255, 127, 80},
	"chocolate": {210, 105, 30}, "crimson": {220, 20, 60}, "darkgreen": {0, 100, 0},
	"darkblue": {0, 0, 139}, "lightblue": {173, 216, 230}, "lightgreen": {144, 238, 144},
	"skyblue": {135, 206, 235}, "slategray": {112, 128, 144}, "steelblue": {70, 130, 180},
}

func NamedColor(name string) (*Color, bool) {
	rgb, ok := NamedColors[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	a := 1.0
	if strings.ToLower(name) == "transparent" {
		a = 0
	}
	return &Color{R: float64(rgb[0]), G: float64(rgb[1]), B: float64(rgb[2]), A: a, Name: strings.ToLower(name)}, true
}
