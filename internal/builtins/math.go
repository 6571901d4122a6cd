package builtins

import (
	"math"
	"math/rand"

	"github.com/toakleaf/sass.go/internal/value"
)

// mathFuncs implements the `sass:math` module (§4.3). Numeric semantics
// (unit-aware round/ceil/floor/abs, mixed-unit min/max comparing via a
// common unit) are grounded on internal/value/number.go's conversion
// table rather than re-deriving unit handling here.
func mathFuncs() *Namespace {
	ns := newNamespace("sass:math")

	ns.def("abs", []Param{{Name: "number"}}, func(a []value.Value) (value.Value, error) {
		n, err := wantNumber("abs", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewNumber(math.Abs(n.Val), n.Unit), nil
	})
	ns.def("ceil", []Param{{Name: "number"}}, roundingFn("ceil", math.Ceil))
	ns.def("floor", []Param{{Name: "number"}}, roundingFn("floor", math.Floor))
	ns.def("round", []Param{{Name: "number"}}, roundingFn("round", math.Round))

	ns.def("min", []Param{{Name: "numbers", Rest: true}}, func(a []value.Value) (value.Value, error) {
		return minMax("min", a, false)
	})
	ns.def("max", []Param{{Name: "numbers", Rest: true}}, func(a []value.Value) (value.Value, error) {
		return minMax("max", a, true)
	})

	ns.def("percentage", []Param{{Name: "number"}}, func(a []value.Value) (value.Value, error) {
		n, err := wantNumber("percentage", a[0])
		if err != nil {
			return nil, err
		}
		if !n.Unit.IsNone() {
			return nil, argError("percentage", "expected unitless number")
		}
		return value.NewNumber(n.Val*100, value.SingleUnit("%")), nil
	})

	ns.def("sqrt", []Param{{Name: "number"}}, func(a []value.Value) (value.Value, error) {
		n, err := wantNumber("sqrt", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewUnitless(math.Sqrt(n.Val)), nil
	})

	ns.def("pow", []Param{{Name: "base"}, {Name: "exponent"}}, func(a []value.Value) (value.Value, error) {
		base, err := wantNumber("pow", a[0])
		if err != nil {
			return nil, err
		}
		exp, err := wantNumber("pow", a[1])
		if err != nil {
			return nil, err
		}
		return value.NewUnitless(math.Pow(base.Val, exp.Val)), nil
	})

	for _, trig := range []struct {
		name string
		fn   func(float64) float64
	}{
		{"sin", math.Sin}, {"cos", math.Cos}, {"tan", math.Tan},
		{"asin", math.Asin}, {"acos", math.Acos}, {"atan", math.Atan},
	} {
		fn := trig.fn
		ns.def(trig.name, []Param{{Name: "number"}}, func(a []value.Value) (value.Value, error) {
			n, err := wantNumber(trig.name, a[0])
			if err != nil {
				return nil, err
			}
			return value.NewUnitless(fn(n.Val)), nil
		})
	}

	ns.def("log", []Param{{Name: "number"}, {Name: "base", Default: value.NullValue}}, func(a []value.Value) (value.Value, error) {
		n, err := wantNumber("log", a[0])
		if err != nil {
			return nil, err
		}
		if isNull(a[1]) {
			return value.NewUnitless(math.Log(n.Val)), nil
		}
		base, err := wantNumber("log", a[1])
		if err != nil {
			return nil, err
		}
		return value.NewUnitless(math.Log(n.Val) / math.Log(base.Val)), nil
	})

	ns.def("random", []Param{{Name: "limit", Default: value.NullValue}}, func(a []value.Value) (value.Value, error) {
		if isNull(a[0]) {
			return value.NewUnitless(rand.Float64()), nil
		}
		n, err := wantNumber("random", a[0])
		if err != nil {
			return nil, err
		}
		limit := int64(n.Val)
		if limit < 1 {
			return nil, argError("random", "limit must be greater than 0")
		}
		return value.NewUnitless(float64(rand.Int63n(limit) + 1)), nil
	})

	ns.def("div", []Param{{Name: "dividend"}, {Name: "divisor"}}, func(a []value.Value) (value.Value, error) {
		x, err := wantNumber("div", a[0])
		if err != nil {
			return nil, err
		}
		y, err := wantNumber("div", a[1])
		if err != nil {
			return nil, err
		}
		return x.Div(y), nil
	})

	ns.def("unit", []Param{{Name: "number"}}, func(a []value.Value) (value.Value, error) {
		n, err := wantNumber("unit", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewString(n.Unit.String(), true), nil
	})

	ns.def("is-unitless", []Param{{Name: "number"}}, func(a []value.Value) (value.Value, error) {
		n, err := wantNumber("is-unitless", a[0])
		if err != nil {
			return nil, err
		}
		return boolNum(n.Unit.IsNone()), nil
	})

	ns.def("compatible", []Param{{Name: "number1"}, {Name: "number2"}}, func(a []value.Value) (value.Value, error) {
		x, err := wantNumber("compatible", a[0])
		if err != nil {
			return nil, err
		}
		y, err := wantNumber("compatible", a[1])
		if err != nil {
			return nil, err
		}
		return boolNum(x.Unit.IsCompatible(y.Unit)), nil
	})

	return ns
}

func roundingFn(name string, fn func(float64) float64) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) {
		n, err := wantNumber(name, a[0])
		if err != nil {
			return nil, err
		}
		return value.NewNumber(fn(n.Val), n.Unit), nil
	}
}

func minMax(name string, args []value.Value, wantMax bool) (value.Value, error) {
	if len(args) == 0 {
		return nil, argError(name, "at least one argument required")
	}
	best, err := wantNumber(name, args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := wantNumber(name, a)
		if err != nil {
			return nil, err
		}
		cmp, err := best.Compare(n)
		if err != nil {
			return nil, err
		}
		if (wantMax && cmp < 0) || (!wantMax && cmp > 0) {
			best = n
		}
	}
	return best, nil
}
