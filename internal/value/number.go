package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// nearEqual is the tolerance `==` and relational comparisons use once
// numbers are converted to a common unit, per spec.md §8.
const nearEqual = 1e-11

// Number is a SassScript number: a float64 value plus a Unit, preserving
// the exact slash representation needed for `font: 12px/16px` shorthand
// round-tripping (AsSlash).
type Number struct {
	Val  float64
	Unit Unit
	// AsSlash, when non-nil, is the original numerator/denominator pair a
	// `/` expression produced before it was (possibly) simplified to a
	// division; printing prefers this over Val so `12px/16px` survives
	// unevaluated contexts, matching the teacher's dimension-in-shorthand
	// handling in less/math.go.
	AsSlash *SlashPair
}

type SlashPair struct {
	Num, Den *Number
}

func NewNumber(v float64, u Unit) *Number {
	return &Number{Val: v, Unit: u}
}

func NewUnitless(v float64) *Number { return &Number{Val: v, Unit: NoUnit()} }

func (n *Number) TypeName() string { return "number" }
func (n *Number) Truthy() bool     { return true }

func (n *Number) Inspect() string { return n.inspectPrecision(10) }

func (n *Number) InspectPrecision(precision int) string { return n.inspectPrecision(precision) }

func (n *Number) inspectPrecision(precision int) string {
	if n.AsSlash != nil {
		return n.AsSlash.Num.inspectPrecision(precision) + "/" + n.AsSlash.Den.inspectPrecision(precision)
	}
	if math.IsNaN(n.Val) {
		return "NaN"
	}
	if math.IsInf(n.Val, 1) {
		return "Infinity"
	}
	if math.IsInf(n.Val, -1) {
		return "-Infinity"
	}
	return formatFloat(n.Val, precision) + n.Unit.String()
}

func formatFloat(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// EqualTo is `==` between two numbers: convert to a common unit, then
// compare within nearEqual tolerance. Incompatible units are unequal
// rather than erroring (equality never throws).
func (n *Number) EqualTo(o *Number) bool {
	if !n.Unit.IsCompatible(o.Unit) {
		return false
	}
	av, bv := n.canonicalValue(), o.canonicalValue()
	return math.Abs(av-bv) <= nearEqual
}

func (n *Number) canonicalValue() float64 {
	factor, ok := n.Unit.ConversionFactor(n.Unit.Canonical())
	if !ok {
		return n.Val
	}
	return n.Val * factor
}

// Compare implements `<`,`<=`,`>`,`>=`: converts to a common unit first and
// returns an error for incompatible unit families (IncompatibleUnits, §7).
func (n *Number) Compare(o *Number) (int, error) {
	if !n.Unit.IsCompatible(o.Unit) {
		return 0, &IncompatibleUnitsError{A: n.Unit, B: o.Unit}
	}
	av, bv := n.canonicalValue(), o.canonicalValue()
	switch {
	case math.Abs(av-bv) <= nearEqual:
		return 0, nil
	case av < bv:
		return -1, nil
	default:
		return 1, nil
	}
}

type IncompatibleUnitsError struct{ A, B Unit }

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("incompatible units %s and %s", e.A.String(), e.B.String())
}

// Add implements binary `+` on numbers: same-family units convert to the
// lhs's unit before adding; unitless + unit-bearing keeps the unit.
func (n *Number) Add(o *Number) (*Number, error) {
	return n.additive(o, func(a, b float64) float64 { return a + b })
}

func (n *Number) Sub(o *Number) (*Number, error) {
	return n.additive(o, func(a, b float64) float64 { return a - b })
}

func (n *Number) additive(o *Number, op func(a, b float64) float64) (*Number, error) {
	if n.Unit.IsNone() {
		return &Number{Val: op(n.Val, o.Val), Unit: o.Unit}, nil
	}
	if o.Unit.IsNone() {
		return &Number{Val: op(n.Val, o.Val), Unit: n.Unit}, nil
	}
	if !n.Unit.IsCompatible(o.Unit) {
		return nil, &IncompatibleUnitsError{A: n.Unit, B: o.Unit}
	}
	factor, _ := o.Unit.ConversionFactor(n.Unit)
	return &Number{Val: op(n.Val, o.Val*factor), Unit: n.Unit}, nil
}

// Mul implements `*`: units multiply (numerators/denominators concatenate
// and cancel), never requiring compatibility.
func (n *Number) Mul(o *Number) *Number {
	return &Number{Val: n.Val * o.Val, Unit: n.Unit.Mul(o.Unit)}
}

// Div implements `/`: units divide (subtract numerator/denominator pairs).
// Division by zero yields a signed infinity per spec.md §8's boundary
// behaviour, never an error.
func (n *Number) Div(o *Number) *Number {
	return &Number{Val: n.Val / o.Val, Unit: n.Unit.Div(o.Unit)}
}

// Mod implements `%`, defined only between numbers of compatible (or
// absent) units; result keeps lhs's unit, matching Go's math.Mod sign
// convention (result takes the sign of the dividend, as CSS `%` does).
func (n *Number) Mod(o *Number) (*Number, error) {
	if !n.Unit.IsNone() && !o.Unit.IsNone() && !n.Unit.IsCompatible(o.Unit) {
		return nil, &IncompatibleUnitsError{A: n.Unit, B: o.Unit}
	}
	factor := 1.0
	if !o.Unit.IsNone() && !n.Unit.IsNone() {
		factor, _ = o.Unit.ConversionFactor(n.Unit)
	}
	return &Number{Val: math.Mod(n.Val, o.Val*factor), Unit: n.Unit}, nil
}

func (n *Number) Neg() *Number { return &Number{Val: -n.Val, Unit: n.Unit} }

// ConvertTo returns n expressed in target's unit, for builtins like
// math.unit()-aware comparisons; reports false if the families differ.
func (n *Number) ConvertTo(target Unit) (*Number, bool) {
	factor, ok := n.Unit.ConversionFactor(target)
	if !ok {
		return nil, false
	}
	return &Number{Val: n.Val * factor, Unit: target}, true
}
