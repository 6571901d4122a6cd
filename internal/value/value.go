// Package value implements SassScript's fully-evaluated value family (§3
// "Values"). Values are immutable once constructed — every transformation
// returns a new Value, mirroring the teacher's *Node value types
// (less/unit.go, less/color_blending.go) but without the teacher's
// map[string]any dynamic typing: each variant is its own concrete Go type
// satisfying the Value interface, matched with type switches the way
// spec.md §9 asks tagged sums to be modeled.
package value

import "fmt"

// Value is satisfied by every fully-evaluated SassScript value: Number,
// Color, String, Boolean, Null, List, Map, Function, ArgList.
type Value interface {
	// TypeName is the name meta.type-of() reports.
	TypeName() string
	// Truthy implements Sass truthiness: everything except false and null
	// is truthy, including 0 and the empty string (§4.3).
	Truthy() bool
	// Inspect renders the value the way meta.inspect()/@debug do: a
	// SassScript literal that would parse back to an equal value, modulo
	// the documented exceptions in spec.md's round-trip property.
	Inspect() string
}

// Null is Sass's singleton null value.
type Null struct{}

var NullValue = Null{}

func (Null) TypeName() string  { return "null" }
func (Null) Truthy() bool      { return false }
func (Null) Inspect() string   { return "null" }

// Boolean is a Sass true/false.
type Boolean bool

func (b Boolean) TypeName() string { return "bool" }
func (b Boolean) Truthy() bool     { return bool(b) }
func (b Boolean) Inspect() string {
	if b {
		return "true"
	}
	return "false"
}

// Separator is the list/map-entry join token recorded on List (§3).
type Separator int

const (
	SepUndecided Separator = iota
	SepComma
	SepSpace
	SepSlash
)

func (s Separator) Text() string {
	switch s {
	case SepComma:
		return ", "
	case SepSpace:
		return " "
	case SepSlash:
		return "/"
	default:
		return " "
	}
}

// TypeMismatchError is returned by operators/builtins when a Value doesn't
// satisfy the expected shape; internal/evaluator turns it into a
// sasserr.CompileError with the call-site span attached.
type TypeMismatchError struct {
	Expected string
	Got      Value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s but got %s (%s)", e.Expected, e.Got.Inspect(), e.Got.TypeName())
}

// Equal implements SassScript's `==`: structural equality, with lists
// additionally requiring matching separator and brackets (§4.3).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.EqualTo(bv)
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Null:
		_, ok := b.(Null)
		return ok
	case *SassString:
		bv, ok := b.(*SassString)
		return ok && av.Text == bv.Text
	case *Color:
		bv, ok := b.(*Color)
		return ok && av.Equal(bv)
	case *List:
		bv, ok := b.(*List)
		if !ok {
			// A single unbracketed element is equal to a 1-item list in
			// Sass's loose comparison, but `==` itself stays structural:
			// only List meets List here.
			return false
		}
		if av.Separator != bv.Separator || av.Brackets != bv.Brackets || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for _, e := range av.Entries {
			other, found := bv.Get(e.Key)
			if !found || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
