package value

import (
	"sort"
	"strings"
)

// Unit tracks a Number's numerator/denominator unit lists, mirroring the
// teacher's less/unit.go Unit type (Numerator/Denominator string slices,
// sorted so two Units built from the same multiset compare equal).
type Unit struct {
	Numerators   []string
	Denominators []string
}

func NoUnit() Unit { return Unit{} }

func SingleUnit(u string) Unit {
	if u == "" {
		return Unit{}
	}
	return Unit{Numerators: []string{u}}
}

func NewUnit(numerators, denominators []string) Unit {
	num := append([]string(nil), numerators...)
	den := append([]string(nil), denominators...)
	sort.Strings(num)
	sort.Strings(den)
	return Unit{Numerators: num, Denominators: den}
}

func (u Unit) IsNone() bool { return len(u.Numerators) == 0 && len(u.Denominators) == 0 }

// IsCompatible reports whether u and other denote the same physical
// quantity family (length, angle, time, frequency, resolution) so that
// `+`/`-`/relational comparisons may proceed after conversion.
func (u Unit) IsCompatible(other Unit) bool {
	if u.IsNone() || other.IsNone() {
		return u.IsNone() && other.IsNone()
	}
	if len(u.Numerators) != 1 || len(u.Denominators) != 0 ||
		len(other.Numerators) != 1 || len(other.Denominators) != 0 {
		// Compound units must match exactly; conversion tables only cover
		// single numerator units (the common case: px, deg, s, Hz, dpi).
		return u.String() == other.String()
	}
	fa, ok1 := unitFamily[strings.ToLower(u.Numerators[0])]
	fb, ok2 := unitFamily[strings.ToLower(other.Numerators[0])]
	return ok1 && ok2 && fa == fb
}

// ConversionFactor returns the multiplier to turn a value in u into the
// equivalent value in target, when both are single, convertible units.
func (u Unit) ConversionFactor(target Unit) (float64, bool) {
	if u.String() == target.String() {
		return 1, true
	}
	if len(u.Numerators) != 1 || len(target.Numerators) != 1 || len(u.Denominators) != 0 || len(target.Denominators) != 0 {
		return 0, false
	}
	from := strings.ToLower(u.Numerators[0])
	to := strings.ToLower(target.Numerators[0])
	fa, ok1 := unitFamily[from]
	fb, ok2 := unitFamily[to]
	if !ok1 || !ok2 || fa != fb {
		return 0, false
	}
	baseFrom, ok1 := conversions[fa][from]
	baseTo, ok2 := conversions[fa][to]
	if !ok1 || !ok2 {
		return 0, false
	}
	return baseFrom / baseTo, true
}

// Canonical returns u converted to the family's base unit, used so that
// equality and relational comparisons are unit-representation-independent.
func (u Unit) Canonical() Unit {
	if len(u.Numerators) != 1 || len(u.Denominators) != 0 {
		return u
	}
	name := strings.ToLower(u.Numerators[0])
	fam, ok := unitFamily[name]
	if !ok {
		return u
	}
	return SingleUnit(baseUnit[fam])
}

// Mul concatenates numerators/denominators and cancels matching pairs,
// implementing `*`'s unit algebra (§4.3).
func (u Unit) Mul(other Unit) Unit {
	num := append(append([]string(nil), u.Numerators...), other.Numerators...)
	den := append(append([]string(nil), u.Denominators...), other.Denominators...)
	return cancel(num, den)
}

// Div subtracts other's numerator/denominator pairs from u's, implementing
// `/`'s unit algebra.
func (u Unit) Div(other Unit) Unit {
	num := append(append([]string(nil), u.Numerators...), other.Denominators...)
	den := append(append([]string(nil), u.Denominators...), other.Numerators...)
	return cancel(num, den)
}

func cancel(num, den []string) Unit {
	for i := 0; i < len(num); i++ {
		for j := 0; j < len(den); j++ {
			if num[i] == den[j] {
				num = append(num[:i], num[i+1:]...)
				den = append(den[:j], den[j+1:]...)
				i--
				break
			}
		}
	}
	return NewUnit(num, den)
}

func (u Unit) String() string {
	if len(u.Numerators) == 0 {
		if len(u.Denominators) == 0 {
			return ""
		}
		return "1/" + strings.Join(u.Denominators, "*")
	}
	s := strings.Join(u.Numerators, "*")
	if len(u.Denominators) > 0 {
		s += "/" + strings.Join(u.Denominators, "*")
	}
	return s
}

// Families, grounded on spec.md §4.3's named unit families.
const (
	famLength = iota
	famAngle
	famTime
	famFrequency
	famResolution
)

var unitFamily = map[string]int{
	"px": famLength, "cm": famLength, "mm": famLength, "q": famLength,
	"in": famLength, "pt": famLength, "pc": famLength,
	"deg": famAngle, "grad": famAngle, "rad": famAngle, "turn": famAngle,
	"s": famTime, "ms": famTime,
	"hz": famFrequency, "khz": famFrequency,
	"dpi": famResolution, "dpcm": famResolution, "dppx": famResolution,
}

var baseUnit = map[int]string{
	famLength: "px", famAngle: "deg", famTime: "s", famFrequency: "hz", famResolution: "dppx",
}

// conversions[family][unit] = how many base units one `unit` is worth.
var conversions = map[int]map[string]float64{
	famLength: {
		"px": 1, "cm": 96.0 / 2.54, "mm": 96.0 / 25.4, "q": 96.0 / 101.6,
		"in": 96, "pt": 96.0 / 72.0, "pc": 16,
	},
	famAngle: {
		"deg": 1, "grad": 0.9, "rad": 180 / 3.14159265358979323846, "turn": 360,
	},
	famTime: {
		"s": 1, "ms": 0.001,
	},
	famFrequency: {
		"hz": 1, "khz": 1000,
	},
	famResolution: {
		"dpi": 1, "dpcm": 1 / 2.54, "dppx": 96,
	},
}
