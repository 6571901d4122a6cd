package selector

import "strings"

// Combinator is one of the four §3 combinators.
type Combinator int

const (
	Descendant Combinator = iota // implicit, whitespace
	Child                        // >
	Sibling                      // + (adjacent)
	GeneralSibling               // ~
)

func (c Combinator) String() string {
	switch c {
	case Child:
		return ">"
	case Sibling:
		return "+"
	case GeneralSibling:
		return "~"
	default:
		return ""
	}
}

// IsSuperCombinatorOf reports whether a selector joined by `c` matches at
// least everything a selector joined by `other` would, given equal
// adjoining compounds (§4.4b: `~` is a superselector of `+`).
func (c Combinator) IsSuperCombinatorOf(other Combinator) bool {
	if c == other {
		return true
	}
	return c == GeneralSibling && other == Sibling
}

// Component is one element of a ComplexSelector's sequence: either a
// Compound or a Combinator, never both (IsCombinator discriminates, matching
// the tagged-sum style used throughout this package).
type Component struct {
	IsCombinator bool
	Compound     *Compound
	Combinator   Combinator
}

func CompoundComponent(c *Compound) Component { return Component{Compound: c} }
func CombinatorComponent(c Combinator) Component {
	return Component{IsCombinator: true, Combinator: c}
}

// Complex is a ComplexSelector: components joined by combinators.
// Invariant 3 (§3): after parsing, a resolved complex selector never
// begins or ends with a bare Combinator.
type Complex struct {
	Components   []Component
	PreLineFeed  bool
	Chroots      bool // parent-resolution has already run on this selector
}

func NewComplex(components []Component) *Complex {
	return &Complex{Components: components}
}

func (x *Complex) String() string {
	var b strings.Builder
	for i, c := range x.Components {
		if c.IsCombinator {
			if c.Combinator == Descendant {
				b.WriteString(" ")
			} else {
				b.WriteString(" " + c.Combinator.String() + " ")
			}
		} else {
			if i > 0 && !x.Components[i-1].IsCombinator {
				b.WriteString(" ")
			}
			b.WriteString(c.Compound.String())
		}
	}
	return strings.TrimSpace(b.String())
}

func (x *Complex) IsEmpty() bool { return len(x.Components) == 0 }

func (x *Complex) LastCompound() *Compound {
	for i := len(x.Components) - 1; i >= 0; i-- {
		if !x.Components[i].IsCombinator {
			return x.Components[i].Compound
		}
	}
	return nil
}

func (x *Complex) FirstCompound() *Compound {
	for _, c := range x.Components {
		if !c.IsCombinator {
			return c.Compound
		}
	}
	return nil
}

// Specificity is the three-tuple (ids, classesAttrsPseudos, typesPseudoEls)
// compared lexicographically, per the GLOSSARY.
type Specificity struct {
	IDs, Classes, Types int
}

func (s Specificity) Less(o Specificity) bool {
	if s.IDs != o.IDs {
		return s.IDs < o.IDs
	}
	if s.Classes != o.Classes {
		return s.Classes < o.Classes
	}
	return s.Types < o.Types
}

func (s Specificity) GreaterOrEqual(o Specificity) bool { return !s.Less(o) }

func (x *Complex) Specificity() Specificity {
	var s Specificity
	for _, c := range x.Components {
		if c.IsCombinator {
			continue
		}
		for _, simple := range c.Compound.Simples {
			switch simple.Kind {
			case KindID:
				s.IDs++
			case KindClass, KindAttribute, KindPlaceholder:
				s.Classes++
			case KindPseudo:
				if simple.PseudoElement {
					s.Types++
				} else {
					s.Classes++
				}
				if simple.PseudoInner != nil {
					s = maxSpecInner(s, simple.PseudoInner)
				}
			case KindType:
				s.Types++
			}
		}
	}
	return s
}

func maxSpecInner(base Specificity, inner *List) Specificity {
	best := base
	for _, c := range inner.Complexes {
		cand := c.Specificity()
		cand.IDs += base.IDs
		cand.Classes += base.Classes
		cand.Types += base.Types
		if best.Less(cand) {
			best = cand
		}
	}
	return best
}

// Equal is structural equality up to the normalizer's own component order
// (spec.md §8: A.isSuperselectorOf(B) && B.isSuperselectorOf(A) => A == B).
func (x *Complex) Equal(o *Complex) bool {
	if len(x.Components) != len(o.Components) {
		return false
	}
	for i, c := range x.Components {
		oc := o.Components[i]
		if c.IsCombinator != oc.IsCombinator {
			return false
		}
		if c.IsCombinator {
			if c.Combinator != oc.Combinator {
				return false
			}
		} else if !c.Compound.Equal(oc.Compound) {
			return false
		}
	}
	return true
}
