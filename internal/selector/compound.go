package selector

import "strings"

// Compound is a CompoundSelector: an ordered, non-empty sequence of Simple
// selectors that must all match one element (§3). Invariant 4: a Type
// selector, if present, is first — enforced by NewCompound's sort rather
// than by callers.
type Compound struct {
	Simples       []*Simple
	HasRealParent bool // this compound contained `&`
	PostLineBreak bool
}

// NewCompound orders simples so a leading Type/Universal comes first,
// matching invariant 4 and the ordering unify's result also follows.
func NewCompound(simples []*Simple) *Compound {
	ordered := reorderCompound(simples)
	return &Compound{Simples: ordered}
}

func reorderCompound(simples []*Simple) []*Simple {
	var typeSel []*Simple
	var rest []*Simple
	for _, s := range simples {
		if s.Kind == KindType || s.Kind == KindUniversal {
			typeSel = append(typeSel, s)
		} else {
			rest = append(rest, s)
		}
	}
	return append(typeSel, rest...)
}

func (c *Compound) String() string {
	var b strings.Builder
	for _, s := range c.Simples {
		b.WriteString(s.String())
	}
	return b.String()
}

func (c *Compound) IsEmpty() bool { return len(c.Simples) == 0 }

// ContainsPlaceholder reports whether any simple in this compound is a
// %placeholder, which marks the compound as one that never emits
// (§4.5 "Placeholder removal").
func (c *Compound) ContainsPlaceholder() bool {
	for _, s := range c.Simples {
		if s.Kind == KindPlaceholder {
			return true
		}
	}
	return false
}

// WithoutPlaceholders returns a copy with every %placeholder simple
// stripped, or nil if nothing would remain.
func (c *Compound) WithoutPlaceholders() *Compound {
	out := make([]*Simple, 0, len(c.Simples))
	for _, s := range c.Simples {
		if s.Kind != KindPlaceholder {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &Compound{Simples: out, HasRealParent: c.HasRealParent, PostLineBreak: c.PostLineBreak}
}

// Equal is structural equality ignoring order-insensitive Simple identity,
// but since NewCompound canonicalizes order, a plain slice compare suffices
// for selectors built through this package.
func (c *Compound) Equal(o *Compound) bool {
	if len(c.Simples) != len(o.Simples) {
		return false
	}
	for i, s := range c.Simples {
		if !s.Equal(o.Simples[i]) {
			return false
		}
	}
	return true
}

// Unify implements §4.4(c) for compounds: unify the pairwise-unifiable
// simples and place the result Type/Universal first, then the rest in
// first-then-second order (deduplicated).
func (c *Compound) Unify(o *Compound) *Compound {
	result := append([]*Simple(nil), c.Simples...)
	for _, os := range o.Simples {
		merged := false
		for i, rs := range result {
			if rs.Kind == os.Kind && (rs.Kind == KindType || rs.Kind == KindUniversal) {
				u := rs.Unify(os)
				if u == nil {
					return nil
				}
				result[i] = u
				merged = true
				break
			}
			if rs.Equal(os) {
				merged = true
				break
			}
		}
		if !merged {
			result = append(result, os)
		}
	}
	return NewCompound(result)
}

// IsSuperselectorOf implements §4.4(c)'s compound rule: every simple in c
// must be matched by some simple in other (or be subsumed by a selector
// pseudo's inner list, handled by the caller for :is/:not/etc).
func (c *Compound) IsSuperselectorOf(other *Compound) bool {
	for _, s := range c.Simples {
		if !compoundContainsSimple(other, s) {
			return false
		}
	}
	return true
}

func compoundContainsSimple(c *Compound, target *Simple) bool {
	for _, s := range c.Simples {
		if simpleSubsumes(s, target) {
			return true
		}
	}
	// A bare universal selector is matched by anything with a type/none.
	if target.Kind == KindUniversal {
		return true
	}
	return false
}

// simpleSubsumes is true when s, present on an element, guarantees target
// also matches — identity for most kinds, with the §4.4(c) special cases
// for :is/:not/:matches/:has acting as a superselector test against their
// inner list.
func simpleSubsumes(s, target *Simple) bool {
	if s.Equal(target) {
		return true
	}
	if s.Kind == KindPseudo && target.Kind == KindPseudo && strings.EqualFold(s.PseudoName, target.PseudoName) {
		if s.PseudoInner != nil && target.PseudoInner != nil {
			return s.PseudoInner.IsSuperselectorOf(target.PseudoInner)
		}
	}
	return false
}
