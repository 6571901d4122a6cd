package selector

// IsSuperselectorOf implements §4.4(b): A.isSuperselectorOf(B) is true iff
// every element matching B also matches A, for SelectorLists: every complex
// in B must have some complex in A that is its superselector.
func (a *List) IsSuperselectorOf(b *List) bool {
	for _, bc := range b.Complexes {
		found := false
		for _, ac := range a.Complexes {
			if ac.IsSuperselectorOf(bc) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IsSuperselectorOf implements the ComplexSelector rule of §4.4(b):
// proceed left-to-right; the first compound of a must be a superselector
// of some prefix of b (honoring combinators), recursing on the remainder.
func (a *Complex) IsSuperselectorOf(b *Complex) bool {
	return complexSuperselector(a.Components, b.Components)
}

func complexSuperselector(a, b []Component) bool {
	if len(a) == 0 {
		return true
	}
	if len(b) == 0 {
		return false
	}

	// Find the first compound in a and its combinator context.
	aCompIdx := firstCompoundIndex(a)
	if aCompIdx == -1 {
		return len(a) == 0
	}
	aCompound := a[aCompIdx].Compound

	// Try every position in b where a compound appears, honoring the
	// combinator immediately preceding it (descendant allows skipping
	// ahead; child/sibling/general-sibling require a matching adjacency).
	for i, bc := range b {
		if bc.IsCombinator {
			continue
		}
		if !aCompound.IsSuperselectorOf(bc.Compound) {
			continue
		}
		// Compare the combinator that precedes each compound, when a's
		// compound is not the very first component.
		aPrefixOK := true
		if aCompIdx > 0 {
			aComb := a[aCompIdx-1].Combinator
			if i == 0 {
				aPrefixOK = false
			} else {
				bComb := b[i-1].Combinator
				aPrefixOK = aComb.IsSuperCombinatorOf(bComb) || (aComb == Child && bComb == Child) || aComb == bComb
				if aComb == Child {
					aPrefixOK = bComb == Child
				}
			}
		}
		if !aPrefixOK {
			continue
		}
		if complexSuperselector(a[aCompIdx+1:], b[i+1:]) {
			return true
		}
		// Descendant combinators may also match further down the b
		// sequence (the "some prefix" clause of §4.4b).
		if aCompIdx == 0 || a[aCompIdx-1].Combinator == Descendant {
			continue
		}
		return false
	}
	return false
}

func firstCompoundIndex(comps []Component) int {
	for i, c := range comps {
		if !c.IsCombinator {
			return i
		}
	}
	return -1
}
