package selector

// ParentRef marks a `&` simple selector prior to resolution; the selector
// parser emits it in place of an ordinary simple and ResolveParent
// substitutes it away.
const parentRefIdent = "&"

func ParentRef() *Simple { return &Simple{Kind: KindPlaceholder, Ident: parentRefIdent} }

func isParentRef(s *Simple) bool {
	return s.Kind == KindPlaceholder && s.Ident == parentRefIdent
}

// compoundHasParentRef reports whether any simple in c is the `&` marker.
func compoundHasParentRef(c *Compound) bool {
	for _, s := range c.Simples {
		if isParentRef(s) {
			return true
		}
	}
	return false
}

// ResolveParent implements §4.4(a): distribute each child complex
// selector over every parent complex selector (Cartesian), substituting
// `&` and prepending an implicit descendant combinator when a leading
// compound has no explicit parent reference.
func ResolveParent(child, parent *List) *List {
	if parent == nil || parent.IsEmpty() {
		return child
	}
	var out []*Complex
	for _, cc := range child.Complexes {
		if cc.Chroots {
			out = append(out, cc)
			continue
		}
		for _, pc := range parent.Complexes {
			out = append(out, resolveOne(cc, pc))
		}
	}
	return &List{Complexes: out}
}

func resolveOne(child, parent *Complex) *Complex {
	hasParentRef := false
	for _, c := range child.Components {
		if !c.IsCombinator && compoundHasParentRef(c.Compound) {
			hasParentRef = true
			break
		}
	}

	var result []Component
	if !hasParentRef {
		result = append(result, parent.Components...)
		result = append(result, CombinatorComponent(Descendant))
		result = append(result, child.Components...)
		return &Complex{Components: trimLeadingTrailingCombinators(result), Chroots: true}
	}

	for _, c := range child.Components {
		if c.IsCombinator {
			result = append(result, c)
			continue
		}
		if !compoundHasParentRef(c.Compound) {
			result = append(result, c)
			continue
		}
		result = append(result, substituteParentRef(c.Compound, parent)...)
	}
	return &Complex{Components: trimLeadingTrailingCombinators(result), Chroots: true}
}

// substituteParentRef replaces a compound's `&` marker with the parent's
// full component sequence. `&-foo` (a parent with a trailing type/ident
// suffix concatenated to the child's leading compound) concatenates the
// parent's last compound's simples with the child's remaining simples onto
// one compound, legal only when the parent ends in a plain compound with
// no combinator immediately before it.
func substituteParentRef(c *Compound, parent *Complex) []Component {
	var before []*Simple
	var after []*Simple
	seenParent := false
	for _, s := range c.Simples {
		if isParentRef(s) {
			seenParent = true
			continue
		}
		if seenParent {
			after = append(after, s)
		} else {
			before = append(before, s)
		}
	}

	if len(before) == 0 && len(after) == 0 {
		// Bare `&`: splice the parent's components in directly.
		return append([]Component(nil), parent.Components...)
	}

	// `&-foo` / `.foo&`: concatenate onto the parent's last compound.
	lastIdx := -1
	for i := len(parent.Components) - 1; i >= 0; i-- {
		if !parent.Components[i].IsCombinator {
			lastIdx = i
			break
		}
	}
	if lastIdx == -1 {
		return append([]Component(nil), parent.Components...)
	}
	merged := append([]*Simple(nil), parent.Components[lastIdx].Compound.Simples...)
	merged = append(merged, before...)
	merged = append(merged, after...)

	out := append([]Component(nil), parent.Components[:lastIdx]...)
	out = append(out, CompoundComponent(&Compound{Simples: merged}))
	return out
}
