package selector

// Extension records one `@extend target` declared inside a rule whose
// resolved selector contains extender, per §4.4(e).
type Extension struct {
	Extender     *Complex
	Target       *Simple
	Specificity  Specificity
	IsOptional   bool
	MediaContext int // index into the evaluator's media-stack snapshot; -1 = top level
}

// Extender is the fixed-point extension engine: register extensions, then
// expand every style rule's selector list by unioning in the extenders'
// weave-produced alternatives until no new selectors appear.
//
// Grounded on original_source/src/extender.cpp's addExtension /
// _extendExistingStyleRule: targets are processed in registration order,
// one pass per round, until a round produces no new complex selectors.
type Extender struct {
	extensions map[string][]*Extension // target simple's String() -> extensions
	used       map[string]bool         // which targets were ever matched
	originals  map[string]bool         // selectors present verbatim in some rule's source (never trimmed)
}

func NewExtender() *Extender {
	return &Extender{
		extensions: make(map[string][]*Extension),
		used:       make(map[string]bool),
		originals:  make(map[string]bool),
	}
}

func (e *Extender) Register(ext *Extension) {
	key := ext.Target.String()
	e.extensions[key] = append(e.extensions[key], ext)
}

func (e *Extender) MarkOriginal(c *Complex) { e.originals[c.String()] = true }

// UnmatchedRequired returns the extensions that were never applied and
// were not marked `!optional`: an error case per §4.4's Failure semantics.
func (e *Extender) UnmatchedRequired() []*Extension {
	var out []*Extension
	for key, list := range e.extensions {
		if e.used[key] {
			continue
		}
		for _, ext := range list {
			if !ext.IsOptional {
				out = append(out, ext)
			}
		}
	}
	return out
}

// Apply runs the fixed-point loop of §4.4(e) over one rule's selector
// list, returning the extended list (including the originals).
func (e *Extender) Apply(list *List) *List {
	if len(e.extensions) == 0 {
		return list
	}
	current := list.Clone()
	for {
		// Seed `seen`/`next` with every complex already in this round's
		// list before computing any extensions, so that an extra whose
		// text matches a *later* member of current.Complexes is correctly
		// recognized as already-present instead of tripping `grew` just
		// because of scan order — the earlier (add-as-you-go) version
		// compared each extra only against what had been appended so far,
		// which meant an original member occurring later in the list was
		// invisible to an earlier member's extendOnce call, so the same
		// extension looked "new" every round and the loop never converged.
		grew := false
		seen := make(map[string]bool, len(current.Complexes))
		next := make([]*Complex, 0, len(current.Complexes))
		for _, c := range current.Complexes {
			key := c.String()
			if !seen[key] {
				seen[key] = true
				next = append(next, c)
			}
		}
		for _, complex := range current.Complexes {
			for _, extra := range e.extendOnce(complex) {
				key := extra.String()
				if !seen[key] {
					seen[key] = true
					grew = true
					next = append(next, extra)
				}
			}
		}
		current = &List{Complexes: next}
		if !grew {
			return current
		}
	}
}

// extendOnce produces every alternative complex selector obtained by
// replacing one compound's matched simple with an extender, woven against
// the rest of the compound's simples and the complex's surrounding
// components.
func (e *Extender) extendOnce(c *Complex) []*Complex {
	var results []*Complex
	for ci, comp := range c.Components {
		if comp.IsCombinator {
			continue
		}
		for _, s := range comp.Compound.Simples {
			exts, ok := e.extensions[s.String()]
			if !ok {
				continue
			}
			for _, ext := range exts {
				e.used[s.String()] = true
				results = append(results, e.weaveExtension(c, ci, s, ext)...)
			}
		}
	}
	return results
}

// weaveExtension replaces the compound at index ci with the union of the
// remaining simples in that compound (minus the matched simple itself,
// which the extender's own compound stands in for) and the extender's
// compound, weaving the extender's full complex selector into place so
// that a multi-compound extender (e.g. `@extend .a .b`) is represented
// correctly. Per original_source/src/extender.cpp's addExtension: the
// matched simple is removed before unifying, so extending a compound that
// consists solely of the matched simple (the common case, `@extend .foo`
// against a rule whose selector is bare `.foo`) yields the extender's
// compound alone rather than an `.foo.extender` conjunction.
func (e *Extender) weaveExtension(c *Complex, ci int, matched *Simple, ext *Extension) []*Complex {
	target := c.Components[ci].Compound
	extenderLast := ext.Extender.LastCompound()
	if extenderLast == nil {
		return nil
	}
	remainder := withoutSimple(target, matched)
	var merged *Compound
	if remainder == nil {
		merged = extenderLast
	} else {
		merged = remainder.Unify(extenderLast)
	}
	if merged == nil {
		return nil
	}

	replacedCompound := CompoundComponent(merged)
	var prefix, suffix []Component
	prefix = append(prefix, c.Components[:ci]...)
	suffix = append(suffix, c.Components[ci+1:]...)

	extenderPrefix := ext.Extender.Components[:len(ext.Extender.Components)-1]

	combined := append(append([]Component(nil), prefix...), extenderPrefix...)
	combined = append(combined, replacedCompound)
	combined = append(combined, suffix...)

	woven := trimLeadingTrailingCombinators(combined)
	return []*Complex{{Components: woven}}
}

// withoutSimple returns c with one occurrence of target removed, or nil if
// that would leave the compound empty.
func withoutSimple(c *Compound, target *Simple) *Compound {
	out := make([]*Simple, 0, len(c.Simples))
	removed := false
	for _, s := range c.Simples {
		if !removed && s.Equal(target) {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return &Compound{Simples: out, HasRealParent: c.HasRealParent, PostLineBreak: c.PostLineBreak}
}
