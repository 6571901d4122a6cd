package selector

// trimThreshold is the "more than ≈100 selectors" cutoff from §4.4
// ("Trim") above which trim is skipped to avoid its O(n²) cost.
const trimThreshold = 100

// sourceSpecificity is supplied by the caller (the evaluator, which knows
// each complex selector's originating rule) so Trim can refuse to drop a
// selector whose specificity would fall below what any of its sources
// requires.
type sourceSpecificity = func(*Complex) Specificity

// Trim implements §4.4 "Trim": remove any selector A for which another
// selector B in the list is a superselector with specificity >= A's
// source specificity, except selectors present verbatim in originals.
func Trim(list *List, originals map[string]bool, specOf sourceSpecificity) *List {
	if len(list.Complexes) > trimThreshold {
		return list
	}
	keep := make([]bool, len(list.Complexes))
	for i := range keep {
		keep[i] = true
	}
	for i, a := range list.Complexes {
		if originals[a.String()] {
			continue
		}
		aSpec := specOf(a)
		for j, b := range list.Complexes {
			if i == j || !keep[j] {
				continue
			}
			if b.IsSuperselectorOf(a) && !a.IsSuperselectorOf(b) {
				bSpec := specOf(b)
				if bSpec.GreaterOrEqual(aSpec) {
					keep[i] = false
					break
				}
			}
		}
	}
	out := make([]*Complex, 0, len(list.Complexes))
	for i, c := range list.Complexes {
		if keep[i] {
			out = append(out, c)
		}
	}
	return &List{Complexes: out}
}
