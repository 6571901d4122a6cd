package selector

import "strings"

// List is a SelectorList: a comma-separated sequence of Complex selectors.
type List struct {
	Complexes []*Complex
}

func NewList(complexes []*Complex) *List { return &List{Complexes: complexes} }

func (l *List) String() string {
	parts := make([]string, len(l.Complexes))
	for i, c := range l.Complexes {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func (l *List) IsEmpty() bool { return len(l.Complexes) == 0 }

func (l *List) Equal(o *List) bool {
	return l.IsSuperselectorOf(o) && o.IsSuperselectorOf(l)
}

// Clone returns a shallow copy safe to append to independently; Complex
// values themselves are treated as immutable once built (§3 invariant 2
// analogue for selectors, per the "Resource ownership" note in §5).
func (l *List) Clone() *List {
	out := make([]*Complex, len(l.Complexes))
	copy(out, l.Complexes)
	return &List{Complexes: out}
}
