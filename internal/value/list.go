package value

import "strings"

// List is Sass's list value: an ordered sequence with a separator
// (comma/space/slash/undecided) and whether it was written with brackets
// (§3). A single bare value behaves as a one-element, undecided-separator
// list throughout the evaluator (SingleToList below).
type List struct {
	Items     []Value
	Separator Separator
	Brackets  bool
}

func NewList(items []Value, sep Separator, brackets bool) *List {
	return &List{Items: items, Separator: sep, Brackets: brackets}
}

func (l *List) TypeName() string { return "list" }

// Truthy: an empty list is truthy in Sass (only false/null are falsy).
func (l *List) Truthy() bool { return true }

func (l *List) Inspect() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.Inspect()
	}
	sep := l.Separator
	if sep == SepUndecided {
		sep = SepSpace
	}
	joiner := ","
	if sep == SepSpace {
		joiner = " "
	} else if sep == SepSlash {
		joiner = "/"
	} else {
		joiner = ", "
	}
	body := strings.Join(parts, joiner)
	if l.Brackets {
		return "[" + body + "]"
	}
	if len(l.Items) == 0 {
		return "()"
	}
	if len(l.Items) == 1 && sep != SepSpace {
		return "(" + body + ",)"
	}
	return body
}

// SingleToList wraps a non-list value as a one-element list, the way the
// evaluator treats bare values for list builtins.
func SingleToList(v Value) *List {
	if l, ok := v.(*List); ok {
		return l
	}
	return &List{Items: []Value{v}, Separator: SepUndecided, Brackets: false}
}
